package payfast

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Reason identifies which trust check rejected a notification.
type Reason string

const (
	ReasonMissingSignature Reason = "missing_signature"
	ReasonBadSignature     Reason = "bad_signature"
	ReasonMissingField     Reason = "missing_field"
	ReasonMerchantMismatch Reason = "merchant_mismatch"
	ReasonUntrustedOrigin  Reason = "untrusted_origin"
	ReasonAmountMismatch   Reason = "amount_mismatch"
)

var amountTolerance = decimal.New(1, -2)

// VerificationError is returned by Validate for an untrusted notification.
type VerificationError struct {
	Reason   Reason
	Field    string
	Expected decimal.Decimal
	Received decimal.Decimal
}

func (e *VerificationError) Error() string {
	switch e.Reason {
	case ReasonAmountMismatch:
		return fmt.Sprintf("payfast: %s: expected %s, received %s", e.Reason, e.Expected.StringFixed(2), e.Received.StringFixed(2))
	case ReasonMissingField:
		return fmt.Sprintf("payfast: %s: %s", e.Reason, e.Field)
	default:
		return fmt.Sprintf("payfast: %s", e.Reason)
	}
}

// ReasonOf extracts the rejection reason from err, if it carries one.
func ReasonOf(err error) (Reason, bool) {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Reason, true
	}
	return "", false
}

// OriginTrust decides whether a caller address belongs to the gateway.
type OriginTrust interface {
	Trusted(ctx context.Context, origin string) bool
}

// Verifier establishes whether an ITN can be trusted. It never mutates
// anything; the only I/O is the DNS done by the origin check.
type Verifier struct {
	merchantID string
	signer     *Signer
	origins    OriginTrust
	validate   *validator.Validate
}

func NewVerifier(cfg Config, origins OriginTrust) *Verifier {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("field")
	})

	return &Verifier{
		merchantID: cfg.MerchantID,
		signer:     NewSigner(cfg.Passphrase),
		origins:    origins,
		validate:   validate,
	}
}

// Validate runs the trust checks in order and stops at the first failure:
// signature presence, signature, required fields, merchant, origin, amount.
func (v *Verifier) Validate(ctx context.Context, fields Fields, origin string, expected decimal.Decimal) (*Notification, error) {
	claimed, ok := fields.Lookup(FieldSignature)
	if !ok || claimed == "" {
		return nil, &VerificationError{Reason: ReasonMissingSignature}
	}
	if !v.signer.Verify(fields, claimed) {
		return nil, &VerificationError{Reason: ReasonBadSignature}
	}

	n := ParseNotification(fields)
	if err := v.validate.StructCtx(ctx, n); err != nil {
		field := FieldPaymentID
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field = verrs[0].Field()
		}
		return nil, &VerificationError{Reason: ReasonMissingField, Field: field}
	}

	if n.MerchantID != v.merchantID {
		return nil, &VerificationError{Reason: ReasonMerchantMismatch}
	}

	if !v.origins.Trusted(ctx, origin) {
		return nil, &VerificationError{Reason: ReasonUntrustedOrigin}
	}

	received, err := decimal.NewFromString(n.AmountGross)
	if err != nil {
		return nil, &VerificationError{Reason: ReasonMissingField, Field: FieldAmountGross}
	}
	if !AmountsMatch(expected, received) {
		return nil, &VerificationError{
			Reason:   ReasonAmountMismatch,
			Expected: expected.Round(2),
			Received: received.Round(2),
		}
	}

	return &n, nil
}

// AmountsMatch compares two amounts at cent precision, allowing one cent of
// difference.
func AmountsMatch(expected, received decimal.Decimal) bool {
	diff := expected.Round(2).Sub(received.Round(2)).Abs()
	return diff.LessThanOrEqual(amountTolerance)
}
