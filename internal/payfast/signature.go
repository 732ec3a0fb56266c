package payfast

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const (
	FieldSignature   = "signature"
	FieldMerchantKey = "merchant_key"

	fieldPassphrase = "passphrase"
	upperHex        = "0123456789ABCDEF"
)

// CanonicalOptions selects between the two canonical string variants.
//
// Checkout payloads leave IncludeAllFields unset and blank values are
// skipped. ITN payloads set it, keep blank values exactly as sent, and
// drop the names listed in Exclude instead.
type CanonicalOptions struct {
	IncludeAllFields bool
	Exclude          []string
}

// Signer computes gateway signatures over ordered payloads.
type Signer struct {
	passphrase string
}

func NewSigner(passphrase string) *Signer {
	return &Signer{passphrase: passphrase}
}

// CanonicalString joins the retained fields as name=value pairs in the given
// order. The signature field is never part of its own input.
func (s *Signer) CanonicalString(fields Fields, opts CanonicalOptions) string {
	var b strings.Builder
	for _, field := range fields {
		if field.Name == FieldSignature {
			continue
		}
		if opts.IncludeAllFields {
			if excluded(field.Name, opts.Exclude) {
				continue
			}
		} else if strings.TrimSpace(field.Value) == "" {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(field.Name)
		b.WriteByte('=')
		b.WriteString(encodeValue(field.Value))
	}

	if s.passphrase != "" {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(fieldPassphrase)
		b.WriteByte('=')
		b.WriteString(encodeValue(s.passphrase))
	}

	return b.String()
}

// Digest is the lowercase hex MD5 of a canonical string. MD5 is what the
// gateway protocol mandates.
func Digest(canonical string) string {
	sum := md5.Sum([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// Sign digests fields. With excludeSharedSecret the ITN variant is used: the
// merchant key is left out and blank values are kept.
func (s *Signer) Sign(fields Fields, excludeSharedSecret bool) string {
	opts := CanonicalOptions{}
	if excludeSharedSecret {
		opts = CanonicalOptions{IncludeAllFields: true, Exclude: []string{FieldMerchantKey}}
	}
	return Digest(s.CanonicalString(fields, opts))
}

// Verify recomputes the ITN signature of fields and compares it to claimed.
func (s *Signer) Verify(fields Fields, claimed string) bool {
	return s.Sign(fields, true) == claimed
}

func excluded(name string, names []string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// encodeValue percent-encodes the trimmed value the way the gateway does
// when it builds its own string: unreserved characters of encodeURIComponent
// pass through, space becomes '+', everything else is %XX in uppercase hex.
func encodeValue(v string) string {
	v = strings.TrimSpace(v)

	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case isUnreserved(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
