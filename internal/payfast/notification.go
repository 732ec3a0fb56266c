package payfast

const (
	FieldMerchantID    = "merchant_id"
	FieldPaymentID     = "m_payment_id"
	FieldPfPaymentID   = "pf_payment_id"
	FieldPaymentStatus = "payment_status"
	FieldAmountGross   = "amount_gross"
)

// Notification is the typed view of an ITN. Fields the gateway may add
// in the future land in Extra instead of being dropped.
type Notification struct {
	MPaymentID      string `field:"m_payment_id" validate:"required"`
	PfPaymentID     string `field:"pf_payment_id" validate:"required"`
	PaymentStatus   string `field:"payment_status" validate:"required"`
	ItemName        string `field:"item_name"`
	ItemDescription string `field:"item_description"`
	AmountGross     string `field:"amount_gross" validate:"required,numeric"`
	AmountFee       string `field:"amount_fee" validate:"omitempty,numeric"`
	AmountNet       string `field:"amount_net" validate:"omitempty,numeric"`
	CustomStr1      string `field:"custom_str1"`
	NameFirst       string `field:"name_first"`
	NameLast        string `field:"name_last"`
	EmailAddress    string `field:"email_address"`
	MerchantID      string `field:"merchant_id" validate:"required"`
	Signature       string `field:"signature"`

	Extra map[string]string `field:"-"`
}

// ParseNotification maps ordered fields onto the known ITN fields. It does
// not establish trust; see Verifier.Validate.
func ParseNotification(fields Fields) Notification {
	var n Notification
	for _, f := range fields {
		switch f.Name {
		case FieldPaymentID:
			n.MPaymentID = f.Value
		case FieldPfPaymentID:
			n.PfPaymentID = f.Value
		case FieldPaymentStatus:
			n.PaymentStatus = f.Value
		case "item_name":
			n.ItemName = f.Value
		case "item_description":
			n.ItemDescription = f.Value
		case FieldAmountGross:
			n.AmountGross = f.Value
		case "amount_fee":
			n.AmountFee = f.Value
		case "amount_net":
			n.AmountNet = f.Value
		case "custom_str1":
			n.CustomStr1 = f.Value
		case "name_first":
			n.NameFirst = f.Value
		case "name_last":
			n.NameLast = f.Value
		case "email_address":
			n.EmailAddress = f.Value
		case FieldMerchantID:
			n.MerchantID = f.Value
		case FieldSignature:
			n.Signature = f.Value
		default:
			if n.Extra == nil {
				n.Extra = make(map[string]string)
			}
			n.Extra[f.Name] = f.Value
		}
	}
	return n
}
