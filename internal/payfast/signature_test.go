package payfast_test

import (
	"testing"

	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/stretchr/testify/assert"
)

const testPassphrase = "jt7NOE43FZPn"

func sampleFields() payfast.Fields {
	return payfast.Fields{
		{Name: "merchant_id", Value: "10000100"},
		{Name: "merchant_key", Value: "46f0cd694581a"},
		{Name: "return_url", Value: "https://example.com/return"},
		{Name: "name_first", Value: "John "},
		{Name: "item_name", Value: "Order #1/2: test"},
		{Name: "custom_str1", Value: ""},
		{Name: "signature", Value: "ignored"},
	}
}

func TestCanonicalString_CheckoutMode(t *testing.T) {
	signer := payfast.NewSigner(testPassphrase)

	got := signer.CanonicalString(sampleFields(), payfast.CanonicalOptions{})

	assert.Equal(t,
		"merchant_id=10000100&merchant_key=46f0cd694581a&return_url=https%3A%2F%2Fexample.com%2Freturn"+
			"&name_first=John&item_name=Order+%231%2F2%3A+test&passphrase=jt7NOE43FZPn",
		got)
}

func TestCanonicalString_ITNMode(t *testing.T) {
	signer := payfast.NewSigner(testPassphrase)

	got := signer.CanonicalString(sampleFields(), payfast.CanonicalOptions{
		IncludeAllFields: true,
		Exclude:          []string{payfast.FieldMerchantKey},
	})

	assert.Equal(t,
		"merchant_id=10000100&return_url=https%3A%2F%2Fexample.com%2Freturn"+
			"&name_first=John&item_name=Order+%231%2F2%3A+test&custom_str1=&passphrase=jt7NOE43FZPn",
		got)
}

func TestCanonicalString_NoPassphrase(t *testing.T) {
	signer := payfast.NewSigner("")

	got := signer.CanonicalString(payfast.Fields{{Name: "amount", Value: "10.00"}}, payfast.CanonicalOptions{})

	assert.Equal(t, "amount=10.00", got)
}

func TestCanonicalString_Encoding(t *testing.T) {
	signer := payfast.NewSigner("")
	cases := map[string]string{
		"two words": "two+words",
		"a/b":       "a%2Fb",
		"a:b":       "a%3Ab",
		"a&b=c":     "a%26b%3Dc",
		"it's (ok)": "it's+(ok)",
		"café":      "caf%C3%A9",
		"  padded ": "padded",
		"50%":       "50%25",
	}

	for in, want := range cases {
		got := signer.CanonicalString(payfast.Fields{{Name: "v", Value: in}}, payfast.CanonicalOptions{IncludeAllFields: true})
		assert.Equal(t, "v="+want, got, "value %q", in)
	}
}

func TestCanonicalString_PassphraseIsEncoded(t *testing.T) {
	signer := payfast.NewSigner("secret phrase/1")

	got := signer.CanonicalString(payfast.Fields{{Name: "amount", Value: "1.00"}}, payfast.CanonicalOptions{})

	assert.Equal(t, "amount=1.00&passphrase=secret+phrase%2F1", got)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", payfast.Digest(""))
}

func TestSign_KnownDigests(t *testing.T) {
	signer := payfast.NewSigner(testPassphrase)

	assert.Equal(t, "c874c1a74ca952d7af59b76c6cab298f", signer.Sign(sampleFields(), false))
	assert.Equal(t, "ca432401e9857244fc7d619b5fad641b", signer.Sign(sampleFields(), true))
}

func TestSign_Deterministic(t *testing.T) {
	signer := payfast.NewSigner(testPassphrase)

	first := signer.Sign(sampleFields(), true)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, signer.Sign(sampleFields(), true))
	}
}

func TestSign_FieldOrderMatters(t *testing.T) {
	signer := payfast.NewSigner(testPassphrase)
	fields := payfast.Fields{
		{Name: "amount", Value: "100.00"},
		{Name: "item_name", Value: "Shoes"},
	}
	swapped := payfast.Fields{fields[1], fields[0]}

	assert.NotEqual(t, signer.Sign(fields, false), signer.Sign(swapped, false))
}

func TestSign_IgnoresExistingSignature(t *testing.T) {
	signer := payfast.NewSigner(testPassphrase)
	fields := sampleFields()
	other := sampleFields()
	other[len(other)-1].Value = "something-else"

	assert.Equal(t, signer.Sign(fields, true), signer.Sign(other, true))
}

func TestVerify(t *testing.T) {
	signer := payfast.NewSigner(testPassphrase)
	fields := sampleFields()

	assert.True(t, signer.Verify(fields, "ca432401e9857244fc7d619b5fad641b"))
	assert.False(t, signer.Verify(fields, "c874c1a74ca952d7af59b76c6cab298f"))
	assert.False(t, signer.Verify(fields, ""))
	assert.False(t, payfast.NewSigner("other").Verify(fields, "ca432401e9857244fc7d619b5fad641b"))
}
