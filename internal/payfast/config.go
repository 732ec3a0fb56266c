package payfast

import (
	"net/url"
	"strings"
	"time"
)

const (
	sandboxProcessURL    = "https://sandbox.payfast.co.za/eng/process"
	productionProcessURL = "https://www.payfast.co.za/eng/process"

	NotifyPath = "/payments/payfast/notify"
	ReturnPath = "/checkout/success"
	CancelPath = "/checkout/cancelled"

	defaultDNSTimeout = 3 * time.Second
)

// Config holds the merchant credentials and environment selection. It is
// passed explicitly to the builder and verifier.
type Config struct {
	MerchantID  string
	MerchantKey string
	Passphrase  string
	Sandbox     bool
	BaseURL     string
	DNSTimeout  time.Duration
}

// ProcessURL is the hosted payment page the checkout form posts to.
func (c Config) ProcessURL() string {
	if c.Sandbox {
		return sandboxProcessURL
	}
	return productionProcessURL
}

func (c Config) ReturnURL(orderID string) string {
	return c.callbackURL(ReturnPath, orderID)
}

func (c Config) CancelURL(orderID string) string {
	return c.callbackURL(CancelPath, orderID)
}

func (c Config) NotifyURL() string {
	return strings.TrimRight(c.BaseURL, "/") + NotifyPath
}

func (c Config) callbackURL(path, orderID string) string {
	return strings.TrimRight(c.BaseURL, "/") + path + "?order_id=" + url.QueryEscape(orderID)
}

func (c Config) dnsTimeout() time.Duration {
	if c.DNSTimeout <= 0 {
		return defaultDNSTimeout
	}
	return c.DNSTimeout
}
