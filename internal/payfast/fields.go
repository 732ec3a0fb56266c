package payfast

import (
	"fmt"
	"net/url"
	"strings"
)

// Field is one name/value pair of a gateway payload.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Fields is a payload in transmission order. The order is part of the
// signature, so a payload must never be rebuilt from a map.
type Fields []Field

func (f *Fields) Add(name, value string) {
	*f = append(*f, Field{Name: name, Value: value})
}

// AddIfPresent appends the field only when value is not blank.
func (f *Fields) AddIfPresent(name, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	f.Add(name, value)
}

// Lookup returns the first value carried under name.
func (f Fields) Lookup(name string) (string, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

func (f Fields) Value(name string) string {
	v, _ := f.Lookup(name)
	return v
}

// ParseFields decodes an application/x-www-form-urlencoded body keeping
// the order in which the pairs were sent.
func ParseFields(body string) (Fields, error) {
	var fields Fields
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return nil, fmt.Errorf("invalid field name %q: %w", rawName, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("invalid value for field %q: %w", name, err)
		}
		fields.Add(name, value)
	}
	return fields, nil
}
