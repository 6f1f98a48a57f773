package types

import "strings"

// Variant is a name/value pair describing a product option on a cart line,
// e.g. {"Color", "Space Black"}.
type Variant struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Key returns the normalized identity used to decide whether two cart lines
// carry the same variant.
func (v Variant) Key() string {
	return strings.ToLower(strings.TrimSpace(v.Name)) + "=" + strings.ToLower(strings.TrimSpace(v.Value))
}

// VariantKey builds the merge key for an optional variant. Distinct variants
// of the same product occupy distinct cart lines.
func VariantKey(v *Variant) string {
	if v == nil {
		return ""
	}
	return v.Key()
}
