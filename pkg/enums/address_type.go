package enums

// AddressType distinguishes shipping and billing addresses on a profile.
type AddressType string

const (
	AddressTypeShipping AddressType = "shipping"
	AddressTypeBilling  AddressType = "billing"
)

// IsValid reports whether the value is a known AddressType.
func (a AddressType) IsValid() bool {
	return a == AddressTypeShipping || a == AddressTypeBilling
}

// String implements fmt.Stringer.
func (a AddressType) String() string {
	return string(a)
}
