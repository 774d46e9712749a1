package money

// Code represents a currency code (e.g., "ZMW").
type Code string

// ZMW is the Zambian Kwacha, the only currency the bank operates in.
const ZMW Code = "ZMW"

// DefaultCode is the currency every Money value carries.
var DefaultCode = ZMW

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}
