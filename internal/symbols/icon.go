package symbols

import "slices"

// IconKind selects the glyph or avatar style rendered for an entity.
type IconKind string

const (
	IconUser  IconKind = "USER"
	IconGroup IconKind = "GROUP"
	IconClass IconKind = "CLASS"
	IconAlert IconKind = "ALERT"
)

var iconKinds = [...]IconKind{
	IconUser,
	IconGroup,
	IconClass,
	IconAlert,
}

// IconKinds returns every declared IconKind in declaration order.
func IconKinds() []IconKind {
	return slices.Clone(iconKinds[:])
}

func (k IconKind) String() string {
	return string(k)
}

// Valid reports whether k is a declared IconKind.
func (k IconKind) Valid() bool {
	switch k {
	case IconUser, IconGroup, IconClass, IconAlert:
		return true
	default:
		return false
	}
}

// ParseIconKind converts s to an IconKind.
func ParseIconKind(s string) (IconKind, error) {
	return parseEnum[IconKind]("IconKind", s)
}

// MarshalJSON implements json.Marshaler.
func (k IconKind) MarshalJSON() ([]byte, error) {
	return MarshalEnumJSON("IconKind", k)
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *IconKind) UnmarshalJSON(data []byte) error {
	parsed, err := UnmarshalEnumJSON(data, ParseIconKind)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k IconKind) MarshalText() ([]byte, error) {
	return marshalEnumText("IconKind", k)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *IconKind) UnmarshalText(text []byte) error {
	parsed, err := ParseIconKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
