package symbols

import (
	"errors"
	"fmt"
	"slices"
)

// Enumeration names as used by Lookup, Contains and Check.
const (
	EnumPageNames         = "PageNames"
	EnumIconKinds         = "IconKinds"
	EnumModals            = "Modals"
	EnumNewChatModalSteps = "NewChatModalSteps"
)

// ErrUnknownEnumeration is returned when an enumeration name is not one of the four declared.
var ErrUnknownEnumeration = errors.New("unknown enumeration")

// Enumeration is a read-only description of one enumeration and its members.
type Enumeration struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members" yaml:"members"`
}

// Has reports whether value is one of e's members.
func (e Enumeration) Has(value string) bool {
	return slices.Contains(e.Members, value)
}

func memberStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Enumerations returns the four enumerations in the order
// PageNames, IconKinds, Modals, NewChatModalSteps.
func Enumerations() []Enumeration {
	return []Enumeration{
		{Name: EnumPageNames, Members: memberStrings(PageNames())},
		{Name: EnumIconKinds, Members: memberStrings(IconKinds())},
		{Name: EnumModals, Members: memberStrings(Modals())},
		{Name: EnumNewChatModalSteps, Members: memberStrings(NewChatModalSteps())},
	}
}

// EnumerationNames returns the names accepted by Lookup.
func EnumerationNames() []string {
	return []string{EnumPageNames, EnumIconKinds, EnumModals, EnumNewChatModalSteps}
}

// Lookup returns the enumeration called name.
func Lookup(name string) (Enumeration, error) {
	for _, e := range Enumerations() {
		if e.Name == name {
			return e, nil
		}
	}
	return Enumeration{}, fmt.Errorf("%w: %q", ErrUnknownEnumeration, name)
}

// Contains reports whether value is a member of the enumeration called enum.
func Contains(enum, value string) (bool, error) {
	e, err := Lookup(enum)
	if err != nil {
		return false, err
	}
	return e.Has(value), nil
}

// Check returns nil if value is a member of enum, otherwise an error matching
// ErrUnknownEnumValue (or ErrUnknownEnumeration for a bad enum name).
func Check(enum, value string) error {
	var err error
	switch enum {
	case EnumPageNames:
		_, err = ParsePageName(value)
	case EnumIconKinds:
		_, err = ParseIconKind(value)
	case EnumModals:
		_, err = ParseModalID(value)
	case EnumNewChatModalSteps:
		_, err = ParseNewChatModalStep(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnumeration, enum)
	}
	return err
}
