package symbols

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEnumValue is matched by every error returned for a value that is not
// a declared member of its enumeration.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// UnknownValueError reports a value outside an enumeration's declared set.
type UnknownValueError struct {
	Enum  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Enum, e.Value)
}

// Is makes errors.Is(err, ErrUnknownEnumValue) true.
func (e *UnknownValueError) Is(target error) bool {
	return target == ErrUnknownEnumValue
}

// StringEnum is a constraint for the string-backed enumeration types in this package.
type StringEnum interface {
	~string
	Valid() bool
}

// ParseEnumError creates a standardized error for invalid enum string values.
func ParseEnumError(enumName, value string) error {
	return &UnknownValueError{Enum: enumName, Value: value}
}

// parseEnum converts s to T if it is a declared member.
func parseEnum[T StringEnum](enumName, s string) (T, error) {
	v := T(s)
	if !v.Valid() {
		var zero T
		return zero, ParseEnumError(enumName, s)
	}
	return v, nil
}

// MarshalEnumJSON marshals an enum value to its JSON string.
// Undeclared values are rejected instead of being written out.
func MarshalEnumJSON[T StringEnum](enumName string, v T) ([]byte, error) {
	if !v.Valid() {
		return nil, ParseEnumError(enumName, string(v))
	}
	return json.Marshal(string(v))
}

// UnmarshalEnumJSON unmarshals an enum value from JSON by parsing the string representation.
// parseFunc should convert a string to the enum value, or return an error if the string is invalid.
func UnmarshalEnumJSON[T StringEnum](data []byte, parseFunc func(string) (T, error)) (T, error) {
	var zero T
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return zero, err
	}
	return parseFunc(s)
}

// marshalEnumText backs the encoding.TextMarshaler implementations.
func marshalEnumText[T StringEnum](enumName string, v T) ([]byte, error) {
	if !v.Valid() {
		return nil, ParseEnumError(enumName, string(v))
	}
	return []byte(v), nil
}
