package symbols

import "slices"

// ModalID identifies the active modal dialog.
type ModalID string

const ModalNewChat ModalID = "NEW_CHAT"

var modals = [...]ModalID{
	ModalNewChat,
}

// Modals returns every declared ModalID in declaration order.
func Modals() []ModalID {
	return slices.Clone(modals[:])
}

func (m ModalID) String() string {
	return string(m)
}

// Valid reports whether m is a declared ModalID.
func (m ModalID) Valid() bool {
	switch m {
	case ModalNewChat:
		return true
	default:
		return false
	}
}

// ParseModalID converts s to a ModalID.
func ParseModalID(s string) (ModalID, error) {
	return parseEnum[ModalID]("ModalID", s)
}

// MarshalJSON implements json.Marshaler.
func (m ModalID) MarshalJSON() ([]byte, error) {
	return MarshalEnumJSON("ModalID", m)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *ModalID) UnmarshalJSON(data []byte) error {
	parsed, err := UnmarshalEnumJSON(data, ParseModalID)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m ModalID) MarshalText() ([]byte, error) {
	return marshalEnumText("ModalID", m)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ModalID) UnmarshalText(text []byte) error {
	parsed, err := ParseModalID(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// NewChatModalStep identifies the current step of the new chat modal.
type NewChatModalStep string

const (
	StepDirect NewChatModalStep = "DIRECT"
	StepGroup  NewChatModalStep = "GROUP"
)

var newChatModalSteps = [...]NewChatModalStep{
	StepDirect,
	StepGroup,
}

// NewChatModalSteps returns every declared NewChatModalStep in declaration order.
func NewChatModalSteps() []NewChatModalStep {
	return slices.Clone(newChatModalSteps[:])
}

func (s NewChatModalStep) String() string {
	return string(s)
}

// Valid reports whether s is a declared NewChatModalStep.
func (s NewChatModalStep) Valid() bool {
	switch s {
	case StepDirect, StepGroup:
		return true
	default:
		return false
	}
}

// ParseNewChatModalStep converts s to a NewChatModalStep.
func ParseNewChatModalStep(s string) (NewChatModalStep, error) {
	return parseEnum[NewChatModalStep]("NewChatModalStep", s)
}

// MarshalJSON implements json.Marshaler.
func (s NewChatModalStep) MarshalJSON() ([]byte, error) {
	return MarshalEnumJSON("NewChatModalStep", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *NewChatModalStep) UnmarshalJSON(data []byte) error {
	parsed, err := UnmarshalEnumJSON(data, ParseNewChatModalStep)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s NewChatModalStep) MarshalText() ([]byte, error) {
	return marshalEnumText("NewChatModalStep", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *NewChatModalStep) UnmarshalText(text []byte) error {
	parsed, err := ParseNewChatModalStep(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
