package symbols

import "slices"

// PageName identifies a top-level navigable view.
type PageName string

const (
	PageChats      PageName = "CHATS"
	PageChatsOpen  PageName = "CHATS_OPEN"
	PageAlerts     PageName = "ALERTS"
	PageAlertsOpen PageName = "ALERTS_OPEN"
)

var pageNames = [...]PageName{
	PageChats,
	PageChatsOpen,
	PageAlerts,
	PageAlertsOpen,
}

// PageNames returns every declared PageName in declaration order.
func PageNames() []PageName {
	return slices.Clone(pageNames[:])
}

// String returns the page name as declared.
func (p PageName) String() string {
	return string(p)
}

// Valid reports whether p is a declared PageName.
func (p PageName) Valid() bool {
	switch p {
	case PageChats, PageChatsOpen, PageAlerts, PageAlertsOpen:
		return true
	default:
		return false
	}
}

// ParsePageName converts s to a PageName. Matching is exact and case-sensitive.
func ParsePageName(s string) (PageName, error) {
	return parseEnum[PageName]("PageName", s)
}

// MarshalJSON implements json.Marshaler.
func (p PageName) MarshalJSON() ([]byte, error) {
	return MarshalEnumJSON("PageName", p)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PageName) UnmarshalJSON(data []byte) error {
	parsed, err := UnmarshalEnumJSON(data, ParsePageName)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PageName) MarshalText() ([]byte, error) {
	return marshalEnumText("PageName", p)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PageName) UnmarshalText(text []byte) error {
	parsed, err := ParsePageName(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
