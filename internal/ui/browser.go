package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hummus/internal/symbols"
)

// Browser is a read-only Bubble Tea model over the symbol table.
// The left pane lists enumerations; the right pane lists the selected one's members.
type Browser struct {
	enums   []symbols.Enumeration
	enumIdx int
	member  int

	keys   browserKeys
	help   help.Model
	width  int
	height int
}

// Ensure Browser implements tea.Model.
var _ tea.Model = (*Browser)(nil)

// NewBrowser creates a browser over enums. If start names one of them it is selected first.
func NewBrowser(enums []symbols.Enumeration, start string) *Browser {
	b := &Browser{
		enums: enums,
		keys:  newBrowserKeys(),
		help:  help.New(),
	}
	for i, e := range enums {
		if e.Name == start {
			b.enumIdx = i
			break
		}
	}
	return b
}

// Selected returns the selected enumeration and member.
// ok is false when there is nothing to select.
func (b *Browser) Selected() (enum symbols.Enumeration, member string, ok bool) {
	if len(b.enums) == 0 {
		return symbols.Enumeration{}, "", false
	}
	e := b.enums[b.enumIdx]
	if len(e.Members) == 0 {
		return e, "", true
	}
	return e, e.Members[b.member], true
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.help.Width = msg.Width
		return b, nil
	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit
	case key.Matches(msg, b.keys.Help):
		b.help.ShowAll = !b.help.ShowAll
	case len(b.enums) == 0:
		// Nothing to move through.
	case key.Matches(msg, b.keys.NextEnum):
		b.enumIdx = (b.enumIdx + 1) % len(b.enums)
		b.member = 0
	case key.Matches(msg, b.keys.PrevEnum):
		b.enumIdx = (b.enumIdx - 1 + len(b.enums)) % len(b.enums)
		b.member = 0
	case key.Matches(msg, b.keys.Down):
		if b.member < len(b.enums[b.enumIdx].Members)-1 {
			b.member++
		}
	case key.Matches(msg, b.keys.Up):
		if b.member > 0 {
			b.member--
		}
	}
	return b, nil
}

// View implements tea.Model.
func (b *Browser) View() string {
	if len(b.enums) == 0 {
		return Styles.Empty.Render("No enumerations.") + "\n"
	}
	left := Styles.Box.Render(b.renderEnums())
	right := Styles.Box.Render(b.renderMembers())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return body + "\n" + b.help.View(b.keys) + "\n"
}

func (b *Browser) renderEnums() string {
	var s strings.Builder
	s.WriteString(Styles.Title.Render("Enumerations"))
	for i, e := range b.enums {
		s.WriteString("\n")
		if i == b.enumIdx {
			s.WriteString(Styles.Selected.Render("> " + e.Name))
		} else {
			s.WriteString(Styles.Muted.Render("  " + e.Name))
		}
	}
	return s.String()
}

func (b *Browser) renderMembers() string {
	e := b.enums[b.enumIdx]
	var s strings.Builder
	s.WriteString(Styles.Title.Render(fmt.Sprintf("%s (%d)", e.Name, len(e.Members))))
	if len(e.Members) == 0 {
		s.WriteString("\n" + Styles.Empty.Render("no members"))
		return s.String()
	}
	for i, m := range e.Members {
		s.WriteString("\n")
		label := m
		if e.Name == symbols.EnumIconKinds {
			kind := symbols.IconKind(m)
			glyph := IconGlyph(kind)
			if !kind.Valid() {
				glyph = Styles.Danger.Render(glyph)
			}
			label = glyph + " " + m
		}
		if i == b.member {
			s.WriteString(Styles.Selected.Render("> " + label))
		} else {
			s.WriteString(Styles.Normal.Render("  " + label))
		}
	}
	return s.String()
}
