// Package export writes the symbol table as a terminal table, JSON or YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"hummus/internal/config"
	"hummus/internal/symbols"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	memberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Document is the export form: enumeration name to members in declaration order.
type Document map[string][]string

// NewDocument builds a Document from enums.
func NewDocument(enums []symbols.Enumeration) Document {
	doc := make(Document, len(enums))
	for _, e := range enums {
		doc[e.Name] = append([]string(nil), e.Members...)
	}
	return doc
}

// WriteList writes enums in the order given.
func WriteList(w io.Writer, format config.Format, enums []symbols.Enumeration) error {
	switch format {
	case config.FormatTable:
		_, err := io.WriteString(w, RenderTable(enums))
		return err
	case config.FormatJSON:
		return writeJSON(w, enums)
	case config.FormatYAML:
		return writeYAML(w, enums)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteDocument writes enums as a single document keyed by enumeration name.
// Only json and yaml are supported.
func WriteDocument(w io.Writer, format config.Format, enums []symbols.Enumeration) error {
	doc := NewDocument(enums)
	switch format {
	case config.FormatJSON:
		return writeJSON(w, doc)
	case config.FormatYAML:
		return writeYAML(w, doc)
	default:
		return fmt.Errorf("export: unsupported format %q (want json or yaml)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// RenderTable renders one line per enumeration: name, member count, members.
func RenderTable(enums []symbols.Enumeration) string {
	width := 0
	for _, e := range enums {
		width = max(width, lipgloss.Width(e.Name))
	}
	var b strings.Builder
	for _, e := range enums {
		b.WriteString(nameStyle.Width(width + 2).Render(e.Name))
		b.WriteString(countStyle.Render(fmt.Sprintf("(%d)  ", len(e.Members))))
		b.WriteString(memberStyle.Render(strings.Join(e.Members, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}
