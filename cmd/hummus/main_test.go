package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"hummus/internal/config"
	"hummus/internal/export"
	"hummus/internal/symbols"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hummus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr error
	}{
		{"page member", []string{"PageNames", "CHATS_OPEN"}, "CHATS_OPEN is a member of PageNames\n", nil},
		{"icon member", []string{"IconKinds", "CLASS"}, "CLASS is a member of IconKinds\n", nil},
		{"modal member", []string{"Modals", "NEW_CHAT"}, "NEW_CHAT is a member of Modals\n", nil},
		{"step member", []string{"NewChatModalSteps", "DIRECT"}, "DIRECT is a member of NewChatModalSteps\n", nil},
		{"member of another enumeration", []string{"PageNames", "ALERT"}, "", symbols.ErrUnknownEnumValue},
		{"case sensitive", []string{"Modals", "new_chat"}, "", symbols.ErrUnknownEnumValue},
		{"unknown enumeration", []string{"Themes", "DARK"}, "", symbols.ErrUnknownEnumeration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"check"}, tt.args...)...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}

func TestCheck_Args(t *testing.T) {
	_, err := execute(t, "check", "PageNames")
	assert.Error(t, err)
}

func TestList_Table(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, export.RenderTable(symbols.Enumerations()), out)
}

func TestList_OneJSON(t *testing.T) {
	out, err := execute(t, "list", "NewChatModalSteps", "--format", "json")
	require.NoError(t, err)

	var got []symbols.Enumeration
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []symbols.Enumeration{{Name: "NewChatModalSteps", Members: []string{"DIRECT", "GROUP"}}}, got)
}

func TestList_FormatFromConfig(t *testing.T) {
	path := writeConfig(t, "format: yaml\n")
	out, err := execute(t, "--config", path, "list", "Modals")
	require.NoError(t, err)

	var got []symbols.Enumeration
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []symbols.Enumeration{{Name: "Modals", Members: []string{"NEW_CHAT"}}}, got)
}

func TestList_Errors(t *testing.T) {
	_, err := execute(t, "list", "Themes")
	assert.ErrorIs(t, err, symbols.ErrUnknownEnumeration)

	_, err = execute(t, "list", "--format", "xml")
	assert.ErrorContains(t, err, "--format")
}

func TestExport(t *testing.T) {
	out, err := execute(t, "export")
	require.NoError(t, err)

	var got export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, export.NewDocument(symbols.Enumerations()), got)

	out, err = execute(t, "export", "--format", "yaml")
	require.NoError(t, err)
	got = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, export.NewDocument(symbols.Enumerations()), got)

	_, err = execute(t, "export", "--format", "table")
	assert.Error(t, err)
}

func TestConfigErrors(t *testing.T) {
	_, err := execute(t, "--config", writeConfig(t, "format: xml\n"), "list")
	assert.ErrorContains(t, err, "format")

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "--log-level", "loud", "list")
	assert.ErrorContains(t, err, "--log-level")
}

func TestConfigFromEnv(t *testing.T) {
	path := writeConfig(t, "format: json\n")
	cmd := newRootCmd()
	t.Setenv(config.EnvPath, path)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "IconKinds"})
	require.NoError(t, cmd.Execute())

	var got []symbols.Enumeration
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, []string{"USER", "GROUP", "CLASS", "ALERT"}, got[0].Members)
}
