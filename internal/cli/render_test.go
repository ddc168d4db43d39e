package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("flexoki-dark") })

	SetTheme("flexoki-light")
	if ColorAccent != lipgloss.Color("#24837B") {
		t.Errorf("light accent = %v, want #24837B", ColorAccent)
	}

	SetTheme("flexoki-dark")
	if ColorAccent != lipgloss.Color("#3AA99F") {
		t.Errorf("dark accent = %v, want #3AA99F", ColorAccent)
	}
}

func TestSetThemeUnknownKeepsCurrent(t *testing.T) {
	t.Cleanup(func() { SetTheme("flexoki-dark") })

	SetTheme("flexoki-light")
	SetTheme("no-such-theme")
	if ColorAccent != lipgloss.Color("#24837B") {
		t.Errorf("accent after unknown theme = %v, want light accent", ColorAccent)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != "flexoki-dark" || names[1] != "flexoki-light" {
		t.Errorf("ThemeNames() = %v", names)
	}
}
