package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tend-cli/internal/model"
)

// Theme is a named lipgloss color table. Everything the renderer colors goes
// through one of these slots, so switching themes re-skins every view.
type Theme struct {
	Name string

	// Chrome
	Border      lipgloss.Color
	TabActive   lipgloss.Color
	TabInactive lipgloss.Color
	Status      lipgloss.Color
	StatusError lipgloss.Color
	HelpText    lipgloss.Color
	Cursor      lipgloss.Color

	// Content
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	Selected lipgloss.Color
	Moving   lipgloss.Color

	// Task states
	StateTodo       lipgloss.Color
	StateOnDeck     lipgloss.Color
	StateInProgress lipgloss.Color
	StateDone       lipgloss.Color

	// Backlog tree
	Category lipgloss.Color
	Project  lipgloss.Color

	// Dialogs
	DialogBorder      lipgloss.Color
	DialogText        lipgloss.Color
	DialogPlaceholder lipgloss.Color
}

// StateColor maps a task state to its theme color.
func (t Theme) StateColor(s model.TaskState) lipgloss.Color {
	switch s {
	case model.OnDeck:
		return t.StateOnDeck
	case model.InProgress:
		return t.StateInProgress
	case model.Done:
		return t.StateDone
	default:
		return t.StateTodo
	}
}

var themes = []Theme{
	{
		Name:              "Default",
		Border:            lipgloss.Color("240"),
		TabActive:         lipgloss.Color("11"),
		TabInactive:       lipgloss.Color("7"),
		Status:            lipgloss.Color("2"),
		StatusError:       lipgloss.Color("1"),
		HelpText:          lipgloss.Color("240"),
		Cursor:            lipgloss.Color("11"),
		Text:              lipgloss.Color("7"),
		TextDim:           lipgloss.Color("240"),
		Selected:          lipgloss.Color("15"),
		Moving:            lipgloss.Color("13"),
		StateTodo:         lipgloss.Color("1"),
		StateOnDeck:       lipgloss.Color("#6495ED"),
		StateInProgress:   lipgloss.Color("11"),
		StateDone:         lipgloss.Color("2"),
		Category:          lipgloss.Color("11"),
		Project:           lipgloss.Color("14"),
		DialogBorder:      lipgloss.Color("11"),
		DialogText:        lipgloss.Color("15"),
		DialogPlaceholder: lipgloss.Color("240"),
	},
	{
		Name:              "Dracula",
		Border:            lipgloss.Color("#44475a"),
		TabActive:         lipgloss.Color("#bd93f9"),
		TabInactive:       lipgloss.Color("#6272a4"),
		Status:            lipgloss.Color("#50fa7b"),
		StatusError:       lipgloss.Color("#ff5555"),
		HelpText:          lipgloss.Color("#6272a4"),
		Cursor:            lipgloss.Color("#ffb86c"),
		Text:              lipgloss.Color("#f8f8f2"),
		TextDim:           lipgloss.Color("#6272a4"),
		Selected:          lipgloss.Color("#f8f8f2"),
		Moving:            lipgloss.Color("#ff79c6"),
		StateTodo:         lipgloss.Color("#ff5555"),
		StateOnDeck:       lipgloss.Color("#8be9fd"),
		StateInProgress:   lipgloss.Color("#ffb86c"),
		StateDone:         lipgloss.Color("#50fa7b"),
		Category:          lipgloss.Color("#bd93f9"),
		Project:           lipgloss.Color("#8be9fd"),
		DialogBorder:      lipgloss.Color("#bd93f9"),
		DialogText:        lipgloss.Color("#f8f8f2"),
		DialogPlaceholder: lipgloss.Color("#6272a4"),
	},
	{
		Name:              "Catppuccin Mocha",
		Border:            lipgloss.Color("#585b70"),
		TabActive:         lipgloss.Color("#cba6f7"),
		TabInactive:       lipgloss.Color("#7f849c"),
		Status:            lipgloss.Color("#a6e3a1"),
		StatusError:       lipgloss.Color("#f38ba8"),
		HelpText:          lipgloss.Color("#7f849c"),
		Cursor:            lipgloss.Color("#f9e2af"),
		Text:              lipgloss.Color("#cdd6f4"),
		TextDim:           lipgloss.Color("#7f849c"),
		Selected:          lipgloss.Color("#cdd6f4"),
		Moving:            lipgloss.Color("#f5c2e7"),
		StateTodo:         lipgloss.Color("#f38ba8"),
		StateOnDeck:       lipgloss.Color("#89b4fa"),
		StateInProgress:   lipgloss.Color("#f9e2af"),
		StateDone:         lipgloss.Color("#a6e3a1"),
		Category:          lipgloss.Color("#cba6f7"),
		Project:           lipgloss.Color("#94e2d5"),
		DialogBorder:      lipgloss.Color("#cba6f7"),
		DialogText:        lipgloss.Color("#cdd6f4"),
		DialogPlaceholder: lipgloss.Color("#7f849c"),
	},
	{
		Name:              "Solarized Light",
		Border:            lipgloss.Color("#93a1a1"),
		TabActive:         lipgloss.Color("#6c71c4"),
		TabInactive:       lipgloss.Color("#93a1a1"),
		Status:            lipgloss.Color("#859900"),
		StatusError:       lipgloss.Color("#dc322f"),
		HelpText:          lipgloss.Color("#93a1a1"),
		Cursor:            lipgloss.Color("#b58900"),
		Text:              lipgloss.Color("#657b83"),
		TextDim:           lipgloss.Color("#93a1a1"),
		Selected:          lipgloss.Color("#073642"),
		Moving:            lipgloss.Color("#d33682"),
		StateTodo:         lipgloss.Color("#dc322f"),
		StateOnDeck:       lipgloss.Color("#268bd2"),
		StateInProgress:   lipgloss.Color("#b58900"),
		StateDone:         lipgloss.Color("#859900"),
		Category:          lipgloss.Color("#6c71c4"),
		Project:           lipgloss.Color("#2aa198"),
		DialogBorder:      lipgloss.Color("#6c71c4"),
		DialogText:        lipgloss.Color("#073642"),
		DialogPlaceholder: lipgloss.Color("#93a1a1"),
	},
}

// Themes returns the available themes.
func Themes() []Theme {
	return themes
}

// ThemeIndexByName resolves a persisted theme name, defaulting to 0.
func ThemeIndexByName(name string) int {
	for i, t := range themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// applyColorProfilePreference sets lipgloss's color profile for the TUI.
//
// termenv.EnvColorProfile honors CLICOLOR, which is meant for plain CLI
// output and can accidentally strip a TUI of color. Here only NO_COLOR is
// honored; beyond that the terminal's own capabilities win, with an env
// upgrade for terminals whose probing under-reports.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}
