package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tend-cli/internal/app"
	"tend-cli/internal/store"
	"tend-cli/internal/taskfile"
)

// Options configure the interactive program.
type Options struct {
	// FilePath is the task file to open (created from a template when
	// missing).
	FilePath string
	// Theme is the startup theme name; the sidecar's persisted theme wins
	// when present.
	Theme string
}

// Run opens the task file and runs the interactive program until quit. On
// exit a dirty document is saved and the collapse/theme sidecar persisted
// (best effort).
func Run(opts Options) error {
	content, err := store.EnsureFile(opts.FilePath)
	if err != nil {
		return err
	}

	a := app.New(taskfile.Parse(content), opts.FilePath)
	a.Collapse = store.LoadCollapseState(opts.FilePath)
	a.ThemeCount = len(Themes())
	themeName := a.Collapse.ThemeName
	if themeName == "" {
		themeName = opts.Theme
	}
	a.ThemeIndex = ThemeIndexByName(themeName)
	a.RebuildTree()

	applyColorProfilePreference()

	m := appModel{
		app:     a,
		watcher: store.NewWatcher(opts.FilePath),
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()

	// Quit-if-dirty save; a failure here must not lose the sidecar write.
	var saveErr error
	if a.Dirty {
		saveErr = store.AtomicWrite(opts.FilePath, a.Serialize())
	}
	a.Collapse.ThemeName = Themes()[a.ThemeIndex].Name
	_ = store.SaveCollapseState(opts.FilePath, a.Collapse)

	if err != nil {
		return err
	}
	return saveErr
}

type reloadTickMsg struct{}

// tickReload schedules the once-per-frame-interval external change poll.
func tickReload() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

type appModel struct {
	app     *app.App
	watcher *store.Watcher

	width  int
	height int

	// statusErr styles the status message as an error.
	statusErr bool
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func (m appModel) theme() Theme {
	return Themes()[m.app.ThemeIndex]
}

// save writes the document and re-baselines the watcher so our own write is
// not reported back as an external change.
func (m *appModel) save() {
	if err := store.AtomicWrite(m.app.FilePath, m.app.Serialize()); err != nil {
		m.app.Status = "Save failed: " + err.Error()
		m.statusErr = true
		return
	}
	m.watcher.Reset()
	m.app.Dirty = false
	m.app.Status = "Saved"
	m.statusErr = false
}

// reload replaces the document from disk, discarding local edits.
func (m *appModel) reload() {
	content, err := store.Read(m.app.FilePath)
	if err != nil {
		m.app.Status = "Reload failed: " + err.Error()
		m.statusErr = true
		return
	}
	m.watcher.Reset()
	m.app.Reload(content)
	m.statusErr = false
}
