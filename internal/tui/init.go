package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/studiowebux/birthdaycard/internal/config"
	"github.com/studiowebux/birthdaycard/internal/logging"
	"github.com/studiowebux/birthdaycard/internal/prefs"
)

// New creates a new TUI model. The recipient name is read from the store
// once here; a blank or missing value falls back to the default name.
func New(store prefs.Store, settings config.Settings, logger *zap.Logger, version string) *Model {
	stored, err := store.Get(prefs.KeyRecipientName)
	if err != nil {
		logger.Warn("failed to read saved name", zap.Error(err))
		stored = ""
	}

	nameState := NewNameState(stored)

	input := textinput.New()
	input.Placeholder = "Recipient name"
	input.Prompt = "> "
	input.Width = 30

	m := &Model{
		store:         store,
		logger:        logger,
		settings:      settings,
		mode:          ModeNormal,
		version:       version,
		nameState:     nameState,
		displayName:   nameState.Name(),
		nameInput:     input,
		saveEnabled:   true,
		animation:     NewAnimationState(time.Now().UnixNano()),
		notifications: NewNotificationState(),
		announcer:     NewAnnouncerState(),
	}

	return m
}

// Run starts the TUI. config.Initialize must have been called first.
func Run(version string) error {
	logger, err := logging.New(config.LogPath, false)
	if err != nil {
		// No log file is not fatal; run with a disabled logger.
		logger = zap.NewNop()
	}
	defer logger.Sync()

	settings, err := config.LoadSettings()
	if err != nil {
		logger.Warn("failed to load settings, using defaults", zap.Error(err))
	}
	applyTheme(settings.Theme)

	store, err := prefs.Open(config.DatabasePath)
	if err != nil {
		logger.Warn("preferences unavailable, changes will not persist", zap.Error(err))
		store = prefs.NewMemory()
	}

	m := New(store, settings, logger, version)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// applyTheme forces the background assumption when the user overrides
// the auto-detected color scheme.
func applyTheme(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}
