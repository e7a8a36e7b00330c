package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/birthdaycard/internal/config"
	"github.com/studiowebux/birthdaycard/internal/prefs"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditName
	ModeHelp
)

// Focusable controls inside the edit modal, in tab order.
const (
	editFocusInput = iota
	editFocusSave
	editFocusCancel
)

// Model represents the TUI state
type Model struct {
	// Core state
	store    prefs.Store
	logger   *zap.Logger
	settings config.Settings
	mode     Mode
	version  string

	// Name state
	nameState *NameState

	// displayName is the label shown on the card. It lags a successful
	// save by LabelUpdateDelay, so it can differ from nameState briefly.
	displayName string

	// Edit modal state
	nameInput   textinput.Model
	editFocus   int
	inlineError string
	saveEnabled bool

	// Animation state
	animation *AnimationState
	replaySeq int

	// Notifications and live region
	notifications *NotificationState
	announcer     *AnnouncerState

	// Card success glow, tied to the success banner window.
	cardGlow bool
	glowSeq  int

	// UI state
	width     int
	height    int
	statusMsg string
	statusSeq int
	resizeSeq int
}

// Init starts the frame ticker when the animation is enabled.
func (m *Model) Init() tea.Cmd {
	if !m.settings.Animation {
		return nil
	}
	return frameTick()
}

// Cleanup closes the preferences store and flushes the log.
func (m *Model) Cleanup() {
	if m.store != nil {
		if err := m.store.Close(); err != nil {
			m.logger.Warn("error closing preferences store", zap.Error(err))
		}
	}
	if m.logger != nil {
		_ = m.logger.Sync()
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPressSafe(msg)

	// Mouse events - capture and discard so terminal scrolling doesn't
	// move the card out of view. Navigation is keyboard-only.
	case tea.MouseMsg:

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Layout adapts immediately; particle repositioning waits for a
		// quiet period (latest-wins sequence, stale ticks ignored).
		m.resizeSeq++
		seq := m.resizeSeq
		cmd = tea.Tick(ResizeDebounce, func(time.Time) tea.Msg {
			return resizeSettledMsg{seq: seq}
		})

	case frameMsg:
		if m.settings.Animation {
			m.animation.Advance()
			cmd = frameTick()
		}

	case labelUpdateMsg:
		// Always applied: the delay is not cancellable, and each message
		// carries the name it was scheduled with.
		m.displayName = msg.name

	case animationDoneMsg:
		if msg.seq == m.replaySeq && m.animation.Animating() {
			m.animation.Stop()
			cmd = m.announce("Animation completed")
		}

	case bannerExitMsg:
		m.notifications.MarkExiting(msg.id)
		id := msg.id
		cmd = tea.Tick(NotificationExit, func(time.Time) tea.Msg {
			return bannerRemoveMsg{id: id}
		})

	case bannerRemoveMsg:
		m.notifications.Remove(msg.id)

	case glowOffMsg:
		if msg.seq == m.glowSeq {
			m.cardGlow = false
		}

	case announcementExpiredMsg:
		m.announcer.Expire(msg.id)

	case resizeSettledMsg:
		if msg.seq == m.resizeSeq {
			m.animation.Reposition(m.confettiWidth(), confettiRows)
		}

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}

	case faultMsg:
		cmd = m.showFault(msg.err)
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeEditName:
		return m.renderEditNameModal()
	case ModeHelp:
		return m.renderHelpModal()
	default:
		return m.renderMain()
	}
}

// Custom message types
type frameMsg time.Time

type labelUpdateMsg struct {
	name string
}

type animationDoneMsg struct {
	seq int
}

type bannerExitMsg struct {
	id int
}

type bannerRemoveMsg struct {
	id int
}

type glowOffMsg struct {
	seq int
}

type announcementExpiredMsg struct {
	id int
}

type resizeSettledMsg struct {
	seq int
}

type clearStatusMsg struct {
	seq int
}

type faultMsg struct {
	err error
}

func frameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// setStatus puts a message in the footer and schedules its clear. A newer
// status supersedes the pending clear of an older one.
func (m *Model) setStatus(message string) tea.Cmd {
	m.statusMsg = message
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(NotificationVisible, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// announce pushes a message into the live region and schedules its expiry.
func (m *Model) announce(text string) tea.Cmd {
	id := m.announcer.Add(text)
	return tea.Tick(AnnouncementLifetime, func(time.Time) tea.Msg {
		return announcementExpiredMsg{id: id}
	})
}

// showSuccess creates an independently-timed success banner and applies
// the transient card glow for the same visible window.
func (m *Model) showSuccess(message string) tea.Cmd {
	id := m.notifications.Add(bannerSuccess, message)
	m.cardGlow = true
	m.glowSeq++
	glowSeq := m.glowSeq
	return tea.Batch(
		tea.Tick(NotificationVisible, func(time.Time) tea.Msg {
			return bannerExitMsg{id: id}
		}),
		tea.Tick(NotificationVisible, func(time.Time) tea.Msg {
			return glowOffMsg{seq: glowSeq}
		}),
	)
}

// showFault is the last-resort path for unhandled faults: one generic
// banner, the underlying error logged, no recovery attempted.
func (m *Model) showFault(err error) tea.Cmd {
	m.logger.Error("unhandled fault", zap.Error(err))
	id := m.notifications.Add(bannerError, "Something went wrong. Please restart the app.")
	return tea.Batch(
		tea.Tick(ErrorVisible, func(time.Time) tea.Msg {
			return bannerExitMsg{id: id}
		}),
		m.announce("An error occurred"),
	)
}

// confettiWidth is the horizontal span particles scatter across.
func (m *Model) confettiWidth() int {
	if m.width > 2 {
		return m.width - 2
	}
	return m.width
}
