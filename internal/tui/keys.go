package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleKeyPressSafe wraps key routing with the global fault handler.
// Nothing should reach the recover under normal operation; it exists so
// a fault shows one generic banner instead of tearing the screen down.
func (m *Model) handleKeyPressSafe(msg tea.KeyMsg) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			cmd = m.showFault(fmt.Errorf("recovered panic in key handler: %v", r))
		}
	}()
	return m.handleKeyPress(msg)
}

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	switch msg.String() {
	case "ctrl+c":
		m.Cleanup()
		return tea.Quit
	case "ctrl+e":
		// Opening is a safe no-op while the editor is already up.
		return m.openEditor()
	}

	// Mode-specific handling
	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeEditName:
		return m.handleEditNameKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}

	return nil
}

// handleNormalKeys handles keyboard input on the card view
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.Cleanup()
		return tea.Quit

	case "e":
		return m.openEditor()

	case "r", " ":
		return m.replay()

	case "y":
		return m.copyGreeting()

	case "?":
		m.mode = ModeHelp
	}

	return nil
}

// handleHelpKeys handles keyboard input in the help modal
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = ModeNormal
	}
	return nil
}

// replay restarts the decorative animation. No-op while a cooldown
// window is active or when the animation target is disabled. Once
// started there is no way to abort; the cooldown always elapses.
func (m *Model) replay() tea.Cmd {
	if !m.settings.Animation {
		return nil
	}
	if m.animation.Animating() {
		return nil
	}

	m.animation.Start()
	m.replaySeq++
	seq := m.replaySeq

	return tea.Batch(
		m.announce("Animation started"),
		tea.Tick(AnimationCooldown, func(time.Time) tea.Msg {
			return animationDoneMsg{seq: seq}
		}),
	)
}

// copyGreeting puts the rendered greeting on the system clipboard.
// Clipboard support is environment-dependent; failure degrades silently.
func (m *Model) copyGreeting() tea.Cmd {
	greeting := fmt.Sprintf(m.settings.Message, m.nameState.Name())
	if err := clipboard.WriteAll(greeting); err != nil {
		m.logger.Warn("clipboard unavailable", zap.Error(err))
		return nil
	}
	return tea.Batch(
		m.setStatus("Greeting copied to clipboard"),
		m.announce("Greeting copied to clipboard"),
	)
}
