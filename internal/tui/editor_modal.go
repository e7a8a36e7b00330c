package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/birthdaycard/internal/card"
	"github.com/studiowebux/birthdaycard/internal/prefs"
)

// openEditor opens the edit-name modal populated with the current name
// and moves focus into the input. Safe to call repeatedly: while the
// modal is already open it does nothing, so a half-typed draft survives.
func (m *Model) openEditor() tea.Cmd {
	if m.mode == ModeEditName {
		return nil
	}

	m.mode = ModeEditName
	m.nameInput.SetValue(m.nameState.Name())
	m.nameInput.CursorEnd()
	m.nameInput.Focus()
	m.editFocus = editFocusInput
	m.inlineError = ""
	m.saveEnabled = true

	return tea.Batch(textinput.Blink, m.announce("Edit name dialog opened"))
}

// closeEditor hides the modal and returns focus to the card. Safe to
// call when already closed. A pending label update is not cancelled.
func (m *Model) closeEditor() tea.Cmd {
	if m.mode != ModeEditName {
		return nil
	}

	m.mode = ModeNormal
	m.nameInput.Blur()
	m.inlineError = ""

	return m.announce("Edit name dialog closed")
}

// saveName re-validates the draft and commits it. On a failed validation
// the inline error shows, the modal stays open and nothing changes.
func (m *Model) saveName() tea.Cmd {
	v, trimmed := card.ValidateName(m.nameInput.Value())
	if v != card.Valid {
		m.inlineError = card.ValidationMessage(v)
		m.saveEnabled = false
		return nil
	}

	m.nameState.SetName(trimmed)

	// Persistence failures are swallowed: logged, never surfaced.
	if err := m.store.Set(prefs.KeyRecipientName, trimmed); err != nil {
		m.logger.Warn("failed to persist recipient name", zap.Error(err))
	}

	// The visible label updates after a fixed delay so the transition on
	// the card can play. The tick carries its own name and always fires.
	labelCmd := tea.Tick(LabelUpdateDelay, func(time.Time) tea.Msg {
		return labelUpdateMsg{name: trimmed}
	})

	closeCmd := m.closeEditor()

	return tea.Batch(
		labelCmd,
		closeCmd,
		m.setStatus("Name updated"),
		m.showSuccess(fmt.Sprintf("Name updated to %s", trimmed)),
		m.announce(fmt.Sprintf("Name changed to %s", trimmed)),
	)
}

// handleEditNameKeys handles keyboard input in the edit-name modal.
// Tab and shift+tab cycle focus across input, Save and Cancel with
// wrap-around; focus never leaves the modal while it is open.
func (m *Model) handleEditNameKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.closeEditor()

	case "tab":
		m.cycleEditFocus(1)
		return nil

	case "shift+tab":
		m.cycleEditFocus(-1)
		return nil

	case "enter":
		if m.editFocus == editFocusCancel {
			return m.closeEditor()
		}
		return m.saveName()

	default:
		if m.editFocus != editFocusInput {
			return nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.revalidateDraft()
		return cmd
	}
}

// cycleEditFocus moves modal focus by delta with wrap-around.
func (m *Model) cycleEditFocus(delta int) {
	m.editFocus = (m.editFocus + delta + 3) % 3
	if m.editFocus == editFocusInput {
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
	}
}

// revalidateDraft runs live validation on each edit, toggling the inline
// error and the save action.
func (m *Model) revalidateDraft() {
	v, _ := card.ValidateName(m.nameInput.Value())
	if v == card.Valid {
		m.inlineError = ""
		m.saveEnabled = true
		return
	}
	m.inlineError = card.ValidationMessage(v)
	m.saveEnabled = false
}

// renderEditNameModal renders the edit-name modal
func (m *Model) renderEditNameModal() string {
	runes := len([]rune(m.nameInput.Value()))
	counter := fmt.Sprintf("%d/%d", runes, card.MaxNameLength)
	counterStyle := styleSubtle
	if runes > card.MaxNameLength {
		counterStyle = styleError
	}

	content := fmt.Sprintf("Recipient name:\n\n%s  %s",
		m.nameInput.View(), counterStyle.Render(counter))

	if m.inlineError != "" {
		content += "\n\n" + styleError.Render(m.inlineError)
	} else {
		content += "\n\n "
	}

	content += "\n\n" + m.renderEditButtons()

	footer := "[Enter] save [Tab] switch [ESC] cancel"
	return m.renderModalWithFooter("Edit Name", content, footer, editModalWidth, editModalHeight)
}

// renderEditButtons renders the Save and Cancel buttons with the focused
// one highlighted. A disabled Save is rendered subtle.
func (m *Model) renderEditButtons() string {
	save := "[ Save ]"
	cancel := "[ Cancel ]"

	saveStyle := styleButton
	if !m.saveEnabled {
		saveStyle = styleSubtle
	}
	if m.editFocus == editFocusSave {
		saveStyle = styleButtonFocused
	}

	cancelStyle := styleButton
	if m.editFocus == editFocusCancel {
		cancelStyle = styleButtonFocused
	}

	return saveStyle.Render(save) + "  " + cancelStyle.Render(cancel)
}
