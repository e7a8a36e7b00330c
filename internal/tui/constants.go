package tui

import "time"

// Timing for the save/animation/notification choreography. Every timer is
// a fire-once tick; stale ticks are ignored by sequence or id checks,
// never cancelled.
const (
	// LabelUpdateDelay is how long the card label lags a successful save,
	// leaving room for the loading transition. Closing the dialog does not
	// cancel a pending label update.
	LabelUpdateDelay = 150 * time.Millisecond

	// AnimationCooldown gates replays. It is measured from trigger time,
	// not from visual completion.
	AnimationCooldown = 4000 * time.Millisecond

	// FrameInterval advances the decorative animation.
	FrameInterval = 80 * time.Millisecond

	// NotificationVisible is how long a success banner stays fully shown.
	NotificationVisible = 3000 * time.Millisecond

	// NotificationExit is the banner exit transition before removal.
	NotificationExit = 300 * time.Millisecond

	// ErrorVisible is how long the generic fault banner stays shown.
	ErrorVisible = 5000 * time.Millisecond

	// AnnouncementLifetime is how long a live-region entry persists.
	AnnouncementLifetime = 1000 * time.Millisecond

	// ResizeDebounce is the quiet period before particles reposition.
	ResizeDebounce = 250 * time.Millisecond
)

// Layout constants
const (
	editModalWidth  = 56
	editModalHeight = 13
	helpModalWidth  = 60
	helpModalHeight = 18

	// confettiCount is the number of particles scattered around the card.
	confettiCount = 24

	// confettiRows is the height of the confetti band above the card.
	confettiRows = 5
)
