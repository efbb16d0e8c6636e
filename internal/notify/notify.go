// Package notify sends desktop notifications about wooftile's own events,
// such as a palette that failed to reload.
package notify

import (
	"log/slog"
	"sync"
	"time"
)

// Level indicates the severity of a notification.
type Level int

const (
	// LevelInfo is for informational messages (low urgency).
	LevelInfo Level = iota
	// LevelWarning is for warning messages (normal urgency).
	LevelWarning
	// LevelError is for error messages (critical urgency).
	LevelError
)

// Urgency maps a level to the freedesktop urgency byte.
func (l Level) Urgency() byte {
	switch l {
	case LevelInfo:
		return 0
	case LevelError:
		return 2
	default:
		return 1
	}
}

// Icon returns the freedesktop icon name for a level.
func (l Level) Icon() string {
	switch l {
	case LevelInfo:
		return "dialog-information"
	case LevelError:
		return "dialog-error"
	default:
		return "dialog-warning"
	}
}

// Message is a single notification.
type Message struct {
	Summary string
	Body    string
	Level   Level
}

// Sender delivers a message to the desktop.
type Sender interface {
	Send(msg Message) error
}

// Notifier rate-limits messages by key before handing them to a Sender.
type Notifier struct {
	mu     sync.Mutex
	logger *slog.Logger
	sender Sender

	lastNotifyTime map[string]time.Time
	minInterval    time.Duration
	now            func() time.Time

	enabled bool
}

// NewNotifier creates a Notifier. A nil sender disables delivery.
func NewNotifier(sender Sender, minInterval time.Duration, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		logger:         logger,
		sender:         sender,
		lastNotifyTime: make(map[string]time.Time),
		minInterval:    minInterval,
		now:            time.Now,
		enabled:        sender != nil,
	}
}

// SetEnabled enables or disables notifications.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled && n.sender != nil
}

// Notify sends msg unless one with the same key went out within minInterval.
// Returns whether the message was delivered.
func (n *Notifier) Notify(key string, msg Message) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.enabled {
		return false
	}

	now := n.now()
	if last, ok := n.lastNotifyTime[key]; ok && now.Sub(last) < n.minInterval {
		n.logger.Debug("notification rate-limited", "key", key, "summary", msg.Summary)
		return false
	}

	if err := n.sender.Send(msg); err != nil {
		n.logger.Warn("failed to send notification", "key", key, "error", err)
		return false
	}
	n.lastNotifyTime[key] = now
	return true
}

// NotifyPaletteError reports a palette that failed to reload.
func (n *Notifier) NotifyPaletteError(path string, err error) bool {
	return n.Notify("palette-error", Message{
		Summary: "Palette Error",
		Body:    "Failed to reload " + path + ": " + err.Error() + "\nKeeping the previous colours.",
		Level:   LevelWarning,
	})
}

// NotifyPaletteReloaded reports a palette that reloaded after a failure.
func (n *Notifier) NotifyPaletteReloaded(path string) bool {
	return n.Notify("palette-reload", Message{
		Summary: "Palette Reloaded",
		Body:    path + " has been reloaded.",
		Level:   LevelInfo,
	})
}
