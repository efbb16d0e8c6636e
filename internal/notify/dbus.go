package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsName = "org.freedesktop.Notifications"
	notificationsPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod      = notificationsName + ".Notify"

	expireTimeoutMs = int32(5000)
)

// DBusSender delivers notifications through org.freedesktop.Notifications.
type DBusSender struct {
	conn    *dbus.Conn
	appName string
}

// NewDBusSender connects to the session bus.
func NewDBusSender(appName string) (*DBusSender, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &DBusSender{conn: conn, appName: appName}, nil
}

// Send implements Sender.
func (s *DBusSender) Send(msg Message) error {
	hints := map[string]dbus.Variant{
		"urgency":   dbus.MakeVariant(msg.Level.Urgency()),
		"transient": dbus.MakeVariant(true),
	}

	obj := s.conn.Object(notificationsName, notificationsPath)
	call := obj.Call(notifyMethod, 0,
		s.appName,
		uint32(0), // replaces_id
		msg.Level.Icon(),
		msg.Summary,
		msg.Body,
		[]string{}, // actions
		hints,
		expireTimeoutMs,
	)
	if call.Err != nil {
		return fmt.Errorf("notify call failed: %w", call.Err)
	}
	return nil
}

// Close closes the bus connection.
func (s *DBusSender) Close() error {
	return s.conn.Close()
}
