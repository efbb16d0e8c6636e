package theme

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// ConfigLoadError reports a palette that could not be read or parsed.
type ConfigLoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *ConfigLoadError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		return "palette load failed: " + msg + ": " + e.Err.Error()
	}
	return "palette load failed: " + msg
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// MissingRoleError reports a role whose palette slot is not defined.
type MissingRoleError struct {
	Role       Role
	Slot       string
	Suggestion string // Closest defined slot, if any
}

func (e *MissingRoleError) Error() string {
	if e.Slot == "" {
		return fmt.Sprintf("role %q is not bound to any palette slot", e.Role)
	}
	msg := fmt.Sprintf("role %q references undefined palette slot %q", e.Role, e.Slot)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// UnknownRoleError reports a role override for a role that does not exist.
type UnknownRoleError struct {
	Name       string
	Suggestion string
}

func (e *UnknownRoleError) Error() string {
	msg := fmt.Sprintf("unknown role %q", e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// closest returns the best fuzzy match for want among candidates.
func closest(want string, candidates []string) string {
	if want == "" || len(candidates) == 0 {
		return ""
	}
	matches := fuzzy.Find(want, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
