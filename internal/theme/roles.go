package theme

import (
	"maps"
	"sort"
)

// Role is a semantic colour name used by configuration code instead of a
// raw palette slot.
type Role string

const (
	RoleBg         Role = "bg"
	RoleFg         Role = "fg"
	RolePower1     Role = "power1"
	RolePower2     Role = "power2"
	RoleActive     Role = "active"
	RoleInactive   Role = "inactive"
	RoleWindowName Role = "window_name"
	RoleGroupName  Role = "group_name"
	RoleButter     Role = "butter"
)

// AllRoles lists every role in resolution order.
var AllRoles = []Role{
	RoleBg,
	RoleFg,
	RolePower1,
	RolePower2,
	RoleActive,
	RoleInactive,
	RoleWindowName,
	RoleGroupName,
	RoleButter,
}

// IsRole reports whether name is a known role.
func IsRole(name string) bool {
	for _, r := range AllRoles {
		if string(r) == name {
			return true
		}
	}
	return false
}

// RoleMap binds roles to palette slot names.
type RoleMap map[Role]string

// DefaultRoles returns the role bindings for a palette schema.
// Flat palettes name their slots after the roles themselves.
func DefaultRoles(schema Schema) RoleMap {
	if schema == SchemaFlat {
		m := make(RoleMap, len(AllRoles))
		for _, r := range AllRoles {
			m[r] = string(r)
		}
		return m
	}
	return RoleMap{
		RoleBg:         "background",
		RoleFg:         "foreground",
		RolePower1:     "color1",
		RolePower2:     "color4",
		RoleActive:     "color13",
		RoleInactive:   "color8",
		RoleWindowName: "color6",
		RoleGroupName:  "color7",
		RoleButter:     "color11",
	}
}

// RoleMapFromStrings converts user-supplied overrides, rejecting unknown roles.
func RoleMapFromStrings(overrides map[string]string) (RoleMap, error) {
	// Sorted so the first reported error is stable.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := make(RoleMap, len(overrides))
	for _, k := range keys {
		role, err := ParseRole(k)
		if err != nil {
			return nil, err
		}
		m[role] = overrides[k]
	}
	return m, nil
}

// ParseRole validates a role name.
func ParseRole(name string) (Role, error) {
	if !IsRole(name) {
		names := make([]string, 0, len(AllRoles))
		for _, r := range AllRoles {
			names = append(names, string(r))
		}
		return "", &UnknownRoleError{Name: name, Suggestion: closest(name, names)}
	}
	return Role(name), nil
}

// Merge returns a copy of m with overrides applied on top.
func (m RoleMap) Merge(overrides RoleMap) RoleMap {
	out := maps.Clone(m)
	if out == nil {
		out = make(RoleMap, len(overrides))
	}
	for r, slot := range overrides {
		out[r] = slot
	}
	return out
}
