package theme

// Scheme is a palette resolved into semantic roles.
// It is built once per load and never mutated.
type Scheme struct {
	Bg         string `json:"bg" yaml:"bg" toml:"bg"`
	Fg         string `json:"fg" yaml:"fg" toml:"fg"`
	Power1     string `json:"power1" yaml:"power1" toml:"power1"`
	Power2     string `json:"power2" yaml:"power2" toml:"power2"`
	Active     string `json:"active" yaml:"active" toml:"active"`
	Inactive   string `json:"inactive" yaml:"inactive" toml:"inactive"`
	WindowName string `json:"window_name" yaml:"window_name" toml:"window_name"`
	GroupName  string `json:"group_name" yaml:"group_name" toml:"group_name"`
	Butter     string `json:"butter" yaml:"butter" toml:"butter"`

	Wallpaper string `json:"wallpaper,omitempty" yaml:"wallpaper,omitempty" toml:"wallpaper,omitempty"`
	Source    string `json:"source" yaml:"source" toml:"source"`
	Schema    Schema `json:"schema" yaml:"schema" toml:"schema"`
}

// Resolve binds every role to its palette colour.
// roles overrides the schema's default bindings; nil uses the defaults.
func Resolve(p *Palette, roles RoleMap) (*Scheme, error) {
	bindings := DefaultRoles(p.Schema).Merge(roles)

	s := &Scheme{
		Wallpaper: p.Wallpaper,
		Schema:    p.Schema,
	}
	for _, role := range AllRoles {
		slot := bindings[role]
		if slot == "" {
			return nil, &MissingRoleError{Role: role}
		}
		color, ok := p.Slot(slot)
		if !ok {
			return nil, &MissingRoleError{
				Role:       role,
				Slot:       slot,
				Suggestion: closest(slot, p.SlotNames()),
			}
		}
		*s.field(role) = color
	}
	return s, nil
}

func (s *Scheme) field(role Role) *string {
	switch role {
	case RoleBg:
		return &s.Bg
	case RoleFg:
		return &s.Fg
	case RolePower1:
		return &s.Power1
	case RolePower2:
		return &s.Power2
	case RoleActive:
		return &s.Active
	case RoleInactive:
		return &s.Inactive
	case RoleWindowName:
		return &s.WindowName
	case RoleGroupName:
		return &s.GroupName
	case RoleButter:
		return &s.Butter
	default:
		return nil
	}
}

// Color returns the colour bound to a role.
func (s *Scheme) Color(role Role) (string, bool) {
	f := s.field(role)
	if f == nil {
		return "", false
	}
	return *f, true
}

// Binding is a single role-to-colour pair.
type Binding struct {
	Role  Role   `json:"role" yaml:"role" toml:"role"`
	Color string `json:"color" yaml:"color" toml:"color"`
}

// Bindings returns the role colours in AllRoles order.
func (s *Scheme) Bindings() []Binding {
	out := make([]Binding, 0, len(AllRoles))
	for _, r := range AllRoles {
		c, _ := s.Color(r)
		out = append(out, Binding{Role: r, Color: c})
	}
	return out
}
