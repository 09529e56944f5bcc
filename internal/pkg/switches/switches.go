package switches

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the closed set of value kinds a switch can consume.
type Kind int

const (
	// Default infers boolean when no value follows, string otherwise.
	Default Kind = iota
	Boolean
	String
	Numeric
	Array
	Hash
)

func (k Kind) String() string {
	switch k {
	case Default:
		return "default"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Numeric:
		return "numeric"
	case Array:
		return "array"
	case Hash:
		return "hash"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a declaration keyword to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "default":
		return Default, nil
	case "boolean":
		return Boolean, nil
	case "string":
		return String, nil
	case "numeric":
		return Numeric, nil
	case "array":
		return Array, nil
	case "hash":
		return Hash, nil
	}
	return Default, fmt.Errorf("unknown switch type %q", s)
}

// Switch declares a single recognized switch or positional argument.
// A Set of switches is built once and shared read-only across parses.
type Switch struct {
	// CanonicalName is the primary switch token, e.g. "--level". For
	// positional arguments it is the bare argument name, e.g. "bucket".
	CanonicalName string

	// Aliases are the short forms, e.g. "-l". Ignored for positionals.
	Aliases []string

	Kind     Kind
	Required bool

	// Positional marks an argument consumed in declaration order whenever
	// a non-switch token is pending, rather than matched by token shape.
	Positional bool

	// DefaultValue fills the result when no corresponding token appears.
	DefaultValue any
}

// HumanName is the key the switch is recorded under in the result map:
// the canonical name without leading dashes, dashes turned to underscores.
func (s Switch) HumanName() string {
	return strings.ReplaceAll(strings.TrimLeft(s.CanonicalName, "-"), "-", "_")
}

var negatedRe = regexp.MustCompile(`^--(?:no|skip)-([\w-]+)$`)

// Set is an immutable switch specification. The alias lookup table is
// built once here; aliases that collide with another switch's canonical
// name are dropped (canonical forms win).
type Set struct {
	switches    []Switch
	byToken     map[string]int
	byHuman     map[string]int
	positionals []int
}

func NewSet(sw []Switch) (*Set, error) {
	set := &Set{
		switches: append([]Switch(nil), sw...),
		byToken:  make(map[string]int, len(sw)),
		byHuman:  make(map[string]int, len(sw)),
	}

	for i, s := range set.switches {
		if s.CanonicalName == "" {
			return nil, fmt.Errorf("switch %d: empty canonical name", i)
		}
		if s.Positional {
			if strings.HasPrefix(s.CanonicalName, "-") {
				return nil, fmt.Errorf("positional argument %q must not start with a dash", s.CanonicalName)
			}
		} else if !strings.HasPrefix(s.CanonicalName, "-") {
			return nil, fmt.Errorf("switch %q must start with a dash", s.CanonicalName)
		}
		human := s.HumanName()
		if prev, ok := set.byHuman[human]; ok {
			return nil, fmt.Errorf("switches %q and %q map to the same name %q",
				set.switches[prev].CanonicalName, s.CanonicalName, human)
		}
		set.byHuman[human] = i
		if s.Positional {
			set.positionals = append(set.positionals, i)
			continue
		}
		set.byToken[s.CanonicalName] = i
	}

	// Aliases are installed after every canonical name so that a
	// colliding alias loses regardless of declaration order.
	for i, s := range set.switches {
		if s.Positional {
			continue
		}
		for _, a := range s.Aliases {
			if _, taken := set.byToken[a]; taken {
				continue
			}
			set.byToken[a] = i
		}
	}
	return set, nil
}

// Resolve maps a switch token to its declaration. Aliases resolve to
// their canonical switch. A token of the form --no-x or --skip-x that is
// not itself declared falls back to --x with negated reported true.
func (s *Set) Resolve(token string) (Switch, bool, bool) {
	if i, ok := s.byToken[token]; ok {
		return s.switches[i], false, true
	}
	if m := negatedRe.FindStringSubmatch(token); m != nil {
		if i, ok := s.byToken["--"+m[1]]; ok {
			return s.switches[i], true, true
		}
	}
	return Switch{}, false, false
}

// Known reports whether the token resolves to a declared switch,
// directly, through an alias, or through a negated form.
func (s *Set) Known(token string) bool {
	_, _, ok := s.Resolve(token)
	return ok
}

// Switches returns every declaration in order.
func (s *Set) Switches() []Switch {
	return append([]Switch(nil), s.switches...)
}

// Positionals returns the positional declarations in declaration order.
func (s *Set) Positionals() []Switch {
	out := make([]Switch, 0, len(s.positionals))
	for _, i := range s.positionals {
		out = append(out, s.switches[i])
	}
	return out
}

// Lookup finds a declaration by its human name.
func (s *Set) Lookup(human string) (Switch, bool) {
	if i, ok := s.byHuman[human]; ok {
		return s.switches[i], true
	}
	return Switch{}, false
}
