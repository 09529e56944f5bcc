package parser

import (
	"strings"

	"github.com/TheGrizzlyDev/switchboard/internal/pkg/switches"
)

// Result is the outcome of one successful parse: recognized options
// keyed by human name, positional values in declaration order, and the
// leftover tokens that matched neither.
type Result struct {
	Options   map[string]any
	Arguments []any
	Trailing  []string

	order []string
}

// OptionNames returns the option keys in the order they were
// recognized.
func (r *Result) OptionNames() []string {
	return append([]string(nil), r.order...)
}

// state is the working set of a single parse call. It is created fresh
// per call and never shared; the switch Set it reads is immutable.
type state struct {
	set *switches.Set

	// pending is a deque: splits produced by classification are pushed
	// back to the front, ahead of everything else, so a split token is
	// seen by the very next classification step.
	pending []Token

	result      *Result
	unsatisfied map[string]struct{}
	positionals []switches.Switch
}

// Parse interprets argv against the specification. The parse is
// all-or-nothing: on error the partial result is discarded.
func Parse(set *switches.Set, argv []string) (*Result, error) {
	return ParseTokens(set, Texts(argv))
}

// ParseTokens is Parse for embedding callers that pre-supply typed
// values alongside raw text tokens.
func ParseTokens(set *switches.Set, tokens []Token) (*Result, error) {
	s := &state{
		set:     set,
		pending: append([]Token(nil), tokens...),
		result: &Result{
			Options: map[string]any{},
		},
		unsatisfied: map[string]struct{}{},
		positionals: set.Positionals(),
	}
	for _, sw := range set.Switches() {
		if sw.Required {
			s.unsatisfied[sw.HumanName()] = struct{}{}
		}
	}

	if err := s.run(); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.fillDefaults()
	return s.result, nil
}

func (s *state) run() error {
	for len(s.pending) > 0 {
		head := s.pending[0]
		switch classify(head, s.set) {
		case shapeCluster:
			// -xyz becomes -x -y -z, re-injected at the front so the
			// next classification step sees -x first.
			s.popFront()
			letters := head.text[1:]
			split := make([]Token, 0, len(letters))
			for _, c := range letters {
				split = append(split, Text("-"+string(c)))
			}
			s.pushFront(split...)

		case shapeEquals:
			s.popFront()
			m := equalsRe.FindStringSubmatch(head.text)
			s.pushFront(Text(m[1]), Text(m[2]))

		case shapeShortNumeric:
			s.popFront()
			m := shortNumRe.FindStringSubmatch(head.text)
			s.pushFront(Text(m[1]), Text(m[2]))

		case shapeLong, shapeShort:
			s.popFront()
			sw, negated, ok := s.set.Resolve(head.text)
			if !ok {
				// Unrecognized switches are kept visible in the
				// trailing list rather than dropped. They never consume
				// a value.
				s.result.Trailing = append(s.result.Trailing, head.text)
				continue
			}
			v, err := s.consume(sw, head.text, negated)
			if err != nil {
				return err
			}
			s.record(sw, v)

		default:
			if len(s.positionals) == 0 {
				s.popFront()
				s.result.Trailing = append(s.result.Trailing, head.String())
				continue
			}
			sw := s.positionals[0]
			s.positionals = s.positionals[1:]
			v, err := s.consume(sw, sw.CanonicalName, false)
			if err != nil {
				return err
			}
			s.result.Arguments = append(s.result.Arguments, v)
			s.record(sw, v)
		}
	}
	return nil
}

func (s *state) popFront() Token {
	t := s.pending[0]
	s.pending = s.pending[1:]
	return t
}

func (s *state) pushFront(tokens ...Token) {
	s.pending = append(append([]Token(nil), tokens...), s.pending...)
}

func (s *state) record(sw switches.Switch, v any) {
	human := sw.HumanName()
	if _, seen := s.result.Options[human]; !seen {
		s.result.order = append(s.result.order, human)
	}
	s.result.Options[human] = v
	delete(s.unsatisfied, human)
}

// validate runs once the stream is exhausted and reports every still
// unsatisfied required switch and positional argument in one aggregate
// failure, switches by canonical form and positionals by human name.
func (s *state) validate() error {
	if len(s.unsatisfied) == 0 {
		return nil
	}
	var names []string
	for _, sw := range s.set.Switches() {
		if _, missing := s.unsatisfied[sw.HumanName()]; !missing {
			continue
		}
		if sw.Positional {
			names = append(names, "'"+sw.HumanName()+"'")
			continue
		}
		names = append(names, "'"+sw.CanonicalName+"'")
	}
	return requiredMissingf("no value provided for required arguments %s", strings.Join(names, ", "))
}

// fillDefaults completes the result for switches that never saw a
// token: declared defaults win, and booleans without one read false.
// Unassigned positionals with a default land in both collections, in
// declaration order.
func (s *state) fillDefaults() {
	for _, sw := range s.positionals {
		if sw.DefaultValue == nil {
			continue
		}
		s.result.Arguments = append(s.result.Arguments, sw.DefaultValue)
		s.record(sw, sw.DefaultValue)
	}
	for _, sw := range s.set.Switches() {
		if sw.Positional {
			continue
		}
		if _, set := s.result.Options[sw.HumanName()]; set {
			continue
		}
		switch {
		case sw.DefaultValue != nil:
			s.record(sw, sw.DefaultValue)
		case sw.Kind == switches.Boolean:
			s.record(sw, false)
		}
	}
}
