package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TheGrizzlyDev/switchboard/internal/pkg/switches"
)

// consume produces the typed value for a resolved switch or positional
// argument, taking zero or more tokens from the front of the stream.
// written is the token the switch appeared as, used in error messages
// and to detect negated boolean forms.
func (s *state) consume(sw switches.Switch, written string, negated bool) (any, error) {
	switch sw.Kind {
	case switches.Boolean:
		return s.consumeBoolean(negated), nil
	case switches.String:
		if err := s.checkValue(written); err != nil {
			return nil, err
		}
		return s.popFront().String(), nil
	case switches.Numeric:
		return s.consumeNumeric(written)
	case switches.Array:
		return s.consumeArray(), nil
	case switches.Hash:
		return s.consumeHash(), nil
	case switches.Default:
		if len(s.pending) > 0 && classify(s.pending[0], s.set) == shapePlain {
			head := s.popFront()
			if head.typed {
				return head.value, nil
			}
			return head.text, nil
		}
		return s.consumeBoolean(negated), nil
	}
	return nil, fmt.Errorf("unhandled switch kind %v for %q", sw.Kind, sw.CanonicalName)
}

// checkValue guards kinds that always take an explicit value: the
// stream must not be exhausted and the next token must not itself be a
// switch.
func (s *state) checkValue(written string) error {
	if len(s.pending) == 0 {
		return requiredMissingf("no value provided for required argument '%s'", written)
	}
	if switchShaped(s.pending[0], s.set) {
		return malformedf("cannot pass switch '%s' as an argument to '%s'", s.pending[0].text, written)
	}
	return nil
}

// consumeBoolean takes an explicit true/false literal when one is next;
// otherwise the bare switch reads true, or false when it was written in
// its negated form.
func (s *state) consumeBoolean(negated bool) bool {
	if len(s.pending) > 0 {
		head := s.pending[0]
		if head.typed {
			if b, ok := head.value.(bool); ok {
				s.popFront()
				return b
			}
		} else if head.text == "true" || head.text == "false" {
			s.popFront()
			return head.text == "true"
		}
	}
	return !negated
}

func (s *state) consumeNumeric(written string) (any, error) {
	if err := s.checkValue(written); err != nil {
		return nil, err
	}
	head := s.popFront()
	if head.typed {
		switch n := head.value.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case float64:
			return n, nil
		}
		return nil, malformedf("expected numeric value for '%s'", written)
	}
	if !numericRe.MatchString(head.text) {
		return nil, malformedf("expected numeric value for '%s'", written)
	}
	if strings.ContainsRune(head.text, '.') {
		f, err := strconv.ParseFloat(head.text, 64)
		if err != nil {
			return nil, malformedf("expected numeric value for '%s'", written)
		}
		return f, nil
	}
	n, err := strconv.ParseInt(head.text, 10, 64)
	if err != nil {
		return nil, malformedf("expected numeric value for '%s'", written)
	}
	return n, nil
}

// consumeArray collects plain values greedily until the stream is
// exhausted or the next token is switch-shaped. The result may be
// empty. A pre-typed sequence is taken whole.
func (s *state) consumeArray() []string {
	if len(s.pending) > 0 && s.pending[0].typed {
		if seq, ok := s.pending[0].value.([]string); ok {
			s.popFront()
			return append([]string(nil), seq...)
		}
	}
	out := []string{}
	for len(s.pending) > 0 && !switchShaped(s.pending[0], s.set) {
		out = append(out, s.popFront().String())
	}
	return out
}

// consumeHash collects key:value tokens greedily, splitting on the
// first colon, until a token without a colon, a switch, or the end of
// the stream. A repeated key keeps the last write. A pre-typed mapping
// is taken whole.
func (s *state) consumeHash() map[string]string {
	if len(s.pending) > 0 && s.pending[0].typed {
		if m, ok := s.pending[0].value.(map[string]string); ok {
			s.popFront()
			out := make(map[string]string, len(m))
			for k, v := range m {
				out[k] = v
			}
			return out
		}
	}
	out := map[string]string{}
	for len(s.pending) > 0 {
		head := s.pending[0]
		if head.typed || switchShaped(head, s.set) || !strings.ContainsRune(head.text, ':') {
			break
		}
		s.popFront()
		k, v, _ := strings.Cut(head.text, ":")
		out[k] = v
	}
	return out
}
