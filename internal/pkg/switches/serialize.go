package switches

import (
	"fmt"
	"sort"
	"strconv"
)

// ToSwitches renders an options mapping back into switch-syntax tokens,
// for handing a reconstructed command line to a subprocess. true renders
// the bare switch, false and nil are omitted entirely, sequences and
// mappings repeat their elements after the switch, and any other scalar
// follows the switch as its literal text. Keys are emitted in sorted
// order so the output is deterministic.
func ToSwitches(opts map[string]any) []string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var argv []string
	for _, k := range keys {
		emitSwitch(&argv, canonicalize(k), opts[k])
	}
	return argv
}

// canonicalize reverses HumanName: underscores back to dashes, with the
// long-switch prefix restored.
func canonicalize(human string) string {
	out := []byte("--")
	for i := 0; i < len(human); i++ {
		if human[i] == '_' {
			out = append(out, '-')
			continue
		}
		out = append(out, human[i])
	}
	return string(out)
}

func emitSwitch(argv *[]string, name string, v any) {
	switch v := v.(type) {
	case nil:
	case bool:
		if v {
			*argv = append(*argv, name)
		}
	case []string:
		*argv = append(*argv, name)
		*argv = append(*argv, v...)
	case []any:
		*argv = append(*argv, name)
		for _, e := range v {
			*argv = append(*argv, scalarText(e))
		}
	case map[string]string:
		*argv = append(*argv, name)
		pairs := make([]string, 0, len(v))
		for pk, pv := range v {
			pairs = append(pairs, pk+":"+pv)
		}
		sort.Strings(pairs)
		*argv = append(*argv, pairs...)
	default:
		*argv = append(*argv, name, scalarText(v))
	}
}

func scalarText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
