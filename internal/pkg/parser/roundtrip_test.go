package parser

import (
	"testing"

	"github.com/TheGrizzlyDev/switchboard/internal/pkg/switches"
	"github.com/google/go-cmp/cmp"
)

// Reverse-serializing a parsed options mapping and re-parsing it
// against the same specification must yield an equivalent mapping,
// modulo the false/nil entries ToSwitches omits (the re-parse restores
// false for absent booleans).
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	set := testSet(t, []switches.Switch{
		{CanonicalName: "--force", Aliases: []string{"-f"}, Kind: switches.Boolean},
		{CanonicalName: "--dry-run", Kind: switches.Boolean},
		{CanonicalName: "--name", Kind: switches.String},
		{CanonicalName: "--level", Kind: switches.Numeric},
		{CanonicalName: "--ratio", Kind: switches.Numeric},
		{CanonicalName: "--include", Kind: switches.Array},
		{CanonicalName: "--attributes", Kind: switches.Hash},
	})

	argv := []string{
		"--force",
		"--name", "thing",
		"--level", "3",
		"--ratio", "2.5",
		"--include", "a", "b",
		"--attributes", "k:v", "x:y",
	}

	first := mustParse(t, set, argv)
	second := mustParse(t, set, switches.ToSwitches(first.Options))

	if diff := cmp.Diff(first.Options, second.Options); diff != "" {
		t.Errorf("round trip changed the options (-first +second):\n%s", diff)
	}
	if len(second.Trailing) != 0 {
		t.Errorf("round trip produced trailing tokens: %v", second.Trailing)
	}
}

func TestRoundTripOmitsFalseAndNil(t *testing.T) {
	t.Parallel()

	set := testSet(t, []switches.Switch{
		{CanonicalName: "--force", Kind: switches.Boolean},
		{CanonicalName: "--quiet", Kind: switches.Boolean},
	})

	res := mustParse(t, set, []string{"--force", "--no-quiet"})
	argv := switches.ToSwitches(res.Options)
	if diff := cmp.Diff([]string{"--force"}, argv); diff != "" {
		t.Errorf("serialized argv mismatch (-want +got):\n%s", diff)
	}

	again := mustParse(t, set, argv)
	if diff := cmp.Diff(res.Options, again.Options); diff != "" {
		t.Errorf("false entries should survive the round trip as defaults (-first +second):\n%s", diff)
	}
}
