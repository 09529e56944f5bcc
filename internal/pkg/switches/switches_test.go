package switches

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHumanName(t *testing.T) {
	cases := map[string]string{
		"--level":     "level",
		"--dry-run":   "dry_run",
		"--sig-proxy": "sig_proxy",
		"-l":          "l",
		"bucket":      "bucket",
	}
	for canonical, want := range cases {
		require.Equal(t, want, Switch{CanonicalName: canonical}.HumanName())
	}
}

func TestNewSetRejectsDuplicateHumanNames(t *testing.T) {
	_, err := NewSet([]Switch{
		{CanonicalName: "--dry-run"},
		{CanonicalName: "--dry_run"},
	})
	require.Error(t, err, "two switches mapping to the same human name must be rejected")
}

func TestNewSetRejectsBadShapes(t *testing.T) {
	_, err := NewSet([]Switch{{CanonicalName: ""}})
	require.Error(t, err)

	_, err = NewSet([]Switch{{CanonicalName: "level"}})
	require.Error(t, err, "a non-positional switch must start with a dash")

	_, err = NewSet([]Switch{{CanonicalName: "--bucket", Positional: true}})
	require.Error(t, err, "a positional argument must not start with a dash")
}

func TestResolveAliases(t *testing.T) {
	set, err := NewSet([]Switch{
		{CanonicalName: "--force", Aliases: []string{"-f"}},
		{CanonicalName: "-f", Aliases: []string{"-g"}},
	})
	require.NoError(t, err)

	// "-f" is a canonical name, so --force's colliding alias is dropped
	sw, negated, ok := set.Resolve("-f")
	require.True(t, ok)
	require.False(t, negated)
	require.Equal(t, "-f", sw.CanonicalName)

	sw, _, ok = set.Resolve("-g")
	require.True(t, ok)
	require.Equal(t, "-f", sw.CanonicalName)

	sw, _, ok = set.Resolve("--force")
	require.True(t, ok)
	require.Equal(t, "--force", sw.CanonicalName)

	_, _, ok = set.Resolve("-x")
	require.False(t, ok)
}

func TestResolveNegatedForms(t *testing.T) {
	set, err := NewSet([]Switch{
		{CanonicalName: "--force", Kind: Boolean},
		{CanonicalName: "--no-cache", Kind: Boolean},
	})
	require.NoError(t, err)

	sw, negated, ok := set.Resolve("--no-force")
	require.True(t, ok)
	require.True(t, negated)
	require.Equal(t, "--force", sw.CanonicalName)

	sw, negated, ok = set.Resolve("--skip-force")
	require.True(t, ok)
	require.True(t, negated)
	require.Equal(t, "--force", sw.CanonicalName)

	// a declared --no-x wins over the negation fallback
	sw, negated, ok = set.Resolve("--no-cache")
	require.True(t, ok)
	require.False(t, negated)
	require.Equal(t, "--no-cache", sw.CanonicalName)

	_, _, ok = set.Resolve("--no-such")
	require.False(t, ok)
}

func TestPositionalsAreNeverResolvedByToken(t *testing.T) {
	set, err := NewSet([]Switch{
		{CanonicalName: "bucket", Kind: String, Positional: true},
		{CanonicalName: "--force", Kind: Boolean},
	})
	require.NoError(t, err)

	require.False(t, set.Known("bucket"))
	require.Equal(t, []Switch{{CanonicalName: "bucket", Kind: String, Positional: true}}, set.Positionals())

	sw, ok := set.Lookup("bucket")
	require.True(t, ok)
	require.True(t, sw.Positional)
}

func TestParseKind(t *testing.T) {
	for keyword, want := range map[string]Kind{
		"":        Default,
		"default": Default,
		"boolean": Boolean,
		"string":  String,
		"numeric": Numeric,
		"array":   Array,
		"hash":    Hash,
	} {
		kind, err := ParseKind(keyword)
		require.NoError(t, err)
		require.Equal(t, want, kind)
	}

	_, err := ParseKind("integer")
	require.Error(t, err)
}
