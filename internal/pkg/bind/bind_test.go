package bind

import (
	"reflect"
	"testing"

	"github.com/TheGrizzlyDev/switchboard/internal/pkg/parser"
	"github.com/TheGrizzlyDev/switchboard/internal/pkg/switches"
)

type commonOpts struct {
	Force bool `switch:"force"`
}

type deployCmd struct {
	commonOpts
	Name       string            `switch:"name"`
	Level      int               `switch:"level"`
	Ratio      float64           `switch:"ratio"`
	Include    []string          `switch:"include"`
	Attributes map[string]string `switch:"attributes"`
	Bucket     string            `switch:"bucket"`
	Rest       []string          `switch_trailing:"true"`
	Ignored    string
}

func deploySet(t *testing.T) *switches.Set {
	t.Helper()
	set, err := switches.NewSet([]switches.Switch{
		{CanonicalName: "--force", Kind: switches.Boolean},
		{CanonicalName: "--name", Kind: switches.String},
		{CanonicalName: "--level", Kind: switches.Numeric},
		{CanonicalName: "--ratio", Kind: switches.Numeric},
		{CanonicalName: "--include", Kind: switches.Array},
		{CanonicalName: "--attributes", Kind: switches.Hash},
		{CanonicalName: "bucket", Kind: switches.String, Positional: true},
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return set
}

func TestBind(t *testing.T) {
	t.Parallel()

	res, err := parser.Parse(deploySet(t), []string{
		"--force",
		"--name", "thing",
		"--level", "3",
		"--ratio", "2.5",
		"--include", "a", "b",
		"--attributes", "k:v",
		"assets",
		"extra",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var cmd deployCmd
	if err := Bind(res, &cmd); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	want := deployCmd{
		commonOpts: commonOpts{Force: true},
		Name:       "thing",
		Level:      3,
		Ratio:      2.5,
		Include:    []string{"a", "b"},
		Attributes: map[string]string{"k": "v"},
		Bucket:     "assets",
		Rest:       []string{"extra"},
	}
	if !reflect.DeepEqual(cmd, want) {
		t.Fatalf("bound command mismatch:\n got: %#v\nwant: %#v", cmd, want)
	}
}

func TestBindLeavesAbsentOptionsZero(t *testing.T) {
	t.Parallel()

	res, err := parser.Parse(deploySet(t), []string{"assets"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var cmd deployCmd
	if err := Bind(res, &cmd); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if cmd.Name != "" || cmd.Level != 0 || cmd.Include != nil {
		t.Fatalf("absent options should leave fields zero: %#v", cmd)
	}
	if cmd.Force {
		t.Fatal("absent boolean should bind false")
	}
}

func TestBindTypeMismatch(t *testing.T) {
	t.Parallel()

	res, err := parser.Parse(deploySet(t), []string{"--name", "thing"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var bad struct {
		Name int `switch:"name"`
	}
	if err := Bind(res, &bad); err == nil {
		t.Fatal("binding a string option to an int field should fail")
	}
}

func TestBindOverflow(t *testing.T) {
	t.Parallel()

	set, err := switches.NewSet([]switches.Switch{
		{CanonicalName: "--level", Kind: switches.Numeric},
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	res, err := parser.Parse(set, []string{"--level", "300"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var bad struct {
		Level int8 `switch:"level"`
	}
	if err := Bind(res, &bad); err == nil {
		t.Fatal("300 should overflow an int8 field")
	}
}

func TestBindRejectsNonStructDst(t *testing.T) {
	t.Parallel()

	res := &parser.Result{Options: map[string]any{}}
	if err := Bind(res, 42); err == nil {
		t.Fatal("non-pointer dst should fail")
	}
	var s string
	if err := Bind(res, &s); err == nil {
		t.Fatal("pointer to non-struct dst should fail")
	}
}
