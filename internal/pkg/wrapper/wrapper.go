package wrapper

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/TheGrizzlyDev/switchboard/internal/pkg/parser"
	"github.com/TheGrizzlyDev/switchboard/internal/pkg/switches"
)

// Wrapper re-parses a command line against a specification, lets the
// caller rewrite the recognized options, and rebuilds an argv for a
// delegate binary. Positional values and trailing tokens pass through
// after the rebuilt switches.
type Wrapper struct {
	Set      *switches.Set
	Delegate string

	// Rewrite, when non-nil, may mutate the recognized options before
	// they are serialized back into switch syntax.
	Rewrite func(opts map[string]any) error
}

// Argv parses argv and returns the command line to hand to the
// delegate.
func (w *Wrapper) Argv(argv []string) ([]string, error) {
	if w.Set == nil {
		return nil, fmt.Errorf("wrapper: nil specification")
	}
	res, err := parser.Parse(w.Set, argv)
	if err != nil {
		return nil, err
	}
	if w.Rewrite != nil {
		if err := w.Rewrite(res.Options); err != nil {
			return nil, fmt.Errorf("rewrite options: %w", err)
		}
	}

	// Positional values are recorded in the options map as well; they
	// must not be re-serialized as switches.
	opts := make(map[string]any, len(res.Options))
	for k, v := range res.Options {
		opts[k] = v
	}
	for _, p := range w.Set.Positionals() {
		delete(opts, p.HumanName())
	}

	out := switches.ToSwitches(opts)
	for _, a := range res.Arguments {
		out = append(out, fmt.Sprint(a))
	}
	out = append(out, res.Trailing...)
	return out, nil
}

// Command builds an exec.Cmd for the delegate with the rebuilt argv.
func (w *Wrapper) Command(ctx context.Context, argv []string) (*exec.Cmd, error) {
	if w.Delegate == "" {
		return nil, fmt.Errorf("wrapper: empty delegate path")
	}
	rebuilt, err := w.Argv(argv)
	if err != nil {
		return nil, err
	}
	return exec.CommandContext(ctx, w.Delegate, rebuilt...), nil
}

// Run executes the delegate with inherited stdio and reports its exit
// code through *exec.ExitError.
func (w *Wrapper) Run(ctx context.Context, argv []string) error {
	cmd, err := w.Command(ctx, argv)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
