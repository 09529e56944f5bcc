// swproxy re-parses a command line against a specification document and
// hands the rebuilt switch syntax to a delegate binary, exiting with
// the delegate's exit code.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/TheGrizzlyDev/switchboard/internal/pkg/switches"
	"github.com/TheGrizzlyDev/switchboard/internal/pkg/wrapper"
)

func main() {
	specPath := flag.String("spec", "", "path to the switch specification document")
	delegate := flag.String("delegate", "", "path to the delegate binary")
	flag.Parse()

	if *specPath == "" || *delegate == "" {
		fmt.Fprintln(os.Stderr, "usage: swproxy -spec <document> -delegate <binary> [tokens...]")
		os.Exit(1)
	}

	set, err := switches.LoadDocument(*specPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load specification: %v\n", err)
		os.Exit(1)
	}

	w := &wrapper.Wrapper{Set: set, Delegate: *delegate}
	if err := w.Run(context.Background(), flag.Args()); err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			os.Exit(ee.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "run error: %v\n", err)
		os.Exit(1)
	}
}
