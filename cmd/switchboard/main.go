package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/TheGrizzlyDev/switchboard/internal/pkg/parser"
	"github.com/TheGrizzlyDev/switchboard/internal/pkg/switches"
	"github.com/fatih/color"
)

var errOut = color.New(color.FgRed)

func fatalf(format string, args ...any) {
	errOut.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	specPath := flag.String("spec", "", "path to the switch specification document (.json, .yaml or .yml)")
	flag.Parse()

	if *specPath == "" {
		fatalf("usage: switchboard -spec <document> [tokens...]")
	}

	set, err := switches.LoadDocument(*specPath)
	if err != nil {
		fatalf("load specification: %v", err)
	}

	res, err := parser.Parse(set, flag.Args())
	if err != nil {
		fatalf("parse error: %v", err)
	}

	out := struct {
		Options   map[string]any `json:"options"`
		Arguments []any          `json:"arguments"`
		Trailing  []string       `json:"trailing"`
	}{res.Options, res.Arguments, res.Trailing}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
}
