package parser

import (
	"regexp"

	"github.com/TheGrizzlyDev/switchboard/internal/pkg/switches"
)

// shape is the syntactic form of a single pending token. Shapes are
// mutually exclusive and tested in the priority order classify uses.
type shape int

const (
	shapePlain shape = iota
	shapeCluster
	shapeEquals
	shapeShortNumeric
	shapeLong
	shapeShort
)

var (
	longRe     = regexp.MustCompile(`^--[\w-]+$`)
	shortRe    = regexp.MustCompile(`^-[A-Za-z]$`)
	clusterRe  = regexp.MustCompile(`^-[A-Za-z]{2,}$`)
	equalsRe   = regexp.MustCompile(`^(--[\w-]+|-[A-Za-z])=(.*)$`)
	shortNumRe = regexp.MustCompile(`^(-[A-Za-z])(\d*\.\d+|\d+)$`)
	numericRe  = regexp.MustCompile(`^(\d*\.\d+|\d+)$`)
)

// classify decides the shape of a token without consuming it. A short
// cluster like -xyz only counts as a cluster when at least one of its
// single-letter forms resolves against the set; otherwise it falls
// through to a plain value. Bare "-" and anything not starting with a
// dash are plain values.
func classify(t Token, set *switches.Set) shape {
	if t.typed {
		return shapePlain
	}
	tok := t.text
	if clusterRe.MatchString(tok) {
		for _, c := range tok[1:] {
			if set.Known("-" + string(c)) {
				return shapeCluster
			}
		}
		return shapePlain
	}
	switch {
	case equalsRe.MatchString(tok):
		return shapeEquals
	case shortNumRe.MatchString(tok):
		return shapeShortNumeric
	case longRe.MatchString(tok):
		return shapeLong
	case shortRe.MatchString(tok):
		return shapeShort
	}
	return shapePlain
}

// switchShaped reports whether the token would be taken for a switch in
// the current specification. Used to stop greedy consumers and to
// reject switches standing in for values.
func switchShaped(t Token, set *switches.Set) bool {
	return classify(t, set) != shapePlain
}
