// Package fonts maps short font aliases to CSS font-family stacks.
//
// Signatures are usually opened on other machines, so a single family name
// often falls back to the viewer's default serif. An alias expands to a stack
// of common faces with a generic family last. Names that are not aliases are
// passed through unchanged.
package fonts

import (
	"sort"
	"strings"
)

// Handwriting is the alias for script-style signature fonts.
const Handwriting = "handwriting"

// HandwritingStack is the font-family stack used for [Handwriting].
const HandwritingStack = `'xkcd Script', 'Comic Sans MS', 'Bradley Hand', 'Segoe Script', cursive`

var stacks = map[string]string{
	Handwriting: HandwritingStack,
	"serif":     `Georgia, 'Times New Roman', Times, serif`,
	"sans":      `Arial, Helvetica, 'Liberation Sans', sans-serif`,
	"mono":      `'Courier New', Courier, 'Liberation Mono', monospace`,
	"brush":     `'Brush Script MT', 'Segoe Script', 'Apple Chancery', cursive`,
}

// Resolve returns the stack for an alias (case-insensitive), or family
// unchanged if it is not one.
func Resolve(family string) string {
	if s, ok := stacks[strings.ToLower(strings.TrimSpace(family))]; ok {
		return s
	}
	return family
}

// Aliases returns the known alias names in sorted order.
func Aliases() []string {
	names := make([]string, 0, len(stacks))
	for name := range stacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
