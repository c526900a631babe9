// Package interpreter renders text with embedded control sequences.
//
// A sequence is matched against a fixed list of grammars, tried in Priority
// order. The last grammar, KindDefault, accepts any single character so every
// escape is consumed by exactly one kind.
package interpreter

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

type Kind uint8

const (
	// Select Graphic Rendition: ESC [ n;...;n m
	KindMode Kind = iota
	// Cursor position: ESC [ row;col H
	KindMove
	// Erase in display: ESC [ n J
	KindClear
	// A single DEC special graphics character between two character set
	// designations: ESC ( 0 q ESC ( B
	KindGraphics
	// Anything else: one character printed literally.
	KindDefault
)

// Priority is the order in which the grammars are tried.
var Priority = [...]Kind{KindMode, KindMove, KindClear, KindGraphics, KindDefault}

var grammars = [...]*regexp.Regexp{
	KindMode:     regexp.MustCompile(`^\x1b\[(?:[0-9]+;?)+m`),
	KindMove:     regexp.MustCompile(`^\x1b\[([0-9]+);([0-9]+)H`),
	KindClear:    regexp.MustCompile(`^\x1b\[[0-9]J`),
	KindGraphics: regexp.MustCompile(`^\x1b[()][AB012].\x1b[()][AB012]`),
}

func (k Kind) String() string {
	switch k {
	case KindMode:
		return "Mode"
	case KindMove:
		return "Move"
	case KindClear:
		return "Clear"
	case KindGraphics:
		return "Graphics"
	case KindDefault:
		return "Default"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Match reports whether text starts with a sequence of kind k and how many
// bytes it spans.
func (k Kind) Match(text string) (n int, ok bool) {
	if text == "" {
		return 0, false
	}
	if k == KindDefault {
		_, n = utf8.DecodeRuneInString(text)
		return n, true
	}
	if int(k) >= len(grammars) {
		return 0, false
	}
	loc := grammars[k].FindStringIndex(text)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

// Select returns the first kind in Priority that matches the start of text.
// Any non-empty text matches at least KindDefault.
func Select(text string) (Kind, int) {
	for _, k := range Priority {
		if n, ok := k.Match(text); ok {
			return k, n
		}
	}
	return KindDefault, 0
}
