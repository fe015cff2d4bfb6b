// Package catalog enumerates the closed value sets used by the footprint
// wizard: unit systems, package kinds, pad shapes, pin #1 locations and
// footprint status levels. Every set maps its canonical text to a typed value
// through a table built once at init; matching is exact.
package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownUnit         = errors.New("catalog: unknown unit")
	ErrUnknownPackageKind  = errors.New("catalog: unknown package kind")
	ErrUnknownPadShape     = errors.New("catalog: unknown pad shape")
	ErrUnknownPin1Location = errors.New("catalog: unknown pin #1 location")
	ErrUnknownStatus       = errors.New("catalog: unknown status")
)

// index builds the text -> value table for an enumeration whose names are
// listed by ordinal. Index 0 is the "unknown" slot and is never matched.
func index[T ~int](names []string) map[string]T {
	m := make(map[string]T, len(names))
	for i, name := range names {
		if i == 0 {
			continue
		}
		m[name] = T(i)
	}
	return m
}

func resolve[T ~int](table map[string]T, text string, sentinel error) (T, error) {
	if v, ok := table[text]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", sentinel, text)
}

func name[T ~int](names []string, v T) string {
	if int(v) < 0 || int(v) >= len(names) {
		return ""
	}
	return names[v]
}
