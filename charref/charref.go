// Package charref implements lookup of HTML named character references, as
// consumed by the HTML tokenizer's character-reference state
// (https://html.spec.whatwg.org/multipage/parsing.html#named-character-reference-state).
package charref

import "sort"

// flatEntry is one name -> code point(s) mapping actually searched at
// lookup time. Each row of table expands to one or two flatEntry rows (the
// semicolon-terminated form, and, for the legacy subset, the bare form).
type flatEntry struct {
	name   string
	first  int32
	second int32
}

var flat []flatEntry

func init() {
	for _, src := range [][]entry{table, tableSupplement} {
		for _, e := range src {
			flat = append(flat, flatEntry{e.name + ";", e.first, e.second})
			if e.noSemiAlias {
				flat = append(flat, flatEntry{e.name, e.first, e.second})
			}
		}
	}
	sort.Slice(flat, func(i, j int) bool { return flat[i].name < flat[j].name })
}

// Match is the result of a successful Lookup.
type Match struct {
	// Name is the matched reference name, exactly as it appeared after
	// '&' (including the trailing ';' if the matched form has one).
	Name string
	// First is the first decoded code point.
	First int32
	// Second is the second decoded code point, or 0 if the reference
	// decodes to a single code point.
	Second int32
}

// Lookup finds the longest named character reference that is a prefix of
// input (input should begin right after the '&'). It returns (Match{},
// false) if no entry in the table is a prefix of input.
//
// Matching is by binary search for each candidate length, longest first, as
// suggested by spec.md's "sorted constant tables ... searched with binary
// search" design note: a handful of probes instead of a full table scan.
func Lookup(input []byte) (Match, bool) {
	limit := maxNameLen
	if len(input) < limit {
		limit = len(input)
	}
	for n := limit; n >= 1; n-- {
		candidate := string(input[:n])
		i := sort.Search(len(flat), func(i int) bool { return flat[i].name >= candidate })
		if i < len(flat) && flat[i].name == candidate {
			return Match{Name: candidate, First: flat[i].first, Second: flat[i].second}, true
		}
	}
	return Match{}, false
}
