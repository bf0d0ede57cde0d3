package vdom

import (
	"sort"
	"strings"

	"golang.org/x/net/html/atom"
)

// voidTags are the HTML elements that cannot have children and are always
// written in self-closed form.
var voidTags = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// IsTagSelfClosing reports whether tag is a void HTML element.
func IsTagSelfClosing(tag string) bool {
	return voidTags[tag]
}

// htmlElements are the element names IsKnownTag accepts and SuggestTags
// draws from.
var htmlElements = strings.Fields(`
	a abbr address area article aside audio b base bdi bdo blockquote body br
	button canvas caption cite code col colgroup data datalist dd del details
	dfn dialog div dl dt em embed fieldset figcaption figure footer form h1 h2
	h3 h4 h5 h6 head header hgroup hr html i iframe img input ins kbd label
	legend li link main map mark menu meta meter nav noscript object ol
	optgroup option output p param picture pre progress q rp rt ruby s samp
	script section select slot small source span strong style sub summary sup
	svg table tbody td template textarea tfoot th thead time title tr track u
	ul var video wbr
`)

// knownTags holds the atoms of htmlElements. atom.Lookup also knows
// attribute names, so a bare Lookup is not enough.
var knownTags = func() map[atom.Atom]bool {
	m := make(map[atom.Atom]bool, len(htmlElements))
	for _, name := range htmlElements {
		if a := atom.Lookup([]byte(name)); a != 0 {
			m[a] = true
		}
	}
	return m
}()

// IsKnownTag reports whether tag is a standard HTML element name. Custom
// element names (containing a hyphen) are never known tags.
func IsKnownTag(tag string) bool {
	if IsCustomTag(tag) {
		return false
	}
	a := atom.Lookup([]byte(tag))
	return a != 0 && knownTags[a]
}

// SuggestTags returns up to three known element names within two edits of
// tag, closest first.
func SuggestTags(tag string) []string {
	const (
		threshold      = 2
		maxSuggestions = 3
	)

	type suggestion struct {
		name     string
		distance int
	}

	var suggestions []suggestion
	typed := strings.ToLower(tag)
	for _, name := range htmlElements {
		if d := levenshteinDistance(typed, name); d <= threshold {
			suggestions = append(suggestions, suggestion{name, d})
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].distance < suggestions[j].distance
	})

	var result []string
	for i := 0; i < len(suggestions) && i < maxSuggestions; i++ {
		result = append(result, suggestions[i].name)
	}
	return result
}

// levenshteinDistance is the number of single byte insertions, deletions
// or substitutions turning a into b.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	// Only the previous row is needed.
	prevRow := make([]int, len(a)+1)
	currRow := make([]int, len(a)+1)
	for j := range prevRow {
		prevRow[j] = j
	}

	for i := 1; i <= len(b); i++ {
		currRow[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			currRow[j] = min(
				currRow[j-1]+1,    // insertion
				prevRow[j]+1,      // deletion
				prevRow[j-1]+cost, // substitution
			)
		}
		prevRow, currRow = currRow, prevRow
	}
	return prevRow[len(a)]
}
