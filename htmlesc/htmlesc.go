// Package htmlesc escapes strings for the three contexts trees are written
// into: quoted attribute values, static text content, and text inside a
// binding template.
package htmlesc

import (
	"strings"

	"golang.org/x/net/html"
)

var attrReplacer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
	"\n", "&#10;",
)

var childReplacer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#39;",
	"<", "&lt;",
	">", "&gt;",
	"\n", "<br />",
)

// Attr escapes s for use inside a double-quoted attribute value.
func Attr(s string) string {
	return attrReplacer.Replace(s)
}

// Child escapes s for static text content. Newlines become <br />.
func Child(s string) string {
	return childReplacer.Replace(s)
}

// Template escapes text placed inside a binding template. Newlines are kept
// as-is: the rendering engine owns line handling there.
func Template(s string) string {
	return html.EscapeString(s)
}
