package compiler

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// eventName extracts the DOM event name from an "on"-prefixed attribute:
// "onClick" -> "click", "onmouseover" -> "mouseover". The prefix match is
// case-insensitive. ok is false when name has no "on" prefix or nothing after it.
func eventName(name string) (event string, ok bool) {
	if len(name) <= 2 || !strings.EqualFold(name[:2], "on") {
		return "", false
	}
	rest := name[2:]
	r, size := utf8.DecodeRuneInString(rest)
	return string(unicode.ToLower(r)) + rest[size:], true
}

// literalString formats a scalar attribute value.
func literalString(v any) string {
	return fmt.Sprint(v)
}
