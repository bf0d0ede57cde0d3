//go:build js

package console

import (
	"fmt"
	"syscall/js"
)

// Browser builds forward to the page's console object, so diagnostics show
// up in the developer tools with their severity.

func Log(args ...any) {
	call("log", args)
}

func Warn(args ...any) {
	call("warn", args)
}

func Error(args ...any) {
	call("error", args)
}

func call(method string, args []any) {
	values := make([]any, len(args))
	for i, a := range args {
		// js.ValueOf only accepts JS-compatible types.
		switch a.(type) {
		case nil, bool, int, float64, string, js.Value:
			values[i] = a
		default:
			values[i] = fmt.Sprint(a)
		}
	}
	js.Global().Get("console").Call(method, values...)
}
