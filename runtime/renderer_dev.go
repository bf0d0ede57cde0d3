//go:build dev

package runtime

import "github.com/vcrobe/pui/vdom"

// devMode turns on the compiler's development diagnostics.
const devMode = true

// callComponent invokes c in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func callComponent(c vdom.Component) (vdom.Node, error) {
	return c(vdom.Props{vdom.Children()}), nil
}
