//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/pui/console"
	"github.com/vcrobe/pui/vdom"
)

const devMode = false

// callComponent invokes c in production mode.
// A panicking component is recovered, logged and turned into an error.
func callComponent(c vdom.Component) (n vdom.Node, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("component panicked during render:", rec)
			err = fmt.Errorf("render: component panicked: %v", rec)
		}
	}()
	return c(vdom.Props{vdom.Children()}), nil
}
