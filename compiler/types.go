package compiler

import (
	"github.com/vcrobe/pui/console"
)

// compileOptions holds compiler-wide options. Nested component models are
// compiled with the same options as their parent.
type compileOptions struct {
	DevMode  bool             // Report questionable but valid input (unknown tags)
	Reporter console.Reporter // Receives diagnostics; nil means console.Default()
}

// Option configures a Compile call.
type Option func(*compileOptions)

// WithDevMode enables development diagnostics.
func WithDevMode(enabled bool) Option {
	return func(o *compileOptions) { o.DevMode = enabled }
}

// WithReporter routes diagnostics to r instead of the console.
func WithReporter(r console.Reporter) Option {
	return func(o *compileOptions) { o.Reporter = r }
}
