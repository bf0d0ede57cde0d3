//go:build !js

// Command pui compiles a YAML tree file into a binding template, a model
// description or static HTML.
//
//	pui [-config pui.toml] [-format template|model|html] [-dev] [-strict] [-o out] file.yaml
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vcrobe/pui/compiler"
	"github.com/vcrobe/pui/console"
	"github.com/vcrobe/pui/static"
	"github.com/vcrobe/pui/treefile"
)

// config mirrors the command line flags. Flags given explicitly win over
// the file.
type config struct {
	Format string `toml:"format"`
	Dev    bool   `toml:"dev"`
	Strict bool   `toml:"strict"`
	Output string `toml:"output"`
}

var errUsage = errors.New("usage: pui [flags] file.yaml")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status: 0 on success, 1 on
// load or usage errors, 2 when -strict is set and errors were reported.
func run(args []string, stdout, stderr io.Writer) int {
	console.SetOutput(stderr)
	defer console.SetOutput(nil)

	cfg, input, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			console.Error(err)
		}
		return 1
	}

	f, err := os.Open(input)
	if err != nil {
		console.Error(err)
		return 1
	}
	defer f.Close()

	// Builder diagnostics are raised while loading, so the counting reporter
	// is installed first.
	var errorCount int
	restore := console.SetReporter(console.ReporterFunc(func(d console.Diagnostic) {
		if d.Severity == console.SeverityError {
			errorCount++
		}
		console.LogDiagnostic(d)
	}))
	defer restore()

	doc, err := treefile.Load(f, treefile.HandlerFunc(loggingHandler))
	if err != nil {
		console.Error(fmt.Sprintf("%s: %v", input, err))
		return 1
	}

	out, err := render(doc, cfg)
	if err != nil {
		console.Error(err)
		return 1
	}

	if err := writeOutput(cfg.Output, stdout, out+"\n"); err != nil {
		console.Error(err)
		return 1
	}

	if cfg.Strict && errorCount > 0 {
		return 2
	}
	return 0
}

// createFile opens the -o target.
var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// writeOutput writes s to stdout, or to the file at path when path is set.
// A file that fails to close counts as a failed write.
func writeOutput(path string, stdout io.Writer, s string) error {
	if path == "" {
		_, err := io.WriteString(stdout, s)
		return err
	}
	f, err := createFile(path)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func parseArgs(args []string, stderr io.Writer) (config, string, error) {
	cfg := config{Format: "template"}

	fs := flag.NewFlagSet("pui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Read defaults from this TOML file.")
	format := fs.String("format", cfg.Format, "Output format: template, model or html.")
	dev := fs.Bool("dev", false, "Enable development mode (unknown tag warnings).")
	strict := fs.Bool("strict", false, "Exit with status 2 when errors are reported.")
	output := fs.String("o", "", "Write output to this file instead of stdout.")
	if err := fs.Parse(args); err != nil {
		return cfg, "", err
	}
	if fs.NArg() != 1 {
		return cfg, "", errUsage
	}

	if *configPath != "" {
		md, err := toml.DecodeFile(*configPath, &cfg)
		if err != nil {
			return cfg, "", fmt.Errorf("config %s: %w", *configPath, err)
		}
		for _, key := range md.Undecoded() {
			console.Warn(fmt.Sprintf("config %s: unknown key %s", *configPath, key))
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "dev":
			cfg.Dev = *dev
		case "strict":
			cfg.Strict = *strict
		case "o":
			cfg.Output = *output
		}
	})
	return cfg, fs.Arg(0), nil
}

func render(doc *treefile.Document, cfg config) (string, error) {
	switch cfg.Format {
	case "template":
		return compiler.Compile(doc.Root, compiler.WithDevMode(cfg.Dev)).Template, nil
	case "model":
		m := compiler.Compile(doc.Root, compiler.WithDevMode(cfg.Dev))
		b, err := json.MarshalIndent(map[string]any{
			"template": m.Template,
			"bindings": m.Describe(),
		}, "", "  ")
		return string(b), err
	case "html":
		return static.RenderHTML(doc.Root), nil
	}
	return "", fmt.Errorf("unknown format %q", cfg.Format)
}

// loggingHandler stands in for every handler named in a tree file.
func loggingHandler(name string) (any, bool) {
	return func(event any) {
		console.Log(fmt.Sprintf("handler %s: %v", name, event))
	}, true
}
