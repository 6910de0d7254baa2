// Command bindcheck validates a binding declaration file against the Go
// packages that define the bound types.
//
// Usage:
//
//	bindcheck [-file bindings.yaml] [-dump] [-v] [-C dir] [packages...]
//
// Without package patterns, the packages named by the file's source_type
// and target_type entries are loaded. Diagnostics are written to stderr;
// the exit status is 1 when any error was reported and 2 on bad usage.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"propbind/diagnostic"
	"propbind/internal/analyze"
	"propbind/internal/mapping"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bindcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	file := fs.String("file", "bindings.yaml", "binding declaration file (.yaml, .yml or .toml)")
	dump := fs.Bool("dump", false, "print the parsed declaration file")
	verbose := fs.Bool("v", false, "also report info and debug diagnostics")
	dir := fs.String("C", "", "directory to load packages from")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	logger := newLogger(stderr, *verbose)

	f, err := mapping.LoadFile(*file)
	if err != nil {
		logger.Error().Err(err).Msg("load declaration file")

		return exitFailure
	}

	if *dump {
		spew.Fdump(stdout, f)
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = declaredPackages(f)
	}

	var graph *analyze.TypeGraph

	if len(patterns) > 0 {
		graph, err = analyze.NewAnalyzer(*dir).LoadPackages(patterns...)
		if err != nil {
			logger.Error().Err(err).Strs("packages", patterns).Msg("load packages")

			return exitFailure
		}
	}

	res := mapping.Validate(f, graph)
	res.Emit(diagnostic.NewZerolog(logger))

	fmt.Fprintf(stdout, "%s: %d bindings, %d errors, %d warnings\n",
		*file, len(f.Bindings), len(res.Errors), len(res.Warnings))

	if res.HasErrors() {
		return exitFailure
	}

	return exitOK
}

func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "bindcheck").Logger()
}

// declaredPackages returns the import paths of every type the file names.
func declaredPackages(f *mapping.File) []string {
	var out []string

	for _, d := range f.Bindings {
		for _, typeName := range []string{d.SourceType, d.TargetType} {
			if typeName == "" {
				continue
			}

			id, err := analyze.ParseTypeID(typeName)
			if err != nil {
				// reported by Validate
				continue
			}

			if !slices.Contains(out, id.PkgPath) {
				out = append(out, id.PkgPath)
			}
		}
	}

	slices.Sort(out)

	return out
}
