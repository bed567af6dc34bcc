/*
 * cypherast
 *
 * cypher-lint is the peripheral CLI collaborator that consumes the
 * cypherast library to parse and print Cypher source from standard input.
 */
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/krotik/cypherast/ast"
	"github.com/krotik/cypherast/parser"
	"github.com/krotik/cypherast/printer"
)

// version is the tool and library version reported by --version. It is
// not tied to any VCS tag - the library's AST node kind numbering is the
// part of the public contract that must not be renumbered, not this
// string.
const version = "cypherast 0.1.0"
const (
	exitSuccess    = 0
	exitNoResult   = 1
	exitUsageError = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		printAST    bool
		colorize    bool
		outputWidth int
	)

	exitCode := exitSuccess

	root := &cobra.Command{
		Use:           "cypher-lint",
		Short:         "Parse and print Cypher source read from standard input",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := lint(cmd, stdin, stdout, stderr, printAST, colorize, outputWidth)
			exitCode = code
			return err
		},
	}

	// cobra treats nil args as "use os.Args", which is wrong for callers
	// (and tests) that mean "no arguments".
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("{{.Version}}\n")

	root.Flags().BoolVarP(&printAST, "ast", "a", false, "print AST to stdout")
	root.Flags().BoolVar(&colorize, "colorize", false, "force ANSI colorization regardless of TTY")
	root.Flags().IntVar(&outputWidth, "output-width", 0, "soft width limit (0: detect from terminal)")

	if err := root.Execute(); err != nil {
		if exitCode == exitSuccess {
			exitCode = exitUsageError
		}
		fmt.Fprintln(stderr, err)
	}

	return exitCode
}

func lint(cmd *cobra.Command, stdin io.Reader, stdout, stderr io.Writer, printAST, forceColor bool, outputWidth int) (int, error) {
	src, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintln(stderr, "cypher-lint: reading standard input:", err)
		return exitUsageError, nil
	}

	width, colorize := terminalDefaults(stdout, outputWidth, forceColor)

	scheme := printer.NoOpScheme()
	if colorize {
		scheme = printer.ANSIScheme()
	}

	cfg := ast.Config{}
	cfg.SetErrorColorization(scheme)

	result, parseErr := parser.ParseWithConfig("<stdin>", string(src), cfg, nil)

	if len(result.Errors()) > 0 {
		if err := printer.PrintDiagnostics(stderr, result.Errors(), scheme); err != nil {
			return exitUsageError, nil
		}
		fmt.Fprintln(stderr)
	}

	if printAST {
		if err := printer.Print(stdout, result, width, scheme); err != nil {
			fmt.Fprintln(stderr, "cypher-lint: writing AST:", err)
			return exitUsageError, nil
		}
	}

	if parseErr == parser.ErrNoDirectives {
		return exitNoResult, nil
	}

	if parseErr != nil {
		fmt.Fprintln(stderr, "cypher-lint:", parseErr)
		return exitUsageError, nil
	}

	return exitSuccess, nil
}

// terminalDefaults resolves the effective print width and colorization
// decision from the --output-width/--colorize flags, falling back to
// golang.org/x/term's TTY and size detection when either flag was left
// at its zero value.
func terminalDefaults(stdout io.Writer, requestedWidth int, forceColor bool) (width int, colorize bool) {
	width = requestedWidth
	colorize = forceColor

	f, ok := stdout.(*os.File)
	if !ok {
		if width <= 0 {
			width = printer.DefaultWidth
		}
		return width, colorize
	}

	fd := int(f.Fd())
	isTTY := term.IsTerminal(fd)

	if !forceColor {
		colorize = isTTY
	}

	if width <= 0 {
		if isTTY {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				width = w
			}
		}
		if width <= 0 {
			width = printer.DefaultWidth
		}
	}

	return width, colorize
}
