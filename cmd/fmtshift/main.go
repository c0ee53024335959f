// Package main provides the CLI entry point for fmtshift.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/cobra"

	"github.com/adreamer1074/fmtshift/pkg/fmtshift"
	"github.com/adreamer1074/fmtshift/pkg/fmtshift/writer"
	"github.com/adreamer1074/fmtshift/pkg/logging"
)

const version = "0.2"

const (
	codeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	codeSourceNotFound    = "SOURCE_NOT_FOUND"
	codeIOFailure         = "IO_FAILURE"
	codeConversionFailed  = "CONVERSION_FAILED"
)

type cliOptions struct {
	from        string
	to          string
	pretty      bool
	frontMatter bool
	logLevel    string
	logFormat   string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	var converter *fmtshift.Converter
	cmd := newRootCommand(&converter)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		reportError(stderr, err, converter)
		return 1
	}
	return 0
}

func newRootCommand(converter **fmtshift.Converter) *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "fmtshift -f <source> -t <destination>",
		Short: "Convert documents between Excel and Markdown",
		Long: `fmtshift converts documents between spreadsheet and markdown formats.

Examples:
  fmtshift -f test.xlsx -t test.md      # Excel -> Markdown
  fmtshift -f test.md -t test.xlsx      # Markdown -> Excel
  fmtshift -f test.md -t test.html      # Markdown -> HTML`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConverter(opts)
			if err != nil {
				return err
			}
			*converter = c
			return run(cmd, c, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.from, "from", "f", "", "Source file")
	rootCmd.Flags().StringVarP(&opts.to, "to", "t", "", "Destination file")
	rootCmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&opts.frontMatter, "front-matter", false, "Read and write title and metadata as YAML front matter in markdown")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "error", "Log level: trace, debug, info, warn, error")
	rootCmd.Flags().StringVar(&opts.logFormat, "log-format", "console", "Log format: console, json, pretty")
	_ = rootCmd.MarkFlagRequired("from")
	_ = rootCmd.MarkFlagRequired("to")

	return rootCmd
}

// newConverter builds the default converter and registers the output-only
// HTML and JSON writers.
func newConverter(opts *cliOptions) (*fmtshift.Converter, error) {
	logger, err := logging.New("fmtshift", logging.Config{
		Level:  opts.logLevel,
		Format: opts.logFormat,
	})
	if err != nil {
		return nil, err
	}

	c := fmtshift.New(fmtshift.Options{
		Logger:          logger,
		FrontMatter:     opts.frontMatter,
		ReadFrontMatter: opts.frontMatter,
	})

	htmlWriter := writer.NewHTMLWriter()
	c.RegisterWriter(".html", htmlWriter)
	c.RegisterWriter(".htm", htmlWriter)
	c.RegisterWriter(".json", writer.NewJSONWriter(opts.pretty))

	return c, nil
}

func run(cmd *cobra.Command, c *fmtshift.Converter, opts *cliOptions) error {
	if err := c.Convert(opts.from, opts.to); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ converted: %s → %s\n", filepath.Base(opts.from), filepath.Base(opts.to))
	return nil
}

// classify maps a conversion error onto a go-errors category and text code.
func classify(err error) *goerrors.Error {
	switch {
	case errors.Is(err, fmtshift.ErrUnsupportedFormat):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "unsupported format").
			WithTextCode(codeUnsupportedFormat)
	case errors.Is(err, fmtshift.ErrSourceNotFound):
		return goerrors.Wrap(err, goerrors.CategoryNotFound, "source file not found").
			WithTextCode(codeSourceNotFound)
	case errors.Is(err, fmtshift.ErrIO):
		return goerrors.Wrap(err, goerrors.CategoryInternal, "read or write failed").
			WithTextCode(codeIOFailure)
	default:
		return goerrors.Wrap(err, goerrors.CategoryInternal, "conversion failed").
			WithTextCode(codeConversionFailed)
	}
}

// reportError prints err and, for unsupported formats, the supported
// extension lists.
func reportError(w io.Writer, err error, c *fmtshift.Converter) {
	classified := classify(err)
	fmt.Fprintf(w, "✗ error [%s]: %v\n", classified.TextCode, err)

	if !goerrors.IsCategory(classified, goerrors.CategoryValidation) {
		return
	}

	var formats fmtshift.Formats
	var unsupported *fmtshift.UnsupportedFormatError
	switch {
	case errors.As(err, &unsupported):
		formats = fmtshift.Formats{Inputs: unsupported.Inputs, Outputs: unsupported.Outputs}
	case c != nil:
		formats = c.SupportedFormats()
	default:
		return
	}

	fmt.Fprintln(w, "\nsupported formats:")
	fmt.Fprintf(w, "  input:  %s\n", strings.Join(formats.Inputs, ", "))
	fmt.Fprintf(w, "  output: %s\n", strings.Join(formats.Outputs, ", "))
}
