package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds flags that decide what is written and shown.
type outputFlags struct {
	path   string // Prepared Markdown path (HTML goes next to it)
	noHTML bool
	open   bool
	style  string
}

// prepareFlags holds all flags for the prepare command.
type prepareFlags struct {
	common    commonFlags
	output    outputFlags
	dryRun    bool
	numbering string
	timeout   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "prepared markdown path (default: <post>_substack.md)")
	fs.BoolVar(&f.noHTML, "no-html", false, "skip the HTML page")
	fs.BoolVar(&f.open, "open", false, "open the HTML page in a browser")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path for the HTML page")
}

// newPrepareFlagSet builds the prepare FlagSet bound to f.
func newPrepareFlagSet(f *prepareFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.BoolVar(&f.dryRun, "dry-run", false, "show table previews without calling Datawrapper")
	fs.StringVar(&f.numbering, "numbering", "", "table numbering: format (HTML first) or position")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-request chart service timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printPrepareUsage(usage) }
	return fs
}

// parsePrepareFlags parses prepare command flags and returns positional args.
func parsePrepareFlags(args []string, usage io.Writer) (*prepareFlags, []string, error) {
	f := &prepareFlags{}
	fs := newPrepareFlagSet(f, usage)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
