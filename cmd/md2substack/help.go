package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2substack <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  prepare    Prepare a blog post for Substack")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A bare post path runs prepare: md2substack post.md")
	fmt.Fprintln(w, "Run 'md2substack help <command>' for details on a specific command.")
}

// printPrepareUsage prints usage for the prepare command.
func printPrepareUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2substack prepare <post.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replace tables with Datawrapper charts and rewrite images, math,")
	fmt.Fprintln(w, "footnotes and template syntax so the post pastes cleanly into Substack.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  post.md    Markdown post with optional YAML frontmatter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tables:")
	fmt.Fprintln(w, "      --dry-run             Preview tables, no Datawrapper calls, no cache")
	fmt.Fprintln(w, "      --numbering <s>       format (HTML tables first) or position")
	fmt.Fprintln(w, "  -t, --timeout <d>         Chart service request timeout (e.g., 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Prepared markdown path (default: <post>_substack.md)")
	fmt.Fprintln(w, "      --no-html             Skip the HTML page")
	fmt.Fprintln(w, "      --open                Open the HTML page in a browser")
	fmt.Fprintln(w, "      --style <name|path>   CSS for the HTML page (substack, plain, or a file)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DATAWRAPPER_TOKEN         Datawrapper API token (also read from .env)")
	fmt.Fprintln(w, "  MD2SUBSTACK_CONFIG        Config file name or path")
	fmt.Fprintln(w, "  MD2SUBSTACK_SITE_URL      Public site URL for image sources")
	fmt.Fprintln(w, "  MD2SUBSTACK_TIMEOUT       Chart service request timeout")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "prepare":
		printPrepareUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2substack version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2substack help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
