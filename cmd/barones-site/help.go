package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: barones-site <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Write the static site (index.html, logo-N.html, logos/)")
	fmt.Fprintln(w, "  serve      Serve the page over HTTP")
	fmt.Fprintln(w, "  export     Capture the page as PDF or PNG")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'barones-site help <command>' for details on a specific command.")
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory overriding embedded assets")
	fmt.Fprintln(w, "  -s, --style <name|path>   Style name (default, midnight) or CSS file")
	fmt.Fprintln(w, "      --accent <hex>        Accent color, e.g. #2563eb")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: BARONES_CONFIG, BARONES_ASSET_PATH, BARONES_STYLE, BARONES_ACCENT,")
	fmt.Fprintln(w, "BARONES_OUTPUT_DIR, BARONES_ADDR, BARONES_LOG_LEVEL, BARONES_LOG_FORMAT,")
	fmt.Fprintln(w, "BARONES_EXPORT_FORMAT, BARONES_PAGE_SIZE, BARONES_TIMEOUT, BARONES_YEAR.")
	fmt.Fprintln(w, "Flags override environment, which overrides the config file.")
}

func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: barones-site build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write index.html, one logo-N.html per logo concept, and logos/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default public)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: barones-site serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the page. GET /?logo=N previews logo N; an unknown id keeps the default.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -a, --addr <host:port>    Listen address (default localhost:8080)")
	fmt.Fprintln(w, "      --log-level <s>       debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      console, json")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: barones-site export [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture the page with headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default barones-site.<format>)")
	fmt.Fprintln(w, "  -l, --logo <id>           Logo to select before capturing")
	fmt.Fprintln(w, "  -f, --format <s>          pdf, png")
	fmt.Fprintln(w, "  -p, --page-size <s>       PDF page size: letter, a4, legal")
	fmt.Fprintln(w, "      --width <px>          PNG viewport width")
	fmt.Fprintln(w, "  -t, --timeout <d>         Snapshot timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "export":
		printExportUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: barones-site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: barones-site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
