package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"tokenaudit/internal/audit"
	"tokenaudit/internal/browse"
	"tokenaudit/internal/settings"
	"tokenaudit/internal/snapshot"
	"tokenaudit/internal/tokens"
)

// Usage lines, shared by the commands table and each command's own argument
// errors.
const (
	auditUsage   = "tokenaudit audit [--format f] [--root dir] [--copy] [--verbose] <export-file>"
	namesUsage   = "tokenaudit names [--format f] [--copy] <export-file>"
	browseUsage  = "tokenaudit browse [--format f] [--root dir] <export-file>"
	formatsUsage = "tokenaudit formats"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "audit",
		short: "Resolve alias chains and group them by path shape",
		usage: auditUsage,
		long: `Resolve every variable of every non-primitive collection down to its
primitive, classify each chain into a path group and print the report.

Variables matching an exclude pattern in <root>/.tokenaudit/settings.yaml
are not used as starting points.

Flags:
  --format   export format (rest, plugin); auto-detected when empty
  --root     directory holding .tokenaudit/settings.yaml (default ".")
  --copy     also copy the report to the clipboard
  --verbose  log resolution diagnostics
`,
		run: runAudit,
	},
	{
		name:  "names",
		short: "List every variable as <Collection>/<Variable>",
		usage: namesUsage,
		long: `Print every fully-qualified variable name in collection order, followed
by the variable total.
`,
		run: runNames,
	},
	{
		name:  "browse",
		short: "Open the audit report in a scrollable viewer",
		usage: browseUsage,
		long: `Run the audit and show the report in a full-screen viewer.
Press c to copy the report, q to quit.
`,
		run: runBrowse,
	},
	{
		name:  "formats",
		short: "List supported export formats",
		usage: formatsUsage,
		long: `List the export formats understood by --format.
`,
		run: runFormats,
	},
}

// stdout is where reports go; tests swap it.
var stdout io.Writer = os.Stdout

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tokenaudit"})

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "tokenaudit — design-token alias chain audit\n\n")
	fmt.Fprintf(w, "Usage:\n  tokenaudit <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'tokenaudit help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "tokenaudit: unknown command %q\n\nRun 'tokenaudit help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(stdout, args[1])
		} else {
			printUsage(stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'tokenaudit help' for usage.", args[0])
}

// ---------------------------------------------------------------------------
// shared flags
// ---------------------------------------------------------------------------

type options struct {
	format  string
	root    string
	copy    bool
	verbose bool
	file    string
}

// parseFlags parses args for the named command and requires exactly one
// export file argument. usage is echoed back on bad arguments.
func parseFlags(name, usage string, args []string, withRoot, withCopy bool) (*options, error) {
	var o options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.format, "format", "", "export format")
	if withRoot {
		fs.StringVar(&o.root, "root", ".", "settings root directory")
	}
	if withCopy {
		fs.BoolVar(&o.copy, "copy", false, "copy output to the clipboard")
	}
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log diagnostics")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w\nusage: %s", err, usage)
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	o.file = fs.Arg(0)
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return &o, nil
}

// loadAudit loads settings and the export file, then runs the audit.
func loadAudit(o *options) (*audit.Result, error) {
	s, err := settings.Load(o.root)
	if err != nil {
		return nil, err
	}
	format := o.format
	if format == "" && s != nil {
		format = s.Format
	}
	snap, err := loadSnapshot(o.file, format)
	if err != nil {
		return nil, err
	}
	res := audit.Run(snap, audit.Options{Exclude: s.IsExcluded})
	logDiagnostics(res)
	return res, nil
}

func loadSnapshot(path, format string) (*tokens.Snapshot, error) {
	snap, err := snapshot.Load(path, format)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded export", "file", path, "collections", len(snap.Collections()), "variables", len(snap.Variables()))
	return snap, nil
}

func logDiagnostics(res *audit.Result) {
	d := res.Diagnostics
	if d.Missing > 0 {
		logger.Warn("alias targets missing", "count", d.Missing)
	}
	if d.Circular > 0 {
		logger.Warn("circular alias chains", "count", d.Circular)
	}
	if d.UnknownCollections > 0 {
		logger.Debug("variables with unknown collection", "count", d.UnknownCollections)
	}
	counts := res.Counts()
	for _, g := range audit.Groups {
		if counts[g] > 0 {
			logger.Debug("path group", "group", g, "chains", counts[g])
		}
	}
	if n := counts[audit.GroupOther]; n > 0 {
		logger.Debug("path group", "group", audit.GroupOther, "chains", n)
	}
}

// copyOut copies text to the clipboard. Failing to copy never fails the
// command; headless sessions often have no clipboard.
func copyOut(text string) {
	if err := clipboardWriteAll(text); err != nil {
		logger.Warn("could not copy to clipboard", "err", err)
		return
	}
	logger.Info("copied to clipboard")
}

// ---------------------------------------------------------------------------
// audit
// ---------------------------------------------------------------------------

func runAudit(args []string) error {
	o, err := parseFlags("audit", auditUsage, args, true, true)
	if err != nil {
		return err
	}
	res, err := loadAudit(o)
	if err != nil {
		return err
	}
	report := audit.Render(res)
	fmt.Fprint(stdout, report)
	if o.copy {
		copyOut(report)
	}
	return nil
}

// ---------------------------------------------------------------------------
// names
// ---------------------------------------------------------------------------

func runNames(args []string) error {
	o, err := parseFlags("names", namesUsage, args, false, true)
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(o.file, o.format)
	if err != nil {
		return err
	}
	names := audit.ListNames(snap)
	fmt.Fprint(stdout, audit.RenderNames(names))
	if o.copy {
		copyOut(audit.RenderNames(names))
	}
	return nil
}

// ---------------------------------------------------------------------------
// browse
// ---------------------------------------------------------------------------

func runBrowse(args []string) error {
	o, err := parseFlags("browse", browseUsage, args, true, false)
	if err != nil {
		return err
	}
	res, err := loadAudit(o)
	if err != nil {
		return err
	}
	return browse.Run(browse.New(filepath.Base(o.file), audit.Render(res), clipboardWriteAll))
}

// ---------------------------------------------------------------------------
// formats
// ---------------------------------------------------------------------------

func runFormats(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: %s", formatsUsage)
	}
	for _, name := range snapshot.Formats() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

func main() {
	if err := dispatch(os.Args[1:]); err != nil {
		logger.Fatal(err)
	}
}
