package config

// This file implements CLI flag parsing and help text.
// Edit flags are registered from the args catalog, so the spellings the
// parser accepts are exactly the ones the lexer can match as Arg tokens.
// Negated flags (e.g. --no-color) are applied after Parse so Config
// defaults hold unless set.

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"pkt.systems/version"

	"github.com/backmassage/nametag/internal/args"
)

// ErrHelp is returned by [ParseFlags] after printing help.
var ErrHelp = pflag.ErrHelp

// ErrVersion is returned by [ParseFlags] when --version was given. The
// caller prints the version.
var ErrVersion = errors.New("version requested")

// ParseFlags parses argv (without the program name) into cfg. When
// --config is given, the file is applied first and the flags are parsed
// again on top of it, so explicit flags always win. Usage and parse errors
// go to usageOut.
func ParseFlags(cfg *Config, argv []string, usageOut io.Writer) error {
	var n negatedFlags
	fs := newFlagSet(cfg, &n, usageOut)
	if err := fs.Parse(argv); err != nil {
		return err
	}

	if cfg.ConfigFile != "" {
		base := DefaultConfig()
		if err := LoadFile(cfg.ConfigFile, &base); err != nil {
			return err
		}
		base.ConfigFile = cfg.ConfigFile
		*cfg = base
		n = negatedFlags{}
		fs = newFlagSet(cfg, &n, usageOut)
		if err := fs.Parse(argv); err != nil {
			return err
		}
	}

	applyNegatedFlags(cfg, &n)

	if n.showHelp {
		printUsage(usageOut)
		return ErrHelp
	}
	if n.showVersion {
		return ErrVersion
	}

	cfg.Inputs = fs.Args()
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

func newFlagSet(cfg *Config, n *negatedFlags, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("nametag", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { printUsage(out) }
	fs.SortFlags = false

	defineEditFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, n)
	defineUtilityFlags(fs, n)
	return fs
}

// defineEditFlags registers the set and append spellings of every field in
// the args catalog.
func defineEditFlags(fs *pflag.FlagSet, cfg *Config) {
	bindEdit(fs, args.Year, &cfg.YearSet, &cfg.YearAppend)
	bindEdit(fs, args.Label, &cfg.LabelSet, &cfg.LabelAppend)
	bindEdit(fs, args.Date, &cfg.Date, nil)
}

func bindEdit(fs *pflag.FlagSet, spec args.Spec, set *string, appendTo *[]string) {
	fs.StringVarP(set, args.FlagName(spec.Long), args.FlagName(spec.Short), *set, "Set "+spec.Usage)
	if appendTo != nil && spec.HasAppend() {
		fs.StringArrayVarP(appendTo, args.FlagName(spec.LongAppend), args.FlagName(spec.ShortAppend),
			*appendTo, "Append "+spec.Usage)
	}
}

// defineBehaviorFlags registers dry-run, force, recursive, match-flags, tokens.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", cfg.DryRun, "Preview only; do not rename")
	fs.BoolVarP(&cfg.Force, "force", "f", cfg.Force, "Overwrite existing targets")
	fs.BoolVarP(&cfg.Recursive, "recursive", "r", cfg.Recursive, "Descend into directory arguments")
	fs.BoolVar(&cfg.MatchFlags, "match-flags", cfg.MatchFlags, "Classify literal flag spellings in names")
	fs.BoolVarP(&cfg.ShowTokens, "tokens", "t", cfg.ShowTokens, "Print how each input tokenizes and exit")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log, --config.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML defaults file")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *pflag.FlagSet, n *negatedFlags) {
	fs.BoolVarP(&n.showVersion, "version", "V", false, "Print version and exit")
	fs.BoolVarP(&n.showHelp, "help", "h", false, "Show this help and exit")
}

// applyNegatedFlags copies override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	type row struct {
		flags string
		desc  string
	}
	lines := []row{
		{"", fmt.Sprint("nametag ", version.Current(), " - retag filenames by year, label and date")},
		{"", ""},
		{"  nametag [OPTIONS] <file|dir>...", ""},
		{"", ""},
		{"Edits", ""},
	}
	for _, spec := range args.All {
		lines = append(lines, row{"  " + spec.Short + ", " + spec.Long + " <value>", "Set " + spec.Usage})
		if spec.HasAppend() {
			lines = append(lines, row{"  " + spec.ShortAppend + ", " + spec.LongAppend + " <value>", "Append " + spec.Usage})
		}
	}
	lines = append(lines, []row{
		{"", ""},
		{"Behavior", ""},
		{"  -n, --dry-run", "Preview only; do not rename"},
		{"  -f, --force", "Overwrite existing targets"},
		{"  -r, --recursive", "Descend into directory arguments"},
		{"  --match-flags", "Classify literal flag spellings in names"},
		{"  -t, --tokens", "Print how each input tokenizes and exit"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --log <path>", "Append logs to file"},
		{"  --config <path>", "YAML defaults file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}...)

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
