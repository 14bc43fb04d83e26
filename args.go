package main

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/spf13/pflag"
)

const defaultLines = 10

// headerFlag is a boolean flag which, when set, stores a fixed verbosity
// into a cell shared with its counterpart. Since pflag calls Set in the
// order the flags appear, the last of -q/-v wins.
type headerFlag struct {
	cell *verbosity
	to   verbosity
}

func (f headerFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*f.cell = f.to
	}
	return nil
}

func (f headerFlag) String() string {
	if f.cell == nil {
		return "false"
	}
	return strconv.FormatBool(*f.cell == f.to)
}

func (f headerFlag) Type() string { return "bool" }

func parseArgs(args []string) (c config, _ error) {
	var (
		lines, bytes uint64
		zero         bool
	)

	flag := pflag.NewFlagSet("flags", pflag.ContinueOnError)
	flag.SortFlags = false
	flag.SetOutput(io.Discard)
	flag.SetNormalizeFunc(aliases)

	flag.Uint64VarP(&bytes, "bytes", "c", 0,
		"print the first NUM bytes of each file; overrides -n")
	flag.Uint64VarP(&lines, "lines", "n", defaultLines,
		"print the first NUM lines of each file")
	flag.VarPF(headerFlag{&c.verbosity, headersNever}, "quiet", "q",
		"never print headers giving file names (also --silent)").
		NoOptDefVal = "true"
	flag.VarPF(headerFlag{&c.verbosity, headersAlways}, "verbose", "v",
		"always print headers giving file names").
		NoOptDefVal = "true"
	flag.BoolVarP(&zero, "zero-terminated", "z", false,
		"line delimiter is NUL, not newline")

	flag.BoolVarP(&c.help, "help", "h", false,
		"show this help and exit")

	flag.Usage = func() {
		p := func(a ...interface{}) { fmt.Fprintln(flag.Output(), a...) }
		p("Usage: head [FLAGS] [FILE]...")
		p("Print the first", defaultLines, "lines of each FILE to standard output.")
		p("With more than one FILE, precede each with a header giving the file name.")
		p("A FILE of - means standard input.")
		flag.PrintDefaults()
		p("NUM must be a non-negative integer. A leading -NUM is read as -n NUM.")
	}
	c.usage = func(w io.Writer) {
		flag.SetOutput(w)
		flag.Usage()
	}

	err := flag.Parse(legacyCount(args))
	if err != nil {
		return c, err
	}
	if c.help {
		return c, nil
	}

	if flag.Changed("bytes") {
		c.mode, c.count = byteMode, bytes
	} else {
		c.mode, c.count = lineMode, lines
	}

	c.delim = '\n'
	if zero {
		c.delim = 0
	}

	c.inputs = flag.Args()
	return c, nil
}

func aliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "silent" {
		name = "quiet"
	}
	return pflag.NormalizedName(name)
}

var legacyCountRx = regexp.MustCompile(`^-[0-9]+$`)

// legacyCount rewrites the traditional "head -NUM" form into --lines=NUM.
// Only the first argument is considered.
func legacyCount(args []string) []string {
	if len(args) == 0 || !legacyCountRx.MatchString(args[0]) {
		return args
	}
	a := make([]string, len(args))
	copy(a, args)
	a[0] = "--lines=" + args[0][1:]
	return a
}
