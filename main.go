package main

import (
	"fmt"
	"io"
	"os"
)

type mode int

const (
	lineMode mode = iota
	byteMode
)

type verbosity int

const (
	headersAuto verbosity = iota
	headersAlways
	headersNever
)

type config struct {
	count  uint64
	mode   mode
	delim  byte
	inputs []string

	verbosity verbosity

	help  bool
	usage func(io.Writer)
}

func (c *config) showHeaders() bool {
	switch c.verbosity {
	case headersAlways:
		return true
	case headersNever:
		return false
	default:
		return len(c.inputs) > 1
	}
}

func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c, err := parseArgs(args)
	if err != nil {
		log(stderr, err)
		if c.usage != nil {
			c.usage(stderr)
		}
		return 2
	}
	if c.help {
		c.usage(stdout)
		return 0
	}

	err = head(&c, stdin, stdout)
	if err != nil {
		log(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func log(w io.Writer, msgs ...any) {
	if len(msgs) > 0 {
		fmt.Fprint(w, "head: ")
		fmt.Fprintln(w, msgs...)
	}
}
