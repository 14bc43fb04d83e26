package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

const stdinName = "-"

type counterReader struct {
	*bufio.Reader
	delim   byte
	lastb   []byte
	lineno  uint64
	midline bool
}

// readChunk reads the next piece of the current line, at most one buffer
// long. A line is counted once its delimiter or the end of input is seen.
func (r *counterReader) readChunk() (n int, err error) {
	r.lastb, err = r.Reader.ReadSlice(r.delim)
	n = len(r.lastb)
	if err == bufio.ErrBufferFull {
		r.midline = true
		return n, nil
	}
	if err == nil || n > 0 || r.midline {
		r.lineno++
	}
	r.midline = false
	return n, err
}

type header struct {
	w       *bufio.Writer
	enabled bool
	printed bool
}

func (h *header) print(name string) error {
	if !h.enabled {
		return nil
	}
	if h.printed {
		if err := h.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	h.printed = true
	_, err := fmt.Fprintf(h.w, "==> %s <==\n", displayName(name))
	return err
}

func displayName(name string) string {
	if name == stdinName {
		return "standard input"
	}
	return name
}

// head copies the configured prefix of every input to stdout, in order.
// It stops at the first input which cannot be opened or read.
func head(c *config, stdin io.Reader, stdout io.Writer) error {
	var (
		w    = bufio.NewWriter(stdout)
		hdr  = header{w: w, enabled: c.showHeaders()}
		sbuf *bufio.Reader
	)

	for _, name := range c.inputs {
		var r *bufio.Reader

		if name == stdinName {
			if sbuf == nil {
				sbuf = bufio.NewReader(stdin)
			}
			r = sbuf
		}

		err := headOne(c, name, r, &hdr, w)
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("%w: %w", errWrite, ferr)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// headOne processes a single input. A nil r means the named file is opened
// here and closed before returning.
func headOne(c *config, name string, r *bufio.Reader, hdr *header, w *bufio.Writer) error {
	if r == nil {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("cannot open '%s' for reading: %w", name, unwrapPath(err))
		}
		defer f.Close()
		r = bufio.NewReader(f)
	}

	err := hdr.print(name)
	if err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	switch c.mode {
	case byteMode:
		err = copyBytes(w, r, c.count)
	default:
		err = copyLines(w, &counterReader{Reader: r, delim: c.delim}, c.count)
	}
	if errors.Is(err, errWrite) {
		return err
	}
	if err != nil {
		return fmt.Errorf("error reading '%s': %w", name, unwrapPath(err))
	}
	return nil
}

var errWrite = errors.New("write")

// tagWriter marks its errors with errWrite, so a failed copy can tell the
// output side from the input side.
type tagWriter struct{ io.Writer }

func (t tagWriter) Write(p []byte) (int, error) {
	n, err := t.Writer.Write(p)
	if err != nil {
		err = fmt.Errorf("%w: %w", errWrite, err)
	}
	return n, err
}

func copyLines(w *bufio.Writer, r *counterReader, count uint64) error {
	for r.lineno < count {
		n, err := r.readChunk()

		if n > 0 {
			if _, werr := w.Write(r.lastb); werr != nil {
				return fmt.Errorf("%w: %w", errWrite, werr)
			}
		}
		if !r.midline {
			if werr := w.Flush(); werr != nil {
				return fmt.Errorf("%w: %w", errWrite, werr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func copyBytes(w *bufio.Writer, r io.Reader, count uint64) error {
	if count > math.MaxInt64 {
		count = math.MaxInt64
	}
	_, err := io.CopyN(tagWriter{w}, r, int64(count))
	if err == io.EOF {
		return nil
	}
	return err
}

// unwrapPath drops the *PathError layer, whose message would repeat the
// file name already present in ours.
func unwrapPath(err error) error {
	var perr *os.PathError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}
