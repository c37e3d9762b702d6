// SPDX-License-Identifier: MIT
// Package: rainfall/terrain
//
// load.go — text terrain readers.
//
// Format: heights separated by whitespace and/or commas, any number per
// line; '#' starts a comment that runs to the end of the line. Blank lines
// are ignored. A file with no heights is an error.

package terrain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// maxLineBytes bounds a single line; generated terrains often sit on one.
const maxLineBytes = 1 << 30

// ReadInts parses integer heights from r.
//
// Errors:
//   - ErrBadInput (with line number and token) for a non-integer token.
//   - ErrEmpty if r holds no heights.
func ReadInts(r io.Reader) ([]int, error) {
	return read(r, func(tok string) (int, error) {
		v, err := strconv.ParseInt(tok, 10, 0)
		return int(v), err
	})
}

// ReadFloats parses real heights from r. NaN and infinities parse but are
// rejected later by world.New.
//
// Errors:
//   - ErrBadInput (with line number and token) for a non-numeric token.
//   - ErrEmpty if r holds no heights.
func ReadFloats(r io.Reader) ([]float64, error) {
	return read(r, func(tok string) (float64, error) {
		return strconv.ParseFloat(tok, 64)
	})
}

// LoadInts opens path on fs and parses it with ReadInts.
func LoadInts(fs billy.Filesystem, path string) ([]int, error) {
	return load(fs, path, ReadInts)
}

// LoadFloats opens path on fs and parses it with ReadFloats.
func LoadFloats(fs billy.Filesystem, path string) ([]float64, error) {
	return load(fs, path, ReadFloats)
}

func load[T any](fs billy.Filesystem, path string, parse func(io.Reader) ([]T, error)) (heights []T, err error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open terrain %s", path)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	heights, err = parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load terrain %s", path)
	}

	return heights, nil
}

func read[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	var out []T

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, tok := range strings.FieldsFunc(text, isSeparator) {
			v, err := parse(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadInput, line, tok)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan terrain")
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}

	return out, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
