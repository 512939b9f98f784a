// Package console implements the plain-text protocol of the list tools:
// an integer count n, then n integers, then an optional key, all separated
// by whitespace. Results are printed space separated on one line.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/me21jarus/dsa/core"
)

// Sentinel errors for input decoding.
var (
	// ErrBadCount indicates a missing or negative element count.
	ErrBadCount = errors.New("console: invalid element count")

	// ErrShortInput indicates fewer than n values followed the count.
	ErrShortInput = errors.New("console: fewer values than announced")

	// ErrBadToken indicates a token that is not a base-10 integer.
	ErrBadToken = errors.New("console: not an integer")
)

// Input is one decoded request.
type Input struct {
	Values []int
	Key    int
	HasKey bool
}

// maxPrealloc bounds the capacity hint taken from an untrusted count.
const maxPrealloc = 1024

// ReadInput decodes a request from r. Tokens after the optional key are ignored.
func ReadInput(r io.Reader) (Input, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, ok, err := nextInt(sc)
	if err != nil {
		return Input{}, fmt.Errorf("ReadInput: count: %w", err)
	}
	if !ok || n < 0 {
		return Input{}, fmt.Errorf("ReadInput: %w", ErrBadCount)
	}

	in := Input{Values: make([]int, 0, min(n, maxPrealloc))}
	for i := 0; i < n; i++ {
		v, ok, err := nextInt(sc)
		if err != nil {
			return Input{}, fmt.Errorf("ReadInput: value %d: %w", i+1, err)
		}
		if !ok {
			return Input{}, fmt.Errorf("ReadInput: got %d of %d values: %w", i, n, ErrShortInput)
		}
		in.Values = append(in.Values, v)
	}

	key, ok, err := nextInt(sc)
	if err != nil {
		return Input{}, fmt.Errorf("ReadInput: key: %w", err)
	}
	in.Key, in.HasKey = key, ok

	return in, nil
}

// nextInt scans one integer token; ok is false at end of input.
func nextInt(sc *bufio.Scanner) (v int, ok bool, err error) {
	if !sc.Scan() {
		return 0, false, sc.Err()
	}
	v, err = strconv.Atoi(sc.Text())
	if err != nil {
		return 0, false, fmt.Errorf("%q: %w", sc.Text(), ErrBadToken)
	}

	return v, true, nil
}

// WriteValues prints seq space separated followed by a newline.
func WriteValues[T any](w io.Writer, seq iter.Seq[T]) error {
	_, err := fmt.Fprintln(w, core.Format(seq))

	return err
}
