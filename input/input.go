// Package input reads puzzle input text into the shapes the solvers consume.
//
// All readers are line oriented: blank lines are skipped and surrounding
// whitespace is trimmed. None of them open files; callers pass any io.Reader.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrEmpty indicates the reader held no non-blank lines.
	ErrEmpty = errors.New("input: no data")
	// ErrNotInteger indicates a field that does not parse as a decimal integer.
	ErrNotInteger = errors.New("input: not an integer")
)

// lines calls fn with each trimmed, non-blank line and its 1-based number.
func lines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	seen := false
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		seen = true
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("input: read: %w", err)
	}
	if !seen {
		return ErrEmpty
	}
	return nil
}

// fields splits a comma-separated line, trimming each field and dropping
// empty ones so a program may end each wrapped line with a comma.
func fields(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Wires returns one slice of raw path tokens per line, e.g.
// "R8,U5,L5,D3" → ["R8" "U5" "L5" "D3"]. Tokens are not validated here;
// empty fields ("R8,,U5" or a trailing comma) are kept as "" so the token
// parser rejects them.
func Wires(r io.Reader) ([][]string, error) {
	var out [][]string
	err := lines(r, func(_ int, line string) error {
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		out = append(out, parts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Ints returns one integer per line.
func Ints(r io.Reader) ([]int, error) {
	var out []int
	err := lines(r, func(n int, line string) error {
		v, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("line %d: %q: %w", n, line, ErrNotInteger)
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Program returns the comma-separated integers of an Intcode program. A
// program may be wrapped over several lines; they are concatenated.
func Program(r io.Reader) ([]int, error) {
	var out []int
	err := lines(r, func(n int, line string) error {
		for _, f := range fields(line) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("line %d: %q: %w", n, f, ErrNotInteger)
			}
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
