// Package deck reads card pair lists.
package deck

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samdwyer/memorymatch/data"
	"github.com/samdwyer/memorymatch/internal/match"
)

// ErrMalformedLine is returned for a line that is not "name" or "name1,name2".
var ErrMalformedLine = errors.New("malformed pair line")

// Delimiter separates the two faces of a pair on one line.
const Delimiter = ","

// Parse reads one pair per line. A line without a delimiter pairs the name
// with itself. Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([]match.Pair, error) {
	var pairs []match.Pair

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pair, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		pairs = append(pairs, pair)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pairs: %w", err)
	}

	if len(pairs) == 0 {
		return nil, match.ErrNoPairs
	}
	return pairs, nil
}

func parseLine(line string) (match.Pair, error) {
	fields := strings.Split(line, Delimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
		if fields[i] == "" {
			return match.Pair{}, fmt.Errorf("%w: empty name in %q", ErrMalformedLine, line)
		}
	}

	switch len(fields) {
	case 1:
		return match.Pair{First: fields[0], Second: fields[0]}, nil
	case 2:
		return match.Pair{First: fields[0], Second: fields[1]}, nil
	default:
		return match.Pair{}, fmt.Errorf("%w: %d names in %q", ErrMalformedLine, len(fields), line)
	}
}

// Load reads and parses a pair file from disk.
func Load(path string) ([]match.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pair file %s: %w", path, err)
	}
	defer f.Close()

	pairs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pair file %s: %w", path, err)
	}
	return pairs, nil
}

// Default parses the built-in pair list.
func Default() ([]match.Pair, error) {
	pairs, err := Parse(bytes.NewReader(data.CardPairs()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in pairs: %w", err)
	}
	return pairs, nil
}

// MustDefault parses the built-in pair list, panicking on error.
// The embedded file is part of the build, so failure is a programming error.
func MustDefault() []match.Pair {
	pairs, err := Default()
	if err != nil {
		panic(err)
	}
	return pairs
}

// LoadOrDefault loads path, or the built-in pairs when path is empty.
func LoadOrDefault(path string) ([]match.Pair, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
