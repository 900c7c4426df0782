package distprobe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Line is a single diagnostic emitted by a fixture: a dotted key and a
// boolean value rendered as 0 or 1.
type Line struct {
	Key   string
	Value int
}

// Passed reports whether the check behind the line succeeded.
func (l Line) Passed() bool {
	return l.Value == 1
}

// String renders the line as a fixture prints it.
func (l Line) String() string {
	return FormatLine(l)
}

// FormatLine renders l as "<key> = <value>".
func FormatLine(l Line) string {
	return fmt.Sprintf("%s = %d", l.Key, l.Value)
}

// boolValue converts a check result to its printed form.
func boolValue(ok bool) int {
	if ok {
		return 1
	}

	return 0
}

// ParseLine parses a single "<key> = <value>" line. Surrounding whitespace
// is ignored.
func ParseLine(text string) (Line, error) {
	key, value, found := strings.Cut(text, "=")
	if !found {
		return Line{}, &ParseError{Text: text, Err: ErrMalformedLine}
	}

	key = strings.TrimSpace(key)
	if !validKey(key) {
		return Line{}, &ParseError{Text: text, Err: ErrMalformedLine}
	}

	// Only the literal digits are accepted; "+1" or "01" are not a fixture's output.
	switch strings.TrimSpace(value) {
	case "0":
		return Line{Key: key, Value: 0}, nil
	case "1":
		return Line{Key: key, Value: 1}, nil
	default:
		return Line{}, &ParseError{Text: text, Err: ErrBadValue}
	}
}

// validKey reports whether key is a dot-separated identifier with at least
// a namespace and a check name, and no empty or blank segments.
func validKey(key string) bool {
	if key == "" || strings.ContainsAny(key, " \t") {
		return false
	}

	segments := strings.Split(key, ".")
	if len(segments) < 2 {
		return false
	}

	for _, s := range segments {
		if s == "" {
			return false
		}
	}

	return true
}

// Parse reads diagnostic lines from r. Blank lines are skipped. Parsing
// stops at the first malformed line.
func Parse(r io.Reader) ([]Line, error) {
	var lines []Line
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		line, err := ParseLine(text)
		if err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				parseErr.Line = lineNo
			}

			return nil, err
		}

		if _, dup := seen[line.Key]; dup {
			return nil, &ParseError{Line: lineNo, Text: text, Err: ErrDuplicateKey}
		}
		seen[line.Key] = struct{}{}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Verify checks lines against the expected set of keys. Every expected key
// must be present with value 1, and no other key may be present. A nil
// expected slice only requires that at least one line was emitted and that
// every emitted value is 1.
// All problems are reported, joined. Empty output is [ErrNoDiagnostics];
// every other problem is a [*CheckError].
func Verify(lines []Line, expected []string) error {
	var errs []error

	if len(lines) == 0 {
		errs = append(errs, ErrNoDiagnostics)
	}

	emitted := make(map[string]int, len(lines))
	for _, l := range lines {
		emitted[l.Key] = l.Value
	}

	if expected != nil {
		want := make(map[string]struct{}, len(expected))
		for _, key := range expected {
			want[key] = struct{}{}
			if _, ok := emitted[key]; !ok {
				errs = append(errs, &CheckError{Key: key, Err: ErrMissingKey})
			}
		}

		var unexpected []string
		for key := range emitted {
			if _, ok := want[key]; !ok {
				unexpected = append(unexpected, key)
			}
		}
		sort.Strings(unexpected)

		for _, key := range unexpected {
			errs = append(errs, &CheckError{Key: key, Err: ErrUnexpectedKey})
		}
	}

	for _, l := range lines {
		if !l.Passed() {
			errs = append(errs, &CheckError{Key: l.Key, Err: ErrCheckFailed})
		}
	}

	return errors.Join(errs...)
}

// Report accumulates diagnostic lines in emission order.
type Report struct {
	lines []Line
}

// Add appends a check result under key.
func (r *Report) Add(key string, ok bool) {
	r.lines = append(r.lines, Line{Key: key, Value: boolValue(ok)})
}

// Lines returns a copy of the accumulated lines.
func (r *Report) Lines() []Line {
	out := make([]Line, len(r.lines))
	copy(out, r.lines)

	return out
}

// Passed reports whether every accumulated check succeeded.
func (r *Report) Passed() bool {
	for _, l := range r.lines {
		if !l.Passed() {
			return false
		}
	}

	return true
}

// WriteTo writes every line followed by a newline to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, l := range r.lines {
		n, err := fmt.Fprintln(w, FormatLine(l))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
