package alloy

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// maxLine bounds a single relation line; large instances put every tuple of a
// relation on one line.
const maxLine = 16 << 20

var linePattern = regexp.MustCompile(`^([a-zA-Z0-9$/<:]+)=\{(.*)\}$`)

// ParseLine splits one line of the form name={a->b, c->d} into the relation
// name and its rows. Tuples without tokens are dropped. ok is false for lines
// that are not relation bindings; those are not errors.
func ParseLine(line string) (name string, rows [][]Atom, ok bool) {
	m := linePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", nil, false
	}
	for _, tuple := range strings.Split(m[2], ",") {
		var row []Atom
		for _, tok := range strings.Split(strings.TrimSpace(tuple), "->") {
			if tok = strings.TrimSpace(tok); tok != "" {
				row = append(row, ParseAtom(tok))
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return m[1], rows, true
}

// Option configures Parse.
type Option func(*parser)

type parser struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives per-relation debug records.
func WithLogger(l *slog.Logger) Option {
	return func(p *parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// Parse reads an instance dump. Lines that are not relation bindings are
// skipped. A name bound twice keeps its last binding.
func Parse(r io.Reader, opts ...Option) (Instance, error) {
	p := &parser{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(p)
	}

	inst := make(Instance)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines, skipped int
	for sc.Scan() {
		lines++
		name, rows, ok := ParseLine(sc.Text())
		if !ok {
			skipped++
			continue
		}
		if _, dup := inst[name]; dup {
			p.logger.Debug("relation rebound", "name", name)
		}
		inst[name] = Build(rows)
		p.logger.Debug("relation built", "name", name, "tuples", len(rows))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read instance: %w", err)
	}
	p.logger.Debug("instance parsed", "lines", lines, "skipped", skipped, "relations", len(inst))
	return inst, nil
}

// ParseString is Parse over an in-memory dump.
func ParseString(s string, opts ...Option) (Instance, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ReadFile parses the instance dump stored at path.
func ReadFile(path string, opts ...Option) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}
