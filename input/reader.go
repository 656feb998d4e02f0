package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ovh/ttygraph/graph"
)

// Mode selects how input lines map onto series observations.
type Mode int

const (
	// ModeSingle reads one value per line for series "1".
	ModeSingle Mode = iota
	// ModeTwo reads two whitespace-separated values per line for
	// series "1" and "2".
	ModeTwo
	// ModeKeyValue reads zero or more <name> <value> pairs per line;
	// series may appear mid-stream.
	ModeKeyValue
)

// Observation is one parsed sample routed to a named series.
type Observation struct {
	Name  string
	Value graph.Sample
}

// Reader turns a line-oriented stream into per-cycle observations.
// Lines that yield no valid value are discarded and the next line is
// tried, so bad input never ends a cycle.
type Reader struct {
	scanner *bufio.Scanner
	mode    Mode
}

// NewReader wraps the stream, usually stdin.
func NewReader(r io.Reader, mode Mode) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), mode: mode}
}

// Next blocks for the next valid line and returns its observations.
// It returns io.EOF when the stream ends.
func (r *Reader) Next() ([]Observation, error) {
	for r.scanner.Scan() {
		obs, ok := parseLine(r.mode, r.scanner.Text())
		if !ok {
			continue
		}
		return obs, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read input")
	}
	return nil, io.EOF
}

func parseLine(mode Mode, line string) ([]Observation, bool) {
	fields := strings.Fields(line)
	switch mode {
	case ModeTwo:
		if len(fields) == 0 {
			return nil, false
		}
		v1, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, false
		}
		obs := []Observation{{Name: "1", Value: graph.Value(v1)}}
		// a missing or unparsable second value leaves a gap in series 2
		second := graph.None()
		if len(fields) > 1 {
			if v2, err := strconv.ParseFloat(fields[1], 64); err == nil {
				second = graph.Value(v2)
			}
		}
		return append(obs, Observation{Name: "2", Value: second}), true

	case ModeKeyValue:
		if len(fields) == 0 {
			// an empty line is a valid cycle: every known series
			// receives a sentinel via the registry
			return nil, true
		}
		var obs []Observation
		for i := 0; i+1 < len(fields); i += 2 {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				// unparsable trailing tokens end parsing for the line
				break
			}
			obs = setObservation(obs, fields[i], graph.Value(v))
		}
		return obs, len(obs) > 0

	default:
		if len(fields) == 0 {
			return nil, false
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, false
		}
		return []Observation{{Name: "1", Value: graph.Value(v)}}, true
	}
}

// setObservation overwrites an earlier pair for the same name, so a key
// repeated on one line yields a single observation.
func setObservation(obs []Observation, name string, s graph.Sample) []Observation {
	for i := range obs {
		if obs[i].Name == name {
			obs[i].Value = s
			return obs
		}
	}
	return append(obs, Observation{Name: name, Value: s})
}
