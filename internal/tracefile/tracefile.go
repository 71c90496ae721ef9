// Package tracefile reads chart data from CSV traces.
//
// Each line of a trace holds one entry:
//
//	kind, key, timestamp, fields...
//
// where kind is one of events, minmax, percentage, state, single or
// duration and the fields are:
//
//	events      event
//	minmax      value
//	percentage  value
//	state       old state, new state
//	single      state
//	duration    begin marker, end marker (either may be empty)
//
// Lines starting with '@' are directives applying to the entries that
// follow them:
//
//	@labels, kind, label...   fix the row or tick labels of a chart
//	@max, kind, value         fix the top of a value scale
//
// Lines starting with '#' are comments.
package tracefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"git.sr.ht/~whereswaldon/timechart/chart"
)

// Kind names one of the chart types a trace can hold.
type Kind string

const (
	Events      Kind = "events"
	MinMax      Kind = "minmax"
	Percentage  Kind = "percentage"
	State       Kind = "state"
	SingleState Kind = "single"
	Duration    Kind = "duration"
)

// Kinds lists every chart type in a stable order.
var Kinds = []Kind{Events, MinMax, Percentage, State, SingleState, Duration}

// ErrUnknownKind is returned for chart types not in Kinds.
var ErrUnknownKind = errors.New("unknown chart kind")

// ParseKind validates a chart type name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Kinds, k) {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
	return k, nil
}

// DefaultPercentageMax is the top of the percentage scale unless a @max
// directive says otherwise.
const DefaultPercentageMax = 100

// Record is the trace line an entry was read from.
type Record struct {
	Line   int
	Fields []string
}

func (r Record) String() string {
	return fmt.Sprintf("line %d: %s", r.Line, strings.Join(r.Fields, ","))
}

// Trace holds the chart data read from a trace, one source per kind.
type Trace struct {
	Events      *chart.EventsData[Record]
	MinMax      *chart.ValueData[Record]
	Percentage  *chart.ValueData[Record]
	State       *chart.StateData[Record]
	SingleState *chart.SingleStateData[Record]
	Duration    *chart.DurationData[Record]
}

// New returns an empty trace.
func New() *Trace {
	return &Trace{
		Events:      &chart.EventsData[Record]{},
		MinMax:      chart.NewMinMaxData[Record](),
		Percentage:  chart.NewPercentageData[Record](DefaultPercentageMax),
		State:       &chart.StateData[Record]{},
		SingleState: &chart.SingleStateData[Record]{},
		Duration:    &chart.DurationData[Record]{},
	}
}

// ReadFile reads the complete trace at path.
func ReadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a complete trace.
func Read(r io.Reader) (*Trace, error) {
	return parse(r)
}

// ReadGrowing parses a trace that may still be being written, ignoring an
// unterminated last line.
func ReadGrowing(r io.Reader) (*Trace, error) {
	return parse(newLineReader(r))
}

func parse(r io.Reader) (*Trace, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	t := New()
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading trace: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rec := Record{Line: line, Fields: fields}
		if strings.HasPrefix(fields[0], "@") {
			err = t.apply(rec)
		} else {
			err = t.add(rec)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
}

// field returns the i-th field of rec, or "" if it is missing.
func field(rec Record, i int) string {
	if i < len(rec.Fields) {
		return strings.TrimSpace(rec.Fields[i])
	}
	return ""
}

func (t *Trace) apply(rec Record) error {
	if len(rec.Fields) < 2 {
		return fmt.Errorf("directive %s needs a chart kind", rec.Fields[0])
	}
	kind, err := ParseKind(rec.Fields[1])
	if err != nil {
		return err
	}
	switch directive := rec.Fields[0]; directive {
	case "@labels":
		labels := make([]string, 0, len(rec.Fields)-2)
		for i := 2; i < len(rec.Fields); i++ {
			labels = append(labels, field(rec, i))
		}
		t.setLabels(kind, labels)
	case "@max":
		v, err := strconv.ParseFloat(field(rec, 2), 64)
		if err != nil {
			return fmt.Errorf("parsing max value: %w", err)
		}
		switch kind {
		case MinMax:
			t.MinMax.SetMaxValue(v)
		case Percentage:
			t.Percentage.SetMaxValue(v)
		default:
			return fmt.Errorf("%s charts have no value scale", kind)
		}
	default:
		return fmt.Errorf("unknown directive %s", directive)
	}
	return nil
}

func (t *Trace) setLabels(kind Kind, labels []string) {
	switch kind {
	case Events:
		t.Events.SetLabels(labels)
	case MinMax:
		t.MinMax.SetLabels(labels)
	case Percentage:
		t.Percentage.SetLabels(labels)
	case State:
		t.State.SetLabels(labels)
	case SingleState:
		t.SingleState.SetLabels(labels)
	case Duration:
		t.Duration.SetLabels(labels)
	}
}

// fieldCount is the minimum number of fields of an entry of each kind.
var fieldCount = map[Kind]int{
	Events:      4,
	MinMax:      4,
	Percentage:  4,
	State:       5,
	SingleState: 4,
	Duration:    4,
}

func (t *Trace) add(rec Record) error {
	kind, err := ParseKind(rec.Fields[0])
	if err != nil {
		return err
	}
	if len(rec.Fields) < fieldCount[kind] {
		return fmt.Errorf("%s entry needs %d fields, got %d", kind, fieldCount[kind], len(rec.Fields))
	}
	key := chart.ChartKey{Key: field(rec, 1)}
	ts, err := strconv.ParseInt(field(rec, 2), 10, 64)
	if err != nil {
		return fmt.Errorf("parsing timestamp: %w", err)
	}
	switch kind {
	case Events:
		t.Events.Add(key, ts, field(rec, 3), rec)
	case MinMax, Percentage:
		v, err := strconv.ParseFloat(field(rec, 3), 64)
		if err != nil {
			return fmt.Errorf("parsing value: %w", err)
		}
		if kind == MinMax {
			t.MinMax.Add(key, ts, v, rec)
		} else {
			t.Percentage.Add(key, ts, v, rec)
		}
	case State:
		t.State.Add(key, ts, field(rec, 3), field(rec, 4), rec)
	case SingleState:
		t.SingleState.Add(key, ts, field(rec, 3), rec)
	case Duration:
		begin, end := field(rec, 3), field(rec, 4)
		if begin == "" && end == "" {
			return fmt.Errorf("duration entry needs a begin or end marker")
		}
		t.Duration.Add(key, ts, begin, end, rec)
	}
	return nil
}

// Len returns the number of entries of a kind.
func (t *Trace) Len(kind Kind) int {
	switch kind {
	case Events:
		return t.Events.Len()
	case MinMax:
		return t.MinMax.Len()
	case Percentage:
		return t.Percentage.Len()
	case State:
		return t.State.Len()
	case SingleState:
		return t.SingleState.Len()
	case Duration:
		return t.Duration.Len()
	}
	return 0
}

// Frame returns the time frame spanning every entry of a kind. ok is false
// if there are none.
func (t *Trace) Frame(kind Kind) (frame chart.TimeFrame, ok bool) {
	switch kind {
	case Events:
		return chart.Bounds(t.Events.Keys(), t.Events.Entries)
	case MinMax:
		return chart.Bounds(t.MinMax.Keys(), t.MinMax.Entries)
	case Percentage:
		return chart.Bounds(t.Percentage.Keys(), t.Percentage.Entries)
	case State:
		return chart.Bounds(t.State.Keys(), t.State.Entries)
	case SingleState:
		return chart.Bounds(t.SingleState.Keys(), t.SingleState.Entries)
	case Duration:
		return chart.Bounds(t.Duration.Keys(), t.Duration.Entries)
	}
	return frame, false
}
