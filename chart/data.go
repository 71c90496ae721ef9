package chart

import (
	"fmt"
	"slices"
	"strconv"
)

// ChartKey identifies one series within a chart.
type ChartKey struct {
	Key string
}

// EntryID is the stable identity of an entry: the series it belongs to and
// its timestamp. Selection and hover are expressed in terms of EntryIDs.
type EntryID struct {
	Key       string
	Timestamp int64
}

func (id EntryID) String() string {
	return id.Key + "@" + strconv.FormatInt(id.Timestamp, 10)
}

// ID returns the identity of the entry at ts within the series key.
func (key ChartKey) ID(ts int64) EntryID {
	return EntryID{Key: key.Key, Timestamp: ts}
}

// Timed is implemented by every chart entry.
type Timed interface {
	Time() int64
}

// ChartEntry holds what every entry shares: its timestamp and the source
// record it was derived from.
type ChartEntry[T any] struct {
	Timestamp int64
	Data      T
}

// Time returns the timestamp of the entry.
func (e ChartEntry[T]) Time() int64 { return e.Timestamp }

// Source returns the record the entry was derived from.
func (e ChartEntry[T]) Source() T { return e.Data }

// EventEntry is a discrete occurrence of a named event.
type EventEntry[T any] struct {
	ChartEntry[T]
	Event string
}

// ValueEntry is a numeric sample, used by both min/max and percentage
// charts.
type ValueEntry[T any] struct {
	ChartEntry[T]
	Value float64
}

// StateEntry is a transition from OldState to NewState.
type StateEntry[T any] struct {
	ChartEntry[T]
	OldState, NewState string
}

// SingleStateEntry records the state a series holds from its timestamp on.
type SingleStateEntry[T any] struct {
	ChartEntry[T]
	State string
}

// DurationEntry marks the beginning and/or end of an interval. An empty
// field means the corresponding marker is absent.
type DurationEntry[T any] struct {
	ChartEntry[T]
	Begin, End string
}

// IsBegin reports whether the entry opens an interval.
func (e DurationEntry[T]) IsBegin() bool { return e.Begin != "" }

// IsEnd reports whether the entry closes an interval.
func (e DurationEntry[T]) IsEnd() bool { return e.End != "" }

// Source is what every chart data source provides: the series to draw, the
// entries of each series in ascending timestamp order, and the ordered row
// or tick labels.
type Source[E Timed] interface {
	Keys() []ChartKey
	Entries(key ChartKey) []E
	Labels() []string
}

// ValueSource is a Source plotted on a numeric scale from zero to
// MaxValue.
type ValueSource[E Timed] interface {
	Source[E]
	MaxValue() float64
}

// EventsSource provides event series; labels name the event rows.
type EventsSource[T any] interface {
	Source[EventEntry[T]]
}

// MinMaxSource provides numeric series; labels are the value ticks.
type MinMaxSource[T any] interface {
	ValueSource[ValueEntry[T]]
}

// PercentageSource provides numeric series bounded by MaxValue; labels
// are the value ticks.
type PercentageSource[T any] interface {
	ValueSource[ValueEntry[T]]
}

// StateSource provides state transition series; labels name the state
// rows.
type StateSource[T any] interface {
	Source[StateEntry[T]]
}

// SingleStateSource provides held-state series; labels name the state
// rows.
type SingleStateSource[T any] interface {
	Source[SingleStateEntry[T]]
}

// DurationSource provides interval series; labels hold one row per series
// key.
type DurationSource[T any] interface {
	Source[DurationEntry[T]]
}

// series is an in-memory Source. Keys are kept in insertion order, entries
// of each key sorted by timestamp and labels in first-seen order unless set
// explicitly.
type series[E Timed] struct {
	keys        []ChartKey
	entries     map[ChartKey][]E
	labels      []string
	fixedLabels bool
}

// Keys returns the series in the order they were first added.
func (s *series[E]) Keys() []ChartKey { return s.keys }

// Entries returns the entries of key sorted by timestamp.
func (s *series[E]) Entries(key ChartKey) []E { return s.entries[key] }

// Labels returns the row labels.
func (s *series[E]) Labels() []string { return s.labels }

// SetLabels replaces the row labels. Once set, labels are no longer
// collected from inserted entries.
func (s *series[E]) SetLabels(labels []string) {
	s.labels = slices.Clone(labels)
	s.fixedLabels = true
}

// Len returns the total number of entries.
func (s *series[E]) Len() int {
	n := 0
	for _, es := range s.entries {
		n += len(es)
	}
	return n
}

// insert adds e to key, keeping the series sorted. An entry at a timestamp
// already present in the series replaces the existing one.
func (s *series[E]) insert(key ChartKey, e E, labels ...string) {
	if s.entries == nil {
		s.entries = make(map[ChartKey][]E)
	}
	es, known := s.entries[key]
	if !known {
		s.keys = append(s.keys, key)
	}
	index, found := slices.BinarySearchFunc(es, e.Time(), func(a E, ts int64) int {
		return cmpInt64(a.Time(), ts)
	})
	if found {
		es[index] = e
	} else {
		es = slices.Insert(es, index, e)
	}
	s.entries[key] = es
	if s.fixedLabels {
		return
	}
	for _, l := range labels {
		if l != "" && !slices.Contains(s.labels, l) {
			s.labels = append(s.labels, l)
		}
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// EventsData is an in-memory EventsSource.
type EventsData[T any] struct {
	series[EventEntry[T]]
}

// Add records that event occurred in series key at ts.
func (d *EventsData[T]) Add(key ChartKey, ts int64, event string, data T) {
	d.insert(key, EventEntry[T]{ChartEntry: ChartEntry[T]{Timestamp: ts, Data: data}, Event: event}, event)
}

// StateData is an in-memory StateSource.
type StateData[T any] struct {
	series[StateEntry[T]]
}

// Add records a transition from oldState to newState in series key at ts.
func (d *StateData[T]) Add(key ChartKey, ts int64, oldState, newState string, data T) {
	d.insert(key, StateEntry[T]{
		ChartEntry: ChartEntry[T]{Timestamp: ts, Data: data},
		OldState:   oldState,
		NewState:   newState,
	}, oldState, newState)
}

// SingleStateData is an in-memory SingleStateSource.
type SingleStateData[T any] struct {
	series[SingleStateEntry[T]]
}

// Add records that series key holds state from ts on.
func (d *SingleStateData[T]) Add(key ChartKey, ts int64, state string, data T) {
	d.insert(key, SingleStateEntry[T]{ChartEntry: ChartEntry[T]{Timestamp: ts, Data: data}, State: state}, state)
}

// DurationData is an in-memory DurationSource. Every series gets its own
// row, labelled with the series key.
type DurationData[T any] struct {
	series[DurationEntry[T]]
}

// Add records interval markers for series key at ts.
func (d *DurationData[T]) Add(key ChartKey, ts int64, begin, end string, data T) {
	d.insert(key, DurationEntry[T]{
		ChartEntry: ChartEntry[T]{Timestamp: ts, Data: data},
		Begin:      begin,
		End:        end,
	}, key.Key)
}

// ValueData is an in-memory MinMaxSource. Unless labels are set explicitly
// it provides evenly spaced numeric tick labels from zero to MaxValue.
type ValueData[T any] struct {
	series[ValueEntry[T]]
	maxValue float64
	fixedMax bool
	ticks    int
	// bounded clamps inserted values to [0,maxValue].
	bounded bool
}

// DefaultTicks is the number of value labels generated when none are set.
const DefaultTicks = 5

// NewMinMaxData returns an empty min/max source whose maximum follows the
// largest inserted value.
func NewMinMaxData[T any]() *ValueData[T] {
	return &ValueData[T]{ticks: DefaultTicks}
}

// NewPercentageData returns an empty percentage source bounded by
// maxValue. Inserted values are clamped to [0,maxValue].
func NewPercentageData[T any](maxValue float64) *ValueData[T] {
	return &ValueData[T]{ticks: DefaultTicks, maxValue: maxValue, fixedMax: true, bounded: true}
}

// Add records value for series key at ts.
func (d *ValueData[T]) Add(key ChartKey, ts int64, value float64, data T) {
	if d.bounded {
		value = clamp(value, 0, d.maxValue)
	}
	if !d.fixedMax {
		d.maxValue = max(d.maxValue, value)
	}
	d.insert(key, ValueEntry[T]{ChartEntry: ChartEntry[T]{Timestamp: ts, Data: data}, Value: value})
}

// SetMaxValue fixes the top of the scale.
func (d *ValueData[T]) SetMaxValue(v float64) {
	d.maxValue = v
	d.fixedMax = true
}

// SetTicks sets how many value labels are generated.
func (d *ValueData[T]) SetTicks(n int) {
	d.ticks = max(n, 1)
}

// MaxValue returns the top of the scale.
func (d *ValueData[T]) MaxValue() float64 { return d.maxValue }

// Labels returns the value labels from the bottom of the scale up.
func (d *ValueData[T]) Labels() []string {
	if d.fixedLabels {
		return d.labels
	}
	return TickLabels(d.maxValue, d.ticks)
}

// TickLabels returns n evenly spaced labels from zero to maxValue.
func TickLabels(maxValue float64, n int) []string {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []string{formatTick(maxValue)}
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = formatTick(maxValue * float64(i) / float64(n-1))
	}
	return labels
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
