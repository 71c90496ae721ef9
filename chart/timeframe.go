package chart

import (
	"errors"
	"fmt"
)

// ErrInvertedFrame is returned when a time frame would end before it starts.
var ErrInvertedFrame = errors.New("time frame ends before it starts")

// TimeFrame is the closed interval of timestamps currently visible on the
// horizontal axis.
type TimeFrame struct {
	start, end int64
}

// NewTimeFrame returns the frame [start,end]. A zero-length frame is valid.
func NewTimeFrame(start, end int64) (TimeFrame, error) {
	if start > end {
		return TimeFrame{}, fmt.Errorf("new frame [%d,%d]: %w", start, end, ErrInvertedFrame)
	}
	return TimeFrame{start: start, end: end}, nil
}

// Start returns the earliest visible timestamp.
func (f TimeFrame) Start() int64 { return f.start }

// End returns the latest visible timestamp.
func (f TimeFrame) End() int64 { return f.end }

// Duration returns the length of the frame in timestamp units.
func (f TimeFrame) Duration() int64 { return f.end - f.start }

// Contains reports whether ts falls within the frame.
func (f TimeFrame) Contains(ts int64) bool {
	return ts >= f.start && ts <= f.end
}

func (f TimeFrame) String() string {
	return fmt.Sprintf("[%d,%d]", f.start, f.end)
}

// Bounds returns the smallest frame holding every entry of every key. The
// entries of each key must be sorted by timestamp. ok is false when there
// are no entries at all.
func Bounds[E Timed](keys []ChartKey, entries func(ChartKey) []E) (frame TimeFrame, ok bool) {
	for _, key := range keys {
		es := entries(key)
		if len(es) == 0 {
			continue
		}
		first, last := es[0].Time(), es[len(es)-1].Time()
		if !ok {
			frame = TimeFrame{start: first, end: last}
			ok = true
			continue
		}
		frame.start = min(frame.start, first)
		frame.end = max(frame.end, last)
	}
	return frame, ok
}
