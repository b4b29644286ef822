package bitvec

// Span selects bits by a half-open range with a step, normalized the way
// Python normalizes slices: negative bounds count back from the end, bounds
// past either end are clamped, and a negative Step walks backwards.
//
// A nil Start or Stop leaves that end open. A zero Step means 1, so the zero
// Span selects every bit.
type Span struct {
	Start *int
	Stop  *int
	Step  int
}

// All selects every bit.
func All() Span { return Span{} }

// Range selects [start, stop).
func Range(start, stop int) Span {
	return Span{Start: &start, Stop: &stop}
}

// RangeStep selects start, start+step, ... up to but excluding stop.
func RangeStep(start, stop, step int) Span {
	return Span{Start: &start, Stop: &stop, Step: step}
}

// From selects [start, size).
func From(start int) Span { return Span{Start: &start} }

// To selects [0, stop).
func To(stop int) Span { return Span{Stop: &stop} }

// Indices normalizes the span against size. The selected positions are
// start + j*step for j in [0, n).
func (s Span) Indices(size int) (start, step, n int) {
	step = s.Step
	if step == 0 {
		step = 1
	}

	if s.Start == nil {
		if step < 0 {
			start = size - 1
		}
	} else {
		start = clampBound(*s.Start, size, step)
	}

	var stop int
	if s.Stop == nil {
		if step < 0 {
			stop = -1
		} else {
			stop = size
		}
	} else {
		stop = clampBound(*s.Stop, size, step)
	}

	if step < 0 {
		if stop < start {
			n = (start-stop-1)/(-step) + 1
		}
		return start, step, n
	}
	if start < stop {
		n = (stop-start-1)/step + 1
	}
	return start, step, n
}

func clampBound(i, size, step int) int {
	if i < 0 {
		i += size
		if i < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return i
	}
	if i >= size {
		if step < 0 {
			return size - 1
		}
		return size
	}
	return i
}
