package overtop

// Window is one contiguous sub sequence of an observation series.
type Window struct {
	Start  int
	Length int
}

func (w Window) End() int {
	return w.Start + w.Length
}

func SlidingWindowCount(step int) int {
	if step < 1 {
		step = DefaultStep
	}
	return SlidingRange/step + 1
}

// WindowCount is the sliding window count plus the full span window.
func WindowCount(step int) int {
	return SlidingWindowCount(step) + 1
}

// Windows generates the 30 sample sliding windows at the given stride,
// followed by the full span window over the first 50 samples. the full
// span window ignores the stride, it is always series[0:50].
func Windows(step int) []Window {
	if step < 1 {
		step = DefaultStep
	}
	res := make([]Window, 0, WindowCount(step))
	for j := 0; j < SlidingWindowCount(step); j++ {
		res = append(res, Window{Start: j * step, Length: WindowLength})
	}
	res = append(res, Window{Start: 0, Length: FullSpanLength})
	return res
}
