package render

import (
	"fmt"
	"math"
	"sort"
)

func formatTick(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

type linearScale struct {
	min, max float64
}

// newScale spans values; a degenerate span is widened by one unit each way
// so a single value lands in the middle.
func newScale(values ...float64) linearScale {
	s := linearScale{min: math.Inf(1), max: math.Inf(-1)}
	for _, v := range values {
		s.min = math.Min(s.min, v)
		s.max = math.Max(s.max, v)
	}
	if math.IsInf(s.min, 0) {
		return linearScale{min: 0, max: 1}
	}
	if s.min == s.max {
		s.min--
		s.max++
	}
	return s
}

// pos maps v onto 0..n-1.
func (s linearScale) pos(v float64, n int) int {
	if n <= 1 {
		return 0
	}
	p := int(math.Round((v - s.min) / (s.max - s.min) * float64(n-1)))
	return max(0, min(n-1, p))
}

// at is the inverse of pos.
func (s linearScale) at(p, n int) float64 {
	if n <= 1 {
		return s.min
	}
	return s.min + (s.max-s.min)*float64(p)/float64(n-1)
}

// percentile uses linear interpolation between closest ranks, the numpy
// default. sorted must be ascending and non-empty.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := q * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

type boxStats struct {
	Q1, Median, Q3 float64
	// Whiskers reach the most extreme samples within 1.5 IQR of the box.
	LowWhisker, HighWhisker float64
	Outliers                []float64
	N                       int
}

func newBoxStats(values []float64) boxStats {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	st := boxStats{
		Q1:     percentile(sorted, 0.25),
		Median: percentile(sorted, 0.5),
		Q3:     percentile(sorted, 0.75),
		N:      len(sorted),
	}

	iqr := st.Q3 - st.Q1
	lowFence := st.Q1 - 1.5*iqr
	highFence := st.Q3 + 1.5*iqr

	st.LowWhisker = st.Q1
	st.HighWhisker = st.Q3
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			st.Outliers = append(st.Outliers, v)
			continue
		}
		st.LowWhisker = math.Min(st.LowWhisker, v)
		st.HighWhisker = math.Max(st.HighWhisker, v)
	}

	return st
}
