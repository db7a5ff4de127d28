package eval

import (
	"math"
	"sort"
)

// #region roc-curve

// rocCurve sweeps a threshold over the distinct margins in descending
// order and returns the curve points ordered by increasing FPR, plus
// the trapezoidal area under them. The caller guarantees both classes
// are present. The leading +Inf threshold pins the curve at (0,0);
// the final point is always (1,1).
func rocCurve(margins []float64, positive []bool) ([]ROCPoint, float64) {
	var pos, neg int
	for _, p := range positive {
		if p {
			pos++
		} else {
			neg++
		}
	}

	order := make([]int, len(margins))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return margins[order[i]] > margins[order[j]] })

	points := []ROCPoint{{Threshold: math.Inf(1), FPR: 0, TPR: 0}}
	tp, fp := 0, 0
	for i := 0; i < len(order); {
		// Consume the whole group of equal margins before emitting a
		// point, so ties produce one diagonal segment instead of an
		// order-dependent staircase.
		threshold := margins[order[i]]
		for i < len(order) && margins[order[i]] == threshold {
			if positive[order[i]] {
				tp++
			} else {
				fp++
			}
			i++
		}
		points = append(points, ROCPoint{
			Threshold: threshold,
			FPR:       float64(fp) / float64(neg),
			TPR:       float64(tp) / float64(pos),
		})
	}

	var auc float64
	for i := 1; i < len(points); i++ {
		auc += (points[i].FPR - points[i-1].FPR) * (points[i].TPR + points[i-1].TPR) / 2
	}
	return points, auc
}

// #endregion roc-curve
