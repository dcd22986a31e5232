// Package geometry provides the pure integer arithmetic behind the splitter:
// clamping against pane bounds, proportional apportionment of pixel totals,
// and conversion of pointer deltas into legal size changes.
//
// Every function works on whole pixels. Fractional shares are resolved with
// the largest-remainder rule (see Apportion) so totals are always conserved.
// A max bound of 0 or less means "unbounded".
package geometry

import "sort"

// Span describes one pane for delta computations.
type Span struct {
	Size int
	Min  int
	Max  int // <= 0 means unbounded
}

// Clamp limits v to [lo, hi]. hi <= 0 leaves the upper side open.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}

// Apportion splits total into len(weights) integer parts proportional to the
// weights. Each part gets the floor of its exact share; the leftover units go
// to the parts with the largest remainders, ties to the lower index. Negative
// weights count as zero and an all-zero weight vector means equal shares.
// The parts always sum to total when total > 0; a non-positive total yields zeros.
func Apportion(total int, weights []int) []int {
	n := len(weights)
	out := make([]int, n)
	if n == 0 || total <= 0 {
		return out
	}

	ws := make([]int64, n)
	var sumW int64
	for i, w := range weights {
		if w > 0 {
			ws[i] = int64(w)
			sumW += int64(w)
		}
	}
	if sumW == 0 {
		for i := range ws {
			ws[i] = 1
		}
		sumW = int64(n)
	}

	remainders := make([]int64, n)
	assigned := 0
	for i := range ws {
		num := int64(total) * ws[i]
		out[i] = int(num / sumW)
		remainders[i] = num % sumW
		assigned += out[i]
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})

	for k := 0; k < total-assigned; k++ {
		out[order[k%n]]++
	}
	return out
}

// EqualShares splits total into n parts differing by at most one pixel,
// the larger parts first.
func EqualShares(total, n int) []int {
	if n <= 0 {
		return nil
	}
	return Apportion(total, make([]int, n))
}

// ScaleProportional rescales sizes from oldTotal to newTotal, preserving
// proportions: size*newTotal/oldTotal, rounded by Apportion. When the sizes
// sum to oldTotal the result sums to newTotal exactly. Without a usable
// baseline (oldTotal <= 0 or all sizes zero) the result is equal shares.
func ScaleProportional(sizes []int, oldTotal, newTotal int) []int {
	sum := Sum(sizes)
	if oldTotal <= 0 || sum <= 0 {
		return EqualShares(newTotal, len(sizes))
	}

	target := newTotal
	if sum != oldTotal {
		target = int(int64(sum) * int64(newTotal) / int64(oldTotal))
	}
	return Apportion(target, sizes)
}

// Sum adds up the values.
func Sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// Reconcile is the clamp-and-redistribute pass. It clamps every size to its
// bounds, then moves the difference between target and the clamped sum onto
// panes that still have room: reductions are spread over panes above their
// minimum in proportion to that slack, growth over panes below their maximum
// in proportion to the headroom (unbounded panes absorb growth first, in
// proportion to their current size). It repeats until the sum matches target
// or no pane has room left.
//
// The residual is target minus the final sum. A negative residual means the
// minimums alone exceed target (layout overflow); a positive one means every
// pane sits at its maximum. Bounds are never violated to hide a residual.
func Reconcile(sizes, mins, maxs []int, target int) (out []int, residual int) {
	n := len(sizes)
	out = make([]int, n)
	for i := range sizes {
		out[i] = Clamp(sizes[i], boundAt(mins, i), boundAt(maxs, i))
	}

	for pass := 0; pass <= n; pass++ {
		diff := target - Sum(out)
		switch {
		case diff == 0:
			return out, 0
		case diff < 0:
			if !shrink(out, mins, -diff) {
				return out, target - Sum(out)
			}
		default:
			if !grow(out, maxs, diff) {
				return out, target - Sum(out)
			}
		}
	}
	return out, target - Sum(out)
}

func shrink(out, mins []int, need int) bool {
	slack := make([]int, len(out))
	total := 0
	for i := range out {
		if s := out[i] - boundAt(mins, i); s > 0 {
			slack[i] = s
			total += s
		}
	}
	if total == 0 {
		return false
	}
	if need > total {
		need = total
	}
	for i, cut := range Apportion(need, slack) {
		out[i] -= min(cut, slack[i])
	}
	return true
}

func grow(out, maxs []int, need int) bool {
	var open []int
	for i := range out {
		if boundAt(maxs, i) <= 0 {
			open = append(open, i)
		}
	}

	if len(open) > 0 {
		weights := make([]int, len(open))
		for k, i := range open {
			weights[k] = out[i]
		}
		for k, add := range Apportion(need, weights) {
			out[open[k]] += add
		}
		return true
	}

	headroom := make([]int, len(out))
	total := 0
	for i := range out {
		if h := boundAt(maxs, i) - out[i]; h > 0 {
			headroom[i] = h
			total += h
		}
	}
	if total == 0 {
		return false
	}
	if need > total {
		need = total
	}
	for i, add := range Apportion(need, headroom) {
		out[i] += min(add, headroom[i])
	}
	return true
}

func boundAt(bounds []int, i int) int {
	if i < len(bounds) {
		return bounds[i]
	}
	return 0
}

// DeltaRange returns the legal range of a divider delta for the adjacent
// pair (lead gains delta, trail loses it). The range always contains 0 so a
// pair that already sits outside its bounds is never forced to jump.
func DeltaRange(lead, trail Span) (lo, hi int) {
	lo = lead.Min - lead.Size
	if trail.Max > 0 {
		lo = max(lo, trail.Size-trail.Max)
	}

	hi = trail.Size - trail.Min
	if lead.Max > 0 {
		hi = min(hi, lead.Max-lead.Size)
	}

	if lo > 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	return lo, hi
}

// ClampDelta limits delta to the pair's legal range.
func ClampDelta(delta int, lead, trail Span) int {
	lo, hi := DeltaRange(lead, trail)
	if delta < lo {
		return lo
	}
	if delta > hi {
		return hi
	}
	return delta
}
