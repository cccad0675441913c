package profiling

import (
	"maps"
	"sort"
	"strings"
	"sync"
	"time"
)

// Named-section timing accumulation for the meshing hot paths
// (visibility-mask derivation and chunk meshing).
// Track never performs I/O itself; callers decide when to read a
// Snapshot or TopN and log it.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("voxelspace.GenerateVisibilityMask")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// Reset clears every accumulated total. Call at whatever cadence the
// caller reports on (per batch, per export, periodically).
func Reset() {
	mu.Lock()
	for k := range totals {
		delete(totals, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of the current accumulated totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	maps.Copy(out, totals)
	return out
}

// Total returns the sum of every tracked section's duration.
func Total() time.Duration {
	ss := Snapshot()
	var sum time.Duration
	for _, v := range ss {
		sum += v
	}
	return sum
}

// SumWithPrefix returns the sum of durations whose section name starts
// with any of the given prefixes, e.g. SumWithPrefix("mesher.") to
// isolate meshing time from voxelspace time.
func SumWithPrefix(prefixes ...string) time.Duration {
	ss := Snapshot()
	var sum time.Duration
	for k, v := range ss {
		for _, p := range prefixes {
			if strings.HasPrefix(k, p) {
				sum += v
				break
			}
		}
	}
	return sum
}

// Add records an arbitrary duration under name without timing it
// directly, for sections measured by the caller's own clock.
func Add(name string, d time.Duration) {
	if d <= 0 {
		return
	}
	mu.Lock()
	totals[name] += d
	mu.Unlock()
}

// TopN formats the N longest-running sections as
// "name:duration, name:duration, ...", longest first.
func TopN(n int) string {
	mu.Lock()
	defer mu.Unlock()

	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(totals))
	for k, v := range totals {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, list[i].name+":"+formatMs(ms))
	}
	return strings.Join(parts, ", ")
}

func formatMs(ms float64) string {
	// keep one decimal for readability
	return trimTrailingZerosF(ms) + "ms"
}

func trimTrailingZerosF(f float64) string {
	// Format with one decimal place; drop .0 if integer.
	// Avoid fmt to keep this tiny; manual logic is fine here.
	whole := int64(f)
	frac := int64((f-float64(whole))*10.0 + 0.0001)
	if frac <= 0 {
		return itoa(whole)
	}
	return itoa(whole) + "." + itoa(frac)
}

func itoa(i int64) string {
	if i == 0 {
		return "0"
	}
	neg := false
	if i < 0 {
		neg = true
		i = -i
	}
	buf := make([]byte, 0, 20)
	for i > 0 {
		d := i % 10
		buf = append(buf, byte('0'+d))
		i /= 10
	}
	// reverse
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}
