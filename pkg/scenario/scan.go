package scenario

// NthConsecutive scans outcomes from index from and returns the index at which
// the k-th consecutive occurrence of want is observed. The counter resets each
// time the opposite outcome shows up, the way kubelet counts probe results.
func NthConsecutive(outcomes []bool, want bool, k, from int) (int, bool) {
	if k < 1 {
		return -1, false
	}
	if from < 0 {
		from = 0
	}
	run := 0
	for i := from; i < len(outcomes); i++ {
		if outcomes[i] != want {
			run = 0
			continue
		}
		run++
		if run == k {
			return i, true
		}
	}
	return -1, false
}

// IndexAtOrAfter returns the first index whose timestamp is >= t,
// or len(timestamps) when every sample is earlier
func IndexAtOrAfter(timestamps []float64, t float64) int {
	lo, hi := 0, len(timestamps)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if timestamps[mid] < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
