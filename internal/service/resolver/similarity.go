package resolver

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// PartialRatio scores how well the shorter string matches its best aligned
// substring of the longer one, from 0 to 100. Every window of the longer
// string with the shorter string's length is compared by edit distance.
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	shortStr := string(short)
	best := 0
	for start := 0; start+len(short) <= len(long); start++ {
		window := string(long[start : start+len(short)])
		d := levenshtein.ComputeDistance(shortStr, window)
		score := int(math.Round(100 * (1 - float64(d)/float64(len(short)))))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}
