package version

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Compare compares dotted versions part by part, returning 1, -1 or 0.
// Missing or non-numeric parts count as 0, a leading "v" is ignored.
func Compare(a, b string) int {
	pa, pb := parts(a), parts(b)
	length := max(len(pa), len(pb))

	for i := 0; i < length; i++ {
		pair := lo.T2(at(pa, i), at(pb, i))
		if pair.A > pair.B {
			return 1
		}
		if pair.A < pair.B {
			return -1
		}
	}

	return 0
}

func parts(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	return lo.Map(strings.Split(v, "."), func(part string, _ int) int {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0
		}
		return n
	})
}

func at(parts []int, i int) int {
	if i < len(parts) {
		return parts[i]
	}
	return 0
}
