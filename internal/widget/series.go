package widget

import (
	"strconv"
	"strings"
)

// Series is an ordered trace of historical readings. It is fixed for the
// duration of a render pass.
type Series []int

func (s Series) Len() int { return len(s) }

func (s Series) Min() int {
	if len(s) == 0 {
		return 0
	}
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func (s Series) Max() int {
	if len(s) == 0 {
		return 0
	}
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Avg is the floor of sum/len. Floor, not truncation: a negative sum must
// round toward negative infinity to match the dashboard's other consumers.
func (s Series) Avg() int {
	if len(s) == 0 {
		return 0
	}
	sum := 0
	for _, v := range s {
		sum += v
	}
	return floorDiv(sum, len(s))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Join renders the series as the comma-separated list embedded in sparkline
// and graph directives.
func (s Series) Join() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
