package tui

import (
	"fmt"
	"strconv"
	"strings"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline maps each value onto one of eight block heights scaled between
// the series minimum and maximum.
func sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = (v - lo) * (len(sparkRunes) - 1) / span
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// barGraph renders one labelled horizontal bar per value, scaled to width.
// Every bar gets at least one cell so small values stay visible.
func barGraph(values []int, width int) []string {
	if len(values) == 0 {
		return nil
	}
	labelW := 0
	lo, hi := values[0], values[0]
	for _, v := range values {
		if l := len(strconv.Itoa(v)); l > labelW {
			labelW = l
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	barW := width - labelW - 1
	if barW < 1 {
		barW = 1
	}
	span := hi - lo
	lines := make([]string, 0, len(values))
	for _, v := range values {
		n := barW
		if span > 0 {
			n = 1 + (v-lo)*(barW-1)/span
		}
		lines = append(lines, fmt.Sprintf("%*d %s", labelW, v, strings.Repeat("█", n)))
	}
	return lines
}
