package utils

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ParsePriceToMinor converts a user-typed price in major units ("49.99")
// to integer minor units (4999). Malformed or non-positive input is an
// error; nothing NaN-derived ever reaches the wire.
func ParsePriceToMinor(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("price is required")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if f <= 0 {
		return 0, errors.New("price must be positive")
	}
	return int64(math.Round(f * 100)), nil
}

// FormatINR renders minor units with Indian digit grouping: 12345678 ->
// "₹1,23,456.78".
func FormatINR(minor int64) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	rupees := minor / 100
	paise := minor % 100

	s := strconv.FormatInt(rupees, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		s = strings.Join(groups, ",") + "," + tail
	}

	out := fmt.Sprintf("₹%s.%02d", s, paise)
	if neg {
		out = "-" + out
	}
	return out
}

// Truncate shortens s to at most n runes, appending an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// SanitizeFilename removes potentially dangerous characters
func SanitizeFilename(name string) string {
	re := regexp.MustCompile(`[^\w.\-]`)
	clean := re.ReplaceAllString(filepath.Base(name), "_")
	if clean == "" {
		return "file"
	}
	return clean
}
