package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseRange parses a CLI range argument of the form "5" or "3-6" into the
// inclusive list of integers it names, mirroring
// original_source/src/configuration.rs's parse_range.
func parseRange(s string) ([]int, error) {
	parts := strings.SplitN(s, "-", 2)
	begin, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", s, err)
	}
	end := begin
	if len(parts) == 2 {
		end, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", s, err)
		}
	}
	if end < begin {
		return nil, fmt.Errorf("range %q is empty", s)
	}
	out := make([]int, 0, end-begin+1)
	for n := begin; n <= end; n++ {
		out = append(out, n)
	}
	return out, nil
}
