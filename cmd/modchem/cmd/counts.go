package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parseCounts reads button clicks off the command line. A bare id is one
// click, repeating it adds clicks and ID=N sets the count outright.
func parseCounts(args []string) (map[string]int, error) {
	counts := map[string]int{}
	for _, arg := range args {
		id, n, found := strings.Cut(arg, "=")
		if id == "" {
			return nil, fmt.Errorf("invalid click '%s'", arg)
		}
		if !found {
			counts[id]++
			continue
		}
		count, err := strconv.Atoi(n)
		if err != nil {
			return nil, fmt.Errorf("invalid count in '%s': %w", arg, err)
		}
		counts[id] = count
	}
	return counts, nil
}
