package tag

import (
	"fmt"
	"io"
)

// WriteCounts prints the tag histogram as fixed-width "Tag Count" rows,
// most frequent first.
func WriteCounts(w io.Writer, counts map[string]int) error {
	const row = "%-10s%-7s\n"
	if _, err := fmt.Fprintf(w, row, "Tag", "Count"); err != nil {
		return err
	}
	for _, tc := range SortedCounts(counts) {
		if _, err := fmt.Fprintf(w, row, tc.Tag, fmt.Sprint(tc.Count)); err != nil {
			return err
		}
	}
	return nil
}
