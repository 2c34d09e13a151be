package disfluency

import (
	"fmt"
	"io"
	"strconv"
)

// WriteUnits prints one fixed-width row per distinct unit:
// UM UH AH ER HM Pauses Reps Breaks Words Text.
func WriteUnits(w io.Writer, units []Unit) error {
	const row = "%-7s%-7s%-7s%-7s%-7s%-7s%-7s%-7s%-7s%-50s\n"
	if _, err := fmt.Fprintf(w, row, "UM", "UH", "AH", "ER", "HM", "Pauses", "Reps", "Breaks", "Words", "Text"); err != nil {
		return err
	}
	for _, u := range Distinct(units) {
		v := u.Counts
		_, err := fmt.Fprintf(w, row,
			itoa(v[UM]), itoa(v[UH]), itoa(v[AH]), itoa(v[ER]), itoa(v[HM]),
			itoa(v[Pause]), itoa(v[Repetition]), itoa(v[Break]), itoa(u.Words), u.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

// WritePerAct prints one fixed-width row per dialog act.
func WritePerAct(w io.Writer, acts []ActVector) error {
	const row = "%-7s%-7s%-7s%-7s%-7s%-7s%-7s%-7s%-100s\n"
	if _, err := fmt.Fprintf(w, row, "UM", "UH", "AH", "ER", "HM", "Pauses", "Reps", "Breaks", "Dialog Act"); err != nil {
		return err
	}
	for _, a := range acts {
		v := a.Counts
		_, err := fmt.Fprintf(w, row,
			itoa(v[UM]), itoa(v[UH]), itoa(v[AH]), itoa(v[ER]), itoa(v[HM]),
			itoa(v[Pause]), itoa(v[Repetition]), itoa(v[Break]), a.Act)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteTotals prints the totals mapping as a tab-separated header and row.
func WriteTotals(w io.Writer, totals map[string]int) error {
	if _, err := fmt.Fprintln(w, "Nasal\tUM\tHM\tNon-Nasal\tUH\tAH\tER\tSilent Pauses\tRepetitions\tBreaks"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t\t%d\t%d\t%d\t%d\t\t%d\t\t%d\n",
		totals[KeyNasal], totals[KeyUM], totals[KeyHM], totals[KeyNonNasal],
		totals[KeyUH], totals[KeyAH], totals[KeyER], totals[KeyPause],
		totals[KeyRepetitions], totals[KeyBreak])
	return err
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
