package disfluency

import (
	"sort"
)

// Keys of the totals mapping.
const (
	KeyNasal       = "Nasal"
	KeyUM          = "UM"
	KeyHM          = "HM"
	KeyNonNasal    = "Non-Nasal"
	KeyUH          = "UH"
	KeyAH          = "AH"
	KeyER          = "ER"
	KeyPause       = "Pause"
	KeyRepetitions = "Repetitions"
	KeyBreak       = "Break"
)

// Total sums every category across units. Nasal is UM+HM and Non-Nasal is
// UH+AH+ER, derived from the category sums. No units yield an empty mapping.
func Total(units []Unit) map[string]int {
	totals := make(map[string]int)
	if len(units) == 0 {
		return totals
	}

	var sum Vector
	for _, u := range units {
		sum = sum.Add(u.Counts)
	}

	totals[KeyUM] = sum[UM]
	totals[KeyHM] = sum[HM]
	totals[KeyUH] = sum[UH]
	totals[KeyAH] = sum[AH]
	totals[KeyER] = sum[ER]
	totals[KeyPause] = sum[Pause]
	totals[KeyRepetitions] = sum[Repetition]
	totals[KeyBreak] = sum[Break]
	totals[KeyNasal] = sum[UM] + sum[HM]
	totals[KeyNonNasal] = sum[UH] + sum[AH] + sum[ER]
	return totals
}

// Distinct returns one unit per distinct text, in first-occurrence order,
// holding the last unit seen for that text.
func Distinct(units []Unit) []Unit {
	index := make(map[string]int, len(units))
	out := make([]Unit, 0, len(units))
	for _, u := range units {
		if i, ok := index[u.Text]; ok {
			out[i] = u
			continue
		}
		index[u.Text] = len(out)
		out = append(out, u)
	}
	return out
}

// ActVector is the disfluency sum for one dialog act.
type ActVector struct {
	Act    string
	Counts Vector
}

// PerAct sums the vectors of annotated units under each of their dialog
// acts. Units are keyed by text, so each distinct annotated text counts once.
// Results are sorted by act name.
func PerAct(units []Unit, acts map[string][]string) []ActVector {
	sums := make(map[string]Vector)
	for _, u := range Distinct(units) {
		for _, act := range acts[u.Text] {
			sums[act] = sums[act].Add(u.Counts)
		}
	}

	out := make([]ActVector, 0, len(sums))
	for act, v := range sums {
		out = append(out, ActVector{Act: act, Counts: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Act < out[j].Act })
	return out
}
