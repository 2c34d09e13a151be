package freq

import "sort"

// Entry is one (type, count) row of a frequency distribution.
type Entry struct {
	Type  string
	Count int
}

// Distribution maps each type to its occurrence count. The sum of all counts
// equals the number of tokens it was built from.
type Distribution struct {
	counts map[string]int
	order  []string // first-occurrence order
	total  int
}

// Build counts tokens into a distribution.
func Build(tokens []string) *Distribution {
	d := &Distribution{counts: make(map[string]int)}
	for _, tok := range tokens {
		if _, ok := d.counts[tok]; !ok {
			d.order = append(d.order, tok)
		}
		d.counts[tok]++
		d.total++
	}
	return d
}

// Count returns how often typ occurred.
func (d *Distribution) Count(typ string) int {
	return d.counts[typ]
}

// Total returns the number of tokens counted.
func (d *Distribution) Total() int {
	return d.total
}

// Len returns the number of distinct types.
func (d *Distribution) Len() int {
	return len(d.order)
}

// Counts returns a copy of the type -> count mapping.
func (d *Distribution) Counts() map[string]int {
	out := make(map[string]int, len(d.counts))
	for k, v := range d.counts {
		out[k] = v
	}
	return out
}

// ranked returns every entry by count descending, ties in first-occurrence order.
func (d *Distribution) ranked() []Entry {
	out := make([]Entry, len(d.order))
	for i, typ := range d.order {
		out[i] = Entry{Type: typ, Count: d.counts[typ]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// MostFrequent returns the k most frequent types. k <= 0 returns all of them.
func (d *Distribution) MostFrequent(k int) []Entry {
	ranked := d.ranked()
	if k > 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// LeastFrequent returns the MostFrequent ordering reversed, truncated to k
// entries. k <= 0 returns all of them.
func (d *Distribution) LeastFrequent(k int) []Entry {
	ranked := d.ranked()
	for i, j := 0, len(ranked)-1; i < j; i, j = i+1, j-1 {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	}
	if k > 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}
