package telomere

import "sort"

// Observation is one source row: a clade and, when Present, its telomeric repeat.
type Observation struct {
	Clade   string
	Repeat  string
	Present bool
}

// Observed returns an Observation carrying a repeat value.
func Observed(clade, repeat string) Observation {
	return Observation{Clade: clade, Repeat: repeat, Present: true}
}

// Absent returns an Observation for a row whose repeat cell was missing.
func Absent(clade string) Observation {
	return Observation{Clade: clade}
}

// CladeGroup is a clade name plus its repeats in source order.
// Before filtering it may hold duplicates and degenerate repeats.
type CladeGroup struct {
	Clade   string
	Repeats []string
}

// AggregateOptions tunes Aggregate.
type AggregateOptions struct {
	// SortClades orders groups by clade name instead of first appearance.
	SortClades bool
}

// Group collects observations by clade in first-seen order, preserving the
// relative order of repeats inside each group. Absent and empty repeats are
// dropped; a clade whose every row was absent still gets an (empty) group.
func Group(obs []Observation) []CladeGroup {
	index := make(map[string]int)
	var groups []CladeGroup

	for _, o := range obs {
		i, ok := index[o.Clade]
		if !ok {
			i = len(groups)
			index[o.Clade] = i
			groups = append(groups, CladeGroup{Clade: o.Clade})
		}
		if !o.Present || o.Repeat == "" {
			continue
		}
		groups[i].Repeats = append(groups[i].Repeats, o.Repeat)
	}

	return groups
}

// Filter returns a copy of g holding only informative repeats, order preserved.
func Filter(g CladeGroup) CladeGroup {
	out := CladeGroup{Clade: g.Clade}
	for _, r := range g.Repeats {
		if IsInformative(r) {
			out.Repeats = append(out.Repeats, r)
		}
	}
	return out
}

// Partition groups observations and filters every group. Groups with at least
// one informative repeat are returned filtered in kept; the others are returned
// unfiltered in dropped. With opts.SortClades both are ordered by clade name.
func Partition(obs []Observation, opts AggregateOptions) (kept, dropped []CladeGroup) {
	for _, g := range Group(obs) {
		f := Filter(g)
		if len(f.Repeats) == 0 {
			dropped = append(dropped, g)
			continue
		}
		kept = append(kept, f)
	}

	if opts.SortClades {
		sortGroups(kept)
		sortGroups(dropped)
	}

	return kept, dropped
}

// Aggregate groups observations and filters every group, dropping groups
// left without any informative repeat.
func Aggregate(obs []Observation, opts AggregateOptions) []CladeGroup {
	kept, _ := Partition(obs, opts)
	return kept
}

func sortGroups(groups []CladeGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Clade < groups[j].Clade
	})
}
