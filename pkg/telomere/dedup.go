package telomere

import (
	"context"
	"slices"

	"github.com/tolkit/cladegen/pkg/logging"
)

// CladeEntry is a clade with its distinct informative motifs.
// Motifs are sorted lexicographically and Length always equals len(Motifs).
type CladeEntry struct {
	Name   string   `json:"name" yaml:"name"`
	Label  string   `json:"label" yaml:"label"`
	Motifs []string `json:"motifs" yaml:"motifs"`
	Length int      `json:"length" yaml:"length"`
}

// Distinct returns the distinct values of repeats in lexicographic order.
// The input slice is not modified.
func Distinct(repeats []string) []string {
	if len(repeats) == 0 {
		return nil
	}
	out := slices.Clone(repeats)
	slices.Sort(out)
	return slices.Compact(out)
}

// NewEntry builds the clade entry for a filtered group.
func NewEntry(g CladeGroup) CladeEntry {
	motifs := Distinct(g.Repeats)
	return CladeEntry{
		Name:   g.Clade,
		Label:  DisplayLabel(g.Clade),
		Motifs: motifs,
		Length: len(motifs),
	}
}

// Build runs the whole pipeline over obs and returns one entry per clade
// that has at least one informative motif, in aggregation order.
func Build(ctx context.Context, obs []Observation, opts AggregateOptions) []CladeEntry {
	kept, dropped := Partition(obs, opts)

	for _, g := range dropped {
		logging.FromContext(logging.WithClade(ctx, g.Clade)).Debug().
			Int("repeats", len(g.Repeats)).
			Msg("Dropping clade without informative repeats")
	}

	entries := make([]CladeEntry, 0, len(kept))
	for _, g := range kept {
		e := NewEntry(g)
		logging.FromContext(logging.WithClade(ctx, e.Name)).Trace().
			Strs("motifs", e.Motifs).
			Msg("Built clade entry")
		entries = append(entries, e)
	}

	logging.FromContext(ctx).Debug().
		Int("observations", len(obs)).
		Int("clades", len(kept)+len(dropped)).
		Int("entries", len(entries)).
		Msg("Built clade entries")

	return entries
}

// Find returns the entry named clade.
func Find(entries []CladeEntry, clade string) (CladeEntry, bool) {
	for _, e := range entries {
		if e.Name == clade {
			return e, true
		}
	}
	return CladeEntry{}, false
}
