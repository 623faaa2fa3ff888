// Package telomere turns raw clade/repeat observations into clade entries:
// sets of distinct, non-degenerate telomeric repeat motifs per clade.
//
// The pipeline has three stages:
//
//	observations -> Aggregate (Group + Filter using Classify) -> Distinct -> []CladeEntry
//
// A repeat is kept only when it is primitive (not a whole-number tiling of a
// shorter unit) and not made of a single repeated character. Clades left with
// no informative repeat are dropped entirely.
package telomere
