package telomere

import "strings"

// Verdict is the classification of a single repeat string.
type Verdict int

const (
	// Informative repeats are primitive and use more than one character.
	Informative Verdict = iota
	// TandemRepeat strings are whole-number tilings of a shorter prefix ("abab").
	TandemRepeat
	// Homopolymer strings consist of one repeated character ("aaaa", "t").
	Homopolymer
	// Empty is the zero-length string. The source reader never produces it.
	Empty
)

// String returns a short human readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case Informative:
		return "informative"
	case TandemRepeat:
		return "tandem repeat"
	case Homopolymer:
		return "homopolymer"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Keep reports whether a repeat with this verdict survives filtering.
func (v Verdict) Keep() bool {
	return v == Informative
}

// PrincipalPeriod returns the shortest prefix p of s such that s is p repeated
// a whole number of times. The second result is false when s is primitive.
//
// s is searched for inside s+s with the first and last positions excluded;
// the first match index is the period length.
func PrincipalPeriod(s string) (string, bool) {
	n := len(s)
	if n < 2 {
		return "", false
	}
	doubled := s + s
	i := strings.Index(doubled[1:2*n-1], s)
	if i < 0 {
		return "", false
	}
	return s[:i+1], true
}

// IsSingleCharRepeat reports whether every character of a non-empty s is the same.
func IsSingleCharRepeat(s string) bool {
	if s == "" {
		return false
	}
	var first rune
	for i, r := range s {
		if i == 0 {
			first = r
			continue
		}
		if r != first {
			return false
		}
	}
	return true
}

// Classify returns the verdict for s. It is total and never fails.
func Classify(s string) Verdict {
	if s == "" {
		return Empty
	}
	// Homopolymers longer than one character also have a principal period;
	// report them as homopolymers since that is the more specific reason.
	if IsSingleCharRepeat(s) {
		return Homopolymer
	}
	if _, ok := PrincipalPeriod(s); ok {
		return TandemRepeat
	}
	return Informative
}

// IsInformative reports whether s is kept by the classifier.
func IsInformative(s string) bool {
	return Classify(s).Keep()
}
