package telomere

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalPeriod(t *testing.T) {
	tests := []struct {
		in       string
		period   string
		periodic bool
	}{
		{"abab", "ab", true},
		{"aa", "a", true},
		{"aaaa", "a", true},
		{"abcabcabc", "abc", true},
		{"TTAGGTTAGG", "TTAGG", true},
		{"a", "", false},
		{"ab", "", false},
		{"aba", "", false},
		{"abc", "", false},
		{"ttagg", "", false},
		{"TTAGGG", "", false},
		{"abaab", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, ok := PrincipalPeriod(tt.in)
			assert.Equal(t, tt.periodic, ok)
			assert.Equal(t, tt.period, p)
			if ok {
				assert.Equal(t, tt.in, strings.Repeat(p, len(tt.in)/len(p)))
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Verdict
	}{
		{"", Empty},
		{"a", Homopolymer},
		{"T", Homopolymer},
		{"aaaa", Homopolymer},
		{"GGGGGG", Homopolymer},
		{"abab", TandemRepeat},
		{"TTAGGTTAGG", TandemRepeat},
		{"abc", Informative},
		{"ttagg", Informative},
		{"TTAGGG", Informative},
		{"TTTTAGGG", Informative},
		{"AG", Informative},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Classify(tt.in)
			assert.Equal(t, tt.want, got, "Classify(%q) = %s", tt.in, got)
			assert.Equal(t, tt.want == Informative, IsInformative(tt.in))
		})
	}
}

func TestSingleCharRepeatsAreExcluded(t *testing.T) {
	for _, c := range []string{"a", "c", "G", "T", "N"} {
		for n := 1; n <= 12; n++ {
			s := strings.Repeat(c, n)
			assert.False(t, IsInformative(s), "%q should be excluded", s)
		}
	}
}

func TestTilingsAreExcluded(t *testing.T) {
	for _, unit := range []string{"ab", "ttagg", "TTAGGG", "TCAGG", "xyz"} {
		for n := 2; n <= 5; n++ {
			s := strings.Repeat(unit, n)
			assert.Equal(t, TandemRepeat, Classify(s), "%q should be a tandem repeat", s)
		}
	}
}

func TestIsSingleCharRepeat(t *testing.T) {
	assert.False(t, IsSingleCharRepeat(""))
	assert.True(t, IsSingleCharRepeat("x"))
	assert.True(t, IsSingleCharRepeat("ééé"))
	assert.False(t, IsSingleCharRepeat("éée"))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "informative", Informative.String())
	assert.Equal(t, "tandem repeat", TandemRepeat.String())
	assert.Equal(t, "homopolymer", Homopolymer.String())
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "unknown", Verdict(42).String())
	assert.True(t, Informative.Keep())
	assert.False(t, Homopolymer.Keep())
}
