package fuzz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 100},
		{"barcelona", "barcelona", 100},
		{"abcd", "", 0},
		{"abcd", "abce", 75},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Ratio(test.a, test.b), "Ratio(%q, %q)", test.a, test.b)
	}
}

func TestRatioSymmetric(t *testing.T) {
	require.Equal(t, Ratio("luis diaz", "luiz diaz"), Ratio("luiz diaz", "luis diaz"))
}

func TestPartialRatio(t *testing.T) {
	// exact substring always scores 100
	require.Equal(t, 100, PartialRatio("barcelona", "rumors linking him to fc barcelona"))
	require.Equal(t, 100, PartialRatio("rumors linking him to fc barcelona", "barcelona"))
	require.Equal(t, 100, PartialRatio("luis diaz", "luis diaz"))

	// unrelated strings stay low
	require.Less(t, PartialRatio("barcelona", "linked to real madrid"), 60)

	// empty shorter side only matches another empty string
	require.Equal(t, 0, PartialRatio("", "barcelona"))
	require.Equal(t, 100, PartialRatio("", ""))
}

func TestPartialRatioCloseNames(t *testing.T) {
	// a one-rune difference within a window should still clear the
	// resolution threshold
	require.Greater(t, PartialRatio("joan garcia", "joan garcía fc profile"), 80)
}
