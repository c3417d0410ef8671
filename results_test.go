package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankItems(t *testing.T) {
	tests := []struct {
		name     string
		is       items
		expected []rankedItem
	}{{
		"ties share a rank",
		items{newItem("A", 1600), newItem("B", 1600), newItem("C", 1500)},
		[]rankedItem{
			{1, newItem("A", 1600)},
			{1, newItem("B", 1600)},
			{3, newItem("C", 1500)},
		},
	}, {
		"sorted high to low",
		items{newItem("C", 1400), newItem("A", 1700), newItem("B", 1500)},
		[]rankedItem{
			{1, newItem("A", 1700)},
			{2, newItem("B", 1500)},
			{3, newItem("C", 1400)},
		},
	}, {
		"ties keep load order",
		items{newItem("D", 1450), newItem("B", 1500), newItem("A", 1500), newItem("C", 1450), newItem("E", 1300)},
		[]rankedItem{
			{1, newItem("B", 1500)},
			{1, newItem("A", 1500)},
			{3, newItem("D", 1450)},
			{3, newItem("C", 1450)},
			{5, newItem("E", 1300)},
		},
	}, {
		"empty",
		items{},
		[]rankedItem{},
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, rankItems(test.is))
		})
	}
}

func TestRankItemsLeavesInputAlone(t *testing.T) {
	is := items{newItem("C", 1400), newItem("A", 1700)}
	rankItems(is)
	assert.Equal(t, items{newItem("C", 1400), newItem("A", 1700)}, is)
}

func TestRenderResults(t *testing.T) {
	ranked := rankItems(items{newItem("A", 1600), newItem("B", 1600), newItem("C", 1500)})

	expected := "\n---- Ranked Results ----\n" +
		"  1) A (1600)\n" +
		"  1) B (1600)\n" +
		"  3) C (1500)\n"
	assert.Equal(t, expected, renderResults(ranked))
}

func TestDisplayResults(t *testing.T) {
	is := items{newItem("A", 1516), newItem("B", 1484)}

	tests := []struct {
		name  string
		input string
		mode  saveMode
		saved bool
	}{
		{"answer yes", "y\n", askToSave, true},
		{"answer upper yes", "Y\n", askToSave, true},
		{"answer no", "n\n", askToSave, false},
		{"no answer", "", askToSave, false},
		{"always", "", alwaysSave, true},
		{"never", "y\n", neverSave, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			var out bytes.Buffer
			c := newConsoleDecider(strings.NewReader(test.input), &out)

			path, err := displayResults(&out, c, is, dir, "movies", test.mode)
			require.NoError(t, err)
			assert.Contains(t, out.String(), "  1) A (1516)\n  2) B (1484)\n")

			if !test.saved {
				assert.Empty(t, path)
				assert.NoFileExists(t, filepath.Join(dir, "results_movies.txt"))
				return
			}

			assert.Equal(t, filepath.Join(dir, "results_movies.txt"), path)
			assert.Contains(t, out.String(), "Results saved to "+path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, renderResults(rankItems(is)), string(data))
		})
	}
}
