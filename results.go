package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type rankedItem struct {
	Rank int
	item
}

type byRating items

func (r byRating) Less(i, j int) bool { return r[i].Rating > r[j].Rating }
func (r byRating) Len() int           { return len(r) }
func (r byRating) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }

// rankItems orders a copy of is by rating, highest first. Equal ratings share
// the rank of the first item with that rating and keep their load order.
func rankItems(is items) []rankedItem {
	sorted := make(items, len(is))
	copy(sorted, is)
	sort.Stable(byRating(sorted))

	ranked := make([]rankedItem, len(sorted))
	for i, it := range sorted {
		rank := i + 1
		if i > 0 && sorted[i-1].Rating == it.Rating {
			rank = ranked[i-1].Rank
		}
		ranked[i] = rankedItem{Rank: rank, item: it}
	}

	return ranked
}

func renderResults(ranked []rankedItem) string {
	var buf bytes.Buffer
	buf.WriteString("\n---- Ranked Results ----\n")
	for _, r := range ranked {
		fmt.Fprintf(&buf, "%3d) %s (%d)\n", r.Rank, r.Name, r.Rating)
	}

	return buf.String()
}

func resultsPath(dir, base string) string {
	return filepath.Join(dir, "results_"+base+".txt")
}

func writeResults(path, rendered string) error {
	err := os.WriteFile(path, []byte(rendered), 0644)
	return errors.Wrapf(err, "unable to write results to %s", path)
}

type saveMode int

const (
	askToSave saveMode = iota
	alwaysSave
	neverSave
)

// displayResults prints the ranking and, depending on mode, offers to save
// it next to the rankinfo file. It returns the results path when written.
func displayResults(out io.Writer, c *consoleDecider, is items, dir, base string, mode saveMode) (string, error) {
	rendered := renderResults(rankItems(is))
	fmt.Fprintln(out, rendered)

	save := mode == alwaysSave
	if mode == askToSave {
		answer, err := c.readLine("Save results to file? (y/n) ")
		if err != nil {
			return "", err
		}
		save = strings.EqualFold(answer, "y")
	}
	if !save {
		return "", nil
	}

	path := resultsPath(dir, base)
	if err := writeResults(path, rendered); err != nil {
		return "", err
	}
	fmt.Fprintf(out, "Results saved to %s\n", path)

	return path, nil
}
