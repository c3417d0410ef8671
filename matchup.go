package main

import (
	"math/rand"

	"github.com/pkg/errors"
)

var errInsufficientItems = errors.New("at least two items are needed for a matchup")

const (
	randomMatchmaker   = "random"
	balancedMatchmaker = "balanced"
	closeMatchmaker    = "close"
)

// matchmaker chooses the next pair to compare. played holds the number of
// matchups each item has been in this session, indexed like is. pick is only
// called with two or more items and must return two different indexes.
type matchmaker interface {
	pick(is items, played []int, rnd *rand.Rand) (int, int)
}

type matchmakerFunc func(is items, played []int, rnd *rand.Rand) (int, int)

func (f matchmakerFunc) pick(is items, played []int, rnd *rand.Rand) (int, int) {
	return f(is, played, rnd)
}

func newMatchmaker(name string) (matchmaker, error) {
	switch name {
	case randomMatchmaker, "":
		return matchmakerFunc(pickRandom), nil
	case balancedMatchmaker:
		return matchmakerFunc(pickBalanced), nil
	case closeMatchmaker:
		return matchmakerFunc(pickClose), nil
	}

	return nil, errors.Errorf("unknown matchmaker %q", name)
}

func selectMatchup(m matchmaker, is items, played []int, rnd *rand.Rand) (int, int, error) {
	if len(is) < 2 {
		return 0, 0, errors.Wrapf(errInsufficientItems, "have %d", len(is))
	}

	i, j := m.pick(is, played, rnd)
	return i, j, nil
}

// pickRandom draws two distinct items uniformly.
func pickRandom(is items, _ []int, rnd *rand.Rand) (int, int) {
	i := rnd.Intn(len(is))
	j := rnd.Intn(len(is) - 1)
	if j >= i {
		j++
	}

	return i, j
}

// pickBalanced favours the items that have been compared the least.
func pickBalanced(is items, played []int, rnd *rand.Rand) (int, int) {
	i := choose(leastPlayed(played, -1), rnd)
	j := choose(leastPlayed(played, i), rnd)
	return i, j
}

func leastPlayed(played []int, skip int) []int {
	var least []int
	fewest := -1
	for i, n := range played {
		if i == skip {
			continue
		}
		switch {
		case fewest == -1 || n < fewest:
			fewest = n
			least = append(least[:0], i)
		case n == fewest:
			least = append(least, i)
		}
	}

	return least
}

// pickClose pairs a random item with its nearest rated opponent.
func pickClose(is items, _ []int, rnd *rand.Rand) (int, int) {
	i := rnd.Intn(len(is))

	var nearest []int
	gap := rating(-1)
	for j := range is {
		if j == i {
			continue
		}
		d := is[j].Rating - is[i].Rating
		if d < 0 {
			d = -d
		}
		switch {
		case gap == -1 || d < gap:
			gap = d
			nearest = append(nearest[:0], j)
		case d == gap:
			nearest = append(nearest, j)
		}
	}

	return i, choose(nearest, rnd)
}

func choose(candidates []int, rnd *rand.Rand) int {
	return candidates[rnd.Intn(len(candidates))]
}
