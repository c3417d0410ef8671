package main

import "math"

const deviation = 400
const defaultK = 32
const defaultRating = 1500

type rating int

// expected is the probability that r beats m.
func (r rating) expected(m rating) float64 {
	return 1 / (1 + math.Pow(10, float64(m-r)/deviation))
}

func (r rating) won(m rating, k int) rating {
	// r + k * (1 - E)
	return r + delta(k, 1-r.expected(m))
}

func (r rating) lost(m rating, k int) rating {
	// r + k * (0 - E)
	return r + delta(k, 0-r.expected(m))
}

// delta is rounded per side and per update, half to even.
func delta(k int, d float64) rating {
	return rating(math.RoundToEven(float64(k) * d))
}

func expectedScore(a, b rating) float64 {
	return a.expected(b)
}

// updateRatings applies a single outcome. Both expectations are computed
// from the ratings before either side is changed.
func updateRatings(winner, loser *item, k int) {
	w, l := winner.Rating, loser.Rating
	winner.Rating = w.won(l, k)
	loser.Rating = l.lost(w, k)
}
