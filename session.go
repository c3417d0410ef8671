package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type decision int

const (
	stop decision = iota
	preferFirst
	preferSecond
)

type sessionState int

const (
	awaitingChoice sessionState = iota
	done
)

// decider resolves a matchup. It may block indefinitely.
type decider interface {
	decide(first, second item) (decision, error)
}

// parseDecision maps a line of user input to a decision. Anything that is
// not a choice ends the session.
func parseDecision(input string) decision {
	switch strings.TrimSpace(input) {
	case "1":
		return preferFirst
	case "2":
		return preferSecond
	}

	return stop
}

type consoleDecider struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsoleDecider(in io.Reader, out io.Writer) *consoleDecider {
	return &consoleDecider{in: bufio.NewReader(in), out: out}
}

func (c *consoleDecider) decide(first, second item) (decision, error) {
	fmt.Fprintf(c.out, "\nWhich do you prefer:\n [1] %s\n [2] %s\n\n", first, second)
	fmt.Fprint(c.out, "Choose 1 or 2 (other to see results): ")

	line, err := c.in.ReadString('\n')
	if err == io.EOF && line == "" {
		fmt.Fprintln(c.out)
		return stop, nil
	}
	if err != nil && err != io.EOF {
		return stop, errors.Wrap(err, "unable to read choice")
	}

	return parseDecision(line), nil
}

// readLine reads a single answer, treating end of input as an empty answer.
func (c *consoleDecider) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "unable to read answer")
	}

	return strings.TrimSpace(line), nil
}

type session struct {
	id      string
	items   items
	k       int
	mm      matchmaker
	rnd     *rand.Rand
	decider decider
	history DB

	played []int
	state  sessionState
}

func newSession(id string, is items, k int, mm matchmaker, rnd *rand.Rand, d decider, history DB) *session {
	return &session{
		id:      id,
		items:   is,
		k:       k,
		mm:      mm,
		rnd:     rnd,
		decider: d,
		history: history,
		played:  make([]int, len(is)),
		state:   awaitingChoice,
	}
}

// run presents matchups until the decider says stop and returns how many
// matchups were applied. Ratings are updated in place.
func (s *session) run() (int, error) {
	applied := 0
	for s.state == awaitingChoice {
		ok, err := s.step(applied)
		if err != nil {
			return applied, err
		}
		if ok {
			applied++
		}
	}

	Debugf("session %s finished after %d matchups", s.id, applied)
	return applied, nil
}

func (s *session) step(seq int) (bool, error) {
	i, j, err := selectMatchup(s.mm, s.items, s.played, s.rnd)
	if err != nil {
		return false, err
	}

	d, err := s.decider.decide(s.items[i], s.items[j])
	if err != nil {
		return false, err
	}

	var winner, loser int
	switch d {
	case preferFirst:
		winner, loser = i, j
	case preferSecond:
		winner, loser = j, i
	default:
		s.state = done
		return false, nil
	}

	w, l := &s.items[winner], &s.items[loser]
	m := matchup{
		SessionID:    s.id,
		Seq:          int64(seq),
		Winner:       w.Name,
		Loser:        l.Name,
		WinnerBefore: int64(w.Rating),
		LoserBefore:  int64(l.Rating),
	}

	updateRatings(w, l, s.k)
	s.played[i]++
	s.played[j]++

	m.WinnerAfter = int64(w.Rating)
	m.LoserAfter = int64(l.Rating)
	m.PlayedAt = time.Now().UTC()
	Debugf("%#v", m)

	// A failed history write does not end the session.
	if s.history != nil {
		if err := s.history.insertMatchup(m); err != nil {
			log.Printf("%+v", errors.Wrapf(err, "unable to record matchup %d of session %s", seq, s.id))
		}
	}

	return true, nil
}
