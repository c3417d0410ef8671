package main

import "time"

type errNotFound struct{}

func (errNotFound) Error() string { return "not found" }

// matchup is one applied comparison in a session's history.
type matchup struct {
	SessionID    string    `db:"session_id" json:"session_id"`
	Seq          int64     `db:"seq" json:"seq"`
	Winner       string    `db:"winner" json:"winner"`
	Loser        string    `db:"loser" json:"loser"`
	WinnerBefore int64     `db:"winner_before" json:"winner_before"`
	WinnerAfter  int64     `db:"winner_after" json:"winner_after"`
	LoserBefore  int64     `db:"loser_before" json:"loser_before"`
	LoserAfter   int64     `db:"loser_after" json:"loser_after"`
	PlayedAt     time.Time `db:"played_at" json:"played_at"`
}

type DB interface {
	Close() error
	createMatchupTable() error
	insertMatchup(m matchup) error
	getSessions() ([]string, error)
	getMatchups(sessionID string) ([]matchup, error)
	updateSession(ms []matchup) error
}
