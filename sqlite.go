package main

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type sqlite struct {
	db *sqlx.DB
}

func NewSqlite(filename string) (DB, error) {
	db, err := sqlx.Connect("sqlite3", filename)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", filename)
	}

	s := sqlite{db: db}

	if err := s.createMatchupTable(); err != nil {
		db.Close()
		return nil, err
	}

	return &s, nil
}

func (s *sqlite) Close() error {
	return errors.Wrap(s.db.Close(), "unable to close database")
}

func (s *sqlite) createMatchupTable() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS matchups (
		id INTEGER NOT NULL PRIMARY KEY,
		session_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		winner TEXT,
		loser TEXT,
		winner_before INTEGER,
		winner_after INTEGER,
		loser_before INTEGER,
		loser_after INTEGER,
		played_at DATETIME,
		UNIQUE(session_id, seq)
	)`)

	return errors.Wrap(err, "unable to create table matchups")
}

const insertMatchupQuery = `INSERT OR REPLACE INTO matchups
	(session_id, seq, winner, loser, winner_before, winner_after, loser_before, loser_after, played_at)
	VALUES(:session_id, :seq, :winner, :loser, :winner_before, :winner_after, :loser_before, :loser_after, :played_at)`

func (s *sqlite) insertMatchup(m matchup) error {
	_, err := s.db.NamedExec(insertMatchupQuery, &m)
	return errors.Wrap(err, "unable to insert into matchups")
}

func (s *sqlite) getSessions() ([]string, error) {
	ids := []string{}
	err := s.db.Select(&ids, `SELECT session_id FROM matchups GROUP BY session_id ORDER BY MIN(id)`)
	return ids, errors.Wrap(err, "unable to get sessions")
}

func (s *sqlite) getMatchups(sessionID string) ([]matchup, error) {
	ms := []matchup{}
	err := s.db.Select(&ms, `SELECT session_id, seq, winner, loser, winner_before, winner_after, loser_before, loser_after, played_at
		FROM matchups WHERE session_id=? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to select from matchups")
	}

	if len(ms) == 0 {
		return nil, errors.Wrapf(errNotFound{}, "unable to get session %s", sessionID)
	}

	return ms, nil
}

func (s *sqlite) updateSession(ms []matchup) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "unable to begin transaction")
	}

	for _, m := range ms {
		if _, err := tx.NamedExec(insertMatchupQuery, &m); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "unable to insert into matchups")
		}
	}

	return errors.Wrap(tx.Commit(), "unable to commit transaction")
}
