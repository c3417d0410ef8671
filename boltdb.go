package main

import (
	"encoding/binary"
	"encoding/json"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

// boltdb keeps one bucket per session. Keys are big-endian sequence numbers
// so a cursor walks a session in order.
type boltdb struct {
	db *bolt.DB
}

func NewBoltDB(filename string) (DB, error) {
	db, err := bolt.Open(filename, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", filename)
	}

	return &boltdb{db: db}, nil
}

func (b *boltdb) Close() error {
	return errors.Wrap(b.db.Close(), "unable to close database")
}

func (b *boltdb) createMatchupTable() error {
	return nil
}

func seqKey(seq int64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(seq))
	return k
}

func (b *boltdb) getSessions() ([]string, error) {
	ids := []string{}
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			ids = append(ids, string(name))
			return nil
		})
	})

	return ids, errors.Wrap(err, "unable to get sessions")
}

func (b *boltdb) getMatchups(sessionID string) ([]matchup, error) {
	ms := make([]matchup, 0)
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionID))
		if bucket == nil {
			return errors.Wrapf(errNotFound{}, "unable to get session %s", sessionID)
		}

		return errors.Wrap(bucket.ForEach(func(k, v []byte) error {
			var m matchup
			if err := json.Unmarshal(v, &m); err != nil {
				return errors.Wrap(err, "unable to unmarshal matchup")
			}
			ms = append(ms, m)
			return nil
		}), "unable to get bucket contents")
	})

	if err != nil {
		return nil, err
	}

	return ms, nil
}

func (b *boltdb) insert(m matchup) func(*bolt.Tx) error {
	return func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(m.SessionID))
		if err != nil {
			return errors.Wrap(err, "unable to create bucket")
		}

		data, err := json.Marshal(m)
		if err != nil {
			return errors.Wrap(err, "unable to marshal matchup into json")
		}

		err = b.Put(seqKey(m.Seq), data)
		return errors.Wrap(err, "error puting matchup")
	}
}

func (b *boltdb) insertMatchup(m matchup) error {
	err := b.db.Update(b.insert(m))
	return errors.Wrap(err, "unable to insert matchup")
}

func (b *boltdb) updateSession(ms []matchup) error {
	tx, err := b.db.Begin(true)
	if err != nil {
		return errors.Wrap(err, "unable to begin transaction")
	}

	for _, m := range ms {
		if err := b.insert(m)(tx); err != nil {
			tx.Rollback()
			return err
		}
	}

	return errors.Wrap(tx.Commit(), "unable to commit transaction")
}
