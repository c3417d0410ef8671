package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
)

func transferData(input, output DB) error {
	Debugf("transfering data")
	sessions, err := input.getSessions()
	if err != nil {
		return err
	}

	Debugf("Got sessions: %#v", sessions)
	for _, session := range sessions {
		ms, err := input.getMatchups(session)
		if err != nil {
			return err
		}

		Debugf("Got %d matchups for %s", len(ms), session)
		if err := output.updateSession(ms); err != nil {
			return err
		}
	}

	return nil
}

func openDatabase(database, filename string) (DB, error) {
	if filename == "" {
		return nil, errors.Errorf("no filename given for the %s database", database)
	}

	switch database {
	case sqliteHistory:
		return NewSqlite(filename)
	case boltHistory:
		return NewBoltDB(filename)
	}

	return nil, errors.Errorf("invalid database argument %q", database)
}

func main() {
	a := newApp(os.Stdin, os.Stdout, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := newRootCmd(a).Execute(); err != nil {
		if debug {
			log.Fatalf("%+v", err)
		}
		log.Fatal(err)
	}
}
