package main

import (
	"github.com/pkg/errors"
)

type item struct {
	Name   string `json:"name"`
	Rating rating `json:"rating"`
}

func (i item) String() string { return i.Name }

type items []item

// itemRecord is an element of a rankinfo file. Pointers distinguish a missing
// key from a zero value.
type itemRecord struct {
	Name   *string `json:"name"`
	Rating *rating `json:"rating"`
}

type errParse struct {
	msg string
}

func (e errParse) Error() string { return e.msg }

func newItem(name string, r rating) item {
	return item{Name: name, Rating: r}
}

func itemFromRecord(rec itemRecord) (item, error) {
	if rec.Name == nil {
		return item{}, errors.WithStack(errParse{`missing "name" key`})
	}
	if rec.Rating == nil {
		return item{}, errors.WithStack(errParse{`missing "rating" key`})
	}

	return newItem(*rec.Name, *rec.Rating), nil
}

func (i item) record() itemRecord {
	name, r := i.Name, i.Rating
	return itemRecord{Name: &name, Rating: &r}
}

// duplicates returns each name that appears more than once, in first-seen
// order.
func (is items) duplicates() []string {
	seen := make(map[string]int, len(is))
	var dups []string
	for _, i := range is {
		seen[i.Name]++
		if seen[i.Name] == 2 {
			dups = append(dups, i.Name)
		}
	}

	return dups
}
