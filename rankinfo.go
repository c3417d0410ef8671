package main

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const rankinfoPrefix = "rankinfo_"

// loadText reads one item name per line. Blank lines are skipped.
func loadText(path string, initial rating) (items, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open item list")
	}
	defer f.Close()

	var is items
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		is = append(is, newItem(name, initial))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	Debugf("loaded %d items from %s", len(is), path)
	return is, nil
}

func loadRankinfo(path string) (items, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open rankinfo")
	}

	var records []itemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(errParse{err.Error()}, "unable to parse %s", path)
	}

	is := make(items, 0, len(records))
	for i, rec := range records {
		it, err := itemFromRecord(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d of %s", i, path)
		}
		is = append(is, it)
	}

	Debugf("loaded %d rated items from %s", len(is), path)
	return is, nil
}

// saveRankinfo overwrites path with is in its current order.
func saveRankinfo(path string, is items) error {
	records := make([]itemRecord, len(is))
	for i, it := range is {
		records[i] = it.record()
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to marshal items into json")
	}

	err = os.WriteFile(path, append(data, '\n'), 0644)
	return errors.Wrapf(err, "unable to write rankinfo to %s", path)
}

// textBaseName strips the directory and everything from the first dot.
func textBaseName(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}

	return base
}

// rankinfoBaseName undoes rankinfoPath, so that a loaded file is saved back
// over itself.
func rankinfoBaseName(path string) string {
	base := filepath.Base(path)
	if !strings.HasPrefix(base, rankinfoPrefix) {
		return textBaseName(base)
	}

	base = base[len(rankinfoPrefix):]
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}

	return base
}

func rankinfoPath(dir, base string) string {
	return filepath.Join(dir, rankinfoPrefix+base+".json")
}
