package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, t.TempDir(), "movies.txt", "Alien\n  Heat  \n\nRan\r\n\n")

	is, err := loadText(path, defaultRating)
	require.NoError(t, err)
	assert.Equal(t, items{
		newItem("Alien", 1500),
		newItem("Heat", 1500),
		newItem("Ran", 1500),
	}, is)
}

func TestLoadTextMissingFile(t *testing.T) {
	_, err := loadText(filepath.Join(t.TempDir(), "nope.txt"), defaultRating)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLoadRankinfo(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rankinfo_movies.json", `[
  {"name": "Alien", "rating": 1532},
  {"name": "Heat", "rating": 1468}
]`)

	is, err := loadRankinfo(path)
	require.NoError(t, err)
	assert.Equal(t, items{newItem("Alien", 1532), newItem("Heat", 1468)}, is)
}

func TestLoadRankinfoErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		message  string
	}{{
		"missing rating",
		`[{"name": "Alien", "rating": 1500}, {"name": "Heat"}]`,
		`record 1`,
	}, {
		"missing name",
		`[{"rating": 1500}]`,
		`missing "name" key`,
	}, {
		"null record",
		`[null]`,
		`missing "name" key`,
	}, {
		"not json",
		`Alien
Heat`,
		"unable to parse",
	}, {
		"not a list",
		`{"name": "Alien", "rating": 1500}`,
		"unable to parse",
	}, {
		"fractional rating",
		`[{"name": "Alien", "rating": 1500.5}]`,
		"unable to parse",
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "rankinfo_movies.json", test.contents)

			_, err := loadRankinfo(path)
			require.Error(t, err)
			assert.IsType(t, errParse{}, errors.Cause(err))
			assert.Contains(t, err.Error(), test.message)
		})
	}
}

func TestLoadRankinfoMissingFile(t *testing.T) {
	_, err := loadRankinfo(filepath.Join(t.TempDir(), "rankinfo_nope.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestRankinfoRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankinfo_movies.json")
	is := items{
		newItem("Ran", 1410),
		newItem("Alien", 1620),
		newItem("Heat", 1500),
		newItem("Ran", 1470),
	}

	require.NoError(t, saveRankinfo(path, is))
	loaded, err := loadRankinfo(path)
	require.NoError(t, err)
	assert.Equal(t, is, loaded)
}

func TestSaveRankinfoFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankinfo_movies.json")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer than the new ones"), 0644))

	require.NoError(t, saveRankinfo(path, items{newItem("Alien", 1516)}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"Alien\",\n    \"rating\": 1516\n  }\n]\n", string(data))
}

func TestBaseNames(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) string
		path     string
		expected string
	}{
		{"text", textBaseName, "movies.txt", "movies"},
		{"text in directory", textBaseName, filepath.Join("lists", "movies.txt"), "movies"},
		{"text with dots", textBaseName, "movies.2024.txt", "movies"},
		{"text without extension", textBaseName, "movies", "movies"},
		{"rankinfo", rankinfoBaseName, "rankinfo_movies.json", "movies"},
		{"rankinfo with underscores", rankinfoBaseName, filepath.Join("lists", "rankinfo_my_movies.json"), "my_movies"},
		{"rankinfo without prefix", rankinfoBaseName, "movies.json", "movies"},
		{"rankinfo with empty base", rankinfoBaseName, "rankinfo_.json", ""},
		{"rankinfo with dotted base", rankinfoBaseName, "rankinfo_movies.2024.json", "movies"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.fn(test.path))
		})
	}

	assert.Equal(t, filepath.Join("lists", "rankinfo_movies.json"), rankinfoPath("lists", "movies"))
	assert.Equal(t, "rankinfo_.json", rankinfoPath("", rankinfoBaseName("rankinfo_.json")))
	assert.Equal(t, filepath.Join("lists", "results_movies.txt"), resultsPath("lists", "movies"))
}
