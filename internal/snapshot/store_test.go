package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/contactsync/pkg/errors"
)

func TestWriteReadTableRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	header := []string{"id", "firstName", "lastName"}
	rows := [][]string{
		{"1", "John", "Smith"},
		{"2", "Jane", `O"Donnell`},
	}
	require.NoError(t, store.WriteTable(ContactsFile, header, rows))

	records, err := store.ReadTable(ContactsFile)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "John", records[0]["firstName"])
	assert.Equal(t, `O"Donnell`, records[1]["lastName"])
}

func TestReadTableMissingFileIsNotFound(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.ReadTable(GuessesFile)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound, "a missing prerequisite snapshot is a stage-sequencing error")
}

func TestReadTablePadsShortRows(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	raw := "id,name,contactName\n1,PC-1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigurationsFile), []byte(raw), 0o644))

	records, err := store.ReadTable(ConfigurationsFile)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0]["contactName"])
}

func TestReadTableEmptyFile(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ContactsFile), nil, 0o644))

	_, err := store.ReadTable(ContactsFile)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestWriteJSON(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nested"))

	require.NoError(t, store.WriteJSON("configuration_42_before.json", map[string]any{"id": 42}))

	data, err := os.ReadFile(store.Path("configuration_42_before.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": 42`)
}

func TestCleanRemovesEverything(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "work")
	store := New(dir)

	require.NoError(t, store.WriteTable(ContactsFile, []string{"id"}, [][]string{{"1"}}))
	require.NoError(t, store.WriteJSON("configuration_1.json", map[string]int{"id": 1}))

	require.NoError(t, store.Clean())

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	// Cleaning an already-clean store is fine.
	require.NoError(t, store.Clean())
}
