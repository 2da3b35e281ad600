package guess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/contactsync/internal/psa"
)

func directory(contacts ...psa.ContactRecord) *Directory {
	return NewDirectory(contacts)
}

func TestParseLoginName(t *testing.T) {
	tests := []struct {
		name  string
		login string
		first string
		last  string
		ok    bool
	}{
		{"camel-case pair", `ACME\JohnSmith`, "John", "Smith", true},
		{"single segment", `ACME\Madonna`, "Madonna", "", true},
		{"three segments", `ACME\MaryJaneWatson`, "Mary", "Jane Watson", true},
		{"lowercase username", `ACME\john`, "john", "", true},
		{"no backslash", "johnsmith", "", "", false},
		{"empty", "", "", "", false},
		{"trailing backslash", `ACME\`, "", "", false},
		{"double-qualified", `CORP\ACME\JaneDoe`, "Jane", "Doe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, ok := ParseLoginName(tt.login)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestForNoBackslashProducesNoGuess(t *testing.T) {
	dir := directory(psa.ContactRecord{FirstName: "John", LastName: "Smith"})

	for _, login := range []string{"", "johnsmith", "john.smith@example.com"} {
		g := For(login, "John Smith", dir)
		assert.Empty(t, g.FirstName, "login %q", login)
		assert.Empty(t, g.LastName, "login %q", login)
		assert.Empty(t, g.FullName, "login %q", login)
		assert.False(t, g.ExistsInDirectory, "login %q", login)
		assert.False(t, g.MatchesRecordedContact, "login %q", login)
	}
}

func TestForCamelCasePair(t *testing.T) {
	dir := directory(psa.ContactRecord{ID: 9, FirstName: "John", LastName: "Smith"})

	g := For(`DOMAIN\JohnSmith`, "Jon Smith", dir)
	assert.Equal(t, "John", g.FirstName)
	assert.Equal(t, "Smith", g.LastName)
	assert.Equal(t, "John Smith", g.FullName)
	assert.True(t, g.ExistsInDirectory)
	assert.False(t, g.MatchesRecordedContact, "recorded 'Jon Smith' differs from guess")
}

func TestForSingleSegment(t *testing.T) {
	dir := directory(psa.ContactRecord{ID: 1, FirstName: "Madonna"})

	g := For(`DOMAIN\Madonna`, "", dir)
	assert.Equal(t, "Madonna", g.FirstName)
	assert.Equal(t, "", g.LastName)
	assert.Equal(t, "Madonna", g.FullName)
	assert.True(t, g.ExistsInDirectory)
	assert.False(t, g.MatchesRecordedContact)
}

func TestForMatchIsCaseInsensitive(t *testing.T) {
	dir := directory(psa.ContactRecord{ID: 9, FirstName: "John", LastName: "Smith"})

	g := For(`DOMAIN\JohnSmith`, "JOHN SMITH", dir)
	assert.True(t, g.ExistsInDirectory)
	assert.True(t, g.MatchesRecordedContact)

	// Stored guess retains original casing.
	assert.Equal(t, "John Smith", g.FullName)
}

func TestForGuessNotInDirectory(t *testing.T) {
	dir := directory(psa.ContactRecord{FirstName: "Jane", LastName: "Doe"})

	g := For(`DOMAIN\JohnSmith`, "John Smith", dir)
	assert.False(t, g.ExistsInDirectory)
	assert.True(t, g.MatchesRecordedContact, "recorded contact comparison is independent of the directory")
}

func TestForNoRecordedContact(t *testing.T) {
	dir := directory(psa.ContactRecord{FirstName: "John", LastName: "Smith"})

	g := For(`DOMAIN\JohnSmith`, "", dir)
	assert.True(t, g.ExistsInDirectory)
	assert.False(t, g.MatchesRecordedContact)
}

func TestDirectoryResolve(t *testing.T) {
	dir := directory(
		psa.ContactRecord{ID: 1, FirstName: "John", LastName: "Smith"},
		psa.ContactRecord{ID: 2, FirstName: "Jane", LastName: "Doe"},
	)

	c, ok := dir.Resolve("john smith")
	require.True(t, ok)
	assert.Equal(t, 1, c.ID)

	c, ok = dir.Resolve("JANE DOE")
	require.True(t, ok)
	assert.Equal(t, 2, c.ID)

	_, ok = dir.Resolve("Johnny Smith")
	assert.False(t, ok, "matching is exact after folding; no partial credit")
}

func TestDirectoryCollisionFirstWins(t *testing.T) {
	dir := directory(
		psa.ContactRecord{ID: 1, FirstName: "John", LastName: "Smith"},
		psa.ContactRecord{ID: 2, FirstName: "JOHN", LastName: "SMITH"},
	)

	assert.Equal(t, 1, dir.Len())
	c, _ := dir.Resolve("John Smith")
	assert.Equal(t, 1, c.ID)
}

func TestDirectorySkipsNamelessContacts(t *testing.T) {
	dir := directory(psa.ContactRecord{ID: 3})
	assert.Equal(t, 0, dir.Len())
}

func TestSplitCamelKnownLimitations(t *testing.T) {
	// Digits and underscores stay glued to the preceding segment; this is
	// the documented limitation of the heuristic.
	first, last, ok := ParseLoginName(`ACME\JohnSmith2`)
	require.True(t, ok)
	assert.Equal(t, "John", first)
	assert.Equal(t, "Smith2", last)

	first, last, ok = ParseLoginName(`ACME\john_smith`)
	require.True(t, ok)
	assert.Equal(t, "john_smith", first)
	assert.Equal(t, "", last)
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("John Smith"), Fold("JOHN SMITH"))
	assert.Equal(t, Fold("straße"), Fold("STRASSE"), "folding handles more than ASCII lowering")
}
