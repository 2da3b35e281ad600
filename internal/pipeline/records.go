package pipeline

import (
	"strconv"

	"github.com/agentstation/contactsync/internal/guess"
	"github.com/agentstation/contactsync/internal/psa"
	"github.com/agentstation/contactsync/pkg/errors"
)

// ConfigurationRow is the tabular projection of a configuration kept in
// the raw configurations snapshot.
type ConfigurationRow struct {
	ID            int
	Name          string
	LastLoginName string
	Active        bool
	ContactID     int
	ContactName   string
	ContactHref   string
}

// GuessRow ties a name guess to its configuration in the guesses snapshot.
type GuessRow struct {
	ConfigurationID        int
	FirstName              string
	LastName               string
	FullName               string
	ExistsInDirectory      bool
	MatchesRecordedContact bool
}

var (
	configurationsHeader = []string{"id", "name", "lastLoginName", "activeFlag", "contactId", "contactName", "contactHref"}
	contactsHeader       = []string{"id", "firstName", "lastName", "title", "defaultEmail", "defaultPhone"}
	guessesHeader        = []string{"configurationId", "firstName", "lastName", "fullName", "existsInDirectory", "matchesRecordedContact"}
	enrichedHeader       = []string{"id", "name", "lastLoginName", "activeFlag", "contactName", "contactTitle", "contactEmail", "contactPhone"}
	simplifiedHeader     = []string{"id", "name", "lastLoginName", "activeFlag", "contactName"}
)

func configurationToRow(c *psa.Configuration) ConfigurationRow {
	row := ConfigurationRow{
		ID:            c.ID,
		Name:          c.Name,
		LastLoginName: c.LastLoginName,
		Active:        c.ActiveFlag,
	}
	if c.Contact != nil {
		row.ContactID = c.Contact.ID
		row.ContactName = c.Contact.Name
		row.ContactHref = c.Contact.Href
	}
	return row
}

func (r ConfigurationRow) fields() []string {
	contactID := ""
	if r.ContactID != 0 {
		contactID = strconv.Itoa(r.ContactID)
	}
	return []string{
		strconv.Itoa(r.ID),
		r.Name,
		r.LastLoginName,
		strconv.FormatBool(r.Active),
		contactID,
		r.ContactName,
		r.ContactHref,
	}
}

func configurationFromRecord(record map[string]string) (ConfigurationRow, error) {
	id, err := strconv.Atoi(record["id"])
	if err != nil {
		return ConfigurationRow{}, errors.NewParseError("csv", "", "invalid configuration id "+strconv.Quote(record["id"]), err)
	}

	row := ConfigurationRow{
		ID:            id,
		Name:          record["name"],
		LastLoginName: record["lastLoginName"],
		Active:        record["activeFlag"] == "true",
		ContactName:   record["contactName"],
		ContactHref:   record["contactHref"],
	}
	if record["contactId"] != "" {
		row.ContactID, _ = strconv.Atoi(record["contactId"])
	}
	return row, nil
}

func contactFields(c psa.ContactRecord) []string {
	return []string{
		strconv.Itoa(c.ID),
		c.FirstName,
		c.LastName,
		c.Title,
		c.DefaultEmail,
		c.DefaultPhone,
	}
}

func contactFromRecord(record map[string]string) (psa.ContactRecord, error) {
	id, err := strconv.Atoi(record["id"])
	if err != nil {
		return psa.ContactRecord{}, errors.NewParseError("csv", "", "invalid contact id "+strconv.Quote(record["id"]), err)
	}
	return psa.ContactRecord{
		ID:           id,
		FirstName:    record["firstName"],
		LastName:     record["lastName"],
		Title:        record["title"],
		DefaultEmail: record["defaultEmail"],
		DefaultPhone: record["defaultPhone"],
	}, nil
}

func guessFields(configurationID int, g guess.Guess) []string {
	return []string{
		strconv.Itoa(configurationID),
		g.FirstName,
		g.LastName,
		g.FullName,
		strconv.FormatBool(g.ExistsInDirectory),
		strconv.FormatBool(g.MatchesRecordedContact),
	}
}

func guessFromRecord(record map[string]string) (GuessRow, error) {
	id, err := strconv.Atoi(record["configurationId"])
	if err != nil {
		return GuessRow{}, errors.NewParseError("csv", "", "invalid configuration id "+strconv.Quote(record["configurationId"]), err)
	}
	return GuessRow{
		ConfigurationID:        id,
		FirstName:              record["firstName"],
		LastName:               record["lastName"],
		FullName:               record["fullName"],
		ExistsInDirectory:      record["existsInDirectory"] == "true",
		MatchesRecordedContact: record["matchesRecordedContact"] == "true",
	}, nil
}
