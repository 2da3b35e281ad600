// Package psa provides a typed client for the PSA platform's REST API,
// covering the configuration and contact resources the reconciliation
// pipeline consumes.
package psa

import (
	"encoding/json"
	"strings"
)

// ContactRef is the contact association embedded in a configuration.
type ContactRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Href string `json:"href,omitempty"`
}

// Configuration is a tracked asset record in the PSA, owned by a contact.
//
// The full response body is retained alongside the typed fields so that
// updates can resubmit the entire resource (the API uses overwrite
// semantics on PUT, not partial patches).
type Configuration struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	LastLoginName string      `json:"lastLoginName,omitempty"`
	ActiveFlag    bool        `json:"activeFlag"`
	Contact       *ContactRef `json:"contact,omitempty"`

	raw map[string]json.RawMessage
}

// configurationAlias avoids recursing into the custom JSON methods.
type configurationAlias Configuration

// UnmarshalJSON decodes the typed fields and retains the full body.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	var a configurationAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Configuration(a)
	c.raw = raw
	return nil
}

// MarshalJSON re-emits the retained full body when present, so fields this
// package never modeled survive a round trip.
func (c *Configuration) MarshalJSON() ([]byte, error) {
	if c.raw == nil {
		return json.Marshal((*configurationAlias)(c))
	}
	return json.Marshal(c.raw)
}

// SetContact replaces the contact association on both the typed field and
// the retained body.
func (c *Configuration) SetContact(ref ContactRef) error {
	if c.raw == nil {
		data, err := json.Marshal((*configurationAlias)(c))
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, &c.raw); err != nil {
			return err
		}
	}

	data, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	c.Contact = &ref
	c.raw["contact"] = data
	return nil
}

// ContactName returns the recorded contact's name, or "" when unassigned.
func (c *Configuration) ContactName() string {
	if c.Contact == nil {
		return ""
	}
	return c.Contact.Name
}

// Contact is a person record in the PSA's company directory.
type Contact struct {
	ID                 int                 `json:"id"`
	FirstName          string              `json:"firstName"`
	LastName           string              `json:"lastName"`
	Title              string              `json:"title,omitempty"`
	CommunicationItems []CommunicationItem `json:"communicationItems,omitempty"`
}

// CommunicationItem is one way to reach a contact (email, phone, ...).
type CommunicationItem struct {
	Value             string `json:"value"`
	DefaultFlag       bool   `json:"defaultFlag"`
	CommunicationType string `json:"communicationType"`
}

// DefaultEmail returns the contact's default email address, or "".
func (c *Contact) DefaultEmail() string {
	return c.defaultCommunication("Email")
}

// DefaultPhone returns the contact's default phone number, or "".
func (c *Contact) DefaultPhone() string {
	return c.defaultCommunication("Phone")
}

func (c *Contact) defaultCommunication(kind string) string {
	for _, item := range c.CommunicationItems {
		if item.DefaultFlag && strings.EqualFold(item.CommunicationType, kind) {
			return item.Value
		}
	}
	return ""
}

// Record projects a Contact to the normalized subset kept in snapshots.
func (c *Contact) Record() ContactRecord {
	return ContactRecord{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Title:        c.Title,
		DefaultEmail: c.DefaultEmail(),
		DefaultPhone: c.DefaultPhone(),
	}
}

// ContactRecord is an immutable snapshot of a directory contact.
type ContactRecord struct {
	ID           int
	FirstName    string
	LastName     string
	Title        string
	DefaultEmail string
	DefaultPhone string
}

// FullName composes "first last", trimmed, tolerating an empty last name.
func (c ContactRecord) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
