// Package guess derives a candidate contact name from a configuration's
// domain-qualified login name and checks it against the contact directory.
//
// The camel-case split is a heuristic, not a guaranteed-correct parse:
// usernames that are not camel-cased, contain digits, or follow other
// conventions (hyphenated or compound surnames, initials) will guess
// incorrectly. It is isolated here so those failure modes stay unit-testable
// and the heuristic can be swapped without touching the pipeline.
package guess

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/agentstation/contactsync/internal/psa"
)

// Guess is the name derived from one configuration's login name, plus the
// outcome of checking it against the directory and the recorded contact.
// All comparisons are case-folded exact string equality; no fuzzy matching.
type Guess struct {
	FirstName              string
	LastName               string
	FullName               string
	ExistsInDirectory      bool
	MatchesRecordedContact bool
}

// Fold case-folds s for comparison purposes. The stored guess keeps its
// original casing; folding is applied only when comparing.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ParseLoginName derives a candidate person name from a domain-qualified
// login string (DOMAIN\username). The substring after the last backslash is
// split at each uppercase letter into camel-case segments: one segment is a
// first name only, two or more make the first segment the first name and
// the space-joined rest the last name. No backslash, or nothing after it,
// means no guess.
func ParseLoginName(login string) (first, last string, ok bool) {
	idx := strings.LastIndex(login, `\`)
	if idx < 0 {
		return "", "", false
	}

	segments := splitCamel(login[idx+1:])
	if len(segments) == 0 {
		return "", "", false
	}

	first = segments[0]
	if len(segments) > 1 {
		last = strings.Join(segments[1:], " ")
	}
	return first, last, true
}

// splitCamel splits s immediately before each uppercase letter, discarding
// empty segments.
func splitCamel(s string) []string {
	var segments []string
	start := 0
	for i, r := range s {
		if i > start && unicode.IsUpper(r) {
			segments = append(segments, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		segments = append(segments, s[start:])
	}
	return segments
}

// FullName composes "first last", trimmed, tolerating an empty last name.
func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// Directory is a fold-keyed index over the contact directory snapshot.
type Directory struct {
	byFolded map[string]psa.ContactRecord
}

// NewDirectory indexes contacts by their case-folded full name. On folded
// name collisions the first contact wins.
func NewDirectory(contacts []psa.ContactRecord) *Directory {
	d := &Directory{byFolded: make(map[string]psa.ContactRecord, len(contacts))}
	for _, c := range contacts {
		key := Fold(c.FullName())
		if key == "" {
			continue
		}
		if _, exists := d.byFolded[key]; !exists {
			d.byFolded[key] = c
		}
	}
	return d
}

// Resolve finds the contact whose folded full name equals the folded input.
func (d *Directory) Resolve(fullName string) (psa.ContactRecord, bool) {
	c, ok := d.byFolded[Fold(fullName)]
	return c, ok
}

// Len returns the number of distinct folded names in the directory.
func (d *Directory) Len() int {
	return len(d.byFolded)
}

// For computes the guess for one configuration given its login name and the
// currently recorded contact name. When no guess can be derived all name
// fields stay empty and both match flags are false.
func For(login, recordedContact string, dir *Directory) Guess {
	first, last, ok := ParseLoginName(login)
	if !ok {
		return Guess{}
	}

	g := Guess{
		FirstName: first,
		LastName:  last,
		FullName:  FullName(first, last),
	}

	_, g.ExistsInDirectory = dir.Resolve(g.FullName)
	g.MatchesRecordedContact = recordedContact != "" && Fold(recordedContact) == Fold(g.FullName)
	return g
}
