// Package snapshot persists the pipeline's intermediate record sets as
// tabular CSV files plus per-record JSON artifacts under one working
// directory. The files are the crash-recovery boundary between stages and
// are deleted when a run completes.
package snapshot

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/contactsync/pkg/errors"
)

// Names of the sequential snapshot files, in pipeline order.
const (
	ConfigurationsFile = "configurations.csv"
	EnrichedFile       = "configurations_enriched.csv"
	SimplifiedFile     = "configurations_simple.csv"
	ContactsFile       = "contacts.csv"
	GuessesFile        = "guesses.csv"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Store is a tabular file store scoped to one working directory. Exactly
// one process uses a directory at a time; concurrent runs are unsupported.
type Store struct {
	dir string
}

// New creates a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the working directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the absolute path of a named artifact.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// WriteTable writes a CSV snapshot with the given header and rows,
// creating the working directory if needed.
func (s *Store) WriteTable(name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, dirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}

	path := s.Path(name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return errors.WrapIO("write", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return file.Close()
}

// ReadTable reads a CSV snapshot into header-keyed rows. Rows shorter than
// the header are padded with empty values; longer rows are truncated. A
// missing file is a stage-sequencing error and matches errors.ErrNotFound.
func (s *Store) ReadTable(name string) ([]map[string]string, error) {
	path := s.Path(name)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("snapshot", name)
		}
		return nil, errors.WrapIO("open", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	// Rows are padded/truncated against the header below.
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.NewParseError("csv", name, "empty file: no header row", nil)
		}
		return nil, errors.WrapParse("csv", name, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []map[string]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", name, err)
		}

		record := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(row) {
				record[key] = row[i]
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}

	return records, nil
}

// WriteJSON writes a JSON artifact (record detail, pre/post-update audit).
func (s *Store) WriteJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, dirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapParse("json", name, err)
	}

	path := s.Path(name)
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Clean removes every intermediate artifact and the working directory.
func (s *Store) Clean() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return errors.WrapIO("delete", s.dir, err)
	}
	return nil
}
