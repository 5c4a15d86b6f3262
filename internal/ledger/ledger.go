// Package ledger persists the per-file success/failure audit trail.
//
// Outcomes accumulate in two JSON documents (one for successes, one for
// failures) that are extended run after run, never overwritten wholesale.
// A syntactically invalid document on disk is discarded and restarted
// empty rather than failing the run.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Entry is one recorded outcome message. Entries are never mutated or
// removed once written.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// Store is the accumulating record inside one ledger document.
// Invariant: Count always equals len(Messages).
type Store struct {
	CreatedDate string  `json:"created_date"`
	UpdatedDate string  `json:"updated_date"`
	Count       int     `json:"count"`
	Messages    []Entry `json:"messages"`
}

// Ledger appends outcomes to the two on-disk stores. It is used by a
// single sequential run; no cross-process locking is attempted.
type Ledger struct {
	dir  string
	tool string
}

// New returns a Ledger writing <tool>_success.json and <tool>_error.json
// under dir.
func New(dir, tool string) *Ledger {
	return &Ledger{dir: dir, tool: tool}
}

// SuccessPath returns the path of the success document.
func (l *Ledger) SuccessPath() string {
	return filepath.Join(l.dir, l.tool+"_success.json")
}

// ErrorPath returns the path of the failure document.
func (l *Ledger) ErrorPath() string {
	return filepath.Join(l.dir, l.tool+"_error.json")
}

func (l *Ledger) path(success bool) string {
	if success {
		return l.SuccessPath()
	}
	return l.ErrorPath()
}

func (l *Ledger) key(success bool) string {
	if success {
		return l.tool + "_success"
	}
	return l.tool + "_error"
}

// Record appends one outcome to the corresponding store: load the existing
// document (or start a fresh store on missing/corrupt file), append the
// message with its timestamp, update count and updated_date, and write the
// whole document back atomically.
func (l *Ledger) Record(message string, success bool) error {
	now := time.Now().Format(timeLayout)

	store, err := l.Load(success)
	if err != nil {
		// Missing or corrupt document: restart empty.
		store = Store{CreatedDate: now}
	}
	if store.CreatedDate == "" {
		store.CreatedDate = now
	}

	store.Messages = append(store.Messages, Entry{Timestamp: now, Message: message})
	store.Count = len(store.Messages)
	store.UpdatedDate = now

	doc := map[string]Store{l.key(success): store}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal ledger %s: %w", l.path(success), err)
	}
	data = append(data, '\n')
	return writeFileAtomic(l.path(success), data)
}

// Load reads one store back from disk. Returns an error when the document
// is missing, unparseable, or lacks the expected top-level key; Record
// treats all of those as a fresh start.
func (l *Ledger) Load(success bool) (Store, error) {
	path := l.path(success)
	data, err := os.ReadFile(path)
	if err != nil {
		return Store{}, fmt.Errorf("read ledger %s: %w", path, err)
	}

	var doc map[string]Store
	if err := json.Unmarshal(data, &doc); err != nil {
		return Store{}, fmt.Errorf("parse ledger %s: %w", path, err)
	}
	store, ok := doc[l.key(success)]
	if !ok {
		return Store{}, fmt.Errorf("ledger %s: missing %q entry", path, l.key(success))
	}
	return store, nil
}
