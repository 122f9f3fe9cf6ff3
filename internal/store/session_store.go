// Package store persists exam sessions as one JSON record per session under
// a session directory. Every write replaces the whole record, so redundant
// saves (the autosave path and the end-of-exam path hitting the same id) are
// safe: last write wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/examtools/vceplay/internal/model"
)

// ErrNotFound is returned when no record exists for a session id.
var ErrNotFound = errors.New("session not found")

const recordSuffix = ".json"

// SessionStore is a file-backed session repository.
type SessionStore struct {
	dir string
	log zerolog.Logger
}

// NewSessionStore creates the session directory if needed and returns the
// store. Only directory creation can fail.
func NewSessionStore(dir string, log zerolog.Logger) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &SessionStore{
		dir: dir,
		log: log.With().Str("component", "session_store").Logger(),
	}, nil
}

// Dir returns the directory holding session records.
func (s *SessionStore) Dir() string {
	return s.dir
}

// Save writes the session record, replacing any prior record for the same
// id. For sessions still in progress the stored record's end_time is stamped
// with the save time so resumable records carry a last-saved marker; the
// in-memory session is not touched.
func (s *SessionStore) Save(session *model.Session) error {
	record := session.Clone()
	if record.Status == model.SessionStatusInProgress {
		now := time.Now()
		record.EndTime = &now
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}

	path := s.recordPath(session.ID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.log.Error().Err(err).Str("session_id", session.ID).Msg("session save failed")
		return fmt.Errorf("write session %s: %w", session.ID, err)
	}

	s.log.Debug().Str("session_id", session.ID).Str("path", path).Msg("session saved")
	return nil
}

// Load reads one session record. Returns ErrNotFound when no record exists;
// corrupt records surface as wrapped decode errors.
func (s *SessionStore) Load(sessionID string) (*model.Session, error) {
	data, err := os.ReadFile(s.recordPath(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read session %s: %w", sessionID, err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &session, nil
}

// List returns summaries for stored sessions, newest start time first.
// statusFilter narrows the result when non-empty. Unreadable records are
// logged and skipped rather than failing the whole listing.
func (s *SessionStore) List(statusFilter model.SessionStatus) ([]model.SessionSummary, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "session_*"+recordSuffix))
	if err != nil {
		return nil, fmt.Errorf("glob session dir: %w", err)
	}

	summaries := make([]model.SessionSummary, 0, len(paths))
	for _, path := range paths {
		id := strings.TrimSuffix(filepath.Base(path), recordSuffix)
		session, err := s.Load(id)
		if err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("skipping unreadable session record")
			continue
		}
		if statusFilter != "" && session.Status != statusFilter {
			continue
		}
		summaries = append(summaries, session.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].StartTime.After(summaries[j].StartTime)
	})
	return summaries, nil
}

// Delete removes one session record. Reports whether a record was removed.
func (s *SessionStore) Delete(sessionID string) bool {
	err := os.Remove(s.recordPath(sessionID))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("session_id", sessionID).Msg("session delete failed")
		}
		return false
	}
	return true
}

// Cleanup removes records whose last modification is older than the given
// number of days. Returns the number of records removed.
func (s *SessionStore) Cleanup(olderThanDays int) int {
	paths, err := filepath.Glob(filepath.Join(s.dir, "session_*"+recordSuffix))
	if err != nil {
		s.log.Warn().Err(err).Msg("cleanup glob failed")
		return 0
	}

	cutoff := time.Now().AddDate(0, 0, -olderThanDays)
	removed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("cleanup remove failed")
			continue
		}
		removed++
	}

	if removed > 0 {
		s.log.Info().Int("removed", removed).Int("older_than_days", olderThanDays).
			Msg("cleaned up old session records")
	}
	return removed
}

func (s *SessionStore) recordPath(sessionID string) string {
	// Session ids become filenames; strip separators so a crafted id cannot
	// escape the session directory.
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return -1
		}
		return r
	}, sessionID)
	return filepath.Join(s.dir, safe+recordSuffix)
}
