package temptmp

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// CleanupResult carries the outcome of an asynchronous cleanup
type CleanupResult struct {
	SessionID string
	Paths     []string
}

// CleanupSession removes every path tracked for id and drops its record.
// Paths that are already gone or cannot be removed are skipped; the result
// lists only paths that no longer exist.
func (r *Registry) CleanupSession(id string) []string {
	return r.cleanupSession(id)
}

// CleanupSessionAsync runs CleanupSession in the background. The channel
// receives exactly one result and is then closed.
func (r *Registry) CleanupSessionAsync(id string) <-chan CleanupResult {
	ch := make(chan CleanupResult, 1)
	go func() {
		defer close(ch)
		ch <- CleanupResult{SessionID: id, Paths: r.cleanupSession(id)}
	}()
	return ch
}

// CleanupAll cleans up every known session, keyed by session ID
func (r *Registry) CleanupAll() map[string][]string {
	removed := make(map[string][]string)
	for _, id := range r.Sessions() {
		removed[id] = r.cleanupSession(id)
	}
	return removed
}

func (r *Registry) cleanupSession(id string) []string {
	deleted := []string{}

	rec, ok := r.detach(id)
	if !ok || len(rec.Files)+len(rec.Dirs) == 0 {
		return deleted
	}

	started := time.Now()
	seen := make(map[string]struct{})
	failed := 0

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		deleted = append(deleted, path)
	}

	for _, path := range rec.Files {
		if err := r.fs.Remove(path); err != nil {
			if !os.IsNotExist(err) {
				failed++
				r.logger.Debug().
					Str("session_id", id).
					Str("path", path).
					Err(err).
					Msg("Failed to remove temp file")
			}
			continue
		}
		add(path)
	}

	for _, dir := range rec.Dirs {
		matches := r.expandDir(dir)
		if len(matches) == 0 {
			continue
		}

		if err := r.fs.RemoveAll(dir); err != nil {
			r.logger.Debug().
				Str("session_id", id).
				Str("path", dir).
				Err(err).
				Msg("Failed to remove temp directory")
		}

		for _, path := range matches {
			if r.exists(path) {
				failed++
				continue
			}
			add(path)
		}
	}

	r.observer.RecordCleanup(len(deleted), failed, started)

	r.logger.Debug().
		Str("session_id", id).
		Int("removed", len(deleted)).
		Int("failed", failed).
		Msg("Session cleaned up")

	return deleted
}

// expandDir lists dir and everything beneath it. A missing dir yields nothing.
func (r *Registry) expandDir(dir string) []string {
	var matches []string
	_ = afero.Walk(r.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	return matches
}

func (r *Registry) exists(path string) bool {
	var err error
	if l, ok := r.fs.(afero.Lstater); ok {
		_, _, err = l.LstatIfPossible(path)
	} else {
		_, err = r.fs.Stat(path)
	}
	return err == nil || !os.IsNotExist(err)
}
