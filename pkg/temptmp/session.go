package temptmp

import (
	"sync/atomic"

	"github.com/spf13/afero"
)

// TrackingState tells whether a session records the resources it creates
type TrackingState int32

const (
	Paused TrackingState = iota
	Tracking
)

func (s TrackingState) String() string {
	if s == Tracking {
		return "tracking"
	}
	return "paused"
}

// TempFile is a freshly created temp file and its open handle
type TempFile struct {
	Path string
	File afero.File
}

// Session creates temp paths on behalf of one session ID. Handles sharing an
// ID share the same registry record.
type Session struct {
	registry *Registry
	id       string
	state    atomic.Int32
}

// CreateSession returns a handle on the default registry
func CreateSession(id string, tracking bool) *Session {
	return Default().CreateSession(id, tracking)
}

// CreateTrackedSession returns a tracked handle on the default registry
func CreateTrackedSession(id string) *Session {
	return Default().CreateTrackedSession(id)
}

// ID returns the session ID
func (s *Session) ID() string {
	return s.id
}

// State returns the current tracking state
func (s *Session) State() TrackingState {
	return TrackingState(s.state.Load())
}

// Tracking reports whether new creations are recorded
func (s *Session) Tracking() bool {
	return s.State() == Tracking
}

// PauseTracking stops recording new creations. Existing records are kept.
func (s *Session) PauseTracking() *Session {
	s.state.Store(int32(Paused))
	return s
}

// ResumeTracking resumes recording new creations
func (s *Session) ResumeTracking() *Session {
	s.state.Store(int32(Tracking))
	return s
}

// Path returns a fresh candidate path without touching the filesystem
func (s *Session) Path(opts Options) string {
	return s.registry.makePath(opts)
}

// Open exclusively creates a new temp file. Creation errors are returned as is.
func (s *Session) Open(opts Options) (*TempFile, error) {
	path := s.registry.makePath(opts)

	f, err := s.registry.fs.OpenFile(path, opts.openFlags(), opts.fileMode())
	s.registry.observer.RecordCreate(KindFile, err)
	if err != nil {
		return nil, err
	}

	if s.Tracking() {
		s.registry.trackFile(s.id, path)
	}

	s.registry.logger.Debug().
		Str("session_id", s.id).
		Str("path", path).
		Msg("Temp file created")

	return &TempFile{Path: path, File: f}, nil
}

// Mkdir creates a new temp directory. Creation errors are returned as is.
func (s *Session) Mkdir(opts Options) (string, error) {
	path := s.registry.makePath(opts)

	err := s.registry.fs.Mkdir(path, opts.dirMode())
	s.registry.observer.RecordCreate(KindDir, err)
	if err != nil {
		return "", err
	}

	if s.Tracking() {
		s.registry.trackDir(s.id, path)
	}

	s.registry.logger.Debug().
		Str("session_id", s.id).
		Str("path", path).
		Msg("Temp directory created")

	return path, nil
}

// Cleanup removes everything tracked for this session's ID and returns the
// removed paths. Calling it again is a no-op.
func (s *Session) Cleanup() []string {
	return s.registry.CleanupSession(s.id)
}

// CleanupAsync is the non-blocking form of Cleanup
func (s *Session) CleanupAsync() <-chan CleanupResult {
	return s.registry.CleanupSessionAsync(s.id)
}
