package temptmp

import (
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultSessionID is used when a session is created without an ID
const DefaultSessionID = "internal_global_session"

// Resource kinds reported to an Observer
const (
	KindFile = "file"
	KindDir  = "dir"
)

// Observer receives creation and cleanup events, e.g. for metrics
type Observer interface {
	RecordCreate(kind string, err error)
	RecordCleanup(removed, failed int, started time.Time)
	SetTrackedSessions(n int)
}

type nopObserver struct{}

func (nopObserver) RecordCreate(string, error)        {}
func (nopObserver) RecordCleanup(int, int, time.Time) {}
func (nopObserver) SetTrackedSessions(int)            {}

// SessionRecord lists the paths created while tracking was enabled
type SessionRecord struct {
	Files []string
	Dirs  []string
}

func (rec *SessionRecord) clone() SessionRecord {
	return SessionRecord{
		Files: append([]string(nil), rec.Files...),
		Dirs:  append([]string(nil), rec.Dirs...),
	}
}

// Registry maps session IDs to the temp resources tracked for them
type Registry struct {
	fs       afero.Fs
	tempDir  string
	now      func() time.Time
	observer Observer
	logger   zerolog.Logger

	mu      sync.Mutex
	records map[string]*SessionRecord

	hookOnce  sync.Once
	exitOnce  sync.Once
	hookArmed atomic.Bool
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithFs sets the filesystem temp resources are created on
func WithFs(fs afero.Fs) RegistryOption {
	return func(r *Registry) {
		r.fs = fs
	}
}

// WithTempDir sets the directory used when Options.Dir is empty
func WithTempDir(dir string) RegistryOption {
	return func(r *Registry) {
		r.tempDir = dir
	}
}

// WithClock overrides the time source used for naming
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// WithObserver attaches an Observer. A nil Observer disables observation.
func WithObserver(o Observer) RegistryOption {
	return func(r *Registry) {
		if o == nil {
			o = nopObserver{}
		}
		r.observer = o
	}
}

// WithLogger sets the logger for debug events. The default discards everything.
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		fs:       afero.NewOsFs(),
		tempDir:  os.TempDir(),
		now:      time.Now,
		observer: nopObserver{},
		logger:   zerolog.Nop(),
		records:  make(map[string]*SessionRecord),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry backing the package-level helpers
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Fs returns the filesystem the registry operates on
func (r *Registry) Fs() afero.Fs {
	return r.fs
}

// TempDir returns the default parent directory for temp paths
func (r *Registry) TempDir() string {
	return r.tempDir
}

// CreateSession returns a handle bound to id. An empty id selects DefaultSessionID.
func (r *Registry) CreateSession(id string, tracking bool) *Session {
	if id == "" {
		id = DefaultSessionID
	}
	s := &Session{registry: r, id: id}
	if tracking {
		s.state.Store(int32(Tracking))
	} else {
		s.state.Store(int32(Paused))
	}
	return s
}

// CreateTrackedSession returns a handle with tracking enabled
func (r *Registry) CreateTrackedSession(id string) *Session {
	return r.CreateSession(id, true)
}

// Record returns a copy of the record for id
func (r *Registry) Record(id string) (SessionRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return SessionRecord{}, false
	}
	return rec.clone(), true
}

// Sessions returns the IDs of all sessions with a record, sorted
func (r *Registry) Sessions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) trackFile(id, path string) {
	r.track(id, path, func(rec *SessionRecord) {
		rec.Files = append(rec.Files, path)
	})
}

func (r *Registry) trackDir(id, path string) {
	r.track(id, path, func(rec *SessionRecord) {
		rec.Dirs = append(rec.Dirs, path)
	})
}

func (r *Registry) track(id, path string, add func(*SessionRecord)) {
	r.mu.Lock()
	rec, ok := r.records[id]
	if !ok {
		rec = &SessionRecord{}
		r.records[id] = rec
	}
	add(rec)
	n := len(r.records)
	r.mu.Unlock()

	r.observer.SetTrackedSessions(n)

	r.logger.Debug().
		Str("session_id", id).
		Str("path", path).
		Msg("Tracked temp path")
}

// detach removes and returns the record for id
func (r *Registry) detach(id string) (*SessionRecord, bool) {
	r.mu.Lock()
	rec, ok := r.records[id]
	if ok {
		delete(r.records, id)
	}
	n := len(r.records)
	r.mu.Unlock()

	if ok {
		r.observer.SetTrackedSessions(n)
	}
	return rec, ok
}
