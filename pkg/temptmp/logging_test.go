package temptmp

import (
	"bytes"
	"testing"
	"time"

	"github.com/harun/temptmp/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Observer = (*metrics.Metrics)(nil)

func TestRegistryIsSilentByDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	saved := log.Logger
	log.Logger = zerolog.New(buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = saved })

	reg := NewRegistry(WithTempDir(t.TempDir()))
	assert.Equal(t, zerolog.Disabled, reg.logger.GetLevel())

	s := reg.CreateTrackedSession("quiet")
	tf, err := s.Open(Options{})
	require.NoError(t, err)
	require.NoError(t, tf.File.Close())
	_, err = s.Mkdir(Options{})
	require.NoError(t, err)
	s.Cleanup()

	assert.Empty(t, buf.String())
}

func TestWithLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	reg := NewRegistry(
		WithTempDir(t.TempDir()),
		WithLogger(zerolog.New(buf).Level(zerolog.DebugLevel)),
	)

	s := reg.CreateTrackedSession("loud")
	tf, err := s.Open(Options{})
	require.NoError(t, err)
	require.NoError(t, tf.File.Close())
	s.Cleanup()

	out := buf.String()
	assert.Contains(t, out, "Temp file created")
	assert.Contains(t, out, "Tracked temp path")
	assert.Contains(t, out, "Session cleaned up")
	assert.Contains(t, out, `"session_id":"loud"`)
}

func TestWithObserverNil(t *testing.T) {
	reg := NewRegistry(WithTempDir(t.TempDir()), WithObserver(nil))
	s := reg.CreateTrackedSession("unobserved")

	assert.NotPanics(t, func() {
		dir, err := s.Mkdir(Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{dir}, s.Cleanup())
	})
}

type countingObserver struct {
	created, failed, removed int
	sessions                 []int
}

func (c *countingObserver) RecordCreate(kind string, err error) {
	if err != nil {
		c.failed++
		return
	}
	c.created++
}

func (c *countingObserver) RecordCleanup(removed, failed int, _ time.Time) {
	c.removed += removed
}

func (c *countingObserver) SetTrackedSessions(n int) {
	c.sessions = append(c.sessions, n)
}

func TestWithObserver(t *testing.T) {
	obs := &countingObserver{}
	reg := NewRegistry(WithTempDir(t.TempDir()), WithObserver(obs))
	s := reg.CreateTrackedSession("observed")

	_, err := s.Mkdir(Options{})
	require.NoError(t, err)
	_, err = s.Mkdir(Options{Dir: "/nonexistent/temptmp"})
	require.Error(t, err)
	s.Cleanup()

	assert.Equal(t, 1, obs.created)
	assert.Equal(t, 1, obs.failed)
	assert.Equal(t, 1, obs.removed)
	assert.Equal(t, []int{1, 0}, obs.sessions)
}
