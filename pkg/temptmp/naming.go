package temptmp

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

const (
	// tempEpoch is subtracted from the wall clock to shorten the time component
	tempEpoch int64 = 1485709902194

	randomLength = 16

	nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// buildName concatenates prefix, pid, the hex time component, a random
// component and suffix.
func buildName(prefix, suffix string, now time.Time, logger zerolog.Logger) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(strconv.Itoa(os.Getpid()))
	b.WriteString(strconv.FormatInt(now.UnixMilli()-tempEpoch, 16))
	b.WriteString(randomString(randomLength, logger))
	b.WriteString(suffix)
	return b.String()
}

func (r *Registry) makePath(opts Options) string {
	dir := opts.Dir
	if dir == "" {
		dir = r.tempDir
	}
	return filepath.Join(dir, buildName(opts.Prefix, opts.Suffix, r.now(), r.logger))
}

func randomString(n int, logger zerolog.Logger) string {
	s, err := gonanoid.Generate(nameAlphabet, n)
	if err == nil {
		return s
	}

	logger.Debug().Err(err).Msg("Secure random source failed, falling back to pseudo-random")

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = nameAlphabet[rand.IntN(len(nameAlphabet))]
	}
	return string(buf)
}
