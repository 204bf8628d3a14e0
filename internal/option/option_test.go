package option

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// bufConfig stands in for buffer's own *config: a single field set
// through a fallible option, mirroring how a WithChunkSize option would
// reject a non-positive size.
type bufConfig struct {
	chunkSize int
	lastCall  string
}

func (c *bufConfig) setChunkSize(n int) error {
	if n <= 0 {
		return errors.New("chunk size must be positive")
	}
	c.chunkSize = n
	c.lastCall = "setChunkSize"

	return nil
}

// dedupConfig stands in for value's *mapConfig: boolean switches set
// through infallible options, mirroring WithFirstWriteWins.
type dedupConfig struct {
	firstWriteWins bool
	caseSensitive  bool
	lastCall       string
}

func (c *dedupConfig) setFirstWriteWins() {
	c.firstWriteWins = true
	c.lastCall = "setFirstWriteWins"
}

func (c *dedupConfig) setCaseSensitive(v bool) {
	c.caseSensitive = v
	c.lastCall = "setCaseSensitive"
}

func TestOption_New(t *testing.T) {
	cfg := &bufConfig{}

	t.Run("creates option that can return error", func(t *testing.T) {
		opt := New(func(c *bufConfig) error {
			return c.setChunkSize(4096)
		})

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.Equal(t, 4096, cfg.chunkSize)
		require.Equal(t, "setChunkSize", cfg.lastCall)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		opt := New(func(c *bufConfig) error {
			return c.setChunkSize(-1)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "chunk size must be positive")
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &dedupConfig{}

	t.Run("creates option from function without error", func(t *testing.T) {
		opt := NoError(func(c *dedupConfig) { c.setFirstWriteWins() })

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.True(t, cfg.firstWriteWins)
		require.Equal(t, "setFirstWriteWins", cfg.lastCall)
	})

	t.Run("works with boolean setter", func(t *testing.T) {
		opt := NoError(func(c *dedupConfig) { c.setCaseSensitive(true) })

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.True(t, cfg.caseSensitive)
		require.Equal(t, "setCaseSensitive", cfg.lastCall)
	})
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := &dedupConfig{}
		opts := []Option[*dedupConfig]{
			NoError(func(c *dedupConfig) { c.setFirstWriteWins() }),
			NoError(func(c *dedupConfig) { c.setCaseSensitive(true) }),
		}

		err := Apply(cfg, opts...)
		require.NoError(t, err)
		require.True(t, cfg.firstWriteWins)
		require.True(t, cfg.caseSensitive)
		require.Equal(t, "setCaseSensitive", cfg.lastCall)
	})

	t.Run("stops at first error and returns it", func(t *testing.T) {
		cfg := &bufConfig{}
		opts := []Option[*bufConfig]{
			New(func(c *bufConfig) error { return c.setChunkSize(512) }),
			New(func(c *bufConfig) error { return c.setChunkSize(-1) }),
		}

		err := Apply(cfg, opts...)
		require.Error(t, err)
		require.Contains(t, err.Error(), "chunk size must be positive")
		require.Equal(t, 512, cfg.chunkSize)
		require.Equal(t, "setChunkSize", cfg.lastCall)
	})

	t.Run("works with empty options slice", func(t *testing.T) {
		cfg := &bufConfig{}
		err := Apply(cfg)
		require.NoError(t, err)
		require.Equal(t, 0, cfg.chunkSize)
	})
}

func TestOption_Integration(t *testing.T) {
	withChunkSize := func(n int) Option[*bufConfig] {
		return New(func(c *bufConfig) error { return c.setChunkSize(n) })
	}

	t.Run("works with helper functions", func(t *testing.T) {
		cfg := &bufConfig{}
		err := Apply(cfg, withChunkSize(8192))

		require.NoError(t, err)
		require.Equal(t, 8192, cfg.chunkSize)
	})
}
