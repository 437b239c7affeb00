package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/katalvlaran/tilegrid/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)
	cfg, err := config.Load("")
	is.NoErr(err)
	is.Equal(cfg, config.Default())
}

func TestLoad_FileAndEnv(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "tilegrid.yaml")
	is.NoErr(os.WriteFile(path, []byte("time_limit: 90s\nmax_nodes: 1000\nlog_level: debug\n"), 0o644))
	t.Setenv("TILEGRID_PARALLELISM", "2")

	cfg, err := config.Load(path)
	is.NoErr(err)
	is.Equal(cfg.TimeLimit, 90*time.Second)
	is.Equal(cfg.MaxNodes, int64(1000))
	is.Equal(cfg.LogLevel, "debug")
	is.Equal(cfg.Parallelism, 2)
	is.Equal(cfg.Output, "-")
}

func TestLoad_MissingFile(t *testing.T) {
	is := is.New(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	is.True(err != nil)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"negative time":  func(c *config.Config) { c.TimeLimit = -time.Second },
		"negative nodes": func(c *config.Config) { c.MaxNodes = -1 },
		"no workers":     func(c *config.Config) { c.Parallelism = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			cfg := config.Default()
			mutate(&cfg)
			is.True(errors.Is(cfg.Validate(), config.ErrInvalid))
		})
	}
}
