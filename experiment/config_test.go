package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"loadfactor/base/hashmap/hashfunc"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"no sizes":       func(cfg *Config) { cfg.Sizes = nil },
		"size one":       func(cfg *Config) { cfg.Sizes = []uint32{1} },
		"no hash types":  func(cfg *Config) { cfg.HashTypes = nil },
		"zero key range": func(cfg *Config) { cfg.KeyRange = 0 },
		"key overflow":   func(cfg *Config) { cfg.Sizes = []uint32{1 << 31} },
		"no jobs":        func(cfg *Config) { cfg.Jobs = 0 },
		"no out dir":     func(cfg *Config) { cfg.OutDir = "" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParseSizes(t *testing.T) {
	sizes, err := ParseSizes(" 10, 25 ,40,")
	require.NoError(t, err)
	require.Equal(t, []uint32{10, 25, 40}, sizes)

	_, err = ParseSizes("10,ten")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseHashTypes(t *testing.T) {
	hashTypes, err := ParseHashTypes("midsquare,keymod")
	require.NoError(t, err)
	require.Equal(t, []hashfunc.HashType{hashfunc.MidSquare, hashfunc.KeyModCapacity}, hashTypes)

	_, err = ParseHashTypes("keymod,crc")
	require.ErrorIs(t, err, hashfunc.ErrUnknownHashType)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LOADFACTOR_SIZES", "8,16")
	t.Setenv("LOADFACTOR_HASH", "midsquare")
	t.Setenv("LOADFACTOR_SEED", "99")
	t.Setenv("LOADFACTOR_PLOT", "true")
	t.Setenv("LOADFACTOR_JOBS", "3")

	cfg, err := LoadEnv(DefaultConfig(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, []uint32{8, 16}, cfg.Sizes)
	require.Equal(t, []hashfunc.HashType{hashfunc.MidSquare}, cfg.HashTypes)
	require.Exactly(t, int64(99), cfg.Seed)
	require.True(t, cfg.Plot)
	require.Exactly(t, 3, cfg.Jobs)
	require.Exactly(t, uint32(3), cfg.KeyRange)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOADFACTOR_KEY_RANGE=5\nLOADFACTOR_OUT=csv\n"), 0o644))
	t.Cleanup(func() {
		_ = os.Unsetenv("LOADFACTOR_KEY_RANGE")
		_ = os.Unsetenv("LOADFACTOR_OUT")
	})

	cfg, err := LoadEnv(DefaultConfig(), path)
	require.NoError(t, err)
	require.Exactly(t, uint32(5), cfg.KeyRange)
	require.Exactly(t, "csv", cfg.OutDir)
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	t.Setenv("LOADFACTOR_SEED", "soon")
	_, err := LoadEnv(DefaultConfig(), filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
