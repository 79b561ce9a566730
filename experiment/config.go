package experiment

import (
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"loadfactor/base/hashmap/hashfunc"
)

const envPrefix = "LOADFACTOR_"

var ErrInvalidConfig = errors.New("experiment: invalid config")

type Config struct {
	Sizes     []uint32
	HashTypes []hashfunc.HashType
	OutDir    string
	Seed      int64
	// KeyRange scales the table size into the upper bound of random keys.
	KeyRange uint32
	Plot     bool
	Jobs     int
}

func DefaultConfig() Config {
	return Config{
		Sizes:     []uint32{10, 25, 40},
		HashTypes: hashfunc.All(),
		OutDir:    ".",
		Seed:      1,
		KeyRange:  3,
		Jobs:      runtime.NumCPU(),
	}
}

/*
LoadEnv overrides cfg with LOADFACTOR_* variables. A .env file in the
working directory is read first when it exists; variables already set in
the process environment win over it.
*/
func LoadEnv(cfg Config, files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return cfg, errors.Wrap(err, "LoadEnv.godotenv")
	}

	if v, ok := lookup("SIZES"); ok {
		sizes, err := ParseSizes(v)
		if err != nil {
			return cfg, err
		}
		cfg.Sizes = sizes
	}
	if v, ok := lookup("HASH"); ok {
		hashTypes, err := ParseHashTypes(v)
		if err != nil {
			return cfg, err
		}
		cfg.HashTypes = hashTypes
	}
	if v, ok := lookup("OUT"); ok {
		cfg.OutDir = v
	}
	if v, ok := lookup("SEED"); ok {
		seed, err := cast.ToInt64E(v)
		if err != nil {
			return cfg, errors.Wrap(err, "LoadEnv.SEED")
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("KEY_RANGE"); ok {
		keyRange, err := cast.ToUint32E(v)
		if err != nil {
			return cfg, errors.Wrap(err, "LoadEnv.KEY_RANGE")
		}
		cfg.KeyRange = keyRange
	}
	if v, ok := lookup("PLOT"); ok {
		plot, err := cast.ToBoolE(v)
		if err != nil {
			return cfg, errors.Wrap(err, "LoadEnv.PLOT")
		}
		cfg.Plot = plot
	}
	if v, ok := lookup("JOBS"); ok {
		jobs, err := cast.ToIntE(v)
		if err != nil {
			return cfg, errors.Wrap(err, "LoadEnv.JOBS")
		}
		cfg.Jobs = jobs
	}
	return cfg, nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// ParseSizes reads a comma separated list of table sizes.
func ParseSizes(list string) ([]uint32, error) {
	var sizes []uint32
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := cast.ToUint32E(field)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "size %q", field)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func ParseHashTypes(list string) ([]hashfunc.HashType, error) {
	var hashTypes []hashfunc.HashType
	for _, field := range strings.Split(list, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		hashType, err := hashfunc.Parse(field)
		if err != nil {
			return nil, err
		}
		hashTypes = append(hashTypes, hashType)
	}
	return hashTypes, nil
}

func (cfg Config) Validate() error {
	if len(cfg.Sizes) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no table sizes")
	}
	for _, size := range cfg.Sizes {
		// open addressing keeps one cell free, so it needs at least two
		if size < 2 {
			return errors.Wrapf(ErrInvalidConfig, "table size %d", size)
		}
	}
	if len(cfg.HashTypes) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no hash types")
	}
	if cfg.KeyRange == 0 {
		return errors.Wrap(ErrInvalidConfig, "key range must be positive")
	}
	for _, size := range cfg.Sizes {
		if uint64(size)*uint64(cfg.KeyRange) > math.MaxUint32 {
			return errors.Wrapf(ErrInvalidConfig, "keys for size %d overflow 32 bits", size)
		}
	}
	if cfg.Jobs < 1 {
		return errors.Wrapf(ErrInvalidConfig, "jobs %d", cfg.Jobs)
	}
	if cfg.OutDir == "" {
		return errors.Wrap(ErrInvalidConfig, "empty output directory")
	}
	return nil
}
