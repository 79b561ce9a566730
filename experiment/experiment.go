package experiment

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"loadfactor/base/hashmap"
	"loadfactor/base/hashmap/hashfunc"
)

// Sample is the state of both tables after one random key was drawn.
type Sample struct {
	OALoad       float64
	OACollisions uint32
	SCLoad       float64
	SCCollisions uint32
}

type Result struct {
	Size     uint32
	HashType hashfunc.HashType
	Samples  []Sample
}

// Name is the file name prefix shared by the CSV and SVG outputs.
func (r *Result) Name() string {
	return fmt.Sprintf("%s_size_%d", r.HashType, r.Size)
}

/*
Generate draws keys from [0, keyBound) and puts each one into every table
that is not full yet, recording both tables after each draw. It returns once
both tables are full or ctx is done. keyBound must leave enough distinct keys
to fill the open-addressing table.
*/
func Generate(ctx context.Context, oaTable, scTable hashmap.Table, keyBound uint32, rng *rand.Rand) ([]Sample, error) {
	if keyBound == 0 || keyBound < oaTable.Capacity()-1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "key range %d cannot fill capacity %d", keyBound, oaTable.Capacity())
	}

	var samples []Sample
	for !oaTable.IsFull() || !scTable.IsFull() {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		key := uint32(rng.Int63n(int64(keyBound)))
		value := strconv.FormatUint(uint64(key), 10)

		for _, table := range []hashmap.Table{oaTable, scTable} {
			if table.IsFull() {
				continue
			}
			if err := table.Put(key, value); err != nil {
				return samples, errors.Wrapf(err, "Generate.Put key %d", key)
			}
		}

		samples = append(samples, Sample{
			OALoad:       oaTable.LoadFactor(),
			OACollisions: oaTable.Collisions(),
			SCLoad:       scTable.LoadFactor(),
			SCCollisions: scTable.Collisions(),
		})
	}
	return samples, nil
}

// RunOne builds a fresh table pair for size and hashType and fills it.
func RunOne(ctx context.Context, size uint32, hashType hashfunc.HashType, keyRange uint32, rng *rand.Rand) (*Result, error) {
	keyBound := uint64(size) * uint64(keyRange)
	if keyBound > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidConfig, "keys for size %d overflow 32 bits", size)
	}

	oaTable, err := NewTable(LinearProbing, size, hashType)
	if err != nil {
		return nil, errors.Wrap(err, "RunOne.LinearProbing")
	}
	scTable, err := NewTable(SeparateChaining, size, hashType)
	if err != nil {
		return nil, errors.Wrap(err, "RunOne.SeparateChaining")
	}

	samples, err := Generate(ctx, oaTable, scTable, uint32(keyBound), rng)
	if err != nil {
		return nil, err
	}
	return &Result{Size: size, HashType: hashType, Samples: samples}, nil
}

type Runner struct {
	fs     afero.Fs
	logger *zap.Logger
}

func NewRunner(fs afero.Fs, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{fs: fs, logger: logger}
}

/*
Run executes one experiment per (size, hash type) pair in cfg and writes
its outputs under cfg.OutDir. Experiments share nothing, so they run in
parallel up to cfg.Jobs at a time; each gets its own random source derived
from cfg.Seed and its position, keeping the output reproducible.
*/
func (r *Runner) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := r.fs.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "Run.MkdirAll")
	}

	results := make([]*Result, len(cfg.HashTypes)*len(cfg.Sizes))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Jobs)

	for i, hashType := range cfg.HashTypes {
		for j, size := range cfg.Sizes {
			idx := i*len(cfg.Sizes) + j
			group.Go(func() error {
				rng := rand.New(rand.NewSource(cfg.Seed + int64(idx)))
				result, err := RunOne(ctx, size, hashType, cfg.KeyRange, rng)
				if err != nil {
					return err
				}
				if err := r.write(cfg, result); err != nil {
					return err
				}
				results[idx] = result
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) write(cfg Config, result *Result) error {
	csvPath, err := WriteCSV(r.fs, cfg.OutDir, result)
	if err != nil {
		return err
	}
	last := result.Samples[len(result.Samples)-1]
	r.logger.Info("experiment finished",
		zap.String("hash", result.HashType.String()),
		zap.Uint32("capacity", result.Size),
		zap.Int("rows", len(result.Samples)),
		zap.Uint32("oa_collisions", last.OACollisions),
		zap.Uint32("sc_collisions", last.SCCollisions),
		zap.String("file", csvPath),
	)

	if !cfg.Plot {
		return nil
	}
	svgPath, err := WritePlot(r.fs, cfg.OutDir, result)
	if err != nil {
		return err
	}
	r.logger.Debug("plot written", zap.String("file", svgPath))
	return nil
}
