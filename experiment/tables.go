package experiment

import (
	"github.com/pkg/errors"

	"loadfactor/base/hashmap"
	"loadfactor/base/hashmap/hashfunc"
	"loadfactor/base/hashmap/open_addressing/linear_probing"
	"loadfactor/base/hashmap/separate_chaining"
)

type Strategy int

const (
	LinearProbing Strategy = iota
	SeparateChaining
)

func (s Strategy) String() string {
	switch s {
	case LinearProbing:
		return "linear_probing"
	case SeparateChaining:
		return "separate_chaining"
	default:
		return "unknown"
	}
}

var ErrUnknownStrategy = errors.New("experiment: unknown collision strategy")

// NewTable hides which package implements the strategy.
func NewTable(strategy Strategy, capacity uint32, hashType hashfunc.HashType) (hashmap.Table, error) {
	switch strategy {
	case LinearProbing:
		table, err := linear_probing.New(capacity, hashType)
		if err != nil {
			return nil, err
		}
		return table, nil
	case SeparateChaining:
		table, err := separate_chaining.New(capacity, hashType)
		if err != nil {
			return nil, err
		}
		return table, nil
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%d", strategy)
	}
}
