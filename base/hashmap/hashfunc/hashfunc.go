package hashfunc

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

type HashType int

const (
	KeyModCapacity HashType = iota
	MidSquare
)

var ErrUnknownHashType = errors.New("hashfunc: unknown hash type")

var names = map[HashType]string{
	KeyModCapacity: "keymod",
	MidSquare:      "midsquare",
}

func (h HashType) String() string {
	if name, ok := names[h]; ok {
		return name
	}
	return "unknown"
}

// Parse accepts the names produced by String, case-insensitively.
func Parse(name string) (HashType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for hashType, known := range names {
		if known == name {
			return hashType, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownHashType, "%q", name)
}

func (h HashType) Valid() bool {
	_, ok := names[h]
	return ok
}

// All returns every supported hash type in declaration order.
func All() []HashType {
	return []HashType{KeyModCapacity, MidSquare}
}

/*
Hash maps key to an index in [0, capacity).
Capacity must be positive; a zero capacity panics with a division by zero,
and so does a HashType outside the known set.
*/
func Hash(h HashType, key, capacity uint32) uint32 {
	switch h {
	case KeyModCapacity:
		return keyMod(key, capacity)
	case MidSquare:
		return midSquare(key, capacity)
	default:
		panic(errors.Wrapf(ErrUnknownHashType, "%d", int(h)))
	}
}

func keyMod(key, capacity uint32) uint32 {
	return key % capacity
}

// midSquare drops the low bits of key*key by integer division and folds the
// rest into the table. The square wraps at 32 bits.
func midSquare(key, capacity uint32) uint32 {
	hash := key * key

	maxBits := math.Ceil(math.Log2(float64(uint64(capacity) * uint64(capacity) * 9)))
	tableBits := math.Ceil(math.Log2(float64(capacity)))
	diff := uint32(maxBits - tableBits)
	shift := diff / 2

	divisor := shift * shift
	if divisor == 0 {
		divisor = 1
	}
	hash /= divisor
	return hash % capacity
}
