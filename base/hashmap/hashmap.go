package hashmap

import (
	"github.com/pkg/errors"
)

var (
	ErrZeroCapacity = errors.New("hashmap: capacity must be positive")
	ErrTableFull    = errors.New("hashmap: table is full")
)

// Entry is a single key/value pair stored in a table.
type Entry struct {
	Key   uint32
	Value string
}

/*
Table is the behaviour shared by every fixed-capacity hash table.
Callers must not depend on the collision strategy or the hash function
behind it.
*/
type Table interface {
	// Get returns a copy of the value stored for key.
	Get(key uint32) (string, bool)
	Put(key uint32, value string) error
	// Hash maps key to the slot or bucket it starts from.
	Hash(key uint32) uint32
	LoadFactor() float64
	Collisions() uint32
	Size() uint32
	Capacity() uint32
	IsFull() bool
}

// LoadFactor is the ratio between stored entries and capacity.
func LoadFactor(size, capacity uint32) float64 {
	return float64(size) / float64(capacity)
}
