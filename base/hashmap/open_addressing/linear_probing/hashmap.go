package linear_probing

import (
	"github.com/pkg/errors"

	"loadfactor/base/hashmap"
	"loadfactor/base/hashmap/hashfunc"
)

/*
HashTableWithLinearProbing implementation

All entries live in one flat slice of cells. A collision moves the insert
to the next cell, wrapping at the end of the slice. One cell always stays
Null so that every probe ends.
*/

const (
	Null    = 0
	Value   = 1
	Deleted = 2
)

type Cell struct {
	Key   uint32
	Value string
	state int
}

func (cell *Cell) occupied() bool {
	return cell.state == Value
}

type HashTableWithLinearProbing struct {
	Cells      []Cell
	size       uint32
	collisions uint32
	hashType   hashfunc.HashType
}

var _ hashmap.Table = (*HashTableWithLinearProbing)(nil)

func New(capacity uint32, hashType hashfunc.HashType) (*HashTableWithLinearProbing, error) {
	if capacity == 0 {
		return nil, hashmap.ErrZeroCapacity
	}
	if !hashType.Valid() {
		return nil, errors.Wrapf(hashfunc.ErrUnknownHashType, "%d", int(hashType))
	}
	return &HashTableWithLinearProbing{
		Cells:    make([]Cell, capacity),
		hashType: hashType,
	}, nil
}

func (hashMap *HashTableWithLinearProbing) linearProbing(cell uint32) uint32 {
	return (cell + 1) % hashMap.Capacity()
}

func (hashMap *HashTableWithLinearProbing) Hash(key uint32) uint32 {
	return hashfunc.Hash(hashMap.hashType, key, hashMap.Capacity())
}

func (hashMap *HashTableWithLinearProbing) Size() uint32 {
	return hashMap.size
}

func (hashMap *HashTableWithLinearProbing) Capacity() uint32 {
	return uint32(len(hashMap.Cells))
}

func (hashMap *HashTableWithLinearProbing) Collisions() uint32 {
	return hashMap.collisions
}

func (hashMap *HashTableWithLinearProbing) LoadFactor() float64 {
	return hashmap.LoadFactor(hashMap.size, hashMap.Capacity())
}

// IsFull reports whether only the reserved Null cell is left.
func (hashMap *HashTableWithLinearProbing) IsFull() bool {
	return hashMap.size == hashMap.Capacity()-1
}

func (hashMap *HashTableWithLinearProbing) ContainsKey(key uint32) bool {
	_, ok := hashMap.Get(key)
	return ok
}

/*
Put walks the cell run up to the first Null cell looking for key. A new
key goes into the first Deleted cell seen on the way, or into the Null cell
when there was none. Only occupied cells before that target are collisions.
*/
func (hashMap *HashTableWithLinearProbing) Put(key uint32, value string) error {
	cell := hashMap.Hash(key)
	var collisions uint32
	var target uint32
	found := false

	for probes := uint32(0); probes < hashMap.Capacity(); probes++ {
		current := &hashMap.Cells[cell]
		if current.state == Null {
			if !found {
				target, found = cell, true
			}
			break
		}

		if current.state == Deleted {
			if !found {
				target, found = cell, true
			}
		} else if current.Key == key {
			// update value of cell if it exists, an overwrite is never a collision
			current.Value = value
			return nil
		} else if !found {
			collisions++
		}
		cell = hashMap.linearProbing(cell)
	}

	if !found || hashMap.IsFull() {
		return hashmap.ErrTableFull
	}
	hashMap.Cells[target] = Cell{
		Key:   key,
		Value: value,
		state: Value,
	}
	hashMap.size++
	hashMap.collisions += collisions
	return nil
}

// Get walks past Deleted cells and stops at the first Null one.
func (hashMap *HashTableWithLinearProbing) Get(key uint32) (string, bool) {
	cell := hashMap.Hash(key)

	for probes := uint32(0); probes < hashMap.Capacity(); probes++ {
		current := hashMap.Cells[cell]
		if current.state == Null {
			return "", false
		}
		if current.occupied() && current.Key == key {
			return current.Value, true
		}
		cell = hashMap.linearProbing(cell)
	}
	return "", false
}
