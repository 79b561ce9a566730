package separate_chaining

import (
	"github.com/pkg/errors"

	"loadfactor/base/hashmap"
	"loadfactor/base/hashmap/hashfunc"
)

// Bucket keeps its entries in insertion order and only ever grows.
type Bucket []hashmap.Entry

type HashTableWithChaining struct {
	Buckets    []Bucket
	size       uint32
	collisions uint32
	hashType   hashfunc.HashType
}

var _ hashmap.Table = (*HashTableWithChaining)(nil)

func New(capacity uint32, hashType hashfunc.HashType) (*HashTableWithChaining, error) {
	if capacity == 0 {
		return nil, hashmap.ErrZeroCapacity
	}
	if !hashType.Valid() {
		return nil, errors.Wrapf(hashfunc.ErrUnknownHashType, "%d", int(hashType))
	}
	return &HashTableWithChaining{
		Buckets:  make([]Bucket, capacity),
		hashType: hashType,
	}, nil
}

func (hashMap *HashTableWithChaining) Hash(key uint32) uint32 {
	return hashfunc.Hash(hashMap.hashType, key, hashMap.Capacity())
}

func (hashMap *HashTableWithChaining) Size() uint32 {
	return hashMap.size
}

func (hashMap *HashTableWithChaining) Capacity() uint32 {
	return uint32(len(hashMap.Buckets))
}

func (hashMap *HashTableWithChaining) Collisions() uint32 {
	return hashMap.collisions
}

func (hashMap *HashTableWithChaining) LoadFactor() float64 {
	return hashmap.LoadFactor(hashMap.size, hashMap.Capacity())
}

func (hashMap *HashTableWithChaining) IsFull() bool {
	return hashMap.size == hashMap.Capacity()
}

/*
Put appends to the bucket without looking for key first, so a repeated
key is stored twice. Every entry already in the bucket counts as one collision.
*/
func (hashMap *HashTableWithChaining) Put(key uint32, value string) error {
	bucket := hashMap.Hash(key)

	hashMap.collisions += uint32(len(hashMap.Buckets[bucket]))
	hashMap.Buckets[bucket] = append(hashMap.Buckets[bucket], hashmap.Entry{Key: key, Value: value})
	hashMap.size++
	return nil
}

func (hashMap *HashTableWithChaining) Get(key uint32) (string, bool) {
	bucket := hashMap.Hash(key)

	for _, entry := range hashMap.Buckets[bucket] {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}
