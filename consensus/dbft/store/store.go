// Package store provides the durable key-value backing for a Round's
// checkpoint, implemented over goleveldb the way the teacher's own
// chain database is.
package store

import (
	"github.com/golang/snappy"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// recentCacheSize bounds the diagnostic hot-read cache below: a node
// only ever keeps one checkpoint at a time, so this exists for
// dbft-inspect's repeated reads against a live node, not for steady
// state traffic.
const recentCacheSize = 32

// LevelDB wraps a goleveldb database directory keyed by the
// single-byte keys the checkpoint codec and the rest of the consensus
// layer address it with (spec §6 fixed key 0xF4). A small typed LRU
// sits in front of it so repeated inspection reads (dbft-inspect
// polling a live node) don't all round-trip through goleveldb.
type LevelDB struct {
	db     *leveldb.DB
	recent *lru.Cache[byte, []byte]
}

// Open opens (creating if absent) a LevelDB-backed store at path, with
// an in-memory block cache sized by cacheMB.
func Open(path string, cacheMB int) (*LevelDB, error) {
	opts := &opt.Options{
		BlockCacheCapacity: cacheMB * opt.MiB,
	}
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, err
	}
	recent, err := lru.New[byte, []byte](recentCacheSize)
	if err != nil {
		return nil, err
	}
	return &LevelDB{db: db, recent: recent}, nil
}

// TryGet returns the value stored under key, or nil if absent. Values
// are stored compressed on disk (see PutSync); the hot-read cache
// holds the already-decompressed form, so repeated reads never pay the
// snappy cost.
func (s *LevelDB) TryGet(key byte) []byte {
	if v, ok := s.recent.Get(key); ok {
		return v
	}
	raw, err := s.db.Get([]byte{key}, nil)
	if err != nil {
		return nil
	}
	v, err := snappy.Decode(nil, raw)
	if err != nil {
		return nil
	}
	s.recent.Add(key, v)
	return v
}

// PutSync snappy-compresses value, writes it under key and fsyncs
// before returning, so a checkpoint survives a crash immediately after
// Save returns. The teacher's own goleveldb-backed stores compress
// block bodies the same way before they hit disk.
func (s *LevelDB) PutSync(key byte, value []byte) error {
	compressed := snappy.Encode(nil, value)
	if err := s.db.Put([]byte{key}, compressed, &opt.WriteOptions{Sync: true}); err != nil {
		return err
	}
	s.recent.Add(key, value)
	return nil
}

// Delete removes key, treating an already-absent key as success.
func (s *LevelDB) Delete(key byte) error {
	s.recent.Remove(key)
	err := s.db.Delete([]byte{key}, nil)
	if err == errors.ErrNotFound {
		return nil
	}
	return err
}

// Close releases the underlying database handle.
func (s *LevelDB) Close() error {
	return s.db.Close()
}
