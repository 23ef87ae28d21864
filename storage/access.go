// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - batched writes and cached reads for one database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

type pendingItem struct {
	op    dbOperation
	key   string
	value []byte
}

// AccessData - the Access implementation
//
// writes go to the batch only; the cache sees them after the batch
// has been written so readers never observe uncommitted data
type AccessData struct {
	sync.Mutex
	inUse   bool
	db      *leveldb.DB
	batch   *leveldb.Batch
	cache   Cache
	pending []pendingItem
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fmt.Errorf("batch already in use")
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	d.pending = append(d.pending, pendingItem{op: dbPut, key: string(key), value: v})
	d.batch.Put(key, v)
}

func (d *AccessData) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()

	d.pending = append(d.pending, pendingItem{op: dbDelete, key: string(key)})
	d.batch.Delete(key)
}

func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	if nil == err {
		for _, item := range d.pending {
			d.cache.Set(item.op, item.key, item.value)
		}
	}
	d.reset()
	return err
}

func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

// must hold lock
func (d *AccessData) reset() {
	d.batch.Reset()
	d.pending = nil
	d.inUse = false
}

func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, found := d.cache.Get(string(key))
	if found {
		if nil == val {
			return nil, leveldb.ErrNotFound
		}
		return val, nil
	}
	return d.db.Get(key, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	val, found := d.cache.Get(string(key))
	if found {
		return nil != val, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()

	return d.inUse
}
