// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/storage"
)

// accounts checked out for one request
type arena struct {
	accounts map[address.Address]*runtime.AccountState
	writable map[address.Address]bool
	order    []address.Address
}

func newArena() *arena {
	return &arena{
		accounts: make(map[address.Address]*runtime.AccountState),
		writable: make(map[address.Address]bool),
	}
}

// get the shared state for an address, loading it on first use
func (a *arena) load(key address.Address) (*runtime.AccountState, error) {
	if state, ok := a.accounts[key]; ok {
		return state, nil
	}
	state, _, err := storage.GetAccount(key)
	if nil != err {
		return nil, err
	}
	a.accounts[key] = state
	a.order = append(a.order, key)
	return state, nil
}

// mark an account to be written back on success
func (a *arena) markWritable(key address.Address) {
	a.writable[key] = true
}

// write every writable account in one batch
//
// an account left with no balance and no data is removed
func (a *arena) commit() error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	for _, key := range a.order {
		if !a.writable[key] {
			continue
		}
		state := a.accounts[key]
		if state.IsEmpty() {
			trx.Delete(storage.Pool.Accounts, key[:])
			continue
		}
		trx.Put(storage.Pool.Accounts, key[:], storage.PackAccount(state))
	}
	return trx.Commit()
}
