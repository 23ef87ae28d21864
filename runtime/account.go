// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
)

// AccountState - the persistent part of an account
//
// shared by every AccountInfo that refers to the same address within
// one request, so a change made by a called component is visible to
// its caller
type AccountState struct {
	Lamports   uint64
	Data       []byte
	Owner      address.Address
	Executable bool
}

// AccountInfo - an account as seen by one invocation
//
// the signer and writable flags belong to the invocation, the state
// is shared
type AccountInfo struct {
	Key        address.Address
	IsSigner   bool
	IsWritable bool
	*AccountState
}

// NewAccountInfo - convenience constructor
func NewAccountInfo(key address.Address, isSigner bool, isWritable bool, lamports uint64, data []byte, owner address.Address) *AccountInfo {
	return &AccountInfo{
		Key:        key,
		IsSigner:   isSigner,
		IsWritable: isWritable,
		AccountState: &AccountState{
			Lamports: lamports,
			Data:     data,
			Owner:    owner,
		},
	}
}

// Clone - deep copy of the state
func (state *AccountState) Clone() *AccountState {
	data := make([]byte, len(state.Data))
	copy(data, state.Data)
	return &AccountState{
		Lamports:   state.Lamports,
		Data:       data,
		Owner:      state.Owner,
		Executable: state.Executable,
	}
}

// IsEmpty - no data and no balance
func (state *AccountState) IsEmpty() bool {
	return 0 == len(state.Data) && 0 == state.Lamports
}

// AccountIterator - hands out the accounts of an invocation in order
type AccountIterator struct {
	accounts []*AccountInfo
	next     int
}

// NewAccountIterator - iterate over a list of accounts
func NewAccountIterator(accounts []*AccountInfo) *AccountIterator {
	return &AccountIterator{
		accounts: accounts,
	}
}

// Next - the next account or ErrNotEnoughAccountKeys
func (it *AccountIterator) Next() (*AccountInfo, error) {
	if it.next >= len(it.accounts) {
		return nil, fault.ErrNotEnoughAccountKeys
	}
	info := it.accounts[it.next]
	it.next += 1
	return info, nil
}
