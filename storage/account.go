// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/util"
)

// PackAccount - the stored form of an account
func PackAccount(state *runtime.AccountState) []byte {
	buffer := make([]byte, 0, address.Length+util.Uint64Size+util.Uint8Size+util.Uint32Size+len(state.Data))
	buffer = append(buffer, state.Owner[:]...)
	buffer = util.AppendUint64(buffer, state.Lamports)
	buffer = util.AppendBool(buffer, state.Executable)
	buffer = util.AppendUint32(buffer, uint32(len(state.Data)))
	return append(buffer, state.Data...)
}

// UnpackAccount - decode the stored form of an account
func UnpackAccount(buffer []byte) (*runtime.AccountState, error) {
	u := util.NewUnpacker(buffer, fault.ErrDeserialisation)
	state := &runtime.AccountState{}
	copy(state.Owner[:], u.ReadBytes(address.Length))
	state.Lamports = u.ReadUint64()
	state.Executable = u.ReadBool()
	length := u.ReadUint32()
	if nil != u.Err() {
		return nil, u.Err()
	}
	if uint64(length) > uint64(len(buffer)-u.Offset()) {
		return nil, fault.ErrDeserialisation
	}
	state.Data = u.ReadBytes(int(length))
	if err := u.Finish(); nil != err {
		return nil, err
	}
	return state, nil
}

// GetAccount - read a committed account
//
// an address that has never been written is an empty system owned
// account, reported with found == false
func GetAccount(a address.Address) (state *runtime.AccountState, found bool, err error) {
	buffer := Pool.Accounts.Get(a[:])
	if nil == buffer {
		return &runtime.AccountState{Data: []byte{}}, false, nil
	}
	state, err = UnpackAccount(buffer)
	if nil != err {
		return nil, false, err
	}
	return state, true, nil
}
