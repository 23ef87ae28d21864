// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/token"
	"github.com/bitmark-inc/recordd/util"
)

// ID - the relay program's address
var ID = address.FromName("relay")

// AuthoritySeed - seed of the derived address that signs transfers
const AuthoritySeed = "authority"

const tagTransfer = uint8(0)

// TransferInstruction - the only request
//
// an Amount of zero moves the whole balance of the source account
type TransferInstruction struct {
	Amount uint64
}

// Pack - binary request
func (t TransferInstruction) Pack() []byte {
	buffer := util.AppendUint8(nil, tagTransfer)
	return util.AppendUint64(buffer, t.Amount)
}

// Unpack - decode a binary request
func Unpack(data []byte) (TransferInstruction, error) {
	if 0 == len(data) || tagTransfer != data[0] {
		return TransferInstruction{}, fault.ErrMalformedRequest
	}
	u := util.NewUnpacker(data[1:], fault.ErrMalformedRequest)
	t := TransferInstruction{
		Amount: u.ReadUint64(),
	}
	if err := u.Finish(); nil != err {
		return TransferInstruction{}, err
	}
	return t, nil
}

// Authority - the derived address that token source accounts must be owned by
func Authority() (address.Address, uint8, error) {
	return address.FindProgramAddress([][]byte{[]byte(AuthoritySeed)}, ID)
}

// Transfer - build the instruction
func Transfer(source address.Address, mint address.Address, destination address.Address, amount uint64) (runtime.Instruction, error) {
	authority, _, err := Authority()
	if nil != err {
		return runtime.Instruction{}, err
	}
	t := TransferInstruction{
		Amount: amount,
	}
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.WritableMeta(source, false),
			runtime.ReadonlyMeta(mint, false),
			runtime.WritableMeta(destination, false),
			runtime.ReadonlyMeta(authority, false),
			runtime.ReadonlyMeta(token.ID, false),
		},
		Data: t.Pack(),
	}, nil
}
