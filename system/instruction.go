// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package system

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/util"
)

// ID - the system component's address
var ID = address.Zero

// MaxSpace - largest data buffer CreateAccount will allocate
const MaxSpace = 10 * 1024 * 1024

// discriminants, a little endian uint32 at the start of the request
const (
	tagCreateAccount = uint32(0)
	tagTransfer      = uint32(2)
)

// Instruction - one of the request types below
type Instruction interface {
	Pack() []byte
}

// CreateAccountInstruction - allocate space and assign an owner
type CreateAccountInstruction struct {
	Lamports uint64
	Space    uint64
	Owner    address.Address
}

// TransferInstruction - move lamports
type TransferInstruction struct {
	Lamports uint64
}

// Pack - binary request
func (c *CreateAccountInstruction) Pack() []byte {
	buffer := util.AppendUint32(nil, tagCreateAccount)
	buffer = util.AppendUint64(buffer, c.Lamports)
	buffer = util.AppendUint64(buffer, c.Space)
	return append(buffer, c.Owner[:]...)
}

// Pack - binary request
func (t *TransferInstruction) Pack() []byte {
	buffer := util.AppendUint32(nil, tagTransfer)
	return util.AppendUint64(buffer, t.Lamports)
}

// Unpack - decode a binary request
func Unpack(data []byte) (Instruction, error) {
	u := util.NewUnpacker(data, fault.ErrMalformedRequest)
	tag := u.ReadUint32()
	if nil != u.Err() {
		return nil, u.Err()
	}

	var result Instruction
	switch tag {
	case tagCreateAccount:
		c := &CreateAccountInstruction{
			Lamports: u.ReadUint64(),
			Space:    u.ReadUint64(),
		}
		owner := u.ReadBytes(address.Length)
		if nil == u.Err() {
			copy(c.Owner[:], owner)
		}
		result = c

	case tagTransfer:
		result = &TransferInstruction{
			Lamports: u.ReadUint64(),
		}

	default:
		return nil, fault.ErrMalformedRequest
	}

	if err := u.Finish(); nil != err {
		return nil, err
	}
	return result, nil
}

// CreateAccount - build the instruction
//
// both payer and the new account must sign; the new account may be a
// derived address signed for by its program
func CreateAccount(payer address.Address, newAccount address.Address, lamports uint64, space uint64, owner address.Address) runtime.Instruction {
	c := CreateAccountInstruction{
		Lamports: lamports,
		Space:    space,
		Owner:    owner,
	}
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.WritableMeta(payer, true),
			runtime.WritableMeta(newAccount, true),
		},
		Data: c.Pack(),
	}
}

// Transfer - build the instruction
func Transfer(from address.Address, to address.Address, lamports uint64) runtime.Instruction {
	t := TransferInstruction{
		Lamports: lamports,
	}
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.WritableMeta(from, true),
			runtime.WritableMeta(to, false),
		},
		Data: t.Pack(),
	}
}
