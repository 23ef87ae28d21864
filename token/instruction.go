// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/util"
)

// ID - the token component's address
var ID = address.FromName("token")

// discriminants, a single byte
const (
	tagInitializeMint    = uint8(0)
	tagInitializeAccount = uint8(1)
	tagMintTo            = uint8(7)
	tagTransferChecked   = uint8(12)
)

// Instruction - one of the request types below
type Instruction interface {
	Pack() []byte
}

// InitializeMintInstruction - set up a new mint
type InitializeMintInstruction struct {
	Decimals        uint8
	MintAuthority   address.Address
	FreezeAuthority *address.Address
}

// InitializeAccountInstruction - set up a new token account
type InitializeAccountInstruction struct{}

// MintToInstruction - create new units in a token account
type MintToInstruction struct {
	Amount uint64
}

// TransferCheckedInstruction - move units, confirming the mint precision
type TransferCheckedInstruction struct {
	Amount   uint64
	Decimals uint8
}

// Pack - binary request
func (i *InitializeMintInstruction) Pack() []byte {
	buffer := util.AppendUint8(nil, tagInitializeMint)
	buffer = util.AppendUint8(buffer, i.Decimals)
	buffer = append(buffer, i.MintAuthority[:]...)
	if nil == i.FreezeAuthority {
		return util.AppendBool(buffer, false)
	}
	buffer = util.AppendBool(buffer, true)
	return append(buffer, i.FreezeAuthority[:]...)
}

// Pack - binary request
func (i *InitializeAccountInstruction) Pack() []byte {
	return util.AppendUint8(nil, tagInitializeAccount)
}

// Pack - binary request
func (i *MintToInstruction) Pack() []byte {
	buffer := util.AppendUint8(nil, tagMintTo)
	return util.AppendUint64(buffer, i.Amount)
}

// Pack - binary request
func (i *TransferCheckedInstruction) Pack() []byte {
	buffer := util.AppendUint8(nil, tagTransferChecked)
	buffer = util.AppendUint64(buffer, i.Amount)
	return util.AppendUint8(buffer, i.Decimals)
}

// Unpack - decode a binary request
func Unpack(data []byte) (Instruction, error) {
	if 0 == len(data) {
		return nil, fault.ErrMalformedRequest
	}
	u := util.NewUnpacker(data[1:], fault.ErrMalformedRequest)

	var result Instruction
	switch data[0] {
	case tagInitializeMint:
		i := &InitializeMintInstruction{
			Decimals: u.ReadUint8(),
		}
		copy(i.MintAuthority[:], u.ReadBytes(address.Length))
		if u.ReadBool() {
			var freeze address.Address
			copy(freeze[:], u.ReadBytes(address.Length))
			i.FreezeAuthority = &freeze
		}
		result = i

	case tagInitializeAccount:
		result = &InitializeAccountInstruction{}

	case tagMintTo:
		result = &MintToInstruction{
			Amount: u.ReadUint64(),
		}

	case tagTransferChecked:
		result = &TransferCheckedInstruction{
			Amount:   u.ReadUint64(),
			Decimals: u.ReadUint8(),
		}

	default:
		return nil, fault.ErrMalformedRequest
	}

	if err := u.Finish(); nil != err {
		return nil, err
	}
	return result, nil
}

// InitializeMint - build the instruction
func InitializeMint(mint address.Address, decimals uint8, mintAuthority address.Address, freezeAuthority *address.Address) runtime.Instruction {
	i := InitializeMintInstruction{
		Decimals:        decimals,
		MintAuthority:   mintAuthority,
		FreezeAuthority: freezeAuthority,
	}
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.WritableMeta(mint, false),
		},
		Data: i.Pack(),
	}
}

// InitializeAccount - build the instruction
func InitializeAccount(account address.Address, mint address.Address, owner address.Address) runtime.Instruction {
	i := InitializeAccountInstruction{}
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.WritableMeta(account, false),
			runtime.ReadonlyMeta(mint, false),
			runtime.ReadonlyMeta(owner, false),
		},
		Data: i.Pack(),
	}
}

// MintTo - build the instruction
func MintTo(mint address.Address, destination address.Address, authority address.Address, amount uint64) runtime.Instruction {
	i := MintToInstruction{
		Amount: amount,
	}
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.WritableMeta(mint, false),
			runtime.WritableMeta(destination, false),
			runtime.ReadonlyMeta(authority, true),
		},
		Data: i.Pack(),
	}
}

// TransferChecked - build the instruction
func TransferChecked(source address.Address, mint address.Address, destination address.Address, authority address.Address, amount uint64, decimals uint8) runtime.Instruction {
	i := TransferCheckedInstruction{
		Amount:   amount,
		Decimals: decimals,
	}
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.WritableMeta(source, false),
			runtime.ReadonlyMeta(mint, false),
			runtime.WritableMeta(destination, false),
			runtime.ReadonlyMeta(authority, true),
		},
		Data: i.Pack(),
	}
}
