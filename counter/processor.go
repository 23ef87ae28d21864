// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/system"
)

type program struct{}

// New - the counter program
func New() runtime.Program {
	return program{}
}

// Process - decode, apply and store back a counter request
//
// accounts: [counter (writable, owned by this program)]
func (program) Process(ctx *runtime.Context, data []byte) error {
	instruction, err := Unpack(data)
	if nil != err {
		return err
	}

	it := ctx.Iterator()
	info, err := it.Next()
	if nil != err {
		return err
	}
	if err := runtime.RequireOwner(info, ctx.ProgramID); nil != err {
		return err
	}
	if err := runtime.RequireWritable(info); nil != err {
		return err
	}

	current, err := UnpackCounter(info.Data)
	if nil != err {
		return err
	}
	next, err := instruction.Apply(current)
	if nil != err {
		ctx.Debugf("counter: %s value: %d error: %s", info.Key, current, err)
		return err
	}

	ctx.Debugf("counter: %s value: %d new: %d", info.Key, current, next)
	return next.Pack(info.Data)
}

// Create - build the system request that allocates a counter record
//
// the new account must sign the transaction together with the payer
func Create(payer address.Address, counter address.Address, lamports uint64) runtime.Instruction {
	return system.CreateAccount(payer, counter, lamports, Size, ID)
}
