// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package system

import (
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
)

type program struct{}

// New - the system component
func New() runtime.Program {
	return program{}
}

// Process - execute one request
func (program) Process(ctx *runtime.Context, data []byte) error {
	instruction, err := Unpack(data)
	if nil != err {
		return err
	}

	switch i := instruction.(type) {
	case *CreateAccountInstruction:
		return createAccount(ctx, i)
	case *TransferInstruction:
		return transfer(ctx, i)
	default:
		return fault.ErrMalformedRequest
	}
}

func createAccount(ctx *runtime.Context, c *CreateAccountInstruction) error {
	it := ctx.Iterator()
	payer, err := it.Next()
	if nil != err {
		return err
	}
	newAccount, err := it.Next()
	if nil != err {
		return err
	}

	if err := runtime.RequireSigner(payer); nil != err {
		return err
	}
	if err := runtime.RequireSigner(newAccount); nil != err {
		return err
	}
	if err := runtime.RequireWritable(payer); nil != err {
		return err
	}
	if err := runtime.RequireWritable(newAccount); nil != err {
		return err
	}

	if 0 != len(newAccount.Data) || ID != newAccount.Owner {
		ctx.Debugf("create account: %s already in use", newAccount.Key)
		return fault.ErrAccountAlreadyInUse
	}
	if c.Space > MaxSpace {
		return fault.ErrCapacityExceeded
	}

	// a balance already sent to the address counts towards the total
	shortfall := uint64(0)
	if newAccount.Lamports < c.Lamports {
		shortfall = c.Lamports - newAccount.Lamports
	}
	if payer.Lamports < shortfall {
		ctx.Debugf("create account: payer %s has %d need %d", payer.Key, payer.Lamports, shortfall)
		return fault.ErrInsufficientFunds
	}

	payer.Lamports -= shortfall
	newAccount.Lamports += shortfall
	newAccount.Data = make([]byte, c.Space)
	newAccount.Owner = c.Owner

	ctx.Debugf("create account: %s space: %d owner: %s", newAccount.Key, c.Space, c.Owner)
	return nil
}

func transfer(ctx *runtime.Context, t *TransferInstruction) error {
	it := ctx.Iterator()
	from, err := it.Next()
	if nil != err {
		return err
	}
	to, err := it.Next()
	if nil != err {
		return err
	}

	if err := runtime.RequireSigner(from); nil != err {
		return err
	}
	if err := runtime.RequireWritable(from); nil != err {
		return err
	}
	if err := runtime.RequireWritable(to); nil != err {
		return err
	}
	if err := runtime.RequireOwner(from, ID); nil != err {
		return err
	}
	if from.Lamports < t.Lamports {
		return fault.ErrInsufficientFunds
	}

	from.Lamports -= t.Lamports
	to.Lamports += t.Lamports

	ctx.Debugf("transfer: %d from: %s to: %s", t.Lamports, from.Key, to.Key)
	return nil
}
