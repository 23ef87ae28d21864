// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/rent"
)

// Program - a component that processes requests addressed to its id
type Program interface {
	Process(ctx *Context, data []byte) error
}

// Invoker - the environment's sub-invocation mechanism
//
// each entry of signerSeeds is a complete seed list (bump included)
// for an address derived from the calling program's id; the derived
// addresses are treated as signers of the nested instruction
type Invoker interface {
	InvokeSigned(instruction Instruction, signerSeeds [][][]byte) error
}

// Context - everything a program may touch while processing a request
type Context struct {
	ProgramID address.Address
	Accounts  []*AccountInfo
	Invoker   Invoker
	Rent      rent.Rent
	Log       *logger.L
}

// Iterator - the accounts in request order
func (ctx *Context) Iterator() *AccountIterator {
	return NewAccountIterator(ctx.Accounts)
}

// Invoke - sub-invoke without derived signers
func (ctx *Context) Invoke(instruction Instruction) error {
	return ctx.Invoker.InvokeSigned(instruction, nil)
}

// InvokeSigned - sub-invoke with derived signers
func (ctx *Context) InvokeSigned(instruction Instruction, signerSeeds [][][]byte) error {
	return ctx.Invoker.InvokeSigned(instruction, signerSeeds)
}

// Debugf - program trace, discarded if no log channel is attached
func (ctx *Context) Debugf(format string, arguments ...interface{}) {
	if nil == ctx.Log {
		return
	}
	ctx.Log.Debugf(format, arguments...)
}
