// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/recordd/address"
)

// AccountMeta - an account reference inside an instruction
type AccountMeta struct {
	Key        address.Address `json:"key"`
	IsSigner   bool            `json:"isSigner"`
	IsWritable bool            `json:"isWritable"`
}

// WritableMeta - a writable account reference
func WritableMeta(key address.Address, isSigner bool) AccountMeta {
	return AccountMeta{
		Key:        key,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// ReadonlyMeta - a read-only account reference
func ReadonlyMeta(key address.Address, isSigner bool) AccountMeta {
	return AccountMeta{
		Key:        key,
		IsSigner:   isSigner,
		IsWritable: false,
	}
}

// Instruction - a request addressed to one program
type Instruction struct {
	ProgramID address.Address `json:"programId"`
	Accounts  []AccountMeta   `json:"accounts"`
	Data      []byte          `json:"data"`
}
