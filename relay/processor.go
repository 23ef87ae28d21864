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
)

type program struct{}

// New - the relay program
func New() runtime.Program {
	return program{}
}

// Process - forward a transfer to the token component, signed by the
// relay's derived authority
//
// accounts: [source, mint, destination, authority, token program]
func (program) Process(ctx *runtime.Context, data []byte) error {
	request, err := Unpack(data)
	if nil != err {
		return err
	}

	it := ctx.Iterator()
	sourceInfo, err := it.Next()
	if nil != err {
		return err
	}
	mintInfo, err := it.Next()
	if nil != err {
		return err
	}
	destinationInfo, err := it.Next()
	if nil != err {
		return err
	}
	authorityInfo, err := it.Next()
	if nil != err {
		return err
	}
	tokenProgramInfo, err := it.Next()
	if nil != err {
		return err
	}

	seeds := [][]byte{[]byte(AuthoritySeed)}
	expected, bump, err := address.FindProgramAddress(seeds, ctx.ProgramID)
	if nil != err {
		return err
	}
	if expected != authorityInfo.Key {
		return fault.ErrInvalidSeeds
	}
	if token.ID != tokenProgramInfo.Key {
		return fault.ErrIncorrectProgramID
	}

	mint, err := readMint(mintInfo)
	if nil != err {
		return err
	}

	amount := request.Amount
	if 0 == amount {
		source, err := readAccount(sourceInfo)
		if nil != err {
			return err
		}
		amount = source.Amount
	}

	ctx.Debugf("relay: %d from: %s to: %s decimals: %d", amount, sourceInfo.Key, destinationInfo.Key, mint.Decimals)

	instruction := token.TransferChecked(sourceInfo.Key, mintInfo.Key, destinationInfo.Key, authorityInfo.Key, amount, mint.Decimals)
	signerSeeds := [][][]byte{
		append(seeds, []byte{bump}),
	}
	return ctx.InvokeSigned(instruction, signerSeeds)
}

// token state is read only through its public layout; any problem
// reading it is reported as a single error kind
func readMint(info *runtime.AccountInfo) (*token.Mint, error) {
	if token.ID != info.Owner {
		return nil, fault.ErrExternalStateUnreadable
	}
	mint, err := token.UnpackMint(info.Data)
	if nil != err || !mint.IsInitialised {
		return nil, fault.ErrExternalStateUnreadable
	}
	return mint, nil
}

func readAccount(info *runtime.AccountInfo) (*token.Account, error) {
	if token.ID != info.Owner {
		return nil, fault.ErrExternalStateUnreadable
	}
	account, err := token.UnpackAccount(info.Data)
	if nil != err || !account.IsInitialised() {
		return nil, fault.ErrExternalStateUnreadable
	}
	return account, nil
}
