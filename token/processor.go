// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
)

type program struct{}

// New - the token component
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
	case *InitializeMintInstruction:
		return initializeMint(ctx, i)
	case *InitializeAccountInstruction:
		return initializeAccount(ctx)
	case *MintToInstruction:
		return mintTo(ctx, i)
	case *TransferCheckedInstruction:
		return transferChecked(ctx, i)
	default:
		return fault.ErrMalformedRequest
	}
}

func initializeMint(ctx *runtime.Context, i *InitializeMintInstruction) error {
	it := ctx.Iterator()
	mintInfo, err := it.Next()
	if nil != err {
		return err
	}
	if err := runtime.RequireOwner(mintInfo, ctx.ProgramID); nil != err {
		return err
	}
	mint, err := UnpackMint(mintInfo.Data)
	if nil != err {
		return err
	}
	if err := runtime.RequireUninitialised(mint.IsInitialised); nil != err {
		return err
	}
	if !ctx.Rent.IsExempt(mintInfo.Lamports, uint64(len(mintInfo.Data))) {
		return fault.ErrNotRentExempt
	}

	authority := i.MintAuthority
	mint.MintAuthority = &authority
	mint.Decimals = i.Decimals
	mint.IsInitialised = true
	mint.FreezeAuthority = i.FreezeAuthority

	ctx.Debugf("initialise mint: %s decimals: %d", mintInfo.Key, i.Decimals)
	return mint.Pack(mintInfo.Data)
}

func initializeAccount(ctx *runtime.Context) error {
	it := ctx.Iterator()
	accountInfo, err := it.Next()
	if nil != err {
		return err
	}
	mintInfo, err := it.Next()
	if nil != err {
		return err
	}
	ownerInfo, err := it.Next()
	if nil != err {
		return err
	}

	if err := runtime.RequireOwner(accountInfo, ctx.ProgramID); nil != err {
		return err
	}
	if err := runtime.RequireOwner(mintInfo, ctx.ProgramID); nil != err {
		return err
	}
	account, err := UnpackAccount(accountInfo.Data)
	if nil != err {
		return err
	}
	if err := runtime.RequireUninitialised(account.IsInitialised()); nil != err {
		return err
	}
	if !ctx.Rent.IsExempt(accountInfo.Lamports, uint64(len(accountInfo.Data))) {
		return fault.ErrNotRentExempt
	}
	mint, err := UnpackMint(mintInfo.Data)
	if nil != err {
		return err
	}
	if err := runtime.RequireInitialised(mint.IsInitialised); nil != err {
		return err
	}

	account.Mint = mintInfo.Key
	account.Owner = ownerInfo.Key
	account.State = AccountInitialised

	ctx.Debugf("initialise account: %s mint: %s owner: %s", accountInfo.Key, mintInfo.Key, ownerInfo.Key)
	return account.Pack(accountInfo.Data)
}

func mintTo(ctx *runtime.Context, i *MintToInstruction) error {
	it := ctx.Iterator()
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

	if err := runtime.RequireOwner(mintInfo, ctx.ProgramID); nil != err {
		return err
	}
	if err := runtime.RequireOwner(destinationInfo, ctx.ProgramID); nil != err {
		return err
	}
	mint, err := UnpackMint(mintInfo.Data)
	if nil != err {
		return err
	}
	if err := runtime.RequireInitialised(mint.IsInitialised); nil != err {
		return err
	}
	destination, err := UnpackAccount(destinationInfo.Data)
	if nil != err {
		return err
	}
	if err := runtime.RequireInitialised(destination.IsInitialised()); nil != err {
		return err
	}
	if destination.IsFrozen() {
		return fault.ErrAccountFrozen
	}
	if destination.Mint != mintInfo.Key {
		return fault.ErrMintMismatch
	}

	// a mint without authority has a fixed supply
	if nil == mint.MintAuthority || *mint.MintAuthority != authorityInfo.Key {
		return fault.ErrOwnerMismatch
	}
	if err := runtime.RequireSigner(authorityInfo); nil != err {
		return err
	}

	if mint.Supply+i.Amount < mint.Supply || destination.Amount+i.Amount < destination.Amount {
		return fault.ErrTokenOverflow
	}
	mint.Supply += i.Amount
	destination.Amount += i.Amount

	if err := mint.Pack(mintInfo.Data); nil != err {
		return err
	}

	ctx.Debugf("mint: %d to: %s", i.Amount, destinationInfo.Key)
	return destination.Pack(destinationInfo.Data)
}

func transferChecked(ctx *runtime.Context, i *TransferCheckedInstruction) error {
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

	for _, info := range []*runtime.AccountInfo{sourceInfo, mintInfo, destinationInfo} {
		if err := runtime.RequireOwner(info, ctx.ProgramID); nil != err {
			return err
		}
	}

	source, err := UnpackAccount(sourceInfo.Data)
	if nil != err {
		return err
	}
	destination, err := UnpackAccount(destinationInfo.Data)
	if nil != err {
		return err
	}
	if err := runtime.RequireInitialised(source.IsInitialised()); nil != err {
		return err
	}
	if err := runtime.RequireInitialised(destination.IsInitialised()); nil != err {
		return err
	}
	if source.IsFrozen() || destination.IsFrozen() {
		return fault.ErrAccountFrozen
	}
	if source.Amount < i.Amount {
		return fault.ErrInsufficientFunds
	}
	if source.Mint != destination.Mint || source.Mint != mintInfo.Key {
		return fault.ErrMintMismatch
	}

	mint, err := UnpackMint(mintInfo.Data)
	if nil != err {
		return err
	}
	if i.Decimals != mint.Decimals {
		return fault.ErrMintDecimalsMismatch
	}

	if source.Owner != authorityInfo.Key {
		return fault.ErrOwnerMismatch
	}
	if err := runtime.RequireSigner(authorityInfo); nil != err {
		return err
	}

	// a transfer to self only validates
	if sourceInfo.Key == destinationInfo.Key {
		ctx.Debugf("transfer: %d to self: %s", i.Amount, sourceInfo.Key)
		return nil
	}

	if destination.Amount+i.Amount < destination.Amount {
		return fault.ErrTokenOverflow
	}
	source.Amount -= i.Amount
	destination.Amount += i.Amount

	if err := source.Pack(sourceInfo.Data); nil != err {
		return err
	}

	ctx.Debugf("transfer: %d from: %s to: %s", i.Amount, sourceInfo.Key, destinationInfo.Key)
	return destination.Pack(destinationInfo.Data)
}
