// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/system"
)

var (
	payerKey = address.FromName("payer")
	newKey   = address.FromName("new")
	owner    = address.FromName("owner")
)

func run(accounts []*runtime.AccountInfo, data []byte) error {
	ctx := &runtime.Context{
		ProgramID: system.ID,
		Accounts:  accounts,
	}
	return system.New().Process(ctx, data)
}

func TestCreateAccount(t *testing.T) {
	payer := runtime.NewAccountInfo(payerKey, true, true, 1000, nil, system.ID)
	target := runtime.NewAccountInfo(newKey, true, true, 0, nil, system.ID)

	instruction := system.CreateAccount(payerKey, newKey, 600, 20, owner)
	assert.Equal(t, system.ID, instruction.ProgramID, "wrong program")
	assert.Equal(t, 2, len(instruction.Accounts), "wrong account count")

	err := run([]*runtime.AccountInfo{payer, target}, instruction.Data)
	assert.Nil(t, err, "create")
	assert.Equal(t, uint64(400), payer.Lamports, "payer not debited")
	assert.Equal(t, uint64(600), target.Lamports, "new account not credited")
	assert.Equal(t, make([]byte, 20), target.Data, "data not allocated")
	assert.Equal(t, owner, target.Owner, "owner not assigned")

	// second create at the same address
	err = run([]*runtime.AccountInfo{payer, target}, instruction.Data)
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "account created twice")
}

func TestCreateAccountPrefunded(t *testing.T) {
	instruction := system.CreateAccount(payerKey, newKey, 600, 20, owner)

	payer := runtime.NewAccountInfo(payerKey, true, true, 1000, nil, system.ID)
	target := runtime.NewAccountInfo(newKey, true, true, 1, nil, system.ID)
	err := run([]*runtime.AccountInfo{payer, target}, instruction.Data)
	assert.Nil(t, err, "create over an existing balance")
	assert.Equal(t, uint64(401), payer.Lamports, "payer charged for the existing balance")
	assert.Equal(t, uint64(600), target.Lamports, "new account balance")
	assert.Equal(t, owner, target.Owner, "owner not assigned")

	// already holding more than requested
	payer = runtime.NewAccountInfo(payerKey, true, true, 0, nil, system.ID)
	target = runtime.NewAccountInfo(newKey, true, true, 900, nil, system.ID)
	err = run([]*runtime.AccountInfo{payer, target}, instruction.Data)
	assert.Nil(t, err, "create over a larger balance")
	assert.Equal(t, uint64(0), payer.Lamports, "payer changed")
	assert.Equal(t, uint64(900), target.Lamports, "balance changed")
	assert.Equal(t, make([]byte, 20), target.Data, "data not allocated")
}

func TestCreateAccountFailures(t *testing.T) {
	instruction := system.CreateAccount(payerKey, newKey, 600, 20, owner)

	payer := runtime.NewAccountInfo(payerKey, true, true, 100, nil, system.ID)
	target := runtime.NewAccountInfo(newKey, true, true, 0, nil, system.ID)
	err := run([]*runtime.AccountInfo{payer, target}, instruction.Data)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "overdraft accepted")
	assert.Equal(t, uint64(100), payer.Lamports, "payer changed")
	assert.Equal(t, 0, len(target.Data), "data allocated")

	payer = runtime.NewAccountInfo(payerKey, true, true, 1000, nil, system.ID)
	target = runtime.NewAccountInfo(newKey, false, true, 0, nil, system.ID)
	err = run([]*runtime.AccountInfo{payer, target}, instruction.Data)
	assert.Equal(t, fault.ErrUnauthorised, err, "unsigned new account accepted")

	target = runtime.NewAccountInfo(newKey, true, true, 0, nil, system.ID)
	err = run([]*runtime.AccountInfo{payer}, instruction.Data)
	assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "missing account accepted")

	huge := system.CreateAccount(payerKey, newKey, 0, system.MaxSpace+1, owner)
	err = run([]*runtime.AccountInfo{payer, target}, huge.Data)
	assert.Equal(t, fault.ErrCapacityExceeded, err, "huge allocation accepted")
}

func TestTransfer(t *testing.T) {
	from := runtime.NewAccountInfo(payerKey, true, true, 50, nil, system.ID)
	to := runtime.NewAccountInfo(newKey, false, true, 5, nil, owner)

	instruction := system.Transfer(payerKey, newKey, 20)
	err := run([]*runtime.AccountInfo{from, to}, instruction.Data)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, uint64(30), from.Lamports, "from not debited")
	assert.Equal(t, uint64(25), to.Lamports, "to not credited")

	instruction = system.Transfer(payerKey, newKey, 31)
	err = run([]*runtime.AccountInfo{from, to}, instruction.Data)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "overdraft accepted")

	// only system owned accounts can be debited here
	err = run([]*runtime.AccountInfo{to, from}, system.Transfer(newKey, payerKey, 1).Data)
	assert.Equal(t, fault.ErrUnauthorised, err, "unsigned source accepted")
	to.IsSigner = true
	err = run([]*runtime.AccountInfo{to, from}, system.Transfer(newKey, payerKey, 1).Data)
	assert.Equal(t, fault.ErrIllegalOwner, err, "foreign owned source accepted")
}

func TestUnpack(t *testing.T) {
	c := &system.CreateAccountInstruction{
		Lamports: 7,
		Space:    1000,
		Owner:    owner,
	}
	decoded, err := system.Unpack(c.Pack())
	assert.Nil(t, err, "unpack create")
	assert.Equal(t, c, decoded, "create round trip")

	invalid := [][]byte{
		nil,
		{0, 0, 0},
		{1, 0, 0, 0},
		append(c.Pack(), 0),
		c.Pack()[:30],
		{2, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
	}
	for i, data := range invalid {
		_, err := system.Unpack(data)
		assert.Equal(t, fault.ErrMalformedRequest, err, "%d: accepted", i)
	}
}
