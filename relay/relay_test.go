// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relay_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/relay"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/runtime/mocks"
	"github.com/bitmark-inc/recordd/system"
	"github.com/bitmark-inc/recordd/token"
)

var (
	sourceKey      = address.FromName("source")
	mintKey        = address.FromName("mint")
	destinationKey = address.FromName("destination")
)

type fixture struct {
	source      *runtime.AccountInfo
	mint        *runtime.AccountInfo
	destination *runtime.AccountInfo
	authority   *runtime.AccountInfo
	program     *runtime.AccountInfo
	bump        uint8
}

func newFixture(t *testing.T) *fixture {
	authority, bump, err := relay.Authority()
	if nil != err {
		t.Fatalf("authority: %s", err)
	}

	authorityCopy := mintKey
	mint := &token.Mint{
		MintAuthority: &authorityCopy,
		Supply:        10000,
		Decimals:      6,
		IsInitialised: true,
	}
	mintData := make([]byte, token.MintSize)
	assert.Nil(t, mint.Pack(mintData), "pack mint")

	source := &token.Account{
		Mint:   mintKey,
		Owner:  authority,
		Amount: 9000,
		State:  token.AccountInitialised,
	}
	sourceData := make([]byte, token.AccountSize)
	assert.Nil(t, source.Pack(sourceData), "pack source")

	return &fixture{
		source:      runtime.NewAccountInfo(sourceKey, false, true, 1, sourceData, token.ID),
		mint:        runtime.NewAccountInfo(mintKey, false, false, 1, mintData, token.ID),
		destination: runtime.NewAccountInfo(destinationKey, false, true, 1, make([]byte, token.AccountSize), token.ID),
		authority:   runtime.NewAccountInfo(authority, false, false, 0, nil, system.ID),
		program:     runtime.NewAccountInfo(token.ID, false, false, 0, nil, system.ID),
		bump:        bump,
	}
}

func (f *fixture) accounts() []*runtime.AccountInfo {
	return []*runtime.AccountInfo{f.source, f.mint, f.destination, f.authority, f.program}
}

func process(invoker runtime.Invoker, accounts []*runtime.AccountInfo, data []byte) error {
	ctx := &runtime.Context{
		ProgramID: relay.ID,
		Accounts:  accounts,
		Invoker:   invoker,
	}
	return relay.New().Process(ctx, data)
}

func TestTransfer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newFixture(t)
	instruction, err := relay.Transfer(sourceKey, mintKey, destinationKey, 7000)
	assert.Nil(t, err, "build")
	assert.Equal(t, 5, len(instruction.Accounts), "account count")
	assert.Equal(t, f.authority.Key, instruction.Accounts[3].Key, "authority position")

	expected := token.TransferChecked(sourceKey, mintKey, destinationKey, f.authority.Key, 7000, 6)
	seeds := [][][]byte{{[]byte(relay.AuthoritySeed), {f.bump}}}

	m := mocks.NewMockInvoker(ctl)
	m.EXPECT().InvokeSigned(expected, seeds).Return(nil).Times(1)

	err = process(m, f.accounts(), instruction.Data)
	assert.Nil(t, err, "relay")
}

func TestTransferWholeBalance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := newFixture(t)
	instruction, err := relay.Transfer(sourceKey, mintKey, destinationKey, 0)
	assert.Nil(t, err, "build")

	expected := token.TransferChecked(sourceKey, mintKey, destinationKey, f.authority.Key, 9000, 6)

	m := mocks.NewMockInvoker(ctl)
	m.EXPECT().InvokeSigned(expected, gomock.Any()).Return(nil).Times(1)

	err = process(m, f.accounts(), instruction.Data)
	assert.Nil(t, err, "relay")
}

func TestTransferFailures(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// nothing must reach the token component
	m := mocks.NewMockInvoker(ctl)
	m.EXPECT().InvokeSigned(gomock.Any(), gomock.Any()).Times(0)

	instruction, err := relay.Transfer(sourceKey, mintKey, destinationKey, 7000)
	assert.Nil(t, err, "build")
	whole, err := relay.Transfer(sourceKey, mintKey, destinationKey, 0)
	assert.Nil(t, err, "build")

	f := newFixture(t)
	f.authority = runtime.NewAccountInfo(address.FromName("impostor"), true, false, 0, nil, system.ID)
	err = process(m, f.accounts(), instruction.Data)
	assert.Equal(t, fault.ErrInvalidSeeds, err, "wrong authority accepted")

	f = newFixture(t)
	f.program = runtime.NewAccountInfo(address.FromName("fake-token"), false, false, 0, nil, system.ID)
	err = process(m, f.accounts(), instruction.Data)
	assert.Equal(t, fault.ErrIncorrectProgramID, err, "wrong token program accepted")

	f = newFixture(t)
	f.mint.Data = f.mint.Data[:10]
	err = process(m, f.accounts(), instruction.Data)
	assert.Equal(t, fault.ErrExternalStateUnreadable, err, "truncated mint accepted")

	f = newFixture(t)
	f.mint.Owner = system.ID
	err = process(m, f.accounts(), instruction.Data)
	assert.Equal(t, fault.ErrExternalStateUnreadable, err, "foreign mint accepted")

	f = newFixture(t)
	f.source.Data[108] = 7
	err = process(m, f.accounts(), whole.Data)
	assert.Equal(t, fault.ErrExternalStateUnreadable, err, "corrupt source accepted")

	f = newFixture(t)
	err = process(m, f.accounts()[:4], instruction.Data)
	assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "missing token program accepted")

	for i, data := range [][]byte{{}, {1}, {0, 1}, append(instruction.Data, 0)} {
		err = process(m, f.accounts(), data)
		assert.Equal(t, fault.ErrMalformedRequest, err, "%d: malformed request accepted", i)
	}
}

func TestTransferPassesError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockInvoker(ctl)
	m.EXPECT().InvokeSigned(gomock.Any(), gomock.Any()).Return(fault.ErrInsufficientFunds).Times(1)

	f := newFixture(t)
	instruction, err := relay.Transfer(sourceKey, mintKey, destinationKey, 7000)
	assert.Nil(t, err, "build")
	err = process(m, f.accounts(), instruction.Data)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "sub-invocation error lost")
}

func TestUnpack(t *testing.T) {
	request := relay.TransferInstruction{Amount: 7000}
	decoded, err := relay.Unpack(request.Pack())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, request, decoded, "round trip")
	assert.Equal(t, []byte{0, 0x58, 0x1b, 0, 0, 0, 0, 0, 0}, request.Pack(), "wrong encoding")
}
