// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/util"
)

// sizes of the stored records
const (
	MintSize    = 82
	AccountSize = 165
)

// Mint - an asset definition
type Mint struct {
	MintAuthority   *address.Address `json:"mintAuthority"`
	Supply          uint64           `json:"supply"`
	Decimals        uint8            `json:"decimals"`
	IsInitialised   bool             `json:"isInitialised"`
	FreezeAuthority *address.Address `json:"freezeAuthority"`
}

// AccountState - lifecycle of a token account
type AccountState uint8

// possible account states
const (
	AccountUninitialised AccountState = iota
	AccountInitialised
	AccountFrozen
)

// Account - a balance of one mint held by one owner
type Account struct {
	Mint            address.Address  `json:"mint"`
	Owner           address.Address  `json:"owner"`
	Amount          uint64           `json:"amount"`
	Delegate        *address.Address `json:"delegate"`
	State           AccountState     `json:"state"`
	IsNative        *uint64          `json:"isNative"`
	DelegatedAmount uint64           `json:"delegatedAmount"`
	CloseAuthority  *address.Address `json:"closeAuthority"`
}

// optional values in records carry a 4 byte tag and a fixed width body
const (
	optionNone = uint32(0)
	optionSome = uint32(1)
)

// UnpackMint - decode a mint record
func UnpackMint(data []byte) (*Mint, error) {
	if MintSize != len(data) {
		return nil, fault.ErrDeserialisation
	}
	u := util.NewUnpacker(data, fault.ErrDeserialisation)
	m := &Mint{
		MintAuthority:   readOptionalAddress(u),
		Supply:          u.ReadUint64(),
		Decimals:        u.ReadUint8(),
		IsInitialised:   u.ReadBool(),
		FreezeAuthority: readOptionalAddress(u),
	}
	if err := u.Finish(); nil != err {
		return nil, err
	}
	return m, nil
}

// Pack - encode into an existing record buffer
func (m *Mint) Pack(data []byte) error {
	if MintSize != len(data) {
		return fault.ErrCapacityExceeded
	}
	buffer := make([]byte, 0, MintSize)
	buffer = appendOptionalAddress(buffer, m.MintAuthority)
	buffer = util.AppendUint64(buffer, m.Supply)
	buffer = util.AppendUint8(buffer, m.Decimals)
	buffer = util.AppendBool(buffer, m.IsInitialised)
	buffer = appendOptionalAddress(buffer, m.FreezeAuthority)
	copy(data, buffer)
	return nil
}

// UnpackAccount - decode a token account record
func UnpackAccount(data []byte) (*Account, error) {
	if AccountSize != len(data) {
		return nil, fault.ErrDeserialisation
	}
	u := util.NewUnpacker(data, fault.ErrDeserialisation)
	a := &Account{}
	copy(a.Mint[:], u.ReadBytes(address.Length))
	copy(a.Owner[:], u.ReadBytes(address.Length))
	a.Amount = u.ReadUint64()
	a.Delegate = readOptionalAddress(u)
	a.State = AccountState(u.ReadUint8())
	a.IsNative = readOptionalUint64(u)
	a.DelegatedAmount = u.ReadUint64()
	a.CloseAuthority = readOptionalAddress(u)
	if err := u.Finish(); nil != err {
		return nil, err
	}
	if a.State > AccountFrozen {
		return nil, fault.ErrDeserialisation
	}
	return a, nil
}

// Pack - encode into an existing record buffer
func (a *Account) Pack(data []byte) error {
	if AccountSize != len(data) {
		return fault.ErrCapacityExceeded
	}
	buffer := make([]byte, 0, AccountSize)
	buffer = append(buffer, a.Mint[:]...)
	buffer = append(buffer, a.Owner[:]...)
	buffer = util.AppendUint64(buffer, a.Amount)
	buffer = appendOptionalAddress(buffer, a.Delegate)
	buffer = util.AppendUint8(buffer, uint8(a.State))
	if nil == a.IsNative {
		buffer = util.AppendUint32(buffer, optionNone)
		buffer = util.AppendUint64(buffer, 0)
	} else {
		buffer = util.AppendUint32(buffer, optionSome)
		buffer = util.AppendUint64(buffer, *a.IsNative)
	}
	buffer = util.AppendUint64(buffer, a.DelegatedAmount)
	buffer = appendOptionalAddress(buffer, a.CloseAuthority)
	copy(data, buffer)
	return nil
}

// IsInitialised - the account has been set up
func (a *Account) IsInitialised() bool {
	return AccountUninitialised != a.State
}

// IsFrozen - the account cannot move funds
func (a *Account) IsFrozen() bool {
	return AccountFrozen == a.State
}

// reads a tag then the body; the body is present even when absent
func readOptionalAddress(u *util.Unpacker) *address.Address {
	tag := u.ReadUint32()
	body := u.ReadBytes(address.Length)
	if nil != u.Err() {
		return nil
	}
	switch tag {
	case optionNone:
		return nil
	case optionSome:
		var a address.Address
		copy(a[:], body)
		return &a
	default:
		u.Fail()
		return nil
	}
}

func readOptionalUint64(u *util.Unpacker) *uint64 {
	tag := u.ReadUint32()
	value := u.ReadUint64()
	if nil != u.Err() {
		return nil
	}
	switch tag {
	case optionNone:
		return nil
	case optionSome:
		return &value
	default:
		u.Fail()
		return nil
	}
}

func appendOptionalAddress(buffer []byte, a *address.Address) []byte {
	if nil == a {
		buffer = util.AppendUint32(buffer, optionNone)
		return append(buffer, address.Zero[:]...)
	}
	buffer = util.AppendUint32(buffer, optionSome)
	return append(buffer, a[:]...)
}
