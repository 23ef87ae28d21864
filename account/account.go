// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
)

// Account - an ed25519 public key that can authorise requests
//
// the account's location in the ledger is the public key itself
type Account struct {
	publicKey ed25519.PublicKey
}

// FromBytes - create an account from a public key
func FromBytes(publicKey []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(key, publicKey)
	return &Account{
		publicKey: key,
	}, nil
}

// FromAddress - the account whose public key is the address
//
// a derived address is not on the curve so every signature check
// against the resulting account fails
func FromAddress(a address.Address) *Account {
	account, _ := FromBytes(a[:])
	return account
}

// FromBase58 - decode the text form of an account
func FromBase58(s string) (*Account, error) {
	a, err := address.FromBase58(s)
	if nil != err {
		return nil, err
	}
	return FromAddress(a), nil
}

// Address - location of this account
func (account *Account) Address() address.Address {
	var a address.Address
	copy(a[:], account.publicKey)
	return a
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *Account) PublicKeyBytes() []byte {
	return account.publicKey[:]
}

// CheckSignature - check the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}

	if !ed25519.Verify(account.publicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - base58 encoding of the public key
func (account *Account) String() string {
	return account.Address().String()
}

// MarshalText - convert an account to its base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert base58 JSON text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	account.publicKey = a.publicKey
	return nil
}
