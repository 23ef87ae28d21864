// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - a 32 byte location of an account
//
// either an ed25519 public key (an account that can sign) or a
// derived address (off the curve so no private key can exist)
type Address [Length]byte

// Zero - the all zero address
var Zero Address

// prefix for FromName
const nameDomain = "recordd:component:"

// New - create an address from a byte slice
func New(b []byte) (Address, error) {
	var a Address
	if Length != len(b) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], b)
	return a, nil
}

// FromName - deterministic address for a built-in component
func FromName(name string) Address {
	return Address(sha3.Sum256([]byte(nameDomain + name)))
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	b, err := base58.Decode(s)
	if nil != err || 0 == len(b) {
		return Zero, fault.ErrCannotDecodeAddress
	}
	return New(b)
}

// Bytes - the address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return Zero == a
}

// String - base58 text for the fmt package (for %s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 JSON text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
