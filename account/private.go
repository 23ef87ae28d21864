// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/fault"
)

// text form of a private key:
//   base58( keyHeader ++ seed(32) ++ SHA3-256(keyHeader ++ seed)[:4] )
var keyHeader = []byte{0x5a, 0xfe, 0x10}

const checksumLength = 4

// PrivateKey - an ed25519 key able to sign for its account
type PrivateKey struct {
	privateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a new random key
func NewPrivateKey(random io.Reader) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		privateKey: priv,
	}, nil
}

// PrivateKeyFromSeed - create the key for a 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{
		privateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromBase58 - decode the text form produced by String
func PrivateKeyFromBase58(s string) (*PrivateKey, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrCannotDecodePrivateKey
	}
	if len(keyHeader)+ed25519.SeedSize+checksumLength != len(decoded) {
		return nil, fault.ErrInvalidKeyLength
	}
	if !bytes.Equal(keyHeader, decoded[:len(keyHeader)]) {
		return nil, fault.ErrCannotDecodePrivateKey
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrCannotDecodePrivateKey
	}
	return PrivateKeyFromSeed(decoded[len(keyHeader):checksumStart])
}

// Account - the corresponding account
func (privateKey *PrivateKey) Account() *Account {
	account, _ := FromBytes(privateKey.privateKey.Public().(ed25519.PublicKey))
	return account
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.privateKey, message)
}

// String - base58 encoding of the key seed with checksum
func (privateKey *PrivateKey) String() string {
	buffer := append([]byte{}, keyHeader...)
	buffer = append(buffer, privateKey.privateKey.Seed()...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert a private key to its base58 form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert base58 text to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	k, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.privateKey = k.privateKey
	return nil
}
