// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/fault"
)

// limits on seed material
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// appended after the program id so a derived address can never be
// the hash of some other structure
var derivedMarker = []byte("ProgramDerivedAddress")

// CreateProgramAddress - compute the address for a complete seed list
//
//   SHA3-256(seed[0] ++ … ++ seed[n-1] ++ programID ++ "ProgramDerivedAddress")
//
// an address that is a valid ed25519 point is rejected with
// ErrInvalidSeeds, as a private key could exist for it
func CreateProgramAddress(seeds [][]byte, programID Address) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Zero, fault.ErrTooManySeeds
	}
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Zero, fault.ErrMaxSeedLengthExceeded
		}
	}

	h := sha3.New256()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write(derivedMarker)

	var a Address
	copy(a[:], h.Sum(nil))

	if IsOnCurve(a) {
		return Zero, fault.ErrInvalidSeeds
	}
	return a, nil
}

// FindProgramAddress - search for the bump seed that gives an off
// curve address
//
// the bump is appended as a final one byte seed, starting at 255 and
// counting down; the first hit is returned so the result is the same
// for every caller holding the same seeds
func FindProgramAddress(seeds [][]byte, programID Address) (Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return Zero, 0, fault.ErrTooManySeeds
	}

	bumped := make([][]byte, len(seeds), len(seeds)+1)
	copy(bumped, seeds)
	bumped = append(bumped, []byte{0})

	for bump := 255; bump >= 0; bump -= 1 {
		bumped[len(seeds)][0] = uint8(bump)
		a, err := CreateProgramAddress(bumped, programID)
		if nil == err {
			return a, uint8(bump), nil
		}
		if fault.ErrInvalidSeeds != err {
			return Zero, 0, err
		}
	}
	return Zero, 0, fault.ErrNoViableBump
}

// IsOnCurve - true if the address decodes as an ed25519 point
func IsOnCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}
