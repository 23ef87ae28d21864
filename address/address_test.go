// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
)

var (
	programID   = address.FromName("test-program")
	initializer = address.FromName("test-initializer")
)

func TestDeterministic(t *testing.T) {
	seeds := [][]byte{initializer.Bytes(), []byte("Pizza")}

	a1, bump1, err := address.FindProgramAddress(seeds, programID)
	assert.Nil(t, err, "first derive")
	a2, bump2, err := address.FindProgramAddress(seeds, programID)
	assert.Nil(t, err, "second derive")

	assert.Equal(t, a1, a2, "address differs")
	assert.Equal(t, bump1, bump2, "bump differs")
	assert.False(t, address.IsOnCurve(a1), "derived address is on the curve")

	// the bump found is the proof of derivation
	a3, err := address.CreateProgramAddress([][]byte{initializer.Bytes(), []byte("Pizza"), {bump1}}, programID)
	assert.Nil(t, err, "create with bump")
	assert.Equal(t, a1, a3, "create does not reproduce find")
}

func TestSeedsAreNotModified(t *testing.T) {
	seeds := [][]byte{[]byte("authority")}
	_, _, err := address.FindProgramAddress(seeds, programID)
	assert.Nil(t, err, "derive")
	assert.Equal(t, 1, len(seeds), "seed list was extended")
	assert.Equal(t, []byte("authority"), seeds[0], "seed was changed")
}

func TestDistinctSeeds(t *testing.T) {
	titles := []string{"Pizza", "Pasta", "pizza", "Pizza ", ""}
	seen := make(map[address.Address]string)
	for _, title := range titles {
		a, _, err := address.FindProgramAddress([][]byte{initializer.Bytes(), []byte(title)}, programID)
		assert.Nil(t, err, "derive: %q", title)
		if other, ok := seen[a]; ok {
			t.Errorf("collision: %q and %q", title, other)
		}
		seen[a] = title
	}

	// same seeds under another program
	other := address.FromName("other-program")
	a1, _, _ := address.FindProgramAddress([][]byte{[]byte("authority")}, programID)
	a2, _, _ := address.FindProgramAddress([][]byte{[]byte("authority")}, other)
	assert.NotEqual(t, a1, a2, "program id not part of derivation")
}

func TestSeedLimits(t *testing.T) {
	long := bytes.Repeat([]byte{'x'}, address.MaxSeedLength+1)
	_, _, err := address.FindProgramAddress([][]byte{long}, programID)
	assert.Equal(t, fault.ErrMaxSeedLengthExceeded, err, "long seed accepted")

	exact := bytes.Repeat([]byte{'x'}, address.MaxSeedLength)
	_, _, err = address.FindProgramAddress([][]byte{exact}, programID)
	assert.Nil(t, err, "maximum length seed rejected")

	many := make([][]byte, address.MaxSeeds)
	for i := range many {
		many[i] = []byte{byte(i)}
	}
	_, _, err = address.FindProgramAddress(many, programID)
	assert.Equal(t, fault.ErrTooManySeeds, err, "no room for bump seed")

	_, err = address.CreateProgramAddress(append(many, []byte{0}), programID)
	assert.Equal(t, fault.ErrTooManySeeds, err, "too many seeds accepted")
}

func TestPublicKeyIsOnCurve(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, ed25519.SeedSize)
	publicKey := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	a, err := address.New(publicKey)
	assert.Nil(t, err, "address from public key")
	assert.True(t, address.IsOnCurve(a), "public key reported off curve")
}

func TestText(t *testing.T) {
	a := address.FromName("text")
	s := a.String()

	decoded, err := address.FromBase58(s)
	assert.Nil(t, err, "decode")
	assert.Equal(t, a, decoded, "base58 round trip")

	assert.Equal(t, "<address:"+s+">", fmt.Sprintf("%#v", a), "wrong GoString")

	buffer, err := json.Marshal(struct {
		A address.Address `json:"a"`
	}{a})
	assert.Nil(t, err, "json marshal")
	assert.Equal(t, `{"a":"`+s+`"}`, string(buffer), "wrong json")

	var result struct {
		A address.Address `json:"a"`
	}
	err = json.Unmarshal(buffer, &result)
	assert.Nil(t, err, "json unmarshal")
	assert.Equal(t, a, result.A, "json round trip")
}

func TestInvalidText(t *testing.T) {
	invalid := []string{
		"",
		"0OIl",                      // not base58 characters
		"3mJr7AoUXx2Wqd",            // too short
		address.Zero.String() + "1", // too long
	}
	for i, s := range invalid {
		_, err := address.FromBase58(s)
		if nil == err {
			t.Errorf("%d: %q was accepted", i, s)
		}
	}
}

func TestNew(t *testing.T) {
	_, err := address.New(make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidAddressLength, err, "short address accepted")

	a, err := address.New(make([]byte, 32))
	assert.Nil(t, err, "zero address")
	assert.True(t, a.IsZero(), "not zero")
}
