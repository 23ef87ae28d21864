// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/rent"
)

func TestMinimumBalance(t *testing.T) {
	r := rent.Default()

	tests := []struct {
		size     uint64
		expected uint64
	}{
		{0, 890880},
		{4, 918720},
		{82, 1461600},
		{165, 2039280},
		{1000, 7850880},
	}
	for i, item := range tests {
		actual := r.MinimumBalance(item.size)
		if item.expected != actual {
			t.Errorf("%d: size: %d  balance: %d  expected: %d", i, item.size, actual, item.expected)
		}
	}
}

func TestFeeGrowsWithSize(t *testing.T) {
	r := rent.Default()
	previous := r.MinimumBalance(0)
	for size := uint64(1); size < 2000; size += 97 {
		fee := r.MinimumBalance(size)
		assert.True(t, fee > previous, "fee did not grow at size: %d", size)
		previous = fee
	}
}

func TestIsExempt(t *testing.T) {
	r := rent.Rent{
		LamportsPerByteYear: 10,
		ExemptionThreshold:  1.0,
	}
	assert.Equal(t, uint64(1380), r.MinimumBalance(10), "wrong minimum")
	assert.True(t, r.IsExempt(1380, 10), "exact balance not exempt")
	assert.False(t, r.IsExempt(1379, 10), "short balance exempt")
}
