// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/util"
)

// Size - bytes in a stored counter
const Size = util.Uint32Size

// Counter - the stored record, a single unsigned 32 bit value
type Counter uint32

// UnpackCounter - decode a stored counter, the buffer must be exactly Size bytes
func UnpackCounter(data []byte) (Counter, error) {
	u := util.NewUnpacker(data, fault.ErrDeserialisation)
	value := u.ReadUint32()
	if err := u.Finish(); nil != err {
		return 0, err
	}
	return Counter(value), nil
}

// Pack - encode into an existing record buffer
func (c Counter) Pack(data []byte) error {
	if Size != len(data) {
		return fault.ErrCapacityExceeded
	}
	copy(data, util.AppendUint32(nil, uint32(c)))
	return nil
}

// Increment - add amount, fails rather than wrap
func (c *Counter) Increment(amount uint32) error {
	sum := uint32(*c) + amount
	if sum < uint32(*c) {
		return fault.ErrCounterOverflow
	}
	*c = Counter(sum)
	return nil
}

// Decrement - subtract amount, stopping at zero
func (c *Counter) Decrement(amount uint32) {
	if amount > uint32(*c) {
		*c = 0
		return
	}
	*c -= Counter(amount)
}

// Set - replace the value
func (c *Counter) Set(value uint32) {
	*c = Counter(value)
}

// Reset - set to zero
func (c *Counter) Reset() {
	*c = 0
}

// Uint32 - returns current value
func (c Counter) Uint32() uint32 {
	return uint32(c)
}
