// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/util"
)

// ID - the counter program's address
var ID = address.FromName("counter")

// Tag - request discriminant
type Tag uint8

// the request types
const (
	TagIncrement Tag = iota
	TagDecrement
	TagUpdate
	TagReset
)

// Instruction - a decoded request
//
// Argument carries the amount for increment and decrement and the new
// value for update; it is zero for reset
type Instruction struct {
	Tag      Tag
	Argument uint32
}

// Pack - binary request
func (i Instruction) Pack() []byte {
	buffer := util.AppendUint8(nil, uint8(i.Tag))
	if TagReset == i.Tag {
		return buffer
	}
	return util.AppendUint32(buffer, i.Argument)
}

// Unpack - decode a binary request
func Unpack(data []byte) (Instruction, error) {
	if 0 == len(data) {
		return Instruction{}, fault.ErrMalformedRequest
	}
	u := util.NewUnpacker(data[1:], fault.ErrMalformedRequest)

	i := Instruction{
		Tag: Tag(data[0]),
	}
	switch i.Tag {
	case TagIncrement, TagDecrement, TagUpdate:
		i.Argument = u.ReadUint32()
	case TagReset:
	default:
		return Instruction{}, fault.ErrMalformedRequest
	}

	if err := u.Finish(); nil != err {
		return Instruction{}, err
	}
	return i, nil
}

// Apply - the new value of a counter after this request
func (i Instruction) Apply(c Counter) (Counter, error) {
	switch i.Tag {
	case TagIncrement:
		if err := c.Increment(i.Argument); nil != err {
			return c, err
		}
	case TagDecrement:
		c.Decrement(i.Argument)
	case TagUpdate:
		c.Set(i.Argument)
	case TagReset:
		c.Reset()
	default:
		return c, fault.ErrMalformedRequest
	}
	return c, nil
}

func build(counter address.Address, i Instruction) runtime.Instruction {
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.WritableMeta(counter, false),
		},
		Data: i.Pack(),
	}
}

// Increment - build the instruction
func Increment(counter address.Address, amount uint32) runtime.Instruction {
	return build(counter, Instruction{Tag: TagIncrement, Argument: amount})
}

// Decrement - build the instruction
func Decrement(counter address.Address, amount uint32) runtime.Instruction {
	return build(counter, Instruction{Tag: TagDecrement, Argument: amount})
}

// Update - build the instruction
func Update(counter address.Address, value uint32) runtime.Instruction {
	return build(counter, Instruction{Tag: TagUpdate, Argument: value})
}

// Reset - build the instruction
func Reset(counter address.Address) runtime.Instruction {
	return build(counter, Instruction{Tag: TagReset})
}
