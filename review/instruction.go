// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package review

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/system"
	"github.com/bitmark-inc/recordd/util"
)

// ID - the review program's address
var ID = address.FromName("review")

// Tag - request discriminant
type Tag uint8

// the request types
const (
	TagAddReview Tag = iota
	TagUpdateReview
)

// Payload - arguments shared by both requests
type Payload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Rating      uint8  `json:"rating"`
	Location    string `json:"location"`
}

// Instruction - a decoded request
type Instruction struct {
	Tag     Tag
	Payload Payload
}

// Pack - binary request
func (i Instruction) Pack() []byte {
	buffer := util.AppendUint8(nil, uint8(i.Tag))
	buffer = util.AppendString(buffer, i.Payload.Title)
	buffer = util.AppendString(buffer, i.Payload.Description)
	buffer = util.AppendUint8(buffer, i.Payload.Rating)
	return util.AppendString(buffer, i.Payload.Location)
}

// Unpack - decode a binary request
func Unpack(data []byte) (Instruction, error) {
	if 0 == len(data) {
		return Instruction{}, fault.ErrMalformedRequest
	}
	tag := Tag(data[0])
	switch tag {
	case TagAddReview, TagUpdateReview:
	default:
		return Instruction{}, fault.ErrMalformedRequest
	}

	u := util.NewUnpacker(data[1:], fault.ErrMalformedRequest)
	i := Instruction{
		Tag: tag,
		Payload: Payload{
			Title:       u.ReadString(),
			Description: u.ReadString(),
			Rating:      u.ReadUint8(),
			Location:    u.ReadString(),
		},
	}
	if err := u.Finish(); nil != err {
		return Instruction{}, err
	}
	return i, nil
}

// Seeds - seed list of the record address for an initializer and title
func Seeds(initializer address.Address, title string) [][]byte {
	return [][]byte{initializer.Bytes(), []byte(title)}
}

// RecordAddress - where the review by initializer with title is stored
func RecordAddress(initializer address.Address, title string) (address.Address, uint8, error) {
	return address.FindProgramAddress(Seeds(initializer, title), ID)
}

// AddReview - build the instruction
func AddReview(initializer address.Address, p Payload) (runtime.Instruction, error) {
	record, _, err := RecordAddress(initializer, p.Title)
	if nil != err {
		return runtime.Instruction{}, err
	}
	i := Instruction{
		Tag:     TagAddReview,
		Payload: p,
	}
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.WritableMeta(initializer, true),
			runtime.WritableMeta(record, false),
			runtime.ReadonlyMeta(system.ID, false),
		},
		Data: i.Pack(),
	}, nil
}

// UpdateReview - build the instruction
func UpdateReview(initializer address.Address, p Payload) (runtime.Instruction, error) {
	record, _, err := RecordAddress(initializer, p.Title)
	if nil != err {
		return runtime.Instruction{}, err
	}
	i := Instruction{
		Tag:     TagUpdateReview,
		Payload: p,
	}
	return runtime.Instruction{
		ProgramID: ID,
		Accounts: []runtime.AccountMeta{
			runtime.ReadonlyMeta(initializer, true),
			runtime.WritableMeta(record, false),
		},
		Data: i.Pack(),
	}, nil
}
