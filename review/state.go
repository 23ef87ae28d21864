// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package review

import (
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/util"
)

// Capacity - bytes allocated for every review record
const Capacity = 1000

// rating domain
const (
	MinimumRating = 1
	MaximumRating = 10
)

// Review - the stored record
//
// layout: initialised flag, title, description, rating, location then
// zero padding up to Capacity
type Review struct {
	IsInitialised bool   `json:"isInitialised"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Rating        uint8  `json:"rating"`
	Location      string `json:"location"`
}

// UnpackReview - decode a stored record
func UnpackReview(data []byte) (*Review, error) {
	u := util.NewUnpacker(data, fault.ErrDeserialisation)
	r := &Review{
		IsInitialised: u.ReadBool(),
		Title:         u.ReadString(),
		Description:   u.ReadString(),
		Rating:        u.ReadUint8(),
		Location:      u.ReadString(),
	}
	if err := u.FinishPadded(); nil != err {
		return nil, err
	}
	return r, nil
}

// PackedSize - bytes used by the encoded record, excluding padding
func (r *Review) PackedSize() int {
	return util.Uint8Size +
		util.PackedStringSize(r.Title) +
		util.PackedStringSize(r.Description) +
		util.Uint8Size +
		util.PackedStringSize(r.Location)
}

// Pack - encode into an existing record buffer
//
// the remainder of the buffer is zeroed; a record that does not fit
// leaves the buffer untouched
func (r *Review) Pack(data []byte) error {
	if r.PackedSize() > len(data) {
		return fault.ErrCapacityExceeded
	}
	buffer := make([]byte, 0, len(data))
	buffer = util.AppendBool(buffer, r.IsInitialised)
	buffer = util.AppendString(buffer, r.Title)
	buffer = util.AppendString(buffer, r.Description)
	buffer = util.AppendUint8(buffer, r.Rating)
	buffer = util.AppendString(buffer, r.Location)
	buffer = buffer[:len(data)]
	copy(data, buffer)
	return nil
}

// ValidRating - true inside the rating domain
func ValidRating(rating uint8) bool {
	return rating >= MinimumRating && rating <= MaximumRating
}
