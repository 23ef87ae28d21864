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
)

type program struct{}

// New - the review program
func New() runtime.Program {
	return program{}
}

// Process - execute one request
func (program) Process(ctx *runtime.Context, data []byte) error {
	instruction, err := Unpack(data)
	if nil != err {
		return err
	}

	switch instruction.Tag {
	case TagAddReview:
		return addReview(ctx, instruction.Payload)
	case TagUpdateReview:
		return updateReview(ctx, instruction.Payload)
	default:
		return fault.ErrMalformedRequest
	}
}

// accounts: [initializer (signer), record (writable), system program]
func addReview(ctx *runtime.Context, p Payload) error {
	it := ctx.Iterator()
	initializer, err := it.Next()
	if nil != err {
		return err
	}
	record, err := it.Next()
	if nil != err {
		return err
	}
	systemProgram, err := it.Next()
	if nil != err {
		return err
	}

	if err := runtime.RequireSigner(initializer); nil != err {
		return err
	}

	seeds := Seeds(initializer.Key, p.Title)
	expected, bump, err := address.FindProgramAddress(seeds, ctx.ProgramID)
	if nil != err {
		return err
	}
	if err := runtime.RequireAddress(record, expected); nil != err {
		return err
	}

	if !ValidRating(p.Rating) {
		return fault.ErrRatingOutOfRange
	}

	r := &Review{
		IsInitialised: true,
		Title:         p.Title,
		Description:   p.Description,
		Rating:        p.Rating,
		Location:      p.Location,
	}
	if r.PackedSize() > Capacity {
		return fault.ErrCapacityExceeded
	}

	if err := runtime.RequireWritable(record); nil != err {
		return err
	}

	// a record already owned by this program has been created before
	if record.Owner == ctx.ProgramID {
		existing, err := UnpackReview(record.Data)
		if nil != err {
			return err
		}
		if err := runtime.RequireUninitialised(existing.IsInitialised); nil != err {
			ctx.Debugf("add review: %s title: %q already exists", record.Key, p.Title)
			return err
		}
	} else {
		if system.ID != systemProgram.Key {
			return fault.ErrIncorrectProgramID
		}
		lamports := ctx.Rent.MinimumBalance(Capacity)
		create := system.CreateAccount(initializer.Key, record.Key, lamports, Capacity, ctx.ProgramID)
		signerSeeds := [][][]byte{
			append(seeds, []byte{bump}),
		}
		if err := ctx.InvokeSigned(create, signerSeeds); nil != err {
			return err
		}
		ctx.Debugf("add review: %s created with: %d lamports", record.Key, lamports)
	}

	if len(record.Data) < Capacity {
		return fault.ErrCapacityExceeded
	}

	ctx.Debugf("add review: %s title: %q rating: %d", record.Key, r.Title, r.Rating)
	return r.Pack(record.Data)
}

// accounts: [initializer (signer), record (writable)]
func updateReview(ctx *runtime.Context, p Payload) error {
	it := ctx.Iterator()
	initializer, err := it.Next()
	if nil != err {
		return err
	}
	record, err := it.Next()
	if nil != err {
		return err
	}

	if err := runtime.RequireSigner(initializer); nil != err {
		return err
	}

	expected, _, err := address.FindProgramAddress(Seeds(initializer.Key, p.Title), ctx.ProgramID)
	if nil != err {
		return err
	}
	if err := runtime.RequireAddress(record, expected); nil != err {
		return err
	}
	if err := runtime.RequireOwner(record, ctx.ProgramID); nil != err {
		return err
	}

	r, err := UnpackReview(record.Data)
	if nil != err {
		return err
	}
	if err := runtime.RequireInitialised(r.IsInitialised); nil != err {
		return err
	}

	if !ValidRating(p.Rating) {
		return fault.ErrRatingOutOfRange
	}
	if err := runtime.RequireWritable(record); nil != err {
		return err
	}

	// title and the initialised flag are never changed
	r.Description = p.Description
	r.Rating = p.Rating
	r.Location = p.Location

	ctx.Debugf("update review: %s title: %q rating: %d", record.Key, r.Title, r.Rating)
	return r.Pack(record.Data)
}
