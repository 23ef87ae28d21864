// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package review_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/rent"
	"github.com/bitmark-inc/recordd/review"
	"github.com/bitmark-inc/recordd/runtime"
	"github.com/bitmark-inc/recordd/runtime/mocks"
	"github.com/bitmark-inc/recordd/system"
)

var initializerKey = address.FromName("reviewer")

type fixture struct {
	ctl         *gomock.Controller
	invoker     *mocks.MockInvoker
	initializer *runtime.AccountInfo
	record      *runtime.AccountInfo
	system      *runtime.AccountInfo
}

func newFixture(t *testing.T, title string) *fixture {
	ctl := gomock.NewController(t)
	key, _, err := review.RecordAddress(initializerKey, title)
	if nil != err {
		t.Fatalf("record address: %s", err)
	}
	return &fixture{
		ctl:         ctl,
		invoker:     mocks.NewMockInvoker(ctl),
		initializer: runtime.NewAccountInfo(initializerKey, true, true, 1e10, nil, system.ID),
		record:      runtime.NewAccountInfo(key, false, true, 0, nil, system.ID),
		system:      runtime.NewAccountInfo(system.ID, false, false, 0, nil, system.ID),
	}
}

// the allocation the system component would make
func (f *fixture) expectCreate(t *testing.T, title string) {
	_, bump, err := review.RecordAddress(initializerKey, title)
	if nil != err {
		t.Fatalf("record address: %s", err)
	}
	lamports := rent.Default().MinimumBalance(review.Capacity)
	expected := system.CreateAccount(initializerKey, f.record.Key, lamports, review.Capacity, review.ID)
	seeds := [][][]byte{{initializerKey.Bytes(), []byte(title), {bump}}}

	f.invoker.EXPECT().InvokeSigned(expected, seeds).DoAndReturn(
		func(instruction runtime.Instruction, signerSeeds [][][]byte) error {
			f.initializer.Lamports -= lamports
			f.record.Lamports += lamports
			f.record.Data = make([]byte, review.Capacity)
			f.record.Owner = review.ID
			return nil
		}).Times(1)
}

func (f *fixture) process(data []byte, accounts ...*runtime.AccountInfo) error {
	ctx := &runtime.Context{
		ProgramID: review.ID,
		Accounts:  accounts,
		Invoker:   f.invoker,
		Rent:      rent.Default(),
	}
	return review.New().Process(ctx, data)
}

func (f *fixture) add(t *testing.T, p review.Payload) error {
	instruction, err := review.AddReview(initializerKey, p)
	if nil != err {
		t.Fatalf("build add: %s", err)
	}
	return f.process(instruction.Data, f.initializer, f.record, f.system)
}

func (f *fixture) update(t *testing.T, p review.Payload) error {
	instruction, err := review.UpdateReview(initializerKey, p)
	if nil != err {
		t.Fatalf("build update: %s", err)
	}
	return f.process(instruction.Data, f.initializer, f.record)
}

func stored(t *testing.T, info *runtime.AccountInfo) *review.Review {
	r, err := review.UnpackReview(info.Data)
	if nil != err {
		t.Fatalf("unpack review: %s", err)
	}
	return r
}

func TestAddReview(t *testing.T) {
	f := newFixture(t, "Pizza")
	defer f.ctl.Finish()

	f.expectCreate(t, "Pizza")
	err := f.add(t, review.Payload{Title: "Pizza", Description: "Great", Rating: 8})
	assert.Nil(t, err, "add review")

	r := stored(t, f.record)
	assert.True(t, r.IsInitialised, "not initialised")
	assert.Equal(t, "Pizza", r.Title, "wrong title")
	assert.Equal(t, "Great", r.Description, "wrong description")
	assert.Equal(t, uint8(8), r.Rating, "wrong rating")
	assert.Equal(t, review.Capacity, len(f.record.Data), "wrong capacity")
	assert.Equal(t, rent.Default().MinimumBalance(review.Capacity), f.record.Lamports, "storage fee")

	// second create leaves everything in place
	before := append([]byte{}, f.record.Data...)
	err = f.add(t, review.Payload{Title: "Pizza", Description: "Awful", Rating: 1})
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "created twice")
	assert.Equal(t, before, f.record.Data, "second create changed the record")
}

func TestAddReviewValidation(t *testing.T) {
	f := newFixture(t, "Pizza")
	defer f.ctl.Finish()

	// no allocation may happen for a rejected request
	f.invoker.EXPECT().InvokeSigned(gomock.Any(), gomock.Any()).Times(0)

	for _, rating := range []uint8{0, 11, 255} {
		err := f.add(t, review.Payload{Title: "Pizza", Description: "Great", Rating: rating})
		assert.Equal(t, fault.ErrRatingOutOfRange, err, "rating: %d accepted", rating)
	}

	f.initializer.IsSigner = false
	err := f.add(t, review.Payload{Title: "Pizza", Description: "Great", Rating: 8})
	assert.Equal(t, fault.ErrUnauthorised, err, "unsigned request accepted")
	f.initializer.IsSigner = true

	// record for another title
	instruction, err := review.AddReview(initializerKey, review.Payload{Title: "Pasta", Rating: 8})
	assert.Nil(t, err, "build")
	err = f.process(instruction.Data, f.initializer, f.record, f.system)
	assert.Equal(t, fault.ErrInvalidAddress, err, "wrong record address accepted")

	huge := strings.Repeat("x", review.Capacity)
	err = f.add(t, review.Payload{Title: "Pizza", Description: huge, Rating: 8})
	assert.Equal(t, fault.ErrCapacityExceeded, err, "oversize record accepted")

	fake := runtime.NewAccountInfo(address.FromName("not-system"), false, false, 0, nil, system.ID)
	instruction, err = review.AddReview(initializerKey, review.Payload{Title: "Pizza", Rating: 8})
	assert.Nil(t, err, "build")
	err = f.process(instruction.Data, f.initializer, f.record, fake)
	assert.Equal(t, fault.ErrIncorrectProgramID, err, "fake system program accepted")

	err = f.process(instruction.Data, f.initializer, f.record)
	assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "missing system program accepted")

	assert.Nil(t, f.record.Data, "record allocated")
}

func TestRatingBoundaries(t *testing.T) {
	for _, rating := range []uint8{1, 10} {
		f := newFixture(t, "Boundary")
		f.expectCreate(t, "Boundary")
		err := f.add(t, review.Payload{Title: "Boundary", Rating: rating})
		assert.Nil(t, err, "rating: %d rejected", rating)

		before := append([]byte{}, f.record.Data...)
		for _, bad := range []uint8{0, 11} {
			err = f.update(t, review.Payload{Title: "Boundary", Description: "changed", Rating: bad})
			assert.Equal(t, fault.ErrRatingOutOfRange, err, "update rating: %d accepted", bad)
			assert.Equal(t, before, f.record.Data, "failed update changed the record")
		}

		err = f.update(t, review.Payload{Title: "Boundary", Rating: 11 - rating})
		assert.Nil(t, err, "update to: %d rejected", 11-rating)
		assert.Equal(t, 11-rating, stored(t, f.record).Rating, "rating not updated")
		f.ctl.Finish()
	}
}

func TestUpdateReview(t *testing.T) {
	f := newFixture(t, "Pizza")
	defer f.ctl.Finish()

	f.expectCreate(t, "Pizza")
	err := f.add(t, review.Payload{Title: "Pizza", Description: "Great", Rating: 8, Location: "Rome"})
	assert.Nil(t, err, "add review")

	updates := []review.Payload{
		{Title: "Pizza", Description: "Still great", Rating: 9, Location: "Rome"},
		{Title: "Pizza", Description: "", Rating: 3, Location: ""},
		{Title: "Pizza", Description: "Back to good", Rating: 7, Location: "Naples"},
	}
	for i, p := range updates {
		err := f.update(t, p)
		assert.Nil(t, err, "%d: update", i)

		r := stored(t, f.record)
		assert.True(t, r.IsInitialised, "%d: flag reset", i)
		assert.Equal(t, "Pizza", r.Title, "%d: title changed", i)
		assert.Equal(t, p.Description, r.Description, "%d: description", i)
		assert.Equal(t, p.Rating, r.Rating, "%d: rating", i)
		assert.Equal(t, p.Location, r.Location, "%d: location", i)
	}

	before := append([]byte{}, f.record.Data...)
	err = f.update(t, review.Payload{Title: "Pizza", Description: strings.Repeat("y", review.Capacity), Rating: 5})
	assert.Equal(t, fault.ErrCapacityExceeded, err, "oversize update accepted")
	assert.Equal(t, before, f.record.Data, "oversize update changed the record")
}

func TestUpdateReviewFailures(t *testing.T) {
	f := newFixture(t, "Pizza")
	defer f.ctl.Finish()

	p := review.Payload{Title: "Pizza", Description: "Great", Rating: 8}

	// never created
	err := f.update(t, p)
	assert.Equal(t, fault.ErrIllegalOwner, err, "missing record accepted")

	// allocated but not yet written
	f.record.Owner = review.ID
	f.record.Data = make([]byte, review.Capacity)
	err = f.update(t, p)
	assert.Equal(t, fault.ErrUninitialisedRecord, err, "uninitialised record accepted")

	// garbage in the padding
	f.record.Data[review.Capacity-1] = 1
	err = f.update(t, p)
	assert.Equal(t, fault.ErrDeserialisation, err, "corrupt record accepted")
	f.record.Data[review.Capacity-1] = 0

	f.initializer.IsSigner = false
	err = f.update(t, p)
	assert.Equal(t, fault.ErrUnauthorised, err, "unsigned update accepted")
}

func TestStateLayout(t *testing.T) {
	r := &review.Review{
		IsInitialised: true,
		Title:         "Pizza",
		Description:   "Great",
		Rating:        8,
		Location:      "Rome",
	}
	data := make([]byte, review.Capacity)
	assert.Nil(t, r.Pack(data), "pack")

	expected := []byte{1, 5, 0, 0, 0, 'P', 'i', 'z', 'z', 'a', 5, 0, 0, 0, 'G', 'r', 'e', 'a', 't', 8, 4, 0, 0, 0, 'R', 'o', 'm', 'e'}
	assert.Equal(t, expected, data[:len(expected)], "wrong layout")
	assert.Equal(t, len(expected), r.PackedSize(), "wrong size")
	assert.True(t, bytes.Equal(make([]byte, review.Capacity-len(expected)), data[len(expected):]), "padding not zero")

	decoded, err := review.UnpackReview(data)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, r, decoded, "round trip")

	// an allocated buffer decodes as an empty, uninitialised record
	empty, err := review.UnpackReview(make([]byte, review.Capacity))
	assert.Nil(t, err, "unpack empty")
	assert.False(t, empty.IsInitialised, "empty record initialised")

	invalid := [][]byte{
		{2},
		{1, 5, 0, 0, 0, 'P'},
		{1, 2, 0, 0, 0, 0xff, 0xfe, 0, 0, 0, 0, 1, 0, 0, 0, 0},
		append(append([]byte{}, expected...), 0, 0, 7),
	}
	for i, data := range invalid {
		_, err := review.UnpackReview(data)
		assert.Equal(t, fault.ErrDeserialisation, err, "%d: accepted", i)
	}
}

func TestRoundTrip(t *testing.T) {
	records := []review.Review{
		{},
		{IsInitialised: true, Title: "Pizza", Rating: 8},
		{IsInitialised: true, Title: "Café", Description: "très bien", Rating: 10, Location: "Paris"},
		{IsInitialised: true, Title: strings.Repeat("t", 32), Description: strings.Repeat("d", 900), Rating: 1},
	}
	for i := range records {
		r := &records[i]
		data := make([]byte, review.Capacity)
		assert.Nil(t, r.Pack(data), "%d: pack", i)
		decoded, err := review.UnpackReview(data)
		assert.Nil(t, err, "%d: unpack", i)
		assert.Equal(t, r, decoded, "%d: round trip", i)
	}
}

func TestUnpackInstruction(t *testing.T) {
	i := review.Instruction{
		Tag: review.TagUpdateReview,
		Payload: review.Payload{
			Title:       "Pizza",
			Description: "Great",
			Rating:      8,
			Location:    "Rome",
		},
	}
	decoded, err := review.Unpack(i.Pack())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, i, decoded, "round trip")

	packed := i.Pack()
	invalid := [][]byte{
		{},
		{2},
		packed[:len(packed)-1],
		append(append([]byte{}, packed...), 0),
		// location missing
		packed[:len(packed)-8],
	}
	for n, data := range invalid {
		_, err := review.Unpack(data)
		assert.Equal(t, fault.ErrMalformedRequest, err, "%d: accepted", n)
	}
}
