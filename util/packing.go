// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
	"unicode/utf8"
)

// sizes of the fixed width fields
const (
	Uint8Size  = 1
	Uint32Size = 4
	Uint64Size = 8

	// a string is prefixed by its byte count as Uint32
	StringPrefixSize = Uint32Size
)

// AppendUint8 - append a single byte
func AppendUint8(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

// AppendBool - append a boolean as a single 0x00 or 0x01 byte
func AppendBool(buffer []byte, value bool) []byte {
	if value {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// AppendUint32 - append a little endian 32 bit value
func AppendUint32(buffer []byte, value uint32) []byte {
	var b [Uint32Size]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendUint64 - append a little endian 64 bit value
func AppendUint64(buffer []byte, value uint64) []byte {
	var b [Uint64Size]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// AppendString - append a string prefixed by its byte count
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendUint32(buffer, uint32(len(s)))
	return append(buffer, s...)
}

// PackedStringSize - number of bytes AppendString will add
func PackedStringSize(s string) int {
	return StringPrefixSize + len(s)
}

// Unpacker - sequential reader over a packed buffer
//
// the first problem encountered is latched and every later read
// returns a zero value, so a decoder can read all of its fields and
// check Err (or Finish) once at the end
type Unpacker struct {
	buffer  []byte
	n       int
	failure error
	err     error
}

// NewUnpacker - create an unpacker that reports failure as the given error
func NewUnpacker(buffer []byte, failure error) *Unpacker {
	return &Unpacker{
		buffer:  buffer,
		failure: failure,
	}
}

// take the next count bytes or latch the failure
func (u *Unpacker) take(count int) []byte {
	if nil != u.err {
		return nil
	}
	if count < 0 || len(u.buffer)-u.n < count {
		u.err = u.failure
		return nil
	}
	b := u.buffer[u.n : u.n+count]
	u.n += count
	return b
}

// ReadUint8 - read a single byte
func (u *Unpacker) ReadUint8() uint8 {
	b := u.take(Uint8Size)
	if nil == b {
		return 0
	}
	return b[0]
}

// ReadBool - read a boolean, only 0x00 and 0x01 are accepted
func (u *Unpacker) ReadBool() bool {
	b := u.take(Uint8Size)
	if nil == b {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		u.err = u.failure
		return false
	}
}

// ReadUint32 - read a little endian 32 bit value
func (u *Unpacker) ReadUint32() uint32 {
	b := u.take(Uint32Size)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadUint64 - read a little endian 64 bit value
func (u *Unpacker) ReadUint64() uint64 {
	b := u.take(Uint64Size)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadString - read a count prefixed UTF-8 string
func (u *Unpacker) ReadString() string {
	length := u.ReadUint32()
	if nil != u.err {
		return ""
	}
	if uint64(length) > uint64(len(u.buffer)-u.n) {
		u.err = u.failure
		return ""
	}
	b := u.take(int(length))
	if nil == b {
		return ""
	}
	if !utf8.Valid(b) {
		u.err = u.failure
		return ""
	}
	return string(b)
}

// ReadBytes - read a fixed number of bytes
//
// the result is a copy and is not affected by later changes to the buffer
func (u *Unpacker) ReadBytes(count int) []byte {
	b := u.take(count)
	if nil == b {
		return nil
	}
	result := make([]byte, count)
	copy(result, b)
	return result
}

// Fail - latch the failure, for a value that is framed correctly
// but outside its domain
func (u *Unpacker) Fail() {
	if nil == u.err {
		u.err = u.failure
	}
}

// Offset - number of bytes consumed so far
func (u *Unpacker) Offset() int {
	return u.n
}

// Err - the latched failure if any
func (u *Unpacker) Err() error {
	return u.err
}

// Finish - the buffer must be exactly consumed
func (u *Unpacker) Finish() error {
	if nil != u.err {
		return u.err
	}
	if u.n != len(u.buffer) {
		return u.failure
	}
	return nil
}

// FinishPadded - any bytes left in the buffer must all be zero
//
// for records that live in a fixed capacity buffer larger than
// their current encoding
func (u *Unpacker) FinishPadded() error {
	if nil != u.err {
		return u.err
	}
	for _, b := range u.buffer[u.n:] {
		if 0 != b {
			return u.failure
		}
	}
	return nil
}
