// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rent - the storage-reservation fee schedule
//
// an account holding at least MinimumBalance(len(data)) lamports is
// exempt from rent collection and its storage is reserved for as long
// as the account exists
package rent

// AccountStorageOverhead - bytes charged for every account on top of
// its data, covering the stored owner, balance and flags
const AccountStorageOverhead = 128

// defaults for the fee schedule
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2.0
)

// Rent - fee schedule parameters
type Rent struct {
	LamportsPerByteYear uint64  `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  float64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
}

// Default - the standard fee schedule
func Default() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
	}
}

// MinimumBalance - lamports required to reserve storage for size bytes
func (r Rent) MinimumBalance(size uint64) uint64 {
	bytes := AccountStorageOverhead + size
	return uint64(float64(bytes*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// IsExempt - true if the balance covers storage of size bytes
func (r Rent) IsExempt(balance uint64, size uint64) bool {
	return balance >= r.MinimumBalance(size)
}
