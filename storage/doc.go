// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk account store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte account address
// 4. lamports     = little endian uint64 (8 bytes)
// 5. length       = little endian uint32 (4 bytes)
//
// Accounts:
//
//   A ++ address               - committed account
//                                data: owner address ++ lamports ++ executable(0x00|0x01) ++ length ++ data
//
// Testing:
//   Z ++ key                   - testing data
package storage
