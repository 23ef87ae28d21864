// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package system - the built-in component that allocates storage and
// moves lamports between system owned accounts
//
// every account that has never been written is owned by this
// component; CreateAccount hands it to a new owner together with a
// zeroed data buffer of the requested size
package system
