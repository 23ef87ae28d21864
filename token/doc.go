// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - the value-transfer component
//
// mints and token accounts use fixed size records owned by this
// component; the relay program moves balances by sub-invoking
// TransferChecked with its derived authority as signer
package token
