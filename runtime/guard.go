// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/recordd/address"
	"github.com/bitmark-inc/recordd/fault"
)

// checks evaluated before any mutation; none of them has a side effect

// RequireSigner - the account must have authenticated this request
func RequireSigner(info *AccountInfo) error {
	if !info.IsSigner {
		return fault.ErrUnauthorised
	}
	return nil
}

// RequireAddress - the supplied account must be at the expected address
func RequireAddress(info *AccountInfo, expected address.Address) error {
	if info.Key != expected {
		return fault.ErrInvalidAddress
	}
	return nil
}

// RequireOwner - the account must be owned by the program
func RequireOwner(info *AccountInfo, programID address.Address) error {
	if info.Owner != programID {
		return fault.ErrIllegalOwner
	}
	return nil
}

// RequireWritable - the account must be writable in this invocation
func RequireWritable(info *AccountInfo) error {
	if !info.IsWritable {
		return fault.ErrReadonlyModified
	}
	return nil
}

// RequireUninitialised - for the create path
func RequireUninitialised(initialised bool) error {
	if initialised {
		return fault.ErrAlreadyInitialised
	}
	return nil
}

// RequireInitialised - for the update path
func RequireInitialised(initialised bool) error {
	if !initialised {
		return fault.ErrUninitialisedRecord
	}
	return nil
}
