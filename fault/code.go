// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// Code - numeric error kind reported to the caller of a request
//
// the values are part of the external interface: never renumber,
// only append before codeLimit
type Code uint32

// enumerate the error kinds
const (
	CodeNone Code = iota
	CodeUnknown
	CodeMalformedRequest
	CodeDeserialisation
	CodeCapacityExceeded
	CodeUnauthorised
	CodeInvalidAddress
	CodeIllegalOwner
	CodeAlreadyInitialised
	CodeUninitialisedRecord
	CodeRatingOutOfRange
	CodeCounterOverflow
	CodeExternalStateUnreadable
	CodeInvalidSeeds
	CodeIncorrectProgramID
	CodeNotEnoughAccountKeys
	CodeAccountAlreadyInUse
	CodeInsufficientFunds
	CodeTooManySeeds
	CodeMaxSeedLengthExceeded
	CodeNoViableBump
	CodeMintMismatch
	CodeMintDecimalsMismatch
	CodeOwnerMismatch
	CodeAccountFrozen
	CodeInvalidSignature
	CodeMalformedTransaction
	CodeUnknownProgram
	CodeReadonlyModified
	CodeExternalDataModified
	CodeUnbalancedInstruction
	CodePrivilegeEscalation
	CodeCallDepthExceeded
	CodeNotRentExempt
	CodeTokenOverflow
	CodeExternalAccountDebited
	CodeNotInitialised
	CodeInvalidAddressLength
	CodeCannotDecodeAddress
	CodeCannotDecodePrivateKey
	CodeInvalidKeyLength
	CodeConfigurationNotTable
	CodeInvalidStructPointer
	CodeOwnerChangeRejected

	// this item must be last
	codeLimit
)

var codes = map[error]Code{
	ErrMalformedRequest:        CodeMalformedRequest,
	ErrDeserialisation:         CodeDeserialisation,
	ErrCapacityExceeded:        CodeCapacityExceeded,
	ErrUnauthorised:            CodeUnauthorised,
	ErrInvalidAddress:          CodeInvalidAddress,
	ErrIllegalOwner:            CodeIllegalOwner,
	ErrAlreadyInitialised:      CodeAlreadyInitialised,
	ErrUninitialisedRecord:     CodeUninitialisedRecord,
	ErrRatingOutOfRange:        CodeRatingOutOfRange,
	ErrCounterOverflow:         CodeCounterOverflow,
	ErrExternalStateUnreadable: CodeExternalStateUnreadable,
	ErrInvalidSeeds:            CodeInvalidSeeds,
	ErrIncorrectProgramID:      CodeIncorrectProgramID,
	ErrNotEnoughAccountKeys:    CodeNotEnoughAccountKeys,
	ErrAccountAlreadyInUse:     CodeAccountAlreadyInUse,
	ErrInsufficientFunds:       CodeInsufficientFunds,
	ErrTooManySeeds:            CodeTooManySeeds,
	ErrMaxSeedLengthExceeded:   CodeMaxSeedLengthExceeded,
	ErrNoViableBump:            CodeNoViableBump,
	ErrMintMismatch:            CodeMintMismatch,
	ErrMintDecimalsMismatch:    CodeMintDecimalsMismatch,
	ErrOwnerMismatch:           CodeOwnerMismatch,
	ErrAccountFrozen:           CodeAccountFrozen,
	ErrInvalidSignature:        CodeInvalidSignature,
	ErrMalformedTransaction:    CodeMalformedTransaction,
	ErrUnknownProgram:          CodeUnknownProgram,
	ErrReadonlyModified:        CodeReadonlyModified,
	ErrExternalDataModified:    CodeExternalDataModified,
	ErrUnbalancedInstruction:   CodeUnbalancedInstruction,
	ErrPrivilegeEscalation:     CodePrivilegeEscalation,
	ErrCallDepthExceeded:       CodeCallDepthExceeded,
	ErrNotRentExempt:           CodeNotRentExempt,
	ErrTokenOverflow:           CodeTokenOverflow,
	ErrExternalAccountDebited:  CodeExternalAccountDebited,
	ErrNotInitialised:          CodeNotInitialised,
	ErrInvalidAddressLength:    CodeInvalidAddressLength,
	ErrCannotDecodeAddress:     CodeCannotDecodeAddress,
	ErrCannotDecodePrivateKey:  CodeCannotDecodePrivateKey,
	ErrInvalidKeyLength:        CodeInvalidKeyLength,
	ErrConfigurationNotTable:   CodeConfigurationNotTable,
	ErrInvalidStructPointer:    CodeInvalidStructPointer,
	ErrOwnerChangeRejected:     CodeOwnerChangeRejected,
}

// CodeOf - the error kind of an error
//
// nil maps to CodeNone, anything outside the taxonomy to CodeUnknown
func CodeOf(err error) Code {
	if nil == err {
		return CodeNone
	}
	if c, ok := codes[err]; ok {
		return c
	}
	return CodeUnknown
}

// IsValid - true for codes inside the enumeration
func (c Code) IsValid() bool {
	return c < codeLimit
}
