// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse     = ExistsError("account already in use")
	ErrAccountFrozen           = InvalidError("token account is frozen")
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrCallDepthExceeded       = ProcessError("cross component call depth exceeded")
	ErrCannotDecodeAddress     = InvalidError("cannot decode address")
	ErrCannotDecodePrivateKey  = InvalidError("cannot decode private key")
	ErrCapacityExceeded        = LengthError("record exceeds allocated capacity")
	ErrConfigurationNotTable   = InvalidError("configuration did not return a table")
	ErrCounterOverflow         = InvalidError("counter overflow")
	ErrDeserialisation         = RecordError("record deserialisation failed")
	ErrExternalAccountDebited  = PermissionError("lamports debited from an account not owned by the program")
	ErrExternalDataModified    = PermissionError("data modified on an account not owned by the program")
	ErrExternalStateUnreadable = RecordError("external state unreadable")
	ErrIllegalOwner            = PermissionError("account is not owned by the program")
	ErrIncorrectProgramID      = InvalidError("incorrect program id")
	ErrInsufficientFunds       = InvalidError("insufficient funds")
	ErrInvalidAddress          = InvalidError("address does not match derived address")
	ErrInvalidAddressLength    = LengthError("address length is invalid")
	ErrInvalidKeyLength        = LengthError("key length is invalid")
	ErrInvalidSeeds            = InvalidError("invalid seeds for derived address")
	ErrInvalidSignature        = InvalidError("invalid signature")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrMalformedRequest        = InvalidError("malformed request")
	ErrMalformedTransaction    = InvalidError("malformed transaction")
	ErrMaxSeedLengthExceeded   = LengthError("seed length exceeds maximum")
	ErrMintDecimalsMismatch    = InvalidError("mint decimals mismatch")
	ErrMintMismatch            = InvalidError("token account mint mismatch")
	ErrNoViableBump            = NotFoundError("no viable bump seed")
	ErrNotEnoughAccountKeys    = InvalidError("not enough account keys")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrNotRentExempt           = InvalidError("balance below the rent exemption minimum")
	ErrOwnerChangeRejected     = PermissionError("owner changed on an account holding data")
	ErrOwnerMismatch           = PermissionError("token account owner mismatch")
	ErrPrivilegeEscalation     = PermissionError("cross component call privilege escalation")
	ErrRatingOutOfRange        = InvalidError("rating must be between 1 and 10")
	ErrReadonlyModified        = PermissionError("read-only account modified")
	ErrTokenOverflow           = InvalidError("token amount overflow")
	ErrTooManySeeds            = LengthError("too many seeds")
	ErrUnauthorised            = PermissionError("missing required signature")
	ErrUnbalancedInstruction   = ProcessError("sum of account balances changed")
	ErrUninitialisedRecord     = NotFoundError("record not initialised")
	ErrUnknownProgram          = NotFoundError("unknown program")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
