// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
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
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBoundExceeded          = LengthError("bounded vector length exceeds bound")
	ErrDatabaseIsNotSet       = ProcessError("database is not set")
	ErrDuplicatePoolName      = ExistsError("duplicate pool name")
	ErrDuplicatePoolPrefix    = ExistsError("duplicate pool prefix")
	ErrElementTooLarge        = LengthError("element exceeds maximum encoded length")
	ErrIncompatibleDBVersion  = InvalidError("incompatible database version")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidEncoding        = InvalidError("invalid encoding")
	ErrInvalidHasher          = InvalidError("invalid key hasher")
	ErrInvalidKeyCount        = InvalidError("invalid number of keys for pool")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidPoolKind        = InvalidError("invalid pool kind")
	ErrInvalidPoolName        = InvalidError("invalid pool name")
	ErrInvalidPoolPrefix      = InvalidError("invalid pool prefix")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrMalformedElement       = RecordError("malformed element")
	ErrMalformedLength        = RecordError("malformed length prefix")
	ErrMissingParameter       = NotFoundError("missing parameter")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrParameterOutOfRange    = InvalidError("parameter out of range")
	ErrPoolNotFound           = NotFoundError("pool not found")
	ErrReadOnly               = ProcessError("database is read only")
	ErrTrailingBytes          = RecordError("trailing bytes after sequence")
	ErrTransactionAlreadyUsed = ProcessError("transaction already in use")
	ErrTransactionNotStarted  = ProcessError("transaction not started")
	ErrTruncatedElement       = RecordError("truncated element")
	ErrTruncatedLength        = RecordError("truncated length prefix")
	ErrUnknownElementType     = InvalidError("unknown element type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
