// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package client

import (
	"errors"
	"fmt"
)

// IOError wraps a transport-level failure: connect, read, write, or an
// EOF encountered mid-frame.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("exoline: io error: %v", e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// ArgumentError is a local validation failure — a variant tag that
// doesn't match the variable's declared kind, or an operation that is
// unsupported for the given file kind (e.g. a string in a BPac). It
// never reaches the wire.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return "exoline: invalid argument: " + e.Msg }

// ProtocolError is a framing, CRC, or decode failure, or an unexpected
// response arriving against an empty request queue.
type ProtocolError struct {
	Msg string
	Err error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exoline: protocol error: %s: %v", e.Msg, e.Err)
	}
	return "exoline: protocol error: " + e.Msg
}
func (e *ProtocolError) Unwrap() error { return e.Err }

// Exception is a one-byte exception code returned by the device. Two
// Exception values with the same Code compare equal under errors.Is
// even if constructed independently.
type Exception struct {
	Code byte
}

func (e *Exception) Error() string {
	if name, ok := exceptionNames[e.Code]; ok {
		return fmt.Sprintf("exoline: exception %d (%s)", e.Code, name)
	}
	return fmt.Sprintf("exoline: exception %d (unknown)", e.Code)
}

// Is implements errors.Is comparing by Code only, so two Unknown
// codes with the same value are equal.
func (e *Exception) Is(target error) bool {
	other, ok := target.(*Exception)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// The exception codes a device may report. Names mirror the protocol's
// own vocabulary.
const (
	ExcWrongType             = 1
	ExcWrongSLn              = 2
	ExcWrongDLn              = 3
	ExcWrongTLn              = 4
	ExcDPacNotPresent        = 5
	ExcDPacExists            = 6
	ExcDPacNotPrep           = 7
	ExcVPacUsed              = 8
	ExcTaskNotPresent        = 9
	ExcTaskExists            = 10
	ExcWrongLoadOrder        = 11
	ExcINSTNotAllowed        = 12
	ExcKILLTNotAllowed       = 13
	ExcTaskIsRunning         = 14
	ExcTaskNotRunning        = 15
	ExcTaskNotInstalled      = 16
	ExcSTEPTNotAllowed       = 17
	ExcTextExists            = 18
	ExcTextNotPrepared       = 19
	ExcMemoryFull            = 20
	ExcTextEmpty             = 21
	ExcTextTruncated         = 22
	ExcAccessTooLow          = 23
	ExcAccessTooHigh         = 24
	ExcParamIllegal          = 25
	ExcWrongKey              = 26
	ExcNoAccess              = 28
	ExcTooBigMaxLength       = 29
	ExcProcUsedByTask        = 32
	ExcOutOfTextSpace        = 33
	ExcNotInStepMode         = 34
	ExcDPacEmpty             = 35
	ExcIllegalCell           = 37
	ExcIllegalCommand        = 38
	ExcIllegalMessageLength  = 39
	ExcAddressOutsideRange   = 41
)

var exceptionNames = map[byte]string{
	ExcWrongType:            "WrongType",
	ExcWrongSLn:             "WrongSLn",
	ExcWrongDLn:             "WrongDLn",
	ExcWrongTLn:             "WrongTLn",
	ExcDPacNotPresent:       "DPacNotPresent",
	ExcDPacExists:           "DPacExists",
	ExcDPacNotPrep:          "DPacNotPrep",
	ExcVPacUsed:             "VPacUsed",
	ExcTaskNotPresent:       "TaskNotPresent",
	ExcTaskExists:           "TaskExists",
	ExcWrongLoadOrder:       "WrongLoadOrder",
	ExcINSTNotAllowed:       "INSTNotAllowed",
	ExcKILLTNotAllowed:      "KILLTNotAllowed",
	ExcTaskIsRunning:        "TaskIsRunning",
	ExcTaskNotRunning:       "TaskNotRunning",
	ExcTaskNotInstalled:     "TaskNotInstalled",
	ExcSTEPTNotAllowed:      "STEPTNotAllowed",
	ExcTextExists:           "TextExists",
	ExcTextNotPrepared:      "TextNotPrepared",
	ExcMemoryFull:           "MemoryFull",
	ExcTextEmpty:            "TextEmpty",
	ExcTextTruncated:        "TextTruncated",
	ExcAccessTooLow:         "AccessTooLow",
	ExcAccessTooHigh:        "AccessTooHigh",
	ExcParamIllegal:         "ParamIllegal",
	ExcWrongKey:             "WrongKey",
	ExcNoAccess:             "NoAccess",
	ExcTooBigMaxLength:      "TooBigMaxLength",
	ExcProcUsedByTask:       "ProcUsedByTask",
	ExcOutOfTextSpace:       "OutOfTextSpace",
	ExcNotInStepMode:        "NotInStepMode",
	ExcDPacEmpty:            "DPacEmpty",
	ExcIllegalCell:          "IllegalCell",
	ExcIllegalCommand:       "IllegalCommand",
	ExcIllegalMessageLength: "IllegalMessageLength",
	ExcAddressOutsideRange:  "AddressOutsideRange",
}

// IsException reports whether err is (or wraps) an Exception carrying
// the given code. Equivalent to errors.Is(err, &Exception{Code: code}).
func IsException(err error, code byte) bool {
	return errors.Is(err, &Exception{Code: code})
}
