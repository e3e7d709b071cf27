// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
)

// ErrorDomain identifies errors produced by this package.
const ErrorDomain = "com.gogpu.brush.model"

// ErrorCode distinguishes brush model errors within ErrorDomain.
type ErrorCode int

// Error codes.
const (
	// CodeNoSerializedVersion means the version field is absent.
	CodeNoSerializedVersion ErrorCode = iota + 1
	// CodeNoValidVersion means the version is not a known, supported ordinal.
	CodeNoValidVersion
	// CodeInvalidField means a version-specific field is missing a valid value.
	CodeInvalidField
)

// String returns the code name.
func (c ErrorCode) String() string {
	switch c {
	case CodeNoSerializedVersion:
		return "NoSerializedVersion"
	case CodeNoValidVersion:
		return "NoValidVersion"
	case CodeInvalidField:
		return "InvalidField"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error is returned by brush model decoding and validation.
//
// Errors match with errors.Is by domain and code, so
//
//	errors.Is(err, model.ErrNoValidVersion)
//
// holds for every error with CodeNoValidVersion regardless of its details.
type Error struct {
	Domain      string
	Code        ErrorCode
	Field       string // JSON key of the offending field, if any
	Description string
	Err         error
}

// Sentinel errors for use with errors.Is.
var (
	ErrNoSerializedVersion = &Error{Domain: ErrorDomain, Code: CodeNoSerializedVersion, Description: "no serialized version"}
	ErrNoValidVersion      = &Error{Domain: ErrorDomain, Code: CodeNoValidVersion, Description: "no valid version"}
	ErrInvalidField        = &Error{Domain: ErrorDomain, Code: CodeInvalidField, Description: "invalid field"}
)

func (e *Error) Error() string {
	msg := "model: " + e.Description
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same domain and code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Domain == e.Domain && t.Code == e.Code
}

func fieldError(field, format string, args ...any) *Error {
	return &Error{
		Domain:      ErrorDomain,
		Code:        CodeInvalidField,
		Field:       field,
		Description: fmt.Sprintf(format, args...),
	}
}
