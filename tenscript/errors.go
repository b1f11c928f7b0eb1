// SPDX-License-Identifier: MIT
// Package: tensegra/tenscript
//
// errors.go — sentinel errors for parsing and execution.

package tenscript

import "errors"

// ErrSyntax is returned for malformed program text; the wrapped message
// carries the byte offset and what was expected.
var ErrSyntax = errors.New("tenscript: syntax error")

// ErrFaceUnavailable is returned when a face alias cannot be resolved
// on the twist it is applied to (junction aliases need an omni or
// connected twist).
var ErrFaceUnavailable = errors.New("tenscript: face alias unavailable")

// ErrUnknownMark is returned when a markdef references a mark id that
// no face in the tree carries.
var ErrUnknownMark = errors.New("tenscript: unknown mark")
