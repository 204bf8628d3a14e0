// Package errs collects nimo's sentinel errors and the canonical Flaw
// description strings produced by the decoder, so every call site builds
// the same wording from one place instead of ad hoc fmt.Sprintf calls.
package errs

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned by codec.Decode when the input ends before a
// fully framed Message could be read. Unlike a structural fault, this is
// not reported as a Flaw value: the caller may have simply not received
// the rest of the stream yet, and should read more bytes and retry.
var ErrIncomplete = errors.New("nimo: incomplete message")

// MessageBadStartTag reports that the byte at offset wasn't a
// Message-start tag.
func MessageBadStartTag(offset int) string {
	return fmt.Sprintf("Message with incorrect start tag @%d", offset)
}

// EmptyMessageBadEndTag reports that an empty Message's end tag didn't
// match its start tag's empty/class bits.
func EmptyMessageBadEndTag(offset int) string {
	return fmt.Sprintf("Empty Message with incorrect end tag @%d", offset)
}

// MessageMismatchedInitialTag reports that the value tag immediately
// following a non-empty Message's start tag didn't match the class hint
// that start tag advertised.
func MessageMismatchedInitialTag(offset int) string {
	return fmt.Sprintf("Message with mismatched initial Value tag @%d", offset)
}

// MessageMismatchedEndTag reports that a non-empty Message's end tag
// didn't match the class of the value actually parsed.
func MessageMismatchedEndTag(offset int) string {
	return fmt.Sprintf("Message with mismatched end Value tag @%d", offset)
}

// UnexpectedCharacter reports a byte that is none of the tags a decoder
// expects at offset: a stray Message-end or Container-end where a value
// tag belongs.
func UnexpectedCharacter(offset int) string {
	return fmt.Sprintf("Unexpected character in Message @%d", offset)
}

// BadDoubleCount reports a Double group tag whose declared count is zero.
func BadDoubleCount(offset int) string {
	return fmt.Sprintf("Bad count for Double @%d", offset)
}

// NullValueRead reports an Other tag using the reserved subtype, which no
// encoder ever produces.
func NullValueRead(offset int) string {
	return fmt.Sprintf("Null Value read @%d", offset)
}

// EmptyContainerBadEndTag reports that an empty container's end tag
// didn't match its start tag's empty bit. kind is "Array", "Map", or "Set".
func EmptyContainerBadEndTag(kind string, offset int) string {
	return fmt.Sprintf("Empty %s with incorrect end tag @%d", kind, offset)
}

// NonEmptyContainerBadEndTag reports that a non-empty container's end tag
// didn't match its start tag's non-empty bit. kind is "Array", "Map", or "Set".
func NonEmptyContainerBadEndTag(kind string, offset int) string {
	return fmt.Sprintf("Non-empty %s with incorrect end tag @%d", kind, offset)
}

// BadContainerCount reports a container start tag whose declared
// cardinality is zero or negative. kind is "Array", "Map", or "Set".
func BadContainerCount(kind string, offset int) string {
	return fmt.Sprintf("%s with zero or negative count @%d", kind, offset)
}
