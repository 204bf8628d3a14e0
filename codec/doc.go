// Package codec implements the binary frame format: Encode turns a
// value.Value into a self-delimiting byte frame, and Decode parses one
// back. Decode never panics on malformed input; it reports exactly one
// of three outcomes per call: a Value (including the KindFlaw variant
// for a structurally invalid frame), a nil Value with a nil error for an
// intentionally empty frame, or errs.ErrIncomplete when the frame isn't
// fully present yet.
package codec
