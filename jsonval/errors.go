package jsonval

import "fmt"

// Error is the JSON parser's error taxonomy, ported unchanged from
// json/json.h's json::Error enum (spec.md §4.7).
type Error int

const (
	InvalidEscape Error = iota
	InvalidKeyword
	InvalidNumber
	NestingLimitReached
	TrailingGarbage
	UnexpectedCharacter
	UnexpectedControlCharacter
	UnexpectedEOF
	UnpairedSurrogate
)

func (e Error) String() string {
	switch e {
	case InvalidEscape:
		return "InvalidEscape"
	case InvalidKeyword:
		return "InvalidKeyword"
	case InvalidNumber:
		return "InvalidNumber"
	case NestingLimitReached:
		return "NestingLimitReached"
	case TrailingGarbage:
		return "TrailingGarbage"
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnexpectedControlCharacter:
		return "UnexpectedControlCharacter"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case UnpairedSurrogate:
		return "UnpairedSurrogate"
	}
	return "UnknownError"
}

// ParseError wraps an Error with the byte offset it was detected at.
type ParseError struct {
	Err    Error
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsonval: %s at offset %d", e.Err, e.Offset)
}
