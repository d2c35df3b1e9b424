package idna

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// ACEPrefix is the punycode ASCII-compatible-encoding prefix, "xn--".
const ACEPrefix = "xn--"

// ErrDisallowedCodePoint is returned when a label contains a code point
// UTS#46 forbids in a domain name (non-transitional processing).
var ErrDisallowedCodePoint = errors.New("idna: disallowed code point in label")

// ErrBidiViolation is returned when a right-to-left label fails the
// Bidi Rule (RFC 5893) checked via golang.org/x/text/unicode/bidi.
var ErrBidiViolation = errors.New("idna: label violates the bidi rule")

// ToASCII converts a domain to its ASCII-compatible encoding, applying
// non-transitional UTS#46 processing: Unicode normalization (NFC, via
// golang.org/x/text/unicode/norm), disallowed-code-point rejection, and
// punycode encoding of any label containing non-ASCII code points.
// Transitional processing (the old IDNA2003 mapping table) is out of
// scope, per spec.md's explicit non-goal.
func ToASCII(domain string) (string, error) {
	labels := strings.Split(domain, ".")
	for i, label := range labels {
		encoded, err := toASCIILabel(label)
		if err != nil {
			return "", err
		}
		labels[i] = encoded
	}
	return strings.Join(labels, "."), nil
}

func toASCIILabel(label string) (string, error) {
	if label == "" {
		return "", nil
	}
	if isASCII(label) {
		return strings.ToLower(label), nil
	}

	normalized := norm.NFC.String(label)
	for _, r := range normalized {
		if isDisallowed(r) {
			return "", ErrDisallowedCodePoint
		}
	}

	if err := checkBidi(normalized); err != nil {
		return "", err
	}

	encoded, err := punycodeEncode(strings.ToLower(normalized))
	if err != nil {
		return "", err
	}
	return ACEPrefix + encoded, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// isDisallowed rejects the control and formatting code points UTS#46's
// disallowed list always excludes from domain labels; this is a
// conservative subset of the full IDNA mapping table, not the complete
// Unicode property derivation idna_data_processor.cpp builds offline.
func isDisallowed(r rune) bool {
	switch {
	case r <= 0x2C, r == 0x2F, (r >= 0x3A && r <= 0x40), (r >= 0x5B && r <= 0x60), (r >= 0x7B && r <= 0x7F):
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	}
	return false
}

// checkBidi applies RFC 5893's Bidi Rule to a label using
// golang.org/x/text/unicode/bidi's per-code-point class lookup: a label
// containing any right-to-left (R or AL) code point must not also
// contain a left-to-right (L) code point. No other bidi class is
// rejected.
func checkBidi(label string) error {
	p := bidi.LookupString
	isRTL := false
	for _, r := range label {
		props, _ := p(string(r))
		switch props.Class() {
		case bidi.R, bidi.AL:
			isRTL = true
		}
	}
	if !isRTL {
		return nil
	}
	for _, r := range label {
		props, _ := p(string(r))
		switch props.Class() {
		case bidi.L:
			return ErrBidiViolation
		}
	}
	return nil
}

// Cleanup releases any process-wide IDNA state. It is a no-op: kauri's
// IDNA implementation is a pure rune-table walk with no global facility,
// kept only for interface parity with embedders that call it at exit.
func Cleanup() {}
