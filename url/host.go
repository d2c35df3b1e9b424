package url

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kauri-engine/kauri/idna"
)

// HostType discriminates the Host sum type,
// https://url.spec.whatwg.org/#concept-host, matching url/url.h's
// HostType enum.
type HostType int

const (
	EmptyHost HostType = iota
	DomainHost
	IPv4Host
	IPv6Host
	OpaqueHost
)

// Host is a parsed URL host. Only the field matching Type is meaningful.
type Host struct {
	Type HostType

	Domain string
	IPv4   uint32
	IPv6   [8]uint16
	Opaque string
}

// ValidationError is kauri's 34-entry URL validation error taxonomy,
// https://url.spec.whatwg.org/#url-validation-and-parsing. parseHost
// reports them through its optional report callback; Parse passes no
// callback, so they are not surfaced to Parse's callers, and a host
// that fails to parse makes Parse return an error.
type ValidationError int

const (
	DomainToASCII ValidationError = iota
	DomainToUnicode
	DomainInvalidCodePoint
	HostInvalidCodePoint
	IPv4EmptyPart
	IPv4TooManyParts
	IPv4NonNumericPart
	IPv4NonDecimalPart
	IPv4OutOfRangePart
	IPv6Unclosed
	IPv6InvalidCompression
	IPv6TooManyPieces
	IPv6MultipleCompression
	IPv6InvalidCodePoint
	IPv6TooFewPieces
	IPv4InIPv6TooManyPieces
	IPv4InIPv6InvalidCodePoint
	IPv4InIPv6OutOfRangePart
	IPv4InIPv6TooFewParts
	InvalidURLUnit
	SpecialSchemeMissingFollowingSolidus
	MissingSchemeNonRelativeURL
	InvalidReverseSolidus
	InvalidCredentials
	HostMissing
	PortOutOfRange
	PortInvalid
	FileInvalidWindowsDriveLetter
	FileInvalidWindowsDriveLetterHost
	MissingSchemeNonRelativeURLSuffix
	UnexpectedCredentialsWithoutHost
	UnexpectedHostWithFileScheme
	FileInvalidWindowsDriveLetterSuffix
	MissingFileSeparator
)

func (e ValidationError) Error() string {
	names := [...]string{
		"domain-to-ASCII", "domain-to-Unicode", "domain-invalid-code-point",
		"host-invalid-code-point", "IPv4-empty-part", "IPv4-too-many-parts",
		"IPv4-non-numeric-part", "IPv4-non-decimal-part", "IPv4-out-of-range-part",
		"IPv6-unclosed", "IPv6-invalid-compression", "IPv6-too-many-pieces",
		"IPv6-multiple-compression", "IPv6-invalid-code-point", "IPv6-too-few-pieces",
		"IPv4-in-IPv6-too-many-pieces", "IPv4-in-IPv6-invalid-code-point",
		"IPv4-in-IPv6-out-of-range-part", "IPv4-in-IPv6-too-few-parts",
		"invalid-URL-unit", "special-scheme-missing-following-solidus",
		"missing-scheme-non-relative-URL", "invalid-reverse-solidus",
		"invalid-credentials", "host-missing", "port-out-of-range", "port-invalid",
		"file-invalid-Windows-drive-letter", "file-invalid-Windows-drive-letter-host",
		"missing-scheme-non-relative-URL", "unexpected-credentials-without-host",
		"unexpected-host-with-file-scheme", "file-invalid-Windows-drive-letter-host",
		"missing-file-separator",
	}
	if int(e) < 0 || int(e) >= len(names) {
		return "unknown-validation-error"
	}
	return names[e]
}

// parseHost implements https://url.spec.whatwg.org/#host-parsing.
func parseHost(input string, isSpecial bool, report func(ValidationError)) (Host, error) {
	if report == nil {
		report = func(ValidationError) {}
	}
	if input == "" {
		return Host{Type: EmptyHost}, nil
	}
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			report(IPv6Unclosed)
			return Host{}, errors.New("url: unclosed IPv6 address")
		}
		addr, err := parseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}
		return Host{Type: IPv6Host, IPv6: addr}, nil
	}
	if !isSpecial {
		return parseOpaqueHost(input, report)
	}

	decoded := string(percentDecode(input))
	ascii, err := idna.ToASCII(decoded)
	if err != nil {
		report(DomainToASCII)
		return Host{}, fmt.Errorf("url: domain to ASCII: %w", err)
	}
	for i := 0; i < len(ascii); i++ {
		if isForbiddenDomainCodePoint(ascii[i]) {
			report(DomainInvalidCodePoint)
			return Host{}, errors.New("url: forbidden domain code point")
		}
	}
	if looksLikeIPv4(ascii) {
		v4, err := parseIPv4(ascii)
		if err != nil {
			return Host{}, err
		}
		return Host{Type: IPv4Host, IPv4: v4}, nil
	}
	return Host{Type: DomainHost, Domain: ascii}, nil
}

func isForbiddenDomainCodePoint(b byte) bool {
	if isForbiddenHostCodePoint(b) {
		return true
	}
	return b <= 0x1F || b == 0x25 || b == 0x7F
}

func isForbiddenHostCodePoint(b byte) bool {
	switch b {
	case 0x00, 0x09, 0x0A, 0x0D, ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return false
}

func parseOpaqueHost(input string, report func(ValidationError)) (Host, error) {
	for i := 0; i < len(input); i++ {
		b := input[i]
		if b != '%' && isForbiddenHostCodePoint(b) {
			report(HostInvalidCodePoint)
			return Host{}, errors.New("url: forbidden host code point")
		}
	}
	return Host{Type: OpaqueHost, Opaque: percentEncode(input, c0ControlPercentEncodeSet, false)}, nil
}

func looksLikeIPv4(domain string) bool {
	parts := strings.Split(domain, ".")
	last := parts[len(parts)-1]
	if last == "" && len(parts) > 1 {
		last = parts[len(parts)-2]
	}
	if last == "" {
		return false
	}
	for i := 0; i < len(last); i++ {
		if last[i] < '0' || last[i] > '9' {
			if !(len(last) > 2 && (last[0:2] == "0x" || last[0:2] == "0X")) {
				return false
			}
		}
	}
	return true
}

// parseIPv4 implements https://url.spec.whatwg.org/#concept-ipv4-parser.
func parseIPv4(input string) (uint32, error) {
	parts := strings.Split(input, ".")
	if parts[len(parts)-1] == "" && len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return 0, errors.New("url: IPv4 address has too many parts")
	}
	var numbers []uint64
	for _, part := range parts {
		if part == "" {
			return 0, errors.New("url: IPv4 address has an empty part")
		}
		n, err := parseIPv4Number(part)
		if err != nil {
			return 0, err
		}
		numbers = append(numbers, n)
	}
	for _, n := range numbers[:len(numbers)-1] {
		if n > 255 {
			return 0, errors.New("url: IPv4 part out of range")
		}
	}
	last := numbers[len(numbers)-1]
	maxLast := uint64(1) << (8 * (5 - uint(len(numbers))))
	if last >= maxLast {
		return 0, errors.New("url: IPv4 part out of range")
	}

	var ipv4 uint64 = last
	for i, n := range numbers[:len(numbers)-1] {
		shift := 8 * (3 - uint(i))
		ipv4 += n << shift
	}
	return uint32(ipv4), nil
}

func parseIPv4Number(input string) (uint64, error) {
	base := 10
	switch {
	case strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X"):
		base = 16
		input = input[2:]
	case len(input) > 1 && input[0] == '0':
		base = 8
		input = input[1:]
	}
	if input == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(input, base, 64)
	if err != nil {
		return 0, fmt.Errorf("url: invalid IPv4 number: %w", err)
	}
	return n, nil
}

// parseIPv6 implements https://url.spec.whatwg.org/#concept-ipv6-parser.
func parseIPv6(input string) ([8]uint16, error) {
	var addr [8]uint16
	piece := 0
	pos := 0
	compress := -1

	if pos < len(input) && input[pos] == ':' {
		if pos+1 >= len(input) || input[pos+1] != ':' {
			return addr, errors.New("url: IPv6 address starts with lone colon")
		}
		pos += 2
		piece++
		compress = piece
	}

	for pos < len(input) {
		if piece == 8 {
			return addr, errors.New("url: IPv6 address has too many pieces")
		}
		if input[pos] == ':' {
			if compress != -1 {
				return addr, errors.New("url: IPv6 address has multiple compressions")
			}
			pos++
			piece++
			compress = piece
			continue
		}

		value := 0
		length := 0
		for length < 4 && pos < len(input) && isHexDigit(input[pos]) {
			value = value*16 + int(hexValue(input[pos]))
			pos++
			length++
		}
		if pos < len(input) && input[pos] == '.' {
			if length == 0 {
				return addr, errors.New("url: IPv4-in-IPv6 has invalid code point")
			}
			pos -= length
			if piece > 6 {
				return addr, errors.New("url: IPv4-in-IPv6 has too many pieces")
			}
			numbersSeen := 0
			for pos < len(input) {
				ipv4Piece := -1
				if numbersSeen > 0 {
					if input[pos] == '.' && numbersSeen < 4 {
						pos++
					} else {
						return addr, errors.New("url: IPv4-in-IPv6 invalid separator")
					}
				}
				if pos >= len(input) || input[pos] < '0' || input[pos] > '9' {
					return addr, errors.New("url: IPv4-in-IPv6 invalid code point")
				}
				for pos < len(input) && input[pos] >= '0' && input[pos] <= '9' {
					digit := int(input[pos] - '0')
					if ipv4Piece == -1 {
						ipv4Piece = digit
					} else if ipv4Piece == 0 {
						return addr, errors.New("url: IPv4-in-IPv6 invalid code point")
					} else {
						ipv4Piece = ipv4Piece*10 + digit
					}
					if ipv4Piece > 255 {
						return addr, errors.New("url: IPv4-in-IPv6 out of range part")
					}
					pos++
				}
				addr[piece] = addr[piece]*0x100 + uint16(ipv4Piece)
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					piece++
				}
			}
			if numbersSeen != 4 {
				return addr, errors.New("url: IPv4-in-IPv6 too few parts")
			}
			break
		}
		if pos < len(input) && input[pos] == ':' {
			pos++
			if pos >= len(input) {
				return addr, errors.New("url: IPv6 address unexpectedly ends with a colon")
			}
		} else if pos < len(input) {
			return addr, errors.New("url: IPv6 address has invalid code point")
		}
		addr[piece] = uint16(value)
		piece++
	}

	if compress != -1 {
		swaps := piece - compress
		piece = 7
		for piece != 0 && swaps > 0 {
			addr[piece], addr[compress+swaps-1] = addr[compress+swaps-1], addr[piece]
			piece--
			swaps--
		}
	} else if piece != 8 {
		return addr, errors.New("url: IPv6 address has too few pieces")
	}
	return addr, nil
}

// serializeHost implements https://url.spec.whatwg.org/#concept-host-serializer.
func serializeHost(h Host) string {
	switch h.Type {
	case DomainHost:
		return h.Domain
	case IPv4Host:
		return serializeIPv4(h.IPv4)
	case IPv6Host:
		return "[" + serializeIPv6(h.IPv6) + "]"
	case OpaqueHost:
		return h.Opaque
	default:
		return ""
	}
}

func serializeIPv4(addr uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(addr>>24), byte(addr>>16), byte(addr>>8), byte(addr))
}

// serializeIPv6 implements https://url.spec.whatwg.org/#concept-ipv6-serializer,
// grounded on url/ip_serialization.h's compression-run selection.
func serializeIPv6(addr [8]uint16) string {
	var sb strings.Builder
	compressStart, compressLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i <= 8; i++ {
		if i < 8 && addr[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
		} else {
			if curLen > compressLen && curLen > 1 {
				compressStart, compressLen = curStart, curLen
			}
			curStart, curLen = -1, 0
		}
	}

	ignore0 := -1
	if compressStart != -1 {
		ignore0 = compressStart
	}
	for i := 0; i < 8; i++ {
		if ignore0 == i {
			if i == 0 {
				sb.WriteString("::")
			} else {
				sb.WriteString(":")
			}
			i = compressStart + compressLen - 1
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(addr[i]), 16))
		if i != 7 {
			sb.WriteString(":")
		}
	}
	return sb.String()
}
