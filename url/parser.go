package url

import (
	"errors"
	"strconv"
	"strings"
)

// parserState names one of the Basic URL Parser's states,
// https://url.spec.whatwg.org/#scheme-start-state and following.
// Grounded on the state enumeration confirmed in original_source's
// url.cpp, reimplemented here rather than transcribed line-for-line.
type parserState int

const (
	stateSchemeStart parserState = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
)

// stateStart is the entry state for a fresh, non-continuation parse.
const stateStart = stateSchemeStart

// removeASCIITabsAndNewlines strips the TAB/CR/LF code points the
// spec's parser preprocessing step discards everywhere in the input,
// https://url.spec.whatwg.org/#url-parsing step 2.
func removeASCIITabsAndNewlines(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\t', '\n', '\r':
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func trimC0ControlAndSpace(s string) string {
	start, end := 0, len(s)
	for start < end && s[start] <= ' ' {
		start++
	}
	for end > start && s[end-1] <= ' ' {
		end--
	}
	return s[start:end]
}

// parseBasic implements https://url.spec.whatwg.org/#concept-basic-url-parser.
// When u is non-nil, parsing continues into the already-populated
// record starting at stateOverride (the URL-setter continuation
// entry point); otherwise a fresh URL is allocated and parsing starts
// at stateSchemeStart.
func parseBasic(input string, base *URL, u *URL, stateOverride parserState) (*URL, error) {
	stateOverrideSet := u != nil
	if u == nil {
		u = &URL{}
	}
	input = trimC0ControlAndSpace(input)
	input = removeASCIITabsAndNewlines(input)

	runes := []rune(input)
	state := stateOverride
	if !stateOverrideSet {
		state = stateSchemeStart
	}

	var buf strings.Builder
	atSignSeen := false
	passwordTokenSeen := false
	insideBrackets := false
	pointer := 0

	for {
		var c rune
		hasC := pointer < len(runes)
		if hasC {
			c = runes[pointer]
		}

		switch state {
		case stateSchemeStart:
			switch {
			case hasC && isASCIIAlphaRune(c):
				buf.WriteRune(toLowerRune(c))
				state = stateScheme
			case stateOverrideSet:
				return nil, errors.New("url: invalid scheme in state-override parse")
			default:
				state = stateNoScheme
				pointer--
			}

		case stateScheme:
			switch {
			case hasC && (isASCIIAlphaRune(c) || isASCIIDigitRune(c) || c == '+' || c == '-' || c == '.'):
				buf.WriteRune(toLowerRune(c))
			case hasC && c == ':':
				scheme := buf.String()
				if stateOverrideSet {
					if isSpecialScheme(u.Scheme) != isSpecialScheme(scheme) {
						return u, nil
					}
					if (u.IncludesCredentials() || u.Port != nil) && scheme == "file" {
						return u, nil
					}
					if u.Scheme == "file" && u.Host.Type == EmptyHost && !u.HasHost {
						return u, nil
					}
				}
				u.Scheme = scheme
				buf.Reset()
				if stateOverrideSet {
					if port, ok := defaultPort(u.Scheme); ok && u.Port != nil && *u.Port == port {
						u.Port = nil
					}
					return u, nil
				}
				switch {
				case u.Scheme == "file":
					state = stateFile
				case isSpecialScheme(u.Scheme) && base != nil && base.Scheme == u.Scheme:
					state = stateSpecialRelativeOrAuthority
				case isSpecialScheme(u.Scheme):
					state = stateSpecialAuthoritySlashes
				case pointer+1 < len(runes) && runes[pointer+1] == '/':
					state = statePathOrAuthority
					pointer++
				default:
					u.OpaquePath = true
					u.Path = nil
					state = stateOpaquePath
				}
			case stateOverrideSet:
				return nil, errors.New("url: invalid scheme in state-override parse")
			default:
				buf.Reset()
				state = stateNoScheme
				pointer = -1
			}

		case stateNoScheme:
			switch {
			case base == nil || (base.OpaquePath && hasC && c != '#'):
				return nil, errors.New("url: missing scheme in non-relative URL")
			case base.OpaquePath && hasC && c == '#':
				u.Scheme = base.Scheme
				u.OpaquePath = true
				u.Opaque = base.Opaque
				u.Query = base.Query
				f := ""
				u.Fragment = &f
				state = stateFragment
			case base.Scheme != "file":
				state = stateRelative
				pointer--
			default:
				state = stateFile
				pointer--
			}

		case stateSpecialRelativeOrAuthority:
			if c == '/' && pointer+1 < len(runes) && runes[pointer+1] == '/' {
				state = stateSpecialAuthoritySlashes
				pointer++
			} else {
				state = stateRelative
				pointer--
			}

		case statePathOrAuthority:
			if hasC && c == '/' {
				state = stateAuthority
			} else {
				state = statePath
				pointer--
			}

		case stateRelative:
			u.Scheme = base.Scheme
			switch {
			case hasC && c == '/':
				state = stateRelativeSlash
			case hasC && c == '\\' && u.isSpecial():
				state = stateRelativeSlash
			default:
				u.HasHost = base.HasHost
				u.Host = base.Host
				u.Port = base.Port
				u.Path = append([]string(nil), base.Path...)
				u.OpaquePath = base.OpaquePath
				u.Opaque = base.Opaque
				u.Query = base.Query
				switch {
				case hasC && c == '?':
					q := ""
					u.Query = &q
					state = stateQuery
				case hasC && c == '#':
					f := ""
					u.Fragment = &f
					state = stateFragment
				case hasC:
					u.Query = nil
					if !u.OpaquePath {
						u.shortenPath()
					}
					state = statePath
					pointer--
				}
			}

		case stateRelativeSlash:
			switch {
			case u.isSpecial() && hasC && (c == '/' || c == '\\'):
				state = stateSpecialAuthorityIgnoreSlashes
			case hasC && c == '/':
				state = stateAuthority
			default:
				u.HasHost = base.HasHost
				u.Host = base.Host
				u.Port = base.Port
				state = statePath
				pointer--
			}

		case stateSpecialAuthoritySlashes:
			if hasC && c == '/' && pointer+1 < len(runes) && runes[pointer+1] == '/' {
				state = stateSpecialAuthorityIgnoreSlashes
				pointer++
			} else {
				state = stateSpecialAuthorityIgnoreSlashes
				pointer--
			}

		case stateSpecialAuthorityIgnoreSlashes:
			if hasC && (c == '/' || c == '\\') {
				// stay
			} else {
				state = stateAuthority
				pointer--
			}

		case stateAuthority:
			switch {
			case hasC && c == '@':
				if atSignSeen {
					buf.WriteString("%40")
				}
				atSignSeen = true
				cred := []rune(buf.String())
				for _, rc := range cred {
					if rc == ':' && !passwordTokenSeen {
						passwordTokenSeen = true
						continue
					}
					encoded := percentEncode(string(rc), userinfoPercentEncodeSet, false)
					if passwordTokenSeen {
						u.Password += encoded
					} else {
						u.Username += encoded
					}
				}
				buf.Reset()
			case (!hasC || c == '/' || c == '?' || c == '#') || (u.isSpecial() && c == '\\'):
				if atSignSeen && buf.Len() == 0 {
					return nil, errors.New("url: empty host after credentials")
				}
				pointer -= utf8Len(buf.String()) + 1
				buf.Reset()
				state = stateHost
			default:
				buf.WriteRune(c)
			}

		case stateHost, stateHostname:
			switch {
			case stateOverrideSet && u.Scheme == "file":
				state = stateFileHost
				pointer--
			case hasC && c == ':' && !insideBrackets:
				if buf.Len() == 0 {
					return nil, errors.New("url: empty host before port")
				}
				if stateOverrideSet && state == stateHostname {
					return u, nil
				}
				h, err := parseHost(buf.String(), u.isSpecial(), nil)
				if err != nil {
					return nil, err
				}
				u.Host = h
				u.HasHost = true
				buf.Reset()
				state = statePort
			case (!hasC || c == '/' || c == '?' || c == '#') || (u.isSpecial() && c == '\\'):
				pointer--
				if u.isSpecial() && buf.Len() == 0 {
					return nil, errors.New("url: empty host in special URL")
				}
				if stateOverrideSet && buf.Len() == 0 && (u.IncludesCredentials() || u.Port != nil) {
					return u, nil
				}
				h, err := parseHost(buf.String(), u.isSpecial(), nil)
				if err != nil {
					return nil, err
				}
				u.Host = h
				u.HasHost = true
				buf.Reset()
				if stateOverrideSet {
					return u, nil
				}
				state = statePathStart
			default:
				if c == '[' {
					insideBrackets = true
				} else if c == ']' {
					insideBrackets = false
				}
				buf.WriteRune(c)
			}

		case statePort:
			switch {
			case hasC && isASCIIDigitRune(c):
				buf.WriteRune(c)
			case (!hasC || c == '/' || c == '?' || c == '#') || (u.isSpecial() && c == '\\') || stateOverrideSet:
				if buf.Len() > 0 {
					n, err := strconv.ParseUint(buf.String(), 10, 32)
					if err != nil || n > 65535 {
						return nil, errors.New("url: port out of range")
					}
					port := uint16(n)
					if def, ok := defaultPort(u.Scheme); ok && def == port {
						u.Port = nil
					} else {
						u.Port = &port
					}
					buf.Reset()
				}
				if stateOverrideSet {
					return u, nil
				}
				state = statePathStart
				pointer--
			default:
				return nil, errors.New("url: invalid port")
			}

		case stateFile:
			u.Scheme = "file"
			u.HasHost = false
			u.Host = Host{}
			switch {
			case hasC && (c == '/' || c == '\\'):
				state = stateFileSlash
			case base != nil && base.Scheme == "file":
				u.HasHost = base.HasHost
				u.Host = base.Host
				u.Path = append([]string(nil), base.Path...)
				u.OpaquePath = base.OpaquePath
				u.Opaque = base.Opaque
				u.Query = base.Query
				switch {
				case hasC && c == '?':
					q := ""
					u.Query = &q
					state = stateQuery
				case hasC && c == '#':
					f := ""
					u.Fragment = &f
					state = stateFragment
				case hasC:
					u.Query = nil
					if len(u.Path) > 0 && !(isWindowsDriveLetterAt(runes, pointer)) {
						u.shortenPath()
					}
					state = statePath
					pointer--
				}
			default:
				state = statePath
				pointer--
			}

		case stateFileSlash:
			switch {
			case hasC && (c == '/' || c == '\\'):
				state = stateFileHost
			default:
				if base != nil && base.Scheme == "file" {
					u.HasHost = base.HasHost
					u.Host = base.Host
					if !isWindowsDriveLetterAt(runes, pointer) && len(base.Path) > 0 && isWindowsDriveLetter(base.Path[0]) {
						u.Path = []string{base.Path[0]}
					}
				}
				state = statePath
				pointer--
			}

		case stateFileHost:
			switch {
			case !hasC || c == '/' || c == '\\' || c == '?' || c == '#':
				pointer--
				if isWindowsDriveLetter(buf.String()) {
					state = statePath
				} else if buf.Len() == 0 {
					u.HasHost = true
					u.Host = Host{Type: EmptyHost}
					if stateOverrideSet {
						return u, nil
					}
					state = statePathStart
				} else {
					h, err := parseHost(buf.String(), true, nil)
					if err != nil {
						return nil, err
					}
					if h.Type == DomainHost && h.Domain == "localhost" {
						h.Domain = ""
					}
					u.Host = h
					u.HasHost = true
					if stateOverrideSet {
						return u, nil
					}
					buf.Reset()
					state = statePathStart
				}
			default:
				buf.WriteRune(c)
			}

		case statePathStart:
			switch {
			case u.isSpecial():
				state = statePath
				if !hasC || (c != '/' && c != '\\') {
					pointer--
				}
			case !stateOverrideSet && hasC && c == '?':
				q := ""
				u.Query = &q
				state = stateQuery
			case !stateOverrideSet && hasC && c == '#':
				f := ""
				u.Fragment = &f
				state = stateFragment
			case hasC:
				state = statePath
				if c != '/' {
					pointer--
				}
			default:
				if stateOverrideSet && !u.HasHost {
					u.Path = append(u.Path, "")
				}
			}

		case statePath:
			switch {
			case (!hasC || c == '/') || (u.isSpecial() && c == '\\') || (!stateOverrideSet && hasC && (c == '?' || c == '#')):
				segment := buf.String()
				if isDoubleDotPathSegment(segment) {
					u.shortenPath()
					if !(hasC && c == '/') && !(u.isSpecial() && hasC && c == '\\') {
						u.Path = append(u.Path, "")
					}
				} else if isSingleDotPathSegment(segment) {
					if !(hasC && c == '/') && !(u.isSpecial() && hasC && c == '\\') {
						u.Path = append(u.Path, "")
					}
				} else {
					if u.Scheme == "file" && len(u.Path) == 0 && isWindowsDriveLetter(segment) {
						segment = segment[:1] + ":"
					}
					u.Path = append(u.Path, segment)
				}
				buf.Reset()
				switch {
				case hasC && c == '?':
					q := ""
					u.Query = &q
					state = stateQuery
				case hasC && c == '#':
					f := ""
					u.Fragment = &f
					state = stateFragment
				}
			default:
				buf.WriteString(percentEncode(string(c), pathPercentEncodeSet, false))
			}

		case stateOpaquePath:
			switch {
			case hasC && c == '?':
				u.Opaque = buf.String()
				q := ""
				u.Query = &q
				state = stateQuery
			case hasC && c == '#':
				u.Opaque = buf.String()
				f := ""
				u.Fragment = &f
				state = stateFragment
			case hasC:
				buf.WriteString(percentEncode(string(c), c0ControlPercentEncodeSet, false))
			default:
				u.Opaque = buf.String()
			}

		case stateQuery:
			set := queryPercentEncodeSet
			if u.isSpecial() {
				set = specialQueryPercentEncodeSet
			}
			switch {
			case hasC && c == '#':
				q := buf.String()
				u.Query = &q
				buf.Reset()
				f := ""
				u.Fragment = &f
				state = stateFragment
			case hasC:
				buf.WriteString(percentEncode(string(c), set, false))
			default:
				q := buf.String()
				u.Query = &q
			}

		case stateFragment:
			if hasC {
				buf.WriteString(percentEncode(string(c), fragmentPercentEncodeSet, false))
			} else {
				f := buf.String()
				u.Fragment = &f
			}
		}

		if !hasC {
			break
		}
		pointer++
	}
	return u, nil
}

func isASCIIAlphaRune(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isASCIIDigitRune(r rune) bool { return r >= '0' && r <= '9' }
func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 32
	}
	return r
}

func utf8Len(s string) int { return len([]rune(s)) }

func isWindowsDriveLetterAt(runes []rune, pointer int) bool {
	if pointer+1 >= len(runes) {
		return false
	}
	a, b := runes[pointer], runes[pointer+1]
	if !isASCIIAlphaRune(a) || (b != ':' && b != '|') {
		return false
	}
	if pointer+2 < len(runes) {
		c := runes[pointer+2]
		return c == '/' || c == '\\' || c == '?' || c == '#'
	}
	return true
}
