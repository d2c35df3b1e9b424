// Package url implements the WHATWG URL Standard's Basic URL Parser,
// host parsing, percent-encoding, and origin computation.
package url

import (
	"strconv"
	"strings"
)

// specialScheme records the schemes with dedicated default-port and
// host-is-required handling, https://url.spec.whatwg.org/#special-scheme.
var specialSchemes = map[string]uint16{
	"ftp":   21,
	"file":  0,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

func isSpecialScheme(scheme string) bool {
	_, ok := specialSchemes[scheme]
	return ok
}

func defaultPort(scheme string) (uint16, bool) {
	p, ok := specialSchemes[scheme]
	if !ok || scheme == "file" {
		return 0, false
	}
	return p, true
}

// URL is a parsed URL record, https://url.spec.whatwg.org/#concept-url.
type URL struct {
	Scheme   string
	Username string
	Password string

	Host    Host
	HasHost bool
	Port    *uint16

	Path       []string
	OpaquePath bool
	Opaque     string

	Query      *string
	Fragment   *string
}

// HasOpaquePath reports whether the URL's path is opaque
// (https://url.spec.whatwg.org/#url-opaque-path), i.e. a single
// unstructured string rather than a list of segments.
func (u *URL) HasOpaquePath() bool { return u.OpaquePath }

// IncludesCredentials reports whether the URL carries a nonempty
// username or password, https://url.spec.whatwg.org/#include-credentials.
func (u *URL) IncludesCredentials() bool {
	return u.Username != "" || u.Password != ""
}

func (u *URL) isSpecial() bool { return isSpecialScheme(u.Scheme) }

// Parse parses input as a URL, resolving it against base when input is
// not itself an absolute URL, https://url.spec.whatwg.org/#url-parsing.
func Parse(input string, base *URL) (*URL, error) {
	u, err := parseBasic(input, base, nil, stateStart)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ParseRef continues parsing input into an already partially
// populated URL starting from a given state, supporting the
// state-override entry points used by URL setters
// (https://url.spec.whatwg.org/#url-setters that delegate back into
// the basic parser with a stateOverride).
func ParseRef(u *URL, input string, base *URL, state parserState) error {
	_, err := parseBasic(input, base, u, state)
	return err
}

// Serialize implements https://url.spec.whatwg.org/#url-serializing.
func (u *URL) Serialize(excludeFragment bool) string {
	var sb strings.Builder
	sb.WriteString(u.Scheme)
	sb.WriteByte(':')

	if u.HasHost {
		sb.WriteString("//")
		if u.IncludesCredentials() {
			sb.WriteString(percentEncode(u.Username, userinfoPercentEncodeSet, false))
			if u.Password != "" {
				sb.WriteByte(':')
				sb.WriteString(percentEncode(u.Password, userinfoPercentEncodeSet, false))
			}
			sb.WriteByte('@')
		}
		sb.WriteString(serializeHost(u.Host))
		if u.Port != nil {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(int(*u.Port)))
		}
	} else if !u.OpaquePath && len(u.Path) > 1 && u.Path[0] == "" {
		sb.WriteString("/.")
	}

	sb.WriteString(u.SerializePath())

	if u.Query != nil {
		sb.WriteByte('?')
		sb.WriteString(*u.Query)
	}
	if !excludeFragment && u.Fragment != nil {
		sb.WriteByte('#')
		sb.WriteString(*u.Fragment)
	}
	return sb.String()
}

// SerializePath implements the path-serializing half of
// https://url.spec.whatwg.org/#url-path-serializer.
func (u *URL) SerializePath() string {
	if u.OpaquePath {
		return u.Opaque
	}
	if len(u.Path) == 0 {
		return ""
	}
	return "/" + strings.Join(u.Path, "/")
}

func (u *URL) String() string { return u.Serialize(false) }

// shorteningPath removes the last path segment, used by the ".."
// path-segment handling in the Path state
// (https://url.spec.whatwg.org/#shorten-a-urls-path).
func (u *URL) shortenPath() {
	if u.OpaquePath || len(u.Path) == 0 {
		return
	}
	if u.Scheme == "file" && len(u.Path) == 1 && isNormalizedWindowsDriveLetter(u.Path[0]) {
		return
	}
	u.Path = u.Path[:len(u.Path)-1]
}

func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && s[1] == ':'
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSingleDotPathSegment(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDotPathSegment(s string) bool {
	switch strings.ToLower(s) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	}
	return false
}
