package htmltree

import (
	"strings"

	"github.com/kauri-engine/kauri/htmldom"
	"github.com/kauri-engine/kauri/htmltok"
)

// quirksModePublicIDPrefixes lists the doctype public-identifier prefixes
// that force quirks mode, per
// https://html.spec.whatwg.org/multipage/parsing.html#the-initial-insertion-mode.
var quirksModePublicIDPrefixes = []string{
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

var quirksModeExactPublicIDs = []string{
	"-//w3o//dtd w3 html strict 3.0//en//",
	"-/w3c/dtd html 4.0 transitional/en",
	"html",
}

var limitedQuirksPublicIDPrefixes = []string{
	"-//w3c//dtd xhtml 1.0 frameset//",
	"-//w3c//dtd xhtml 1.0 transitional//",
}

var limitedQuirksWithSystemIDPublicIDPrefixes = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

const quirksModeSystemID = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"

// quirksMode implements the doctype-driven quirks-mode classification of
// spec.md §4.5, grounded on the WHATWG "initial insertion mode" table; the
// teacher's own `chtml/html/doctype.go` parses the same fields from a raw
// string, but our tokenizer already structures them so no re-parsing is
// needed here.
func quirksMode(tok htmltok.Token) htmldom.QuirksMode {
	if tok.ForceQuirks {
		return htmldom.Quirks
	}
	if tok.Name != "html" {
		return htmldom.Quirks
	}
	pub := strings.ToLower(tok.PublicID)
	sys := strings.ToLower(tok.SystemID)

	for _, p := range quirksModeExactPublicIDs {
		if pub == p {
			return htmldom.Quirks
		}
	}
	for _, prefix := range quirksModePublicIDPrefixes {
		if strings.HasPrefix(pub, prefix) {
			return htmldom.Quirks
		}
	}
	if !tok.HasSystemID && (strings.HasPrefix(pub, "-//w3c//dtd html 4.01 frameset//") ||
		strings.HasPrefix(pub, "-//w3c//dtd html 4.01 transitional//")) {
		return htmldom.Quirks
	}
	if sys == quirksModeSystemID {
		return htmldom.Quirks
	}

	for _, prefix := range limitedQuirksPublicIDPrefixes {
		if strings.HasPrefix(pub, prefix) {
			return htmldom.LimitedQuirks
		}
	}
	if tok.HasSystemID {
		for _, prefix := range limitedQuirksWithSystemIDPublicIDPrefixes {
			if strings.HasPrefix(pub, prefix) {
				return htmldom.LimitedQuirks
			}
		}
	}

	return htmldom.NoQuirks
}
