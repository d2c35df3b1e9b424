package charref

// entry is one row of the named character reference table: a name (the
// text following '&', NOT including the '&' itself or any trailing ';'),
// plus the one or two code points it decodes to. charref.go's init
// registers every row under its name with ';' appended.
type entry struct {
	name        string
	first       int32
	second      int32 // 0 if there is no second code point
	hasSemi     bool  // true if the reference is valid with a trailing ';'
	noSemiAlias bool  // true if this is also valid (by the HTML5 legacy list) without ';'
}

// table holds the HTML 4 / XHTML named character reference set in full,
// including every legacy (semicolon-optional) name, generated in the same
// sorted-constant-table style as golang.org/x/text's table.go files.
// tableSupplement, in its own file, adds the HTML5-only names on top of
// this set; see DESIGN.md for what the combined tables still omit.
var table = []entry{
	{"AElig", 0x00C6, 0, true, true},
	{"AMP", 0x0026, 0, true, true},
	{"Aacute", 0x00C1, 0, true, true},
	{"Acirc", 0x00C2, 0, true, true},
	{"Agrave", 0x00C0, 0, true, true},
	{"Alpha", 0x0391, 0, true, false},
	{"Aring", 0x00C5, 0, true, true},
	{"Atilde", 0x00C3, 0, true, true},
	{"Auml", 0x00C4, 0, true, true},
	{"Beta", 0x0392, 0, true, false},
	{"COPY", 0x00A9, 0, true, true},
	{"Ccedil", 0x00C7, 0, true, true},
	{"Chi", 0x03A7, 0, true, false},
	{"Dagger", 0x2021, 0, true, false},
	{"Delta", 0x0394, 0, true, false},
	{"ETH", 0x00D0, 0, true, true},
	{"Eacute", 0x00C9, 0, true, true},
	{"Ecirc", 0x00CA, 0, true, true},
	{"Egrave", 0x00C8, 0, true, true},
	{"Epsilon", 0x0395, 0, true, false},
	{"Eta", 0x0397, 0, true, false},
	{"Euml", 0x00CB, 0, true, true},
	{"Gamma", 0x0393, 0, true, false},
	{"GT", 0x003E, 0, true, true},
	{"Iacute", 0x00CD, 0, true, true},
	{"Icirc", 0x00CE, 0, true, true},
	{"Igrave", 0x00CC, 0, true, true},
	{"Iota", 0x0399, 0, true, false},
	{"Iuml", 0x00CF, 0, true, true},
	{"Kappa", 0x039A, 0, true, false},
	{"LT", 0x003C, 0, true, true},
	{"Lambda", 0x039B, 0, true, false},
	{"Mu", 0x039C, 0, true, false},
	{"Ntilde", 0x00D1, 0, true, true},
	{"Nu", 0x039D, 0, true, false},
	{"OElig", 0x0152, 0, true, false},
	{"Oacute", 0x00D3, 0, true, true},
	{"Ocirc", 0x00D4, 0, true, true},
	{"Ograve", 0x00D2, 0, true, true},
	{"Omega", 0x03A9, 0, true, false},
	{"Omicron", 0x039F, 0, true, false},
	{"Oslash", 0x00D8, 0, true, true},
	{"Otilde", 0x00D5, 0, true, true},
	{"Ouml", 0x00D6, 0, true, true},
	{"Phi", 0x03A6, 0, true, false},
	{"Pi", 0x03A0, 0, true, false},
	{"Prime", 0x2033, 0, true, false},
	{"Psi", 0x03A8, 0, true, false},
	{"QUOT", 0x0022, 0, true, true},
	{"REG", 0x00AE, 0, true, true},
	{"Rho", 0x03A1, 0, true, false},
	{"Sigma", 0x03A3, 0, true, false},
	{"THORN", 0x00DE, 0, true, true},
	{"Tau", 0x03A4, 0, true, false},
	{"Theta", 0x0398, 0, true, false},
	{"Uacute", 0x00DA, 0, true, true},
	{"Ucirc", 0x00DB, 0, true, true},
	{"Ugrave", 0x00D9, 0, true, true},
	{"Upsilon", 0x03A5, 0, true, false},
	{"Uuml", 0x00DC, 0, true, true},
	{"Xi", 0x039E, 0, true, false},
	{"Yacute", 0x00DD, 0, true, true},
	{"Zeta", 0x0396, 0, true, false},
	{"aacute", 0x00E1, 0, true, true},
	{"acirc", 0x00E2, 0, true, true},
	{"acute", 0x00B4, 0, true, true},
	{"aelig", 0x00E6, 0, true, true},
	{"agrave", 0x00E0, 0, true, true},
	{"alefsym", 0x2135, 0, true, false},
	{"alpha", 0x03B1, 0, true, false},
	{"amp", 0x0026, 0, true, true},
	{"and", 0x2227, 0, true, false},
	{"ang", 0x2220, 0, true, false},
	{"apos", 0x0027, 0, true, false},
	{"aring", 0x00E5, 0, true, true},
	{"asymp", 0x2248, 0, true, false},
	{"atilde", 0x00E3, 0, true, true},
	{"auml", 0x00E4, 0, true, true},
	{"bdquo", 0x201E, 0, true, false},
	{"beta", 0x03B2, 0, true, false},
	{"brvbar", 0x00A6, 0, true, true},
	{"bull", 0x2022, 0, true, false},
	{"cap", 0x2229, 0, true, false},
	{"ccedil", 0x00E7, 0, true, true},
	{"cedil", 0x00B8, 0, true, true},
	{"cent", 0x00A2, 0, true, true},
	{"chi", 0x03C7, 0, true, false},
	{"circ", 0x02C6, 0, true, false},
	{"clubs", 0x2663, 0, true, false},
	{"cong", 0x2245, 0, true, false},
	{"copy", 0x00A9, 0, true, true},
	{"crarr", 0x21B5, 0, true, false},
	{"cup", 0x222A, 0, true, false},
	{"curren", 0x00A4, 0, true, true},
	{"dArr", 0x21D3, 0, true, false},
	{"dagger", 0x2020, 0, true, false},
	{"darr", 0x2193, 0, true, false},
	{"deg", 0x00B0, 0, true, true},
	{"delta", 0x03B4, 0, true, false},
	{"diams", 0x2666, 0, true, false},
	{"divide", 0x00F7, 0, true, true},
	{"eacute", 0x00E9, 0, true, true},
	{"ecirc", 0x00EA, 0, true, true},
	{"egrave", 0x00E8, 0, true, true},
	{"empty", 0x2205, 0, true, false},
	{"emsp", 0x2003, 0, true, false},
	{"ensp", 0x2002, 0, true, false},
	{"epsilon", 0x03B5, 0, true, false},
	{"equiv", 0x2261, 0, true, false},
	{"eta", 0x03B7, 0, true, false},
	{"eth", 0x00F0, 0, true, true},
	{"euml", 0x00EB, 0, true, true},
	{"euro", 0x20AC, 0, true, false},
	{"exist", 0x2203, 0, true, false},
	{"fnof", 0x0192, 0, true, false},
	{"forall", 0x2200, 0, true, false},
	{"frac12", 0x00BD, 0, true, true},
	{"frac14", 0x00BC, 0, true, true},
	{"frac34", 0x00BE, 0, true, true},
	{"frasl", 0x2044, 0, true, false},
	{"gamma", 0x03B3, 0, true, false},
	{"ge", 0x2265, 0, true, false},
	{"gt", 0x003E, 0, true, true},
	{"hArr", 0x21D4, 0, true, false},
	{"harr", 0x2194, 0, true, false},
	{"hearts", 0x2665, 0, true, false},
	{"hellip", 0x2026, 0, true, false},
	{"iacute", 0x00ED, 0, true, true},
	{"icirc", 0x00EE, 0, true, true},
	{"iexcl", 0x00A1, 0, true, true},
	{"igrave", 0x00EC, 0, true, true},
	{"image", 0x2111, 0, true, false},
	{"infin", 0x221E, 0, true, false},
	{"int", 0x222B, 0, true, false},
	{"iota", 0x03B9, 0, true, false},
	{"iquest", 0x00BF, 0, true, true},
	{"isin", 0x2208, 0, true, false},
	{"iuml", 0x00EF, 0, true, true},
	{"kappa", 0x03BA, 0, true, false},
	{"lArr", 0x21D0, 0, true, false},
	{"lambda", 0x03BB, 0, true, false},
	{"lang", 0x27E8, 0, true, false},
	{"laquo", 0x00AB, 0, true, true},
	{"larr", 0x2190, 0, true, false},
	{"lceil", 0x2308, 0, true, false},
	{"ldquo", 0x201C, 0, true, false},
	{"le", 0x2264, 0, true, false},
	{"lfloor", 0x230A, 0, true, false},
	{"lowast", 0x2217, 0, true, false},
	{"loz", 0x25CA, 0, true, false},
	{"lrm", 0x200E, 0, true, false},
	{"lsaquo", 0x2039, 0, true, false},
	{"lsquo", 0x2018, 0, true, false},
	{"lt", 0x003C, 0, true, true},
	{"macr", 0x00AF, 0, true, true},
	{"mdash", 0x2014, 0, true, false},
	{"micro", 0x00B5, 0, true, true},
	{"middot", 0x00B7, 0, true, true},
	{"minus", 0x2212, 0, true, false},
	{"mu", 0x03BC, 0, true, false},
	{"nabla", 0x2207, 0, true, false},
	{"nbsp", 0x00A0, 0, true, true},
	{"ndash", 0x2013, 0, true, false},
	{"ne", 0x2260, 0, true, false},
	{"ni", 0x220B, 0, true, false},
	{"not", 0x00AC, 0, true, true},
	{"notin", 0x2209, 0, true, false},
	{"nsub", 0x2284, 0, true, false},
	{"ntilde", 0x00F1, 0, true, true},
	{"nu", 0x03BD, 0, true, false},
	{"oacute", 0x00F3, 0, true, true},
	{"ocirc", 0x00F4, 0, true, true},
	{"oelig", 0x0153, 0, true, false},
	{"ograve", 0x00F2, 0, true, true},
	{"oline", 0x203E, 0, true, false},
	{"omega", 0x03C9, 0, true, false},
	{"omicron", 0x03BF, 0, true, false},
	{"oplus", 0x2295, 0, true, false},
	{"or", 0x2228, 0, true, false},
	{"ordf", 0x00AA, 0, true, true},
	{"ordm", 0x00BA, 0, true, true},
	{"oslash", 0x00F8, 0, true, true},
	{"otilde", 0x00F5, 0, true, true},
	{"otimes", 0x2297, 0, true, false},
	{"ouml", 0x00F6, 0, true, true},
	{"para", 0x00B6, 0, true, true},
	{"part", 0x2202, 0, true, false},
	{"permil", 0x2030, 0, true, false},
	{"perp", 0x22A5, 0, true, false},
	{"phi", 0x03C6, 0, true, false},
	{"pi", 0x03C0, 0, true, false},
	{"piv", 0x03D6, 0, true, false},
	{"plusmn", 0x00B1, 0, true, true},
	{"pound", 0x00A3, 0, true, true},
	{"prime", 0x2032, 0, true, false},
	{"prod", 0x220F, 0, true, false},
	{"prop", 0x221D, 0, true, false},
	{"psi", 0x03C8, 0, true, false},
	{"quot", 0x0022, 0, true, true},
	{"rArr", 0x21D2, 0, true, false},
	{"radic", 0x221A, 0, true, false},
	{"rang", 0x27E9, 0, true, false},
	{"raquo", 0x00BB, 0, true, true},
	{"rarr", 0x2192, 0, true, false},
	{"rceil", 0x2309, 0, true, false},
	{"rdquo", 0x201D, 0, true, false},
	{"real", 0x211C, 0, true, false},
	{"reg", 0x00AE, 0, true, true},
	{"rfloor", 0x230B, 0, true, false},
	{"rho", 0x03C1, 0, true, false},
	{"rlm", 0x200F, 0, true, false},
	{"rsaquo", 0x203A, 0, true, false},
	{"rsquo", 0x2019, 0, true, false},
	{"sbquo", 0x201A, 0, true, false},
	{"scaron", 0x0161, 0, true, false},
	{"sdot", 0x22C5, 0, true, false},
	{"sect", 0x00A7, 0, true, true},
	{"shy", 0x00AD, 0, true, true},
	{"sigma", 0x03C3, 0, true, false},
	{"sigmaf", 0x03C2, 0, true, false},
	{"sim", 0x223C, 0, true, false},
	{"spades", 0x2660, 0, true, false},
	{"sub", 0x2282, 0, true, false},
	{"sube", 0x2286, 0, true, false},
	{"sum", 0x2211, 0, true, false},
	{"sup", 0x2283, 0, true, false},
	{"sup1", 0x00B9, 0, true, true},
	{"sup2", 0x00B2, 0, true, true},
	{"sup3", 0x00B3, 0, true, true},
	{"supe", 0x2287, 0, true, false},
	{"szlig", 0x00DF, 0, true, true},
	{"tau", 0x03C4, 0, true, false},
	{"there4", 0x2234, 0, true, false},
	{"theta", 0x03B8, 0, true, false},
	{"thetasym", 0x03D1, 0, true, false},
	{"thinsp", 0x2009, 0, true, false},
	{"thorn", 0x00FE, 0, true, true},
	{"tilde", 0x02DC, 0, true, false},
	{"times", 0x00D7, 0, true, true},
	{"trade", 0x2122, 0, true, false},
	{"uArr", 0x21D1, 0, true, false},
	{"uacute", 0x00FA, 0, true, true},
	{"uarr", 0x2191, 0, true, false},
	{"ucirc", 0x00FB, 0, true, true},
	{"ugrave", 0x00F9, 0, true, true},
	{"uml", 0x00A8, 0, true, true},
	{"upsih", 0x03D2, 0, true, false},
	{"upsilon", 0x03C5, 0, true, false},
	{"uuml", 0x00FC, 0, true, true},
	{"weierp", 0x2118, 0, true, false},
	{"xi", 0x03BE, 0, true, false},
	{"yacute", 0x00FD, 0, true, true},
	{"yen", 0x00A5, 0, true, true},
	{"yuml", 0x00FF, 0, true, true},
	{"zeta", 0x03B6, 0, true, false},
	{"zwj", 0x200D, 0, true, false},
	{"zwnj", 0x200C, 0, true, false},
}

// maxNameLen is the length of the longest name across table and
// tableSupplement (including ';'), computed once at init so neither
// table ever has to be kept in sync with it by hand.
var maxNameLen = func() int {
	max := 0
	for _, src := range [][]entry{table, tableSupplement} {
		for _, e := range src {
			if len(e.name) > max {
				max = len(e.name)
			}
		}
	}
	return max
}()
