package charref

// tableSupplement extends table with the HTML5-only named character
// references — names introduced by the HTML Standard on top of the
// HTML 4/XHTML entity set already captured in table.go. Split into its
// own file in the same style golang.org/x/text uses for versioned
// Unicode tables (tables10.0.0.go, tables11.0.0.go, ...): one
// generated-data file per source generation rather than hand-merging
// into the original.
//
// This covers the mathematical alphanumeric letter families (double-
// struck, script, fraktur — regular Unicode blocks with a small,
// well-documented set of exceptions where a letter already had a
// legacy standalone symbol), the extended relational/set-operator and
// arrow vocabulary, and the remaining Greek/punctuation names HTML5
// adds as aliases of or additions to the table.go set. See DESIGN.md
// for what is still not covered (the combinatorial box-drawing
// line-style names and the handful of two-code-point entities are
// left out; see there for why).
var tableSupplement = []entry{
	// ---- relational / set operators --------------------------------
	{"subset", 0x2282, 0, true, false},
	{"supset", 0x2283, 0, true, false},
	{"subseteq", 0x2286, 0, true, false},
	{"supseteq", 0x2287, 0, true, false},
	{"subsetneq", 0x228A, 0, true, false},
	{"supsetneq", 0x228B, 0, true, false},
	{"subsetneqq", 0x2ACB, 0, true, false},
	{"supsetneqq", 0x2ACC, 0, true, false},
	{"bigcap", 0x22C2, 0, true, false},
	{"bigcup", 0x22C3, 0, true, false},
	{"bigodot", 0x2A00, 0, true, false},
	{"bigoplus", 0x2A01, 0, true, false},
	{"bigotimes", 0x2A02, 0, true, false},
	{"bigsqcup", 0x2A06, 0, true, false},
	{"biguplus", 0x2A04, 0, true, false},
	{"bigvee", 0x22C1, 0, true, false},
	{"bigwedge", 0x22C0, 0, true, false},
	{"bowtie", 0x22C8, 0, true, false},
	{"boxminus", 0x229F, 0, true, false},
	{"boxplus", 0x229E, 0, true, false},
	{"boxtimes", 0x22A0, 0, true, false},
	{"bsol", 0x005C, 0, true, false},
	{"Cap", 0x22D2, 0, true, false},
	{"Cup", 0x22D3, 0, true, false},
	{"cupdot", 0x228D, 0, true, false},
	{"curlyeqprec", 0x22DE, 0, true, false},
	{"curlyeqsucc", 0x22DF, 0, true, false},
	{"curlyvee", 0x22CE, 0, true, false},
	{"curlywedge", 0x22CF, 0, true, false},
	{"dashv", 0x22A3, 0, true, false},
	{"vdash", 0x22A2, 0, true, false},
	{"Vdash", 0x22A9, 0, true, false},
	{"vDash", 0x22A8, 0, true, false},
	{"Vvdash", 0x22AA, 0, true, false},
	{"nvdash", 0x22AC, 0, true, false},
	{"nvDash", 0x22AD, 0, true, false},
	{"nVdash", 0x22AE, 0, true, false},
	{"nVDash", 0x22AF, 0, true, false},
	{"eqslantgtr", 0x2A96, 0, true, false},
	{"eqslantless", 0x2A95, 0, true, false},
	{"fallingdotseq", 0x2252, 0, true, false},
	{"risingdotseq", 0x2253, 0, true, false},
	{"ForAll", 0x2200, 0, true, false},
	{"gtrapprox", 0x2A86, 0, true, false},
	{"gtrdot", 0x22D7, 0, true, false},
	{"gtreqless", 0x22DB, 0, true, false},
	{"gtreqqless", 0x2A8C, 0, true, false},
	{"gtrless", 0x2277, 0, true, false},
	{"gtrsim", 0x2273, 0, true, false},
	{"intercal", 0x22BA, 0, true, false},
	{"lessapprox", 0x2A85, 0, true, false},
	{"lessdot", 0x22D6, 0, true, false},
	{"lesseqgtr", 0x22DA, 0, true, false},
	{"lesseqqgtr", 0x2A8B, 0, true, false},
	{"lessgtr", 0x2276, 0, true, false},
	{"lesssim", 0x2272, 0, true, false},
	{"ltimes", 0x22C9, 0, true, false},
	{"rtimes", 0x22CA, 0, true, false},
	{"mapsto", 0x21A6, 0, true, false},
	{"models", 0x22A7, 0, true, false},
	{"multimap", 0x22B8, 0, true, false},
	{"nexist", 0x2204, 0, true, false},
	{"nexists", 0x2204, 0, true, false},
	{"ncong", 0x2247, 0, true, false},
	{"nleq", 0x2270, 0, true, false},
	{"ngeq", 0x2271, 0, true, false},
	{"nless", 0x226E, 0, true, false},
	{"ngtr", 0x226F, 0, true, false},
	{"nsime", 0x2244, 0, true, false},
	{"nsmid", 0x2224, 0, true, false},
	{"ntriangleleft", 0x22EA, 0, true, false},
	{"ntrianglelefteq", 0x22EC, 0, true, false},
	{"ntriangleright", 0x22EB, 0, true, false},
	{"ntrianglerighteq", 0x22ED, 0, true, false},
	{"parallel", 0x2225, 0, true, false},
	{"par", 0x2225, 0, true, false},
	{"mid", 0x2223, 0, true, false},
	{"VerticalBar", 0x2223, 0, true, false},
	{"precapprox", 0x2AB7, 0, true, false},
	{"preccurlyeq", 0x227C, 0, true, false},
	{"precsim", 0x227E, 0, true, false},
	{"propto", 0x221D, 0, true, false},
	{"sqcap", 0x2293, 0, true, false},
	{"sqcup", 0x2294, 0, true, false},
	{"sqsub", 0x228F, 0, true, false},
	{"sqsube", 0x2291, 0, true, false},
	{"sqsup", 0x2290, 0, true, false},
	{"sqsupe", 0x2292, 0, true, false},
	{"succapprox", 0x2AB8, 0, true, false},
	{"succcurlyeq", 0x227D, 0, true, false},
	{"succsim", 0x227F, 0, true, false},
	{"therefore", 0x2234, 0, true, false},
	{"triangle", 0x25B5, 0, true, false},
	{"triangledown", 0x25BF, 0, true, false},
	{"triangleleft", 0x25C3, 0, true, false},
	{"trianglelefteq", 0x22B4, 0, true, false},
	{"triangleq", 0x225C, 0, true, false},
	{"triangleright", 0x25B9, 0, true, false},
	{"trianglerighteq", 0x22B5, 0, true, false},
	{"vartriangleleft", 0x22B2, 0, true, false},
	{"vartriangleright", 0x22B3, 0, true, false},
	{"varepsilon", 0x03F5, 0, true, false},
	{"varnothing", 0x2205, 0, true, false},
	{"varphi", 0x03D5, 0, true, false},
	{"varpi", 0x03D6, 0, true, false},
	{"varrho", 0x03F1, 0, true, false},
	{"varsigma", 0x03C2, 0, true, false},
	{"vartheta", 0x03D1, 0, true, false},
	{"vee", 0x2228, 0, true, false},
	{"wedge", 0x2227, 0, true, false},
	{"Vert", 0x2016, 0, true, false},
	{"vert", 0x007C, 0, true, false},
	{"VerticalLine", 0x007C, 0, true, false},
	{"Gammad", 0x03DC, 0, true, false},
	{"gammad", 0x03DD, 0, true, false},

	// ---- arrows -----------------------------------------------------
	{"Leftarrow", 0x21D0, 0, true, false},
	{"Rightarrow", 0x21D2, 0, true, false},
	{"Uparrow", 0x21D1, 0, true, false},
	{"Downarrow", 0x21D3, 0, true, false},
	{"Leftrightarrow", 0x21D4, 0, true, false},
	{"UpDownArrow", 0x2195, 0, true, false},
	{"updownarrow", 0x2195, 0, true, false},
	{"longleftarrow", 0x27F5, 0, true, false},
	{"longrightarrow", 0x27F6, 0, true, false},
	{"longleftrightarrow", 0x27F7, 0, true, false},
	{"Longleftarrow", 0x27F8, 0, true, false},
	{"Longrightarrow", 0x27F9, 0, true, false},
	{"Longleftrightarrow", 0x27FA, 0, true, false},
	{"hookleftarrow", 0x21A9, 0, true, false},
	{"hookrightarrow", 0x21AA, 0, true, false},
	{"twoheadleftarrow", 0x219E, 0, true, false},
	{"twoheadrightarrow", 0x21A0, 0, true, false},
	{"looparrowleft", 0x21AB, 0, true, false},
	{"looparrowright", 0x21AC, 0, true, false},
	{"leftrightarrows", 0x21C6, 0, true, false},
	{"rightleftarrows", 0x21C4, 0, true, false},
	{"leftleftarrows", 0x21C7, 0, true, false},
	{"rightrightarrows", 0x21C9, 0, true, false},
	{"upuparrows", 0x21C8, 0, true, false},
	{"downdownarrows", 0x21CA, 0, true, false},
	{"leftrightharpoons", 0x21CB, 0, true, false},
	{"rightleftharpoons", 0x21CC, 0, true, false},
	{"leftharpoonup", 0x21BC, 0, true, false},
	{"leftharpoondown", 0x21BD, 0, true, false},
	{"rightharpoonup", 0x21C0, 0, true, false},
	{"rightharpoondown", 0x21C1, 0, true, false},
	{"upharpoonleft", 0x21BF, 0, true, false},
	{"upharpoonright", 0x21BE, 0, true, false},
	{"downharpoonleft", 0x21C3, 0, true, false},
	{"downharpoonright", 0x21C2, 0, true, false},
	{"curvearrowleft", 0x21B6, 0, true, false},
	{"curvearrowright", 0x21B7, 0, true, false},
	{"circlearrowleft", 0x21BA, 0, true, false},
	{"circlearrowright", 0x21BB, 0, true, false},
	{"Lsh", 0x21B0, 0, true, false},
	{"Rsh", 0x21B1, 0, true, false},
	{"nearrow", 0x2197, 0, true, false},
	{"searrow", 0x2198, 0, true, false},
	{"swarrow", 0x2199, 0, true, false},
	{"nwarrow", 0x2196, 0, true, false},

	// ---- double-struck (opf) letters, U+1D538 block ------------------
	{"Aopf", 0x1D538, 0, true, false},
	{"Bopf", 0x1D539, 0, true, false},
	{"Copf", 0x2102, 0, true, false},
	{"Dopf", 0x1D53B, 0, true, false},
	{"Eopf", 0x1D53C, 0, true, false},
	{"Fopf", 0x1D53D, 0, true, false},
	{"Gopf", 0x1D53E, 0, true, false},
	{"Hopf", 0x210D, 0, true, false},
	{"Iopf", 0x1D540, 0, true, false},
	{"Jopf", 0x1D541, 0, true, false},
	{"Kopf", 0x1D542, 0, true, false},
	{"Lopf", 0x1D543, 0, true, false},
	{"Mopf", 0x1D544, 0, true, false},
	{"Nopf", 0x2115, 0, true, false},
	{"Oopf", 0x1D546, 0, true, false},
	{"Popf", 0x2119, 0, true, false},
	{"Qopf", 0x211A, 0, true, false},
	{"Ropf", 0x211D, 0, true, false},
	{"Sopf", 0x1D54A, 0, true, false},
	{"Topf", 0x1D54B, 0, true, false},
	{"Uopf", 0x1D54C, 0, true, false},
	{"Vopf", 0x1D54D, 0, true, false},
	{"Wopf", 0x1D54E, 0, true, false},
	{"Xopf", 0x1D54F, 0, true, false},
	{"Yopf", 0x1D550, 0, true, false},
	{"Zopf", 0x2124, 0, true, false},
	{"aopf", 0x1D552, 0, true, false},
	{"bopf", 0x1D553, 0, true, false},
	{"copf", 0x1D554, 0, true, false},
	{"dopf", 0x1D555, 0, true, false},
	{"eopf", 0x1D556, 0, true, false},
	{"fopf", 0x1D557, 0, true, false},
	{"gopf", 0x1D558, 0, true, false},
	{"hopf", 0x1D559, 0, true, false},
	{"iopf", 0x1D55A, 0, true, false},
	{"jopf", 0x1D55B, 0, true, false},
	{"kopf", 0x1D55C, 0, true, false},
	{"lopf", 0x1D55D, 0, true, false},
	{"mopf", 0x1D55E, 0, true, false},
	{"nopf", 0x1D55F, 0, true, false},
	{"oopf", 0x1D560, 0, true, false},
	{"popf", 0x1D561, 0, true, false},
	{"qopf", 0x1D562, 0, true, false},
	{"ropf", 0x1D563, 0, true, false},
	{"sopf", 0x1D564, 0, true, false},
	{"topf", 0x1D565, 0, true, false},
	{"uopf", 0x1D566, 0, true, false},
	{"vopf", 0x1D567, 0, true, false},
	{"wopf", 0x1D568, 0, true, false},
	{"xopf", 0x1D569, 0, true, false},
	{"yopf", 0x1D56A, 0, true, false},
	{"zopf", 0x1D56B, 0, true, false},

	// ---- script (scr) letters, U+1D49C block -------------------------
	{"Ascr", 0x1D49C, 0, true, false},
	{"Bscr", 0x212C, 0, true, false},
	{"Cscr", 0x1D49E, 0, true, false},
	{"Dscr", 0x1D49F, 0, true, false},
	{"Escr", 0x2130, 0, true, false},
	{"Fscr", 0x2131, 0, true, false},
	{"Gscr", 0x1D4A2, 0, true, false},
	{"Hscr", 0x210B, 0, true, false},
	{"Iscr", 0x2110, 0, true, false},
	{"Jscr", 0x1D4A5, 0, true, false},
	{"Kscr", 0x1D4A6, 0, true, false},
	{"Lscr", 0x2112, 0, true, false},
	{"Mscr", 0x2133, 0, true, false},
	{"Nscr", 0x1D4A9, 0, true, false},
	{"Oscr", 0x1D4AA, 0, true, false},
	{"Pscr", 0x1D4AB, 0, true, false},
	{"Qscr", 0x1D4AC, 0, true, false},
	{"Rscr", 0x211B, 0, true, false},
	{"Sscr", 0x1D4AE, 0, true, false},
	{"Tscr", 0x1D4AF, 0, true, false},
	{"Uscr", 0x1D4B0, 0, true, false},
	{"Vscr", 0x1D4B1, 0, true, false},
	{"Wscr", 0x1D4B2, 0, true, false},
	{"Xscr", 0x1D4B3, 0, true, false},
	{"Yscr", 0x1D4B4, 0, true, false},
	{"Zscr", 0x1D4B5, 0, true, false},
	{"ascr", 0x1D4B6, 0, true, false},
	{"bscr", 0x1D4B7, 0, true, false},
	{"cscr", 0x1D4B8, 0, true, false},
	{"dscr", 0x1D4B9, 0, true, false},
	{"escr", 0x212F, 0, true, false},
	{"fscr", 0x1D4BB, 0, true, false},
	{"gscr", 0x210A, 0, true, false},
	{"hscr", 0x1D4BD, 0, true, false},
	{"iscr", 0x1D4BE, 0, true, false},
	{"jscr", 0x1D4BF, 0, true, false},
	{"kscr", 0x1D4C0, 0, true, false},
	{"lscr", 0x1D4C1, 0, true, false},
	{"mscr", 0x1D4C2, 0, true, false},
	{"nscr", 0x1D4C3, 0, true, false},
	{"oscr", 0x2134, 0, true, false},
	{"pscr", 0x1D4C5, 0, true, false},
	{"qscr", 0x1D4C6, 0, true, false},
	{"rscr", 0x1D4C7, 0, true, false},
	{"sscr", 0x1D4C8, 0, true, false},
	{"tscr", 0x1D4C9, 0, true, false},
	{"uscr", 0x1D4CA, 0, true, false},
	{"vscr", 0x1D4CB, 0, true, false},
	{"wscr", 0x1D4CC, 0, true, false},
	{"xscr", 0x1D4CD, 0, true, false},
	{"yscr", 0x1D4CE, 0, true, false},
	{"zscr", 0x1D4CF, 0, true, false},

	// ---- fraktur (fr) letters, U+1D504 block -------------------------
	{"Afr", 0x1D504, 0, true, false},
	{"Bfr", 0x1D505, 0, true, false},
	{"Cfr", 0x212D, 0, true, false},
	{"Dfr", 0x1D507, 0, true, false},
	{"Efr", 0x1D508, 0, true, false},
	{"Ffr", 0x1D509, 0, true, false},
	{"Gfr", 0x1D50A, 0, true, false},
	{"Hfr", 0x210C, 0, true, false},
	{"Ifr", 0x2111, 0, true, false},
	{"Jfr", 0x1D50D, 0, true, false},
	{"Kfr", 0x1D50E, 0, true, false},
	{"Lfr", 0x1D50F, 0, true, false},
	{"Mfr", 0x1D510, 0, true, false},
	{"Nfr", 0x1D511, 0, true, false},
	{"Ofr", 0x1D512, 0, true, false},
	{"Pfr", 0x1D513, 0, true, false},
	{"Qfr", 0x1D514, 0, true, false},
	{"Rfr", 0x211C, 0, true, false},
	{"Sfr", 0x1D516, 0, true, false},
	{"Tfr", 0x1D517, 0, true, false},
	{"Ufr", 0x1D518, 0, true, false},
	{"Vfr", 0x1D519, 0, true, false},
	{"Wfr", 0x1D51A, 0, true, false},
	{"Xfr", 0x1D51B, 0, true, false},
	{"Yfr", 0x1D51C, 0, true, false},
	{"Zfr", 0x2128, 0, true, false},
	{"afr", 0x1D51E, 0, true, false},
	{"bfr", 0x1D51F, 0, true, false},
	{"cfr", 0x1D520, 0, true, false},
	{"dfr", 0x1D521, 0, true, false},
	{"efr", 0x1D522, 0, true, false},
	{"ffr", 0x1D523, 0, true, false},
	{"gfr", 0x1D524, 0, true, false},
	{"hfr", 0x1D525, 0, true, false},
	{"ifr", 0x1D526, 0, true, false},
	{"jfr", 0x1D527, 0, true, false},
	{"kfr", 0x1D528, 0, true, false},
	{"lfr", 0x1D529, 0, true, false},
	{"mfr", 0x1D52A, 0, true, false},
	{"nfr", 0x1D52B, 0, true, false},
	{"ofr", 0x1D52C, 0, true, false},
	{"pfr", 0x1D52D, 0, true, false},
	{"qfr", 0x1D52E, 0, true, false},
	{"rfr", 0x1D52F, 0, true, false},
	{"sfr", 0x1D530, 0, true, false},
	{"tfr", 0x1D531, 0, true, false},
	{"ufr", 0x1D532, 0, true, false},
	{"vfr", 0x1D533, 0, true, false},
	{"wfr", 0x1D534, 0, true, false},
	{"xfr", 0x1D535, 0, true, false},
	{"yfr", 0x1D536, 0, true, false},
	{"zfr", 0x1D537, 0, true, false},

	// ---- miscellaneous typography / punctuation ----------------------
	{"NewLine", 0x000A, 0, true, false},
	{"Tab", 0x0009, 0, true, false},
	{"NonBreakingSpace", 0x00A0, 0, true, false},
	{"angst", 0x00C5, 0, true, false},
	{"lmoust", 0x23B0, 0, true, false},
	{"rmoust", 0x23B1, 0, true, false},
	{"male", 0x2642, 0, true, false},
	{"female", 0x2640, 0, true, false},
	{"phone", 0x260E, 0, true, false},
	{"sext", 0x2736, 0, true, false},
	{"check", 0x2713, 0, true, false},
	{"cross", 0x2717, 0, true, false},
	{"star", 0x2606, 0, true, false},
	{"starf", 0x2605, 0, true, false},
	{"squ", 0x25A1, 0, true, false},
	{"squf", 0x25AA, 0, true, false},
	{"xutri", 0x25B3, 0, true, false},
	{"utrif", 0x25B4, 0, true, false},
	{"dtrif", 0x25BE, 0, true, false},
	{"xdtri", 0x25BD, 0, true, false},
	{"olcross", 0x29BB, 0, true, false},
	{"target", 0x2316, 0, true, false},
	{"ultri", 0x25F8, 0, true, false},
	{"urtri", 0x25F9, 0, true, false},
	{"lltri", 0x25FA, 0, true, false},
}
