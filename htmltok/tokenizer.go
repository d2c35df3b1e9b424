package htmltok

import (
	"strings"

	"github.com/kauri-engine/kauri/charref"
	"github.com/kauri-engine/kauri/runeutil"
)

// State names the ~80 named states of the WHATWG tokenization state
// machine (spec.md §4.4). One method on Tokenizer implements each state,
// matching the "one function per state" shape spec.md §9 asks for.
type State int

const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState
	TagOpenState
	EndTagOpenState
	TagNameState
	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState
	RAWTEXTLessThanSignState
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState
	DoctypeState
	BeforeDoctypeNameState
	DoctypeNameState
	AfterDoctypeNameState
	AfterDoctypePublicKeywordState
	BeforeDoctypePublicIdentifierState
	DoctypePublicIdentifierDoubleQuotedState
	DoctypePublicIdentifierSingleQuotedState
	AfterDoctypePublicIdentifierState
	BetweenDoctypePublicAndSystemIdentifiersState
	AfterDoctypeSystemKeywordState
	BeforeDoctypeSystemIdentifierState
	DoctypeSystemIdentifierDoubleQuotedState
	DoctypeSystemIdentifierSingleQuotedState
	AfterDoctypeSystemIdentifierState
	BogusDoctypeState
	CDATASectionState
	CDATASectionBracketState
	CDATASectionEndState
	CharacterReferenceState
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	NumericCharacterReferenceStartState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState
)

const eof int32 = -1

// Tokenizer implements the WHATWG HTML tokenization state machine over an
// in-memory UTF-8 byte view, grounded on original_source/html2/tokenizer.cpp.
type Tokenizer struct {
	runes []int32
	pos   int

	state       State
	returnState State

	onEmit  func(Token)
	onError func(ParseError, Position)

	curTag       Token
	curAttrName  strings.Builder
	curAttrValue strings.Builder
	haveCurAttr  bool

	curDoctype Token
	curComment strings.Builder

	tempBuffer strings.Builder

	lastStartTagName string

	charRefCode      int32
	charRefAttrTaste bool // whether the return state is an attribute-value state

	// AllowCDATA lets the tree constructor declare that the tokenizer is
	// currently positioned inside foreign (SVG/MathML) content, per
	// spec.md's note that markup-declaration-open's "[CDATA[" handling
	// depends on tree-construction context the tokenizer alone doesn't
	// have. Defaults to false (HTML content), matching the common case.
	AllowCDATA bool
}

// New constructs a Tokenizer positioned in the Data state. Input is not
// newline-normalized: U+000D is tokenized like any other character, and
// only U+000A starts a new line in reported Positions.
func New(input []byte, onEmit func(Token), onError func(ParseError, Position)) *Tokenizer {
	var runes []int32
	it := runeutil.NewCodePointIter(input)
	for {
		cp, _, ok := it.Next()
		if !ok {
			break
		}
		runes = append(runes, cp)
	}
	if onError == nil {
		onError = func(ParseError, Position) {}
	}
	return &Tokenizer{runes: runes, state: DataState, onEmit: onEmit, onError: onError}
}

// SetState forces a state transition; the tree constructor calls this to
// switch to Rcdata/Rawtext/ScriptData/Plaintext when it opens the
// corresponding element, per spec.md §4.4 "mode switches".
func (t *Tokenizer) SetState(s State) { t.state = s }

// SetLastStartTagName records the name used by the "appropriate end tag"
// test; the tree constructor sets this from the element it just opened in
// Rcdata/Rawtext/ScriptData, matching the tokenizer's need to know the
// most recently *emitted* start tag even across tree-constructor re-entry.
func (t *Tokenizer) SetLastStartTagName(name string) { t.lastStartTagName = name }

func (t *Tokenizer) positionAt(pos int) Position {
	line, col := 1, 1
	for i := 0; i < pos && i < len(t.runes); i++ {
		if t.runes[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col}
}

func (t *Tokenizer) emitError(e ParseError) {
	t.onError(e, t.positionAt(t.pos))
}

func (t *Tokenizer) peekAt(n int) int32 {
	i := t.pos + n
	if i < 0 || i >= len(t.runes) {
		return eof
	}
	return t.runes[i]
}

func (t *Tokenizer) peek() int32 { return t.peekAt(0) }

func (t *Tokenizer) consume() int32 {
	c := t.peek()
	if c != eof {
		t.pos++
	}
	return c
}

func (t *Tokenizer) reconsume() { t.pos-- }

func (t *Tokenizer) startsWithCaseInsensitive(s string) bool {
	for i, want := range s {
		c := t.peekAt(i)
		if c == eof {
			return false
		}
		if c != want && !(runeutil.IsASCIIAlpha(c) && (c|0x20) == (want|0x20)) {
			return false
		}
	}
	return true
}

// Run drives the state machine to completion, emitting tokens to onEmit
// until an EndOfFile token is produced.
func (t *Tokenizer) Run() {
	for {
		done := t.step()
		if done {
			return
		}
	}
}

// step executes a single state's logic and returns true once EndOfFile has
// been emitted.
func (t *Tokenizer) step() bool {
	switch t.state {
	case DataState:
		return t.dataState()
	case RCDATAState:
		return t.rcdataState()
	case RAWTEXTState:
		return t.rawtextState()
	case ScriptDataState:
		return t.scriptDataState()
	case PLAINTEXTState:
		return t.plaintextState()
	case TagOpenState:
		return t.tagOpenState()
	case EndTagOpenState:
		return t.endTagOpenState()
	case TagNameState:
		return t.tagNameState()
	case RCDATALessThanSignState:
		return t.rcdataLessThanSignState()
	case RCDATAEndTagOpenState:
		return t.rcdataEndTagOpenState()
	case RCDATAEndTagNameState:
		return t.rcdataEndTagNameState()
	case RAWTEXTLessThanSignState:
		return t.rawtextLessThanSignState()
	case RAWTEXTEndTagOpenState:
		return t.rawtextEndTagOpenState()
	case RAWTEXTEndTagNameState:
		return t.rawtextEndTagNameState()
	case ScriptDataLessThanSignState:
		return t.scriptDataLessThanSignState()
	case ScriptDataEndTagOpenState:
		return t.scriptDataEndTagOpenState()
	case ScriptDataEndTagNameState:
		return t.scriptDataEndTagNameState()
	case ScriptDataEscapeStartState:
		return t.scriptDataEscapeStartState()
	case ScriptDataEscapeStartDashState:
		return t.scriptDataEscapeStartDashState()
	case ScriptDataEscapedState:
		return t.scriptDataEscapedState()
	case ScriptDataEscapedDashState:
		return t.scriptDataEscapedDashState()
	case ScriptDataEscapedDashDashState:
		return t.scriptDataEscapedDashDashState()
	case ScriptDataEscapedLessThanSignState:
		return t.scriptDataEscapedLessThanSignState()
	case ScriptDataEscapedEndTagOpenState:
		return t.scriptDataEscapedEndTagOpenState()
	case ScriptDataEscapedEndTagNameState:
		return t.scriptDataEscapedEndTagNameState()
	case ScriptDataDoubleEscapeStartState:
		return t.scriptDataDoubleEscapeStartState()
	case ScriptDataDoubleEscapedState:
		return t.scriptDataDoubleEscapedState()
	case ScriptDataDoubleEscapedDashState:
		return t.scriptDataDoubleEscapedDashState()
	case ScriptDataDoubleEscapedDashDashState:
		return t.scriptDataDoubleEscapedDashDashState()
	case ScriptDataDoubleEscapedLessThanSignState:
		return t.scriptDataDoubleEscapedLessThanSignState()
	case ScriptDataDoubleEscapeEndState:
		return t.scriptDataDoubleEscapeEndState()
	case BeforeAttributeNameState:
		return t.beforeAttributeNameState()
	case AttributeNameState:
		return t.attributeNameState()
	case AfterAttributeNameState:
		return t.afterAttributeNameState()
	case BeforeAttributeValueState:
		return t.beforeAttributeValueState()
	case AttributeValueDoubleQuotedState:
		return t.attributeValueQuotedState('"')
	case AttributeValueSingleQuotedState:
		return t.attributeValueQuotedState('\'')
	case AttributeValueUnquotedState:
		return t.attributeValueUnquotedState()
	case AfterAttributeValueQuotedState:
		return t.afterAttributeValueQuotedState()
	case SelfClosingStartTagState:
		return t.selfClosingStartTagState()
	case BogusCommentState:
		return t.bogusCommentState()
	case MarkupDeclarationOpenState:
		return t.markupDeclarationOpenState()
	case CommentStartState:
		return t.commentStartState()
	case CommentStartDashState:
		return t.commentStartDashState()
	case CommentState:
		return t.commentState()
	case CommentLessThanSignState:
		return t.commentLessThanSignState()
	case CommentLessThanSignBangState:
		return t.commentLessThanSignBangState()
	case CommentLessThanSignBangDashState:
		return t.commentLessThanSignBangDashState()
	case CommentLessThanSignBangDashDashState:
		return t.commentLessThanSignBangDashDashState()
	case CommentEndDashState:
		return t.commentEndDashState()
	case CommentEndState:
		return t.commentEndState()
	case CommentEndBangState:
		return t.commentEndBangState()
	case DoctypeState:
		return t.doctypeState()
	case BeforeDoctypeNameState:
		return t.beforeDoctypeNameState()
	case DoctypeNameState:
		return t.doctypeNameState()
	case AfterDoctypeNameState:
		return t.afterDoctypeNameState()
	case AfterDoctypePublicKeywordState:
		return t.afterDoctypePublicKeywordState()
	case BeforeDoctypePublicIdentifierState:
		return t.beforeDoctypePublicIdentifierState()
	case DoctypePublicIdentifierDoubleQuotedState:
		return t.doctypePublicIdentifierQuotedState('"')
	case DoctypePublicIdentifierSingleQuotedState:
		return t.doctypePublicIdentifierQuotedState('\'')
	case AfterDoctypePublicIdentifierState:
		return t.afterDoctypePublicIdentifierState()
	case BetweenDoctypePublicAndSystemIdentifiersState:
		return t.betweenDoctypePublicAndSystemIdentifiersState()
	case AfterDoctypeSystemKeywordState:
		return t.afterDoctypeSystemKeywordState()
	case BeforeDoctypeSystemIdentifierState:
		return t.beforeDoctypeSystemIdentifierState()
	case DoctypeSystemIdentifierDoubleQuotedState:
		return t.doctypeSystemIdentifierQuotedState('"')
	case DoctypeSystemIdentifierSingleQuotedState:
		return t.doctypeSystemIdentifierQuotedState('\'')
	case AfterDoctypeSystemIdentifierState:
		return t.afterDoctypeSystemIdentifierState()
	case BogusDoctypeState:
		return t.bogusDoctypeState()
	case CDATASectionState:
		return t.cdataSectionState()
	case CDATASectionBracketState:
		return t.cdataSectionBracketState()
	case CDATASectionEndState:
		return t.cdataSectionEndState()
	case CharacterReferenceState:
		return t.characterReferenceState()
	case NamedCharacterReferenceState:
		return t.namedCharacterReferenceState()
	case AmbiguousAmpersandState:
		return t.ambiguousAmpersandState()
	case NumericCharacterReferenceState:
		return t.numericCharacterReferenceState()
	case NumericCharacterReferenceStartState:
		return t.numericCharacterReferenceStartState()
	case HexadecimalCharacterReferenceStartState:
		return t.hexadecimalCharacterReferenceStartState()
	case DecimalCharacterReferenceStartState:
		return t.decimalCharacterReferenceStartState()
	case HexadecimalCharacterReferenceState:
		return t.hexadecimalCharacterReferenceState()
	case DecimalCharacterReferenceState:
		return t.decimalCharacterReferenceState()
	case NumericCharacterReferenceEndState:
		return t.numericCharacterReferenceEndState()
	default:
		return true
	}
}

func (t *Tokenizer) emit(tok Token) { t.onEmit(tok) }

func (t *Tokenizer) emitChar(cp int32) { t.emit(Token{Kind: CharacterToken, CodePoint: cp}) }

func (t *Tokenizer) emitReplacementChar() { t.emitChar(runeutil.ReplacementCharacter) }

func (t *Tokenizer) emitEOF() bool {
	t.emit(Token{Kind: EndOfFileToken})
	return true
}

// ---- Data / Rcdata / Rawtext / Plaintext -----------------------------------

func (t *Tokenizer) dataState() bool {
	c := t.consume()
	switch c {
	case eof:
		return t.emitEOF()
	case '&':
		t.returnState = DataState
		t.state = CharacterReferenceState
	case '<':
		t.state = TagOpenState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitChar(0)
	default:
		t.emitChar(c)
	}
	return false
}

func (t *Tokenizer) rcdataState() bool {
	c := t.consume()
	switch c {
	case eof:
		return t.emitEOF()
	case '&':
		t.returnState = RCDATAState
		t.state = CharacterReferenceState
	case '<':
		t.state = RCDATALessThanSignState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
	default:
		t.emitChar(c)
	}
	return false
}

func (t *Tokenizer) rawtextState() bool {
	c := t.consume()
	switch c {
	case eof:
		return t.emitEOF()
	case '<':
		t.state = RAWTEXTLessThanSignState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
	default:
		t.emitChar(c)
	}
	return false
}

func (t *Tokenizer) scriptDataState() bool {
	c := t.consume()
	switch c {
	case eof:
		return t.emitEOF()
	case '<':
		t.state = ScriptDataLessThanSignState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
	default:
		t.emitChar(c)
	}
	return false
}

func (t *Tokenizer) plaintextState() bool {
	c := t.consume()
	switch c {
	case eof:
		return t.emitEOF()
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
	default:
		t.emitChar(c)
	}
	return false
}

// ---- Tag open family --------------------------------------------------------

func (t *Tokenizer) tagOpenState() bool {
	c := t.consume()
	switch {
	case c == '!':
		t.state = MarkupDeclarationOpenState
	case c == '/':
		t.state = EndTagOpenState
	case runeutil.IsASCIIAlpha(c):
		t.curTag = Token{Kind: StartTagToken}
		t.reconsume()
		t.state = TagNameState
	case c == '?':
		t.emitError(UnexpectedQuestionMarkInsteadOfTagName)
		t.curComment.Reset()
		t.reconsume()
		t.state = BogusCommentState
	case c == eof:
		t.emitError(EOFBeforeTagName)
		t.emitChar('<')
		return t.emitEOF()
	default:
		t.emitError(InvalidFirstCharacterOfTagName)
		t.emitChar('<')
		t.reconsume()
		t.state = DataState
	}
	return false
}

func (t *Tokenizer) endTagOpenState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIAlpha(c):
		t.curTag = Token{Kind: EndTagToken}
		t.reconsume()
		t.state = TagNameState
	case c == '>':
		t.emitError(MissingEndTagName)
		t.state = DataState
	case c == eof:
		t.emitError(EOFBeforeTagName)
		t.emitChar('<')
		t.emitChar('/')
		return t.emitEOF()
	default:
		t.emitError(InvalidFirstCharacterOfTagName)
		t.curComment.Reset()
		t.reconsume()
		t.state = BogusCommentState
	}
	return false
}

func lowerASCII(cp int32) int32 {
	if cp >= 'A' && cp <= 'Z' {
		return cp + 0x20
	}
	return cp
}

func (t *Tokenizer) tagNameState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		t.state = BeforeAttributeNameState
	case c == '/':
		t.state = SelfClosingStartTagState
	case c == '>':
		t.state = DataState
		t.flushDedupedAttributes()
		t.emit(t.curTag)
	case c == eof:
		t.emitError(EOFInTag)
		return t.emitEOF()
	case c == 0:
		t.emitError(UnexpectedNullCharacter)
		t.curTag.Name += string(runeutil.ReplacementCharacter)
	default:
		t.curTag.Name += string(rune(lowerASCII(c)))
	}
	return false
}

func (t *Tokenizer) flushDedupedAttributes() {
	if len(t.curTag.Attributes) == 0 {
		if t.curTag.Kind == EndTagToken {
			return
		}
		return
	}
	seen := make(map[string]bool, len(t.curTag.Attributes))
	out := t.curTag.Attributes[:0]
	dup := false
	for _, a := range t.curTag.Attributes {
		if seen[a.Name] {
			dup = true
			continue
		}
		seen[a.Name] = true
		out = append(out, a)
	}
	if dup {
		t.emitError(DuplicateAttribute)
	}
	t.curTag.Attributes = out
	if t.curTag.Kind == EndTagToken && len(out) > 0 {
		t.emitError(EndTagWithAttributes)
		t.curTag.Attributes = nil
	}
}

// appropriateEndTag reports whether the pending end tag (built in
// tempBuffer, for Rcdata/Rawtext/ScriptData) matches the most recently
// emitted start tag's name, per spec.md §4.4.
func (t *Tokenizer) appropriateEndTag() bool {
	return t.lastStartTagName != "" && t.tempBuffer.String() == t.lastStartTagName
}

// ---- Rcdata end tag family ---------------------------------------------------

func (t *Tokenizer) rcdataLessThanSignState() bool {
	if t.peek() == '/' {
		t.tempBuffer.Reset()
		t.consume()
		t.state = RCDATAEndTagOpenState
		return false
	}
	t.emitChar('<')
	t.state = RCDATAState
	return false
}

func (t *Tokenizer) rcdataEndTagOpenState() bool {
	c := t.peek()
	if runeutil.IsASCIIAlpha(c) {
		t.curTag = Token{Kind: EndTagToken}
		t.state = RCDATAEndTagNameState
		return false
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsume()
	t.state = RCDATAState
	return false
}

func (t *Tokenizer) genericEndTagNameState(fallback State) bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c) && t.appropriateEndTag():
		t.state = BeforeAttributeNameState
		return false
	case c == '/' && t.appropriateEndTag():
		t.state = SelfClosingStartTagState
		return false
	case c == '>' && t.appropriateEndTag():
		t.state = DataState
		t.emit(t.curTag)
		return false
	case runeutil.IsASCIIAlpha(c):
		t.curTag.Name += string(rune(lowerASCII(c)))
		t.tempBuffer.WriteRune(c)
		return false
	default:
		t.emitChar('<')
		t.emitChar('/')
		for _, r := range t.tempBuffer.String() {
			t.emitChar(r)
		}
		t.reconsume()
		t.state = fallback
		return false
	}
}

func (t *Tokenizer) rcdataEndTagNameState() bool { return t.genericEndTagNameState(RCDATAState) }

func (t *Tokenizer) rawtextLessThanSignState() bool {
	if t.peek() == '/' {
		t.tempBuffer.Reset()
		t.consume()
		t.state = RAWTEXTEndTagOpenState
		return false
	}
	t.emitChar('<')
	t.state = RAWTEXTState
	return false
}

func (t *Tokenizer) rawtextEndTagOpenState() bool {
	c := t.peek()
	if runeutil.IsASCIIAlpha(c) {
		t.curTag = Token{Kind: EndTagToken}
		t.state = RAWTEXTEndTagNameState
		return false
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsume()
	t.state = RAWTEXTState
	return false
}

func (t *Tokenizer) rawtextEndTagNameState() bool { return t.genericEndTagNameState(RAWTEXTState) }

// ---- Script data family -------------------------------------------------------

func (t *Tokenizer) scriptDataLessThanSignState() bool {
	switch t.peek() {
	case '/':
		t.tempBuffer.Reset()
		t.consume()
		t.state = ScriptDataEndTagOpenState
	case '!':
		t.consume()
		t.emitChar('<')
		t.emitChar('!')
		t.state = ScriptDataEscapeStartState
	default:
		t.emitChar('<')
		t.state = ScriptDataState
	}
	return false
}

func (t *Tokenizer) scriptDataEndTagOpenState() bool {
	c := t.peek()
	if runeutil.IsASCIIAlpha(c) {
		t.curTag = Token{Kind: EndTagToken}
		t.state = ScriptDataEndTagNameState
		return false
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsume()
	t.state = ScriptDataState
	return false
}

func (t *Tokenizer) scriptDataEndTagNameState() bool {
	return t.genericEndTagNameState(ScriptDataState)
}

func (t *Tokenizer) scriptDataEscapeStartState() bool {
	if t.peek() == '-' {
		t.consume()
		t.emitChar('-')
		t.state = ScriptDataEscapeStartDashState
		return false
	}
	t.reconsume()
	t.state = ScriptDataState
	return false
}

func (t *Tokenizer) scriptDataEscapeStartDashState() bool {
	if t.peek() == '-' {
		t.consume()
		t.emitChar('-')
		t.state = ScriptDataEscapedDashDashState
		return false
	}
	t.reconsume()
	t.state = ScriptDataState
	return false
}

func (t *Tokenizer) scriptDataEscapedState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.emitChar('-')
		t.state = ScriptDataEscapedDashState
	case '<':
		t.state = ScriptDataEscapedLessThanSignState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
	case eof:
		t.emitError(EOFInScriptHTMLCommentLikeText)
		return t.emitEOF()
	default:
		t.emitChar(c)
	}
	return false
}

func (t *Tokenizer) scriptDataEscapedDashState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.emitChar('-')
		t.state = ScriptDataEscapedDashDashState
	case '<':
		t.state = ScriptDataEscapedLessThanSignState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
		t.state = ScriptDataEscapedState
	case eof:
		t.emitError(EOFInScriptHTMLCommentLikeText)
		return t.emitEOF()
	default:
		t.emitChar(c)
		t.state = ScriptDataEscapedState
	}
	return false
}

func (t *Tokenizer) scriptDataEscapedDashDashState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.emitChar('-')
	case '<':
		t.state = ScriptDataEscapedLessThanSignState
	case '>':
		t.emitChar('>')
		t.state = ScriptDataState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
		t.state = ScriptDataEscapedState
	case eof:
		t.emitError(EOFInScriptHTMLCommentLikeText)
		return t.emitEOF()
	default:
		t.emitChar(c)
		t.state = ScriptDataEscapedState
	}
	return false
}

func (t *Tokenizer) scriptDataEscapedLessThanSignState() bool {
	if t.peek() == '/' {
		t.tempBuffer.Reset()
		t.consume()
		t.state = ScriptDataEscapedEndTagOpenState
		return false
	}
	if runeutil.IsASCIIAlpha(t.peek()) {
		t.tempBuffer.Reset()
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapeStartState
		return false
	}
	t.emitChar('<')
	t.reconsume()
	t.state = ScriptDataEscapedState
	return false
}

func (t *Tokenizer) scriptDataEscapedEndTagOpenState() bool {
	if runeutil.IsASCIIAlpha(t.peek()) {
		t.curTag = Token{Kind: EndTagToken}
		t.state = ScriptDataEscapedEndTagNameState
		return false
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsume()
	t.state = ScriptDataEscapedState
	return false
}

func (t *Tokenizer) scriptDataEscapedEndTagNameState() bool {
	return t.genericEndTagNameState(ScriptDataEscapedState)
}

func (t *Tokenizer) scriptDataDoubleEscapeStartState() bool {
	c := t.peek()
	if runeutil.IsASCIIWhitespace(c) || c == '/' || c == '>' {
		t.consume()
		if strings.EqualFold(t.tempBuffer.String(), "script") {
			t.state = ScriptDataDoubleEscapedState
		} else {
			t.state = ScriptDataEscapedState
		}
		t.emitChar(c)
		return false
	}
	if runeutil.IsASCIIAlpha(c) {
		t.consume()
		t.tempBuffer.WriteRune(lowerASCII(c))
		t.emitChar(c)
		return false
	}
	t.reconsume()
	t.state = ScriptDataEscapedState
	return false
}

func (t *Tokenizer) scriptDataDoubleEscapedState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.emitChar('-')
		t.state = ScriptDataDoubleEscapedDashState
	case '<':
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
	case eof:
		t.emitError(EOFInScriptHTMLCommentLikeText)
		return t.emitEOF()
	default:
		t.emitChar(c)
	}
	return false
}

func (t *Tokenizer) scriptDataDoubleEscapedDashState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.emitChar('-')
		t.state = ScriptDataDoubleEscapedDashDashState
	case '<':
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
		t.state = ScriptDataDoubleEscapedState
	case eof:
		t.emitError(EOFInScriptHTMLCommentLikeText)
		return t.emitEOF()
	default:
		t.emitChar(c)
		t.state = ScriptDataDoubleEscapedState
	}
	return false
}

func (t *Tokenizer) scriptDataDoubleEscapedDashDashState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.emitChar('-')
	case '<':
		t.emitChar('<')
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case '>':
		t.emitChar('>')
		t.state = ScriptDataState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.emitReplacementChar()
		t.state = ScriptDataDoubleEscapedState
	case eof:
		t.emitError(EOFInScriptHTMLCommentLikeText)
		return t.emitEOF()
	default:
		t.emitChar(c)
		t.state = ScriptDataDoubleEscapedState
	}
	return false
}

func (t *Tokenizer) scriptDataDoubleEscapedLessThanSignState() bool {
	if t.peek() == '/' {
		t.tempBuffer.Reset()
		t.consume()
		t.emitChar('/')
		t.state = ScriptDataDoubleEscapeEndState
		return false
	}
	t.reconsume()
	t.state = ScriptDataDoubleEscapedState
	return false
}

func (t *Tokenizer) scriptDataDoubleEscapeEndState() bool {
	c := t.peek()
	if runeutil.IsASCIIWhitespace(c) || c == '/' || c == '>' {
		t.consume()
		if strings.EqualFold(t.tempBuffer.String(), "script") {
			t.state = ScriptDataEscapedState
		} else {
			t.state = ScriptDataDoubleEscapedState
		}
		t.emitChar(c)
		return false
	}
	if runeutil.IsASCIIAlpha(c) {
		t.consume()
		t.tempBuffer.WriteRune(lowerASCII(c))
		t.emitChar(c)
		return false
	}
	t.reconsume()
	t.state = ScriptDataDoubleEscapedState
	return false
}

// ---- Attributes --------------------------------------------------------------

func (t *Tokenizer) finishAttr() {
	if t.haveCurAttr {
		t.curTag.Attributes = append(t.curTag.Attributes, Attribute{Name: t.curAttrName.String(), Value: t.curAttrValue.String()})
		t.haveCurAttr = false
	}
}

func (t *Tokenizer) beforeAttributeNameState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		return false
	case c == '/' || c == '>' || c == eof:
		t.finishAttr()
		t.reconsume()
		t.state = AfterAttributeNameState
	case c == '=':
		t.emitError(UnexpectedEqualsSignBeforeAttributeName)
		t.finishAttr()
		t.haveCurAttr = true
		t.curAttrName.Reset()
		t.curAttrValue.Reset()
		t.curAttrName.WriteRune(c)
		t.state = AttributeNameState
	default:
		t.finishAttr()
		t.haveCurAttr = true
		t.curAttrName.Reset()
		t.curAttrValue.Reset()
		t.reconsume()
		t.state = AttributeNameState
	}
	return false
}

func (t *Tokenizer) attributeNameState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c) || c == '/' || c == '>' || c == eof:
		t.reconsume()
		t.state = AfterAttributeNameState
	case c == '=':
		t.state = BeforeAttributeValueState
	case c == 0:
		t.emitError(UnexpectedNullCharacter)
		t.curAttrName.WriteRune(runeutil.ReplacementCharacter)
	case c == '"' || c == '\'' || c == '<':
		t.emitError(UnexpectedCharacterInAttributeName)
		t.curAttrName.WriteRune(c)
	default:
		t.curAttrName.WriteRune(rune(lowerASCII(c)))
	}
	return false
}

func (t *Tokenizer) afterAttributeNameState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		return false
	case c == '/':
		t.finishAttr()
		t.state = SelfClosingStartTagState
	case c == '=':
		t.state = BeforeAttributeValueState
	case c == '>':
		t.finishAttr()
		t.state = DataState
		t.flushDedupedAttributes()
		t.emit(t.curTag)
	case c == eof:
		t.emitError(EOFInTag)
		return t.emitEOF()
	default:
		t.finishAttr()
		t.haveCurAttr = true
		t.curAttrName.Reset()
		t.curAttrValue.Reset()
		t.reconsume()
		t.state = AttributeNameState
	}
	return false
}

func (t *Tokenizer) beforeAttributeValueState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		return false
	case c == '"':
		t.state = AttributeValueDoubleQuotedState
	case c == '\'':
		t.state = AttributeValueSingleQuotedState
	case c == '>':
		t.emitError(MissingAttributeValue)
		t.finishAttr()
		t.state = DataState
		t.flushDedupedAttributes()
		t.emit(t.curTag)
	default:
		t.reconsume()
		t.state = AttributeValueUnquotedState
	}
	return false
}

func (t *Tokenizer) attributeValueQuotedState(quote int32) bool {
	c := t.consume()
	switch c {
	case quote:
		t.finishAttr()
		t.state = AfterAttributeValueQuotedState
	case '&':
		t.returnState = t.state
		t.charRefAttrTaste = true
		t.state = CharacterReferenceState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.curAttrValue.WriteRune(runeutil.ReplacementCharacter)
	case eof:
		t.emitError(EOFInTag)
		return t.emitEOF()
	default:
		t.curAttrValue.WriteRune(c)
	}
	return false
}

func (t *Tokenizer) attributeValueUnquotedState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		t.finishAttr()
		t.state = BeforeAttributeNameState
	case c == '&':
		t.returnState = t.state
		t.charRefAttrTaste = true
		t.state = CharacterReferenceState
	case c == '>':
		t.finishAttr()
		t.state = DataState
		t.flushDedupedAttributes()
		t.emit(t.curTag)
	case c == 0:
		t.emitError(UnexpectedNullCharacter)
		t.curAttrValue.WriteRune(runeutil.ReplacementCharacter)
	case c == eof:
		t.emitError(EOFInTag)
		return t.emitEOF()
	case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
		t.emitError(UnexpectedCharacterInUnquotedAttributeValue)
		t.curAttrValue.WriteRune(c)
	default:
		t.curAttrValue.WriteRune(c)
	}
	return false
}

func (t *Tokenizer) afterAttributeValueQuotedState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		t.state = BeforeAttributeNameState
	case c == '/':
		t.state = SelfClosingStartTagState
	case c == '>':
		t.state = DataState
		t.flushDedupedAttributes()
		t.emit(t.curTag)
	case c == eof:
		t.emitError(EOFInTag)
		return t.emitEOF()
	default:
		t.emitError(MissingWhitespaceBetweenAttributes)
		t.reconsume()
		t.state = BeforeAttributeNameState
	}
	return false
}

func (t *Tokenizer) selfClosingStartTagState() bool {
	c := t.consume()
	switch c {
	case '>':
		t.curTag.SelfClosing = true
		t.state = DataState
		t.flushDedupedAttributes()
		t.emit(t.curTag)
	case eof:
		t.emitError(EOFInTag)
		return t.emitEOF()
	default:
		t.emitError(UnexpectedSolidusInTag)
		t.reconsume()
		t.state = BeforeAttributeNameState
	}
	return false
}

// ---- Comments & bogus comment -------------------------------------------------

func (t *Tokenizer) bogusCommentState() bool {
	c := t.consume()
	switch c {
	case '>':
		t.state = DataState
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
	case eof:
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
		return t.emitEOF()
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.curComment.WriteRune(runeutil.ReplacementCharacter)
	default:
		t.curComment.WriteRune(c)
	}
	return false
}

func (t *Tokenizer) markupDeclarationOpenState() bool {
	if t.startsWithCaseInsensitive("--") {
		t.pos += 2
		t.curComment.Reset()
		t.state = CommentStartState
		return false
	}
	if t.startsWithCaseInsensitive("DOCTYPE") {
		t.pos += 7
		t.state = DoctypeState
		return false
	}
	if t.AllowCDATA && t.startsWithCaseInsensitive("[CDATA[") {
		t.pos += 7
		t.state = CDATASectionState
		return false
	}
	if t.startsWithCaseInsensitive("[CDATA[") {
		t.emitError(CdataInHTMLContent)
	}
	t.emitError(IncorrectlyOpenedComment)
	t.curComment.Reset()
	t.state = BogusCommentState
	return false
}

func (t *Tokenizer) commentStartState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.state = CommentStartDashState
	case '>':
		t.emitError(AbruptClosingOfEmptyComment)
		t.state = DataState
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
	default:
		t.reconsume()
		t.state = CommentState
	}
	return false
}

func (t *Tokenizer) commentStartDashState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.state = CommentEndState
	case '>':
		t.emitError(AbruptClosingOfEmptyComment)
		t.state = DataState
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
	case eof:
		t.emitError(EOFInComment)
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
		return t.emitEOF()
	default:
		t.curComment.WriteByte('-')
		t.reconsume()
		t.state = CommentState
	}
	return false
}

func (t *Tokenizer) commentState() bool {
	c := t.consume()
	switch c {
	case '<':
		t.curComment.WriteRune(c)
		t.state = CommentLessThanSignState
	case '-':
		t.state = CommentEndDashState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.curComment.WriteRune(runeutil.ReplacementCharacter)
	case eof:
		t.emitError(EOFInComment)
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
		return t.emitEOF()
	default:
		t.curComment.WriteRune(c)
	}
	return false
}

func (t *Tokenizer) commentLessThanSignState() bool {
	switch t.peek() {
	case '!':
		t.curComment.WriteRune(t.consume())
		t.state = CommentLessThanSignBangState
	case '<':
		t.curComment.WriteRune(t.consume())
	default:
		t.state = CommentState
	}
	return false
}

func (t *Tokenizer) commentLessThanSignBangState() bool {
	if t.peek() == '-' {
		t.consume()
		t.state = CommentLessThanSignBangDashState
		return false
	}
	t.state = CommentState
	return false
}

func (t *Tokenizer) commentLessThanSignBangDashState() bool {
	if t.peek() == '-' {
		t.consume()
		t.state = CommentLessThanSignBangDashDashState
		return false
	}
	t.state = CommentEndDashState
	return false
}

func (t *Tokenizer) commentLessThanSignBangDashDashState() bool {
	if t.peek() == '>' || t.peek() == eof {
		t.state = CommentEndState
		return false
	}
	t.emitError(NestedComment)
	t.state = CommentEndState
	return false
}

func (t *Tokenizer) commentEndDashState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.state = CommentEndState
	case eof:
		t.emitError(EOFInComment)
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
		return t.emitEOF()
	default:
		t.curComment.WriteByte('-')
		t.reconsume()
		t.state = CommentState
	}
	return false
}

func (t *Tokenizer) commentEndState() bool {
	c := t.consume()
	switch c {
	case '>':
		t.state = DataState
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
	case '!':
		t.state = CommentEndBangState
	case '-':
		t.curComment.WriteByte('-')
	case eof:
		t.emitError(EOFInComment)
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
		return t.emitEOF()
	default:
		t.curComment.WriteString("--")
		t.reconsume()
		t.state = CommentState
	}
	return false
}

func (t *Tokenizer) commentEndBangState() bool {
	c := t.consume()
	switch c {
	case '-':
		t.curComment.WriteString("--!")
		t.state = CommentEndDashState
	case '>':
		t.emitError(IncorrectlyClosedComment)
		t.state = DataState
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
	case eof:
		t.emitError(EOFInComment)
		t.emit(Token{Kind: CommentToken, Data: t.curComment.String()})
		return t.emitEOF()
	default:
		t.curComment.WriteString("--!")
		t.reconsume()
		t.state = CommentState
	}
	return false
}

// ---- Doctype -------------------------------------------------------------------

func (t *Tokenizer) emitDoctype() {
	t.curDoctype.Kind = DoctypeToken
	t.emit(t.curDoctype)
}

func (t *Tokenizer) doctypeState() bool {
	c := t.consume()
	t.curDoctype = Token{Kind: DoctypeToken}
	switch {
	case runeutil.IsASCIIWhitespace(c):
		t.state = BeforeDoctypeNameState
	case c == '>':
		t.reconsume()
		t.state = BeforeDoctypeNameState
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.emitError(MissingWhitespaceBeforeDoctypeName)
		t.reconsume()
		t.state = BeforeDoctypeNameState
	}
	return false
}

func (t *Tokenizer) beforeDoctypeNameState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		return false
	case c == 0:
		t.emitError(UnexpectedNullCharacter)
		t.curDoctype.HasName = true
		t.curDoctype.Name = string(runeutil.ReplacementCharacter)
		t.state = DoctypeNameState
	case c == '>':
		t.emitError(MissingDoctypeName)
		t.curDoctype.ForceQuirks = true
		t.state = DataState
		t.emitDoctype()
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.curDoctype.HasName = true
		t.curDoctype.Name = string(rune(lowerASCII(c)))
		t.state = DoctypeNameState
	}
	return false
}

func (t *Tokenizer) doctypeNameState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		t.state = AfterDoctypeNameState
	case c == '>':
		t.state = DataState
		t.emitDoctype()
	case c == 0:
		t.emitError(UnexpectedNullCharacter)
		t.curDoctype.Name += string(runeutil.ReplacementCharacter)
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.curDoctype.Name += string(rune(lowerASCII(c)))
	}
	return false
}

func (t *Tokenizer) afterDoctypeNameState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		return false
	case c == '>':
		t.state = DataState
		t.emitDoctype()
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		if t.startsWithCaseInsensitive2("PUBLIC", c) {
			t.pos += 5
			t.state = AfterDoctypePublicKeywordState
			return false
		}
		if t.startsWithCaseInsensitive2("SYSTEM", c) {
			t.pos += 5
			t.state = AfterDoctypeSystemKeywordState
			return false
		}
		t.emitError(InvalidCharacterSequenceAfterDoctypeName)
		t.curDoctype.ForceQuirks = true
		t.reconsume()
		t.state = BogusDoctypeState
	}
	return false
}

// startsWithCaseInsensitive2 checks a keyword where the first letter c has
// already been consumed by the caller.
func (t *Tokenizer) startsWithCaseInsensitive2(keyword string, first int32) bool {
	if lowerASCII(first) != lowerASCII(int32(keyword[0])) {
		return false
	}
	for i := 1; i < len(keyword); i++ {
		c := t.peekAt(i - 1)
		if c == eof || lowerASCII(c) != lowerASCII(int32(keyword[i])) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) afterDoctypePublicKeywordState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		t.state = BeforeDoctypePublicIdentifierState
	case c == '"':
		t.emitError(MissingWhitespaceAfterDoctypePublicKeyword)
		t.curDoctype.HasPublicID = true
		t.curDoctype.PublicID = ""
		t.state = DoctypePublicIdentifierDoubleQuotedState
	case c == '\'':
		t.emitError(MissingWhitespaceAfterDoctypePublicKeyword)
		t.curDoctype.HasPublicID = true
		t.curDoctype.PublicID = ""
		t.state = DoctypePublicIdentifierSingleQuotedState
	case c == '>':
		t.emitError(MissingDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.state = DataState
		t.emitDoctype()
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.emitError(MissingQuoteBeforeDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsume()
		t.state = BogusDoctypeState
	}
	return false
}

func (t *Tokenizer) beforeDoctypePublicIdentifierState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		return false
	case c == '"':
		t.curDoctype.HasPublicID = true
		t.curDoctype.PublicID = ""
		t.state = DoctypePublicIdentifierDoubleQuotedState
	case c == '\'':
		t.curDoctype.HasPublicID = true
		t.curDoctype.PublicID = ""
		t.state = DoctypePublicIdentifierSingleQuotedState
	case c == '>':
		t.emitError(MissingDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.state = DataState
		t.emitDoctype()
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.emitError(MissingQuoteBeforeDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsume()
		t.state = BogusDoctypeState
	}
	return false
}

func (t *Tokenizer) doctypePublicIdentifierQuotedState(quote int32) bool {
	c := t.consume()
	switch c {
	case quote:
		t.state = AfterDoctypePublicIdentifierState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.curDoctype.PublicID += string(runeutil.ReplacementCharacter)
	case '>':
		t.emitError(AbruptDoctypePublicIdentifier)
		t.curDoctype.ForceQuirks = true
		t.state = DataState
		t.emitDoctype()
	case eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.curDoctype.PublicID += string(c)
	}
	return false
}

func (t *Tokenizer) afterDoctypePublicIdentifierState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		t.state = BetweenDoctypePublicAndSystemIdentifiersState
	case c == '>':
		t.state = DataState
		t.emitDoctype()
	case c == '"':
		t.emitError(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.curDoctype.HasSystemID = true
		t.curDoctype.SystemID = ""
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.emitError(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.curDoctype.HasSystemID = true
		t.curDoctype.SystemID = ""
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.emitError(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsume()
		t.state = BogusDoctypeState
	}
	return false
}

func (t *Tokenizer) betweenDoctypePublicAndSystemIdentifiersState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		return false
	case c == '>':
		t.state = DataState
		t.emitDoctype()
	case c == '"':
		t.curDoctype.HasSystemID = true
		t.curDoctype.SystemID = ""
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.curDoctype.HasSystemID = true
		t.curDoctype.SystemID = ""
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.emitError(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsume()
		t.state = BogusDoctypeState
	}
	return false
}

func (t *Tokenizer) afterDoctypeSystemKeywordState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		t.state = BeforeDoctypeSystemIdentifierState
	case c == '"':
		t.emitError(MissingWhitespaceAfterDoctypeSystemKeyword)
		t.curDoctype.HasSystemID = true
		t.curDoctype.SystemID = ""
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.emitError(MissingWhitespaceAfterDoctypeSystemKeyword)
		t.curDoctype.HasSystemID = true
		t.curDoctype.SystemID = ""
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case c == '>':
		t.emitError(MissingDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.state = DataState
		t.emitDoctype()
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.emitError(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsume()
		t.state = BogusDoctypeState
	}
	return false
}

func (t *Tokenizer) beforeDoctypeSystemIdentifierState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		return false
	case c == '"':
		t.curDoctype.HasSystemID = true
		t.curDoctype.SystemID = ""
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.curDoctype.HasSystemID = true
		t.curDoctype.SystemID = ""
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case c == '>':
		t.emitError(MissingDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.state = DataState
		t.emitDoctype()
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.emitError(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.reconsume()
		t.state = BogusDoctypeState
	}
	return false
}

func (t *Tokenizer) doctypeSystemIdentifierQuotedState(quote int32) bool {
	c := t.consume()
	switch c {
	case quote:
		t.state = AfterDoctypeSystemIdentifierState
	case 0:
		t.emitError(UnexpectedNullCharacter)
		t.curDoctype.SystemID += string(runeutil.ReplacementCharacter)
	case '>':
		t.emitError(AbruptDoctypeSystemIdentifier)
		t.curDoctype.ForceQuirks = true
		t.state = DataState
		t.emitDoctype()
	case eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.curDoctype.SystemID += string(c)
	}
	return false
}

func (t *Tokenizer) afterDoctypeSystemIdentifierState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIWhitespace(c):
		return false
	case c == '>':
		t.state = DataState
		t.emitDoctype()
	case c == eof:
		t.emitError(EOFInDoctype)
		t.curDoctype.ForceQuirks = true
		t.emitDoctype()
		return t.emitEOF()
	default:
		t.emitError(UnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.reconsume()
		t.state = BogusDoctypeState
	}
	return false
}

func (t *Tokenizer) bogusDoctypeState() bool {
	c := t.consume()
	switch c {
	case '>':
		t.state = DataState
		t.emitDoctype()
	case 0:
		t.emitError(UnexpectedNullCharacter)
	case eof:
		t.emitDoctype()
		return t.emitEOF()
	default:
	}
	return false
}

// ---- CDATA -----------------------------------------------------------------

func (t *Tokenizer) cdataSectionState() bool {
	c := t.consume()
	switch c {
	case ']':
		t.state = CDATASectionBracketState
	case eof:
		t.emitError(EOFInCdata)
		return t.emitEOF()
	default:
		t.emitChar(c)
	}
	return false
}

func (t *Tokenizer) cdataSectionBracketState() bool {
	if t.peek() == ']' {
		t.consume()
		t.state = CDATASectionEndState
		return false
	}
	t.emitChar(']')
	t.reconsume()
	t.state = CDATASectionState
	return false
}

func (t *Tokenizer) cdataSectionEndState() bool {
	c := t.consume()
	switch c {
	case ']':
		t.emitChar(']')
	case '>':
		t.state = DataState
	default:
		t.emitChar(']')
		t.emitChar(']')
		t.reconsume()
		t.state = CDATASectionState
	}
	return false
}

// ---- Character references ---------------------------------------------------

func (t *Tokenizer) flushCodePointsConsumedAsCharRef(s string) {
	if t.charRefAttrTaste {
		t.curAttrValue.WriteString(s)
		return
	}
	for _, r := range s {
		t.emitChar(r)
	}
}

func (t *Tokenizer) characterReferenceState() bool {
	t.tempBuffer.Reset()
	t.tempBuffer.WriteByte('&')
	c := t.peek()
	if runeutil.IsASCIIAlphanumeric(c) {
		t.state = NamedCharacterReferenceState
		return false
	}
	if c == '#' {
		t.consume()
		t.tempBuffer.WriteByte('#')
		t.state = NumericCharacterReferenceStartState
		return false
	}
	t.flushCodePointsConsumedAsCharRef(t.tempBuffer.String())
	t.state = t.returnState
	t.charRefAttrTaste = false
	return false
}

func (t *Tokenizer) namedCharacterReferenceState() bool {
	remaining := make([]byte, 0, 32)
	for i := t.pos; i < len(t.runes) && len(remaining) < 40; i++ {
		cp := t.runes[i]
		if cp < 0 || cp > 0x7F {
			break
		}
		remaining = append(remaining, byte(cp))
	}
	match, ok := charref.Lookup(remaining)
	if !ok {
		t.flushCodePointsConsumedAsCharRef(t.tempBuffer.String())
		t.state = AmbiguousAmpersandState
		return false
	}

	t.pos += len([]rune(match.Name))
	t.tempBuffer.WriteString(match.Name)

	consumedSemicolon := strings.HasSuffix(match.Name, ";")
	nextIsEqualsOrAlnum := t.peek() == '=' || runeutil.IsASCIIAlphanumeric(t.peek())
	if t.charRefAttrTaste && !consumedSemicolon && nextIsEqualsOrAlnum {
		t.flushCodePointsConsumedAsCharRef(t.tempBuffer.String())
		t.state = t.returnState
		t.charRefAttrTaste = false
		return false
	}

	if !consumedSemicolon {
		t.emitError(MissingSemicolonAfterCharacterReference)
	}

	t.tempBuffer.Reset()
	t.tempBuffer.WriteRune(match.First)
	if match.Second != 0 {
		t.tempBuffer.WriteRune(match.Second)
	}
	t.flushCodePointsConsumedAsCharRef(t.tempBuffer.String())
	t.state = t.returnState
	t.charRefAttrTaste = false
	return false
}

func (t *Tokenizer) ambiguousAmpersandState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIAlphanumeric(c):
		if t.charRefAttrTaste {
			t.curAttrValue.WriteRune(c)
		} else {
			t.emitChar(c)
		}
	case c == ';':
		t.emitError(UnknownNamedCharacterReference)
		t.reconsume()
		t.state = t.returnState
		t.charRefAttrTaste = false
	default:
		t.reconsume()
		t.state = t.returnState
		t.charRefAttrTaste = false
	}
	return false
}

func (t *Tokenizer) numericCharacterReferenceStartState() bool {
	t.charRefCode = 0
	switch t.peek() {
	case 'x', 'X':
		t.tempBuffer.WriteRune(t.consume())
		t.state = HexadecimalCharacterReferenceStartState
	default:
		t.state = DecimalCharacterReferenceStartState
	}
	return false
}

func (t *Tokenizer) hexadecimalCharacterReferenceStartState() bool {
	if runeutil.IsASCIIHexDigit(t.peek()) {
		t.state = HexadecimalCharacterReferenceState
		return false
	}
	t.emitError(AbsenceOfDigitsInNumericCharacterReference)
	t.flushCodePointsConsumedAsCharRef(t.tempBuffer.String())
	t.state = t.returnState
	t.charRefAttrTaste = false
	return false
}

func (t *Tokenizer) decimalCharacterReferenceStartState() bool {
	if runeutil.IsASCIIDigit(t.peek()) {
		t.state = DecimalCharacterReferenceState
		return false
	}
	t.emitError(AbsenceOfDigitsInNumericCharacterReference)
	t.flushCodePointsConsumedAsCharRef(t.tempBuffer.String())
	t.state = t.returnState
	t.charRefAttrTaste = false
	return false
}

func (t *Tokenizer) hexadecimalCharacterReferenceState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIDigit(c):
		t.charRefCode = t.charRefCode*16 + (c - '0')
	case runeutil.IsASCIIUpperHexDigit(c):
		t.charRefCode = t.charRefCode*16 + (c - 'A' + 10)
	case runeutil.IsASCIILowerHexDigit(c):
		t.charRefCode = t.charRefCode*16 + (c - 'a' + 10)
	case c == ';':
		t.state = NumericCharacterReferenceEndState
	default:
		t.emitError(MissingSemicolonAfterCharacterReference)
		t.reconsume()
		t.state = NumericCharacterReferenceEndState
	}
	if t.charRefCode > runeutil.MaxCodePoint*4 {
		// Prevent pathological unbounded accumulation; the end state
		// saturates anyway.
		t.charRefCode = runeutil.MaxCodePoint + 1
	}
	return false
}

func (t *Tokenizer) decimalCharacterReferenceState() bool {
	c := t.consume()
	switch {
	case runeutil.IsASCIIDigit(c):
		t.charRefCode = t.charRefCode*10 + (c - '0')
	case c == ';':
		t.state = NumericCharacterReferenceEndState
	default:
		t.emitError(MissingSemicolonAfterCharacterReference)
		t.reconsume()
		t.state = NumericCharacterReferenceEndState
	}
	if t.charRefCode > runeutil.MaxCodePoint*4 {
		t.charRefCode = runeutil.MaxCodePoint + 1
	}
	return false
}

// windows1252Map implements the 27-entry legacy numeric character
// reference remapping table from
// https://html.spec.whatwg.org/multipage/parsing.html#numeric-character-reference-end-state.
var windows1252Map = map[int32]int32{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}

func (t *Tokenizer) numericCharacterReferenceEndState() bool {
	cp := t.charRefCode
	switch {
	case cp == 0:
		t.emitError(NullCharacterReference)
		cp = runeutil.ReplacementCharacter
	case cp > runeutil.MaxCodePoint:
		t.emitError(CharacterReferenceOutsideUnicodeRange)
		cp = runeutil.ReplacementCharacter
	case runeutil.IsSurrogate(cp):
		t.emitError(SurrogateCharacterReference)
		cp = runeutil.ReplacementCharacter
	case runeutil.IsNoncharacter(cp):
		t.emitError(NoncharacterCharacterReference)
	case cp == 0x0D || (runeutil.IsControl(cp) && !runeutil.IsASCIIWhitespace(cp)):
		t.emitError(ControlCharacterReference)
		if mapped, ok := windows1252Map[cp]; ok {
			cp = mapped
		}
	}

	t.tempBuffer.Reset()
	t.tempBuffer.WriteRune(cp)
	t.flushCodePointsConsumedAsCharRef(t.tempBuffer.String())
	t.state = t.returnState
	t.charRefAttrTaste = false
	return false
}

func (t *Tokenizer) numericCharacterReferenceState() bool {
	// Dispatch-only state; WHATWG's numbering folds this into Start.
	return false
}
