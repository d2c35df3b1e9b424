package htmltok

// ParseError enumerates the WHATWG HTML tokenizer's parse errors
// (https://html.spec.whatwg.org/multipage/parsing.html#parse-errors),
// ported verbatim from original_source/html/parse_error.h.
type ParseError int

const (
	AbruptClosingOfEmptyComment ParseError = iota
	AbruptDoctypePublicIdentifier
	AbruptDoctypeSystemIdentifier
	AbsenceOfDigitsInNumericCharacterReference
	CdataInHTMLContent
	CharacterReferenceOutsideUnicodeRange
	ControlCharacterReference
	DuplicateAttribute
	EndTagWithAttributes
	EndTagWithTrailingSolidus
	EOFBeforeTagName
	EOFInCdata
	EOFInComment
	EOFInDoctype
	EOFInScriptHTMLCommentLikeText
	EOFInTag
	IncorrectlyClosedComment
	IncorrectlyOpenedComment
	InvalidCharacterSequenceAfterDoctypeName
	InvalidFirstCharacterOfTagName
	MissingAttributeValue
	MissingDoctypeName
	MissingDoctypePublicIdentifier
	MissingDoctypeSystemIdentifier
	MissingEndTagName
	MissingQuoteBeforeDoctypePublicIdentifier
	MissingQuoteBeforeDoctypeSystemIdentifier
	MissingSemicolonAfterCharacterReference
	MissingWhitespaceAfterDoctypePublicKeyword
	MissingWhitespaceAfterDoctypeSystemKeyword
	MissingWhitespaceBeforeDoctypeName
	MissingWhitespaceBetweenAttributes
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers
	NestedComment
	NoncharacterCharacterReference
	NullCharacterReference
	SurrogateCharacterReference
	UnexpectedCharacterAfterDoctypeSystemIdentifier
	UnexpectedCharacterInAttributeName
	UnexpectedCharacterInUnquotedAttributeValue
	UnexpectedEqualsSignBeforeAttributeName
	UnexpectedNullCharacter
	UnexpectedQuestionMarkInsteadOfTagName
	UnexpectedSolidusInTag
	UnknownNamedCharacterReference
)

var parseErrorNames = [...]string{
	"AbruptClosingOfEmptyComment",
	"AbruptDoctypePublicIdentifier",
	"AbruptDoctypeSystemIdentifier",
	"AbsenceOfDigitsInNumericCharacterReference",
	"CdataInHtmlContent",
	"CharacterReferenceOutsideUnicodeRange",
	"ControlCharacterReference",
	"DuplicateAttribute",
	"EndTagWithAttributes",
	"EndTagWithTrailingSolidus",
	"EofBeforeTagName",
	"EofInCdata",
	"EofInComment",
	"EofInDoctype",
	"EofInScriptHtmlCommentLikeText",
	"EofInTag",
	"IncorrectlyClosedComment",
	"IncorrectlyOpenedComment",
	"InvalidCharacterSequenceAfterDoctypeName",
	"InvalidFirstCharacterOfTagName",
	"MissingAttributeValue",
	"MissingDoctypeName",
	"MissingDoctypePublicIdentifier",
	"MissingDoctypeSystemIdentifier",
	"MissingEndTagName",
	"MissingQuoteBeforeDoctypePublicIdentifier",
	"MissingQuoteBeforeDoctypeSystemIdentifier",
	"MissingSemicolonAfterCharacterReference",
	"MissingWhitespaceAfterDoctypePublicKeyword",
	"MissingWhitespaceAfterDoctypeSystemKeyword",
	"MissingWhitespaceBeforeDoctypeName",
	"MissingWhitespaceBetweenAttributes",
	"MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers",
	"NestedComment",
	"NoncharacterCharacterReference",
	"NullCharacterReference",
	"SurrogateCharacterReference",
	"UnexpectedCharacterAfterDoctypeSystemIdentifier",
	"UnexpectedCharacterInAttributeName",
	"UnexpectedCharacterInUnquotedAttributeValue",
	"UnexpectedEqualsSignBeforeAttributeName",
	"UnexpectedNullCharacter",
	"UnexpectedQuestionMarkInsteadOfTagName",
	"UnexpectedSolidusInTag",
	"UnknownNamedCharacterReference",
}

func (e ParseError) String() string {
	if int(e) >= 0 && int(e) < len(parseErrorNames) {
		return parseErrorNames[e]
	}
	return "Unknown"
}

func (e ParseError) Error() string { return e.String() }

// Position is a 1-based line/column pair, computed from byte offset, as
// required of every emitted tokenizer error by spec.md §4.4.
type Position struct {
	Line   int
	Column int
}
