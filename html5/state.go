package html5

// RawKind selects which flavor of "markup is mostly disabled" mode a raw
// state family member is running as. RCDATA, RAWTEXT and ScriptData share
// the RawLessThanSign/RawEndTagOpen/RawEndTagName states, with RawKind
// recording which of them to return to; Plaintext has no end-tag states, and
// the script-data escaped and double-escaped sub-modes have states of their
// own.
type RawKind uint8

const (
	RawRcdata RawKind = iota
	RawRawtext
	RawScriptData
	RawScriptDataEscaped
	RawScriptDataDoubleEscaped
	RawPlaintext
)

// State is one of the tokenization algorithm's states. Kept as a plain
// const iota block with an explicit switch dispatcher in tokenizer.go
// rather than a macro/codegen layer.
type State uint8

const (
	Data State = iota
	RCDATA
	RAWTEXT
	ScriptData
	Plaintext

	TagOpen
	EndTagOpen
	TagName

	RawLessThanSign
	RawEndTagOpen
	RawEndTagName

	ScriptDataEscapeStart
	ScriptDataEscapeStartDash
	ScriptDataEscaped
	ScriptDataEscapedDash
	ScriptDataEscapedDashDash
	ScriptDataEscapedLessThanSign
	ScriptDataEscapedEndTagOpen
	ScriptDataEscapedEndTagName
	ScriptDataDoubleEscapeStart
	ScriptDataDoubleEscaped
	ScriptDataDoubleEscapedDash
	ScriptDataDoubleEscapedDashDash
	ScriptDataDoubleEscapedLessThanSign
	ScriptDataDoubleEscapeEnd

	BeforeAttributeName
	AttributeName
	AfterAttributeName
	BeforeAttributeValue
	AttributeValueDoubleQuoted
	AttributeValueSingleQuoted
	AttributeValueUnquoted
	AfterAttributeValueQuoted
	SelfClosingStartTag

	BogusComment
	MarkupDeclarationOpen
	CommentStart
	CommentStartDash
	Comment
	CommentLessThanSign
	CommentLessThanSignBang
	CommentLessThanSignBangDash
	CommentLessThanSignBangDashDash
	CommentEndDash
	CommentEnd
	CommentEndBang

	Doctype
	BeforeDoctypeName
	DoctypeName
	AfterDoctypeName
	AfterDoctypePublicKeyword
	BeforeDoctypePublicIdentifier
	DoctypePublicIdentifierDoubleQuoted
	DoctypePublicIdentifierSingleQuoted
	AfterDoctypePublicIdentifier
	BetweenDoctypePublicAndSystemIdentifiers
	AfterDoctypeSystemKeyword
	BeforeDoctypeSystemIdentifier
	DoctypeSystemIdentifierDoubleQuoted
	DoctypeSystemIdentifierSingleQuoted
	AfterDoctypeSystemIdentifier
	BogusDoctype

	CDATASection
	CDATASectionBracket
	CDATASectionEnd

	CharacterReference
)

// String names a state for diagnostics (profile output, %v in test
// failures). Kept as an explicit switch for the same reason State itself
// is a plain const block: no stringer/codegen dependency for ~75 names.
func (s State) String() string {
	switch s {
	case Data:
		return "Data"
	case RCDATA:
		return "RCDATA"
	case RAWTEXT:
		return "RAWTEXT"
	case ScriptData:
		return "ScriptData"
	case Plaintext:
		return "Plaintext"
	case TagOpen:
		return "TagOpen"
	case EndTagOpen:
		return "EndTagOpen"
	case TagName:
		return "TagName"
	case RawLessThanSign:
		return "RawLessThanSign"
	case RawEndTagOpen:
		return "RawEndTagOpen"
	case RawEndTagName:
		return "RawEndTagName"
	case ScriptDataEscapeStart:
		return "ScriptDataEscapeStart"
	case ScriptDataEscapeStartDash:
		return "ScriptDataEscapeStartDash"
	case ScriptDataEscaped:
		return "ScriptDataEscaped"
	case ScriptDataEscapedDash:
		return "ScriptDataEscapedDash"
	case ScriptDataEscapedDashDash:
		return "ScriptDataEscapedDashDash"
	case ScriptDataEscapedLessThanSign:
		return "ScriptDataEscapedLessThanSign"
	case ScriptDataEscapedEndTagOpen:
		return "ScriptDataEscapedEndTagOpen"
	case ScriptDataEscapedEndTagName:
		return "ScriptDataEscapedEndTagName"
	case ScriptDataDoubleEscapeStart:
		return "ScriptDataDoubleEscapeStart"
	case ScriptDataDoubleEscaped:
		return "ScriptDataDoubleEscaped"
	case ScriptDataDoubleEscapedDash:
		return "ScriptDataDoubleEscapedDash"
	case ScriptDataDoubleEscapedDashDash:
		return "ScriptDataDoubleEscapedDashDash"
	case ScriptDataDoubleEscapedLessThanSign:
		return "ScriptDataDoubleEscapedLessThanSign"
	case ScriptDataDoubleEscapeEnd:
		return "ScriptDataDoubleEscapeEnd"
	case BeforeAttributeName:
		return "BeforeAttributeName"
	case AttributeName:
		return "AttributeName"
	case AfterAttributeName:
		return "AfterAttributeName"
	case BeforeAttributeValue:
		return "BeforeAttributeValue"
	case AttributeValueDoubleQuoted:
		return "AttributeValueDoubleQuoted"
	case AttributeValueSingleQuoted:
		return "AttributeValueSingleQuoted"
	case AttributeValueUnquoted:
		return "AttributeValueUnquoted"
	case AfterAttributeValueQuoted:
		return "AfterAttributeValueQuoted"
	case SelfClosingStartTag:
		return "SelfClosingStartTag"
	case BogusComment:
		return "BogusComment"
	case MarkupDeclarationOpen:
		return "MarkupDeclarationOpen"
	case CommentStart:
		return "CommentStart"
	case CommentStartDash:
		return "CommentStartDash"
	case Comment:
		return "Comment"
	case CommentLessThanSign:
		return "CommentLessThanSign"
	case CommentLessThanSignBang:
		return "CommentLessThanSignBang"
	case CommentLessThanSignBangDash:
		return "CommentLessThanSignBangDash"
	case CommentLessThanSignBangDashDash:
		return "CommentLessThanSignBangDashDash"
	case CommentEndDash:
		return "CommentEndDash"
	case CommentEnd:
		return "CommentEnd"
	case CommentEndBang:
		return "CommentEndBang"
	case Doctype:
		return "Doctype"
	case BeforeDoctypeName:
		return "BeforeDoctypeName"
	case DoctypeName:
		return "DoctypeName"
	case AfterDoctypeName:
		return "AfterDoctypeName"
	case AfterDoctypePublicKeyword:
		return "AfterDoctypePublicKeyword"
	case BeforeDoctypePublicIdentifier:
		return "BeforeDoctypePublicIdentifier"
	case DoctypePublicIdentifierDoubleQuoted:
		return "DoctypePublicIdentifierDoubleQuoted"
	case DoctypePublicIdentifierSingleQuoted:
		return "DoctypePublicIdentifierSingleQuoted"
	case AfterDoctypePublicIdentifier:
		return "AfterDoctypePublicIdentifier"
	case BetweenDoctypePublicAndSystemIdentifiers:
		return "BetweenDoctypePublicAndSystemIdentifiers"
	case AfterDoctypeSystemKeyword:
		return "AfterDoctypeSystemKeyword"
	case BeforeDoctypeSystemIdentifier:
		return "BeforeDoctypeSystemIdentifier"
	case DoctypeSystemIdentifierDoubleQuoted:
		return "DoctypeSystemIdentifierDoubleQuoted"
	case DoctypeSystemIdentifierSingleQuoted:
		return "DoctypeSystemIdentifierSingleQuoted"
	case AfterDoctypeSystemIdentifier:
		return "AfterDoctypeSystemIdentifier"
	case BogusDoctype:
		return "BogusDoctype"
	case CDATASection:
		return "CDATASection"
	case CDATASectionBracket:
		return "CDATASectionBracket"
	case CDATASectionEnd:
		return "CDATASectionEnd"
	case CharacterReference:
		return "CharacterReference"
	default:
		return "State(?)"
	}
}
