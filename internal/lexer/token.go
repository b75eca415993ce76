// Package lexer provides tokenization for ECMAScript/TypeScript module
// source text.
package lexer

import (
	"github.com/suseejs/duplicates/internal/types"
)

// Token is a token with kind and source span.
type Token struct {
	Kind TokenKind
	Span types.Span
}

// NewToken creates a new token.
func NewToken(kind TokenKind, span types.Span) Token {
	return Token{Kind: kind, Span: span}
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// === Special ===

	// TokError is a lexical error.
	TokError TokenKind = iota
	// TokEOF is end of input.
	TokEOF

	// === Identifiers and literals ===

	// TokIdent is an identifier. Contextual words (from, as, of, type,
	// async, static, get, set) lex as TokIdent; the parser compares text.
	TokIdent
	// TokNumber is a numeric literal (decimal, hex, octal, binary, exponent).
	TokNumber
	// TokString is a single- or double-quoted string literal.
	TokString
	// TokTemplate is a backtick template literal, lexed as one opaque token
	// including any interpolations.
	TokTemplate

	// === Punctuation ===

	// TokLParen is '('.
	TokLParen
	// TokRParen is ')'.
	TokRParen
	// TokLBrace is '{'.
	TokLBrace
	// TokRBrace is '}'.
	TokRBrace
	// TokLBracket is '['.
	TokLBracket
	// TokRBracket is ']'.
	TokRBracket
	// TokSemicolon is ';'.
	TokSemicolon
	// TokComma is ','.
	TokComma
	// TokDot is '.'.
	TokDot
	// TokColon is ':'.
	TokColon
	// TokQuestion is '?'.
	TokQuestion

	// === Operators ===

	// TokAssign is '='.
	TokAssign
	// TokArrow is '=>'.
	TokArrow
	// TokEq is '=='.
	TokEq
	// TokStrictEq is '==='.
	TokStrictEq
	// TokNot is '!'.
	TokNot
	// TokNotEq is '!='.
	TokNotEq
	// TokStrictNotEq is '!=='.
	TokStrictNotEq
	// TokLt is '<'.
	TokLt
	// TokLtEq is '<='.
	TokLtEq
	// TokGt is '>'.
	TokGt
	// TokGtEq is '>='.
	TokGtEq
	// TokPlus is '+'.
	TokPlus
	// TokMinus is '-'.
	TokMinus
	// TokStar is '*'.
	TokStar
	// TokSlash is '/'.
	TokSlash
	// TokPercent is '%'.
	TokPercent
	// TokPlusPlus is '++'.
	TokPlusPlus
	// TokMinusMinus is '--'.
	TokMinusMinus
	// TokPlusAssign is '+='.
	TokPlusAssign
	// TokMinusAssign is '-='.
	TokMinusAssign
	// TokStarAssign is '*='.
	TokStarAssign
	// TokSlashAssign is '/='.
	TokSlashAssign
	// TokAndAnd is '&&'.
	TokAndAnd
	// TokOrOr is '||'.
	TokOrOr
	// TokNullish is '??'.
	TokNullish
	// TokOptionalChain is '?.'.
	TokOptionalChain
	// TokSpread is '...'.
	TokSpread
	// TokAmp is '&'.
	TokAmp
	// TokPipe is '|'.
	TokPipe
	// TokCaret is '^'.
	TokCaret
	// TokTilde is '~'.
	TokTilde

	// === Reserved words ===

	// TokKwBreak is 'break'.
	TokKwBreak
	// TokKwCase is 'case'.
	TokKwCase
	// TokKwCatch is 'catch'.
	TokKwCatch
	// TokKwClass is 'class'.
	TokKwClass
	// TokKwConst is 'const'.
	TokKwConst
	// TokKwContinue is 'continue'.
	TokKwContinue
	// TokKwDefault is 'default'.
	TokKwDefault
	// TokKwDelete is 'delete'.
	TokKwDelete
	// TokKwDo is 'do'.
	TokKwDo
	// TokKwElse is 'else'.
	TokKwElse
	// TokKwEnum is 'enum'.
	TokKwEnum
	// TokKwExport is 'export'.
	TokKwExport
	// TokKwExtends is 'extends'.
	TokKwExtends
	// TokKwFalse is 'false'.
	TokKwFalse
	// TokKwFinally is 'finally'.
	TokKwFinally
	// TokKwFor is 'for'.
	TokKwFor
	// TokKwFunction is 'function'.
	TokKwFunction
	// TokKwIf is 'if'.
	TokKwIf
	// TokKwImport is 'import'.
	TokKwImport
	// TokKwIn is 'in'.
	TokKwIn
	// TokKwInstanceof is 'instanceof'.
	TokKwInstanceof
	// TokKwInterface is 'interface'.
	TokKwInterface
	// TokKwLet is 'let'.
	TokKwLet
	// TokKwNew is 'new'.
	TokKwNew
	// TokKwNull is 'null'.
	TokKwNull
	// TokKwReturn is 'return'.
	TokKwReturn
	// TokKwSuper is 'super'.
	TokKwSuper
	// TokKwSwitch is 'switch'.
	TokKwSwitch
	// TokKwThis is 'this'.
	TokKwThis
	// TokKwThrow is 'throw'.
	TokKwThrow
	// TokKwTrue is 'true'.
	TokKwTrue
	// TokKwTry is 'try'.
	TokKwTry
	// TokKwTypeof is 'typeof'.
	TokKwTypeof
	// TokKwVar is 'var'.
	TokKwVar
	// TokKwVoid is 'void'.
	TokKwVoid
	// TokKwWhile is 'while'.
	TokKwWhile
)

// IsKeyword returns true for reserved-word token kinds.
func (k TokenKind) IsKeyword() bool {
	return k >= TokKwBreak && k <= TokKwWhile
}
