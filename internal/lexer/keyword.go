package lexer

import "sort"

// keywords is the sorted reserved-word table for binary search.
// IMPORTANT: This slice MUST remain sorted alphabetically by text.
// Contextual words (from, as, of, type, async, static, get, set) are
// deliberately absent: they are valid identifiers and the parser
// recognizes them by text where the grammar needs them.
var keywords = []struct {
	text string
	kind TokenKind
}{
	{"break", TokKwBreak},
	{"case", TokKwCase},
	{"catch", TokKwCatch},
	{"class", TokKwClass},
	{"const", TokKwConst},
	{"continue", TokKwContinue},
	{"default", TokKwDefault},
	{"delete", TokKwDelete},
	{"do", TokKwDo},
	{"else", TokKwElse},
	{"enum", TokKwEnum},
	{"export", TokKwExport},
	{"extends", TokKwExtends},
	{"false", TokKwFalse},
	{"finally", TokKwFinally},
	{"for", TokKwFor},
	{"function", TokKwFunction},
	{"if", TokKwIf},
	{"import", TokKwImport},
	{"in", TokKwIn},
	{"instanceof", TokKwInstanceof},
	{"interface", TokKwInterface},
	{"let", TokKwLet},
	{"new", TokKwNew},
	{"null", TokKwNull},
	{"return", TokKwReturn},
	{"super", TokKwSuper},
	{"switch", TokKwSwitch},
	{"this", TokKwThis},
	{"throw", TokKwThrow},
	{"true", TokKwTrue},
	{"try", TokKwTry},
	{"typeof", TokKwTypeof},
	{"var", TokKwVar},
	{"void", TokKwVoid},
	{"while", TokKwWhile},
}

// LookupKeyword returns the reserved-word kind for text, or (TokIdent, false)
// if text is an ordinary identifier.
func LookupKeyword(text string) (TokenKind, bool) {
	i := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].text >= text
	})
	if i < len(keywords) && keywords[i].text == text {
		return keywords[i].kind, true
	}
	return TokIdent, false
}
