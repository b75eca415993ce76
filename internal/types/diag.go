package types

// SpanDiagnostic is a lexer or parser message anchored to a source span.
// The module path and line/column are attached at the load boundary,
// where the source and path are both known.
type SpanDiagnostic struct {
	Span    Span
	Message string
}
