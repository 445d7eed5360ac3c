// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: Severity, Code, Message, Primary span and
// optional Notes. Producers emit through a Reporter so they never depend on
// storage; BagReporter collects into a Bag, which supports limits, sorting and
// deduplication.
//
// Package diag does no formatting or IO. Rendering lives in internal/diagfmt.
package diag
