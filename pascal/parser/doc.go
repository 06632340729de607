// Package parser implements the analysis front end for Mini-Pascal: a
// line-oriented lexer and an error-tolerant LL(1) recursive-descent
// parser that builds scope-aware symbol tables.
//
// The pipeline is strictly one-way:
//
//	source text ──▶ Lexer ──▶ tokens (+ lexical errors)
//	tokens ──▶ Parser ──▶ cleaned tokens, variable table,
//	                      procedure table, error list, success flag
//
// Every parsing decision is made from a single token of lookahead over
// a forward-only Cursor; nothing is ever un-consumed. Errors are data,
// not control flow: soft errors are collected (at most one per source
// line) while analysis continues, and only a statement-position token
// that can start no execution aborts the parse.
//
// A run is single-threaded and short-lived. Tokenizing everything up
// front and parsing all at once produces the same tables and errors as
// any incremental feeding of the same source.
package parser
