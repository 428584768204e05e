// Package block tokenizes G-code blocks into builder callbacks.
//
// A block is one line of G-code; a word is an address letter followed by
// a numeric value. The parser walks the input one byte at a time,
// classifies each word by its leading letter, runs the word's literal
// through an embedded decimal parser, and invokes exactly one Builder
// method per recognized element, in input order:
//
//	| Input        | Callback                           |
//	|--------------|------------------------------------|
//	| first byte   | ProgramStart (once per program)    |
//	| N10          | SequenceNumber(false, 10)          |
//	| N0010        | SequenceNumber(true, 10)           |
//	| G1           | GCode(1)                           |
//	| M30          | MCode(30)                          |
//	| X12.5        | Data('X', no index, 12.5)          |
//	| P2=4.5       | Data('P', index 2, 4.5)            |
//	| end of line  | EndBlock (if anything was emitted) |
//
// There is no parse tree and no buffering: the builder is the only output
// channel, and the only byte ever held is the one being processed. The
// successful path performs no heap allocation.
//
// Grammar notes beyond the words themselves:
//
//   - Letters are case folded, so g1 and G1 are the same word.
//   - Space, tab, and carriage return are insignificant; newline ends
//     the block.
//   - A sequence number must be the first word of its block; a word after
//     a *nnn checksum is an error; the checksum value itself is parsed
//     and discarded.
//   - Comments are skipped without callbacks: ";" and "%" discard the
//     rest of the line, "(...)" must close before the line ends.
//   - A leading "/" (block delete) is consumed and otherwise ignored.
//
// Errors are terminal for the feed call that produced them. The parser
// does not resynchronize mid word; a caller that wants to continue after
// an error should Reset and resume on a clean block boundary.
package block
