// Package input holds the pending text of the entry field.
//
// Buffer edits are measured in grapheme clusters so a cursor never lands
// inside a combined character or emoji sequence. Inserted text is
// NFC-normalized and control whitespace is flattened to spaces.
package input
