// Package tokenizer splits raw queries into classified tokens.
//
// Tokenization lower-cases the input, splits on whitespace, drops words
// shorter than three characters, normalizes inflected forms, and resolves
// each word to a semantic type and importance weight from static lexicons.
//
//	tok := tokenizer.New()
//	tokens := tok.Tokenize("learning organic gardening")
//	// [{learning learn verb 0.9} {organic organic ecological 0.9} ...]
//
// Classification is first-match over the lexicons in a fixed priority
// order, so a word always has exactly one type. Unknown words are typed
// "other" with a default weight of 0.5.
package tokenizer
