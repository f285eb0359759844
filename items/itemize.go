package items

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Avery Laird
*/

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/unicode/norm"
)

// SoftHyphen marks hyphenation opportunities in input text. Hyphenating
// words is not the tokenizer's business; it only recognizes the marks a
// hyphenation pass has left behind.
const SoftHyphen = '\u00ad'

// Tokenize segments raw text into the builder's token stream.
//
// The input is read through an NFC-normalizing reader. We use a
// uax14.LineWrap as the primary breaker and a segment.SimpleWordBreaker to
// extract spans of whitespace, a default configuration adequate for
// western languages. Whitespace spans collapse into a single space token;
// soft hyphens split the surrounding fragment into word parts.
func Tokenize(text io.Reader) []Token {
	seg := segment.NewSegmenter(uax14.NewLineWrap(), segment.NewSimpleWordBreaker())
	seg.Init(bufio.NewReader(norm.NFC.Reader(text)))
	var tokens []Token
	for seg.Next() {
		fragment := seg.Text()
		if fragment == "" {
			continue
		}
		T().Debugf("next segment = '%s'", fragment)
		if isspace(fragment) {
			if len(tokens) > 0 && tokens[len(tokens)-1].Kind != TokenSpace {
				tokens = append(tokens, Token{Kind: TokenSpace, Text: " "})
			}
			continue
		}
		parts := strings.Split(fragment, string(SoftHyphen))
		for i, part := range parts {
			if i > 0 {
				tokens = append(tokens, Token{Kind: TokenSoftHyphen})
			}
			if part != "" {
				tokens = append(tokens, Token{Kind: TokenWord, Text: part})
			}
		}
	}
	return tokens
}

// ParagraphFromText tokenizes raw text and builds a paragraph from it,
// measuring widths with the given measurer.
func ParagraphFromText(text io.Reader, measure Measurer) *Paragraph {
	return BuildParagraph(Tokenize(text), measure)
}

func isspace(text string) bool {
	r, width := utf8.DecodeRuneInString(text)
	if width == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.IsSpace(r)
}
