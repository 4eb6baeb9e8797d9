package segment

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Katakana-Hiragana prolonged sound mark. Unicode assigns it to the Common
// script although it only appears inside kana words.
const prolongedSoundMark = 'ー'

// maxRun is the number of same-script graphemes grouped into one chunk.
const maxRun = 2

type subScript int

const (
	subOther subScript = iota
	subHan
	subHiragana
	subKatakana
	subHangul
	subThai
)

func classifyRune(r rune) subScript {
	switch {
	case unicode.Is(unicode.Han, r):
		return subHan
	case unicode.Is(unicode.Hiragana, r):
		return subHiragana
	case unicode.Is(unicode.Katakana, r) || r == prolongedSoundMark:
		return subKatakana
	case unicode.Is(unicode.Hangul, r):
		return subHangul
	case unicode.Is(unicode.Thai, r):
		return subThai
	default:
		return subOther
	}
}

// Heuristic is the dictionary-free chunker for unspaced scripts. Whitespace
// separates chunks, punctuation becomes its own chunk, and runs of at most
// two graphemes of the same sub-script are grouped. Latin letters and digits
// embedded in such text keep whole words. Combining marks stay on their base
// character because iteration is by grapheme cluster.
func Heuristic(sentence string) []string {
	var (
		chunks  []string
		current strings.Builder
		class   subScript
		count   int
	)

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		count = 0
	}

	gr := uniseg.NewGraphemes(sentence)
	for gr.Next() {
		cluster := gr.Str()
		first := gr.Runes()[0]

		switch {
		case unicode.IsSpace(first):
			flush()
			continue
		case unicode.IsPunct(first) || unicode.IsSymbol(first):
			flush()
			chunks = append(chunks, cluster)
			continue
		}

		c := classifyRune(first)
		if count > 0 && (c != class || (c != subOther && count >= maxRun)) {
			flush()
		}
		class = c
		current.WriteString(cluster)
		count++
	}
	flush()

	return chunks
}
