// Package segment splits sentences into learner-manipulable chunks. The
// splitting strategy is chosen per sentence from the script it is written in.
package segment

import "unicode"

// Script is the handling class of a sentence.
type Script int

const (
	ScriptSpaceDelimited Script = iota
	ScriptCJK
	ScriptThai
	ScriptArabic
)

func (s Script) String() string {
	switch s {
	case ScriptCJK:
		return "cjk"
	case ScriptThai:
		return "thai"
	case ScriptArabic:
		return "arabic"
	default:
		return "space_delimited"
	}
}

// Unspaced reports whether the script's reference text carries no
// inter-word spacing, so tokens rejoin without a separator.
func (s Script) Unspaced() bool {
	return s == ScriptCJK || s == ScriptThai
}

var cjkTables = []*unicode.RangeTable{unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul}

// Classify scans sentence and returns its handling class. Precedence is
// CJK, then Thai, then Arabic; anything else is space-delimited.
func Classify(sentence string) Script {
	var thai, arabic bool
	for _, r := range sentence {
		switch {
		case unicode.In(r, cjkTables...) || r == prolongedSoundMark:
			return ScriptCJK
		case unicode.Is(unicode.Thai, r):
			thai = true
		case unicode.Is(unicode.Arabic, r):
			arabic = true
		}
	}
	switch {
	case thai:
		return ScriptThai
	case arabic:
		return ScriptArabic
	default:
		return ScriptSpaceDelimited
	}
}
