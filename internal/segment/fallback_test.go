package segment

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestHeuristic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{"han runs of two", "我喜欢学习中文", []string{"我喜", "欢学", "习中", "文"}},
		{"punctuation is its own chunk", "こんにちは、世界！", []string{"こん", "にち", "は", "、", "世界", "！"}},
		{"script change splits", "東京へ", []string{"東京", "へ"}},
		{"whitespace separates", "안녕하세요 세계", []string{"안녕", "하세", "요", "세계"}},
		{"latin word kept whole", "我爱pizza", []string{"我爱", "pizza"}},
		{"prolonged mark stays in katakana", "コーヒー", []string{"コー", "ヒー"}},
		{"empty", "", nil},
		{"only spaces", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Heuristic(tt.sentence))
		})
	}
}

func TestHeuristic_ThaiKeepsCombiningMarks(t *testing.T) {
	t.Parallel()

	sentence := "สวัสดีครับ"
	chunks := Heuristic(sentence)

	assert.Equal(t, sentence, strings.Join(chunks, ""))
	for _, c := range chunks {
		first, _ := utf8.DecodeRuneInString(c)
		assert.False(t, unicode.Is(unicode.Mn, first), "chunk %q starts with a combining mark", c)
	}
}

func TestHeuristic_RebuildsSentence(t *testing.T) {
	t.Parallel()

	for _, sentence := range []string{
		"我喜欢学习中文。",
		"私は学生です",
		"ผมชอบกินข้าว",
		"오늘 날씨가 좋네요",
	} {
		chunks := Heuristic(sentence)
		assert.Equal(t, StripSpace(sentence), strings.Join(chunks, ""), sentence)
	}
}
