package segment

import (
	"fmt"
	"sync"

	"github.com/go-ego/gse"
)

// DictionaryBreaker segments CJK text with gse word dictionaries. Text with
// kana goes through the Japanese dictionary, other Han text through the
// Chinese one. Hangul and Thai are reported as unsupported so the caller
// falls back. Each dictionary is loaded on first use.
type DictionaryBreaker struct {
	zh dictionary
	ja dictionary
}

// NewDictionaryBreaker creates a breaker backed by the embedded dictionaries.
func NewDictionaryBreaker() *DictionaryBreaker {
	return &DictionaryBreaker{
		zh: dictionary{name: "zh"},
		ja: dictionary{name: "ja"},
	}
}

// Break implements Breaker.
func (b *DictionaryBreaker) Break(text string) ([]string, error) {
	switch cjkVariant(text) {
	case variantHan:
		return b.zh.cut(text)
	case variantJapanese:
		return b.ja.cut(text)
	default:
		return nil, ErrUnsupported
	}
}

type dictionary struct {
	name    string
	once    sync.Once
	loadErr error
	mu      sync.Mutex // gse.Segmenter.Cut is not safe for concurrent use
	seg     gse.Segmenter
}

func (d *dictionary) cut(text string) ([]string, error) {
	d.once.Do(func() {
		d.seg.SkipLog = true
		d.loadErr = d.seg.LoadDictEmbed(d.name)
	})
	if d.loadErr != nil {
		return nil, fmt.Errorf("load %s dictionary: %w", d.name, d.loadErr)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seg.Cut(text, true), nil
}

type variant int

const (
	variantHan variant = iota
	variantJapanese
	variantUnsupported
)

// cjkVariant picks the dictionary for text. Hangul or Thai anywhere makes
// the text unsupported; otherwise any kana marks it Japanese.
func cjkVariant(text string) variant {
	v := variantHan
	for _, r := range text {
		switch classifyRune(r) {
		case subHangul, subThai:
			return variantUnsupported
		case subHiragana, subKatakana:
			v = variantJapanese
		}
	}
	return v
}

var _ Breaker = (*DictionaryBreaker)(nil)
