package game

import (
	"slices"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

// Pool is an ordered collection of tokens.
type Pool []domain.Token

// IndexOf returns the position of the token with the given original index, or -1.
func (p Pool) IndexOf(originalIndex int) int {
	return slices.IndexFunc(p, func(t domain.Token) bool { return t.OriginalIndex == originalIndex })
}

// Contains reports whether p holds the token with the given original index.
func (p Pool) Contains(originalIndex int) bool {
	return p.IndexOf(originalIndex) >= 0
}

// Texts returns token texts in pool order.
func (p Pool) Texts() []string {
	out := make([]string, len(p))
	for i, t := range p {
		out[i] = t.Text
	}
	return out
}

func (p Pool) remove(originalIndex int) Pool {
	i := p.IndexOf(originalIndex)
	if i < 0 {
		return slices.Clone(p)
	}
	return slices.Concat(p[:i], p[i+1:])
}

func (p Pool) append(t domain.Token) Pool {
	return slices.Concat(p, Pool{t})
}

// Scramble turns pieces into tokens numbered in reading order and returns
// them shuffled.
func Scramble(pieces []string, rng Rand) Pool {
	tokens := make(Pool, len(pieces))
	for i, text := range pieces {
		tokens[i] = domain.Token{Text: text, OriginalIndex: i}
	}
	return Shuffle(tokens, rng)
}

// MoveToConstruction removes token from available (if present) and appends
// it to construction. Both inputs are left untouched.
func MoveToConstruction(token domain.Token, available, construction Pool) (Pool, Pool) {
	return available.remove(token.OriginalIndex), construction.append(token)
}

// RemoveFromConstruction removes token from construction (if present) and
// appends it to the end of available. Both inputs are left untouched.
func RemoveFromConstruction(token domain.Token, available, construction Pool) (Pool, Pool) {
	return available.append(token), construction.remove(token.OriginalIndex)
}

// ClearConstruction returns every constructed token to the end of available,
// in construction order.
func ClearConstruction(available, construction Pool) (Pool, Pool) {
	return slices.Concat(available, construction), Pool{}
}
