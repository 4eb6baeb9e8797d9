package game

import (
	"strings"

	"github.com/heartmarshall/rapidlingo-backend/internal/segment"
)

// CheckCompletion reports whether the constructed tokens spell target.
// Unspaced scripts compare the concatenation against target with all
// whitespace removed; everything else joins with single spaces and compares
// exactly.
func CheckCompletion(construction Pool, target string) bool {
	if segment.Classify(target).Unspaced() {
		return strings.Join(construction.Texts(), "") == segment.StripSpace(target)
	}
	return strings.Join(construction.Texts(), " ") == target
}
