package domain

import "github.com/google/uuid"

// Exercise is one translation task: the learner sees SourceSentence and
// rebuilds TargetSentence from its tokens. Immutable once fetched.
type Exercise struct {
	ID             uuid.UUID
	SourceSentence string
	TargetSentence string
}

// Token is a learner-manipulable unit of a target sentence.
// OriginalIndex is assigned once at scramble time and is the only identity
// used to tell equal-text tokens apart.
type Token struct {
	Text          string `json:"text"`
	OriginalIndex int    `json:"originalIndex"`
}
