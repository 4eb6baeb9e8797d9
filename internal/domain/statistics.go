package domain

// Statistics holds a learner's running practice counters.
type Statistics struct {
	SentencesCompleted int `json:"sentencesCompleted"`
	TotalAttempts      int `json:"totalAttempts"`
	Streak             int `json:"streak"`
	BestStreak         int `json:"bestStreak"`
}

// RecordCorrect returns the statistics after one correctly completed sentence.
func (s Statistics) RecordCorrect() Statistics {
	s.SentencesCompleted++
	s.TotalAttempts++
	s.Streak++
	s.BestStreak = max(s.BestStreak, s.Streak)
	return s
}
