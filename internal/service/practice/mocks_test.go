package practice

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/provider"
)

var (
	_ translationRepo = &translationRepoMock{}
	_ statisticsRepo  = &statisticsRepoMock{}
	_ txManager       = &txManagerMock{}
	_ exerciseSource  = &exerciseSourceMock{}
	_ speaker         = &speakerMock{}
)

// ---------------------------------------------------------------------------
// translationRepoMock
// ---------------------------------------------------------------------------

type translationRepoMock struct {
	InsertBatchFunc      func(ctx context.Context, userID uuid.UUID, from, to string, exercises []domain.Exercise) (domain.BatchInsertResult, error)
	IncrementCorrectFunc func(ctx context.Context, key domain.TranslationKey) error
	ListForPracticeFunc  func(ctx context.Context, userID uuid.UUID, from, to string, threshold, limit int) ([]domain.TranslationRecord, error)
	RecentTargetsFunc    func(ctx context.Context, userID uuid.UUID, from, to string, limit int) ([]string, error)

	calls struct {
		InsertBatch []struct {
			UserID    uuid.UUID
			From      string
			To        string
			Exercises []domain.Exercise
		}
		IncrementCorrect []struct {
			Key domain.TranslationKey
		}
		ListForPractice []struct {
			UserID    uuid.UUID
			From      string
			To        string
			Threshold int
			Limit     int
		}
		RecentTargets []struct {
			UserID uuid.UUID
			From   string
			To     string
			Limit  int
		}
	}
	lock sync.RWMutex
}

func (mock *translationRepoMock) InsertBatch(ctx context.Context, userID uuid.UUID, from, to string, exercises []domain.Exercise) (domain.BatchInsertResult, error) {
	if mock.InsertBatchFunc == nil {
		panic("translationRepoMock.InsertBatchFunc: method is nil but translationRepo.InsertBatch was just called")
	}
	mock.lock.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, struct {
		UserID    uuid.UUID
		From      string
		To        string
		Exercises []domain.Exercise
	}{userID, from, to, exercises})
	mock.lock.Unlock()
	return mock.InsertBatchFunc(ctx, userID, from, to, exercises)
}

func (mock *translationRepoMock) InsertBatchCalls() []struct {
	UserID    uuid.UUID
	From      string
	To        string
	Exercises []domain.Exercise
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.InsertBatch
}

func (mock *translationRepoMock) IncrementCorrect(ctx context.Context, key domain.TranslationKey) error {
	if mock.IncrementCorrectFunc == nil {
		panic("translationRepoMock.IncrementCorrectFunc: method is nil but translationRepo.IncrementCorrect was just called")
	}
	mock.lock.Lock()
	mock.calls.IncrementCorrect = append(mock.calls.IncrementCorrect, struct {
		Key domain.TranslationKey
	}{key})
	mock.lock.Unlock()
	return mock.IncrementCorrectFunc(ctx, key)
}

func (mock *translationRepoMock) IncrementCorrectCalls() []struct {
	Key domain.TranslationKey
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.IncrementCorrect
}

func (mock *translationRepoMock) ListForPractice(ctx context.Context, userID uuid.UUID, from, to string, threshold, limit int) ([]domain.TranslationRecord, error) {
	if mock.ListForPracticeFunc == nil {
		panic("translationRepoMock.ListForPracticeFunc: method is nil but translationRepo.ListForPractice was just called")
	}
	mock.lock.Lock()
	mock.calls.ListForPractice = append(mock.calls.ListForPractice, struct {
		UserID    uuid.UUID
		From      string
		To        string
		Threshold int
		Limit     int
	}{userID, from, to, threshold, limit})
	mock.lock.Unlock()
	return mock.ListForPracticeFunc(ctx, userID, from, to, threshold, limit)
}

func (mock *translationRepoMock) ListForPracticeCalls() []struct {
	UserID    uuid.UUID
	From      string
	To        string
	Threshold int
	Limit     int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListForPractice
}

func (mock *translationRepoMock) RecentTargets(ctx context.Context, userID uuid.UUID, from, to string, limit int) ([]string, error) {
	if mock.RecentTargetsFunc == nil {
		panic("translationRepoMock.RecentTargetsFunc: method is nil but translationRepo.RecentTargets was just called")
	}
	mock.lock.Lock()
	mock.calls.RecentTargets = append(mock.calls.RecentTargets, struct {
		UserID uuid.UUID
		From   string
		To     string
		Limit  int
	}{userID, from, to, limit})
	mock.lock.Unlock()
	return mock.RecentTargetsFunc(ctx, userID, from, to, limit)
}

func (mock *translationRepoMock) RecentTargetsCalls() []struct {
	UserID uuid.UUID
	From   string
	To     string
	Limit  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RecentTargets
}

// ---------------------------------------------------------------------------
// statisticsRepoMock
// ---------------------------------------------------------------------------

type statisticsRepoMock struct {
	GetFunc          func(ctx context.Context, userID uuid.UUID) (domain.Statistics, error)
	GetForUpdateFunc func(ctx context.Context, userID uuid.UUID) (domain.Statistics, error)
	SaveFunc         func(ctx context.Context, userID uuid.UUID, s domain.Statistics) error

	calls struct {
		Get          []struct{ UserID uuid.UUID }
		GetForUpdate []struct{ UserID uuid.UUID }
		Save         []struct {
			UserID uuid.UUID
			S      domain.Statistics
		}
	}
	lock sync.RWMutex
}

func (mock *statisticsRepoMock) Get(ctx context.Context, userID uuid.UUID) (domain.Statistics, error) {
	if mock.GetFunc == nil {
		panic("statisticsRepoMock.GetFunc: method is nil but statisticsRepo.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *statisticsRepoMock) GetCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Get
}

func (mock *statisticsRepoMock) GetForUpdate(ctx context.Context, userID uuid.UUID) (domain.Statistics, error) {
	if mock.GetForUpdateFunc == nil {
		panic("statisticsRepoMock.GetForUpdateFunc: method is nil but statisticsRepo.GetForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, struct{ UserID uuid.UUID }{userID})
	mock.lock.Unlock()
	return mock.GetForUpdateFunc(ctx, userID)
}

func (mock *statisticsRepoMock) GetForUpdateCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetForUpdate
}

func (mock *statisticsRepoMock) Save(ctx context.Context, userID uuid.UUID, s domain.Statistics) error {
	if mock.SaveFunc == nil {
		panic("statisticsRepoMock.SaveFunc: method is nil but statisticsRepo.Save was just called")
	}
	mock.lock.Lock()
	mock.calls.Save = append(mock.calls.Save, struct {
		UserID uuid.UUID
		S      domain.Statistics
	}{userID, s})
	mock.lock.Unlock()
	return mock.SaveFunc(ctx, userID, s)
}

func (mock *statisticsRepoMock) SaveCalls() []struct {
	UserID uuid.UUID
	S      domain.Statistics
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Save
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}

// ---------------------------------------------------------------------------
// exerciseSourceMock
// ---------------------------------------------------------------------------

type exerciseSourceMock struct {
	NameFunc     func() string
	GenerateFunc func(ctx context.Context, req provider.ExerciseRequest) ([]domain.Exercise, error)
	ExplainFunc  func(ctx context.Context, req provider.ExplainRequest) (string, error)

	calls struct {
		Generate []struct{ Req provider.ExerciseRequest }
		Explain  []struct{ Req provider.ExplainRequest }
	}
	lock sync.RWMutex
}

func (mock *exerciseSourceMock) Name() string {
	if mock.NameFunc == nil {
		return "mock"
	}
	return mock.NameFunc()
}

func (mock *exerciseSourceMock) Generate(ctx context.Context, req provider.ExerciseRequest) ([]domain.Exercise, error) {
	if mock.GenerateFunc == nil {
		panic("exerciseSourceMock.GenerateFunc: method is nil but exerciseSource.Generate was just called")
	}
	mock.lock.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct{ Req provider.ExerciseRequest }{req})
	mock.lock.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *exerciseSourceMock) GenerateCalls() []struct{ Req provider.ExerciseRequest } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Generate
}

func (mock *exerciseSourceMock) Explain(ctx context.Context, req provider.ExplainRequest) (string, error) {
	if mock.ExplainFunc == nil {
		panic("exerciseSourceMock.ExplainFunc: method is nil but exerciseSource.Explain was just called")
	}
	mock.lock.Lock()
	mock.calls.Explain = append(mock.calls.Explain, struct{ Req provider.ExplainRequest }{req})
	mock.lock.Unlock()
	return mock.ExplainFunc(ctx, req)
}

func (mock *exerciseSourceMock) ExplainCalls() []struct{ Req provider.ExplainRequest } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Explain
}

// ---------------------------------------------------------------------------
// speakerMock
// ---------------------------------------------------------------------------

type speakerMock struct {
	SpeakFunc  func(ctx context.Context, key, text, lang string, onDone func())
	DoneFunc   func(key string) bool
	CancelFunc func(key string)

	calls struct {
		Speak []struct {
			Key  string
			Text string
			Lang string
		}
		Done   []struct{ Key string }
		Cancel []struct{ Key string }
	}
	lock sync.RWMutex
}

func (mock *speakerMock) Speak(ctx context.Context, key, text, lang string, onDone func()) {
	if mock.SpeakFunc == nil {
		panic("speakerMock.SpeakFunc: method is nil but speaker.Speak was just called")
	}
	mock.lock.Lock()
	mock.calls.Speak = append(mock.calls.Speak, struct {
		Key  string
		Text string
		Lang string
	}{key, text, lang})
	mock.lock.Unlock()
	mock.SpeakFunc(ctx, key, text, lang, onDone)
}

func (mock *speakerMock) SpeakCalls() []struct {
	Key  string
	Text string
	Lang string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Speak
}

func (mock *speakerMock) Done(key string) bool {
	if mock.DoneFunc == nil {
		panic("speakerMock.DoneFunc: method is nil but speaker.Done was just called")
	}
	mock.lock.Lock()
	mock.calls.Done = append(mock.calls.Done, struct{ Key string }{key})
	mock.lock.Unlock()
	return mock.DoneFunc(key)
}

func (mock *speakerMock) DoneCalls() []struct{ Key string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Done
}

func (mock *speakerMock) Cancel(key string) {
	if mock.CancelFunc == nil {
		panic("speakerMock.CancelFunc: method is nil but speaker.Cancel was just called")
	}
	mock.lock.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, struct{ Key string }{key})
	mock.lock.Unlock()
	mock.CancelFunc(key)
}

func (mock *speakerMock) CancelCalls() []struct{ Key string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Cancel
}
