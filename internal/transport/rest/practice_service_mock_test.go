package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/service/practice"
)

var _ practiceService = &practiceServiceMock{}

type practiceServiceMock struct {
	SnapshotFunc          func(ctx context.Context) (practice.Snapshot, error)
	ConfigureFunc         func(ctx context.Context, input practice.SettingsInput) (practice.Snapshot, error)
	ReplenishFunc         func(ctx context.Context, input practice.ReplenishInput) (practice.Snapshot, error)
	ClickFunc             func(ctx context.Context, input practice.ClickInput) (practice.ClickResult, error)
	ClearConstructionFunc func(ctx context.Context) (practice.Snapshot, error)
	RevealAnswerFunc      func(ctx context.Context) (practice.Snapshot, error)
	ReplayFunc            func(ctx context.Context) (practice.Snapshot, error)
	NextFunc              func(ctx context.Context) (practice.Snapshot, error)
	BackFunc              func(ctx context.Context) (practice.Snapshot, error)
	SpeechDoneFunc        func(ctx context.Context) (practice.Snapshot, error)
	ExplainFunc           func(ctx context.Context) (string, error)
	StatisticsFunc        func(ctx context.Context) (domain.Statistics, error)

	calls struct {
		Configure []struct{ Input practice.SettingsInput }
		Replenish []struct{ Input practice.ReplenishInput }
		Click     []struct{ Input practice.ClickInput }
	}
	lock sync.RWMutex
}

func (mock *practiceServiceMock) Snapshot(ctx context.Context) (practice.Snapshot, error) {
	if mock.SnapshotFunc == nil {
		panic("practiceServiceMock.SnapshotFunc: method is nil but practiceService.Snapshot was just called")
	}
	return mock.SnapshotFunc(ctx)
}

func (mock *practiceServiceMock) Configure(ctx context.Context, input practice.SettingsInput) (practice.Snapshot, error) {
	if mock.ConfigureFunc == nil {
		panic("practiceServiceMock.ConfigureFunc: method is nil but practiceService.Configure was just called")
	}
	mock.lock.Lock()
	mock.calls.Configure = append(mock.calls.Configure, struct{ Input practice.SettingsInput }{input})
	mock.lock.Unlock()
	return mock.ConfigureFunc(ctx, input)
}

func (mock *practiceServiceMock) ConfigureCalls() []struct{ Input practice.SettingsInput } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Configure
}

func (mock *practiceServiceMock) Replenish(ctx context.Context, input practice.ReplenishInput) (practice.Snapshot, error) {
	if mock.ReplenishFunc == nil {
		panic("practiceServiceMock.ReplenishFunc: method is nil but practiceService.Replenish was just called")
	}
	mock.lock.Lock()
	mock.calls.Replenish = append(mock.calls.Replenish, struct{ Input practice.ReplenishInput }{input})
	mock.lock.Unlock()
	return mock.ReplenishFunc(ctx, input)
}

func (mock *practiceServiceMock) ReplenishCalls() []struct{ Input practice.ReplenishInput } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Replenish
}

func (mock *practiceServiceMock) Click(ctx context.Context, input practice.ClickInput) (practice.ClickResult, error) {
	if mock.ClickFunc == nil {
		panic("practiceServiceMock.ClickFunc: method is nil but practiceService.Click was just called")
	}
	mock.lock.Lock()
	mock.calls.Click = append(mock.calls.Click, struct{ Input practice.ClickInput }{input})
	mock.lock.Unlock()
	return mock.ClickFunc(ctx, input)
}

func (mock *practiceServiceMock) ClickCalls() []struct{ Input practice.ClickInput } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Click
}

func (mock *practiceServiceMock) ClearConstruction(ctx context.Context) (practice.Snapshot, error) {
	if mock.ClearConstructionFunc == nil {
		panic("practiceServiceMock.ClearConstructionFunc: method is nil but practiceService.ClearConstruction was just called")
	}
	return mock.ClearConstructionFunc(ctx)
}

func (mock *practiceServiceMock) RevealAnswer(ctx context.Context) (practice.Snapshot, error) {
	if mock.RevealAnswerFunc == nil {
		panic("practiceServiceMock.RevealAnswerFunc: method is nil but practiceService.RevealAnswer was just called")
	}
	return mock.RevealAnswerFunc(ctx)
}

func (mock *practiceServiceMock) Replay(ctx context.Context) (practice.Snapshot, error) {
	if mock.ReplayFunc == nil {
		panic("practiceServiceMock.ReplayFunc: method is nil but practiceService.Replay was just called")
	}
	return mock.ReplayFunc(ctx)
}

func (mock *practiceServiceMock) Next(ctx context.Context) (practice.Snapshot, error) {
	if mock.NextFunc == nil {
		panic("practiceServiceMock.NextFunc: method is nil but practiceService.Next was just called")
	}
	return mock.NextFunc(ctx)
}

func (mock *practiceServiceMock) Back(ctx context.Context) (practice.Snapshot, error) {
	if mock.BackFunc == nil {
		panic("practiceServiceMock.BackFunc: method is nil but practiceService.Back was just called")
	}
	return mock.BackFunc(ctx)
}

func (mock *practiceServiceMock) SpeechDone(ctx context.Context) (practice.Snapshot, error) {
	if mock.SpeechDoneFunc == nil {
		panic("practiceServiceMock.SpeechDoneFunc: method is nil but practiceService.SpeechDone was just called")
	}
	return mock.SpeechDoneFunc(ctx)
}

func (mock *practiceServiceMock) Explain(ctx context.Context) (string, error) {
	if mock.ExplainFunc == nil {
		panic("practiceServiceMock.ExplainFunc: method is nil but practiceService.Explain was just called")
	}
	return mock.ExplainFunc(ctx)
}

func (mock *practiceServiceMock) Statistics(ctx context.Context) (domain.Statistics, error) {
	if mock.StatisticsFunc == nil {
		panic("practiceServiceMock.StatisticsFunc: method is nil but practiceService.Statistics was just called")
	}
	return mock.StatisticsFunc(ctx)
}
