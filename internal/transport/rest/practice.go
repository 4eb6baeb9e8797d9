package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/service/practice"
	"github.com/heartmarshall/rapidlingo-backend/internal/transport/middleware"
)

type practiceService interface {
	Snapshot(ctx context.Context) (practice.Snapshot, error)
	Configure(ctx context.Context, input practice.SettingsInput) (practice.Snapshot, error)
	Replenish(ctx context.Context, input practice.ReplenishInput) (practice.Snapshot, error)
	Click(ctx context.Context, input practice.ClickInput) (practice.ClickResult, error)
	ClearConstruction(ctx context.Context) (practice.Snapshot, error)
	RevealAnswer(ctx context.Context) (practice.Snapshot, error)
	Replay(ctx context.Context) (practice.Snapshot, error)
	Next(ctx context.Context) (practice.Snapshot, error)
	Back(ctx context.Context) (practice.Snapshot, error)
	SpeechDone(ctx context.Context) (practice.Snapshot, error)
	Explain(ctx context.Context) (string, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
}

// PracticeHandler serves the practice API.
type PracticeHandler struct {
	svc practiceService
	log *slog.Logger
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(svc practiceService, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{svc: svc, log: logger.With("handler", "practice")}
}

// RouteGuards wraps groups of API routes. Nil guards are skipped.
type RouteGuards struct {
	// API wraps every route under /api.
	API middleware.Middleware
	// Replenish and Explain wrap the routes that call the exercise source.
	Replenish middleware.Middleware
	Explain   middleware.Middleware
}

// Routes mounts the practice API on mux.
func (h *PracticeHandler) Routes(mux *http.ServeMux, g RouteGuards) {
	handle := func(pattern string, fn http.HandlerFunc, extra ...middleware.Middleware) {
		mux.Handle(pattern, middleware.Chain(append([]middleware.Middleware{g.API}, extra...)...)(fn))
	}

	handle("GET /api/languages", h.Languages)
	handle("GET /api/practice", h.Get)
	handle("PUT /api/practice/settings", h.Configure)
	handle("POST /api/practice/replenish", h.Replenish, g.Replenish)
	handle("POST /api/practice/click", h.Click)
	handle("POST /api/practice/clear", h.snapshotAction(h.svc.ClearConstruction))
	handle("POST /api/practice/reveal", h.snapshotAction(h.svc.RevealAnswer))
	handle("POST /api/practice/replay", h.snapshotAction(h.svc.Replay))
	handle("POST /api/practice/next", h.snapshotAction(h.svc.Next))
	handle("POST /api/practice/back", h.snapshotAction(h.svc.Back))
	handle("POST /api/practice/speech-done", h.snapshotAction(h.svc.SpeechDone))
	handle("POST /api/practice/explain", h.Explain, g.Explain)
	handle("GET /api/practice/statistics", h.Statistics)
}

// ---------------------------------------------------------------------------
// Requests / responses
// ---------------------------------------------------------------------------

type settingsRequest struct {
	FromLanguage   string `json:"fromLanguage"`
	ToLanguage     string `json:"toLanguage"`
	Theme          string `json:"theme"`
	SentenceLength int    `json:"sentenceLength"`
	Count          int    `json:"count"`
	Repetitions    int    `json:"repetitions"`
}

type replenishRequest struct {
	Count int `json:"count"`
}

type clickRequest struct {
	OriginalIndex *int `json:"originalIndex"`
}

type snapshotResponse struct {
	Settings       domain.PracticeSettings `json:"settings"`
	QueueState     string                  `json:"queueState"`
	Position       int                     `json:"position"`
	Total          int                     `json:"total"`
	AwaitingSpeech bool                    `json:"awaitingSpeech"`
	Exercise       *exerciseResponse       `json:"exercise,omitempty"`
	Speech         *speechResponse         `json:"speech,omitempty"`
}

type exerciseResponse struct {
	Key            string         `json:"key"`
	Repetition     int            `json:"repetition"`
	Source         string         `json:"source"`
	Target         string         `json:"target,omitempty"`
	Available      []domain.Token `json:"available"`
	Construction   []domain.Token `json:"construction"`
	Status         string         `json:"status"`
	AnswerRevealed bool           `json:"answerRevealed"`
	Completed      bool           `json:"completed"`
}

// speechResponse tells the client what to play before reporting
// speech-done.
type speechResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type clickResponse struct {
	Outcome string           `json:"outcome"`
	Session snapshotResponse `json:"session"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

func toSnapshotResponse(s practice.Snapshot) snapshotResponse {
	resp := snapshotResponse{
		Settings:       s.Settings,
		QueueState:     s.QueueState,
		Position:       s.Position,
		Total:          s.Total,
		AwaitingSpeech: s.AwaitingSpeech,
	}
	if ex := s.Exercise; ex != nil {
		resp.Exercise = &exerciseResponse{
			Key:            ex.Key,
			Repetition:     ex.Repetition,
			Source:         ex.Source,
			Target:         ex.Target,
			Available:      nonNil(ex.Available),
			Construction:   nonNil(ex.Construction),
			Status:         string(ex.Status),
			AnswerRevealed: ex.AnswerRevealed,
			Completed:      ex.Completed,
		}
		if s.AwaitingSpeech {
			resp.Speech = &speechResponse{Text: ex.Target, Language: s.Settings.ToLanguage}
		}
	}
	return resp
}

func nonNil(tokens []domain.Token) []domain.Token {
	if tokens == nil {
		return []domain.Token{}
	}
	return tokens
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Languages handles GET /api/languages.
func (h *PracticeHandler) Languages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Languages)
}

// Get handles GET /api/practice.
func (h *PracticeHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// Configure handles PUT /api/practice/settings.
func (h *PracticeHandler) Configure(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.svc.Configure(r.Context(), practice.SettingsInput{
		FromLanguage:   req.FromLanguage,
		ToLanguage:     req.ToLanguage,
		Theme:          req.Theme,
		SentenceLength: req.SentenceLength,
		Count:          req.Count,
		Repetitions:    req.Repetitions,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// Replenish handles POST /api/practice/replenish.
func (h *PracticeHandler) Replenish(w http.ResponseWriter, r *http.Request) {
	var req replenishRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.svc.Replenish(r.Context(), practice.ReplenishInput{Count: req.Count})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// Click handles POST /api/practice/click.
func (h *PracticeHandler) Click(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OriginalIndex == nil {
		handleError(w, r, h.log, domain.NewValidationError("originalIndex", "required"))
		return
	}

	res, err := h.svc.Click(r.Context(), practice.ClickInput{OriginalIndex: *req.OriginalIndex})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, clickResponse{
		Outcome: res.Outcome,
		Session: toSnapshotResponse(res.Snapshot),
	})
}

// Explain handles POST /api/practice/explain.
func (h *PracticeHandler) Explain(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.Explain(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, explainResponse{Explanation: text})
}

// Statistics handles GET /api/practice/statistics.
func (h *PracticeHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Statistics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// snapshotAction adapts a bodiless session action to a handler.
func (h *PracticeHandler) snapshotAction(action func(context.Context) (practice.Snapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := action(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
	}
}
