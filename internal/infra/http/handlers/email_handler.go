package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/xavierca1/inbox-crm/internal/ai"
	"github.com/xavierca1/inbox-crm/internal/infra/http/middleware"
	"github.com/xavierca1/inbox-crm/internal/usecase"
)

// EmailHandler is the public intake surface: the webhook that mail
// forwarding services POST to, plus the unauthenticated test endpoints for
// the classifier and drafter. Being public, the webhook is rate limited per
// client IP.
type EmailHandler struct {
	ProcessUC   *usecase.ProcessEmailUseCase
	Classifier  *ai.Classifier
	Scorer      *ai.Scorer
	Drafter     *ai.Drafter
	rateLimiter *RateLimiter
}

func NewEmailHandler(uc *usecase.ProcessEmailUseCase, classifier *ai.Classifier, scorer *ai.Scorer, drafter *ai.Drafter) *EmailHandler {
	return &EmailHandler{
		ProcessUC:   uc,
		Classifier:  classifier,
		Scorer:      scorer,
		Drafter:     drafter,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min per IP
	}
}

func (h *EmailHandler) ProcessEmail(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeError(w, http.StatusTooManyRequests, "too many requests, please try again later")
		return
	}

	var input usecase.ProcessEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	input.Source = "webhook"

	output, err := h.ProcessUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if output.Skipped {
		middleware.RecordEmailSkipped(input.Source)
		writeJSON(w, http.StatusOK, output)
		return
	}

	middleware.RecordEmailProcessed(string(output.Intent), input.Source)
	writeJSON(w, http.StatusCreated, output)
}

type testIntentRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TestIntent classifies and scores a message without persisting anything.
func (h *EmailHandler) TestIntent(w http.ResponseWriter, r *http.Request) {
	var req testIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	text := req.Subject + "\n" + req.Body
	classification := h.Classifier.Classify(text)
	sentiment := h.Scorer.Score(text)

	writeJSON(w, http.StatusOK, map[string]any{
		"intent":     classification.Intent,
		"confidence": classification.Confidence,
		"sentiment":  sentiment,
	})
}

type testReplyRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TestReply drafts a reply for a message without persisting anything.
func (h *EmailHandler) TestReply(w http.ResponseWriter, r *http.Request) {
	var req testReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	name := req.Name
	if name == "" {
		name = "there"
	}

	text := req.Subject + "\n" + req.Body
	classification := h.Classifier.Classify(text)
	draft := h.Drafter.Draft(name, classification.Intent)

	writeJSON(w, http.StatusOK, map[string]any{
		"intent": classification.Intent,
		"reply":  draft,
	})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
