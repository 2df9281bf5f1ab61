package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/bunnyflex/factfind-chatbot/internal/dialogue"
	"github.com/bunnyflex/factfind-chatbot/internal/engine"
	"github.com/bunnyflex/factfind-chatbot/internal/export"
	"github.com/bunnyflex/factfind-chatbot/internal/extractor"
	"github.com/bunnyflex/factfind-chatbot/internal/logger"
	"github.com/bunnyflex/factfind-chatbot/internal/mapping"
	"github.com/bunnyflex/factfind-chatbot/internal/questionnaire"
	"github.com/bunnyflex/factfind-chatbot/internal/ratelimit"
	"github.com/bunnyflex/factfind-chatbot/internal/recommend"
	"github.com/bunnyflex/factfind-chatbot/internal/responder"
	"github.com/bunnyflex/factfind-chatbot/internal/session"
	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "factfind-chatbot").Info("starting service")

	questions := questionnaire.Default()
	if path := os.Getenv("QUESTIONNAIRE_PATH"); path != "" {
		loaded, err := questionnaire.Load(path)
		if err != nil {
			log.WithError(err).Fatal("failed to load questionnaire")
		}
		questions = loaded
		log.WithField("path", path).Info("questionnaire loaded from file")
	}

	registry := extractor.NewRegistry()
	table := mapping.Table()
	eng := engine.New(registry, table, engine.WithVisibility(questionnaire.ShouldShow))
	resp := responder.NewFromEnv(log)
	policy := dialogue.PolicyFromEnv()
	manager := dialogue.NewManager(eng, registry, table, questions, resp, policy, log)
	sessions := session.NewStore()

	chatLimiter := ratelimit.New(envIntOr("CHAT_RATE_LIMIT", 15))

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"service":   "Insurance Fact-Find API",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/questionnaire", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, questions)
		})

		r.Post("/extract", func(w http.ResponseWriter, r *http.Request) {
			reqLog := logger.New().WithRequest(r).WithField("handler", "extract")
			var req struct {
				Message string                  `json:"message"`
				Context types.ExtractionContext `json:"context"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
				reqLog.Warn("bad extract request")
				writeError(w, http.StatusBadRequest, "message is required")
				return
			}
			if req.Context.PreviousAnswers.Personal == nil {
				req.Context.PreviousAnswers = types.NewCollectedData()
			}
			start := time.Now()
			res := eng.SmartExtract(req.Message, req.Context)
			reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).
				WithField("fields", len(res.Extracted)).Info("extraction finished")
			writeJSON(w, http.StatusOK, res)
		})

		r.With(chatLimiter.Middleware).Post("/chat", func(w http.ResponseWriter, r *http.Request) {
			reqLog := logger.New().WithRequest(r).WithField("handler", "chat")
			var req struct {
				SessionID string `json:"session_id"`
				Message   string `json:"message"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
				reqLog.Warn("bad chat request")
				writeError(w, http.StatusBadRequest, "message is required")
				return
			}
			state := sessions.GetOrCreate(req.SessionID)
			reqLog = reqLog.WithField("session_id", state.SessionID)

			start := time.Now()
			result, err := manager.HandleTurn(r.Context(), state, req.Message)
			reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("turn finished")
			if err != nil {
				reqLog.WithError(err).Error("turn failed")
				writeError(w, http.StatusInternalServerError, "An error occurred while processing your request")
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"session_id": state.SessionID,
				"result":     result,
				"timestamp":  time.Now().Format(time.RFC3339),
			})
		})

		r.Get("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
			state, err := sessions.Get(chi.URLParam(r, "id"))
			if err != nil {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}
			writeJSON(w, http.StatusOK, state)
		})

		r.Get("/sessions/{id}/recommendations", func(w http.ResponseWriter, r *http.Request) {
			state, err := sessions.Get(chi.URLParam(r, "id"))
			if err != nil {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"session_id":      state.SessionID,
				"recommendations": recommend.Generate(state.CollectedData),
			})
		})

		r.Get("/sessions/{id}/export", func(w http.ResponseWriter, r *http.Request) {
			reqLog := logger.New().WithRequest(r).WithField("handler", "export")
			state, err := sessions.Get(chi.URLParam(r, "id"))
			if err != nil {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}
			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="factfind-%s.xlsx"`, state.SessionID))
			if err := export.Write(w, state, questions, table); err != nil {
				reqLog.WithError(err).Error("export failed")
			}
		})
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envIntOr(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			return n
		}
	}
	return def
}
