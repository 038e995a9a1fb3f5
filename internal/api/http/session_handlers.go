package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/recommend"
	"github.com/venev-g/psychoassess/internal/session"
)

func StartSessionHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID    string   `json:"user_id"`
			TestTypes []string `json:"test_types"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.UserID == "" {
			http.Error(w, "user_id required", 400)
			return
		}
		s, err := svc.Start(r.Context(), req.UserID, req.TestTypes)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		_ = json.NewEncoder(w).Encode(s)
	}
}

func GetSessionHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := store.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		_ = json.NewEncoder(w).Encode(s)
	}
}

func CurrentQuestionsHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := svc.CurrentQuestions(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		if qs == nil {
			qs = []assessment.Question{}
		}
		_ = json.NewEncoder(w).Encode(qs)
	}
}

func SaveResponsesHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var responses []assessment.UserResponse
		if err := json.NewDecoder(r.Body).Decode(&responses); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := svc.SaveResponses(r.Context(), id, responses); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func CompleteInstrumentHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var ctx *recommend.Context
		if r.ContentLength > 0 {
			ctx = &recommend.Context{}
			if err := json.NewDecoder(r.Body).Decode(ctx); err != nil {
				http.Error(w, "bad json", 400)
				return
			}
		}
		out, err := svc.CompleteInstrument(r.Context(), id, ctx)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

func ResultsHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Results(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		if res == nil {
			res = []assessment.Result{}
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, assessment.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidResponse),
		errors.Is(err, session.ErrUnknownTestType),
		errors.Is(err, assessment.ErrSessionCompleted):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
