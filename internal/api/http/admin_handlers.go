package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/venev-g/psychoassess/internal/assessment"
	"github.com/venev-g/psychoassess/internal/eventlog"
	"github.com/venev-g/psychoassess/internal/strategies"
)

func ListTestTypesHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts, err := store.ListTestTypes(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(ts)
	}
}

func UpsertTestTypeHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t assessment.TestType
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if _, ok := strategies.Lookup(t.ID); !ok {
			http.Error(w, "no strategy registered for "+t.ID, 400)
			return
		}
		if err := store.PutTestType(r.Context(), t); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(t)
	}
}

func ListQuestionsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := store.ListQuestions(r.Context(), chi.URLParam(r, "testTypeID"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if qs == nil {
			qs = []assessment.Question{}
		}
		_ = json.NewEncoder(w).Encode(qs)
	}
}

func UpsertQuestionHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q assessment.Question
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if q.TestTypeID == "" || q.Text == "" || q.Category == "" {
			http.Error(w, "test_type_id, text and category required", 400)
			return
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if err := store.PutQuestion(r.Context(), q); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(q)
	}
}

func RecentEventsHandler(events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evts, err := events.Recent(r.Context(), 100)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if evts == nil {
			evts = []eventlog.Event{}
		}
		_ = json.NewEncoder(w).Encode(evts)
	}
}
