package httpd

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/uhppoted/uhppoted-app-attendance/attendance"
	"github.com/uhppoted/uhppoted-app-attendance/log"
)

const LOG_TAG = "httpd"

type Searcher interface {
	Search(ctx context.Context, query string) ([]attendance.Record, error)
}

// NewRouter returns the HTTP handler for the attendance search endpoint:
//
//	GET /?name=<name>
//	GET /search?name=<name>
func NewRouter(store Searcher) http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(middleware.Recoverer)
	router.Use(logger)

	search := func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if !query.Has("name") {
			reply(w, http.StatusBadRequest, map[string]string{"error": "missing 'name' parameter"})
			return
		}

		name := query.Get("name")
		records, err := store.Search(r.Context(), name)
		if err != nil {
			log.Errorf(LOG_TAG, "search '%v' failed (%v)", name, err)
			reply(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		log.Debugf(LOG_TAG, "search '%v' matched %v records", name, len(records))

		reply(w, http.StatusOK, records)
	}

	router.Get("/", search)
	router.Get("/search", search)

	return router
}

func reply(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), middleware.RequestIDKey, id)))
	})
}

func logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		l := log.Logger()
		l.Info().
			Str("tag", LOG_TAG).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
