package automatic

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DebugRouter serves the self-play counters.
func DebugRouter() http.Handler {
	r := chi.NewRouter()
	r.Handle("/debug/vars", expvar.Handler())
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"playing":` + IsPlaying.String() + `,"games":` + CVCCounter.String() + "}\n"))
	})
	return r
}
