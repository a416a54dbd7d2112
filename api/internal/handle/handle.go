package handle

import (
	"encoding/json"
	"net/http"

	"quiz-relay/api/internal/service"
)

type Handle struct {
	svc *service.Service
}

func New(svc *service.Service) *Handle {
	return &Handle{svc: svc}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError reports a failure without masking the underlying diagnostic.
func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"model_configured": h.svc.Ready(),
	})
}
