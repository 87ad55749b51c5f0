package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// httpError writes the legacy error shape used by the content routes:
// {"error": ..., "message": ..., "timestamp": ...}.
func httpError(w http.ResponseWriter, status int, errType, format string, args ...any) {
	writeJSON(w, status, map[string]any{
		"error":     errType,
		"message":   fmt.Sprintf(format, args...),
		"timestamp": time.Now().UTC(),
	})
}

// actionError writes the action-route error shape:
// {"success": false, "error": ..., "timestamp": ...}.
func actionError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]any{
		"success":   false,
		"error":     fmt.Sprintf(format, args...),
		"timestamp": time.Now().UTC(),
	})
}

// actionOK writes the uniform action-route success envelope.
func actionOK(w http.ResponseWriter, action string, result any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"action":    action,
		"result":    result,
		"timestamp": time.Now().UTC(),
	})
}

// dataOK writes the video-route success envelope.
func dataOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
	})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Not Found",
		"message": "The requested endpoint does not exist",
		"path":    r.URL.Path,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpError(w, http.StatusBadRequest, "Validation Error", "invalid request body: %v", err)
		return false
	}
	return true
}
