package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/handler/http/middleware"
	"github.com/codezenith/hrms-backend-go/internal/handler/http/response"
)

// decodeJSON reads the request body into dst and writes a 400 on failure.
// An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.ErrorContext(r.Context(), "request decode error", slog.String("path", r.URL.Path), slog.Any("error", err))
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

func currentActor(w http.ResponseWriter, r *http.Request) (user.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
	}
	return actor, ok
}

func queryPtr(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(r *http.Request, key string) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
