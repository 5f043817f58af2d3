package http

import (
	"net/http"

	"github.com/siriwatk/employee-directory-go/internal/handler/http/response"
)

// HealthCheck reports process liveness.
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}
