package health

import "net/http"

// Handler reports process liveness. Database and Redis health are left to
// their own probes; this endpoint only says the process is serving.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
