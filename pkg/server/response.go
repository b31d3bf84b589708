package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		a.log.Error("Unable to encode response", "error", err)
	}
}

func (a *API) writeText(w http.ResponseWriter, status int, body string) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	setCORSHeaders(w)
	http.Error(w, message, status)
}

// preflight answers every OPTIONS request with the fixed CORS headers
func (a *API) preflight(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Access-Control-Allow-Methods", strings.Join(allowedMethods, ", "))
	w.Header().Set("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ", "))
	w.WriteHeader(http.StatusOK)
}

func (a *API) notFound(w http.ResponseWriter, r *http.Request) {
	a.writeError(w, http.StatusNotFound, "Not Found")
}
