package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/dstanic/tasknest/pkg/eventlog"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"message": message,
		"isError": true,
	})
}

// reportServerError funnels an unhandled failure to the error log, then
// answers with the error's message. The correlation token is added by the
// event logger itself.
func reportServerError(w http.ResponseWriter, r *http.Request, evl *eventlog.Logger, err error) {
	evl.Log(fmt.Sprintf("%T: %v\t%s\t%s\t%s", err, err, r.Method, r.URL.Path, r.Header.Get("Origin")), eventlog.ErrorLog)
	log.Printf("ERROR %s %s: %v", r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, err.Error())
}
