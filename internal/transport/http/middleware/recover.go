package middleware

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/dstanic/tasknest/pkg/eventlog"
)

// Recover is the outermost guard around the handlers: a panic escaping a
// handler is recorded in the error log and converted into the standard
// JSON error body. Stack traces go to the process log only.
func Recover(evl *eventlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}

				evl.Log(fmt.Sprintf("panic: %v\t%s\t%s\t%s", v, r.Method, r.URL.RequestURI(), r.Header.Get("Origin")), eventlog.ErrorLog)
				log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.RequestURI(), v, debug.Stack())

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]any{
					"message": fmt.Sprint(v),
					"isError": true,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
