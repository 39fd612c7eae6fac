package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dstanic/tasknest/pkg/eventlog"
)

// RequestLog records every inbound request to the request log before any
// handler runs. Logging failures are swallowed by the event logger and
// never affect the request.
func RequestLog(evl *eventlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			evl.Log(fmt.Sprintf("%s\t%s\t%s", r.Method, r.URL.RequestURI(), r.Header.Get("Origin")), eventlog.RequestLog)
			log.Printf("%s %s", r.Method, r.URL.RequestURI())

			next.ServeHTTP(w, r)
		})
	}
}
