// internal/server/reload.go
package server

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
)

// liveReloadWrapper disables caching and injects the reload script into
// HTML responses, just before </body>.
func liveReloadWrapper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if !strings.HasSuffix(r.URL.Path, ".html") && !strings.HasSuffix(r.URL.Path, "/") {
			next.ServeHTTP(w, r)
			return
		}

		iw := newInterceptingWriter()
		next.ServeHTTP(iw, r)

		for key, values := range iw.header {
			for _, v := range values {
				w.Header().Add(key, v)
			}
		}
		body := iw.body.Bytes()
		if iw.statusCode != http.StatusOK {
			w.WriteHeader(iw.statusCode)
			w.Write(body)
			return
		}

		body = bytes.Replace(body, []byte("</body>"), []byte(liveReloadScript+"</body>"), 1)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

// interceptingWriter buffers a response so it can be rewritten.
type interceptingWriter struct {
	body       bytes.Buffer
	statusCode int
	header     http.Header
}

func newInterceptingWriter() *interceptingWriter {
	return &interceptingWriter{header: make(http.Header), statusCode: http.StatusOK}
}

func (iw *interceptingWriter) Header() http.Header         { return iw.header }
func (iw *interceptingWriter) Write(b []byte) (int, error) { return iw.body.Write(b) }
func (iw *interceptingWriter) WriteHeader(statusCode int)  { iw.statusCode = statusCode }

// The reload client is served from this host; the page's script-src 'self'
// admits it where an inline script would be blocked.
const (
	liveReloadPath   = "/__livereload.js"
	liveReloadScript = `<script src="` + liveReloadPath + `"></script>
`
)

const liveReloadClient = `(function() {
  var proto = window.location.protocol === "https:" ? "wss://" : "ws://";
  var socket = new WebSocket(proto + window.location.host + "/ws");
  socket.onmessage = function(event) {
    if (event.data === "reload") {
      window.location.reload();
    }
  };
  socket.onerror = function() {
    console.error("Live reload connection error. Restart 'landingkit serve'.");
  };
})();
`

func serveLiveReloadClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(liveReloadClient))
}
