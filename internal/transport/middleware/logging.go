package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frahmantamala/productivity-management/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// maxLoggedBody caps how much of a request or response body is inspected.
const maxLoggedBody = 8 << 10

const redacted = "[FILTERED]"

// redactedKeys are the JSON keys that carry credentials in this API: the
// password on register and login, and the JWT returned by login.
var redactedKeys = map[string]struct{}{
	"password":     {},
	"token":        {},
	"jwt_secret":   {},
	"access_token": {},
}

// LoggingMiddleware writes one access record per request. It carries the
// route pattern, the caller identity added by the auth gate, and the outcome
// of the JSON envelope. Request bodies are logged with credentials masked.
// Response data is never logged; only the envelope's status fields are.
func LoggingMiddleware(base *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lg := base.With("traceID", w.Header().Get(TraceIDHeader))

			ctx, fields := logger.WithRequestFields(r.Context())
			r = r.WithContext(ctx)

			body := requestBody(r)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			tee := &cappedBuffer{limit: maxLoggedBody}
			ww.Tee(tee)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []any{
				"request_id", middleware.GetReqID(ctx),
				"method", r.Method,
				"route", routePattern(r),
				"path", r.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"bytes", ww.BytesWritten(),
				"remote_addr", r.RemoteAddr,
			}
			if r.URL.RawQuery != "" {
				attrs = append(attrs, "query", r.URL.RawQuery)
			}
			if body != "" {
				attrs = append(attrs, "body", body)
			}
			attrs = append(attrs, envelopeAttrs(tee.Bytes())...)
			attrs = append(attrs, fields.Attrs()...)

			lg.Log(ctx, levelFor(status), "request completed", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// routePattern is the matched chi pattern, so /api/tasks/{id} groups across ids.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// requestBody reads and restores a JSON body and returns it masked. Other
// content types are reported by size only.
func requestBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	raw, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}
	if !strings.Contains(r.Header.Get("Content-Type"), "json") && !json.Valid(raw) {
		return "[" + http.DetectContentType(raw) + "]"
	}
	if len(raw) > maxLoggedBody {
		return "[TRUNCATED]"
	}
	return maskBody(raw)
}

func maskBody(raw []byte) string {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return "[INVALID JSON]"
	}
	out, err := json.Marshal(mask(v))
	if err != nil {
		return "[INVALID JSON]"
	}
	return string(out)
}

func mask(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			if _, ok := redactedKeys[strings.ToLower(k)]; ok {
				t[k] = redacted
				continue
			}
			t[k] = mask(val)
		}
		return t
	case []interface{}:
		for i := range t {
			t[i] = mask(t[i])
		}
		return t
	default:
		return v
	}
}

// envelopeAttrs pulls the status fields out of a response envelope.
func envelopeAttrs(raw []byte) []any {
	var env struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &env) != nil || env.Success == nil {
		return nil
	}
	attrs := []any{"success", *env.Success}
	if env.Message != "" {
		attrs = append(attrs, "message", env.Message)
	}
	if env.Error != "" {
		attrs = append(attrs, "error", env.Error)
	}
	if env.Code != "" {
		attrs = append(attrs, "error_code", env.Code)
	}
	return attrs
}

// cappedBuffer keeps the first limit bytes written to it and drops the rest.
// A truncated envelope simply fails to parse and is left out of the record.
type cappedBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	if room := c.limit - c.buf.Len(); room > 0 {
		if len(p) > room {
			c.buf.Write(p[:room])
		} else {
			c.buf.Write(p)
		}
	}
	return len(p), nil
}

func (c *cappedBuffer) Bytes() []byte {
	return c.buf.Bytes()
}
