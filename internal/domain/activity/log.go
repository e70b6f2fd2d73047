package activity

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

// timestampFormat matches the common log format date.
const timestampFormat = "02/Jan/2006:15:04:05"

// ErrNoUserAgent is returned when a request context arrives without a user
// agent. That indicates a malformed request context, so it is surfaced
// instead of being defaulted away.
var ErrNoUserAgent = errors.New("request context has no user agent")

// RequestContext carries the caller details an audit line needs.
type RequestContext struct {
	ForwardedFor string
	RemoteAddr   string
	UserAgent    string
}

func FromRequest(r *http.Request) RequestContext {
	return RequestContext{
		ForwardedFor: r.Header.Get("X-Forwarded-For"),
		RemoteAddr:   r.RemoteAddr,
		UserAgent:    r.UserAgent(),
	}
}

// Validate reports whether the context is complete enough to audit.
func (rc RequestContext) Validate() error {
	if rc.UserAgent == "" {
		return ErrNoUserAgent
	}
	return nil
}

// ClientIP prefers the first entry of X-Forwarded-For over the direct
// connection address.
func (rc RequestContext) ClientIP() string {
	if rc.ForwardedFor != "" {
		first, _, _ := strings.Cut(rc.ForwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(rc.RemoteAddr); err == nil {
		return host
	}
	return rc.RemoteAddr
}

// Logger writes one structured audit line per redemption or download
// event. Append-only, per-process ordering; this is an audit trail, not a
// metrics pipeline.
type Logger struct {
	Log *slog.Logger
}

// Record emits the audit line for an event. Subjects provide their own
// display string; the identifier is passed alongside because for codes the
// two happen to coincide.
func (l *Logger) Record(message string, subject fmt.Stringer, subjectID string, rc RequestContext) error {
	if err := rc.Validate(); err != nil {
		return err
	}
	l.Log.Info(message,
		"ts", time.Now().Format(timestampFormat),
		"subject", subject.String(),
		"subject_id", subjectID,
		"ip", rc.ClientIP(),
		"user_agent", rc.UserAgent,
	)
	return nil
}
