package programguide

import (
	"net/url"
	"strings"
	"time"
)

// Style selects how a request is laid out on the wire.
type Style int

const (
	// PathStyle places identifiers in path segments and appends ".json"
	// to the last one. Used by the v1 guide.
	PathStyle Style = iota
	// QueryStyle names a fixed endpoint and passes identifiers as query
	// parameters. Used by the v3 radio guide.
	QueryStyle
)

func (s Style) String() string {
	switch s {
	case PathStyle:
		return "path"
	case QueryStyle:
		return "query"
	}
	return "unknown"
}

// Endpoint is the scheme, host and version prefix shared by every request
// a client makes.
type Endpoint struct {
	Secure  bool
	Host    string
	Version string
}

// Scheme returns "https" for secure endpoints and "http" otherwise.
func (e Endpoint) Scheme() string {
	if e.Secure {
		return "https"
	}
	return "http"
}

// Request describes one upstream call before it is rendered to a URL.
type Request struct {
	Style    Style
	Endpoint Endpoint
	// Segments follow the version prefix. Each is escaped on its own, so
	// a "/" inside an identifier never splits the path.
	Segments []string
	Query    url.Values
}

const (
	jsonSuffix = ".json"
	dateLayout = "2006-01-02"

	redactedKey = "REDACTED"
)

// FormatDate renders a date as YYYY-MM-DD in the time's own location.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// URL renders the request. Segments are escaped exactly once; query
// values are encoded by url.Values.
func (r Request) URL() *url.URL {
	segments := make([]string, 0, len(r.Segments)+1)
	if v := strings.Trim(r.Endpoint.Version, "/"); v != "" {
		// A multi-part version ("v1/beta") keeps its slashes.
		segments = append(segments, strings.Split(v, "/")...)
	}
	segments = append(segments, r.Segments...)
	if r.Style == PathStyle && len(segments) > 0 {
		segments[len(segments)-1] += jsonSuffix
	}

	raw := make([]string, len(segments))
	for i, s := range segments {
		raw[i] = url.PathEscape(s)
	}

	u := &url.URL{
		Scheme:  r.Endpoint.Scheme(),
		Host:    r.Endpoint.Host,
		Path:    "/" + strings.Join(segments, "/"),
		RawPath: "/" + strings.Join(raw, "/"),
	}
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}
	return u
}

// String is URL().String().
func (r Request) String() string {
	return r.URL().String()
}

// Redacted renders the URL with the API key masked.
func (r Request) Redacted() string {
	return redactURL(r.URL())
}

func redactURL(u *url.URL) string {
	q := u.Query()
	if !q.Has("key") {
		return u.String()
	}
	q.Set("key", redactedKey)
	masked := *u
	masked.RawQuery = q.Encode()
	return masked.String()
}

// redactRawURL masks the key in an already rendered URL. Unparseable input
// is returned unchanged.
func redactRawURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return redactURL(u)
}
