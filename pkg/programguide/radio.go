package programguide

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/listenupapp/programguide/pkg/programguide/codes"
)

// v3 radio endpoints.
const (
	endpointDateRadio           = "papiPgDateRadio"
	endpointGenreRadio          = "papiPgGenreRadio"
	endpointNowRadio            = "papiPgNowRadio"
	endpointBroadcastEventRadio = "papiBroadcastEventRadio"
)

// RadioClient is a v3 radio guide client. Transport is always https and
// the version is always v3.
type RadioClient struct {
	apiKey   string
	endpoint Endpoint
	getter   Getter
	owned    *HTTPGetter
	logger   *slog.Logger
}

// NewRadioClient creates a v3 client. WithDomain overrides the host;
// WithVersion and WithSecure have no effect.
func NewRadioClient(apiKey string, opts ...Option) *RadioClient {
	s := newSettings(DefaultRadioDomain, RadioVersion, true, opts)
	getter, owned := s.transport()
	return &RadioClient{
		apiKey:   apiKey,
		endpoint: Endpoint{Secure: true, Host: s.domain, Version: RadioVersion},
		getter:   getter,
		owned:    owned,
		logger:   s.logger,
	}
}

// Endpoint returns the scheme, host and version the client targets.
func (c *RadioClient) Endpoint() Endpoint {
	return c.endpoint
}

// Close releases the default transport if the client created it.
func (c *RadioClient) Close() {
	if c.owned != nil {
		c.owned.Close()
	}
}

// DateRadio returns a day's radio schedule for one service in one area.
func (c *RadioClient) DateRadio(ctx context.Context, area, service string, date time.Time) (any, error) {
	a, s, err := resolveAreaService(area, service)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpointDateRadio, url.Values{
		"service": {s},
		"area":    {a},
		"date":    {FormatDate(date)},
	})
}

// GenreRadio narrows DateRadio to one genre.
func (c *RadioClient) GenreRadio(ctx context.Context, area, service, genre string, date time.Time) (any, error) {
	a, s, err := resolveAreaService(area, service)
	if err != nil {
		return nil, err
	}
	g, err := codes.ResolveGenre(genre)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpointGenreRadio, url.Values{
		"service": {s},
		"area":    {a},
		"genre":   {g},
		"date":    {FormatDate(date)},
	})
}

// NowRadio returns what is on air now.
func (c *RadioClient) NowRadio(ctx context.Context, area, service string) (any, error) {
	a, s, err := resolveAreaService(area, service)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpointNowRadio, url.Values{
		"service": {s},
		"area":    {a},
	})
}

// BroadcastEventRadio returns one broadcast event. The identifier is sent
// verbatim; no area or service resolution takes place.
func (c *RadioClient) BroadcastEventRadio(ctx context.Context, broadcastEventID string) (any, error) {
	if broadcastEventID == "" {
		return nil, ErrMissingIdentifier
	}
	return c.get(ctx, endpointBroadcastEventRadio, url.Values{
		"broadcastEventId": {broadcastEventID},
	})
}

// BroadcastEventRadioByProgram resolves area and service and composes the
// event identifier as "{service}-{area}-{programID}".
func (c *RadioClient) BroadcastEventRadioByProgram(ctx context.Context, area, service, programID string) (any, error) {
	a, s, err := resolveAreaService(area, service)
	if err != nil {
		return nil, err
	}
	if programID == "" {
		return nil, ErrMissingIdentifier
	}
	return c.BroadcastEventRadio(ctx, BroadcastEventID(s, a, programID))
}

// BroadcastEventID joins resolved codes and a program ID into a v3 event
// identifier.
func BroadcastEventID(service, area, programID string) string {
	return service + "-" + area + "-" + programID
}

// Request builds the request for a v3 endpoint. The API key is added to
// a copy of query.
func (c *RadioClient) Request(endpoint string, query url.Values) Request {
	q := make(url.Values, len(query)+1)
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("key", c.apiKey)
	return Request{
		Style:    QueryStyle,
		Endpoint: c.endpoint,
		Segments: []string{endpoint},
		Query:    q,
	}
}

func (c *RadioClient) get(ctx context.Context, endpoint string, query url.Values) (any, error) {
	return fetch(ctx, c.getter, c.logger, c.Request(endpoint, query))
}
