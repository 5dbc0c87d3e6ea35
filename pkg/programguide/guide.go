// Package programguide is a client for NHK's program guide API.
//
// Client talks to the v1 guide, which addresses resources by path:
//
//	http://api.nhk.or.jp/v1/pg/list/130/g1/2024-01-02.json?key=...
//
// RadioClient talks to the v3 radio guide, which uses named endpoints and
// query parameters:
//
//	https://program-api.nhk.jp/v3/papiPgDateRadio?area=130&date=2024-01-02&key=...&service=n1
//
// Area, service and genre arguments accept a code ("130"), a display name
// ("東京") or an alias ("Tokyo"); see package codes. Resolution happens
// before any request is sent.
package programguide

import (
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"log/slog"
	"net/url"
	"time"

	"github.com/listenupapp/programguide/pkg/programguide/codes"
)

const (
	DefaultDomain  = "api.nhk.or.jp"
	DefaultVersion = "v1"

	DefaultRadioDomain = "program-api.nhk.jp"
	RadioVersion       = "v3"
)

// v1 operation names.
const (
	opList  = "list"
	opGenre = "genre"
	opInfo  = "info"
	opNow   = "now"
)

// Client is a v1 program guide client. It is safe for concurrent use when
// its Getter is.
type Client struct {
	apiKey   string
	endpoint Endpoint
	getter   Getter
	owned    *HTTPGetter
	logger   *slog.Logger
}

// NewClient creates a v1 client. Defaults: http, api.nhk.or.jp, v1.
func NewClient(apiKey string, opts ...Option) *Client {
	s := newSettings(DefaultDomain, DefaultVersion, false, opts)
	getter, owned := s.transport()
	return &Client{
		apiKey:   apiKey,
		endpoint: Endpoint{Secure: s.secure, Host: s.domain, Version: s.version},
		getter:   getter,
		owned:    owned,
		logger:   s.logger,
	}
}

// Endpoint returns the scheme, host and version the client targets.
func (c *Client) Endpoint() Endpoint {
	return c.endpoint
}

// Close releases the default transport if the client created it.
func (c *Client) Close() {
	if c.owned != nil {
		c.owned.Close()
	}
}

// ListPrograms returns the schedule of one service in one area for a day.
func (c *Client) ListPrograms(ctx context.Context, area, service string, date time.Time) (any, error) {
	a, s, err := resolveAreaService(area, service)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, opList, a, s, FormatDate(date))
}

// ListByGenre narrows ListPrograms to one genre.
func (c *Client) ListByGenre(ctx context.Context, area, service, genre string, date time.Time) (any, error) {
	a, s, err := resolveAreaService(area, service)
	if err != nil {
		return nil, err
	}
	g, err := codes.ResolveGenre(genre)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, opGenre, a, s, g, FormatDate(date))
}

// ProgramInfo returns the details of one program.
func (c *Client) ProgramInfo(ctx context.Context, area, service, programID string) (any, error) {
	a, s, err := resolveAreaService(area, service)
	if err != nil {
		return nil, err
	}
	if programID == "" {
		return nil, ErrMissingIdentifier
	}
	return c.get(ctx, opInfo, a, s, programID)
}

// NowPlaying returns the previous, current and next programs on a service.
func (c *Client) NowPlaying(ctx context.Context, area, service string) (any, error) {
	a, s, err := resolveAreaService(area, service)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, opNow, a, s)
}

// Request builds the request for a v1 operation from already resolved
// segments.
func (c *Client) Request(op string, segments ...string) Request {
	return Request{
		Style:    PathStyle,
		Endpoint: c.endpoint,
		Segments: append([]string{"pg", op}, segments...),
		Query:    url.Values{"key": {c.apiKey}},
	}
}

func (c *Client) get(ctx context.Context, op string, segments ...string) (any, error) {
	return fetch(ctx, c.getter, c.logger, c.Request(op, segments...))
}

func resolveAreaService(area, service string) (string, string, error) {
	a, err := codes.ResolveArea(area)
	if err != nil {
		return "", "", err
	}
	s, err := codes.ResolveService(service)
	if err != nil {
		return "", "", err
	}
	return a, s, nil
}

// decodeOptions accept any JSON value the upstream sends, including
// objects with repeated member names and strings with invalid UTF-8.
var decodeOptions = json.JoinOptions(
	jsontext.AllowDuplicateNames(true),
	jsontext.AllowInvalidUTF8(true),
)

// fetch sends req and decodes the body into an untyped value. Errors from
// the getter and the decoder are returned as is.
func fetch(ctx context.Context, getter Getter, logger *slog.Logger, req Request) (any, error) {
	logger.Debug("program guide request", "style", req.Style, "url", req.Redacted())

	body, err := getter.Get(ctx, req.String())
	if err != nil {
		return nil, err
	}

	var out any
	if err := json.Unmarshal(body, &out, decodeOptions); err != nil {
		return nil, err
	}
	return out, nil
}
