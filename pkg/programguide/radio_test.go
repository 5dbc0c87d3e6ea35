package programguide

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/programguide/pkg/programguide/codes"
)

func TestRadioClient_URLs(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func(c *RadioClient) (any, error)
		wantPath  string
		wantQuery url.Values
	}{
		{
			name: "date radio",
			call: func(c *RadioClient) (any, error) {
				return c.DateRadio(ctx, "130", "n1", testDate)
			},
			wantPath:  "/v3/papiPgDateRadio",
			wantQuery: url.Values{"service": {"n1"}, "area": {"130"}, "date": {"2024-01-02"}, "key": {"apikey"}},
		},
		{
			name: "genre radio by names",
			call: func(c *RadioClient) (any, error) {
				return c.GenreRadio(ctx, "札幌", "NHK Net Radio FM", "音楽 - クラシック・オペラ", testDate)
			},
			wantPath:  "/v3/papiPgGenreRadio",
			wantQuery: url.Values{"service": {"n3"}, "area": {"010"}, "genre": {"0402"}, "date": {"2024-01-02"}, "key": {"apikey"}},
		},
		{
			name: "now radio",
			call: func(c *RadioClient) (any, error) {
				return c.NowRadio(ctx, "130", "r1")
			},
			wantPath:  "/v3/papiPgNowRadio",
			wantQuery: url.Values{"service": {"r1"}, "area": {"130"}, "key": {"apikey"}},
		},
		{
			name: "broadcast event verbatim",
			call: func(c *RadioClient) (any, error) {
				return c.BroadcastEventRadio(ctx, "Tokyo & more/1 2")
			},
			wantPath:  "/v3/papiBroadcastEventRadio",
			wantQuery: url.Values{"broadcastEventId": {"Tokyo & more/1 2"}, "key": {"apikey"}},
		},
		{
			name: "broadcast event by program",
			call: func(c *RadioClient) (any, error) {
				return c.BroadcastEventRadioByProgram(ctx, "Tokyo", "NHK Radio 1", "2024010212345")
			},
			wantPath:  "/v3/papiBroadcastEventRadio",
			wantQuery: url.Values{"broadcastEventId": {"r1-130-2024010212345"}, "key": {"apikey"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			c := NewRadioClient("apikey", WithGetter(rec))
			defer c.Close()

			_, err := tt.call(c)
			require.NoError(t, err)
			require.Len(t, rec.urls, 1)

			u, err := url.Parse(rec.urls[0])
			require.NoError(t, err)
			assert.Equal(t, "https", u.Scheme)
			assert.Equal(t, "program-api.nhk.jp", u.Host)
			assert.Equal(t, tt.wantPath, u.EscapedPath())
			assert.Equal(t, tt.wantQuery, u.Query())
			assert.NotContains(t, u.RawQuery, " ")
		})
	}
}

func TestRadioClient_DateRadioExactURL(t *testing.T) {
	rec := newRecorder()
	c := NewRadioClient("apikey", WithGetter(rec))

	_, err := c.DateRadio(context.Background(), "130", "n1", testDate)
	require.NoError(t, err)
	assert.Equal(t, "https://program-api.nhk.jp/v3/papiPgDateRadio?area=130&date=2024-01-02&key=apikey&service=n1", rec.urls[0])
}

func TestRadioClient_IgnoresVersionAndSecure(t *testing.T) {
	c := NewRadioClient("apikey",
		WithGetter(newRecorder()),
		WithDomain("radio.example.test"),
		WithVersion("v1"),
		WithSecure(false),
	)
	assert.Equal(t, Endpoint{Secure: true, Host: "radio.example.test", Version: "v3"}, c.Endpoint())
}

func TestRadioClient_FailsFast(t *testing.T) {
	getter := GetterFunc(func(context.Context, string) ([]byte, error) {
		t.Fatal("no request expected")
		return nil, nil
	})
	c := NewRadioClient("apikey", WithGetter(getter))
	ctx := context.Background()

	_, err := c.DateRadio(ctx, "130", "nope", testDate)
	assert.ErrorIs(t, err, codes.ErrUnknownIdentifier)

	_, err = c.GenreRadio(ctx, "130", "n1", "baseball", testDate)
	assert.ErrorIs(t, err, codes.ErrUnknownIdentifier)

	_, err = c.BroadcastEventRadioByProgram(ctx, "Narnia", "r1", "1")
	assert.ErrorIs(t, err, codes.ErrUnknownIdentifier)

	_, err = c.BroadcastEventRadio(ctx, "")
	assert.ErrorIs(t, err, ErrMissingIdentifier)

	_, err = c.BroadcastEventRadioByProgram(ctx, "130", "r1", "")
	assert.ErrorIs(t, err, ErrMissingIdentifier)
}

func TestRadioClient_RequestDoesNotMutateQuery(t *testing.T) {
	c := NewRadioClient("apikey", WithGetter(newRecorder()))
	q := url.Values{"area": {"130"}}

	req := c.Request(endpointNowRadio, q)
	assert.Equal(t, url.Values{"area": {"130"}}, q)
	assert.Equal(t, "apikey", req.Query.Get("key"))
}

func TestRadioClient_OverTLS(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"r1":{"publishedOn":[]}}`))
	}))
	defer server.Close()

	getter := NewHTTPGetter(HTTPGetterOptions{HTTPClient: server.Client()})
	defer getter.Close()

	c := NewRadioClient("apikey",
		WithGetter(getter),
		WithDomain(strings.TrimPrefix(server.URL, "https://")),
	)

	got, err := c.NowRadio(context.Background(), "130", "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", gotQuery.Get("service"))
	assert.Contains(t, got, "r1")
}
