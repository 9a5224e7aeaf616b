package geocode

import (
	"ambulance-dispatch-service/internal/domain"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chennai = domain.LatLng{Lat: 13.0550, Lng: 80.2089}

func newTestResolver(t *testing.T, h http.HandlerFunc) *NominatimResolver {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	r, err := NewNominatimResolver(srv.URL+"/", "dispatch-test", time.Second)
	require.NoError(t, err)
	return r
}

func TestNominatimResolvesShortAddress(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/reverse", req.URL.Path)
		q := req.URL.Query()
		assert.Equal(t, "13.055", q.Get("lat"))
		assert.Equal(t, "80.2089", q.Get("lon"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "14", q.Get("zoom"))
		assert.Equal(t, "dispatch-test", req.Header.Get("User-Agent"))
		assert.Equal(t, "en", req.Header.Get("Accept-Language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name":"Anna Salai, Teynampet, Chennai, Tamil Nadu, 600018, India"}`))
	})

	res := r.ResolveAddress(context.Background(), chennai)
	require.True(t, res.Ok())
	assert.Equal(t, "Anna Salai, Teynampet, Chennai, Tamil Nadu", res.Address)
}

func TestNominatimFallbacks(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "overloaded", http.StatusServiceUnavailable)
			},
			check: func(t *testing.T, err error) {
				var he *httpStatusError
				require.True(t, errors.As(err, &he))
				assert.Equal(t, http.StatusServiceUnavailable, he.Code)
				assert.Equal(t, "overloaded", he.Body)
			},
		},
		{
			name: "upstream error body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNoAddress) },
		},
		{
			name: "empty display name",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"display_name":"  "}`))
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNoAddress) },
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"display_name":`))
			},
			check: func(t *testing.T, err error) { assert.Contains(t, err.Error(), "decode response") },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestResolver(t, tc.handler)
			res := r.ResolveAddress(context.Background(), chennai)

			require.False(t, res.Ok())
			assert.Equal(t, "13.0550, 80.2089", res.Address)
			tc.check(t, res.Err)
		})
	}
}

func TestNominatimHonorsTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	r, err := NewNominatimResolver(srv.URL, "dispatch-test", 50*time.Millisecond)
	require.NoError(t, err)

	res := r.ResolveAddress(context.Background(), chennai)
	require.False(t, res.Ok())
	assert.Equal(t, chennai.String(), res.Address)
}

func TestNewNominatimResolverValidates(t *testing.T) {
	_, err := NewNominatimResolver(" ", "agent", time.Second)
	require.Error(t, err)
	_, err = NewNominatimResolver("http://localhost", "", time.Second)
	require.Error(t, err)
}

func TestShortenDisplayName(t *testing.T) {
	assert.Equal(t, "A, B, C, D", shortenDisplayName("A, B, C, D, E, F"))
	assert.Equal(t, "A, B", shortenDisplayName("A, B"))
	assert.Equal(t, "", shortenDisplayName(""))
}
