package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/crypto-onboard-server/internal/identity/twitter"
	"github.com/dtroode/crypto-onboard-server/internal/requestctx"
	"github.com/dtroode/crypto-onboard-server/internal/service"
	"github.com/dtroode/crypto-onboard-server/internal/testutil"
	"github.com/dtroode/crypto-onboard-server/internal/wallet"
)

// fakeTwitter knows a fixed set of usernames and answers like the v2 API.
func fakeTwitter(t *testing.T, known map[string]string, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		username := strings.TrimPrefix(r.URL.Path, "/2/users/by/username/")
		id, ok := known[username]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			_, _ = w.Write([]byte(`{"errors":[{"title":"Not Found Error"}]}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"id": id, "username": username, "name": username},
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newOnboardingHandler(t *testing.T, twitterURL string) http.Handler {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	deriver, err := wallet.NewDeriver([]byte("s3cr3t"))
	require.NoError(t, err)

	client := twitter.NewClient(nil, twitterURL, "test-token", time.Second, lg)
	svc := service.NewWallet(client, deriver, lg)

	return New(svc, requestctx.NewManager(), "http://localhost:5173", lg).Register()
}

func postCreateWallet(t *testing.T, h http.Handler, body string) (int, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/createWallet", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestOnboarding_EndToEnd(t *testing.T) {
	var calls atomic.Int32
	tw := fakeTwitter(t, map[string]string{"alice": "1"}, &calls)
	h := newOnboardingHandler(t, tw.URL)

	status, out := postCreateWallet(t, h, `{"twitterHandle":"alice"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0x948E813A113571D9524450D0897f49637eD14AE7", out["address"])

	status, again := postCreateWallet(t, h, `{"twitterHandle":"@alice"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, out, again)

	status, out = postCreateWallet(t, h, `{"twitterHandle":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]string{"error": "Twitter user not found."}, out)

	callsBefore := calls.Load()
	status, out = postCreateWallet(t, h, `{"twitterHandle":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, map[string]string{"error": "Twitter handle is required."}, out)
	assert.Equal(t, callsBefore, calls.Load(), "empty handle must not reach the identity provider")
}

func TestOnboarding_UpstreamDown(t *testing.T) {
	tw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(tw.Close)

	h := newOnboardingHandler(t, tw.URL)

	status, out := postCreateWallet(t, h, `{"twitterHandle":"alice"}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, map[string]string{"error": "Internal Server Error."}, out)
}
