package service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skm_backend/internals/features/users/service"
	"skm_backend/internals/testutil"
)

func newCaptcha(t *testing.T, handler http.HandlerFunc) *service.CaptchaVerifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &service.CaptchaVerifier{Secret: "rahasia", Endpoint: srv.URL, Client: srv.Client()}
}

func TestCaptchaVerify_PassesUpstreamPayload(t *testing.T) {
	var got url.Values
	v := newCaptcha(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got, _ = url.ParseQuery(string(body))
		w.Header().Set("Content-Type", "application/json")
		if got.Get("response") == "token-ok" {
			_, _ = w.Write([]byte(`{"success":true,"hostname":"skm.go.id"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	})

	res, err := v.Verify(context.Background(), "token-ok")
	require.NoError(t, err)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "skm.go.id", res["hostname"])
	assert.Equal(t, "rahasia", got.Get("secret"))

	res, err = v.Verify(context.Background(), "token-palsu")
	require.NoError(t, err)
	assert.Equal(t, false, res["success"])
}

func TestCaptchaVerify_NotConfigured(t *testing.T) {
	v := &service.CaptchaVerifier{Endpoint: "http://127.0.0.1:0", Client: http.DefaultClient}

	_, err := v.Verify(context.Background(), "token")
	assert.Equal(t, fiber.StatusServiceUnavailable, testutil.StatusOf(err))
	assert.EqualError(t, err, "captcha is not configured")
}

func TestCaptchaVerify_UpstreamFailure(t *testing.T) {
	v := newCaptcha(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := v.Verify(context.Background(), "token")
	assert.Equal(t, fiber.StatusBadGateway, testutil.StatusOf(err))

	bad := newCaptcha(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`bukan json`))
	})
	_, err = bad.Verify(context.Background(), "token")
	assert.Equal(t, fiber.StatusBadGateway, testutil.StatusOf(err))
}
