package chatControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayConfigMissing(t *testing.T) {
	t.Setenv("AI_GATEWAY_URL", "")
	t.Setenv("AI_GATEWAY_KEY", "")
	_, _, err := getGatewayConfig()
	assert.Error(t, err)
}

func TestGatewayConfigPresent(t *testing.T) {
	t.Setenv("AI_GATEWAY_URL", "https://gateway.example/v1/chat/completions")
	t.Setenv("AI_GATEWAY_KEY", "test-key")
	url, key, err := getGatewayConfig()
	assert.NoError(t, err)
	assert.Equal(t, "https://gateway.example/v1/chat/completions", url)
	assert.Equal(t, "test-key", key)
}

func relayAgainst(t *testing.T, upstream http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	t.Setenv("AI_GATEWAY_URL", server.URL)
	t.Setenv("AI_GATEWAY_KEY", "test-key")

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/functions/chat", nil)

	relayChat(c, []ChatMessage{{Role: "user", Content: "hello"}})
	return w
}

func TestRelayChatPassesThroughRateLimit(t *testing.T) {
	w := relayAgainst(t, func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusTooManyRequests)
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit")
}

func TestRelayChatPassesThroughQuotaExhausted(t *testing.T) {
	w := relayAgainst(t, func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusPaymentRequired)
	})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "quota")
}

func TestRelayChatMapsOtherUpstreamErrorsTo500(t *testing.T) {
	w := relayAgainst(t, func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
		rw.Write([]byte("upstream down"))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "upstream down")
}

func TestRelayChatStreamsEventBodyVerbatim(t *testing.T) {
	const stream = "data: {\"choices\":[{\"delta\":{\"content\":\"Hi\"}}]}\n\ndata: [DONE]\n\n"
	w := relayAgainst(t, func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		rw.Header().Set("Content-Type", "text/event-stream")
		rw.Write([]byte(stream))
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, stream, w.Body.String())
}
