package mailerControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

func performJSON(handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func stubProvider(t *testing.T, status int, body string) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(status)
		rw.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	t.Setenv("EMAIL_API_URL", server.URL)
	t.Setenv("EMAIL_API_KEY", "test-key")
}

func TestSubscribeNewsletterRejectsMissingEmail(t *testing.T) {
	w := performJSON(SubscribeNewsletter(), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscribeNewsletterRejectsMalformedEmail(t *testing.T) {
	w := performJSON(SubscribeNewsletter(), `{"email":"not-an-address"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscribeNewsletterReturnsProviderID(t *testing.T) {
	stubProvider(t, http.StatusOK, `{"id":"msg_123"}`)

	w := performJSON(SubscribeNewsletter(), `{"email":"shopper@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"id":"msg_123"`)
}

func TestSubscribeNewsletterSurfacesProviderFailure(t *testing.T) {
	stubProvider(t, http.StatusBadGateway, `provider down`)

	w := performJSON(SubscribeNewsletter(), `{"email":"shopper@example.com"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCopyForStatusCoversAllStatuses(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		copyFor := copyForStatus(s)
		assert.NotEmpty(t, copyFor.Subject, "missing copy for %s", s)
		assert.Contains(t, copyFor.Body, "%s")
	}
}

func TestCopyForStatusFallsBackForUnknownStatus(t *testing.T) {
	copyFor := copyForStatus(models.OrderStatus("on_hold"))
	assert.Equal(t, "Update on your order", copyFor.Subject)
	assert.Contains(t, copyFor.Body, "%s")
}

func TestSendEmailFailsWithoutConfig(t *testing.T) {
	t.Setenv("EMAIL_API_URL", "")
	t.Setenv("EMAIL_API_KEY", "")
	_, err := sendEmail("a@b.example", "subject", "<p>hi</p>")
	assert.Error(t, err)
}

func TestSendEmailParsesProviderID(t *testing.T) {
	stubProvider(t, http.StatusOK, `{"id":"msg_42"}`)

	id, err := sendEmail("a@b.example", "subject", "<p>hi</p>")
	require.NoError(t, err)
	assert.Equal(t, "msg_42", id)
}
