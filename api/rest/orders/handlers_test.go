package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelsmith/server/internal/mailer"
)

type mockMailer struct {
	sent []mailer.Message
	err  error
}

func (m *mockMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func newTestRouter(mail mailer.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), mail, "orders@pixelsmith.app")
	return router
}

func postOrder(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestOrderSubmission(t *testing.T) {
	mail := &mockMailer{}
	router := newTestRouter(mail)

	rec := postOrder(t, router, `{
		"name": "Ada",
		"email": "ada@example.com",
		"subject": "Canvas print",
		"message": "Two copies please",
		"attachments": [{"filename": "art.png", "content": "aGVsbG8="}]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Sent)
	assert.NotEmpty(t, resp.OrderRef)

	require.Len(t, mail.sent, 1)
	msg := mail.sent[0]
	assert.Equal(t, "orders@pixelsmith.app", msg.To)
	assert.Contains(t, msg.Subject, "Canvas print")
	assert.Contains(t, msg.Subject, resp.OrderRef)
	assert.Contains(t, msg.HTMLBody, "ada@example.com")
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "art.png", msg.Attachments[0].Filename)
}

func TestOrderRequiresEmail(t *testing.T) {
	mail := &mockMailer{}
	router := newTestRouter(mail)

	rec := postOrder(t, router, `{"name": "Ada", "message": "no email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, mail.sent)
}

func TestOrderDeliveryFailure(t *testing.T) {
	mail := &mockMailer{err: errors.New("ses unavailable")}
	router := newTestRouter(mail)

	rec := postOrder(t, router, `{"email": "ada@example.com", "message": "hi"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "order_delivery_failed", body["error"])
}

func TestOrderBodyEscapesInput(t *testing.T) {
	mail := &mockMailer{}
	router := newTestRouter(mail)

	rec := postOrder(t, router, `{"email": "ada@example.com", "message": "<script>alert(1)</script>"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, mail.sent, 1)
	assert.NotContains(t, mail.sent[0].HTMLBody, "<script>")
}
