package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivationLinks(t *testing.T) {
	links := activationLinks{clientHost: "https://app.example.com"}

	assert.Equal(t, "https://app.example.com/auth/activation?code=ab%2Bcd", links.url("ab+cd"))

	body := links.body("<b>Jane</b>", "abc")
	assert.Contains(t, body, "&lt;b&gt;Jane&lt;/b&gt;")
	assert.Contains(t, body, `href="https://app.example.com/auth/activation?code=abc"`)
}

func TestNew_SelectsProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m, err := New(Params{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, m)

	_, err = New(Params{Config: &config.Config{Mail: &config.MailConfig{Provider: "resend"}}, Logger: logger})
	assert.Error(t, err)

	_, err = New(Params{Config: &config.Config{Mail: &config.MailConfig{Provider: "smtp"}}, Logger: logger})
	assert.ErrorContains(t, err, "unknown mail provider")

	m, err = New(Params{Config: &config.Config{Mail: &config.MailConfig{
		Provider: "resend", APIKey: "re_test", From: "no-reply@example.com",
	}}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &resendMailer{}, m)
}

func TestLogMailer_LogsActivationURL(t *testing.T) {
	var buf bytes.Buffer
	m := &logMailer{
		logger: slog.New(slog.NewTextHandler(&buf, nil)),
		links:  activationLinks{clientHost: "http://localhost:3000"},
	}

	require.NoError(t, m.SendActivationCode(context.Background(), "jane@example.com", "Jane", "abc"))
	assert.Contains(t, buf.String(), "http://localhost:3000/auth/activation?code=abc")
}

func newResendTestClient(t *testing.T, handler http.HandlerFunc) *resend.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := resend.NewClient("re_test")
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return client
}

func TestResendMailer_SendActivationCode(t *testing.T) {
	var sent resend.SendEmailRequest
	client := newResendTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	})

	m := NewResendMailer(client, "no-reply@example.com", "https://app.example.com/")

	require.NoError(t, m.SendActivationCode(context.Background(), "jane@example.com", "Jane", "abc"))
	assert.Equal(t, []string{"jane@example.com"}, sent.To)
	assert.Equal(t, activationSubject, sent.Subject)
	assert.Contains(t, sent.Html, "code=abc")
}

func TestResendMailer_Failure(t *testing.T) {
	client := newResendTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"invalid from"}`))
	})

	m := NewResendMailer(client, "bad", "")

	err := m.SendActivationCode(context.Background(), "jane@example.com", "Jane", "abc")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailDeliveryFailed))
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}
