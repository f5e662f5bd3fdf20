package sender

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	libsmtp "github.com/magabrotheeeer/forum-backend/internal/lib/smtp"
	"github.com/magabrotheeeer/forum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type SubscribersMock struct{ mock.Mock }

func (m *SubscribersMock) ListSubscriberEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type writeCloserMock struct{ data []byte }

func (w *writeCloserMock) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}
func (w *writeCloserMock) Close() error { return nil }

type ClientMock struct {
	mock.Mock
	writer *writeCloserMock
}

func (m *ClientMock) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}
func (m *ClientMock) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}
func (m *ClientMock) Data() (io.WriteCloser, error) {
	args := m.Called()
	return m.writer, args.Error(0)
}
func (m *ClientMock) Quit() error  { return nil }
func (m *ClientMock) Close() error { return nil }

type TransportMock struct {
	mock.Mock
	client libsmtp.Client
}

func (m *TransportMock) Connect() (libsmtp.Client, error) {
	args := m.Called()
	return m.client, args.Error(0)
}
func (m *TransportMock) GetSMTPUser() string { return "forum@example.com" }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendAnnouncement(t *testing.T) {
	body, err := json.Marshal(models.Announcement{
		ID:          3,
		AuthorName:  "admin",
		Title:       "Maintenance",
		Description: "Downtime tonight",
	})
	require.NoError(t, err)

	client := &ClientMock{writer: &writeCloserMock{}}
	client.On("Mail", "forum@example.com").Return(nil)
	client.On("Rcpt", mock.AnythingOfType("string")).Return(nil)
	client.On("Data").Return(nil)

	transport := &TransportMock{client: client}
	transport.On("Connect").Return(nil)

	subscribers := new(SubscribersMock)
	subscribers.On("ListSubscriberEmails", mock.Anything).
		Return([]string{"a@example.com", "b@example.com"}, nil)

	svc := New(transport, subscribers, discardLogger())

	err = svc.SendAnnouncement(body)

	require.NoError(t, err)
	client.AssertCalled(t, "Rcpt", "a@example.com")
	client.AssertCalled(t, "Rcpt", "b@example.com")
	assert.Contains(t, string(client.writer.data), "Maintenance")
	assert.Contains(t, string(client.writer.data), "Downtime tonight")
}

func TestSendAnnouncement_NoSubscribers(t *testing.T) {
	transport := &TransportMock{}
	subscribers := new(SubscribersMock)
	subscribers.On("ListSubscriberEmails", mock.Anything).Return([]string{}, nil)

	svc := New(transport, subscribers, discardLogger())

	err := svc.SendAnnouncement([]byte(`{"ID":1,"Title":"t"}`))

	assert.NoError(t, err)
	transport.AssertNotCalled(t, "Connect")
}

func TestSendAnnouncement_BadPayload(t *testing.T) {
	svc := New(&TransportMock{}, new(SubscribersMock), discardLogger())

	err := svc.SendAnnouncement([]byte("not-json"))

	assert.Error(t, err)
}
