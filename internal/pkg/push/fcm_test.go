package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingServer(t *testing.T) (*httptest.Server, func() []fcmMessage) {
	t.Helper()

	var mu sync.Mutex
	var received []fcmMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg fcmMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))

		mu.Lock()
		received = append(received, msg)
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []fcmMessage {
		mu.Lock()
		defer mu.Unlock()
		return append([]fcmMessage(nil), received...)
	}
}

func TestSendFansOutToUniqueTokens(t *testing.T) {
	srv, messages := newCapturingServer(t)
	svc := &fcmService{sendURL: srv.URL, client: srv.Client(), enabled: true}

	svc.Send(context.Background(),
		[]string{"tok-a", "tok-b", "tok-a", ""},
		Notification{Title: "Office closed Friday", Body: "Dana Reed: Building maintenance all day."},
		map[string]string{"type": "announcement", "announcement_id": "ann-1"},
	)

	got := messages()
	require.Len(t, got, 2)

	tokens := []string{got[0].Message.Token, got[1].Message.Token}
	assert.ElementsMatch(t, []string{"tok-a", "tok-b"}, tokens)

	for _, msg := range got {
		assert.Equal(t, "Office closed Friday", msg.Message.Notification["title"])
		assert.Equal(t, "Dana Reed: Building maintenance all day.", msg.Message.Notification["body"])
		assert.Equal(t, "ann-1", msg.Message.Data["announcement_id"])
	}
}

func TestSendWithoutTokensIsNoop(t *testing.T) {
	srv, messages := newCapturingServer(t)
	svc := &fcmService{sendURL: srv.URL, client: srv.Client(), enabled: true}

	svc.Send(context.Background(), nil, Notification{Title: "t", Body: "b"}, nil)
	svc.Send(context.Background(), []string{""}, Notification{Title: "t", Body: "b"}, nil)

	assert.Empty(t, messages())
}

func TestDisabledServiceNeverCallsOut(t *testing.T) {
	svc := NewFCMService("", "", "")

	// Must not panic or dial anything without credentials.
	svc.Send(context.Background(), []string{"tok-a"}, Notification{Title: "t", Body: "b"}, nil)
}
