package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

const (
	fcmScope           = "https://www.googleapis.com/auth/firebase.messaging"
	fcmSendURL         = "https://fcm.googleapis.com/v1/projects/%s/messages:send"
	maxConcurrentSends = 20
	sendTimeout        = 10 * time.Second
)

// Notification is the visible part of a push message.
type Notification struct {
	Title string
	Body  string
}

// Service delivers push messages to device tokens. Delivery is best-effort;
// failures are logged and never surfaced to callers.
type Service interface {
	Send(ctx context.Context, tokens []string, notification Notification, data map[string]string)
}

type fcmService struct {
	sendURL string
	client  *http.Client
	enabled bool
}

// NewFCMService builds a push service backed by the FCM HTTP v1 API with a
// service-account token source. When credentials are absent the service is
// a no-op, so environments without FCM keep working.
func NewFCMService(projectID, clientEmail, privateKey string) Service {
	if projectID == "" || clientEmail == "" || privateKey == "" {
		slog.Warn("FCM credentials missing, push notifications disabled")
		return &fcmService{enabled: false}
	}

	cfg := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(strings.ReplaceAll(privateKey, `\n`, "\n")),
		Scopes:     []string{fcmScope},
		TokenURL:   google.JWTTokenURL,
	}

	client := oauth2.NewClient(context.Background(), cfg.TokenSource(context.Background()))
	client.Timeout = sendTimeout

	return &fcmService{
		sendURL: fmt.Sprintf(fcmSendURL, projectID),
		client:  client,
		enabled: true,
	}
}

type fcmMessage struct {
	Message struct {
		Token        string            `json:"token"`
		Notification map[string]string `json:"notification"`
		Data         map[string]string `json:"data,omitempty"`
	} `json:"message"`
}

// Send fans the message out to the unique tokens with a bounded worker pool.
func (s *fcmService) Send(ctx context.Context, tokens []string, notification Notification, data map[string]string) {
	if !s.enabled || len(tokens) == 0 {
		return
	}

	unique := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}
	if len(unique) == 0 {
		return
	}

	queue := make(chan string, len(unique))
	for _, token := range unique {
		queue <- token
	}
	close(queue)

	workers := maxConcurrentSends
	if len(unique) < workers {
		workers = len(unique)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for token := range queue {
				if err := s.sendOne(ctx, token, notification, data); err != nil {
					slog.Error("Failed to send FCM message", "error", err)
				}
			}
		}()
	}
	wg.Wait()
}

func (s *fcmService) sendOne(ctx context.Context, token string, notification Notification, data map[string]string) error {
	var msg fcmMessage
	msg.Message.Token = token
	msg.Message.Notification = map[string]string{
		"title": notification.Title,
		"body":  notification.Body,
	}
	msg.Message.Data = data

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.sendURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("fcm responded %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
