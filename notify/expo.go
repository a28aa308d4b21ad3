package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	expoPushURL    = "https://exp.host/--/api/v2/push/send"
	expoBatchLimit = 100
)

// ExpoPushMessage represents a single push notification message for the Expo push API
type ExpoPushMessage struct {
	To        string                 `json:"to"`
	Title     string                 `json:"title,omitempty"`
	Body      string                 `json:"body,omitempty"`
	Sound     string                 `json:"sound,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Priority  string                 `json:"priority,omitempty"`
	ChannelID string                 `json:"channelId,omitempty"`
}

// ExpoSender dispatches fired reminders to the device through the Expo push
// API. Tokens are batched in groups of 100 per the Expo API limit.
type ExpoSender struct {
	client *http.Client
	tokens func() []string
}

// NewExpoSender returns a sender that resolves the device token list through
// tokens on every send, so token rotation needs no restart.
func NewExpoSender(tokens func() []string) *ExpoSender {
	return &ExpoSender{
		client: &http.Client{Timeout: 15 * time.Second},
		tokens: tokens,
	}
}

// Send pushes one reminder to every registered device token
func (s *ExpoSender) Send(reminder Reminder) error {
	tokens := s.tokens()
	if len(tokens) == 0 {
		return nil
	}

	var messages []ExpoPushMessage
	for _, token := range tokens {
		messages = append(messages, ExpoPushMessage{
			To:       token,
			Title:    reminder.Title,
			Body:     reminder.Body,
			Sound:    "default",
			Priority: "high",
			Data: map[string]interface{}{
				"reminderID": reminder.ID,
			},
			ChannelID: "default",
		})
	}

	for i := 0; i < len(messages); i += expoBatchLimit {
		end := i + expoBatchLimit
		if end > len(messages) {
			end = len(messages)
		}
		if err := s.sendBatch(messages[i:end]); err != nil {
			zap.S().Errorf("Failed to send Expo push batch (tokens %d-%d): %v", i, end-1, err)
			// Continue with remaining batches even if one fails
		}
	}
	return nil
}

func (s *ExpoSender) sendBatch(messages []ExpoPushMessage) error {
	jsonData, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal push messages: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, expoPushURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("expo push API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
