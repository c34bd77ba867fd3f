package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/example/order-alert-service/internal/domain"
)

const defaultTimeout = 10 * time.Second

// FCMClient sends a notification to many device tokens in one multicast call
// against the FCM legacy HTTP endpoint. The response carries one result per
// token in request order; error codes InvalidRegistration and NotRegistered
// mark the token permanently dead.
type FCMClient struct {
	Endpoint  string
	ServerKey string
	HTTP      *http.Client
}

type multicastRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    notificationBody  `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type notificationBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type multicastResponse struct {
	Success int              `json:"success"`
	Failure int              `json:"failure"`
	Results []multicastEntry `json:"results"`
}

type multicastEntry struct {
	MessageID string `json:"message_id"`
	Error     string `json:"error"`
}

func (c *FCMClient) SendMulticast(ctx context.Context, tokens []string, n domain.Notification) ([]domain.SendResult, error) {
	body, err := json.Marshal(multicastRequest{
		RegistrationIDs: tokens,
		Notification:    notificationBody{Title: n.Title, Body: n.Body},
		Data:            n.Data,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.ServerKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("push provider returned status %d", resp.StatusCode)
	}

	var mr multicastResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, err
	}
	if len(mr.Results) != len(tokens) {
		// cannot align results to tokens, refuse to classify anything
		return nil, fmt.Errorf("push provider returned %d results for %d tokens", len(mr.Results), len(tokens))
	}

	out := make([]domain.SendResult, len(tokens))
	for i, entry := range mr.Results {
		out[i] = domain.SendResult{
			Token:     tokens[i],
			Success:   entry.Error == "",
			ErrorCode: entry.Error,
		}
	}
	return out, nil
}

func (c *FCMClient) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: defaultTimeout}
}

var _ domain.PushSender = (*FCMClient)(nil)
