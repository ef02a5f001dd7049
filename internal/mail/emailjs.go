package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/starford/billabong/internal/models"
)

// DefaultEndpoint is the public EmailJS API.
const DefaultEndpoint = "https://api.emailjs.com"

const defaultTimeout = 10 * time.Second

// Params is the template parameter set sent with every message.
type Params map[string]string

// Sender delivers one message through a mail template. The account keys
// and template ids come from the content snapshot current at send time.
type Sender interface {
	Send(ctx context.Context, account models.EmailJSConfig, params Params) error
}

// Client sends mail through the EmailJS REST API.
type Client struct {
	endpoint   string
	privateKey string
	http       *http.Client
}

// NewClient constructs a client. An empty endpoint uses DefaultEndpoint.
func NewClient(endpoint, privateKey string) *Client {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		privateKey: privateKey,
		http:       &http.Client{Timeout: defaultTimeout},
	}
}

type sendRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	AccessToken    string `json:"accessToken,omitempty"`
	TemplateParams Params `json:"template_params"`
}

// Send performs one send attempt.
func (c *Client) Send(ctx context.Context, account models.EmailJSConfig, params Params) error {
	endpoint, err := url.JoinPath(c.endpoint, "api", "v1.0", "email", "send")
	if err != nil {
		return err
	}
	payload, err := json.Marshal(sendRequest{
		ServiceID:      account.ServiceID,
		TemplateID:     account.TemplateID,
		UserID:         account.PublicKey,
		AccessToken:    c.privateKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("emailjs: status %d: %s", resp.StatusCode, drain(resp.Body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func drain(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(b))
}
