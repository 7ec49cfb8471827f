package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/ASTB-BookingService/internal/domain"
	"github.com/m04kA/ASTB-BookingService/pkg/metrics"
)

const defaultBaseURL = "https://api.resend.com"

// Client клиент для отправки уведомлений о бронированиях через Resend API.
// Если API ключ не задан, отправка молча пропускается - уведомления
// опциональны и никогда не влияют на судьбу самого бронирования.
type Client struct {
	baseURL     string
	apiKey      string
	from        string
	notifyEmail string
	httpClient  *http.Client
	collector   *metrics.Metrics
	log         Logger
}

// NewClient creates a Resend notification client.
// Collector может быть nil - тогда метрики уведомлений не собираются.
func NewClient(apiKey, from, notifyEmail string, timeout time.Duration, collector *metrics.Metrics, log Logger) *Client {
	return &Client{
		baseURL:     defaultBaseURL,
		apiKey:      apiKey,
		from:        from,
		notifyEmail: notifyEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		collector: collector,
		log:       log,
	}
}

// Enabled reports whether the client is configured to actually send email
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// SendBookingNotification отправляет владельцу письмо о новом бронировании.
// Без API ключа возвращает nil, ничего не отправляя.
func (c *Client) SendBookingNotification(ctx context.Context, n *BookingNotification) error {
	if !c.Enabled() {
		c.log.Info("SendBookingNotification: notifier disabled, skipping email for %s %s", n.Date, n.TimeSlot)
		c.countOutcome("skipped")
		return nil
	}

	payload := sendEmailRequest{
		From:    c.from,
		To:      []string{c.notifyEmail},
		Subject: buildSubject(n),
		HTML:    buildHTML(n),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.countOutcome("failed")
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.countOutcome("failed")
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countOutcome("failed")
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.countOutcome("failed")
		respBody, _ := io.ReadAll(resp.Body)

		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.countOutcome("sent")
	c.log.Info("SendBookingNotification: email sent for %s %s", n.Date, n.TimeSlot)
	return nil
}

func (c *Client) countOutcome(outcome string) {
	if c.collector != nil {
		c.collector.NotificationsTotal.WithLabelValues(outcome).Inc()
	}
}

// buildSubject собирает тему письма с длинной датой ("Monday, March 10, 2025")
func buildSubject(n *BookingNotification) string {
	formattedDate := n.Date
	if date, err := domain.ParseDate(n.Date); err == nil {
		formattedDate = date.Format("Monday, January 2, 2006")
	}
	return fmt.Sprintf("New ASTB Prep booking: %s - %s at %s", n.Name, formattedDate, n.TimeSlot)
}

func buildHTML(n *BookingNotification) string {
	formattedDate := n.Date
	if date, err := domain.ParseDate(n.Date); err == nil {
		formattedDate = date.Format("Monday, January 2, 2006")
	}

	noteRow := ""
	if n.Note != nil && *n.Note != "" {
		noteRow = fmt.Sprintf("<p><strong>Note:</strong> %s</p>", html.EscapeString(*n.Note))
	}

	return fmt.Sprintf(`<h2>New tutoring session scheduled</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
%s<p>They received instructions to pay via Venmo to confirm. Check the admin page when payment is received.</p>`,
		html.EscapeString(n.Name),
		html.EscapeString(n.Email),
		formattedDate,
		n.TimeSlot,
		noteRow,
	)
}
