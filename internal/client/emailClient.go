package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"lyra-storefront/internal/config"

	"github.com/shopspring/decimal"
)

type OrderEmailLine struct {
	ProductName string
	Quantity    int64
	Price       int64 // cents
}

type OrderConfirmation struct {
	To          string
	OrderID     string
	TotalAmount int64 // cents
	Currency    string
	Lines       []OrderEmailLine
}

type EmailClient interface {
	SendOrderConfirmation(ctx context.Context, data *OrderConfirmation) error
}

type emailClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
	from       string
}

func NewEmailClient(cfg *config.Email) EmailClient {
	return &emailClientImpl{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		apiKey:     cfg.APIKey,
		from:       cfg.From,
	}
}

func (c *emailClientImpl) SendOrderConfirmation(ctx context.Context, data *OrderConfirmation) error {
	payload := map[string]string{
		"from":    c.from,
		"to":      data.To,
		"subject": fmt.Sprintf("Order Confirmation - %s", data.OrderID),
		"html":    renderOrderConfirmation(data),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/emails", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email provider error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}

// FormatAmount renders integer cents as a currency string, e.g. 5000 ->
// "$50.00".
func FormatAmount(cents int64, currency string) string {
	value := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
	symbol := "$"
	if !strings.EqualFold(currency, "usd") {
		symbol = strings.ToUpper(currency) + " "
	}
	return symbol + value
}

func renderOrderConfirmation(data *OrderConfirmation) string {
	var sb strings.Builder
	sb.WriteString("<h2>Thank you for your order</h2>")
	fmt.Fprintf(&sb, "<p>Order <strong>%s</strong></p><ul>", html.EscapeString(data.OrderID))
	for _, line := range data.Lines {
		fmt.Fprintf(&sb, "<li>%s × %d — %s</li>",
			html.EscapeString(line.ProductName),
			line.Quantity,
			FormatAmount(line.Price, data.Currency))
	}
	fmt.Fprintf(&sb, "</ul><p>Total: <strong>%s</strong></p>",
		FormatAmount(data.TotalAmount, data.Currency))
	return sb.String()
}
