package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewResendMailer(from string) (*ResendMailer, error) {
	key := os.Getenv("RESEND_API_KEY")
	if key == "" {
		return nil, errors.New("RESEND_API_KEY not set")
	}

	return &ResendMailer{
		apiKey: key,
		from:   from,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendOrderConfirmation mails the customer an itemized receipt for a
// committed order.
func (m *ResendMailer) SendOrderConfirmation(ctx context.Context, order *model.Order) error {
	var rows strings.Builder
	for _, it := range order.Items {
		fmt.Fprintf(&rows,
			`<tr><td style="padding:8px;border-bottom:1px solid #ddd;">%s</td>`+
				`<td style="padding:8px;border-bottom:1px solid #ddd;text-align:center;">%d</td>`+
				`<td style="padding:8px;border-bottom:1px solid #ddd;text-align:right;">%.2f</td></tr>`,
			it.Name, it.Quantity, it.Price*float64(it.Quantity))
	}

	html := fmt.Sprintf(`
		<h2>Order Confirmed!</h2>
		<p>Thank you for your purchase, %s.</p>
		<p><strong>Order ID:</strong> %s</p>
		<table style="width:100%%;border-collapse:collapse;">%s</table>
		<p><strong>Subtotal:</strong> %.2f</p>
		<p><strong>Shipping:</strong> %.2f</p>
		<p><strong>Tax:</strong> %.2f</p>
		<p><strong>Total:</strong> %.2f</p>
		<p>Your order is being processed. You will receive a shipping notification soon.</p>
	`, order.Customer.FirstName, order.ID, rows.String(),
		order.Subtotal, order.ShippingCost, order.Tax, order.Total)

	return m.send(ctx, order.Customer.Email,
		fmt.Sprintf("Order Confirmation - Order %s", order.ID), html)
}

// SendShippingNotification mails the customer that the order is on its way.
func (m *ResendMailer) SendShippingNotification(ctx context.Context, order *model.Order, trackingNumber string) error {
	tracking := ""
	if trackingNumber != "" {
		tracking = fmt.Sprintf("<p><strong>Tracking Number:</strong> %s</p>", trackingNumber)
	}
	html := fmt.Sprintf(`
		<h2>Your Order is on the Way!</h2>
		<p>Hi %s,</p>
		<p>Your order <strong>%s</strong> has been shipped.</p>
		%s
		<p><strong>Estimated Delivery:</strong> 3-5 business days</p>
	`, order.Customer.FirstName, order.ID, tracking)

	return m.send(ctx, order.Customer.Email,
		fmt.Sprintf("Your Order %s Has Shipped!", order.ID), html)
}

// SendTestEmail confirms the mail configuration works.
func (m *ResendMailer) SendTestEmail(ctx context.Context, toEmail string) error {
	html := fmt.Sprintf(`
		<h2>Email Configuration Working!</h2>
		<p>This is a test email confirming your email configuration.</p>
		<p><strong>Recipient:</strong> %s</p>
	`, toEmail)
	return m.send(ctx, toEmail, "Test Email from E-Commerce Store", html)
}

func (m *ResendMailer) send(ctx context.Context, toEmail, subject, html string) error {
	body := sendRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: subject,
		HTML:    html,
	}

	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/emails",
		bytes.NewBuffer(b),
	)

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("failed to send email: " + buf.String())
	}

	return nil
}
