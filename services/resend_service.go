package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendClient handles email sending via the Resend API.
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient returns nil when RESEND_API_KEY is unset; email sending
// is optional and all senders are nil-safe.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, transactional email disabled")
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@norvila.shop"
	}

	return &ResendClient{apiKey: apiKey, from: from}
}

type resendAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

func (r *ResendClient) send(to, subject, htmlBody string, attachments []resendAttachment) error {
	if r == nil {
		return nil
	}

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      to,
		"subject": subject,
		"html":    htmlBody,
	}
	if len(attachments) > 0 {
		payload["attachments"] = attachments
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	return nil
}

// SendContactMessageEmail forwards a storefront contact message to the shop
// inbox.
func (r *ResendClient) SendContactMessageEmail(msg *models.ContactMessage) error {
	if r == nil {
		return nil
	}

	inbox := os.Getenv("CONTACT_INBOX_EMAIL")
	if inbox == "" {
		inbox = "contact@norvila.shop"
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 600px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 22px; font-weight: bold; color: #262622;">New contact message</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 4px 0; font-size: 14px; color: #262622;"><strong>From:</strong> %s &lt;%s&gt;</p>
        <p style="margin: 4px 0; font-size: 14px; color: #262622;"><strong>Subject:</strong> %s</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="margin: 0; font-size: 14px; color: #262622; white-space: pre-wrap;">%s</p>
      </td>
    </tr>
  </table>
</body>
</html>
`, msg.Name, msg.Email, msg.Subject, msg.Message)

	err := r.send(inbox, fmt.Sprintf("[Contact] %s", msg.Subject), htmlBody, nil)
	if err != nil {
		return err
	}
	log.Printf("[resend] contact message from %s forwarded to %s", msg.Email, inbox)
	return nil
}

// OrderInvoiceEmailData holds data for the order confirmation email with
// the invoice PDF attached.
type OrderInvoiceEmailData struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	OrderDate     string
	Items         []InvoiceItem
	Subtotal      float64
	ShippingCost  float64
	TotalAmount   float64
	PDFContent    []byte
}

// SendOrderInvoiceEmail sends an order confirmation with an HTML summary
// and the invoice PDF attached.
func (r *ResendClient) SendOrderInvoiceEmail(data OrderInvoiceEmailData) error {
	if r == nil {
		return nil
	}

	var itemsRows strings.Builder
	for _, item := range data.Items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">€%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">€%.2f</td>
      </tr>
    `, item.ProductName, item.Quantity, item.Price, item.Subtotal))
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Order %s</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 900px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 26px; font-weight: bold; color: #262622;">Thank you for your order!</h1>
        <p style="margin: 8px 0 0 0; font-size: 14px; color: #79776d;">Order %s · %s</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <thead>
            <tr>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Item</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Qty</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Price</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Total</th>
            </tr>
          </thead>
          <tbody>
            %s
          </tbody>
        </table>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <table align="right" width="300" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="font-size: 14px; color: #79776d;">Subtotal</td>
            <td style="text-align: right; font-size: 14px; color: #262622;">€%.2f</td>
          </tr>
          <tr>
            <td style="font-size: 14px; color: #79776d;">Shipping</td>
            <td style="text-align: right; font-size: 14px; color: #262622;">€%.2f</td>
          </tr>
          <tr>
            <td style="font-size: 14px; font-weight: bold; border-top: 1px solid #e5e5e0; padding-top: 8px;">Total</td>
            <td style="text-align: right; font-size: 16px; font-weight: bold; color: #262622; border-top: 1px solid #e5e5e0; padding-top: 8px;">€%.2f</td>
          </tr>
        </table>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="font-size: 14px; color: #79776d;">© 2026 Norvila Store. All rights reserved.</p>
      </td>
    </tr>
  </table>
</body>
</html>
`, data.OrderNumber, data.OrderNumber, data.OrderDate,
		itemsRows.String(),
		data.Subtotal, data.ShippingCost, data.TotalAmount,
	)

	attachments := []resendAttachment{{
		Filename: fmt.Sprintf("invoice-%s.pdf", data.OrderNumber),
		Content:  base64.StdEncoding.EncodeToString(data.PDFContent),
	}}

	subject := fmt.Sprintf("Your Norvila Store order %s", data.OrderNumber)
	if err := r.send(data.CustomerEmail, subject, htmlBody, attachments); err != nil {
		return err
	}
	log.Printf("[resend] order invoice email sent to %s for order %s", data.CustomerEmail, data.OrderNumber)
	return nil
}
