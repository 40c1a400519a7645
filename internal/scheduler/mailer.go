package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/ousama-oujaber/SupplyChainX/internal/config"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
)

var alertTemplate = template.Must(template.New("alert").Parse(`
<h2>Low stock alert</h2>
<p>The following raw materials are below their minimum stock as of {{.RanAt.Format "2006-01-02 15:04"}}:</p>
<table border="1" cellpadding="4" cellspacing="0">
  <tr><th>Material</th><th>Stock</th><th>Minimum</th><th>Unit</th></tr>
  {{range .Materials}}
  <tr><td>{{.Name}}</td><td>{{.Stock}}</td><td>{{.StockMin}}</td><td>{{.Unit}}</td></tr>
  {{end}}
</table>
`))

// Mailer sends low-stock alerts through SendGrid.
type Mailer struct {
	cfg config.MailConfig
}

func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendLowStockAlert(ctx context.Context, materials []entity.RawMaterial, ranAt time.Time) error {
	if m.cfg.SendGridAPIKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if m.cfg.AlertRecipient == "" {
		return fmt.Errorf("alert recipient is empty")
	}

	var body bytes.Buffer
	err := alertTemplate.Execute(&body, struct {
		RanAt     time.Time
		Materials []entity.RawMaterial
	}{RanAt: ranAt, Materials: materials})
	if err != nil {
		return fmt.Errorf("render alert body: %w", err)
	}

	plainText := fmt.Sprintf("%d raw materials are below their minimum stock.", len(materials))

	message := mail.NewSingleEmail(
		mail.NewEmail(m.cfg.FromName, m.cfg.FromAddress),
		fmt.Sprintf("Low stock alert: %d materials below minimum", len(materials)),
		mail.NewEmail("", m.cfg.AlertRecipient),
		plainText,
		body.String(),
	)

	client := sendgrid.NewSendClient(m.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", response.StatusCode, response.Body)
	}

	return nil
}
