package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/order"
)

// Sender delivers a rendered message. Implementations: SMTP for real
// deployments, LogSender when no mail server is configured.
type Sender interface {
	Send(to, subject, html string) error
}

type Mailer struct {
	sender    Sender
	templates *template.Template
}

func NewMailer(sender Sender) (*Mailer, error) {
	templates, err := template.New("mail").Parse(orderConfirmationTmpl)
	if err != nil {
		return nil, err
	}
	return &Mailer{sender: sender, templates: templates}, nil
}

// Render produces the named template as an HTML string.
func (m *Mailer) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// OrderPlaced emails the order confirmation. Orders without a customer
// email are skipped silently.
func (m *Mailer) OrderPlaced(_ context.Context, o *order.Order) error {
	if o.Customer.Email == "" {
		return nil
	}

	html, err := m.Render("order_confirmation", o)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Order received — Mom's Charcoal Grill (#%.8s)", o.ID)
	return m.sender.Send(o.Customer.Email, subject, html)
}

const orderConfirmationTmpl = `{{define "order_confirmation"}}<html>
<body>
	<h2>Thanks, {{.Customer.Name}}!</h2>
	<p>We received your order and will start on it shortly.</p>
	<table>
		{{range .Lines}}
		<tr>
			<td>{{.Name}}{{if .Extra}} ({{.Extra}}){{end}}</td>
			<td>x{{.Quantity}}</td>
			<td>{{printf "%.2f" .UnitPrice}}</td>
		</tr>
		{{end}}
	</table>
	<p>
		Subtotal: {{printf "%.2f" .Totals.Subtotal}}<br>
		Tax: {{printf "%.2f" .Totals.Tax}}<br>
		Delivery: {{printf "%.2f" .Totals.Delivery}}<br>
		<strong>Total: {{printf "%.2f" .Totals.GrandTotal}}</strong>
	</p>
</body>
</html>{{end}}`
