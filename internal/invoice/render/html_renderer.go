package render

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const receiptHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Receipt {{.Invoice.Number}}</title>
  <style>
    :root {
      --primary: {{.Template.PrimaryColor}};
      --font: "{{.Template.FontFamily}}";
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: var(--font), "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .receipt {
      max-width: 820px;
      margin: 0 auto;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid var(--primary);
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .brand {
      display: flex;
      align-items: center;
      gap: 12px;
    }
    .brand img {
      max-height: 48px;
    }
    .registrations {
      font-size: 12px;
      color: #6b7280;
    }
    .meta {
      text-align: right;
      font-size: 14px;
    }
    .meta .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .section {
      margin-bottom: 24px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }
    th, td {
      padding: 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    .amounts td:last-child {
      text-align: right;
    }
    .totals {
      margin-top: 12px;
      display: flex;
      justify-content: flex-end;
      font-size: 16px;
    }
    .totals strong {
      margin-left: 12px;
    }
    .footer {
      border-top: 1px solid #e5e7eb;
      padding-top: 16px;
      font-size: 12px;
      color: #6b7280;
    }
  </style>
</head>
<body>
  <div class="receipt">
    <div class="header">
      <div class="brand">
        {{if .Template.LogoURL}}
        <img src="{{.Template.LogoURL}}" alt="Centre logo" />
        {{end}}
        <div>
          <div><strong>{{.Template.CompanyName}}</strong></div>
          <div>{{.Family.Name}}</div>
          <div>{{.Family.Email}}</div>
          <div class="registrations">
            {{if .Template.GSTNumber}}<div>GST No. {{.Template.GSTNumber}}</div>{{end}}
            {{if .Template.QSTNumber}}<div>QST No. {{.Template.QSTNumber}}</div>{{end}}
          </div>
        </div>
      </div>
      <div class="meta">
        <div class="label">Receipt</div>
        <div><strong>{{.Invoice.Number}}</strong></div>
        <div>Status: {{.Invoice.Status}}</div>
        <div>Invoiced: {{formatDate .Invoice.InvoiceDate}}</div>
        <div>Due: {{formatDate .Invoice.DueDate}}</div>
        {{if not .Invoice.PaidAt.IsZero}}<div>Paid: {{formatDate .Invoice.PaidAt}}</div>{{end}}
      </div>
    </div>

    <div class="section">
      <table class="amounts">
        <tbody>
          <tr><td>Subtotal</td><td>{{formatMoney .Invoice.Subtotal}}</td></tr>
          <tr><td>GST</td><td>{{formatMoney .Invoice.GST}}</td></tr>
          <tr><td>QST</td><td>{{formatMoney .Invoice.QST}}</td></tr>
          <tr><td><strong>Total</strong></td><td><strong>{{formatMoney .Invoice.Total}}</strong></td></tr>
        </tbody>
      </table>
    </div>

    {{if .Payments}}
    <div class="section">
      <table>
        <thead>
          <tr>
            <th>Receipt No.</th>
            <th>Date</th>
            <th>Method</th>
            <th>Reference</th>
            <th>Amount</th>
          </tr>
        </thead>
        <tbody>
          {{range .Payments}}
          <tr>
            <td>{{.ReceiptNumber}}</td>
            <td>{{formatDate .Date}}</td>
            <td>{{formatMethod .Method}}</td>
            <td>{{.Reference}}</td>
            <td>{{formatMoney .Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>
    {{end}}

    <div class="totals">
      <span>Paid {{formatMoney .Invoice.Paid}}</span>
      <span>Balance due</span>
      <strong>{{formatMoney .Invoice.Balance}}</strong>
    </div>

    <div class="footer">
      {{if .Template.FooterNotes}}<div>{{.Template.FooterNotes}}</div>{{end}}
    </div>
  </div>
</body>
</html>
`

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	fontFamilyFilter = regexp.MustCompile(`^[A-Za-z0-9 \-]+$`)
)

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatMoney":  formatMoney,
		"formatDate":   formatDate,
		"formatMethod": formatMethod,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("receipt").Funcs(funcs).Parse(receiptHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	input.Template.PrimaryColor = sanitizeColor(input.Template.PrimaryColor)
	input.Template.FontFamily = sanitizeFont(input.Template.FontFamily)
	if input.Template.CompanyName == "" {
		input.Template.CompanyName = "Receipt"
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(value decimal.Decimal) string {
	if value.IsNegative() {
		return "-$" + value.Abs().StringFixed(2)
	}
	return "$" + value.StringFixed(2)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("2006-01-02")
}

func formatMethod(value string) string {
	label := strings.ReplaceAll(strings.TrimSpace(value), "_", " ")
	if label == "" {
		return "-"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func sanitizeColor(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "#111827"
	}
	if hexColorPattern.MatchString(trimmed) {
		return trimmed
	}
	return "#111827"
}

func sanitizeFont(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "Space Grotesk"
	}
	if fontFamilyFilter.MatchString(trimmed) {
		return trimmed
	}
	return "Space Grotesk"
}
