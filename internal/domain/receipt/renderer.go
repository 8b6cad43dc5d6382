package receipt

import (
	"html/template"
	"strings"
	"time"
)

// ReceiptLine is one rendered sale line
type ReceiptLine struct {
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	UnitPrice   int64  `json:"unit_price" validate:"gte=0"`
	Total       int64  `json:"total"`
}

// ReceiptData is everything a receipt shows. It is passed per render call;
// the renderer holds no in-flight receipt state, so concurrent renders never
// bleed into each other.
type ReceiptData struct {
	StoreName    string
	StoreAddress string
	StorePhone   string
	SaleDate     time.Time
	CustomerName string
	Items        []ReceiptLine
	Subtotal     int64
	Discount     int64
	Total        int64
	Payment      int64
	Balance      int64
	Method       string
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>
body { font-family: monospace; width: 300px; margin: 0; }
.center { text-align: center; }
.line { border-top: 1px dashed #000; margin: 4px 0; }
table { width: 100%; border-collapse: collapse; }
td.num { text-align: right; }
</style></head>
<body>
<div class="center">
<strong>{{.StoreName}}</strong><br>
{{if .StoreAddress}}{{.StoreAddress}}<br>{{end}}
{{if .StorePhone}}{{.StorePhone}}<br>{{end}}
{{.SaleDate.Format "2006-01-02 15:04"}}
</div>
{{if .CustomerName}}<div>Customer: {{.CustomerName}}</div>{{end}}
<div class="line"></div>
<table>
{{range .Items}}<tr><td>{{.ProductName}}</td><td class="num">{{.Quantity}} x {{.UnitPrice}}</td><td class="num">{{.Total}}</td></tr>
{{end}}</table>
<div class="line"></div>
<table>
<tr><td>Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
{{if .Discount}}<tr><td>Discount</td><td class="num">-{{.Discount}}</td></tr>{{end}}
<tr><td><strong>Total</strong></td><td class="num"><strong>{{.Total}}</strong></td></tr>
<tr><td>Paid ({{.Method}})</td><td class="num">{{.Payment}}</td></tr>
{{if .Balance}}<tr><td>Balance</td><td class="num">{{.Balance}}</td></tr>{{end}}
</table>
<div class="line"></div>
<div class="center">Thank you!</div>
</body>
</html>
`

// Renderer renders receipts to printable HTML. It is safe for concurrent use:
// the template is parsed once and all per-receipt state lives in ReceiptData.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates receipt renderer
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the receipt HTML for one sale
func (r *Renderer) Render(data *ReceiptData) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
