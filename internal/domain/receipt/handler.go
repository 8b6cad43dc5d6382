package receipt

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/poskit/pos-api/internal/pkg/response"
	"github.com/poskit/pos-api/internal/pkg/validator"
)

// PrintReceiptRequest for POST /print/receipt
type PrintReceiptRequest struct {
	CustomerName  string        `json:"customer_name,omitempty" validate:"omitempty,max=255"`
	SaleDate      time.Time     `json:"sale_date"`
	Items         []ReceiptLine `json:"items" validate:"required,min=1,dive"`
	Subtotal      int64         `json:"subtotal"`
	Discount      int64         `json:"discount" validate:"gte=0"`
	Total         int64         `json:"total"`
	PaymentAmount int64         `json:"payment_amount" validate:"gte=0"`
	Balance       int64         `json:"balance"`
	PaymentMethod string        `json:"payment_method" validate:"required,max=50"`
}

// StoreInfo identifies the store on the receipt header
type StoreInfo struct {
	Name    string
	Address string
	Phone   string
}

// Handler handles receipt HTTP requests
type Handler struct {
	renderer *Renderer
	store    StoreInfo
	printers []string
}

// NewHandler creates receipt handler
func NewHandler(renderer *Renderer, store StoreInfo, printers []string) *Handler {
	return &Handler{renderer: renderer, store: store, printers: printers}
}

// Print handles POST /print/receipt
func (h *Handler) Print(w http.ResponseWriter, r *http.Request) {
	var req PrintReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	saleDate := req.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	html, err := h.renderer.Render(&ReceiptData{
		StoreName:    h.store.Name,
		StoreAddress: h.store.Address,
		StorePhone:   h.store.Phone,
		SaleDate:     saleDate,
		CustomerName: req.CustomerName,
		Items:        req.Items,
		Subtotal:     req.Subtotal,
		Discount:     req.Discount,
		Total:        req.Total,
		Payment:      req.PaymentAmount,
		Balance:      req.Balance,
		Method:       req.PaymentMethod,
	})
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"html": html})
}

// Printers handles GET /print/printers
func (h *Handler) Printers(w http.ResponseWriter, r *http.Request) {
	printers := h.printers
	if printers == nil {
		printers = []string{}
	}
	response.OK(w, printers)
}

// Test handles POST /print/test
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	html, err := h.renderer.Render(&ReceiptData{
		StoreName:    h.store.Name,
		StoreAddress: h.store.Address,
		StorePhone:   h.store.Phone,
		SaleDate:     time.Now(),
		Items: []ReceiptLine{
			{ProductName: "Test item", Quantity: 1, UnitPrice: 1000, Total: 1000},
		},
		Subtotal: 1000,
		Total:    1000,
		Payment:  1000,
		Method:   "cash",
	})
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"html": html})
}
