package receipt_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/poskit/pos-api/internal/domain/receipt"
)

func TestRendererIncludesSaleDetails(t *testing.T) {
	r, err := receipt.NewRenderer()
	if err != nil {
		t.Fatalf("new renderer failed: %v", err)
	}

	html, err := r.Render(&receipt.ReceiptData{
		StoreName:    "Test Store",
		StoreAddress: "Abay 1",
		SaleDate:     time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC),
		CustomerName: "Aset",
		Items: []receipt.ReceiptLine{
			{ProductName: "Tea", Quantity: 2, UnitPrice: 1500, Total: 3000},
		},
		Subtotal: 3000,
		Discount: 500,
		Total:    2500,
		Payment:  2500,
		Method:   "cash",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Test Store", "Abay 1", "2026-03-14 15:04", "Aset", "Tea", "2 x 1500", "2500", "-500"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered receipt missing %q", want)
		}
	}
}

func TestRendererOmitsEmptySections(t *testing.T) {
	r, err := receipt.NewRenderer()
	if err != nil {
		t.Fatalf("new renderer failed: %v", err)
	}

	html, err := r.Render(&receipt.ReceiptData{
		StoreName: "Test Store",
		SaleDate:  time.Now(),
		Items: []receipt.ReceiptLine{
			{ProductName: "Tea", Quantity: 1, UnitPrice: 1000, Total: 1000},
		},
		Subtotal: 1000,
		Total:    1000,
		Payment:  1000,
		Method:   "cash",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if strings.Contains(html, "Customer:") {
		t.Error("receipt without a customer must not show the customer row")
	}
	if strings.Contains(html, "Discount") {
		t.Error("receipt without a discount must not show the discount row")
	}
	if strings.Contains(html, "Balance") {
		t.Error("fully paid receipt must not show the balance row")
	}
}

func TestRendererConcurrentRenders(t *testing.T) {
	r, err := receipt.NewRenderer()
	if err != nil {
		t.Fatalf("new renderer failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "Store A"
			if i%2 == 1 {
				name = "Store B"
			}
			html, err := r.Render(&receipt.ReceiptData{
				StoreName: name,
				SaleDate:  time.Now(),
				Items: []receipt.ReceiptLine{
					{ProductName: "Item", Quantity: 1, UnitPrice: 100, Total: 100},
				},
				Subtotal: 100,
				Total:    100,
				Payment:  100,
				Method:   "cash",
			})
			if err != nil {
				t.Errorf("render failed: %v", err)
				return
			}
			if !strings.Contains(html, name) {
				t.Errorf("receipt rendered with wrong store name, want %q", name)
			}
		}(i)
	}
	wg.Wait()
}
