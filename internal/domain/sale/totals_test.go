package sale

import (
	"errors"
	"testing"
)

func TestComputeTotals(t *testing.T) {
	items := []SaleItemRequest{
		{ProductName: "A", Quantity: 2, UnitPrice: 1000, Total: 2000},
		{ProductName: "B", Quantity: 1, UnitPrice: 2000, Total: 2000},
		{ProductName: "C", Quantity: 5, UnitPrice: 500, Total: 2500},
	}

	subtotal, total, err := computeTotals(items, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subtotal != 6500 {
		t.Fatalf("expected subtotal 6500, got %d", subtotal)
	}
	if total != 5500 {
		t.Fatalf("expected total 5500, got %d", total)
	}
}

func TestComputeTotalsRejectsMismatchedLine(t *testing.T) {
	items := []SaleItemRequest{
		{ProductName: "A", Quantity: 2, UnitPrice: 1000, Total: 1999},
	}

	_, _, err := computeTotals(items, 0)
	if !errors.Is(err, ErrInvalidLineItem) {
		t.Fatalf("expected ErrInvalidLineItem, got %v", err)
	}
}

func TestComputeTotalsDiscountNotClamped(t *testing.T) {
	items := []SaleItemRequest{
		{ProductName: "A", Quantity: 1, UnitPrice: 500, Total: 500},
	}

	_, total, err := computeTotals(items, 800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != -300 {
		t.Fatalf("expected total -300, got %d", total)
	}
}
