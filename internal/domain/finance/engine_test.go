package finance

import (
	"math"
	"testing"

	"importafacil/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWeightInKg(t *testing.T) {
	if got := WeightInKg(3.5, entities.WeightUnitKg); got != 3.5 {
		t.Fatalf("kg should pass through, got %v", got)
	}
	if got := WeightInKg(2.20462, entities.WeightUnitLb); !almostEqual(got, 1) {
		t.Fatalf("expected 1kg, got %v", got)
	}
	if got := WeightInKg(-4, entities.WeightUnitKg); got != 0 {
		t.Fatalf("negative weight should clamp to 0, got %v", got)
	}
}

func TestTotalWeightKg(t *testing.T) {
	items := []entities.ProductItem{
		{Quantity: 2, Weight: 1, WeightUnit: entities.WeightUnitKg},
		{Quantity: 1, Weight: 2.20462, WeightUnit: entities.WeightUnitLb},
	}
	if got := TotalWeightKg(items); !almostEqual(got, 3) {
		t.Fatalf("expected 3kg, got %v", got)
	}
}

func TestFinalPrice(t *testing.T) {
	t.Run("derived when taxes or discounts present", func(t *testing.T) {
		it := entities.ProductItem{OriginalPrice: 100, Taxes: 7, Discounts: 2, FinalPrice: 999}
		if got := FinalPrice(it, entities.FormulaVersionCurrent); got != 95 {
			t.Fatalf("expected 95, got %v", got)
		}
	})
	t.Run("entered price kept without taxes or discounts", func(t *testing.T) {
		it := entities.ProductItem{OriginalPrice: 10, FinalPrice: 15}
		if got := FinalPrice(it, entities.FormulaVersionCurrent); got != 15 {
			t.Fatalf("expected 15, got %v", got)
		}
	})
	t.Run("legacy version never derives", func(t *testing.T) {
		it := entities.ProductItem{OriginalPrice: 100, Taxes: 7, FinalPrice: 120}
		if got := FinalPrice(it, entities.FormulaVersionLegacy); got != 120 {
			t.Fatalf("expected 120, got %v", got)
		}
	})
}

func TestLogisticsCost(t *testing.T) {
	t.Run("weight only", func(t *testing.T) {
		items := []entities.ProductItem{{Quantity: 2, Weight: 1, WeightUnit: entities.WeightUnitKg}}
		if got := LogisticsCost(items, 15, entities.FormulaVersionCurrent); got != 30 {
			t.Fatalf("expected 30, got %v", got)
		}
	})
	t.Run("electronics surcharge current version", func(t *testing.T) {
		items := []entities.ProductItem{{
			Quantity: 1, Weight: 0, WeightUnit: entities.WeightUnitKg,
			OriginalPrice: 100, Taxes: 10, Discounts: 5, IsElectronics: true,
		}}
		// (100 - 10 - 5) * 1 * 0.20
		if got := LogisticsCost(items, 15, entities.FormulaVersionCurrent); got != 17 {
			t.Fatalf("expected 17, got %v", got)
		}
	})
	t.Run("electronics surcharge legacy version", func(t *testing.T) {
		items := []entities.ProductItem{{
			Quantity: 1, Weight: 0, WeightUnit: entities.WeightUnitKg,
			OriginalPrice: 100, Taxes: 10, Discounts: 5, IsElectronics: true,
		}}
		if got := LogisticsCost(items, 15, entities.FormulaVersionLegacy); got != 20 {
			t.Fatalf("expected 20, got %v", got)
		}
	})
}

func TestRecomputeGrandTotalInvariant(t *testing.T) {
	inv := entities.Invoice{
		ClientID: "c1",
		Items: []entities.ProductItem{
			{Quantity: 2, Weight: 1, WeightUnit: entities.WeightUnitKg, OriginalPrice: 10, FinalPrice: 15, Commission: 1},
			{Quantity: 1, Weight: 0.5, WeightUnit: entities.WeightUnitKg, OriginalPrice: 40, Taxes: 4, Discounts: 1, Commission: 2, IsElectronics: true},
		},
		// Stale persisted totals must be discarded.
		GrandTotalUSD: 9999,
	}
	s := entities.Settings{ExchangeRate: 40.5, PricePerKg: 15, FormulaVersion: entities.FormulaVersionCurrent}
	Recompute(&inv, s)

	wantSale := Round2(15*2 + 37*1)
	if inv.TotalProductSale != wantSale {
		t.Fatalf("sale = %v, want %v", inv.TotalProductSale, wantSale)
	}
	invariant := Round2(inv.TotalProductSale + inv.LogisticsCost + inv.TotalCommissions)
	if inv.GrandTotalUSD != invariant {
		t.Fatalf("grand total %v violates invariant %v", inv.GrandTotalUSD, invariant)
	}
	if inv.Status != entities.InvoiceStatusDraft {
		t.Fatalf("blank status should default to draft, got %s", inv.Status)
	}
	if inv.ExchangeRate != 40.5 {
		t.Fatalf("exchange rate should snapshot from settings, got %v", inv.ExchangeRate)
	}
}

func TestRecomputeQuantityFloor(t *testing.T) {
	inv := entities.Invoice{Items: []entities.ProductItem{{Quantity: 0, FinalPrice: 5}}}
	Recompute(&inv, entities.DefaultSettings())
	if inv.Items[0].Quantity != 1 {
		t.Fatalf("quantity should floor at 1, got %d", inv.Items[0].Quantity)
	}
	if inv.TotalProductSale != 5 {
		t.Fatalf("expected sale 5, got %v", inv.TotalProductSale)
	}
}

func TestRemainingBalance(t *testing.T) {
	inv := entities.Invoice{GrandTotalUSD: 62, AmountPaid: 50}
	if got := RemainingBalance(inv); got != 12 {
		t.Fatalf("expected 12, got %v", got)
	}
	inv.AmountPaid = 100
	if got := RemainingBalance(inv); got != 0 {
		t.Fatalf("overpaid balance should floor at 0, got %v", got)
	}
}
