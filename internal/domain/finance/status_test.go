package finance

import (
	"testing"

	"importafacil/internal/domain/entities"
)

func TestApplyStatusForcesAmount(t *testing.T) {
	inv := entities.Invoice{Status: entities.InvoiceStatusPending, GrandTotalUSD: 62}

	ApplyStatus(&inv, entities.InvoiceStatusPaid)
	if inv.AmountPaid != 62 {
		t.Fatalf("paid should collect the grand total, got %v", inv.AmountPaid)
	}

	ApplyStatus(&inv, entities.InvoiceStatusPending)
	if inv.AmountPaid != 0 {
		t.Fatalf("pending should zero the amount, got %v", inv.AmountPaid)
	}

	inv.AmountPaid = 30
	ApplyStatus(&inv, entities.InvoiceStatusPartial)
	if inv.AmountPaid != 30 {
		t.Fatalf("partial should leave the amount alone, got %v", inv.AmountPaid)
	}

	ApplyStatus(&inv, entities.InvoiceStatusDelivered)
	if inv.AmountPaid != 62 {
		t.Fatalf("delivered should collect the grand total, got %v", inv.AmountPaid)
	}
}

func TestApplyAmountPaidDerivesStatus(t *testing.T) {
	inv := entities.Invoice{Status: entities.InvoiceStatusPaid, GrandTotalUSD: 62, AmountPaid: 62}

	ApplyAmountPaid(&inv, 0)
	if inv.Status != entities.InvoiceStatusPending {
		t.Fatalf("zero amount should derive pending, got %s", inv.Status)
	}

	ApplyAmountPaid(&inv, 10)
	if inv.Status != entities.InvoiceStatusPartial {
		t.Fatalf("partial amount should derive partial, got %s", inv.Status)
	}

	ApplyAmountPaid(&inv, 62)
	if inv.Status != entities.InvoiceStatusPaid {
		t.Fatalf("full amount should derive paid, got %s", inv.Status)
	}

	ApplyAmountPaid(&inv, 70)
	if inv.Status != entities.InvoiceStatusPaid {
		t.Fatalf("overpayment stays paid, got %s", inv.Status)
	}
}

func TestApplyAmountPaidStickyStates(t *testing.T) {
	t.Run("delivered never demotes on amount edits", func(t *testing.T) {
		inv := entities.Invoice{Status: entities.InvoiceStatusDelivered, GrandTotalUSD: 62, AmountPaid: 62}
		ApplyAmountPaid(&inv, 10)
		if inv.Status != entities.InvoiceStatusDelivered {
			t.Fatalf("expected delivered, got %s", inv.Status)
		}
		ApplyAmountPaid(&inv, 62)
		if inv.Status != entities.InvoiceStatusDelivered {
			t.Fatalf("expected delivered, got %s", inv.Status)
		}
	})

	t.Run("draft keeps its status", func(t *testing.T) {
		inv := entities.Invoice{Status: entities.InvoiceStatusDraft, GrandTotalUSD: 62}
		ApplyAmountPaid(&inv, 30)
		if inv.Status != entities.InvoiceStatusDraft {
			t.Fatalf("expected draft, got %s", inv.Status)
		}
		if inv.AmountPaid != 30 {
			t.Fatalf("amount should still be recorded, got %v", inv.AmountPaid)
		}
	})
}
