// Package finance is the invoice formula engine: pure, stateless functions
// turning line items plus settings into logistics cost, totals, payment
// status and profit figures. Nothing here touches storage or the network.
package finance

import (
	"github.com/shopspring/decimal"

	"importafacil/internal/domain/entities"
	"importafacil/internal/numeric"
)

// LbPerKg converts entered pounds to kilograms.
const LbPerKg = 2.20462

// ElectronicsSurchargeRate is the customs surcharge applied to electronics
// line items on top of the weight-based logistics cost.
const ElectronicsSurchargeRate = 0.20

// Round2 rounds a money value to 2 decimals, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// WeightInKg normalizes a single entered weight to kilograms.
func WeightInKg(weight float64, unit entities.WeightUnit) float64 {
	w := numeric.SafeNumber(weight)
	if w < 0 {
		w = 0
	}
	if unit == entities.WeightUnitLb {
		return w / LbPerKg
	}
	return w
}

// TotalWeightKg is the shipped weight of the whole invoice in kilograms.
func TotalWeightKg(items []entities.ProductItem) float64 {
	total := 0.0
	for _, it := range items {
		total += WeightInKg(it.Weight, it.WeightUnit) * float64(quantity(it))
	}
	return total
}

// FinalPrice resolves the selling price of an item under the given formula
// version. Version 2 derives it from originalPrice - taxes + discounts once
// either field is set; items without taxes/discounts (including every item
// under version 1) keep the operator-entered price.
func FinalPrice(it entities.ProductItem, version int) float64 {
	if version >= entities.FormulaVersionCurrent && (it.Taxes != 0 || it.Discounts != 0) {
		return Round2(numeric.SafeNumber(it.OriginalPrice) - numeric.SafeNumber(it.Taxes) + numeric.SafeNumber(it.Discounts))
	}
	return numeric.SafeNumber(it.FinalPrice)
}

// LogisticsCost is the weight-based shipping cost plus the electronics
// surcharge, rounded to cents.
//
// Version 2 bases the surcharge on the taxed/discounted sourcing cost,
// version 1 on the raw sourcing cost.
func LogisticsCost(items []entities.ProductItem, pricePerKg float64, version int) float64 {
	weightCost := TotalWeightKg(items) * numeric.SafeNumber(pricePerKg)
	surcharge := 0.0
	for _, it := range items {
		if !it.IsElectronics {
			continue
		}
		base := numeric.SafeNumber(it.OriginalPrice)
		if version >= entities.FormulaVersionCurrent {
			base -= numeric.SafeNumber(it.Taxes) + numeric.SafeNumber(it.Discounts)
		}
		surcharge += base * float64(quantity(it)) * ElectronicsSurchargeRate
	}
	return Round2(weightCost + surcharge)
}

// ItemGain is the profit of one line across its full quantity.
//
// Version 2: (finalPrice + commission - (originalPrice - taxes)) * quantity.
// Version 1: ((finalPrice - originalPrice) + commission) * quantity.
func ItemGain(it entities.ProductItem, version int) float64 {
	final := FinalPrice(it, version)
	orig := numeric.SafeNumber(it.OriginalPrice)
	comm := numeric.SafeNumber(it.Commission)
	var unit float64
	if version >= entities.FormulaVersionCurrent {
		unit = final + comm - (orig - numeric.SafeNumber(it.Taxes))
	} else {
		unit = (final - orig) + comm
	}
	return unit * float64(quantity(it))
}

// TheoreticalProfit is the invoice profit assuming full collection.
func TheoreticalProfit(inv entities.Invoice, version int) float64 {
	total := 0.0
	for _, it := range inv.Items {
		total += ItemGain(it, version)
	}
	return Round2(total)
}

// Recompute fills every derived invoice field from its items and the
// effective settings. It is called on every write and on every read view;
// whatever derived values were persisted are discarded.
func Recompute(inv *entities.Invoice, s entities.Settings) {
	version := s.Version()
	pricePerKg := numeric.SafeNumber(inv.PricePerKg)
	if pricePerKg <= 0 {
		pricePerKg = numeric.SafeNumber(s.PricePerKg)
	}
	if numeric.SafeNumber(inv.ExchangeRate) <= 0 {
		inv.ExchangeRate = numeric.SafeNumber(s.ExchangeRate)
	}

	var cost, sale, commissions float64
	for i := range inv.Items {
		it := &inv.Items[i]
		it.Quantity = quantity(*it)
		if it.WeightUnit != entities.WeightUnitLb {
			it.WeightUnit = entities.WeightUnitKg
		}
		it.FinalPrice = FinalPrice(*it, version)
		qty := float64(it.Quantity)
		cost += numeric.SafeNumber(it.OriginalPrice) * qty
		sale += it.FinalPrice * qty
		commissions += numeric.SafeNumber(it.Commission) * qty
	}

	inv.LogisticsCost = LogisticsCost(inv.Items, pricePerKg, version)
	inv.TotalProductCost = Round2(cost)
	inv.TotalProductSale = Round2(sale)
	inv.TotalCommissions = Round2(commissions)
	inv.GrandTotalUSD = Round2(inv.TotalProductSale + inv.LogisticsCost + inv.TotalCommissions)
	inv.AmountPaid = numeric.SafeNumber(inv.AmountPaid)
	if inv.Status == "" {
		inv.Status = entities.InvoiceStatusDraft
	}
}

// RemainingBalance is the uncollected portion of an invoice, floored at 0
// for overpaid invoices.
func RemainingBalance(inv entities.Invoice) float64 {
	remaining := numeric.SafeNumber(inv.GrandTotalUSD) - numeric.SafeNumber(inv.AmountPaid)
	if remaining < 0 {
		return 0
	}
	return Round2(remaining)
}

func quantity(it entities.ProductItem) int {
	q := it.Quantity
	if q < 1 {
		return 1
	}
	return q
}
