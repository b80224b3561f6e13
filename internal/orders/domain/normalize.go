package domain

import (
	"fmt"
	"strconv"
	"strings"

	shareddomain "wooreport/internal/shared/domain"
)

// OrderResult représente le résultat de normalisation d'une commande
// Soit une ligne de rapport, soit une raison d'exclusion: jamais les deux
type OrderResult struct {
	OrderID int64
	Row     *ReportRow
	Err     error
}

// NormalizeOrders normalise chaque commande dans l'ordre de la source
// Un échec sur une commande produit un résultat en erreur, jamais un arrêt
func NormalizeOrders(orders []RawOrder) []OrderResult {
	results := make([]OrderResult, 0, len(orders))
	for _, order := range orders {
		row, err := NormalizeOrder(order)
		results = append(results, OrderResult{
			OrderID: order.ID,
			Row:     row,
			Err:     err,
		})
	}
	return results
}

// PartitionResults sépare les lignes de rapport des commandes exclues
func PartitionResults(results []OrderResult) (rows []ReportRow, skipped []OrderResult) {
	for _, res := range results {
		if res.Err != nil {
			skipped = append(skipped, res)
			continue
		}
		rows = append(rows, *res.Row)
	}
	return rows, skipped
}

// NormalizeOrder dérive une ligne de rapport depuis une commande brute
func NormalizeOrder(o RawOrder) (*ReportRow, error) {
	createdAt, err := shareddomain.ParseWooTime(o.DateCreated)
	if err != nil {
		return nil, err
	}

	discountTotal, err := parseAmount("discount_total", o.DiscountTotal)
	if err != nil {
		return nil, err
	}
	grossTotal, err := parseAmount("total", o.Total)
	if err != nil {
		return nil, err
	}

	items, preTaxTotal, vatTotal, err := effectiveItems(o)
	if err != nil {
		return nil, err
	}

	refundTotal, err := sumRefundTotals(o)
	if err != nil {
		return nil, err
	}

	itemsCostSum := 0.0
	for _, li := range o.LineItems {
		total, err := parseAmount("line_items.total", li.Total)
		if err != nil {
			return nil, err
		}
		itemsCostSum += total
	}

	shippingMethod, shippingTotal, err := firstShippingLine(o)
	if err != nil {
		return nil, err
	}

	names, quantities, unitPrices := parallelItemFields(items)

	return &ReportRow{
		OrderNumber:    o.OrderNumber(),
		OrderDate:      shareddomain.FormatSlashTime(createdAt),
		Buyer:          BuyerFromOrder(o),
		Address:        strings.TrimSpace(o.Billing.Address1 + " " + o.Billing.Address2),
		City:           o.Billing.City,
		Postcode:       o.Billing.Postcode,
		Phone:          o.Billing.Phone,
		PaymentMethod:  o.PaymentMethodTitle,
		DiscountTotal:  discountTotal,
		GrossTotal:     grossTotal,
		PreTaxTotal:    preTaxTotal,
		VATTotal:       vatTotal,
		ShippingMethod: shippingMethod,
		ShippingTotal:  shippingTotal,
		RefundTotal:    refundTotal,
		NetTotal:       grossTotal - refundTotal,
		ItemNames:      names,
		ItemQuantities: quantities,
		ItemUnitPrices: unitPrices,
		ItemsCostSum:   itemsCostSum,
		Items:          items,
	}, nil
}

// effectiveItems calcule les articles survivants et les totaux de taxe
// Quantité effective = quantité commandée moins quantités remboursées,
// appariées sur (product_id, variation_id), variation absente valant zéro
// Un article à quantité effective <= 0 disparaît entièrement des listes
func effectiveItems(o RawOrder) (items []ReportItem, preTaxTotal, vatTotal float64, err error) {
	for _, li := range o.LineItems {
		refundedQty := 0
		for _, refund := range o.Refunds {
			for _, rli := range refund.LineItems {
				if rli.ProductID == li.ProductID && rli.VariationID == li.VariationID {
					refundedQty += rli.Qty
				}
			}
		}

		effectiveQty := li.Quantity - refundedQty
		if effectiveQty <= 0 {
			continue
		}

		itemTotal, err := parseAmount("line_items.total", li.Total)
		if err != nil {
			return nil, 0, 0, err
		}

		var split shareddomain.TaxSplit
		if itemTotal > 0 {
			split = shareddomain.SplitInclusive(itemTotal / float64(effectiveQty))
		}

		preTaxTotal += split.PreTax() * float64(effectiveQty)
		vatTotal += split.VAT() * float64(effectiveQty)

		items = append(items, ReportItem{
			Name:       li.Name,
			Quantity:   effectiveQty,
			PreTaxUnit: split.PreTax(),
			VATUnit:    split.VAT(),
		})
	}
	return items, preTaxTotal, vatTotal, nil
}

// sumRefundTotals additionne les totaux déclarés des remboursements
func sumRefundTotals(o RawOrder) (float64, error) {
	total := 0.0
	for _, refund := range o.Refunds {
		amount, err := parseAmount("refunds.total", refund.Total)
		if err != nil {
			return 0, err
		}
		total += amount
	}
	return total, nil
}

// firstShippingLine retourne la première ligne de livraison, si présente
func firstShippingLine(o RawOrder) (method string, total float64, err error) {
	if len(o.ShippingLines) == 0 {
		return "", 0, nil
	}
	line := o.ShippingLines[0]
	total, err = parseAmount("shipping_lines.total", line.Total)
	if err != nil {
		return "", 0, err
	}
	return line.MethodTitle, total, nil
}

// parallelItemFields construit les trois champs multi-lignes parallèles
// Invariant: même nombre de lignes dans les trois champs, même ordre
func parallelItemFields(items []ReportItem) (names, quantities, unitPrices string) {
	nameLines := make([]string, 0, len(items))
	qtyLines := make([]string, 0, len(items))
	priceLines := make([]string, 0, len(items))

	for _, item := range items {
		nameLines = append(nameLines, item.Name)
		qtyLines = append(qtyLines, strconv.Itoa(item.Quantity))
		priceLines = append(priceLines, fmt.Sprintf("%.2f / %.2f", item.PreTaxUnit, item.VATUnit))
	}

	return strings.Join(nameLines, "\n"),
		strings.Join(qtyLines, "\n"),
		strings.Join(priceLines, "\n")
}
