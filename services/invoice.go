package services

// InvoiceInput lists the amounts that make up a final project invoice.
type InvoiceInput struct {
	InitialQuotation float64 `json:"initialQuotation"`
	SupplierBills    float64 `json:"supplierBills"`
	AdditionalOrders float64 `json:"additionalOrders"`
	Labour           float64 `json:"labour"`
	Electricity      float64 `json:"electricity"`
	Water            float64 `json:"water"`
	Transport        float64 `json:"transport"`
	ExcessRefund     float64 `json:"excessRefund"`
}

// InvoiceLine is one labelled amount on an invoice. Credits are negative.
type InvoiceLine struct {
	Label  string
	Amount float64
}

// DefaultInvoiceInput returns the starting figures for a new invoice.
func DefaultInvoiceInput() InvoiceInput {
	return InvoiceInput{
		InitialQuotation: 850000,
		SupplierBills:    920000,
		AdditionalOrders: 45000,
		Labour:           135000,
		Electricity:      25000,
		Water:            15000,
		Transport:        30000,
		ExcessRefund:     25000,
	}
}

// InvoiceFromQuotation seeds an invoice from a quotation summary and the
// quotation's utility charges.
func InvoiceFromQuotation(s QuotationSummary, fixed FixedCosts) InvoiceInput {
	return InvoiceInput{
		InitialQuotation: s.MaterialCost,
		Labour:           s.LabourCost,
		Electricity:      fixed.Electricity,
		Water:            fixed.Water,
		Transport:        fixed.Transport,
	}
}

// Lines returns the invoice amounts in display order, with the excess
// material refund as a credit.
func (in InvoiceInput) Lines() []InvoiceLine {
	return []InvoiceLine{
		{"Initial Quotation", in.InitialQuotation},
		{"Supplier Bills", in.SupplierBills},
		{"Additional Orders", in.AdditionalOrders},
		{"Labour Charges", in.Labour},
		{"Electricity", in.Electricity},
		{"Water", in.Water},
		{"Transport", in.Transport},
		{"Excess Material Refund", -in.ExcessRefund},
	}
}

// CalcInvoiceTotal sums all charges and subtracts the excess material refund.
func CalcInvoiceTotal(in InvoiceInput) float64 {
	return in.InitialQuotation +
		in.SupplierBills +
		in.AdditionalOrders +
		in.Labour +
		in.Electricity +
		in.Water +
		in.Transport -
		in.ExcessRefund
}
