package entity

import "time"

// ExpenseRecord representa uma linha de despesa normalizada vinda do armazenamento.
// TotalAmount = NetAmount + VATAmount é garantido por quem produz o registro.
type ExpenseRecord struct {
	ID            string    `json:"expense_id"`
	Date          time.Time `json:"expense_date"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Quantity      *float64  `json:"quantity,omitempty"`
	UnitOfMeasure string    `json:"unit_of_measure,omitempty"`
	NetAmount     float64   `json:"net_amount"`
	VATAmount     float64   `json:"vat_amount"`
	TotalAmount   float64   `json:"total_amount"`
	SupplierKey   int       `json:"supplier_key"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	InvoiceNumber string    `json:"invoice_number,omitempty"`
}

// Qty returns the recorded quantity, or 0 when none was captured.
func (e ExpenseRecord) Qty() float64 {
	if e.Quantity == nil {
		return 0
	}
	return *e.Quantity
}

// Supplier is a row of the supplier master table.
type Supplier struct {
	Key          int    `json:"supplier_key"`
	StandardName string `json:"standard_name"`
	Category     string `json:"category"`
}

// ClassifiedExpense é uma despesa associada a uma categoria rastreada.
// Weighted indica se o registro passou no filtro de quantidade/unidade.
type ClassifiedExpense struct {
	ExpenseID     string    `json:"expense_id"`
	Date          time.Time `json:"expense_date"`
	Description   string    `json:"description"`
	SupplierName  string    `json:"supplier_name"`
	Quantity      *float64  `json:"quantity,omitempty"`
	UnitOfMeasure string    `json:"unit_of_measure,omitempty"`
	NetAmount     float64   `json:"net_amount"`
	RawCategory   string    `json:"category"`
	Product       Category  `json:"product"`
	Weighted      bool      `json:"weighted"`
}
