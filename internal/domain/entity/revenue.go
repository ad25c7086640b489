package entity

import "time"

// Revenue é o cabeçalho de um pedido (uma saída de barco / reserva).
type Revenue struct {
	ID           string    `json:"revenue_id"`
	Date         time.Time `json:"revenue_date"`
	ClientName   string    `json:"client_name"`
	PaxCount     int       `json:"pax_count"`
	TotalRevenue float64   `json:"total_revenue"`
}

// RevenueLine is one menu item of an order.
type RevenueLine struct {
	ID        string  `json:"line_id"`
	RevenueID string  `json:"revenue_id"`
	MenuItem  string  `json:"menu_item"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}
