package entity

// HealthTier is the tri-state stock health of a product.
type HealthTier string

const (
	HealthHealthy  HealthTier = "healthy"
	HealthLow      HealthTier = "low"
	HealthCritical HealthTier = "critical"
)

// InventoryStatus descreve o estoque calculado de uma categoria.
// OnHand pode ser negativo quando o consumo supera as compras registradas.
type InventoryStatus struct {
	Category       Category   `json:"category"`
	Unit           string     `json:"unit"`
	Purchased      float64    `json:"purchased"`
	Used           float64    `json:"used"`
	OnHand         float64    `json:"on_hand"`
	UsageDays      int        `json:"usage_days"`
	AvgDailyUse    float64    `json:"avg_daily_use"`
	AvgDailyUseRaw float64    `json:"avg_daily_use_raw"`
	DaysSupply     int        `json:"days_supply"`
	Status         HealthTier `json:"status"`
}
