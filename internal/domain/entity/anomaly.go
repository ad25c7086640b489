package entity

// Severity tiers of an anomaly alert; lower Rank means more important.
type Severity string

const (
	SeverityRed    Severity = "red"
	SeverityYellow Severity = "yellow"
	SeverityBlue   Severity = "blue"
)

// Rank orders severities red-first.
func (s Severity) Rank() int {
	switch s {
	case SeverityRed:
		return 0
	case SeverityYellow:
		return 1
	default:
		return 2
	}
}

// AnomalyKind distinguishes the detector that raised an alert.
type AnomalyKind string

const (
	AnomalyPriceSpike  AnomalyKind = "price_spike"
	AnomalyVolumeSpike AnomalyKind = "volume_spike"
)

// AnomalyAlert descreve um desvio do gasto de um fornecedor em relação à sua própria base histórica.
type AnomalyAlert struct {
	ID            string      `json:"id"`
	Kind          AnomalyKind `json:"kind"`
	Severity      Severity    `json:"severity"`
	Supplier      string      `json:"supplier"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Baseline      float64     `json:"baseline"`
	Current       float64     `json:"current"`
	PercentChange float64     `json:"percent_change"`
	Impact        *float64    `json:"impact,omitempty"`
}
