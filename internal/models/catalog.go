package models

// NetworkItem is a read-only projection of a billing operator. Not persisted.
type NetworkItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlanMeta carries the display fields of a telco data product. Fee is a
// string in major units as the provider returns it.
type PlanMeta struct {
	Fee          string `json:"fee"`
	DataValue    string `json:"data_value"`
	DataExpiry   string `json:"data_expiry"`
	CurrencyCode string `json:"currency,omitempty"`
}

// DataPlan is a read-only projection of a billing product. Not persisted.
type DataPlan struct {
	ID      string   `json:"id"`
	FeeType string   `json:"fee_type"`
	Meta    PlanMeta `json:"meta"`
}
