package models

// SpendReport summarizes org travel spend for a month.
type SpendReport struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
	Month    string  `json:"month"`
}

// ComplianceReport summarizes the in-policy vs out-of-policy booking split.
type ComplianceReport struct {
	InPolicyRate float64 `json:"inPolicyRate"`
	OOPRate      float64 `json:"oopRate"`
}
