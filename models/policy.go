package models

// Rule operators. Numeric operators compare parsed numbers, "==" compares
// strings exactly, and "in" checks membership in a comma-separated allow-list.
const (
	OpLTE = "<="
	OpLT  = "<"
	OpGTE = ">="
	OpGT  = ">"
	OpEQ  = "=="
	OpIn  = "in"
)

// PolicyRule constrains a single offer attribute, named by a dotted key such
// as "hotel.max_nightly_rate".
type PolicyRule struct {
	Key   string `json:"key"`
	Op    string `json:"op"`
	Value string `json:"value"`
}

// Policy lifecycle states. A policy is created as a draft and becomes
// immutable once published.
const (
	PolicyDraft     = "draft"
	PolicyPublished = "published"
)

// Policy is an ordered set of rules constraining which offers are compliant.
type Policy struct {
	ID     int          `json:"id"`
	Name   string       `json:"name"`
	Status string       `json:"status"`
	Rules  []PolicyRule `json:"rules"`
}

// PolicyCreate is the request body for creating a draft policy.
type PolicyCreate struct {
	Name  string       `json:"name"`
	Rules []PolicyRule `json:"rules"`
}
