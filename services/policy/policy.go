package policy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asimmohammad/corptravel/models"
)

type ruleKind int

const (
	kindNumeric ruleKind = iota
	kindEquals
	kindMembership
	kindNever // numeric rule whose operand failed to parse; always false
)

type compiledRule struct {
	key     string
	op      string
	kind    ruleKind
	num     float64
	str     string
	members map[string]struct{}
}

// RuleSet is a policy's rules resolved once into tagged comparisons, so that
// evaluation never re-parses the string-encoded operands.
type RuleSet struct {
	rules []compiledRule
}

// Compile resolves each rule into a tagged comparison. A numeric rule whose
// value does not parse compiles to an always-false rule: malformed policies
// fail closed rather than silently admitting offers.
func Compile(rules []models.PolicyRule) RuleSet {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr := compiledRule{key: r.Key, op: r.Op}
		switch r.Op {
		case models.OpLTE, models.OpLT, models.OpGTE, models.OpGT:
			n, err := strconv.ParseFloat(strings.TrimSpace(r.Value), 64)
			if err != nil {
				cr.kind = kindNever
			} else {
				cr.kind = kindNumeric
				cr.num = n
			}
		case models.OpEQ:
			cr.kind = kindEquals
			cr.str = r.Value
		case models.OpIn:
			cr.kind = kindMembership
			cr.members = make(map[string]struct{})
			for _, part := range strings.Split(r.Value, ",") {
				part = strings.TrimSpace(part)
				if part != "" {
					cr.members[part] = struct{}{}
				}
			}
		default:
			cr.kind = kindNever
		}
		compiled = append(compiled, cr)
	}
	return RuleSet{rules: compiled}
}

// Len reports the number of compiled rules.
func (rs RuleSet) Len() int {
	return len(rs.rules)
}

// Classify evaluates every rule with AND semantics against the given
// attributes. An offer is in policy only if all rules hold; a rule whose
// referenced attribute is absent, or whose attribute value fails to parse for
// a numeric comparison, is not satisfied.
func (rs RuleSet) Classify(attrs map[string]string) models.PolicyStatus {
	for _, r := range rs.rules {
		if !r.evaluate(attrs) {
			return models.PolicyOut
		}
	}
	return models.PolicyIn
}

func (r compiledRule) evaluate(attrs map[string]string) bool {
	val, ok := attrs[r.key]
	if !ok {
		return false
	}
	switch r.kind {
	case kindNumeric:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return false
		}
		switch r.op {
		case models.OpLTE:
			return n <= r.num
		case models.OpLT:
			return n < r.num
		case models.OpGTE:
			return n >= r.num
		case models.OpGT:
			return n > r.num
		}
		return false
	case kindEquals:
		return val == r.str
	case kindMembership:
		_, member := r.members[val]
		return member
	default:
		return false
	}
}

// OfferAttributes flattens an offer into the dotted-key attribute map rules
// are written against. Price is exposed under the mode-specific rate key as
// well as the generic "price" key; detail entries are carried through as-is.
func OfferAttributes(o models.Offer) map[string]string {
	price := strconv.FormatFloat(o.Price, 'f', -1, 64)
	attrs := map[string]string{
		"price":    price,
		"currency": o.Currency,
		"mode":     string(o.Mode),
	}
	switch o.Mode {
	case models.ModeFlights:
		attrs["flight.max_fare"] = price
	case models.ModeHotels:
		attrs["hotel.max_nightly_rate"] = price
	case models.ModeCars:
		attrs["car.max_daily_rate"] = price
	}
	for k, v := range o.Details {
		attrs[k] = fmt.Sprint(v)
	}
	return attrs
}

// ClassifyOffer classifies a single offer against a compiled rule set.
func ClassifyOffer(o models.Offer, rs RuleSet) models.PolicyStatus {
	return rs.Classify(OfferAttributes(o))
}
