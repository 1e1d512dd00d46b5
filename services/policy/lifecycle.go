package policy

import (
	"fmt"

	"github.com/asimmohammad/corptravel/models"
)

// LifecycleError reports an invalid policy state transition.
type LifecycleError struct {
	Code    string
	Message string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrPublished is returned when a mutation targets a published policy.
var ErrPublished = &LifecycleError{
	Code:    "policyPublished",
	Message: "published policies are immutable; create a new policy to change rules",
}

// AddRule appends a rule to a draft policy.
func AddRule(p *models.Policy, r models.PolicyRule) error {
	if p.Status == models.PolicyPublished {
		return ErrPublished
	}
	p.Rules = append(p.Rules, r)
	return nil
}

// ReplaceRules swaps out a draft policy's rule list wholesale.
func ReplaceRules(p *models.Policy, rules []models.PolicyRule) error {
	if p.Status == models.PolicyPublished {
		return ErrPublished
	}
	p.Rules = append([]models.PolicyRule(nil), rules...)
	return nil
}

// Publish transitions a draft policy to published. The transition is one-way;
// publishing an already-published policy is a no-op.
func Publish(p *models.Policy) {
	p.Status = models.PolicyPublished
}
