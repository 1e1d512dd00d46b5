package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/services/policy"
	"github.com/asimmohammad/corptravel/utils"
)

// ListPolicies returns all org policies, drafts included.
func (o *Org) ListPolicies(c *gin.Context) {
	o.mu.Lock()
	policies := append([]models.Policy(nil), o.policies...)
	o.mu.Unlock()
	if policies == nil {
		policies = []models.Policy{}
	}
	c.JSON(http.StatusOK, policies)
}

// CreatePolicy creates a draft policy with the given rules.
func (o *Org) CreatePolicy(c *gin.Context) {
	var req models.PolicyCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "policy name is required")
		return
	}

	o.mu.Lock()
	p := models.Policy{
		ID:     o.nextPolicyID,
		Name:   req.Name,
		Status: models.PolicyDraft,
		Rules:  append([]models.PolicyRule(nil), req.Rules...),
	}
	o.nextPolicyID++
	o.policies = append(o.policies, p)
	o.mu.Unlock()

	c.JSON(http.StatusOK, p)
}

// UpdatePolicyRules replaces a draft policy's rules. Published policies are
// immutable and respond with a conflict.
func (o *Org) UpdatePolicyRules(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid policy id", c.Param("id"))
		return
	}
	var req struct {
		Rules []models.PolicyRule `json:"rules"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.policies {
		if o.policies[i].ID != id {
			continue
		}
		if err := policy.ReplaceRules(&o.policies[i], req.Rules); err != nil {
			utils.JSONError(c, http.StatusConflict, "policy is published", err.Error())
			return
		}
		c.JSON(http.StatusOK, o.policies[i])
		return
	}
	utils.JSONError(c, http.StatusNotFound, "policy not found", "")
}

// PublishPolicy transitions a draft to published; the transition is one-way.
func (o *Org) PublishPolicy(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid policy id", c.Param("id"))
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.policies {
		if o.policies[i].ID != id {
			continue
		}
		policy.Publish(&o.policies[i])
		c.JSON(http.StatusOK, o.policies[i])
		return
	}
	utils.JSONError(c, http.StatusNotFound, "policy not found", "")
}
