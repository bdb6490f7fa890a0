package dto

import "fmt"

// Plan is the subscription tier controlling quota and signal label.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanBasic    Plan = "basic"
	PlanPremium  Plan = "premium"
	PlanPlatinum Plan = "platinum"
)

const (
	SignalTypeSilver   = "Silver"
	SignalTypeGold     = "Gold"
	SignalTypePremium  = "Premium"
	SignalTypePlatinum = "Platinum"
)

const (
	DirectionBuy  = "BUY"
	DirectionSell = "SELL"
)

const ResultPending = "PENDING"

// UnlimitedSignals is the sentinel limit for plans without a real quota.
const UnlimitedSignals = 999999

// DefaultSignalsLimit is the quota a user starts with on the free plan.
const DefaultSignalsLimit = 3

var planLimits = map[Plan]int{
	PlanFree:     DefaultSignalsLimit,
	PlanBasic:    10,
	PlanPremium:  UnlimitedSignals,
	PlanPlatinum: UnlimitedSignals,
}

var planLabels = map[Plan]string{
	PlanFree:     SignalTypeSilver,
	PlanBasic:    SignalTypeGold,
	PlanPremium:  SignalTypePremium,
	PlanPlatinum: SignalTypePlatinum,
}

// ParsePlan validates a plan name against the closed set of tiers.
func ParsePlan(s string) (Plan, error) {
	p := Plan(s)
	if _, ok := planLimits[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlan, s)
	}
	return p, nil
}

// SignalsLimit returns the fixed quota for the plan.
func (p Plan) SignalsLimit() int {
	return planLimits[p]
}

// SignalLabel returns the signal type issued under the plan. Unrecognized
// plans fall back to Silver, as the original labeling did.
func SignalLabel(plan string) string {
	if label, ok := planLabels[Plan(plan)]; ok {
		return label
	}
	return SignalTypeSilver
}

// Plans lists all recognized tiers in ascending order.
func Plans() []Plan {
	return []Plan{PlanFree, PlanBasic, PlanPremium, PlanPlatinum}
}
