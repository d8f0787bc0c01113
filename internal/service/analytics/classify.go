package analytics

import (
	"math"

	"github.com/heartmarshall/saas-inventory-backend/internal/domain"
)

// Efficiency ratio bounds: cost per user divided by the company average.
const (
	excellentRatio = 0.5
	goodRatio      = 0.8
	averageRatio   = 1.2
)

// Potential actions attached to warning levels.
const (
	actionHigh   = "Consider canceling or downgrading"
	actionMedium = "Review usage and consider optimization"
	actionLow    = "Monitor usage trends"
)

// thresholds are the cost-per-user bounds of the warning levels.
type thresholds struct {
	high   float64
	medium float64
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// ratio divides a by b, yielding 0 when b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// costPerUser is cost/users, or the whole cost when nobody uses the tool.
func costPerUser(cost float64, users int) float64 {
	if users <= 0 {
		return cost
	}
	return cost / float64(users)
}

// rateEfficiency labels a cost per user against the company average.
// Unused spend is always low. A zero average rates every used tool excellent.
func rateEfficiency(perUser float64, users int, companyAvg float64) domain.EfficiencyRating {
	if users <= 0 {
		return domain.EfficiencyLow
	}
	if companyAvg <= 0 {
		return domain.EfficiencyExcellent
	}

	r := perUser / companyAvg
	switch {
	case r < excellentRatio:
		return domain.EfficiencyExcellent
	case r < goodRatio:
		return domain.EfficiencyGood
	case r <= averageRatio:
		return domain.EfficiencyAverage
	default:
		return domain.EfficiencyLow
	}
}

// classifyWarning returns the warning level of an underused tool and the
// action suggested for it.
func classifyWarning(perUser float64, users int, th thresholds) (domain.WarningLevel, string) {
	switch {
	case users <= 0, perUser > th.high:
		return domain.WarningLevelHigh, actionHigh
	case perUser >= th.medium:
		return domain.WarningLevelMedium, actionMedium
	default:
		return domain.WarningLevelLow, actionLow
	}
}

// companyAvgCostPerUser is SUM(cost)/SUM(users) over tools that have users.
func companyAvgCostPerUser(rows []domain.ToolUsage) float64 {
	var cost float64
	var users int
	for _, r := range rows {
		if r.ActiveUsersCount > 0 {
			cost += r.MonthlyCost
			users += r.ActiveUsersCount
		}
	}
	return ratio(cost, float64(users))
}
