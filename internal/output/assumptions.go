package output

import "github.com/apeftrust/investment-calculator/internal/domain"

// assumptionsFor returns the comparison's assumptions, or the policy lines
// shared by every projection when none were recorded.
func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return (&domain.Configuration{}).GenerateAssumptions()
}
