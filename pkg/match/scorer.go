package match

import (
	"investormatch/pkg/investors"
)

// Result is one scored founder/investor pairing.
type Result struct {
	Score        int                `json:"score"`
	MatchReasons []string           `json:"match_reasons"`
	Investor     investors.Investor `json:"investor"`
}

// Score applies the fixed additive rule set to one investor:
//
//	+3 industry is in the investor's industries
//	+2 funding stage is in the investor's stages
//	+1 risk tolerance is an exact match
//	+1 requested amount falls inside the investment range
//
// Reasons are appended in rule order; that order is part of the API
// contract. Pure function, no I/O.
func Score(profile FounderProfile, investor investors.Investor) Result {
	score := 0
	reasons := []string{}

	if containsString(investor.Industries, profile.Industry()) {
		score += 3
		reasons = append(reasons, "Industry alignment")
	}

	if containsString(investor.Stages, profile.FundingStage()) {
		score += 2
		reasons = append(reasons, "Funding stage fit")
	}

	if profile.RiskTolerance() == investor.RiskTolerance {
		score += 1
		reasons = append(reasons, "Risk tolerance match")
	}

	amount := parseAmountOrZero(profile.InvestmentAmount())
	if investor.InvestmentRange[0] <= amount && amount <= investor.InvestmentRange[1] {
		score += 1
		reasons = append(reasons, "Investment range fit")
	}

	return Result{Score: score, MatchReasons: reasons, Investor: investor}
}

func containsString(set []string, value string) bool {
	if value == "" {
		return false
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
