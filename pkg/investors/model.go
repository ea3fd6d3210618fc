package investors

// Investor is one catalog record describing an investor's preferences.
// Records are loaded once at startup and read-only afterwards.
type Investor struct {
	ID              int64    `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Industries      []string `json:"industries" yaml:"industries"`
	Stages          []string `json:"stages" yaml:"stages"`
	RiskTolerance   string   `json:"risk_tolerance" yaml:"risk_tolerance"`
	InvestmentRange [2]int64 `json:"investment_range" yaml:"investment_range"`
	Description     string   `json:"description" yaml:"description"`
	Contact         string   `json:"contact" yaml:"contact"`
	Location        string   `json:"location" yaml:"location"`
}

// Option is one entry of a static enumeration (industries, funding stages).
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Stats aggregates the catalog for the stats endpoint.
type Stats struct {
	TotalInvestors            int            `json:"total_investors"`
	IndustriesCovered         int            `json:"industries_covered"`
	AverageMinInvestment      int64          `json:"average_min_investment"`
	AverageMaxInvestment      int64          `json:"average_max_investment"`
	RiskToleranceDistribution map[string]int `json:"risk_tolerance_distribution"`
}
