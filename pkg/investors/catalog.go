package investors

import (
	"context"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Source produces the ordered investor list at load time.
type Source interface {
	Load(ctx context.Context) ([]Investor, error)
}

// Catalog is the immutable, ordered list of investors the service matches
// against. Nothing mutates it after Load, so it is safe for concurrent reads.
type Catalog struct {
	investors []Investor
}

// Load builds the catalog from the given source. A source failure is not
// fatal: the service starts with an empty catalog and reports zero matches.
func Load(ctx context.Context, source Source) *Catalog {
	list, err := source.Load(ctx)
	if err != nil {
		log.Printf("investor catalog load failed, starting with empty catalog: %v", err)
		return &Catalog{}
	}
	return &Catalog{investors: list}
}

// All returns the catalog in insertion order.
func (c *Catalog) All() []Investor {
	return c.investors
}

// Len reports the number of investors in the catalog.
func (c *Catalog) Len() int {
	return len(c.investors)
}

// staticSource serves a fixed in-process list.
type staticSource struct {
	list []Investor
}

func (s staticSource) Load(ctx context.Context) ([]Investor, error) {
	return s.list, nil
}

// NewStaticSource wraps a fixed list as a Source.
func NewStaticSource(list []Investor) Source {
	return staticSource{list: list}
}

// NewDefaultSource serves the built-in investor list.
func NewDefaultSource() Source {
	return staticSource{list: defaultInvestors()}
}

// fileSource reads the catalog from a YAML file.
type fileSource struct {
	path string
}

// NewFileSource reads investors from a YAML file at path.
func NewFileSource(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Load(ctx context.Context) ([]Investor, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read investors file: %w", err)
	}

	var doc struct {
		Investors []Investor `yaml:"investors"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse investors file %s: %w", s.path, err)
	}

	list := make([]Investor, 0, len(doc.Investors))
	for _, inv := range doc.Investors {
		if inv.Name == "" {
			continue
		}
		list = append(list, inv)
	}
	return list, nil
}

// defaultInvestors is the baked-in catalog used when no external source is
// configured.
func defaultInvestors() []Investor {
	return []Investor{
		{
			ID:              1,
			Name:            "TechVentures Capital",
			Industries:      []string{"fintech", "saas", "ai"},
			Stages:          []string{"seed", "series-a"},
			RiskTolerance:   "high",
			InvestmentRange: [2]int64{100000, 5000000},
			Description:     "Early-stage tech investor focused on disruptive technologies",
			Contact:         "partners@techventures.com",
			Location:        "San Francisco, CA",
		},
		{
			ID:              2,
			Name:            "HealthFirst Partners",
			Industries:      []string{"healthtech", "ai"},
			Stages:          []string{"pre-seed", "seed"},
			RiskTolerance:   "medium",
			InvestmentRange: [2]int64{50000, 2000000},
			Description:     "Specialized healthcare and medical technology investor",
			Contact:         "team@healthfirst.vc",
			Location:        "Boston, MA",
		},
		{
			ID:              3,
			Name:            "Growth Equity Solutions",
			Industries:      []string{"saas", "ecommerce", "fintech"},
			Stages:          []string{"series-a", "series-b"},
			RiskTolerance:   "low",
			InvestmentRange: [2]int64{1000000, 20000000},
			Description:     "Late-stage growth investor with proven market traction focus",
			Contact:         "investments@growthequity.com",
			Location:        "New York, NY",
		},
		{
			ID:              4,
			Name:            "Innovation Labs Fund",
			Industries:      []string{"ai", "blockchain", "iot"},
			Stages:          []string{"pre-seed", "seed"},
			RiskTolerance:   "high",
			InvestmentRange: [2]int64{25000, 1000000},
			Description:     "Deep tech investor focused on emerging technologies",
			Contact:         "hello@innovationlabs.fund",
			Location:        "Austin, TX",
		},
		{
			ID:              5,
			Name:            "Education Forward VC",
			Industries:      []string{"edtech", "saas"},
			Stages:          []string{"seed", "series-a"},
			RiskTolerance:   "medium",
			InvestmentRange: [2]int64{250000, 3000000},
			Description:     "Dedicated to transforming education through technology",
			Contact:         "info@educationforward.vc",
			Location:        "Seattle, WA",
		},
		{
			ID:              6,
			Name:            "Commerce Accelerator",
			Industries:      []string{"ecommerce", "saas", "fintech"},
			Stages:          []string{"pre-seed", "seed", "series-a"},
			RiskTolerance:   "high",
			InvestmentRange: [2]int64{100000, 8000000},
			Description:     "E-commerce and retail technology specialist",
			Contact:         "deals@commerceaccel.com",
			Location:        "Los Angeles, CA",
		},
	}
}
