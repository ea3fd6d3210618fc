package investors

import (
	"context"
	"errors"
	"fmt"

	"investormatch/pkg/sendemail"
)

var ErrInvestorNotFound = errors.New("investor not found")

type InvestorService interface {
	ListInvestors(ctx context.Context) []Investor
	GetInvestorByID(ctx context.Context, id int64) (Investor, error)
	Stats(ctx context.Context) Stats
	Industries() []Option
	FundingStages() []Option
	ContactInvestor(ctx context.Context, id int64, req ContactRequest) error
}

// ContactRequest is a founder's introduction forwarded to an investor.
type ContactRequest struct {
	FounderName  string
	FounderEmail string
	CompanyName  string
	Message      string
}

type investorService struct {
	catalog *Catalog
	email   sendemail.EmailService
}

func NewInvestorService(catalog *Catalog, email sendemail.EmailService) InvestorService {
	return &investorService{catalog: catalog, email: email}
}

func (s *investorService) ListInvestors(ctx context.Context) []Investor {
	return s.catalog.All()
}

func (s *investorService) GetInvestorByID(ctx context.Context, id int64) (Investor, error) {
	for _, inv := range s.catalog.All() {
		if inv.ID == id {
			return inv, nil
		}
	}
	return Investor{}, ErrInvestorNotFound
}

func (s *investorService) Stats(ctx context.Context) Stats {
	all := s.catalog.All()

	stats := Stats{
		TotalInvestors:            len(all),
		RiskToleranceDistribution: map[string]int{"high": 0, "medium": 0, "low": 0},
	}
	if len(all) == 0 {
		return stats
	}

	industries := make(map[string]struct{})
	var sumMin, sumMax int64
	for _, inv := range all {
		for _, industry := range inv.Industries {
			industries[industry] = struct{}{}
		}
		sumMin += inv.InvestmentRange[0]
		sumMax += inv.InvestmentRange[1]
		stats.RiskToleranceDistribution[inv.RiskTolerance]++
	}

	stats.IndustriesCovered = len(industries)
	stats.AverageMinInvestment = sumMin / int64(len(all))
	stats.AverageMaxInvestment = sumMax / int64(len(all))
	return stats
}

func (s *investorService) Industries() []Option {
	return []Option{
		{Value: "fintech", Label: "FinTech"},
		{Value: "healthtech", Label: "HealthTech"},
		{Value: "edtech", Label: "EdTech"},
		{Value: "saas", Label: "SaaS"},
		{Value: "ecommerce", Label: "E-commerce"},
		{Value: "ai", Label: "AI/ML"},
		{Value: "blockchain", Label: "Blockchain"},
		{Value: "iot", Label: "IoT"},
	}
}

func (s *investorService) FundingStages() []Option {
	return []Option{
		{Value: "pre-seed", Label: "Pre-Seed"},
		{Value: "seed", Label: "Seed"},
		{Value: "series-a", Label: "Series A"},
		{Value: "series-b", Label: "Series B"},
	}
}

func (s *investorService) ContactInvestor(ctx context.Context, id int64, req ContactRequest) error {
	inv, err := s.GetInvestorByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.Contact == "" {
		return fmt.Errorf("investor %d has no contact address", id)
	}

	subject := fmt.Sprintf("Introduction request from %s", req.FounderName)
	plain := fmt.Sprintf("%s (%s)", req.FounderName, req.FounderEmail)
	if req.CompanyName != "" {
		plain += " of " + req.CompanyName
	}
	plain += " would like to get in touch.\n\n" + req.Message
	html := fmt.Sprintf("<p>%s</p>", plain)

	return s.email.SendEmail(subject, inv.Contact, plain, html)
}
