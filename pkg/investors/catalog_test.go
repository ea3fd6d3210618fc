package investors

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Load(ctx context.Context) ([]Investor, error) {
	return nil, errors.New("source unreachable")
}

func TestLoad_DefaultSource(t *testing.T) {
	catalog := Load(context.Background(), NewDefaultSource())

	require.Equal(t, 6, catalog.Len())
	require.Equal(t, "TechVentures Capital", catalog.All()[0].Name)
	for _, inv := range catalog.All() {
		require.LessOrEqual(t, inv.InvestmentRange[0], inv.InvestmentRange[1])
	}
}

func TestLoad_SourceFailureYieldsEmptyCatalog(t *testing.T) {
	catalog := Load(context.Background(), failingSource{})

	require.Equal(t, 0, catalog.Len())
	require.Empty(t, catalog.All())
}

func TestFileSource_LoadsYAMLAndSkipsNamelessRows(t *testing.T) {
	content := `
investors:
  - id: 1
    name: Alpha Fund
    industries: [fintech, ai]
    stages: [seed]
    risk_tolerance: high
    investment_range: [100000, 1000000]
    contact: alpha@example.com
  - id: 2
    industries: [saas]
  - id: 3
    name: Beta Capital
    industries: [saas]
    stages: [series-a]
    risk_tolerance: low
    investment_range: [500000, 2000000]
`
	path := filepath.Join(t.TempDir(), "investors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	list, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Alpha Fund", list[0].Name)
	require.Equal(t, "Beta Capital", list[1].Name)
	require.Equal(t, []string{"fintech", "ai"}, list[0].Industries)
	require.Equal(t, [2]int64{100000, 1000000}, list[0].InvestmentRange)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource("/nonexistent/investors.yaml").Load(context.Background())
	require.Error(t, err)
}

func TestInvestorFromRow(t *testing.T) {
	inv, ok := investorFromRow(7, []interface{}{
		" Alpha Fund ", "fintech, saas, AI", "seed, series-a", "High", "100,000", "5000000",
		"Early-stage fund", "alpha@example.com", "Austin, TX",
	})

	require.True(t, ok)
	require.Equal(t, int64(7), inv.ID)
	require.Equal(t, "Alpha Fund", inv.Name)
	require.Equal(t, []string{"fintech", "saas", "ai"}, inv.Industries)
	require.Equal(t, []string{"seed", "series-a"}, inv.Stages)
	require.Equal(t, "high", inv.RiskTolerance)
	require.Equal(t, [2]int64{100000, 5000000}, inv.InvestmentRange)
	require.Equal(t, "alpha@example.com", inv.Contact)
}

func TestInvestorFromRow_NamelessRowRejected(t *testing.T) {
	_, ok := investorFromRow(1, []interface{}{"  ", "fintech", "seed"})
	require.False(t, ok)
}

func TestInvestorFromRow_SwappedRangeIsNormalized(t *testing.T) {
	inv, ok := investorFromRow(1, []interface{}{"Fund", "", "", "", "5000000", "100000"})
	require.True(t, ok)
	require.Equal(t, [2]int64{100000, 5000000}, inv.InvestmentRange)
}

func TestInvestorFromRow_ShortRowFallsBackToZeroValues(t *testing.T) {
	inv, ok := investorFromRow(1, []interface{}{"Fund"})
	require.True(t, ok)
	require.Empty(t, inv.Industries)
	require.Equal(t, [2]int64{0, 0}, inv.InvestmentRange)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, splitList("a, b , C"))
	require.Empty(t, splitList(""))
	require.Empty(t, splitList(" , ,"))
}
