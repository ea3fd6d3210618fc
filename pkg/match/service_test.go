package match

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"investormatch/pkg/investors"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	args := m.Called(ctx, pattern)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func testCatalog() *investors.Catalog {
	return investors.Load(context.Background(), investors.NewStaticSource([]investors.Investor{
		{
			ID: 1, Name: "First", Industries: []string{"fintech"}, Stages: []string{"seed"},
			RiskTolerance: "high", InvestmentRange: [2]int64{100000, 5000000},
		},
		{
			ID: 2, Name: "Second", Industries: []string{"healthtech"}, Stages: []string{"seed"},
			RiskTolerance: "medium", InvestmentRange: [2]int64{50000, 2000000},
		},
		{
			ID: 3, Name: "Third", Industries: []string{"fintech"}, Stages: []string{"series-b"},
			RiskTolerance: "low", InvestmentRange: [2]int64{1000000, 20000000},
		},
		{
			ID: 4, Name: "Fourth", Industries: []string{"blockchain"}, Stages: []string{"series-b"},
			RiskTolerance: "low", InvestmentRange: [2]int64{9000000, 20000000},
		},
		{
			ID: 5, Name: "Fifth", Industries: []string{"fintech"}, Stages: []string{"seed"},
			RiskTolerance: "high", InvestmentRange: [2]int64{100000, 5000000},
		},
		{
			ID: 6, Name: "Sixth", Industries: []string{"fintech"}, Stages: []string{"seed"},
			RiskTolerance: "high", InvestmentRange: [2]int64{100000, 5000000},
		},
	}))
}

func fintechProfile(t *testing.T) FounderProfile {
	t.Helper()
	var p FounderProfile
	err := json.Unmarshal([]byte(`{"industry":"fintech","funding_stage":"seed","risk_tolerance":"high","investment_amount":500000}`), &p)
	require.NoError(t, err)
	return p
}

func TestMatchService_ValidationPrecedesScoring(t *testing.T) {
	c := new(mockCache)
	service := NewMatchService(testCatalog(), c)

	var p FounderProfile
	require.NoError(t, json.Unmarshal([]byte(`{"industry":"fintech"}`), &p))

	_, err := service.FindMatches(context.Background(), p)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, []string{"funding_stage", "risk_tolerance", "investment_amount"}, vErr.Missing)
	require.Equal(t, "Missing required fields: funding_stage, risk_tolerance, investment_amount", vErr.Error())
	// No cache traffic before validation passes.
	c.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchService_DropsZeroScores_SortsAndTruncates(t *testing.T) {
	c := new(mockCache)
	c.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, CacheTTL).Return(nil)

	service := NewMatchService(testCatalog(), c)

	resp, err := service.FindMatches(context.Background(), fintechProfile(t))
	require.NoError(t, err)

	// Fourth (blockchain, series-b, low risk, out-of-range) scores 0 and is
	// dropped; the other five all score, so total is 5 with the top 3 kept.
	require.Equal(t, 5, resp.TotalMatches)
	require.Len(t, resp.Matches, 3)

	// First, Fifth and Sixth score 7 each; ties keep catalog order.
	require.Equal(t, int64(1), resp.Matches[0].Investor.ID)
	require.Equal(t, int64(5), resp.Matches[1].Investor.ID)
	require.Equal(t, int64(6), resp.Matches[2].Investor.ID)
	for _, m := range resp.Matches {
		require.Equal(t, 7, m.Score)
	}

	require.True(t, resp.Success)
	c.AssertExpectations(t)
}

func TestMatchService_SortsByScoreDescending(t *testing.T) {
	c := new(mockCache)
	c.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, CacheTTL).Return(nil)

	service := NewMatchService(testCatalog(), c)

	var p FounderProfile
	require.NoError(t, json.Unmarshal([]byte(`{"industry":"healthtech","funding_stage":"seed","risk_tolerance":"medium","investment_amount":100000}`), &p))

	resp, err := service.FindMatches(context.Background(), p)
	require.NoError(t, err)

	// Second scores 7; First, Fifth and Sixth score 3 (stage + range).
	require.Equal(t, 4, resp.TotalMatches)
	require.Equal(t, int64(2), resp.Matches[0].Investor.ID)
	require.Equal(t, 7, resp.Matches[0].Score)
	require.Equal(t, int64(1), resp.Matches[1].Investor.ID)
	require.Equal(t, int64(5), resp.Matches[2].Investor.ID)
}

func TestMatchService_CacheHitReturnsStoredResponse(t *testing.T) {
	p := fintechProfile(t)

	stored := MatchResponse{Success: true, TotalMatches: 42}
	payload, err := json.Marshal(stored)
	require.NoError(t, err)

	c := new(mockCache)
	c.On("Get", mock.Anything, p.CacheKey()).Return(string(payload), true, nil)

	service := NewMatchService(testCatalog(), c)

	resp, err := service.FindMatches(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, 42, resp.TotalMatches)
	// A hit must not recompute or rewrite the entry.
	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchService_CacheMissStoresWithFixedTTL(t *testing.T) {
	p := fintechProfile(t)

	c := new(mockCache)
	c.On("Get", mock.Anything, p.CacheKey()).Return("", false, nil)
	c.On("Set", mock.Anything, p.CacheKey(), mock.Anything, 300*time.Second).Return(nil)

	service := NewMatchService(testCatalog(), c)

	fresh, err := service.FindMatches(context.Background(), p)
	require.NoError(t, err)
	c.AssertExpectations(t)

	// What was stored equals what was returned.
	storedJSON := c.Calls[1].Arguments.String(2)
	var stored MatchResponse
	require.NoError(t, json.Unmarshal([]byte(storedJSON), &stored))
	require.Equal(t, fresh.TotalMatches, stored.TotalMatches)
	require.Equal(t, len(fresh.Matches), len(stored.Matches))
}

func TestMatchService_CacheFailureDoesNotFailRequest(t *testing.T) {
	c := new(mockCache)
	c.On("Get", mock.Anything, mock.Anything).Return("", false, errors.New("redis down"))
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	service := NewMatchService(testCatalog(), c)

	resp, err := service.FindMatches(context.Background(), fintechProfile(t))
	require.NoError(t, err)
	require.Equal(t, 5, resp.TotalMatches)
}

func TestMatchService_NilCacheRunsUncached(t *testing.T) {
	service := NewMatchService(testCatalog(), nil)

	resp, err := service.FindMatches(context.Background(), fintechProfile(t))
	require.NoError(t, err)
	require.Len(t, resp.Matches, 3)

	entries, err := service.Overview(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestMatchService_OverviewReadsCacheOnly(t *testing.T) {
	stored := MatchResponse{Success: true, TotalMatches: 2}
	payload, err := json.Marshal(stored)
	require.NoError(t, err)

	c := new(mockCache)
	c.On("Keys", mock.Anything, "match:*").Return([]string{"match:abc"}, nil)
	c.On("Get", mock.Anything, "match:abc").Return(string(payload), true, nil)

	service := NewMatchService(testCatalog(), c)

	entries, err := service.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 2, entries[0].TotalMatches)
	c.AssertExpectations(t)
}

func TestMatchService_OverviewSkipsExpiredAndUnreadable(t *testing.T) {
	c := new(mockCache)
	c.On("Keys", mock.Anything, "match:*").Return([]string{"match:gone", "match:bad"}, nil)
	c.On("Get", mock.Anything, "match:gone").Return("", false, nil)
	c.On("Get", mock.Anything, "match:bad").Return("{not json", true, nil)

	service := NewMatchService(testCatalog(), c)

	entries, err := service.Overview(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}
