package match

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"
	"time"

	"investormatch/pkg/investors"
)

const (
	// CacheTTL is the fixed lifetime of a cached match response.
	CacheTTL = 300 * time.Second

	cacheKeyPrefix = "match:"
	maxMatches     = 3
)

// ValidationError reports the required profile fields a request left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Missing required fields: " + strings.Join(e.Missing, ", ")
}

// ResponseCache is the optional key-value collaborator. Implementations
// must be safe to call on a nil receiver so an uncached deployment needs no
// special handling here.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// MatchResponse is the full payload of POST /api/match; it is also what
// gets cached, so a hit returns exactly what was computed at insertion time.
type MatchResponse struct {
	Success        bool           `json:"success"`
	FounderProfile FounderProfile `json:"founder_profile"`
	Matches        []Result       `json:"matches"`
	TotalMatches   int            `json:"total_matches"`
}

type MatchService interface {
	FindMatches(ctx context.Context, profile FounderProfile) (MatchResponse, error)
	Overview(ctx context.Context) ([]MatchResponse, error)
}

type matchService struct {
	catalog *investors.Catalog
	cache   ResponseCache
}

// NewMatchService wires the scorer to a catalog and an optional cache.
// Passing a nil cache runs every request uncached.
func NewMatchService(catalog *investors.Catalog, cache ResponseCache) MatchService {
	if cache == nil {
		cache = noopCache{}
	}
	return &matchService{catalog: catalog, cache: cache}
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string) (string, bool, error) { return "", false, nil }
func (noopCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
func (noopCache) Keys(ctx context.Context, pattern string) ([]string, error) { return nil, nil }

// FindMatches validates the profile, serves a cached response when one
// exists, and otherwise scores the whole catalog: drop zero scores, stable
// sort by score descending (catalog order breaks ties), keep the top 3.
func (s *matchService) FindMatches(ctx context.Context, profile FounderProfile) (MatchResponse, error) {
	if missing := profile.MissingFields(); len(missing) > 0 {
		return MatchResponse{}, &ValidationError{Missing: missing}
	}

	key := profile.CacheKey()
	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		log.Printf("match cache lookup failed, computing fresh: %v", err)
	} else if ok {
		var resp MatchResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return resp, nil
		}
		log.Printf("discarding unreadable cache entry %s", key)
	}

	results := make([]Result, 0, s.catalog.Len())
	for _, inv := range s.catalog.All() {
		if r := Score(profile, inv); r.Score > 0 {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	total := len(results)
	if len(results) > maxMatches {
		results = results[:maxMatches]
	}

	resp := MatchResponse{
		Success:        true,
		FounderProfile: profile,
		Matches:        results,
		TotalMatches:   total,
	}

	if payload, err := json.Marshal(resp); err != nil {
		log.Printf("match response not cacheable: %v", err)
	} else if err := s.cache.Set(ctx, key, string(payload), CacheTTL); err != nil {
		log.Printf("match cache store failed: %v", err)
	}

	return resp, nil
}

// Overview returns every match response currently held in the cache. It
// never computes anything: a cold cache is an explicit empty list.
func (s *matchService) Overview(ctx context.Context) ([]MatchResponse, error) {
	keys, err := s.cache.Keys(ctx, cacheKeyPrefix+"*")
	if err != nil {
		return nil, err
	}

	entries := make([]MatchResponse, 0, len(keys))
	for _, key := range keys {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Expired between the scan and the read.
			continue
		}
		var resp MatchResponse
		if err := json.Unmarshal([]byte(cached), &resp); err != nil {
			log.Printf("skipping unreadable cache entry %s", key)
			continue
		}
		entries = append(entries, resp)
	}
	return entries, nil
}
