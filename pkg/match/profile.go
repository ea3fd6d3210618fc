package match

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
)

// requiredFields in validation/reporting order.
var requiredFields = []string{"industry", "funding_stage", "risk_tolerance", "investment_amount"}

// FounderProfile is the inbound matching request. The profile keeps every
// field it was sent, including keys the scorer never looks at, so the
// echoed founder_profile in the response is exactly what the client posted.
type FounderProfile struct {
	fields map[string]any
}

// NewFounderProfile builds a profile from explicit fields. Mostly a test
// convenience; HTTP requests arrive through UnmarshalJSON.
func NewFounderProfile(fields map[string]any) FounderProfile {
	return FounderProfile{fields: fields}
}

func (p *FounderProfile) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	// Numbers stay json.Number so the echo and the cache key preserve the
	// client's exact representation.
	dec.UseNumber()
	return dec.Decode(&p.fields)
}

func (p FounderProfile) MarshalJSON() ([]byte, error) {
	if p.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.fields)
}

// Industry returns the founder's industry, or "" when absent.
func (p FounderProfile) Industry() string {
	s, _ := p.fields["industry"].(string)
	return s
}

// FundingStage returns the founder's stage. Requests may use either the
// funding_stage or the stages key; funding_stage wins when both are set.
func (p FounderProfile) FundingStage() string {
	if s, ok := p.fields["funding_stage"].(string); ok && s != "" {
		return s
	}
	s, _ := p.fields["stages"].(string)
	return s
}

// RiskTolerance returns the founder's risk tolerance, or "" when absent.
func (p FounderProfile) RiskTolerance() string {
	s, _ := p.fields["risk_tolerance"].(string)
	return s
}

// InvestmentAmount returns the raw, unparsed amount value.
func (p FounderProfile) InvestmentAmount() any {
	return p.fields["investment_amount"]
}

// MissingFields reports which required fields are absent, in a fixed order.
// A field counts as missing when its value is falsy: absent, empty string,
// or zero.
func (p FounderProfile) MissingFields() []string {
	var missing []string
	for _, field := range requiredFields {
		value := p.fields[field]
		if field == "funding_stage" && isFalsy(value) {
			value = p.fields["stages"]
		}
		if isFalsy(value) {
			missing = append(missing, field)
		}
	}
	return missing
}

// CacheKey derives the canonical cache key for this profile. Marshalling
// the field map sorts keys, so two requests with the same values in any
// order produce the same key.
func (p FounderProfile) CacheKey() string {
	canonical, err := json.Marshal(p.fields)
	if err != nil {
		canonical = []byte("{}")
	}
	sum := sha256.Sum256(canonical)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case json.Number:
		f, err := value.Float64()
		return err == nil && f == 0
	case float64:
		return value == 0
	case int:
		return value == 0
	case int64:
		return value == 0
	default:
		return false
	}
}

// parseAmountOrZero extracts an integer investment amount from whatever the
// client sent. Anything unparseable is 0; this never returns an error.
func parseAmountOrZero(v any) int64 {
	switch value := v.(type) {
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return n
		}
		if f, err := value.Float64(); err == nil {
			return int64(f)
		}
		return 0
	case string:
		raw := strings.TrimSpace(value)
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return int64(f)
		}
		return 0
	case float64:
		return int64(value)
	case int:
		return int64(value)
	case int64:
		return value
	default:
		return 0
	}
}
