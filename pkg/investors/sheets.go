package investors

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Expected sheet columns, one investor per row:
// name | industries | stages | risk_tolerance | min_investment | max_investment | description | contact | location
const defaultReadRange = "Investors!A2:I"

type sheetsSource struct {
	credentialsFile string
	spreadsheetID   string
	readRange       string
}

// NewSheetsSource reads the catalog from a Google Sheets spreadsheet using a
// service account credentials file. An empty readRange uses the default tab.
func NewSheetsSource(credentialsFile, spreadsheetID, readRange string) Source {
	if readRange == "" {
		readRange = defaultReadRange
	}
	return sheetsSource{
		credentialsFile: credentialsFile,
		spreadsheetID:   spreadsheetID,
		readRange:       readRange,
	}
}

func (s sheetsSource) Load(ctx context.Context) ([]Investor, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(s.credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", s.spreadsheetID, err)
	}

	list := make([]Investor, 0, len(resp.Values))
	for i, row := range resp.Values {
		inv, ok := investorFromRow(int64(i+1), row)
		if !ok {
			continue
		}
		list = append(list, inv)
	}
	return list, nil
}

// investorFromRow maps one sheet row onto an Investor. Rows without a name
// are rejected; everything else falls back to zero values.
func investorFromRow(id int64, row []interface{}) (Investor, bool) {
	name := strings.TrimSpace(cellString(row, 0))
	if name == "" {
		return Investor{}, false
	}

	minAmount := cellInt(row, 4)
	maxAmount := cellInt(row, 5)
	if maxAmount < minAmount {
		minAmount, maxAmount = maxAmount, minAmount
	}

	return Investor{
		ID:              id,
		Name:            name,
		Industries:      splitList(cellString(row, 1)),
		Stages:          splitList(cellString(row, 2)),
		RiskTolerance:   strings.ToLower(strings.TrimSpace(cellString(row, 3))),
		InvestmentRange: [2]int64{minAmount, maxAmount},
		Description:     strings.TrimSpace(cellString(row, 6)),
		Contact:         strings.TrimSpace(cellString(row, 7)),
		Location:        strings.TrimSpace(cellString(row, 8)),
	}, true
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return s
}

func cellInt(row []interface{}, idx int) int64 {
	raw := strings.ReplaceAll(strings.TrimSpace(cellString(row, idx)), ",", "")
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// splitList turns a delimited cell like "a, b, c" into a clean slice.
func splitList(cell string) []string {
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.ToLower(strings.TrimSpace(p)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
