package dto

import (
	"bytes"
	"encoding/json"
	"math"
)

// Quote is a live market snapshot used to enrich a conversation. Price and
// ChangePercent are always set; every pointer field is present only when the
// data source returned it. ChangePercent is a fraction (0.0132 means 1.32%).
type Quote struct {
	Ticker           string   `json:"ticker"`
	Price            float64  `json:"price"`
	ChangePercent    float64  `json:"change_percent"`
	Volume           *float64 `json:"volume,omitempty"`
	AverageVolume    *float64 `json:"average_volume,omitempty"`
	PERatio          *float64 `json:"pe_ratio,omitempty"`
	MarketCap        *float64 `json:"market_cap,omitempty"`
	Week52Low        *float64 `json:"week_52_low,omitempty"`
	Week52High       *float64 `json:"week_52_high,omitempty"`
	AnalystConsensus *string  `json:"analyst_consensus,omitempty"`
}

// OptionalFloat decodes a finite JSON number. Anything else (null, strings
// such as "Infinity", objects) leaves it unset instead of failing the whole
// document.
type OptionalFloat struct {
	Value float64
	Valid bool
}

func (f *OptionalFloat) UnmarshalJSON(data []byte) error {
	*f = OptionalFloat{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*f = OptionalFloat{Value: v, Valid: true}
	return nil
}

// Ptr returns nil when the value was absent or not a number.
func (f OptionalFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// OptionalString decodes a JSON string and ignores any other JSON type.
type OptionalString struct {
	Value string
}

func (s *OptionalString) UnmarshalJSON(data []byte) error {
	*s = OptionalString{}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	s.Value = v
	return nil
}

// YahooQuoteResponse is the body of the Yahoo Finance v7 quote endpoint.
type YahooQuoteResponse struct {
	QuoteResponse struct {
		Result []YahooQuoteResult `json:"result"`
		Error  interface{}        `json:"error"`
	} `json:"quoteResponse"`
}

// YahooQuoteResult carries percentages in percent units, not fractions.
type YahooQuoteResult struct {
	Symbol                     string         `json:"symbol"`
	RegularMarketPrice         OptionalFloat  `json:"regularMarketPrice"`
	RegularMarketChangePercent OptionalFloat  `json:"regularMarketChangePercent"`
	RegularMarketVolume        OptionalFloat  `json:"regularMarketVolume"`
	AverageDailyVolume3Month   OptionalFloat  `json:"averageDailyVolume3Month"`
	TrailingPE                 OptionalFloat  `json:"trailingPE"`
	MarketCap                  OptionalFloat  `json:"marketCap"`
	FiftyTwoWeekLow            OptionalFloat  `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh           OptionalFloat  `json:"fiftyTwoWeekHigh"`
	AverageAnalystRating       OptionalString `json:"averageAnalystRating"`
}

// YahooChartResponse is the body of the v8 chart endpoint. Only the meta
// block is read; it needs no crumb, unlike the v7 quote endpoint.
type YahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta YahooChartMeta `json:"meta"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"chart"`
}

type YahooChartMeta struct {
	Symbol              string        `json:"symbol"`
	RegularMarketPrice  OptionalFloat `json:"regularMarketPrice"`
	ChartPreviousClose  OptionalFloat `json:"chartPreviousClose"`
	PreviousClose       OptionalFloat `json:"previousClose"`
	RegularMarketVolume OptionalFloat `json:"regularMarketVolume"`
	FiftyTwoWeekLow     OptionalFloat `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh    OptionalFloat `json:"fiftyTwoWeekHigh"`
}
