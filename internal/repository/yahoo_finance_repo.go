package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"stockwise/config"
	"stockwise/internal/dto"
	"stockwise/pkg/httpclient"
	"stockwise/pkg/logger"
	"stockwise/pkg/utils"
)

var ErrQuoteNotFound = errors.New("quote not found")

// errQuoteEndpointRejected means the v7 endpoint answered with a non-OK
// status, usually because it wants a crumb cookie.
var errQuoteEndpointRejected = errors.New("yahoo quote endpoint rejected request")

// yahooFinanceRepository reads quotes from the Yahoo Finance v7 quote
// endpoint and falls back to the v8 chart endpoint when v7 refuses the call.
// The chart meta has no P/E, market cap or analyst rating.
type yahooFinanceRepository struct {
	httpClient httpclient.HTTPClient
	logger     *logger.Logger
}

// NewYahooFinanceRepository creates a new instance of yahooFinanceRepository.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) QuoteRepository {
	return &yahooFinanceRepository{
		httpClient: httpclient.New(log, cfg.Quote.BaseURL, cfg.Quote.Timeout),
		logger:     log,
	}
}

var yahooHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.9",
	"Referer":         "https://finance.yahoo.com/",
}

func (r *yahooFinanceRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	q, err := r.getFromQuoteEndpoint(ctx, symbol)
	if errors.Is(err, errQuoteEndpointRejected) {
		r.logger.WarnContext(ctx, "Yahoo Finance quote endpoint rejected request, using chart endpoint",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err))
		return r.getFromChartEndpoint(ctx, symbol)
	}
	return q, err
}

func (r *yahooFinanceRepository) getFromQuoteEndpoint(ctx context.Context, symbol string) (*dto.Quote, error) {
	queryParams := map[string]string{
		"symbols": symbol,
	}

	var yahooResp dto.YahooQuoteResponse
	resp, err := r.httpClient.Get(ctx, "/v7/finance/quote", queryParams, yahooHeaders, &yahooResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote from yahoo finance: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", errQuoteEndpointRejected, resp.StatusCode)
	}

	if yahooResp.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yahoo finance api error: %v", yahooResp.QuoteResponse.Error)
	}

	for _, result := range yahooResp.QuoteResponse.Result {
		if strings.EqualFold(result.Symbol, symbol) {
			return toQuote(symbol, result)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, symbol)
}

func (r *yahooFinanceRepository) getFromChartEndpoint(ctx context.Context, symbol string) (*dto.Quote, error) {
	queryParams := map[string]string{
		"range":    "1d",
		"interval": "1d",
	}

	var chartResp dto.YahooChartResponse
	resp, err := r.httpClient.Get(ctx, "/v8/finance/chart/"+symbol, queryParams, yahooHeaders, &chartResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chart from yahoo finance: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Yahoo Finance API returned Non-OK status",
			logger.StringField("symbol", symbol),
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, fmt.Errorf("yahoo finance api returned status: %d", resp.StatusCode)
	}

	if chartResp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo finance api error: %v", chartResp.Chart.Error)
	}
	if len(chartResp.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, symbol)
	}

	return chartToQuote(symbol, chartResp.Chart.Result[0].Meta)
}

func toQuote(symbol string, result dto.YahooQuoteResult) (*dto.Quote, error) {
	if !result.RegularMarketPrice.Valid || !result.RegularMarketChangePercent.Valid {
		return nil, fmt.Errorf("%w: %s has no price data", ErrQuoteNotFound, symbol)
	}

	return &dto.Quote{
		Ticker:           symbol,
		Price:            result.RegularMarketPrice.Value,
		ChangePercent:    result.RegularMarketChangePercent.Value / 100,
		Volume:           result.RegularMarketVolume.Ptr(),
		AverageVolume:    result.AverageDailyVolume3Month.Ptr(),
		PERatio:          result.TrailingPE.Ptr(),
		MarketCap:        result.MarketCap.Ptr(),
		Week52Low:        result.FiftyTwoWeekLow.Ptr(),
		Week52High:       result.FiftyTwoWeekHigh.Ptr(),
		AnalystConsensus: utils.NonEmptyOrNil(result.AverageAnalystRating.Value),
	}, nil
}

// chartToQuote derives the daily change from the previous close.
func chartToQuote(symbol string, meta dto.YahooChartMeta) (*dto.Quote, error) {
	prevClose := meta.ChartPreviousClose
	if !prevClose.Valid || prevClose.Value <= 0 {
		prevClose = meta.PreviousClose
	}
	if !meta.RegularMarketPrice.Valid || !prevClose.Valid || prevClose.Value <= 0 {
		return nil, fmt.Errorf("%w: %s has no price data", ErrQuoteNotFound, symbol)
	}

	price := meta.RegularMarketPrice.Value
	return &dto.Quote{
		Ticker:        symbol,
		Price:         price,
		ChangePercent: (price - prevClose.Value) / prevClose.Value,
		Volume:        meta.RegularMarketVolume.Ptr(),
		Week52Low:     meta.FiftyTwoWeekLow.Ptr(),
		Week52High:    meta.FiftyTwoWeekHigh.Ptr(),
	}, nil
}
