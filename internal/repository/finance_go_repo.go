package repository

import (
	"context"
	"errors"
	"fmt"

	"stockwise/internal/dto"
	"stockwise/pkg/logger"
	"stockwise/pkg/utils"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
)

// financeGoRepository reads quotes through the piquette/finance-go client.
// That client has no context support, so the lookup runs in its own
// goroutine and GetQuote returns early when ctx is done.
type financeGoRepository struct {
	logger *logger.Logger
	fetch  func(symbol string) (*finance.Quote, error)
}

func NewFinanceGoRepository(log *logger.Logger) QuoteRepository {
	return &financeGoRepository{
		logger: log,
		fetch:  quote.Get,
	}
}

func (r *financeGoRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	type result struct {
		q   *finance.Quote
		err error
	}
	done := make(chan result, 1)

	utils.GoSafe(r.logger, func() {
		res := result{err: errors.New("finance-go lookup panicked")}
		defer func() { done <- res }()
		res.q, res.err = r.fetch(symbol)
	})

	select {
	case <-ctx.Done():
		r.logger.WarnContext(ctx, "finance-go quote lookup abandoned", logger.StringField("symbol", symbol))
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("failed to fetch quote from finance-go: %w", res.err)
		}
		if res.q == nil || res.q.RegularMarketPrice <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, symbol)
		}
		return fromFinanceGo(symbol, res.q), nil
	}
}

// finance-go reports absent numbers as zero.
func fromFinanceGo(symbol string, q *finance.Quote) *dto.Quote {
	return &dto.Quote{
		Ticker:        symbol,
		Price:         q.RegularMarketPrice,
		ChangePercent: q.RegularMarketChangePercent / 100,
		Volume:        utils.PositiveOrNil(float64(q.RegularMarketVolume)),
		AverageVolume: utils.PositiveOrNil(float64(q.AverageDailyVolume3Month)),
		Week52Low:     utils.PositiveOrNil(q.FiftyTwoWeekLow),
		Week52High:    utils.PositiveOrNil(q.FiftyTwoWeekHigh),
	}
}
