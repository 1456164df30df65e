package service

import (
	"context"

	"stockwise/internal/dto"
)

type fakeQuoteRepo struct {
	quote   *dto.Quote
	err     error
	symbols []string
}

func (f *fakeQuoteRepo) GetQuote(_ context.Context, symbol string) (*dto.Quote, error) {
	f.symbols = append(f.symbols, symbol)
	if f.err != nil {
		return nil, f.err
	}
	q := *f.quote
	q.Ticker = symbol
	return &q, nil
}

type fakeCompletionRepo struct {
	reply    string
	err      error
	received []dto.ChatMessage
}

func (f *fakeCompletionRepo) Complete(_ context.Context, messages []dto.ChatMessage) (string, error) {
	f.received = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
