package quote_privatization

import (
	"context"

	quotePrivatization "github.com/artizaho/workshop-booking/internal/usecase/quote_privatization"
)

type QuotePrivatizationUseCase interface {
	Execute(ctx context.Context, req *quotePrivatization.Request) (*quotePrivatization.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
