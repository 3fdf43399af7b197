package submit_custom_request

import (
	"context"

	submitRequest "github.com/artizaho/workshop-booking/internal/usecase/submit_custom_request"
)

type SubmitCustomRequestUseCase interface {
	Execute(ctx context.Context, req *submitRequest.Request) (*submitRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
