package update_custom_request_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/service/customrequests/models"
)

type CustomRequestService interface {
	UpdateStatus(ctx context.Context, requestID uuid.UUID, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
