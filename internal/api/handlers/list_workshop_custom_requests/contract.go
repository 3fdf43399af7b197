package list_workshop_custom_requests

import (
	"context"

	"github.com/artizaho/workshop-booking/internal/service/customrequests/models"
)

type CustomRequestService interface {
	ListWorkshopRequests(ctx context.Context, req *models.ListWorkshopRequestsRequest) ([]*models.CustomRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
