package unavailability

import "github.com/artizaho/workshop-booking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
