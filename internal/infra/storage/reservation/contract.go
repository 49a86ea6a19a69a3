package reservation

import "github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"

// DBExecutor исполнитель запросов: *dbmetrics.DB или транзакция из контекста
type DBExecutor = dbmetrics.DBExecutor
