package middleware

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPMetrics принимает наблюдения по HTTP запросам
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, seconds float64)
}
