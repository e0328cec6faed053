package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldSuccess   = "success"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldMethod    = "method"
	FieldQuery     = "query"
	FieldStatus    = "status_code"
	FieldDuration  = "duration_ms"
	FieldDate      = "date"
	FieldCategory  = "category"
	FieldKeyword   = "keyword"
	FieldCurrency  = "currency"
	FieldTicker    = "ticker"
	FieldRecords   = "records"
)

// Standard component names.
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentSource   = "source"
	ComponentReport   = "report"
	ComponentHomepage = "homepage"
	ComponentRates    = "rates"
	ComponentStocks   = "stocks"
	ComponentAMQP     = "amqp"
	ComponentSettings = "settings"
)

// Standard operation names.
const (
	OpHomepage = "homepage"
	OpSearch   = "search"
	OpReport   = "category_report"
	OpReadAll  = "read_all"
	OpPersist  = "persist"
	OpPublish  = "publish"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
