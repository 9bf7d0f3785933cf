package pkgconfig

// Config exposes typed configuration lookups by dotted key (for example "server.port").
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetBinary(key string) []byte
	GetArray(key string) []string
	GetMap(key string) map[string]string
	Close() error
}

// envBindings maps configuration keys to the environment variables that override them.
//
//nolint:gochecknoglobals // static lookup table
var envBindings = map[string]string{
	"tz":              "TZ",
	"app.env":         "APP_ENV",
	"server.port":     "PORT",
	"database.driver": "DATABASE_DRIVER",
	"database.path":   "TEST_DATABASE",
	"database.dsn":    "DATABASE_DSN",
}

//nolint:gochecknoglobals // static lookup table
var defaults = map[string]any{
	"tz":              "UTC",
	"app.env":         "development",
	"server.port":     4000,
	"database.driver": "sqlite",
	"database.path":   "./database.sqlite",
}
