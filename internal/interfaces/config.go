package interfaces

// Config is the read surface of the application configuration.
type Config interface {
	Env(envName string, defaultValue ...any) any
	Add(name string, configuration any)
	Get(path string, defaultValue ...any) any
	GetString(path string, defaultValue ...any) string
	GetInt(path string, defaultValue ...any) int
	GetInt64(path string, defaultValue ...any) int64
	GetBool(path string, defaultValue ...any) bool
}
