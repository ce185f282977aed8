package logger

// LoggerInstance is the interface a logging backend has to satisfy.
type LoggerInstance interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
	Fatal(message string, keyvals ...any)
}

// Logger dispatches log calls to all configured backends.
type Logger struct {
	instances []LoggerInstance
}

var singleton *Logger

// Init sets up the global logger with one or more backends.
// Calls made before Init are dropped silently.
func Init(instances ...LoggerInstance) {
	singleton = &Logger{
		instances: instances,
	}
}

// Debug writes a message at DEBUG level.
func Debug(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	for _, instance := range singleton.instances {
		instance.Debug(message, keyvals...)
	}
}

// Info writes a message at INFO level.
func Info(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	for _, instance := range singleton.instances {
		instance.Info(message, keyvals...)
	}
}

// Warn writes a message at WARN level.
func Warn(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	for _, instance := range singleton.instances {
		instance.Warn(message, keyvals...)
	}
}

// Error writes a message at ERROR level.
func Error(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	for _, instance := range singleton.instances {
		instance.Error(message, keyvals...)
	}
}

// Fatal writes a message at FATAL level and terminates the program.
func Fatal(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	for _, instance := range singleton.instances {
		instance.Fatal(message, keyvals...)
	}
}
