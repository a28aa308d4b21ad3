package config

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the project config values
type Config struct {
	URL           string
	DatabaseName  string
	BaseURL       string
	Port          string
	OwnerEmail    string
	LogsDirectory string
}

// New sets up all config related services
func New() *Config {

	// load a local .env when present, real environments set vars directly
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("ENVIRONMENT"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:           os.Getenv("DB_URI"),
		DatabaseName:  os.Getenv("DB_NAME"),
		BaseURL:       os.Getenv("BASE_URL"),
		Port:          os.Getenv("PORT"),
		OwnerEmail:    os.Getenv("OWNER_EMAIL"),
		LogsDirectory: os.Getenv("LOGS_DIRECTORY"),
	}

}

// setLogger builds the zap logger for the given environment. When
// LOGS_DIRECTORY is set the production logger also writes rotated files.
func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "development":
		return zap.NewDevelopment()
	case "production":
		if dir := os.Getenv("LOGS_DIRECTORY"); dir != "" {
			return newRotatingLogger(dir), nil
		}
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

// newRotatingLogger writes production JSON logs to a size-rotated file
func newRotatingLogger(dir string) *zap.Logger {
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, "firearm-tracker.log"),
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		writer,
		zapcore.InfoLevel,
	)
	return zap.New(core)
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
