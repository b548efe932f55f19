// Package appconf contains app related configurations
package appconf

import (
	"os"
	"strings"
	"taskhub/config"
	devconf "taskhub/config/environments/development"
	prodconf "taskhub/config/environments/production"
)

var appconf config.AppConfiger

func Port() string {
	return appconf.GetPort()
}

func DBURL() string {
	return appconf.GetDBURL()
}

func MaxTaskNumber() int {
	return appconf.GetMaxTaskNumber()
}

func LogLevel() string {
	if level := strings.TrimSpace(os.Getenv("TASKHUB_LOG_LEVEL")); level != "" {
		return level
	}
	return "info"
}

func LogFormat() string {
	if format := strings.TrimSpace(os.Getenv("TASKHUB_LOG_FORMAT")); format != "" {
		return format
	}
	return "text"
}

func LogFile() string {
	return os.Getenv("TASKHUB_LOG_FILE")
}

func Env() string {
	if os.Getenv("APP_ENV") == "production" {
		return "production"
	}
	return "development"
}

func init() {
	load()
}

func load() {
	switch Env() {
	case "production":
		appconf = prodconf.New()
	default:
		appconf = devconf.New()
	}
}
