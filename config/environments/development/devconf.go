// Package development contains development configuration of the app
package development

import (
	"os"
	"strconv"
	"strings"
	"taskhub/config"
)

type devconf struct{}

func New() config.AppConfiger {
	return devconf{}
}

func (dc devconf) GetPort() string {
	appPort := os.Getenv("TASKHUB_APP_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

func (dc devconf) GetDBURL() string {
	dbURL := os.Getenv("TASKHUB_DB_URL")
	if strings.TrimSpace(dbURL) == "" {
		dbURL = "file:taskhub.db"
	}
	return dbURL
}

func (dc devconf) GetMaxTaskNumber() int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TASKHUB_MAX_TASK_NUMBER")))
	if err != nil || n < 1 {
		return config.DefaultMaxTaskNumber
	}
	return n
}
