// Package production contains production configuration of the app
package production

import (
	"os"
	"strconv"
	"strings"
	"taskhub/config"
)

type prodconf struct{}

func New() config.AppConfiger {
	return prodconf{}
}

func (pc prodconf) GetPort() string {
	appPort := os.Getenv("TASKHUB_APP_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

func (pc prodconf) GetDBURL() string {
	dbURL := os.Getenv("TASKHUB_DB_URL")
	if strings.TrimSpace(dbURL) == "" {
		dbURL = "/var/lib/taskhub/taskhub.db"
	}
	return dbURL
}

func (pc prodconf) GetMaxTaskNumber() int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TASKHUB_MAX_TASK_NUMBER")))
	if err != nil || n < 1 {
		return config.DefaultMaxTaskNumber
	}
	return n
}
