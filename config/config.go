// Package config holds details like routing and other configs for the app
package config

type AppConfiger interface {
	GetPort() string
	GetDBURL() string
	GetMaxTaskNumber() int
}

// DefaultMaxTaskNumber is used when TASKHUB_MAX_TASK_NUMBER is unset or invalid.
const DefaultMaxTaskNumber = 10
