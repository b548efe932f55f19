package app

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"taskhub/app/middleware/reqlog"
	"taskhub/internal/validator"
)

// NewServer returns an echo instance with the shared middleware stack.
// Routes are added separately by config.AddRoutes.
func NewServer(logger logrus.FieldLogger, level logrus.Level) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(level))
	e.Validator = validator.New()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: NewRequestID,
	}))
	e.Use(reqlog.Middleware(logger))

	return e
}

func NewRequestID() string {
	return "req_" + ulid.Make().String()
}

// ErrorHandler renders errors that escape a handler in the same
// {"error": "..."} envelope the handlers use.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		c.Logger().Error(err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, map[string]string{"error": message})
	}
	if werr != nil {
		c.Logger().Error(werr)
	}
}

func echoLogLevel(level logrus.Level) log.Lvl {
	switch {
	case level >= logrus.DebugLevel:
		return log.DEBUG
	case level == logrus.InfoLevel:
		return log.INFO
	case level == logrus.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}
