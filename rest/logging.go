package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Sams101/calculator-app/history"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// logger instance
var log = logrus.New()

// DoLoggingLevel handles the /logging/level endpoint: report the current
// logger levels and change them from the query parameters.
func (server *Server) DoLoggingLevel(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	// try to set levels from query
	for key, vals := range ctx.Request.URL.Query() {
		for _, level := range vals { // usually one item
			if err := setLoggingLevel(key, level); err != nil {
				panic(NewError(http.StatusBadRequest, err.Error()).
					WithDetails("failed to change logging level"))
			}
		}
	}

	// print current levels
	info := map[string]interface{}{
		"core":         log.Level.String(),
		"core/history": history.GetLogLevel().String(),
	}

	ctx.IndentedJSON(http.StatusOK, info)
}

// setLoggingLevel sets one logger's level by name.
func setLoggingLevel(logger string, level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse level: %s", err)
	}

	switch strings.ToLower(logger) {
	case "core":
		log.Level = ll
	case "core/history":
		history.SetLogLevel(ll)
	default:
		return fmt.Errorf("unknown logger name: %q", logger)
	}

	return nil // OK
}
