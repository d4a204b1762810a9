package main

import (
	"net/http"
	"time"

	"github.com/Sams101/calculator-app/middleware/cors"
	"github.com/Sams101/calculator-app/rest"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/tylerb/graceful.v1"
)

// logger instance
var log = logrus.New()

// customized via Makefile
var (
	Version = "development"
	GitHash = "unknown"
)

// config file name kingpin.Value
// parses server configuration on value set
type serverConfigValue struct {
	s *rest.Server // server instance
	v string       // configuration path
}

// set server's configuration file
func (f *serverConfigValue) Set(s string) error {
	f.v = s
	return f.s.ParseConfig(f.v)
}

// get server's configuration file
func (f *serverConfigValue) String() string {
	return f.v
}

// main server's entry point
func main() {
	server := rest.NewServer() // server instance
	defer server.Close()

	// parse command line arguments
	kingpin.Flag("config", "Server configuration in YML format.").SetValue(&serverConfigValue{s: server})
	kingpin.Flag("address", "Address:port to listen on.").Short('l').Default(":8765").StringVar(&server.Config.ListenAddress)
	kingpin.Flag("debug", "Run server in debug mode (more log messages).").Short('d').BoolVar(&server.Config.DebugMode)
	kingpin.Flag("history-file", "History database file.").StringVar(&server.Config.History.File)
	kingpin.Flag("history-limit", "Number of history entries kept.").IntVar(&server.Config.History.Limit)
	kingpin.Flag("max-length", "Maximum accepted expression length, 0 to disable.").IntVar(&server.Config.MaxExpressionLength)
	kingpin.Flag("cors-origins", "Allowed CORS origins.").StringVar(&server.Config.CorsOrigins)
	kingpin.Version(Version)
	kingpin.Parse()

	// prepare server to start
	if err := server.Prepare(); err != nil {
		log.WithError(err).Fatalf("failed to prepare server")
	}

	if !server.Config.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	mux := gin.Default()
	mux.Use(cors.Cors(server.Config.CorsOrigins))

	mux.GET("/evaluate", server.DoEvaluate)
	mux.POST("/evaluate", server.DoEvaluate)
	mux.GET("/history", server.DoGetHistory)
	mux.DELETE("/history", server.DoDeleteHistory)
	mux.GET("/logging/level", server.DoLoggingLevel)

	mux.GET("/version", func(ctx *gin.Context) {
		ctx.IndentedJSON(http.StatusOK, gin.H{
			"version":  Version,
			"git-hash": GitHash,
		})
	})

	log.WithField("address", server.Config.ListenAddress).Infof("start HTTP server")
	worker := &graceful.Server{
		Timeout: 5 * time.Second,
		Server: &http.Server{
			Addr:    server.Config.ListenAddress,
			Handler: mux,
		},
	}
	if err := worker.ListenAndServe(); err != nil {
		log.WithError(err).Fatalf("failed to serve HTTP")
	}
}
