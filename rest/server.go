package rest

import (
	"fmt"
	"io/ioutil"

	"github.com/Sams101/calculator-app/history"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// ServerConfig is the server's configuration.
type ServerConfig struct {
	ListenAddress string `yaml:"address,omitempty"`
	DebugMode     bool   `yaml:"debug-mode,omitempty"`

	// Logging maps logger names to levels, see setLoggingLevel.
	Logging map[string]string `yaml:"logging,omitempty"`

	// MaxExpressionLength limits the length of accepted expressions.
	// This is a transport guard for misbehaving clients; the evaluator
	// itself has no length limit. Zero disables the guard.
	MaxExpressionLength int `yaml:"max-expression-length,omitempty"`

	// CorsOrigins is the Access-Control-Allow-Origin value for the
	// browser UI.
	CorsOrigins string `yaml:"cors-origins,omitempty"`

	History struct {
		File  string `yaml:"file,omitempty"`
		Limit int    `yaml:"limit,omitempty"`
	} `yaml:"history,omitempty"`
}

// Server instance
type Server struct {
	Config ServerConfig

	history *history.Store
}

// NewServer creates a new server instance with the default configuration.
func NewServer() *Server {
	s := new(Server)

	s.Config.ListenAddress = ":8765"
	s.Config.MaxExpressionLength = 240
	s.Config.CorsOrigins = "*"
	s.Config.History.File = "calculator-history.db"
	s.Config.History.Limit = history.DefaultLimit

	return s // OK
}

// ParseConfig parses server configuration from a YML file.
func (s *Server) ParseConfig(fileName string) error {
	if len(fileName) == 0 {
		return nil // OK
	}

	buf, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration from %q: %s", fileName, err)
	}
	if err := yaml.Unmarshal(buf, &s.Config); err != nil {
		return fmt.Errorf("failed to parse configuration from %q: %s", fileName, err)
	}

	if s.Config.MaxExpressionLength < 0 {
		return fmt.Errorf("maximum expression length cannot be negative")
	}
	if len(s.Config.History.File) == 0 {
		return fmt.Errorf("history file cannot be empty")
	}

	return nil // OK
}

// Prepare gets the server ready to start: applies logging levels and
// opens the history store.
func (s *Server) Prepare() error {
	if s.Config.DebugMode {
		log.Level = logrus.DebugLevel
		history.SetLogLevel(logrus.DebugLevel)
	}
	for logger, level := range s.Config.Logging {
		if err := setLoggingLevel(logger, level); err != nil {
			return fmt.Errorf("failed to apply logging configuration: %s", err)
		}
	}

	store, err := history.Open(s.Config.History.File, s.Config.History.Limit)
	if err != nil {
		return err
	}
	s.history = store

	return nil // OK
}

// Close releases all server's resources.
func (s *Server) Close() {
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			log.WithError(err).Warnf("failed to close history store")
		}
		s.history = nil
	}
}
