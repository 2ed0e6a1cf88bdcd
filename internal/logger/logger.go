package logger

import (
	"net"
	"os"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"

	"likeat/internal/config"
)

const serviceName = "likeat-catalog"

// New builds the process logger. Shipping hooks are optional; a hook that
// fails to connect is reported on the logger itself and skipped.
func New(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stdout

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if cfg.LogstashAddr != "" {
		conn, err := net.Dial("udp", cfg.LogstashAddr)
		if err != nil {
			logger.WithError(err).Warn("logstash hook disabled")
		} else {
			logger.Hooks.Add(logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": serviceName})))
		}
	}

	if cfg.ElasticURL != "" {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{cfg.ElasticURL},
		})
		if err != nil {
			logger.WithError(err).Warn("elastic hook disabled")
		} else if hook, err := elogrus.NewAsyncElasticHook(client, serviceName, level, cfg.ElasticIndex); err != nil {
			logger.WithError(err).Warn("elastic hook disabled")
		} else {
			logger.Hooks.Add(hook)
		}
	}

	return logger
}
