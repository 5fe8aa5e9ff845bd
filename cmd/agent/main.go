package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"ingatlan/agent/config"
	"ingatlan/agent/internal/loader"
	"ingatlan/agent/internal/models"
	"ingatlan/agent/internal/parser"
	"ingatlan/agent/internal/registry"
	"ingatlan/agent/internal/report"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	// Logs go to stderr so the report on stdout stays byte-clean
	logger.SetOutput(os.Stderr)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithError(err).Warn("Invalid log level, keeping default")
	}

	// Load the listing file, falling back to the built-in sample data
	var properties []models.Property
	lines, err := loader.ReadLines(cfg.Input.Path)
	if err != nil {
		logger.WithError(err).Error("Failed to read listing file")
		logger.Info("Loading sample data instead...")
		properties = models.SampleProperties()
	} else {
		properties = parser.NewParser(logger).ParseAll(lines)
	}

	// Insert everything into the price-ordered registry
	reg := registry.NewRegistry(logger)
	for _, property := range properties {
		reg.Insert(property)
	}
	logger.Infof("Loaded %d properties", reg.Size())

	// Aggregate and render the report
	aggregator := report.NewAggregator(reg, cfg.Report.FocusCity, logger)
	body := report.Body(aggregator.Render())

	// Display and persist the same bytes
	fmt.Print(body)
	if err := loader.WriteReport(cfg.Report.OutputPath, body); err != nil {
		logger.WithError(err).Error("Failed to write report file")
		return
	}
	logger.Infof("Report written to %s", cfg.Report.OutputPath)
}
