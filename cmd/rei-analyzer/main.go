package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/OverlordBaconPants/rei-analyzer/internal/config"
	"github.com/OverlordBaconPants/rei-analyzer/internal/engine"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/format"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/output"
	"github.com/OverlordBaconPants/rei-analyzer/pkg/validation"
)

func main() {
	configLocation := flag.String("config", constants.DefaultDealFile, "path to deal file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load deal file at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := conf.Logging.BuildLogger(*logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config).
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate the deal file and display any warnings.
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Deal file warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Convert the raw deal into the analysis aggregate.
	analysis, err := conf.BuildAnalysis()
	if err != nil {
		logger.Fatal("failed to build analysis from deal file",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Compute the metrics bundle.
	calculator := engine.NewCalculator(logger)
	result, err := calculator.Compute(analysis)
	if err != nil {
		logger.Fatal("failed to compute metrics",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Report the balloon transition when the financing carries one.
	if analysis.HasBalloonPayment && !analysis.BalloonRefinance.IsZero() {
		balloon, err := calculator.BalloonTransition(analysis)
		if err != nil {
			logger.Fatal("failed to compute balloon transition",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info(fmt.Sprintf("balloon payoff of %s due at month %d changes cash flow from %s to %s",
			format.Currency(balloon.PayoffAmount), analysis.BalloonDueMonth,
			format.Currency(balloon.PreCashFlow), format.Currency(balloon.PostCashFlow)),
			zap.String("op", "main"),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(analysis.Name, result)
	case constants.OutputFormatCSV:
		output.CsvFormat(analysis.Name, result)
	}
}
