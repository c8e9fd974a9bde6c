// Command rentoracle estimates fair annual rent for Lagos apartments and
// scores a landlord's asking price against the market range. It loads
// configuration, wires the dataset source, and answers a single query from
// positional arguments.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/lagosrent/rentoracle/internal/app"
	"github.com/lagosrent/rentoracle/internal/config"
	"github.com/lagosrent/rentoracle/internal/render"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to configuration file")
	compare := flag.Bool("compare", false, "compare tiers for a bedroom count instead of predicting")
	flag.Parse()

	// Structured JSON logs go to stderr; stdout carries the report.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	logger = logger.With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		return
	}
	if !*compare && len(args) < 2 {
		printUsage()
		return
	}

	// Parse positional arguments before touching any collaborator.
	var (
		location string
		bedrooms int
		asking   *float64
	)
	if *compare {
		bedrooms, err = strconv.Atoi(args[0])
	} else {
		location = args[0]
		bedrooms, err = strconv.Atoi(args[1])
	}
	if err != nil {
		fmt.Println("❌ Error: Bedrooms must be a number (1-4)")
		return
	}
	if !*compare && len(args) >= 3 {
		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Println("❌ Error: Asking price must be a number")
			return
		}
		asking = &price
	}

	application := app.New(cfg, logger)
	defer application.Close()

	ctx := context.Background()
	if err := application.Init(ctx); err != nil {
		logger.Error("initialization failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	est := application.Estimator()

	if *compare {
		cmp, err := est.CompareTiers(ctx, bedrooms)
		if err != nil {
			fmt.Println(render.Error(err))
			return
		}
		fmt.Println(render.Comparison(cmp))
		return
	}

	pred, err := est.Predict(ctx, location, bedrooms, asking)
	if err != nil {
		fmt.Println(render.Error(err))
		return
	}
	fmt.Println(render.Report(pred))
}

func printUsage() {
	fmt.Println("🏠 Naija-Rent-Estimator - The Rent Oracle")
	fmt.Println()
	fmt.Println("📖 Usage:")
	fmt.Println("  rentoracle <location> <bedrooms> [asking_price]")
	fmt.Println("  rentoracle -compare <bedrooms>")
	fmt.Println()
	fmt.Println("💡 Examples:")
	fmt.Println("  rentoracle 'Lekki Phase 1' 2")
	fmt.Println("  rentoracle 'Yaba' 1 700000")
	fmt.Println("  rentoracle 'Victoria Island' 3 8000000")
	fmt.Println()
	fmt.Println("🗺️  Available Locations (15):")
	fmt.Println("  • Luxury: Victoria Island, Ikoyi")
	fmt.Println("  • Premium: Lekki Phase 1, Lekki Phase 2, Magodo")
	fmt.Println("  • Mid-Range: Yaba, Ikeja, Surulere, Gbagada, Festac Town, Ojodu")
	fmt.Println("  • Affordable: Ajah, Ikorodu, Isolo")
	fmt.Println("  • Budget: Agege")
}
