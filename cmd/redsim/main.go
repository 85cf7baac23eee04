package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/timothestes/redemption-probability-simulation/internal/decklist"
	"github.com/timothestes/redemption-probability-simulation/internal/game"
	"github.com/timothestes/redemption-probability-simulation/internal/sim"
	"github.com/timothestes/redemption-probability-simulation/internal/simlog"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "sweep":
		runSweep(os.Args[2:])
	case "spectro":
		runSpectro(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  redsim sweep   [--config FILE] [--n_simulations N] [--n_turns N] [--going_first] [--include_hopper] [--seed N] [--workers N] [--log FILE]")
	fmt.Println("  redsim spectro --deck FILE [--n_simulations N] [--cycler_logic MODE] [--crowds_weight W] [--matthew_fizzle_rate R] [--seed N] [--workers N] [--log FILE]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sweep    Sweep synthetic deck recipes and log one row per turn")
	fmt.Println("  spectro  Estimate opposing Matthew draws for a real deck file")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a sweep YAML file")
	nSimulations := fs.Int("n_simulations", 0, "number of trials per grid cell (overrides config)")
	nTurns := fs.Int("n_turns", 0, "turns per trial (overrides config)")
	goingFirst := fs.Bool("going_first", false, "skip the draw on turn one")
	includeHopper := fs.Bool("include_hopper", false, "add the hopper soul to every deck")
	cyclerLogic := fs.String("cycler_logic", "", "cycler selection logic: random or optimized")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	workers := fs.Int("workers", 1, "worker goroutines per grid cell")
	logPath := fs.String("log", "", "log file path (overrides config and env)")
	fs.Parse(args)

	envCfg, err := decklist.ConfigFromEnv()
	if err != nil {
		fatal(err)
	}

	cfg := sim.DefaultSweepConfig()
	if *configPath != "" {
		cfg, err = sim.LoadSweepFile(*configPath)
		if err != nil {
			fatal(err)
		}
	}
	// Precedence for the log location: --log, then REDSIM_LOG_FILE, then
	// the sweep file or default.
	if envCfg.LogPath != "" {
		cfg.LogPath = envCfg.LogPath
	}
	if *nSimulations > 0 {
		cfg.NSimulations = *nSimulations
	}
	if *nTurns > 0 {
		cfg.NTurns = *nTurns
	}
	if *goingFirst {
		cfg.GoingFirst = true
	}
	if *includeHopper {
		cfg.IncludeHopper = true
	}
	if *cyclerLogic != "" {
		cfg.CyclerLogic = *cyclerLogic
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *workers > 1 {
		cfg.Workers = *workers
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	sink, err := simlog.CreateCSVFile(cfg.LogPath)
	if err != nil {
		fatal(err)
	}
	if err := sink.WriteHeader(simlog.TurnRecord{}.Header()); err != nil {
		fatal(err)
	}

	runID := uuid.NewString()
	ctx := context.Background()
	for _, cell := range cfg.Cells(runID) {
		cell := cell
		runner := &sim.Runner{
			Trials:  cfg.NSimulations,
			Workers: cfg.Workers,
			Seed:    cfg.Seed,
			Sink:    sink,
			NewDriver: func() (sim.Driver, error) {
				return sim.NewTrial(cell)
			},
		}
		if err := runner.Run(ctx); err != nil {
			fatal(err)
		}
	}
	if err := sink.Close(); err != nil {
		fatal(err)
	}

	fmt.Printf("run %s complete\n", runID)
	printFileSize(cfg.LogPath)
}

func runSpectro(args []string) {
	fs := flag.NewFlagSet("spectro", flag.ExitOnError)
	deckPath := fs.String("deck", "", "path to a deck file (txt)")
	nSimulations := fs.Int("n_simulations", 50, "number of trials to run")
	cyclerLogic := fs.String("cycler_logic", "random", "cycler selection logic: random or optimized")
	crowdsWeight := fs.Float64("crowds_weight", 0.6, "fraction of games the opponent answers the Crowds soul (0-1)")
	fizzleRate := fs.Float64("matthew_fizzle_rate", 0.15, "fraction of games the opponent never plays Matthew (0-1)")
	accountForCrowds := fs.Bool("account_for_crowds", true, "model the Crowds soul's hand protection")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	workers := fs.Int("workers", 1, "worker goroutines")
	logPath := fs.String("log", "matthew_game_log.csv", "log file path")
	cardData := fs.String("carddata", "", "path to the card database TSV (overrides env)")
	fs.Parse(args)

	if *deckPath == "" {
		fatal(fmt.Errorf("spectro requires --deck"))
	}
	if *crowdsWeight < 0 || *crowdsWeight > 1 {
		fatal(fmt.Errorf("crowds_weight %v is not between 0 and 1", *crowdsWeight))
	}
	if *fizzleRate < 0 || *fizzleRate > 1 {
		fatal(fmt.Errorf("matthew_fizzle_rate %v is not between 0 and 1", *fizzleRate))
	}

	envCfg, err := decklist.ConfigFromEnv()
	if err != nil {
		fatal(err)
	}
	cardDataPath := envCfg.CardDataPath
	if *cardData != "" {
		cardDataPath = *cardData
	}

	meta, _, warnings, err := decklist.LoadDeck(*deckPath, cardDataPath)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	if err != nil {
		fatal(err)
	}
	template, err := game.BuildFromMetadata(meta)
	if err != nil {
		fatal(err)
	}

	sink, err := simlog.CreateCSVFile(*logPath)
	if err != nil {
		fatal(err)
	}
	if err := sink.WriteHeader(simlog.SpectroRecord{}.Header()); err != nil {
		fatal(err)
	}

	runID := uuid.NewString()
	cfg := sim.SpectroConfig{
		Policy:                game.ParseSelectionPolicy(*cyclerLogic),
		RunID:                 runID,
		AccountForCrowds:      *accountForCrowds,
		CrowdsIneffectiveness: *crowdsWeight,
		FizzleRate:            *fizzleRate,
	}
	runner := &sim.Runner{
		Trials:  *nSimulations,
		Workers: *workers,
		Seed:    *seed,
		Sink:    sink,
		NewDriver: func() (sim.Driver, error) {
			return sim.NewSpectroTrial(template, cfg), nil
		},
	}
	if err := runner.Run(context.Background()); err != nil {
		fatal(err)
	}
	if err := sink.Close(); err != nil {
		fatal(err)
	}

	if err := printSpectroSummary(*logPath); err != nil {
		fatal(err)
	}
}

// printSpectroSummary re-reads the log and prints the mean of the
// n_cards_matthew_drew column.
func printSpectroSummary(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		fmt.Println("No valid data found")
		return nil
	}

	col := -1
	for i, h := range rows[0] {
		if h == "n_cards_matthew_drew" {
			col = i
			break
		}
	}
	if col < 0 {
		fmt.Println("No valid data found")
		return nil
	}

	sum, count := 0.0, 0
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		fmt.Println("No valid data found")
		return nil
	}
	fmt.Printf("Average number of cards Matthew drew: %g\n", sum/float64(count))
	return nil
}

// printFileSize reports the size of the produced log file in kilobytes.
func printFileSize(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	fmt.Printf("The size of %q is %.1f kilobytes\n", path, float64(info.Size())/1024)
}
