package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/timothestes/redemption-probability-simulation/internal/game"
)

// SweepConfig is the YAML description of a parameter sweep: the grid of
// deck shapes to simulate and the shared run settings.
type SweepConfig struct {
	NSimulations  int    `yaml:"n_simulations"`
	NTurns        int    `yaml:"n_turns"`
	DeckSizes     []int  `yaml:"deck_sizes"`
	TutorCounts   []int  `yaml:"tutor_counts"`
	CyclerCounts  []int  `yaml:"cycler_counts"`
	GoingFirst    bool   `yaml:"going_first"`
	IncludeHopper bool   `yaml:"include_hopper"`
	CyclerLogic   string `yaml:"cycler_logic"`
	Seed          int64  `yaml:"seed"`
	Workers       int    `yaml:"workers"`
	LogPath       string `yaml:"log_path"`
}

// DefaultSweepConfig mirrors the historical defaults of the tool.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		NSimulations: 5000,
		NTurns:       1,
		DeckSizes:    []int{50},
		TutorCounts:  []int{0, 1, 2, 3, 4, 5, 6, 7, 8},
		CyclerCounts: []int{0, 1, 2},
		LogPath:      "game_log.csv",
	}
}

// LoadSweepFile reads a sweep YAML file, filling unset fields from the
// defaults.
func LoadSweepFile(path string) (SweepConfig, error) {
	cfg := DefaultSweepConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse sweep YAML: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects grids that cannot produce a run.
func (c SweepConfig) Validate() error {
	if c.NSimulations <= 0 {
		return fmt.Errorf("sweep config: n_simulations must be positive")
	}
	if c.NTurns <= 0 {
		return fmt.Errorf("sweep config: n_turns must be positive")
	}
	if len(c.DeckSizes) == 0 || len(c.TutorCounts) == 0 || len(c.CyclerCounts) == 0 {
		return fmt.Errorf("sweep config: deck_sizes, tutor_counts, and cycler_counts must be non-empty")
	}
	return nil
}

// Cells expands the grid into one TrialConfig per combination, in the same
// nesting order the log has always used: deck size, then tutors, then
// cyclers.
func (c SweepConfig) Cells(runID string) []TrialConfig {
	policy := game.ParseSelectionPolicy(c.CyclerLogic)
	var cells []TrialConfig
	for _, size := range c.DeckSizes {
		for _, tutors := range c.TutorCounts {
			for _, cyclers := range c.CyclerCounts {
				cells = append(cells, TrialConfig{
					Recipe: game.Recipe{
						DeckSize:      size,
						NTutors:       tutors,
						NCyclerSouls:  cyclers,
						IncludeHopper: c.IncludeHopper,
					},
					NTurns:     c.NTurns,
					GoingFirst: c.GoingFirst,
					Policy:     policy,
					RunID:      runID,
				})
			}
		}
	}
	return cells
}
