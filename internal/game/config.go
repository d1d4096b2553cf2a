package game

import (
	"os"
	"strconv"

	"github.com/samdwyer/memorymatch/internal/logging"
	"github.com/samdwyer/memorymatch/internal/ui"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvPairs         = "MEMORYMATCH_PAIRS"
	EnvSeed          = "MEMORYMATCH_SEED"
	EnvPlayerOne     = "MEMORYMATCH_PLAYER_ONE"
	EnvPlayerTwo     = "MEMORYMATCH_PLAYER_TWO"
	EnvLogFile       = "MEMORYMATCH_LOG_FILE"
	EnvLogLevel      = "LOG_LEVEL"
	EnvCardColor     = "MEMORYMATCH_CARD_COLOR"
	EnvHoverColor    = "MEMORYMATCH_HOVER_COLOR"
	EnvSelectedColor = "MEMORYMATCH_SELECTED_COLOR"
)

// Config holds game configuration options.
type Config struct {
	// PairsFile is the pair list to play with. Empty uses the built-in list.
	PairsFile string

	// Seed for random number generation. Used for reproducible layouts and
	// starting player. A seed of 0 means a random seed will be generated.
	Seed int64

	PlayerNames [2]string
	Colors      ui.Colors

	LogFile  string
	LogLevel string

	// Telemetry enables OTLP trace export.
	Telemetry bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		PlayerNames: [2]string{"Player 1", "Player 2"},
		Colors:      ui.DefaultColors(),
		LogFile:     logging.DefaultFile,
		LogLevel:    "info",
	}
}

// ConfigFromEnv overlays environment variables on the defaults. Unparseable
// numbers are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.PairsFile, EnvPairs)
	setString(&cfg.PlayerNames[0], EnvPlayerOne)
	setString(&cfg.PlayerNames[1], EnvPlayerTwo)
	setString(&cfg.LogFile, EnvLogFile)
	setString(&cfg.LogLevel, EnvLogLevel)
	setString(&cfg.Colors.Card, EnvCardColor)
	setString(&cfg.Colors.Hover, EnvHoverColor)
	setString(&cfg.Colors.Selected, EnvSelectedColor)

	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
