package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug              = "debug"
	ConfigSeed               = "seed"
	ConfigSearchDepth        = "search-depth"
	ConfigRootWidth          = "root-width"
	ConfigSearchWidth        = "search-width"
	ConfigNarrowWidth        = "narrow-width"
	ConfigCacheDepthMargin   = "cache-depth-margin"
	ConfigThreads            = "threads"
	ConfigTranspositionTable = "transposition-table"
	ConfigTTableMemFraction  = "ttable-mem-fraction"
	ConfigCPUProfile         = "cpu-profile"
	ConfigHistoryFile        = "history-file"
	ConfigGames              = "games"
	ConfigGamesOut           = "games-out"
	ConfigSeedsFile          = "seeds-file"
	ConfigSaveSeeds          = "save-seeds"
	ConfigDebugAddr          = "debug-addr"
)

type Config struct {
	*viper.Viper
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("gomoku", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Uint64(ConfigSeed, 0, "seed for the engine's random source; 0 picks one from the clock")
	fs.Int(ConfigSearchDepth, 4, "plies searched, counting the candidate move itself")
	fs.Int(ConfigRootWidth, 10, "candidates searched at the root")
	fs.Int(ConfigSearchWidth, 25, "candidates searched at inner nodes")
	fs.Int(ConfigNarrowWidth, 20, "candidates searched when two or fewer plies remain")
	fs.Int(ConfigCacheDepthMargin, 2, "only nodes at least this many plies below the top use the transposition table")
	fs.Int(ConfigThreads, 1, "threads used for the root search; self-play instead runs this many games at once")
	fs.Bool(ConfigTranspositionTable, true, "use the transposition table")
	fs.Float64(ConfigTTableMemFraction, 0.05, "fraction of system memory the transposition table may use")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigHistoryFile, "", "shell history file; defaults to one in the XDG state directory")
	fs.Int(ConfigGames, 100, "self-play: number of games")
	fs.String(ConfigGamesOut, "", "self-play: write the per-move CSV here")
	fs.String(ConfigSeedsFile, "", "self-play: read game seeds from this file instead of generating them")
	fs.String(ConfigSaveSeeds, "", "self-play: write the generated seeds here")
	fs.String(ConfigDebugAddr, "", "self-play: serve progress counters on this address, e.g. localhost:8088")
	return fs
}

// Load parses command-line args on top of the defaults. Any key can also be
// set from the environment, e.g. GOMOKU_SEARCH_DEPTH=5.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("gomoku")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// DefaultConfig returns the configuration with no arguments given.
func DefaultConfig() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// SanitizedSettings returns every setting, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
