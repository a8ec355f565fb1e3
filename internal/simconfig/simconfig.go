package simconfig

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/building"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
)

var Log = logger.GetLogger()

var (
	ErrReadConfig    = errors.New("cannot read configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

const ENV_PREFIX = "ELEVATORSIM_"

type Config struct {
	Levels             int           `yaml:"levels"`
	Elevators          int           `yaml:"elevators"`
	Capacity           int           `yaml:"capacity"`
	Strategy           string        `yaml:"strategy"`
	FloorInterval      time.Duration `yaml:"floor_interval"`
	PassInterval       time.Duration `yaml:"pass_interval"`
	PollInterval       time.Duration `yaml:"poll_interval"` // how often the console drains events
	EventWarnThreshold int           `yaml:"event_warn_threshold"`
}

func Default() Config {
	return Config{
		Levels:             10,
		Elevators:          3,
		Capacity:           8,
		Strategy:           simconsts.SpeedFirst.String(),
		FloorInterval:      simconsts.FLOOR_INTERVAL,
		PassInterval:       simconsts.PASS_INTERVAL,
		PollInterval:       50 * time.Millisecond,
		EventWarnThreshold: 1000,
	}
}

// Load overlays the YAML file at path on c. Keys missing from the file keep
// their current values.
func (c *Config) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}
	Log.Debug().Msgf("Loaded configuration from %s", path)
	return nil
}

// LoadEnv overlays the ELEVATORSIM_* keys of a .env file on c.
func (c *Config) LoadEnv(path string) error {
	envFile, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	if err := c.ApplyEnv(envFile); err != nil {
		return err
	}
	Log.Debug().Msgf("Loaded environment overrides from %s", path)
	return nil
}

func (c *Config) ApplyEnv(env map[string]string) error {
	ints := map[string]*int{
		"LEVELS":               &c.Levels,
		"ELEVATORS":            &c.Elevators,
		"CAPACITY":             &c.Capacity,
		"EVENT_WARN_THRESHOLD": &c.EventWarnThreshold,
	}
	for key, field := range ints {
		raw, ok := env[ENV_PREFIX+key]
		if !ok {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, ENV_PREFIX, key, raw)
		}
		*field = value
	}

	durations := map[string]*time.Duration{
		"FLOOR_INTERVAL": &c.FloorInterval,
		"PASS_INTERVAL":  &c.PassInterval,
		"POLL_INTERVAL":  &c.PollInterval,
	}
	for key, field := range durations {
		raw, ok := env[ENV_PREFIX+key]
		if !ok {
			continue
		}
		value, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a duration", ErrInvalidConfig, ENV_PREFIX, key, raw)
		}
		*field = value
	}

	if raw, ok := env[ENV_PREFIX+"STRATEGY"]; ok {
		c.Strategy = raw
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := simconsts.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive, got %v", ErrInvalidConfig, c.PollInterval)
	}
	if err := c.BuildingConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// StrategyValue parses Strategy, falling back to SpeedFirst.
func (c Config) StrategyValue() simconsts.Strategy {
	strategy, err := simconsts.ParseStrategy(c.Strategy)
	if err != nil {
		Log.Warn().Err(err).Msg("Falling back to SpeedFirst")
		return simconsts.SpeedFirst
	}
	return strategy
}

func (c Config) BuildingConfig() building.Config {
	return building.Config{
		Levels:             c.Levels,
		Elevators:          c.Elevators,
		Capacity:           c.Capacity,
		FloorInterval:      c.FloorInterval,
		PassInterval:       c.PassInterval,
		EventWarnThreshold: c.EventWarnThreshold,
	}
}
