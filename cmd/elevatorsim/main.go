package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/logger"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simcmd"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconfig"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simulator"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simutils"
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simview"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func loadConfig(options simutils.Options) simconfig.Config {
	cfg := simconfig.Default()
	if options.ConfigPath != "" {
		if err := cfg.Load(options.ConfigPath); err != nil {
			Logger.Fatal().Err(err).Msg("Error loading configuration")
		}
	}
	if options.EnvPath != "" {
		if err := cfg.LoadEnv(options.EnvPath); err != nil {
			Logger.Fatal().Err(err).Msg("Error loading .env file")
		}
	}
	options.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		Logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	return cfg
}

// handle runs one command and reports whether the programme should quit.
func handle(sim *simulator.Simulator, console *simview.Console, command simcmd.SimulatorCommand) bool {
	Logger.Debug().Msgf("Received %s", command.CommandType())

	switch value := command.Value.(type) {
	case simcmd.AddRandomPassengerCommand:
		if _, err := sim.AddRandomPassenger(); err != nil {
			Logger.Error().Err(err).Msg("Could not add passenger")
		}
	case simcmd.TestCaseCommand:
		assignments, err := sim.AddTestCase()
		if err != nil {
			Logger.Error().Err(err).Msg("Test case stopped early")
		}
		Logger.Info().Msgf("Test case added %d passengers", len(assignments))
	case simcmd.SetStrategyCommand:
		if err := sim.SetStrategy(value.Strategy); err != nil {
			Logger.Error().Err(err).Msg("Could not change strategy")
		}
	case simcmd.RandomizeCommand:
		sim.Randomize()
	case simcmd.PrintStateCommand:
		fmt.Print(console.FormatState(sim.Snapshot(), sim.Waiting()))
	case simcmd.RedispatchCommand:
		Logger.Info().Msgf("Redispatched %d levels", len(sim.RedispatchAll()))
	case simcmd.QuitCommand:
		return true
	}
	return false
}

func main() {
	options := simutils.ProcessCmdArgs()
	if options.Debug {
		logger.GetLoggerConfigured(zerolog.DebugLevel)
	}
	cfg := loadConfig(options)

	// Starting Programme
	Logger.Info().Msg("Starting Elevator Simulator")

	sim := simulator.NewSimulator(cfg, options.Identifier)
	if err := sim.CreateBuilding(cfg.Levels, cfg.Elevators, cfg.Capacity); err != nil {
		Logger.Fatal().Err(err).Msg("Error creating building")
	}
	defer sim.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	waitGroup := &sync.WaitGroup{}
	console := simview.NewConsole(sim, cfg.PollInterval)
	console.Start(ctx, waitGroup)
	defer func() {
		cancel()
		waitGroup.Wait()
	}()

	if err := keyboard.Open(); err != nil {
		Logger.Warn().Err(err).Msg("No terminal keyboard, running until interrupted")
		<-ctx.Done()
		return
	}
	defer keyboard.Close()

	Logger.Info().Msg("Press 1/2/3 for a strategy, a t r s d for actions, q to quit")
	keys := make(chan keyPress)
	go readKeys(keys)

	for {
		select {
		case <-ctx.Done():
			return
		case press := <-keys:
			if press.err != nil {
				Logger.Error().Err(press.err).Msg("Keyboard error")
				return
			}
			if press.key == keyboard.KeyCtrlC || press.key == keyboard.KeyEsc {
				return
			}
			command, ok := simcmd.FromKey(press.char)
			if !ok {
				continue
			}
			if handle(sim, console, command) {
				return
			}
		}
	}
}

type keyPress struct {
	char rune
	key  keyboard.Key
	err  error
}

// readKeys forwards key presses until the keyboard is closed.
func readKeys(keys chan<- keyPress) {
	for {
		char, key, err := keyboard.GetKey()
		keys <- keyPress{char: char, key: key, err: err}
		if err != nil {
			return
		}
	}
}
