package simutils

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconfig"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return gitHash
}

type Options struct {
	ConfigPath string
	EnvPath    string
	Identifier string
	Debug      bool
	Help       bool
	Version    bool

	levels    int
	elevators int
	capacity  int
	strategy  string
	set       map[string]bool //flags given on the command line

	printDefaults func(w io.Writer)
}

// ParseArgs reads the command line. Building shape and strategy flags only
// override the configuration when they are given explicitly.
func ParseArgs(args []string, output io.Writer) (Options, error) {
	var o Options
	defaults := simconfig.Default()

	fs := flag.NewFlagSet("elevatorsim", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&o.Help, "help", false, "Show Help Window")
	fs.BoolVar(&o.Version, "version", false, "Show Version")
	fs.BoolVar(&o.Debug, "debug", false, "Log at debug level")
	fs.StringVar(&o.Identifier, "id", "", "Set the identifier of the session. Defaults to random string")
	fs.StringVar(&o.ConfigPath, "config", "", "Load a YAML configuration file")
	fs.StringVar(&o.EnvPath, "env", "", "Load ELEVATORSIM_* overrides from a .env file")
	fs.IntVar(&o.levels, "levels", defaults.Levels, "Number of levels in the building")
	fs.IntVar(&o.elevators, "elevators", defaults.Elevators, "Number of elevators in the building")
	fs.IntVar(&o.capacity, "capacity", defaults.Capacity, "Passengers each elevator can carry")
	fs.StringVar(&o.strategy, "strategy", defaults.Strategy, "Dispatching strategy: SpeedFirst, LoadBalancing or PowerSaving")

	o.printDefaults = func(w io.Writer) {
		fs.SetOutput(w)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		o.set[f.Name] = true
	})
	return o, nil
}

// Apply writes the explicitly given flags into c.
func (o Options) Apply(c *simconfig.Config) {
	if o.set["levels"] {
		c.Levels = o.levels
	}
	if o.set["elevators"] {
		c.Elevators = o.elevators
	}
	if o.set["capacity"] {
		c.Capacity = o.capacity
	}
	if o.set["strategy"] {
		c.Strategy = o.strategy
	}
}

func ProcessCmdArgs() Options {
	options, err := ParseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if options.Version {
		fmt.Println("Version:", GetGitHash())
		os.Exit(0)
	}

	if options.Help {
		fmt.Println("Usage: ./elevatorsim [OPTIONS]")
		fmt.Println("Multi-elevator building simulator")
		fmt.Println()
		fmt.Println("Options:")
		options.printDefaults(os.Stdout)
		fmt.Println()
		fmt.Println("Keys:")
		fmt.Println("	1/2/3	SpeedFirst / LoadBalancing / PowerSaving")
		fmt.Println("	a	add a random passenger")
		fmt.Println("	t	add a batch of random passengers on every level")
		fmt.Println("	r	place idle elevators at random levels")
		fmt.Println("	s	print the state of every elevator")
		fmt.Println("	d	redispatch passengers left waiting")
		fmt.Println("	q	quit")
		os.Exit(0)
	}

	return options
}
