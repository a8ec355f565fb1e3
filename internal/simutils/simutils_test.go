package simutils

import (
	"io"
	"testing"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconfig"
)

func TestParseArgs(t *testing.T) {
	options, err := ParseArgs([]string{"-config", "sim.yaml", "-id", "lobby", "-debug"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseArgs() returned %v", err)
	}
	if options.ConfigPath != "sim.yaml" || options.Identifier != "lobby" || !options.Debug {
		t.Errorf("ParseArgs() = %+v", options)
	}
	if options.Help || options.Version {
		t.Errorf("Help and Version should default to false")
	}

	if _, err := ParseArgs([]string{"-levels", "ten"}, io.Discard); err == nil {
		t.Errorf("ParseArgs() should reject a non-numeric level count")
	}
}

func TestApplyOnlyExplicitFlags(t *testing.T) {
	c := simconfig.Default()
	c.Levels = 15
	c.Elevators = 5

	options, err := ParseArgs([]string{"-elevators", "2", "-strategy", "power"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseArgs() returned %v", err)
	}
	options.Apply(&c)

	if c.Levels != 15 {
		t.Errorf("Levels = %d, an absent flag must not override the configuration", c.Levels)
	}
	if c.Elevators != 2 || c.Strategy != "power" {
		t.Errorf("Explicit flags were not applied: %+v", c)
	}
}

func TestGetGitHash(t *testing.T) {
	if len(GetGitHash()) == 0 {
		t.Errorf("GetGitHash() returned an empty string")
	}
}
