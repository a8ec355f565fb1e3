package simcmd

import (
	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
)

type SimulatorCommand struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

type AddRandomPassengerCommand struct {
}

// Adds a batch of random passengers across every level
type TestCaseCommand struct {
}

type SetStrategyCommand struct {
	Strategy simconsts.Strategy
}

// Places every idle elevator at a random level
type RandomizeCommand struct {
}

type PrintStateCommand struct {
}

// Asks for pickups at every level that still has passengers waiting
type RedispatchCommand struct {
}

type QuitCommand struct {
}

func (c *SimulatorCommand) CommandType() string {
	switch c.Value.(type) {
	case AddRandomPassengerCommand:
		return "AddRandomPassengerCommand"
	case TestCaseCommand:
		return "TestCaseCommand"
	case SetStrategyCommand:
		return "SetStrategyCommand"
	case RandomizeCommand:
		return "RandomizeCommand"
	case PrintStateCommand:
		return "PrintStateCommand"
	case RedispatchCommand:
		return "RedispatchCommand"
	case QuitCommand:
		return "QuitCommand"
	default:
		return "UnknownCommand"
	}
}

// FromKey maps a terminal key to a command. ok is false for unbound keys.
func FromKey(char rune) (SimulatorCommand, bool) {
	switch char {
	case '1':
		return SimulatorCommand{Value: SetStrategyCommand{Strategy: simconsts.SpeedFirst}}, true
	case '2':
		return SimulatorCommand{Value: SetStrategyCommand{Strategy: simconsts.LoadBalancing}}, true
	case '3':
		return SimulatorCommand{Value: SetStrategyCommand{Strategy: simconsts.PowerSaving}}, true
	case 'a', 'A':
		return SimulatorCommand{Value: AddRandomPassengerCommand{}}, true
	case 't', 'T':
		return SimulatorCommand{Value: TestCaseCommand{}}, true
	case 'r', 'R':
		return SimulatorCommand{Value: RandomizeCommand{}}, true
	case 's', 'S':
		return SimulatorCommand{Value: PrintStateCommand{}}, true
	case 'd', 'D':
		return SimulatorCommand{Value: RedispatchCommand{}}, true
	case 'q', 'Q':
		return SimulatorCommand{Value: QuitCommand{}}, true
	default:
		return SimulatorCommand{}, false
	}
}
