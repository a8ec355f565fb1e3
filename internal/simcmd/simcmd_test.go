package simcmd

import (
	"testing"

	"github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"
)

func TestCommandType(t *testing.T) {
	simulatorCommandArray := []SimulatorCommand{
		{Value: AddRandomPassengerCommand{}},
		{Value: TestCaseCommand{}},
		{Value: SetStrategyCommand{}},
		{Value: RandomizeCommand{}},
		{Value: PrintStateCommand{}},
		{Value: RedispatchCommand{}},
		{Value: QuitCommand{}},
		{Value: struct{}{}},
	}

	simulatorCommandStringArray := []string{
		"AddRandomPassengerCommand",
		"TestCaseCommand",
		"SetStrategyCommand",
		"RandomizeCommand",
		"PrintStateCommand",
		"RedispatchCommand",
		"QuitCommand",
		"UnknownCommand",
	}

	for index, simulatorCommand := range simulatorCommandArray {
		if simulatorCommand.CommandType() != simulatorCommandStringArray[index] {
			t.Errorf("SimulatorCommand.CommandType() returned %v, expected %v", simulatorCommand.CommandType(), simulatorCommandStringArray[index])
		}
	}
}

func TestFromKey(t *testing.T) {
	keys := map[rune]string{
		'1': "SetStrategyCommand",
		'a': "AddRandomPassengerCommand",
		'R': "RandomizeCommand",
		't': "TestCaseCommand",
		's': "PrintStateCommand",
		'd': "RedispatchCommand",
		'q': "QuitCommand",
	}
	for key, expected := range keys {
		command, ok := FromKey(key)
		if !ok || command.CommandType() != expected {
			t.Errorf("FromKey(%q) = %v, %v, expected %v", key, command.CommandType(), ok, expected)
		}
	}

	command, _ := FromKey('3')
	if command.Value.(SetStrategyCommand).Strategy != simconsts.PowerSaving {
		t.Errorf("FromKey('3') should select PowerSaving, got %+v", command.Value)
	}

	if _, ok := FromKey('x'); ok {
		t.Errorf("FromKey('x') should not be bound")
	}
}
