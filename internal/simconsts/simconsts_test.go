package simconsts

import (
	"errors"
	"testing"
)

func TestDirectionSign(t *testing.T) {
	cases := map[Direction]int{Up: 1, Down: -1, Idle: 0}
	for dir, sign := range cases {
		if dir.Sign() != sign {
			t.Errorf("%v.Sign() = %d, expected %d", dir, dir.Sign(), sign)
		}
	}
	if Up.Opposite() != Down || Down.Opposite() != Up || Idle.Opposite() != Idle {
		t.Errorf("Opposite() returned an unexpected direction")
	}
}

func TestDirectionOf(t *testing.T) {
	if DirectionOf(1, 5) != Up {
		t.Errorf("DirectionOf(1, 5) = %v, expected Up", DirectionOf(1, 5))
	}
	if DirectionOf(5, 1) != Down {
		t.Errorf("DirectionOf(5, 1) = %v, expected Down", DirectionOf(5, 1))
	}
	if DirectionOf(3, 3) != Idle {
		t.Errorf("DirectionOf(3, 3) = %v, expected Idle", DirectionOf(3, 3))
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		name     string
		expected Strategy
	}{
		{"SpeedFirst", SpeedFirst},
		{"speed-first", SpeedFirst},
		{"LOAD_BALANCING", LoadBalancing},
		{"power saving", PowerSaving},
		{"power", PowerSaving},
	}
	for _, c := range cases {
		got, err := ParseStrategy(c.name)
		if err != nil {
			t.Errorf("ParseStrategy(%q) returned error %v", c.name, err)
		}
		if got != c.expected {
			t.Errorf("ParseStrategy(%q) = %v, expected %v", c.name, got, c.expected)
		}
	}

	_, err := ParseStrategy("fastest")
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(\"fastest\") error = %v, expected ErrUnknownStrategy", err)
	}
}

func TestStrings(t *testing.T) {
	if Strategy(7).String() != "Undefined" || Strategy(7).Valid() {
		t.Errorf("Strategy(7) should be undefined and invalid")
	}
	if StateChanging.String() != "US_Changing" {
		t.Errorf("StateChanging.String() = %s", StateChanging.String())
	}
	if Direction(9).String() != "Undefined" {
		t.Errorf("Direction(9).String() = %s", Direction(9).String())
	}
}
