package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory   = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Keyboard    = kingpin.Flag("keyboard", "Keyboard event device, needed for release events").Default("/dev/input/event0").Short('K').String()
	Speed       = kingpin.Flag("speed", "Scroll speed in units per frame").Default("5").Short('s').Float64()
	Delay       = kingpin.Flag("delay", "Start delay before audio playback").Default("1.5s").Short('d').Duration()
	FramePeriod = kingpin.Flag("frame-period", "Simulation/render frame period").Default("16666us").Short('p').Duration()
	Spacing     = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
)

// Lane key codes for the event device, a s d f on a pc keyboard.
var keyCodes = [...]uint16{30, 31, 32, 33}

// Key names for the menu and hit field, leftmost lane first.
var keyNames = [...]rune{'a', 's', 'd', 'f'}

func KeyName(lane int) rune {
	return keyNames[lane]
}

// KeyLane maps an event device key code to a lane index, or -1 when the
// key is not bound to any lane.
func KeyLane(code uint16) int {
	for i, c := range keyCodes {
		if code == c {
			return i
		}
	}
	return -1
}

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}
