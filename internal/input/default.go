package input

import (
	"encoding/binary"
	"log"
	"os"
	"syscall"
)

// Linux input-event-codes. Only EV_KEY events matter here; they carry the
// press/release transitions the hold-sustain logic needs, which the
// cooked terminal input cannot deliver.
const (
	evKey = 0x01

	valueRelease = 0
	valuePress   = 1
)

// CodeEsc is the event code of the escape key.
const CodeEsc uint16 = 1

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

type Event struct {
	Pressed  bool
	Released bool
	// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
	Code uint16
	Time syscall.Timeval
}

// ReadInput streams key events from an event device into events. Reading
// stops on the first error, which includes the device going away.
func ReadInput(kbd string, events chan *Event) error {
	file, err := os.Open(kbd)
	if nil != err {
		return err
	}
	go func() {
		defer file.Close()

		var ev keyEvent
		for {
			if err := binary.Read(file, binary.LittleEndian, &ev); nil != err {
				log.Println("unable to read keyboard input:", err)
				return
			}
			if ev.Type != evKey {
				continue
			}
			if ev.Value != valuePress && ev.Value != valueRelease {
				// key repeat
				continue
			}
			events <- &Event{
				Pressed:  ev.Value == valuePress,
				Released: ev.Value == valueRelease,
				Code:     ev.Code,
				Time:     ev.Time,
			}
		}
	}()
	return nil
}
