package evdev

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// EvType describes an event type (EV_KEY, EV_REL, ...).
type EvType uint16

// EvCode describes an event code within a type (KEY_A, REL_X, ...).
type EvCode uint16

// InputEvent describes an event that is generated by or injected into an
// input device. Its layout matches the kernel's struct input_event, so it
// can be read from and written to event nodes verbatim.
type InputEvent struct {
	Time  unix.Timeval // time when event occurred
	Type  EvType       // event type - one of EV_*
	Code  EvCode       // event code related to the event type
	Value int32        // event value related to the event type
}

// TypeName returns the name of the event's type as string, or "unknown"
// if the type is not valid.
func (e *InputEvent) TypeName() string {
	return TypeName(e.Type)
}

// CodeName returns the name of the event's code as string, or "unknown"
// if the code is not valid.
func (e *InputEvent) CodeName() string {
	return CodeName(e.Type, e.Code)
}

func (e *InputEvent) String() string {
	return fmt.Sprintf("type: %02x [%s], code: %03x [%s], value: %d",
		e.Type, e.TypeName(), e.Code, e.CodeName(), e.Value)
}

// InputID identifies a device to user space consumers: its bus type and
// the vendor/product/version tuple. Layout matches the kernel's
// struct input_id.
type InputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// uinputSetup matches the kernel's struct uinput_setup, the record handed
// to UI_DEV_SETUP when a virtual device is finalized.
type uinputSetup struct {
	ID           InputID
	Name         [uinputMaxNameSize]byte
	FFEffectsMax uint32
}

// StateMap reports, for each declared code of one event type, whether that
// code is currently active (key held, LED lit, switch closed).
type StateMap map[EvCode]bool
