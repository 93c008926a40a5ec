package evdev

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// InputDevice represents a Linux kernel input device node in user space:
// the read side of the event protocol. It can introspect the capabilities
// a device declared, query its current state and read its event stream.
type InputDevice struct {
	file          *os.File
	driverVersion int32
}

// Open creates a new InputDevice from the given path. Returns an error if
// the device node could not be opened or does not speak the evdev protocol.
func Open(path string) (*InputDevice, error) {
	return OpenWithFlags(path, os.O_RDWR)
}

// OpenWithFlags creates a new InputDevice from the given path, opened with
// the given flags.
func OpenWithFlags(path string, flags int) (*InputDevice, error) {
	d := &InputDevice{}

	var err error
	d.file, err = os.OpenFile(path, flags, 0)
	if err != nil {
		return nil, err
	}

	d.driverVersion, err = ioctlEVIOCGVERSION(d.file.Fd())
	if err != nil {
		d.file.Close()
		return nil, fmt.Errorf("cannot get driver version: %w", err)
	}

	return d, nil
}

// OpenByName creates a new InputDevice from the device name as reported by
// the kernel. Returns an error if no device carries that name, or the node
// could not be opened.
func OpenByName(name string) (*InputDevice, error) {
	devices, err := ListDevicePaths()
	if err != nil {
		return nil, err
	}

	for _, d := range devices {
		if d.Name == name {
			return Open(d.Path)
		}
	}

	return nil, fmt.Errorf("could not find input device with name %q", name)
}

// Close releases the resources held by an InputDevice. After calling this
// function, the InputDevice is no longer operational.
func (d *InputDevice) Close() error {
	return d.file.Close()
}

// Path returns the device's node path it was opened under.
func (d *InputDevice) Path() string {
	return d.file.Name()
}

// DriverVersion returns the version of the Linux evdev driver as its
// major, minor and micro parts.
func (d *InputDevice) DriverVersion() (int, int, int) {
	return int(d.driverVersion >> 16),
		int((d.driverVersion >> 8) & 0xff),
		int((d.driverVersion >> 0) & 0xff)
}

// Name returns the device's name as reported by the kernel.
func (d *InputDevice) Name() (string, error) {
	return ioctlEVIOCGNAME(d.file.Fd())
}

// InputID returns the device's bus identity as reported by the kernel.
func (d *InputDevice) InputID() (InputID, error) {
	return ioctlEVIOCGID(d.file.Fd())
}

// CapableTypes returns a slice of EvType the device supports.
func (d *InputDevice) CapableTypes() []EvType {
	var types []EvType

	evBits := make([]byte, int(EV_MAX)/8+1)
	if err := ioctlEVIOCGBIT(d.file.Fd(), 0, evBits); err != nil {
		return []EvType{}
	}

	for _, t := range newBitmap(evBits).setBits() {
		types = append(types, EvType(t))
	}

	return types
}

// CapableEvents returns a slice of EvCode the device supports for the
// given EvType, in ascending order.
func (d *InputDevice) CapableEvents(t EvType) []EvCode {
	var codes []EvCode

	codeBits := make([]byte, int(capabilityMax(t))/8+1)
	if err := ioctlEVIOCGBIT(d.file.Fd(), int(t), codeBits); err != nil {
		return []EvCode{}
	}

	for _, c := range newBitmap(codeBits).setBits() {
		codes = append(codes, EvCode(c))
	}

	return codes
}

// capabilityMax returns the highest code of the given category's code
// space. Categories without a bounded space in this package fall back to
// the key space, the largest of any category.
func capabilityMax(t EvType) EvCode {
	switch t {
	case EV_SYN:
		return SYN_MAX
	case EV_LED:
		return LED_MAX
	case EV_MSC:
		return MSC_MAX
	case EV_REL:
		return REL_MAX
	case EV_SW:
		return SW_MAX
	}
	return KEY_MAX
}

// State returns a StateMap for the given type: every code the device
// declared for that type, mapped to whether it is currently active. The
// map is empty if the device does not support the type; only EV_KEY,
// EV_SW and EV_LED carry queryable state.
func (d *InputDevice) State(t EvType) (StateMap, error) {
	fd := d.file.Fd()

	evBits := make([]byte, int(EV_MAX)/8+1)
	if err := ioctlEVIOCGBIT(fd, 0, evBits); err != nil {
		return nil, fmt.Errorf("cannot get event types: %w", err)
	}

	if !newBitmap(evBits).bitIsSet(int(t)) {
		return StateMap{}, nil
	}

	codeBits := make([]byte, int(capabilityMax(t))/8+1)
	if err := ioctlEVIOCGBIT(fd, int(t), codeBits); err != nil {
		return nil, fmt.Errorf("cannot get %s capabilities: %w", TypeName(t), err)
	}

	stateBits := make([]byte, int(capabilityMax(t))/8+1)

	var err error
	switch t {
	case EV_KEY:
		err = ioctlEVIOCGKEY(fd, stateBits)
	case EV_SW:
		err = ioctlEVIOCGSW(fd, stateBits)
	case EV_LED:
		err = ioctlEVIOCGLED(fd, stateBits)
	default:
		err = fmt.Errorf("unsupported evType %d", t)
	}

	if err != nil {
		return nil, err
	}

	stateBitmap := newBitmap(stateBits)
	st := StateMap{}

	for _, code := range newBitmap(codeBits).setBits() {
		st[EvCode(code)] = stateBitmap.bitIsSet(code)
	}

	return st, nil
}

// Grab grabs the device for exclusive access. No other process will
// receive input events until the grab is released.
func (d *InputDevice) Grab() error {
	return ioctlEVIOCGRAB(d.file.Fd(), 1)
}

// Ungrab releases a previously taken exclusive use with Grab().
func (d *InputDevice) Ungrab() error {
	return ioctlEVIOCGRAB(d.file.Fd(), 0)
}

// NonBlock sets the file descriptor into nonblocking mode. This way it is
// possible to interrupt ReadOne by closing the device.
func (d *InputDevice) NonBlock() error {
	return unix.SetNonblock(int(d.file.Fd()), true)
}

// ReadOne reads one InputEvent from the device. It blocks until an event
// has been received or an error has occurred.
func (d *InputDevice) ReadOne() (*InputEvent, error) {
	event := InputEvent{}

	if err := binary.Read(d.file, binary.LittleEndian, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// WriteOne writes one InputEvent to the device. Useful for controlling
// the LEDs of a device.
func (d *InputDevice) WriteOne(event *InputEvent) error {
	return binary.Write(d.file, binary.LittleEndian, event)
}
