package evdev

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

const (
	uinputPath        = "/dev/uinput"
	uinputMaxNameSize = 80
	sysnameLen        = 32

	sysfsInputRoot = "/sys/devices/virtual/input"
	devInputDir    = "/dev/input"
)

var (
	// ErrNameTooLong is returned by Build when the device name plus its
	// NUL terminator does not fit the uinput name buffer.
	ErrNameTooLong = errors.New("device name does not fit the uinput name buffer")

	// ErrBuilderConsumed is returned when a builder is used after Build
	// or Close. A builder drives a single uinput handshake.
	ErrBuilderConsumed = errors.New("virtual device builder already consumed")

	// ErrSetCapacity is returned by the Update*State methods when the
	// provided set was not created for the queried category.
	ErrSetCapacity = errors.New("attribute set capacity does not match queried category")
)

// defaultInputID is used when the caller does not set a bus identity.
var defaultInputID = InputID{
	BusType: BUS_USB,
	Vendor:  0x1234,
	Product: 0x5678,
	Version: 0x111,
}

// VirtualDeviceBuilder accumulates the name, bus identity and capabilities
// of a virtual input device before registering it with the kernel.
//
// Capability declarations are forwarded to the kernel as they are made, so
// all With* calls must happen before Build.
type VirtualDeviceBuilder struct {
	file  *os.File
	name  []byte
	id    *InputID
	built bool
}

// NewVirtualDeviceBuilder opens the uinput control node in write-only,
// non-blocking mode. This usually requires elevated privileges or
// membership in the input group.
func NewVirtualDeviceBuilder() (*VirtualDeviceBuilder, error) {
	file, err := os.OpenFile(uinputPath, os.O_WRONLY|unix.O_NONBLOCK, 0660)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", uinputPath, err)
	}

	return &VirtualDeviceBuilder{file: file}, nil
}

// Name sets the device name reported to user space. It is validated
// against the name buffer capacity in Build.
func (b *VirtualDeviceBuilder) Name(name string) *VirtualDeviceBuilder {
	b.name = []byte(name)
	return b
}

// InputID sets the bus identity. When unset, the device registers with a
// generic USB sample identity.
func (b *VirtualDeviceBuilder) InputID(id InputID) *VirtualDeviceBuilder {
	b.id = &id
	return b
}

// WithKeys declares the key and button codes the device will emit.
func (b *VirtualDeviceBuilder) WithKeys(keys *AttributeSet) error {
	return b.withCapabilities(EV_KEY, keys)
}

// WithLeds declares the LEDs the device exposes.
func (b *VirtualDeviceBuilder) WithLeds(leds *AttributeSet) error {
	return b.withCapabilities(EV_LED, leds)
}

// WithRelativeAxes declares the relative axes the device will emit.
func (b *VirtualDeviceBuilder) WithRelativeAxes(axes *AttributeSet) error {
	return b.withCapabilities(EV_REL, axes)
}

// WithSwitches declares the switches the device exposes.
func (b *VirtualDeviceBuilder) WithSwitches(switches *AttributeSet) error {
	return b.withCapabilities(EV_SW, switches)
}

// WithMiscs declares the misc event codes the device will emit.
func (b *VirtualDeviceBuilder) WithMiscs(miscs *AttributeSet) error {
	return b.withCapabilities(EV_MSC, miscs)
}

// WithCapabilitiesOf declares every capability an existing device reports,
// limited to the categories a virtual device can declare.
func (b *VirtualDeviceBuilder) WithCapabilitiesOf(dev *InputDevice) error {
	for _, t := range dev.CapableTypes() {
		set := newAttributeSetFor(t)
		if set == nil {
			continue
		}

		for _, code := range dev.CapableEvents(t) {
			set.Insert(code)
		}

		if err := b.withCapabilities(t, set); err != nil {
			return err
		}
	}

	return nil
}

// withCapabilities runs the two-step declaration for one category: the
// category's event-type bit first, then every code bit in ascending
// order. The kernel rejects code bits whose type bit was never declared,
// so the ordering is mandatory.
func (b *VirtualDeviceBuilder) withCapabilities(t EvType, set *AttributeSet) error {
	if b.built {
		return ErrBuilderConsumed
	}

	if err := ioctlUISETEVBIT(b.file.Fd(), uintptr(t)); err != nil {
		return fmt.Errorf("cannot declare event type %s: %w", TypeName(t), err)
	}

	for _, code := range set.Codes() {
		if err := b.declareCode(t, code); err != nil {
			return fmt.Errorf("cannot declare %s code %d: %w", TypeName(t), code, err)
		}
	}

	return nil
}

func (b *VirtualDeviceBuilder) declareCode(t EvType, code EvCode) error {
	switch t {
	case EV_KEY:
		return ioctlUISETKEYBIT(b.file.Fd(), uintptr(code))
	case EV_LED:
		return ioctlUISETLEDBIT(b.file.Fd(), uintptr(code))
	case EV_MSC:
		return ioctlUISETMSCBIT(b.file.Fd(), uintptr(code))
	case EV_REL:
		return ioctlUISETRELBIT(b.file.Fd(), uintptr(code))
	case EV_SW:
		return ioctlUISETSWBIT(b.file.Fd(), uintptr(code))
	}

	return fmt.Errorf("unsupported capability type %s", TypeName(t))
}

// newSetup populates the uinput_setup record handed to the kernel. One
// byte of the name buffer stays reserved for the NUL terminator.
func newSetup(name []byte, id *InputID) (uinputSetup, error) {
	if len(name)+1 >= uinputMaxNameSize {
		return uinputSetup{}, fmt.Errorf("%w: name is %d bytes, buffer holds %d",
			ErrNameTooLong, len(name), uinputMaxNameSize)
	}

	setup := uinputSetup{ID: defaultInputID}
	if id != nil {
		setup.ID = *id
	}
	copy(setup.Name[:], name)

	return setup, nil
}

// Build validates the accumulated state and finalizes the device: the
// setup record is handed to UI_DEV_SETUP, UI_DEV_CREATE registers the
// device, and the companion event node is discovered through sysfs and
// opened. The builder is consumed whether or not Build succeeds.
//
// The kernel attaches the event node asynchronously, so discovery can in
// rare cases run before the node exists and fail with a not-found error;
// no retry is attempted, the caller may build again.
//
// If UI_DEV_CREATE fails after a successful UI_DEV_SETUP, no rollback is
// issued beyond closing the control handle, which releases the staged
// device state.
func (b *VirtualDeviceBuilder) Build() (*VirtualDevice, error) {
	if b.built {
		return nil, ErrBuilderConsumed
	}
	b.built = true

	setup, err := newSetup(b.name, b.id)
	if err != nil {
		b.file.Close()
		return nil, err
	}

	if err := ioctlUIDEVSETUP(b.file.Fd(), &setup); err != nil {
		b.file.Close()
		return nil, fmt.Errorf("device setup failed: %w", err)
	}

	if err := ioctlUIDEVCREATE(b.file.Fd()); err != nil {
		b.file.Close()
		return nil, fmt.Errorf("device creation failed: %w", err)
	}

	eventFile, err := openEventFile(b.file)
	if err != nil {
		b.file.Close()
		return nil, err
	}

	return &VirtualDevice{file: b.file, eventFile: eventFile}, nil
}

// Close releases the control handle without creating a device. After a
// successful Build the handle belongs to the device and Close is a no-op.
func (b *VirtualDeviceBuilder) Close() error {
	if b.built {
		return nil
	}
	b.built = true

	return b.file.Close()
}

// CreateDevice builds a virtual device in a single call from a capability
// map, in the manner of VirtualDeviceBuilder.
func CreateDevice(name string, id InputID, capabilities map[EvType][]EvCode) (*VirtualDevice, error) {
	b, err := NewVirtualDeviceBuilder()
	if err != nil {
		return nil, err
	}

	b.Name(name).InputID(id)

	for t, codes := range capabilities {
		set := newAttributeSetFor(t)
		if set == nil {
			b.Close()
			return nil, fmt.Errorf("unsupported capability type %s", TypeName(t))
		}

		for _, code := range codes {
			set.Insert(code)
		}

		if err := b.withCapabilities(t, set); err != nil {
			b.Close()
			return nil, err
		}
	}

	return b.Build()
}

// CloneDevice builds a virtual device carrying the declarable capabilities
// and the bus identity of an existing device.
func CloneDevice(name string, dev *InputDevice) (*VirtualDevice, error) {
	b, err := NewVirtualDeviceBuilder()
	if err != nil {
		return nil, err
	}

	if id, err := dev.InputID(); err == nil {
		b.InputID(id)
	}

	if err := b.WithCapabilitiesOf(dev); err != nil {
		b.Close()
		return nil, err
	}

	return b.Name(name).Build()
}

// openEventFile locates the event node the kernel attached to a freshly
// created device and opens it read-only for state queries.
func openEventFile(control *os.File) (*os.File, error) {
	raw, err := ioctlUIGETSYSNAME(control.Fd())
	if err != nil {
		return nil, fmt.Errorf("cannot get sysname: %w", err)
	}

	sysname, err := decodeSysname(raw)
	if err != nil {
		return nil, err
	}

	inputDir := filepath.Join(sysfsInputRoot, sysname)

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", inputDir, err)
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "event") {
			return os.OpenFile(filepath.Join(devInputDir, entry.Name()), os.O_RDONLY|unix.O_NONBLOCK, 0)
		}
	}

	return nil, fmt.Errorf("no event node under %s: %w", inputDir, os.ErrNotExist)
}

// decodeSysname interprets the fixed-size buffer filled by UI_GET_SYSNAME:
// the name ends at the first NUL byte, or spans the whole buffer when the
// kernel did not terminate it.
func decodeSysname(raw [sysnameLen]byte) (string, error) {
	n := len(raw)
	for i, c := range raw {
		if c == 0 {
			n = i
			break
		}
	}

	if !utf8.Valid(raw[:n]) {
		return "", fmt.Errorf("sysname %q is not valid utf-8", raw[:n])
	}

	return string(raw[:n]), nil
}

// VirtualDevice is a software-emulated input device registered through
// uinput. It owns two handles: the control handle the device was created
// through and is driven through, and the event node the kernel attached
// to it, against which state is queried. The kernel tears the device down
// once the control handle is closed.
type VirtualDevice struct {
	file      *os.File
	eventFile *os.File
}

// EventPath returns the path of the device's event node.
func (d *VirtualDevice) EventPath() string {
	return d.eventFile.Name()
}

// Name returns the device name as reported back by the kernel.
func (d *VirtualDevice) Name() (string, error) {
	return ioctlEVIOCGNAME(d.eventFile.Fd())
}

// InputID returns the device's bus identity as reported back by the kernel.
func (d *VirtualDevice) InputID() (InputID, error) {
	return ioctlEVIOCGID(d.eventFile.Fd())
}

// Emit posts a batch of events to the device, terminated with a single
// SYN_REPORT record. Events that belong together logically, such as paired
// axis movements, must be passed in one call so that they share one
// terminator.
//
// The batch and its terminator are two separate writes; concurrent Emit
// calls on the same device can interleave them. Callers keep single-writer
// discipline per device.
func (d *VirtualDevice) Emit(events []InputEvent) error {
	return emitTo(d.file, events)
}

func emitTo(w io.Writer, events []InputEvent) error {
	if err := writeEvents(w, events); err != nil {
		return err
	}

	syn := InputEvent{Type: EV_SYN, Code: SYN_REPORT, Value: 0}
	return writeEvents(w, []InputEvent{syn})
}

// writeEvents marshals the records into their fixed wire layout and hands
// them to the kernel in one write.
func writeEvents(w io.Writer, events []InputEvent) error {
	buf := new(bytes.Buffer)
	for i := range events {
		if err := binary.Write(buf, binary.LittleEndian, &events[i]); err != nil {
			return fmt.Errorf("cannot marshal event: %w", err)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// GetKeyState returns the kernel's current view of the keys held down on
// this device. The kernel merges state from every source, not only this
// process's emissions.
func (d *VirtualDevice) GetKeyState() (*AttributeSet, error) {
	keys := NewKeySet()
	if err := d.UpdateKeyState(keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// GetSwitchState returns the kernel's current switch state for this device.
func (d *VirtualDevice) GetSwitchState() (*AttributeSet, error) {
	switches := NewSwitchSet()
	if err := d.UpdateSwitchState(switches); err != nil {
		return nil, err
	}
	return switches, nil
}

// GetLedState returns the kernel's current LED state for this device.
func (d *VirtualDevice) GetLedState() (*AttributeSet, error) {
	leds := NewLedSet()
	if err := d.UpdateLedState(leds); err != nil {
		return nil, err
	}
	return leds, nil
}

// UpdateKeyState fills a caller-provided set with the current key state,
// avoiding the allocation in GetKeyState. The set must come from NewKeySet.
func (d *VirtualDevice) UpdateKeyState(keys *AttributeSet) error {
	if keys.max != KEY_MAX {
		return ErrSetCapacity
	}
	return ioctlEVIOCGKEY(d.eventFile.Fd(), keys.Bits())
}

// UpdateSwitchState fills a caller-provided set with the current switch
// state. The set must come from NewSwitchSet.
func (d *VirtualDevice) UpdateSwitchState(switches *AttributeSet) error {
	if switches.max != SW_MAX {
		return ErrSetCapacity
	}
	return ioctlEVIOCGSW(d.eventFile.Fd(), switches.Bits())
}

// UpdateLedState fills a caller-provided set with the current LED state.
// The set must come from NewLedSet.
func (d *VirtualDevice) UpdateLedState(leds *AttributeSet) error {
	if leds.max != LED_MAX {
		return ErrSetCapacity
	}
	return ioctlEVIOCGLED(d.eventFile.Fd(), leds.Bits())
}

// Destroy unregisters the device explicitly. Closing the device has the
// same effect once the control handle's last reference is released.
func (d *VirtualDevice) Destroy() error {
	return ioctlUIDEVDESTROY(d.file.Fd())
}

// Close releases both handles. The kernel removes the virtual device when
// the control handle is closed.
func (d *VirtualDevice) Close() error {
	err := d.eventFile.Close()
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	return err
}
