package evdev

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	ioctlDirNone  = 0x0
	ioctlDirWrite = 0x1
	ioctlDirRead  = 0x2
)

func ioctlMakeCode(dir, typ, nr int, size uintptr) uint32 {
	var code uint32
	if dir > ioctlDirWrite|ioctlDirRead {
		panic(fmt.Errorf("invalid ioctl dir value: %d", dir))
	}

	if size > 1<<14 {
		panic(fmt.Errorf("invalid ioctl size value: %d", size))
	}

	code |= uint32(dir) << 30
	code |= uint32(size) << 16
	code |= uint32(typ) << 8
	code |= uint32(nr)

	return code
}

func doIoctl(fd uintptr, code uint32, ptr unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(code), uintptr(ptr))
	if errno != 0 {
		return errno
	}

	return nil
}

// doIoctlInt issues an ioctl whose argument is a plain value, not a pointer.
func doIoctlInt(fd uintptr, code uint32, value uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(code), value)
	if errno != 0 {
		return errno
	}

	return nil
}

func ioctlEVIOCGVERSION(fd uintptr) (int32, error) {
	version := int32(0)
	code := ioctlMakeCode(ioctlDirRead, 'E', 0x01, unsafe.Sizeof(version))
	err := doIoctl(fd, code, unsafe.Pointer(&version))
	return version, err
}

func ioctlEVIOCGID(fd uintptr) (InputID, error) {
	id := InputID{}
	code := ioctlMakeCode(ioctlDirRead, 'E', 0x02, unsafe.Sizeof(id))
	err := doIoctl(fd, code, unsafe.Pointer(&id))
	return id, err
}

func ioctlEVIOCGNAME(fd uintptr) (string, error) {
	str := [256]byte{}
	code := ioctlMakeCode(ioctlDirRead, 'E', 0x06, unsafe.Sizeof(str))
	err := doIoctl(fd, code, unsafe.Pointer(&str))
	if err != nil {
		return "", err
	}

	for i, c := range str {
		if c == 0 {
			return string(str[:i]), nil
		}
	}
	return string(str[:]), nil
}

// ioctlEVIOCGKEY fills bits with the kernel's merged key state bitmap.
func ioctlEVIOCGKEY(fd uintptr, bits []byte) error {
	code := ioctlMakeCode(ioctlDirRead, 'E', 0x18, uintptr(len(bits)))
	return doIoctl(fd, code, unsafe.Pointer(&bits[0]))
}

// ioctlEVIOCGLED fills bits with the kernel's merged LED state bitmap.
func ioctlEVIOCGLED(fd uintptr, bits []byte) error {
	code := ioctlMakeCode(ioctlDirRead, 'E', 0x19, uintptr(len(bits)))
	return doIoctl(fd, code, unsafe.Pointer(&bits[0]))
}

// ioctlEVIOCGSW fills bits with the kernel's merged switch state bitmap.
func ioctlEVIOCGSW(fd uintptr, bits []byte) error {
	code := ioctlMakeCode(ioctlDirRead, 'E', 0x1b, uintptr(len(bits)))
	return doIoctl(fd, code, unsafe.Pointer(&bits[0]))
}

// ioctlEVIOCGBIT fills bits with the capability bitmap for the given event
// type; evtype 0 queries the supported event types themselves.
func ioctlEVIOCGBIT(fd uintptr, evtype int, bits []byte) error {
	code := ioctlMakeCode(ioctlDirRead, 'E', 0x20+evtype, uintptr(len(bits)))
	return doIoctl(fd, code, unsafe.Pointer(&bits[0]))
}

// ioctlEVIOCGRAB takes its argument by value; non-zero grabs, zero releases.
func ioctlEVIOCGRAB(fd uintptr, p int) error {
	code := ioctlMakeCode(ioctlDirWrite, 'E', 0x90, unsafe.Sizeof(int32(0)))
	return doIoctlInt(fd, code, uintptr(p))
}

// uinput ioctls, from linux/uinput.h. The UI_SET_* family takes its
// argument by value.

func ioctlUISETEVBIT(fd uintptr, ev uintptr) error {
	code := ioctlMakeCode(ioctlDirWrite, 'U', 100, unsafe.Sizeof(int32(0)))
	return doIoctlInt(fd, code, ev)
}

func ioctlUISETKEYBIT(fd uintptr, key uintptr) error {
	code := ioctlMakeCode(ioctlDirWrite, 'U', 101, unsafe.Sizeof(int32(0)))
	return doIoctlInt(fd, code, key)
}

func ioctlUISETRELBIT(fd uintptr, rel uintptr) error {
	code := ioctlMakeCode(ioctlDirWrite, 'U', 102, unsafe.Sizeof(int32(0)))
	return doIoctlInt(fd, code, rel)
}

func ioctlUISETMSCBIT(fd uintptr, msc uintptr) error {
	code := ioctlMakeCode(ioctlDirWrite, 'U', 104, unsafe.Sizeof(int32(0)))
	return doIoctlInt(fd, code, msc)
}

func ioctlUISETLEDBIT(fd uintptr, led uintptr) error {
	code := ioctlMakeCode(ioctlDirWrite, 'U', 105, unsafe.Sizeof(int32(0)))
	return doIoctlInt(fd, code, led)
}

func ioctlUISETSWBIT(fd uintptr, sw uintptr) error {
	code := ioctlMakeCode(ioctlDirWrite, 'U', 109, unsafe.Sizeof(int32(0)))
	return doIoctlInt(fd, code, sw)
}

func ioctlUIDEVSETUP(fd uintptr, setup *uinputSetup) error {
	code := ioctlMakeCode(ioctlDirWrite, 'U', 3, unsafe.Sizeof(*setup))
	return doIoctl(fd, code, unsafe.Pointer(setup))
}

func ioctlUIDEVCREATE(fd uintptr) error {
	return doIoctlInt(fd, ioctlMakeCode(ioctlDirNone, 'U', 1, 0), 0)
}

func ioctlUIDEVDESTROY(fd uintptr) error {
	return doIoctlInt(fd, ioctlMakeCode(ioctlDirNone, 'U', 2, 0), 0)
}

// ioctlUIGETSYSNAME asks the kernel for the short sysfs name it assigned to
// a freshly created device. The result is not guaranteed to carry a NUL
// terminator when the name fills the buffer.
func ioctlUIGETSYSNAME(fd uintptr) ([sysnameLen]byte, error) {
	name := [sysnameLen]byte{}
	code := ioctlMakeCode(ioctlDirRead, 'U', 44, unsafe.Sizeof(name))
	err := doIoctl(fd, code, unsafe.Pointer(&name))
	return name, err
}
