package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dignow/evdev"
)

func listDevices() {
	devicePaths, err := evdev.ListDevicePaths()
	if err != nil {
		log.Error("cannot list device paths", "err", err)
		return
	}

	for _, d := range devicePaths {
		fmt.Printf("%s:\t%s\n", d.Path, d.Name)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s <input device>\n\n", os.Args[0])
		fmt.Printf("Available devices:\n")

		listDevices()
		return
	}

	d, err := evdev.Open(os.Args[1])
	if err != nil {
		log.Fatal("cannot open device", "path", os.Args[1], "err", err)
	}
	defer d.Close()

	vMajor, vMinor, vMicro := d.DriverVersion()
	fmt.Printf("Input driver version is %d.%d.%d\n", vMajor, vMinor, vMicro)

	inputID, err := d.InputID()
	if err == nil {
		fmt.Printf("Input device ID: bus 0x%x vendor 0x%x product 0x%x version 0x%x\n",
			inputID.BusType, inputID.Vendor, inputID.Product, inputID.Version)
	}

	name, err := d.Name()
	if err == nil {
		fmt.Printf("Input device name: %q\n", name)
	}

	fmt.Printf("Supported events:\n")

	for _, t := range d.CapableTypes() {
		fmt.Printf("  Event type %d (%s)\n", t, evdev.TypeName(t))

		state, err := d.State(t)
		if err == nil {
			for code, value := range state {
				fmt.Printf("    Event code %d (%s) state %v\n", code, evdev.CodeName(t, code), value)
			}
			continue
		}

		for _, code := range d.CapableEvents(t) {
			fmt.Printf("    Event code %d (%s)\n", code, evdev.CodeName(t, code))
		}
	}

	fmt.Printf("Testing ... (interrupt to exit)\n")

	for {
		e, err := d.ReadOne()
		if err != nil {
			log.Fatal("error reading from device", "err", err)
		}

		ts := fmt.Sprintf("Event: time %d.%06d", e.Time.Sec, e.Time.Usec)

		switch e.Type {
		case evdev.EV_SYN:
			switch e.Code {
			case evdev.SYN_MT_REPORT:
				fmt.Printf("%s, ++++++++++++++ %s ++++++++++++\n", ts, e.CodeName())
			case evdev.SYN_DROPPED:
				fmt.Printf("%s, >>>>>>>>>>>>>> %s <<<<<<<<<<<<\n", ts, e.CodeName())
			default:
				fmt.Printf("%s, -------------- %s ------------\n", ts, e.CodeName())
			}
		default:
			fmt.Printf("%s, %s\n", ts, e.String())
		}
	}
}
