// Create a virtual keyboard, just while this is running.
// Generally this requires root.
package main

import (
	"bufio"
	"flag"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/dignow/evdev"
)

type busConfig struct {
	Type    uint16 `toml:"type"`
	Vendor  uint16 `toml:"vendor"`
	Product uint16 `toml:"product"`
	Version uint16 `toml:"version"`
}

// profile describes the device to emulate: its name, bus identity and the
// capability codes per category.
type profile struct {
	Name  string     `toml:"name"`
	Bus   *busConfig `toml:"bus"`
	Keys  []uint16   `toml:"keys"`
	Leds  []uint16   `toml:"leds"`
	Miscs []uint16   `toml:"miscs"`
}

func defaultProfile() *profile {
	p := &profile{
		Name:  "Fake Keyboard",
		Leds:  []uint16{uint16(evdev.LED_CAPSL), uint16(evdev.LED_SCROLLL)},
		Miscs: []uint16{uint16(evdev.MSC_SCAN)},
	}

	for key := evdev.KEY_ESC; key <= evdev.KEY_SCROLLLOCK; key++ {
		p.Keys = append(p.Keys, uint16(key))
	}

	return p
}

func loadProfile(path string) (*profile, error) {
	p := defaultProfile()
	if path == "" {
		return p, nil
	}

	if _, err := toml.DecodeFile(path, p); err != nil {
		return nil, err
	}
	return p, nil
}

func toSet(set *evdev.AttributeSet, codes []uint16) *evdev.AttributeSet {
	for _, code := range codes {
		set.Insert(evdev.EvCode(code))
	}
	return set
}

func buildDevice(p *profile) (*evdev.VirtualDevice, error) {
	b, err := evdev.NewVirtualDeviceBuilder()
	if err != nil {
		return nil, err
	}

	b.Name(p.Name)
	if p.Bus != nil {
		b.InputID(evdev.InputID{
			BusType: p.Bus.Type,
			Vendor:  p.Bus.Vendor,
			Product: p.Bus.Product,
			Version: p.Bus.Version,
		})
	}

	if len(p.Keys) > 0 {
		if err := b.WithKeys(toSet(evdev.NewKeySet(), p.Keys)); err != nil {
			b.Close()
			return nil, err
		}
	}
	if len(p.Leds) > 0 {
		if err := b.WithLeds(toSet(evdev.NewLedSet(), p.Leds)); err != nil {
			b.Close()
			return nil, err
		}
	}
	if len(p.Miscs) > 0 {
		if err := b.WithMiscs(toSet(evdev.NewMiscSet(), p.Miscs)); err != nil {
			b.Close()
			return nil, err
		}
	}

	return b.Build()
}

func tap(dev *evdev.VirtualDevice, code evdev.EvCode) {
	down := evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: 1}
	up := evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: 0}

	if err := dev.Emit([]evdev.InputEvent{down, up}); err != nil {
		log.Error("emit failed", "code", evdev.CodeName(evdev.EV_KEY, code), "err", err)
	}
}

func dumpState(dev *evdev.VirtualDevice) {
	keys, err := dev.GetKeyState()
	if err != nil {
		log.Error("cannot query key state", "err", err)
		return
	}

	leds, err := dev.GetLedState()
	if err != nil {
		log.Error("cannot query led state", "err", err)
		return
	}

	log.Info("device state", "keys", keys.Codes(), "leds", leds.Codes())
}

func main() {
	profilePath := flag.String("profile", "", "TOML device profile to emulate")
	flag.Parse()

	p, err := loadProfile(*profilePath)
	if err != nil {
		log.Fatal("cannot load profile", "path", *profilePath, "err", err)
	}

	dev, err := buildDevice(p)
	if err != nil {
		log.Fatal("cannot create virtual device", "err", err)
	}
	defer dev.Close()

	log.Info("virtual device created", "name", p.Name, "event", dev.EventPath())
	log.Info("press enter to type, interrupt to exit")

	stdin := bufio.NewScanner(os.Stdin)
	for stdin.Scan() {
		tap(dev, evdev.KEY_CAPSLOCK)
		time.Sleep(300 * time.Millisecond)
		dumpState(dev)

		tap(dev, evdev.KEY_A)
		time.Sleep(300 * time.Millisecond)
		dumpState(dev)
	}
}
