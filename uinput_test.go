package evdev

import (
	"bytes"
	"encoding/binary"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSysname(t *testing.T) {
	terminated := [sysnameLen]byte{}
	copy(terminated[:], "input123")

	name, err := decodeSysname(terminated)
	require.NoError(t, err)
	assert.Equal(t, "input123", name)
}

func TestDecodeSysnameWithoutTerminator(t *testing.T) {
	// The kernel does not terminate a name that fills the buffer.
	full := [sysnameLen]byte{}
	copy(full[:], strings.Repeat("x", sysnameLen))

	name, err := decodeSysname(full)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", sysnameLen), name)
}

func TestDecodeSysnameRejectsInvalidUTF8(t *testing.T) {
	raw := [sysnameLen]byte{0xff, 0xfe, 0xfd}

	_, err := decodeSysname(raw)
	assert.Error(t, err)
}

func TestNewSetupValidatesNameLength(t *testing.T) {
	tests := []struct {
		name    string
		nameLen int
		wantErr bool
	}{
		{"empty", 0, false},
		{"short", 12, false},
		{"longest fitting", uinputMaxNameSize - 2, false},
		{"one over", uinputMaxNameSize - 1, true},
		{"buffer sized", uinputMaxNameSize, true},
		{"oversized", uinputMaxNameSize + 13, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			devName := bytes.Repeat([]byte{'n'}, tt.nameLen)

			setup, err := newSetup(devName, nil)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNameTooLong)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, devName, setup.Name[:tt.nameLen])

			// The remainder of the buffer stays zeroed.
			for _, c := range setup.Name[tt.nameLen:] {
				require.Zero(t, c)
			}
		})
	}
}

func TestNewSetupIdentity(t *testing.T) {
	setup, err := newSetup([]byte("dev"), nil)
	require.NoError(t, err)
	assert.Equal(t, defaultInputID, setup.ID)
	assert.Zero(t, setup.FFEffectsMax)

	id := InputID{BusType: BUS_BLUETOOTH, Vendor: 0x4711, Product: 0x0816, Version: 2}
	setup, err = newSetup([]byte("dev"), &id)
	require.NoError(t, err)
	assert.Equal(t, id, setup.ID)
}

func decodeEvents(t *testing.T, raw []byte) []InputEvent {
	t.Helper()

	r := bytes.NewReader(raw)
	var events []InputEvent
	for r.Len() > 0 {
		var ev InputEvent
		require.NoError(t, binary.Read(r, binary.LittleEndian, &ev))
		events = append(events, ev)
	}
	return events
}

func TestEmitAppendsSingleSynReport(t *testing.T) {
	tests := []struct {
		name   string
		events []InputEvent
	}{
		{"empty batch", nil},
		{"single event", []InputEvent{
			{Type: EV_KEY, Code: KEY_A, Value: 1},
		}},
		{"simultaneous batch", []InputEvent{
			{Type: EV_KEY, Code: KEY_LEFTCTRL, Value: 1},
			{Type: EV_KEY, Code: KEY_A, Value: 1},
			{Type: EV_REL, Code: REL_X, Value: -3},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, emitTo(buf, tt.events))

			got := decodeEvents(t, buf.Bytes())
			require.Len(t, got, len(tt.events)+1)

			for i, want := range tt.events {
				assert.Equal(t, want.Type, got[i].Type)
				assert.Equal(t, want.Code, got[i].Code)
				assert.Equal(t, want.Value, got[i].Value)
			}

			last := got[len(got)-1]
			assert.Equal(t, EV_SYN, last.Type)
			assert.Equal(t, SYN_REPORT, last.Code)
			assert.Zero(t, last.Value)

			// The terminator is the only SYN record in the batch.
			syn := 0
			for _, ev := range got {
				if ev.Type == EV_SYN {
					syn++
				}
			}
			assert.Equal(t, 1, syn)
		})
	}
}

// requireUinput skips the test unless /dev/uinput exists and is writable,
// which usually requires root or membership in the input group.
func requireUinput(t *testing.T) {
	t.Helper()

	if _, err := os.Stat(uinputPath); os.IsNotExist(err) {
		t.Skipf("%s does not exist - uinput module not loaded", uinputPath)
	}

	f, err := os.OpenFile(uinputPath, os.O_WRONLY, 0)
	if err != nil {
		t.Skipf("cannot open %s: %v", uinputPath, err)
	}
	f.Close()
}

func TestVirtualDeviceIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	requireUinput(t)

	b, err := NewVirtualDeviceBuilder()
	require.NoError(t, err)

	keys := NewKeySet()
	keys.Insert(KEY_A)
	keys.Insert(KEY_LEFTCTRL)
	require.NoError(t, b.WithKeys(keys))

	leds := NewLedSet()
	leds.Insert(LED_CAPSL)
	require.NoError(t, b.WithLeds(leds))

	dev, err := b.Name("evdev-test-keyboard").Build()
	require.NoError(t, err)
	defer dev.Close()

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrBuilderConsumed)

	t.Run("DeclaredCapabilities", func(t *testing.T) {
		node, err := Open(dev.EventPath())
		require.NoError(t, err)
		defer node.Close()

		assert.Equal(t, []EvCode{KEY_LEFTCTRL, KEY_A}, node.CapableEvents(EV_KEY))
		assert.Equal(t, []EvCode{LED_CAPSL}, node.CapableEvents(EV_LED))

		name, err := node.Name()
		require.NoError(t, err)
		assert.Equal(t, "evdev-test-keyboard", name)
	})

	t.Run("KeyStateFollowsEmits", func(t *testing.T) {
		require.NoError(t, dev.Emit([]InputEvent{{Type: EV_KEY, Code: KEY_A, Value: 1}}))

		state, err := dev.GetKeyState()
		require.NoError(t, err)
		assert.True(t, state.Contains(KEY_A))

		// Querying without intervening emission is idempotent.
		again, err := dev.GetKeyState()
		require.NoError(t, err)
		assert.Equal(t, state.Codes(), again.Codes())

		require.NoError(t, dev.Emit([]InputEvent{{Type: EV_KEY, Code: KEY_A, Value: 0}}))

		state, err = dev.GetKeyState()
		require.NoError(t, err)
		assert.False(t, state.Contains(KEY_A))
	})

	t.Run("SimultaneousBatch", func(t *testing.T) {
		down := []InputEvent{
			{Type: EV_KEY, Code: KEY_LEFTCTRL, Value: 1},
			{Type: EV_KEY, Code: KEY_A, Value: 1},
		}
		require.NoError(t, dev.Emit(down))

		state, err := dev.GetKeyState()
		require.NoError(t, err)
		assert.Equal(t, []EvCode{KEY_LEFTCTRL, KEY_A}, state.Codes())

		up := []InputEvent{
			{Type: EV_KEY, Code: KEY_LEFTCTRL, Value: 0},
			{Type: EV_KEY, Code: KEY_A, Value: 0},
		}
		require.NoError(t, dev.Emit(up))

		state, err = dev.GetKeyState()
		require.NoError(t, err)
		assert.Empty(t, state.Codes())
	})

	t.Run("UpdateStateRejectsWrongCapacity", func(t *testing.T) {
		assert.ErrorIs(t, dev.UpdateKeyState(NewLedSet()), ErrSetCapacity)
		assert.ErrorIs(t, dev.UpdateLedState(NewKeySet()), ErrSetCapacity)
		assert.ErrorIs(t, dev.UpdateSwitchState(NewKeySet()), ErrSetCapacity)
	})
}

func TestBuildRejectsOverlongNameBeforeFinalization(t *testing.T) {
	requireUinput(t)

	b, err := NewVirtualDeviceBuilder()
	require.NoError(t, err)

	_, err = b.Name(strings.Repeat("n", uinputMaxNameSize)).Build()
	assert.ErrorIs(t, err, ErrNameTooLong)
}
