package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeSetInsertIsIdempotent(t *testing.T) {
	keys := NewKeySet()

	keys.Insert(KEY_A)
	keys.Insert(KEY_A)
	keys.Insert(KEY_A)

	assert.Equal(t, 1, keys.Len())
	assert.Equal(t, []EvCode{KEY_A}, keys.Codes())
}

func TestAttributeSetIteratesAscending(t *testing.T) {
	keys := NewKeySet()

	// Insertion order must not matter.
	keys.Insert(BTN_LEFT)
	keys.Insert(KEY_A)
	keys.Insert(KEY_ESC)
	keys.Insert(KEY_LEFTCTRL)

	assert.Equal(t, []EvCode{KEY_ESC, KEY_LEFTCTRL, KEY_A, BTN_LEFT}, keys.Codes())
}

func TestAttributeSetContains(t *testing.T) {
	leds := NewLedSet()
	leds.Insert(LED_CAPSL)

	assert.True(t, leds.Contains(LED_CAPSL))
	assert.False(t, leds.Contains(LED_NUML))
	assert.False(t, leds.Contains(EvCode(500)))
}

func TestAttributeSetBounds(t *testing.T) {
	leds := NewLedSet()

	leds.Insert(LED_MAX)
	leds.Insert(LED_MAX + 1)

	assert.Equal(t, []EvCode{LED_MAX}, leds.Codes())
}

func TestAttributeSetBitsSizedToCodeSpace(t *testing.T) {
	tests := []struct {
		name string
		set  *AttributeSet
		size int
	}{
		{"keys", NewKeySet(), int(KEY_MAX)/8 + 1},
		{"leds", NewLedSet(), int(LED_MAX)/8 + 1},
		{"rel", NewRelSet(), int(REL_MAX)/8 + 1},
		{"switches", NewSwitchSet(), int(SW_MAX)/8 + 1},
		{"misc", NewMiscSet(), int(MSC_MAX)/8 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.set.Bits(), tt.size)
		})
	}
}

func TestAttributeSetBitsLayout(t *testing.T) {
	leds := NewLedSet()
	leds.Insert(LED_CAPSL)
	leds.Insert(LED_MISC)

	bits := leds.Bits()
	require.Len(t, bits, 2)
	assert.Equal(t, byte(0x02), bits[0]) // LED_CAPSL = 1
	assert.Equal(t, byte(0x01), bits[1]) // LED_MISC = 8
}

func TestNewAttributeSetFor(t *testing.T) {
	for _, typ := range []EvType{EV_KEY, EV_LED, EV_REL, EV_SW, EV_MSC} {
		assert.NotNil(t, newAttributeSetFor(typ), "type %s", TypeName(typ))
	}

	assert.Nil(t, newAttributeSetFor(EV_ABS))
	assert.Nil(t, newAttributeSetFor(EV_SYN))
}
