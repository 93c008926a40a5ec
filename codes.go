package evdev

// Event types, from linux/input-event-codes.h.
const (
	EV_SYN EvType = 0x00
	EV_KEY EvType = 0x01
	EV_REL EvType = 0x02
	EV_ABS EvType = 0x03
	EV_MSC EvType = 0x04
	EV_SW  EvType = 0x05
	EV_LED EvType = 0x11
	EV_SND EvType = 0x12
	EV_REP EvType = 0x14
	EV_FF  EvType = 0x15
	EV_PWR EvType = 0x16
	EV_MAX EvType = 0x1f
)

// Synchronization event codes. SYN_REPORT terminates a batch of
// logically-simultaneous events.
const (
	SYN_REPORT    EvCode = 0x00
	SYN_CONFIG    EvCode = 0x01
	SYN_MT_REPORT EvCode = 0x02
	SYN_DROPPED   EvCode = 0x03
	SYN_MAX       EvCode = 0x0f
)

// Key and button codes. This is the working subset this package names;
// any code up to KEY_MAX is accepted by the capability and state APIs.
const (
	KEY_RESERVED   EvCode = 0
	KEY_ESC        EvCode = 1
	KEY_1          EvCode = 2
	KEY_2          EvCode = 3
	KEY_3          EvCode = 4
	KEY_4          EvCode = 5
	KEY_5          EvCode = 6
	KEY_6          EvCode = 7
	KEY_7          EvCode = 8
	KEY_8          EvCode = 9
	KEY_9          EvCode = 10
	KEY_0          EvCode = 11
	KEY_MINUS      EvCode = 12
	KEY_EQUAL      EvCode = 13
	KEY_BACKSPACE  EvCode = 14
	KEY_TAB        EvCode = 15
	KEY_Q          EvCode = 16
	KEY_W          EvCode = 17
	KEY_E          EvCode = 18
	KEY_R          EvCode = 19
	KEY_T          EvCode = 20
	KEY_Y          EvCode = 21
	KEY_U          EvCode = 22
	KEY_I          EvCode = 23
	KEY_O          EvCode = 24
	KEY_P          EvCode = 25
	KEY_LEFTBRACE  EvCode = 26
	KEY_RIGHTBRACE EvCode = 27
	KEY_ENTER      EvCode = 28
	KEY_LEFTCTRL   EvCode = 29
	KEY_A          EvCode = 30
	KEY_S          EvCode = 31
	KEY_D          EvCode = 32
	KEY_F          EvCode = 33
	KEY_G          EvCode = 34
	KEY_H          EvCode = 35
	KEY_J          EvCode = 36
	KEY_K          EvCode = 37
	KEY_L          EvCode = 38
	KEY_SEMICOLON  EvCode = 39
	KEY_APOSTROPHE EvCode = 40
	KEY_GRAVE      EvCode = 41
	KEY_LEFTSHIFT  EvCode = 42
	KEY_BACKSLASH  EvCode = 43
	KEY_Z          EvCode = 44
	KEY_X          EvCode = 45
	KEY_C          EvCode = 46
	KEY_V          EvCode = 47
	KEY_B          EvCode = 48
	KEY_N          EvCode = 49
	KEY_M          EvCode = 50
	KEY_COMMA      EvCode = 51
	KEY_DOT        EvCode = 52
	KEY_SLASH      EvCode = 53
	KEY_RIGHTSHIFT EvCode = 54
	KEY_KPASTERISK EvCode = 55
	KEY_LEFTALT    EvCode = 56
	KEY_SPACE      EvCode = 57
	KEY_CAPSLOCK   EvCode = 58
	KEY_F1         EvCode = 59
	KEY_F2         EvCode = 60
	KEY_F3         EvCode = 61
	KEY_F4         EvCode = 62
	KEY_F5         EvCode = 63
	KEY_F6         EvCode = 64
	KEY_F7         EvCode = 65
	KEY_F8         EvCode = 66
	KEY_F9         EvCode = 67
	KEY_F10        EvCode = 68
	KEY_NUMLOCK    EvCode = 69
	KEY_SCROLLLOCK EvCode = 70

	BTN_LEFT   EvCode = 0x110
	BTN_RIGHT  EvCode = 0x111
	BTN_MIDDLE EvCode = 0x112
	BTN_SIDE   EvCode = 0x113
	BTN_EXTRA  EvCode = 0x114
	BTN_TOUCH  EvCode = 0x14a

	KEY_MAX EvCode = 0x2ff
)

// Relative axis codes.
const (
	REL_X      EvCode = 0x00
	REL_Y      EvCode = 0x01
	REL_Z      EvCode = 0x02
	REL_HWHEEL EvCode = 0x06
	REL_DIAL   EvCode = 0x07
	REL_WHEEL  EvCode = 0x08
	REL_MISC   EvCode = 0x09
	REL_MAX    EvCode = 0x0f
)

// Miscellaneous event codes.
const (
	MSC_SERIAL    EvCode = 0x00
	MSC_PULSELED  EvCode = 0x01
	MSC_GESTURE   EvCode = 0x02
	MSC_RAW       EvCode = 0x03
	MSC_SCAN      EvCode = 0x04
	MSC_TIMESTAMP EvCode = 0x05
	MSC_MAX       EvCode = 0x07
)

// Switch codes.
const (
	SW_LID               EvCode = 0x00
	SW_TABLET_MODE       EvCode = 0x01
	SW_HEADPHONE_INSERT  EvCode = 0x02
	SW_RFKILL_ALL        EvCode = 0x03
	SW_MICROPHONE_INSERT EvCode = 0x04
	SW_DOCK              EvCode = 0x05
	SW_LINEOUT_INSERT    EvCode = 0x06
	SW_MAX               EvCode = 0x10
)

// LED codes.
const (
	LED_NUML     EvCode = 0x00
	LED_CAPSL    EvCode = 0x01
	LED_SCROLLL  EvCode = 0x02
	LED_COMPOSE  EvCode = 0x03
	LED_KANA     EvCode = 0x04
	LED_SLEEP    EvCode = 0x05
	LED_SUSPEND  EvCode = 0x06
	LED_MUTE     EvCode = 0x07
	LED_MISC     EvCode = 0x08
	LED_MAIL     EvCode = 0x09
	LED_CHARGING EvCode = 0x0a
	LED_MAX      EvCode = 0x0f
)

// Bus types, from linux/input.h.
const (
	BUS_PCI       uint16 = 0x01
	BUS_USB       uint16 = 0x03
	BUS_BLUETOOTH uint16 = 0x05
	BUS_VIRTUAL   uint16 = 0x06
	BUS_I2C       uint16 = 0x18
)

var EVToString = map[EvType]string{
	EV_SYN: "EV_SYN",
	EV_KEY: "EV_KEY",
	EV_REL: "EV_REL",
	EV_ABS: "EV_ABS",
	EV_MSC: "EV_MSC",
	EV_SW:  "EV_SW",
	EV_LED: "EV_LED",
	EV_SND: "EV_SND",
	EV_REP: "EV_REP",
	EV_FF:  "EV_FF",
	EV_PWR: "EV_PWR",
}

var SYNToString = map[EvCode]string{
	SYN_REPORT:    "SYN_REPORT",
	SYN_CONFIG:    "SYN_CONFIG",
	SYN_MT_REPORT: "SYN_MT_REPORT",
	SYN_DROPPED:   "SYN_DROPPED",
}

var KEYToString = map[EvCode]string{
	KEY_RESERVED:   "KEY_RESERVED",
	KEY_ESC:        "KEY_ESC",
	KEY_1:          "KEY_1",
	KEY_2:          "KEY_2",
	KEY_3:          "KEY_3",
	KEY_4:          "KEY_4",
	KEY_5:          "KEY_5",
	KEY_6:          "KEY_6",
	KEY_7:          "KEY_7",
	KEY_8:          "KEY_8",
	KEY_9:          "KEY_9",
	KEY_0:          "KEY_0",
	KEY_MINUS:      "KEY_MINUS",
	KEY_EQUAL:      "KEY_EQUAL",
	KEY_BACKSPACE:  "KEY_BACKSPACE",
	KEY_TAB:        "KEY_TAB",
	KEY_Q:          "KEY_Q",
	KEY_W:          "KEY_W",
	KEY_E:          "KEY_E",
	KEY_R:          "KEY_R",
	KEY_T:          "KEY_T",
	KEY_Y:          "KEY_Y",
	KEY_U:          "KEY_U",
	KEY_I:          "KEY_I",
	KEY_O:          "KEY_O",
	KEY_P:          "KEY_P",
	KEY_LEFTBRACE:  "KEY_LEFTBRACE",
	KEY_RIGHTBRACE: "KEY_RIGHTBRACE",
	KEY_ENTER:      "KEY_ENTER",
	KEY_LEFTCTRL:   "KEY_LEFTCTRL",
	KEY_A:          "KEY_A",
	KEY_S:          "KEY_S",
	KEY_D:          "KEY_D",
	KEY_F:          "KEY_F",
	KEY_G:          "KEY_G",
	KEY_H:          "KEY_H",
	KEY_J:          "KEY_J",
	KEY_K:          "KEY_K",
	KEY_L:          "KEY_L",
	KEY_SEMICOLON:  "KEY_SEMICOLON",
	KEY_APOSTROPHE: "KEY_APOSTROPHE",
	KEY_GRAVE:      "KEY_GRAVE",
	KEY_LEFTSHIFT:  "KEY_LEFTSHIFT",
	KEY_BACKSLASH:  "KEY_BACKSLASH",
	KEY_Z:          "KEY_Z",
	KEY_X:          "KEY_X",
	KEY_C:          "KEY_C",
	KEY_V:          "KEY_V",
	KEY_B:          "KEY_B",
	KEY_N:          "KEY_N",
	KEY_M:          "KEY_M",
	KEY_COMMA:      "KEY_COMMA",
	KEY_DOT:        "KEY_DOT",
	KEY_SLASH:      "KEY_SLASH",
	KEY_RIGHTSHIFT: "KEY_RIGHTSHIFT",
	KEY_KPASTERISK: "KEY_KPASTERISK",
	KEY_LEFTALT:    "KEY_LEFTALT",
	KEY_SPACE:      "KEY_SPACE",
	KEY_CAPSLOCK:   "KEY_CAPSLOCK",
	KEY_F1:         "KEY_F1",
	KEY_F2:         "KEY_F2",
	KEY_F3:         "KEY_F3",
	KEY_F4:         "KEY_F4",
	KEY_F5:         "KEY_F5",
	KEY_F6:         "KEY_F6",
	KEY_F7:         "KEY_F7",
	KEY_F8:         "KEY_F8",
	KEY_F9:         "KEY_F9",
	KEY_F10:        "KEY_F10",
	KEY_NUMLOCK:    "KEY_NUMLOCK",
	KEY_SCROLLLOCK: "KEY_SCROLLLOCK",
	BTN_LEFT:       "BTN_LEFT",
	BTN_RIGHT:      "BTN_RIGHT",
	BTN_MIDDLE:     "BTN_MIDDLE",
	BTN_SIDE:       "BTN_SIDE",
	BTN_EXTRA:      "BTN_EXTRA",
	BTN_TOUCH:      "BTN_TOUCH",
}

var RELToString = map[EvCode]string{
	REL_X:      "REL_X",
	REL_Y:      "REL_Y",
	REL_Z:      "REL_Z",
	REL_HWHEEL: "REL_HWHEEL",
	REL_DIAL:   "REL_DIAL",
	REL_WHEEL:  "REL_WHEEL",
	REL_MISC:   "REL_MISC",
}

var MSCToString = map[EvCode]string{
	MSC_SERIAL:    "MSC_SERIAL",
	MSC_PULSELED:  "MSC_PULSELED",
	MSC_GESTURE:   "MSC_GESTURE",
	MSC_RAW:       "MSC_RAW",
	MSC_SCAN:      "MSC_SCAN",
	MSC_TIMESTAMP: "MSC_TIMESTAMP",
}

var SWToString = map[EvCode]string{
	SW_LID:               "SW_LID",
	SW_TABLET_MODE:       "SW_TABLET_MODE",
	SW_HEADPHONE_INSERT:  "SW_HEADPHONE_INSERT",
	SW_RFKILL_ALL:        "SW_RFKILL_ALL",
	SW_MICROPHONE_INSERT: "SW_MICROPHONE_INSERT",
	SW_DOCK:              "SW_DOCK",
	SW_LINEOUT_INSERT:    "SW_LINEOUT_INSERT",
}

var LEDToString = map[EvCode]string{
	LED_NUML:     "LED_NUML",
	LED_CAPSL:    "LED_CAPSL",
	LED_SCROLLL:  "LED_SCROLLL",
	LED_COMPOSE:  "LED_COMPOSE",
	LED_KANA:     "LED_KANA",
	LED_SLEEP:    "LED_SLEEP",
	LED_SUSPEND:  "LED_SUSPEND",
	LED_MUTE:     "LED_MUTE",
	LED_MISC:     "LED_MISC",
	LED_MAIL:     "LED_MAIL",
	LED_CHARGING: "LED_CHARGING",
}
