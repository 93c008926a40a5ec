package evdev

var EvCodeNameLookup = map[EvType]map[EvCode]string{
	EV_SYN: SYNToString,
	EV_KEY: KEYToString,
	EV_REL: RELToString,
	EV_MSC: MSCToString,
	EV_SW:  SWToString,
	EV_LED: LEDToString,
}

// TypeName returns the name of an EvType as string, or "unknown" if the type is not valid
func TypeName(t EvType) string {
	name, ok := EVToString[t]
	if ok {
		return name
	}
	return "unknown"
}

// CodeName returns the name of an EvCode in the given EvType, or "unknown" if the code is not valid.
func CodeName(t EvType, c EvCode) string {
	name, ok := EvCodeNameLookup[t][c]
	if !ok {
		return "unknown"
	}
	return name
}
