package evdev

// AttributeSet is a set of event codes belonging to a single event
// category, stored as the fixed-size bitmap the kernel's capability and
// state ioctls operate on. Codes are unique within a set and iteration
// is always ascending by code, regardless of insertion order.
type AttributeSet struct {
	bits []byte
	max  EvCode
}

// NewAttributeSet returns an empty set that can hold codes in [0, max].
// Callers usually want one of the per-category constructors instead.
func NewAttributeSet(max EvCode) *AttributeSet {
	return &AttributeSet{
		bits: make([]byte, int(max)/8+1),
		max:  max,
	}
}

// NewKeySet returns an empty set sized to the key and button code space.
func NewKeySet() *AttributeSet { return NewAttributeSet(KEY_MAX) }

// NewLedSet returns an empty set sized to the LED code space.
func NewLedSet() *AttributeSet { return NewAttributeSet(LED_MAX) }

// NewRelSet returns an empty set sized to the relative axis code space.
func NewRelSet() *AttributeSet { return NewAttributeSet(REL_MAX) }

// NewSwitchSet returns an empty set sized to the switch code space.
func NewSwitchSet() *AttributeSet { return NewAttributeSet(SW_MAX) }

// NewMiscSet returns an empty set sized to the miscellaneous code space.
func NewMiscSet() *AttributeSet { return NewAttributeSet(MSC_MAX) }

// newAttributeSetFor returns an empty set for the given event type, or
// nil if the type has no category code space in this package.
func newAttributeSetFor(t EvType) *AttributeSet {
	switch t {
	case EV_KEY:
		return NewKeySet()
	case EV_LED:
		return NewLedSet()
	case EV_REL:
		return NewRelSet()
	case EV_SW:
		return NewSwitchSet()
	case EV_MSC:
		return NewMiscSet()
	}
	return nil
}

// Insert adds code to the set. Inserting a code that is already present
// is a no-op, as is inserting a code beyond the set's capacity.
func (s *AttributeSet) Insert(code EvCode) {
	if code > s.max {
		return
	}
	newBitmap(s.bits).setBit(int(code))
}

// Contains reports whether code is in the set.
func (s *AttributeSet) Contains(code EvCode) bool {
	return newBitmap(s.bits).bitIsSet(int(code))
}

// Codes returns the codes in the set, in ascending order.
func (s *AttributeSet) Codes() []EvCode {
	set := newBitmap(s.bits).setBits()

	codes := make([]EvCode, 0, len(set))
	for _, c := range set {
		codes = append(codes, EvCode(c))
	}
	return codes
}

// Len returns the number of codes in the set.
func (s *AttributeSet) Len() int {
	return len(newBitmap(s.bits).setBits())
}

// Bits exposes the backing bitmap. Kernel calls read capability
// declarations from it and write state-query results into it.
func (s *AttributeSet) Bits() []byte {
	return s.bits
}
