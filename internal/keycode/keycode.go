// Package keycode defines the virtual key codes a host sends to the engine
// and the modifier bits that travel with them.
package keycode

// Virtual key codes. Shifted symbols and upper-case letters have codes of
// their own, so Shift is already folded into the code for printable keys.
const (
	KeyGrave = 0x0029
	KeyTilde = 0x0001

	Key1 = 0x0002
	Key2 = 0x0003
	Key3 = 0x0004
	Key4 = 0x0005
	Key5 = 0x0006
	Key6 = 0x0007
	Key7 = 0x0008
	Key8 = 0x0009
	Key9 = 0x000A
	Key0 = 0x000B

	KeyExclaim    = 0x003B
	KeyAt         = 0x003C
	KeyHash       = 0x003D
	KeyDollar     = 0x003E
	KeyPercent    = 0x003F
	KeyCircum     = 0x0040
	KeyAmpersand  = 0x0041
	KeyAsterisk   = 0x0042
	KeyParenLeft  = 0x0043
	KeyParenRight = 0x0044
	KeyUnderscore = 0x0057
	KeyPlus       = 0x0058

	KeyMinus  = 0x000C
	KeyEquals = 0x000D

	KeyA = 0xA096
	KeyB = 0xA097
	KeyC = 0xA098
	KeyD = 0xA099
	KeyE = 0xA09A
	KeyF = 0xA09B
	KeyG = 0xA09C
	KeyH = 0xA09D
	KeyI = 0xA09E
	KeyJ = 0xA09F
	KeyK = 0xA0A0
	KeyL = 0xA0A1
	KeyM = 0xA0A2
	KeyN = 0xA0A3
	KeyO = 0xA0A4
	KeyP = 0xA0A5
	KeyQ = 0xA0A6
	KeyR = 0xA0A7
	KeyS = 0xA0A8
	KeyT = 0xA0A9
	KeyU = 0xA0AA
	KeyV = 0xA0AB
	KeyW = 0xA0AC
	KeyX = 0xA0AD
	KeyY = 0xA0AE
	KeyZ = 0xA0AF

	KeyShiftA = 0xA0B4
	KeyShiftB = 0xA0B5
	KeyShiftC = 0xA0B6
	KeyShiftD = 0xA0B7
	KeyShiftE = 0xA0B8
	KeyShiftF = 0xA0B9
	KeyShiftG = 0xA0BA
	KeyShiftH = 0xA0BB
	KeyShiftI = 0xA0BC
	KeyShiftJ = 0xA0BD
	KeyShiftK = 0xA0BE
	KeyShiftL = 0xA0BF
	KeyShiftM = 0xA0C0
	KeyShiftN = 0xA0C1
	KeyShiftO = 0xA0C2
	KeyShiftP = 0xA0C3
	KeyShiftQ = 0xA0C4
	KeyShiftR = 0xA0C5
	KeyShiftS = 0xA0C6
	KeyShiftT = 0xA0C7
	KeyShiftU = 0xA0C8
	KeyShiftV = 0xA0C9
	KeyShiftW = 0xA0CA
	KeyShiftX = 0xA0CB
	KeyShiftY = 0xA0CC
	KeyShiftZ = 0xA0CD

	KeyBracketLeft  = 0x001A
	KeyBracketRight = 0x001B
	KeyBackSlash    = 0x002B
	KeyBraceLeft    = 0x005B
	KeyBraceRight   = 0x005C
	KeyBar          = 0x005D
	KeySemicolon    = 0x0027
	KeyApostrophe   = 0x0028
	KeyComma        = 0x0033
	KeyPeriod       = 0x0034
	KeySlash        = 0x0035
	KeyColon        = 0x0063
	KeyQuote        = 0x0064
	KeyLess         = 0x0065
	KeyGreater      = 0x0066
	KeyQuestion     = 0x0067

	KeyKPDivide   = 0x0E35
	KeyKPMultiply = 0x0037
	KeyKPSubtract = 0x004A
	KeyKPEquals   = 0x0E0D
	KeyKPAdd      = 0x004E
	KeyKPEnter    = 0x0E1C
	KeyKPDecimal  = 0x0053

	KeyKP1 = 0x004F
	KeyKP2 = 0x0050
	KeyKP3 = 0x0051
	KeyKP4 = 0x004B
	KeyKP5 = 0x004C
	KeyKP6 = 0x004D
	KeyKP7 = 0x0047
	KeyKP8 = 0x0048
	KeyKP9 = 0x0049
	KeyKP0 = 0x0052
)

// Modifier is the modifier bitset sent with a key. Bits other than Shift and
// AltGr are reserved and ignored.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAltGr
)

func (m Modifier) Shift() bool { return m&ModShift != 0 }

func (m Modifier) AltGr() bool { return m&ModAltGr != 0 }

// Normalize drops the reserved bits.
func (m Modifier) Normalize() Modifier { return m & (ModShift | ModAltGr) }

func (m Modifier) String() string {
	switch m.Normalize() {
	case ModShift:
		return "shift"
	case ModAltGr:
		return "altgr"
	case ModShift | ModAltGr:
		return "shift+altgr"
	default:
		return "none"
	}
}

type KeyEvent struct {
	Code      uint16
	Modifiers Modifier
}

func NewKeyEvent(code uint16, modifier uint8) KeyEvent {
	return KeyEvent{Code: code, Modifiers: Modifier(modifier).Normalize()}
}
