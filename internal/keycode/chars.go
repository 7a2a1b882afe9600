package keycode

import "sort"

type keyInfo struct {
	char   rune
	name   string
	numpad bool
}

var keys = map[uint16]keyInfo{
	KeyGrave:        {'`', "Grave", false},
	KeyTilde:        {'~', "Tilde", false},
	Key1:            {'1', "1", false},
	Key2:            {'2', "2", false},
	Key3:            {'3', "3", false},
	Key4:            {'4', "4", false},
	Key5:            {'5', "5", false},
	Key6:            {'6', "6", false},
	Key7:            {'7', "7", false},
	Key8:            {'8', "8", false},
	Key9:            {'9', "9", false},
	Key0:            {'0', "0", false},
	KeyExclaim:      {'!', "Exclaim", false},
	KeyAt:           {'@', "At", false},
	KeyHash:         {'#', "Hash", false},
	KeyDollar:       {'$', "Dollar", false},
	KeyPercent:      {'%', "Percent", false},
	KeyCircum:       {'^', "Circum", false},
	KeyAmpersand:    {'&', "Ampersand", false},
	KeyAsterisk:     {'*', "Asterisk", false},
	KeyParenLeft:    {'(', "ParenLeft", false},
	KeyParenRight:   {')', "ParenRight", false},
	KeyMinus:        {'-', "Minus", false},
	KeyUnderscore:   {'_', "UnderScore", false},
	KeyEquals:       {'=', "Equals", false},
	KeyPlus:         {'+', "Plus", false},
	KeyA:            {'a', "a", false},
	KeyB:            {'b', "b", false},
	KeyC:            {'c', "c", false},
	KeyD:            {'d', "d", false},
	KeyE:            {'e', "e", false},
	KeyF:            {'f', "f", false},
	KeyG:            {'g', "g", false},
	KeyH:            {'h', "h", false},
	KeyI:            {'i', "i", false},
	KeyJ:            {'j', "j", false},
	KeyK:            {'k', "k", false},
	KeyL:            {'l', "l", false},
	KeyM:            {'m', "m", false},
	KeyN:            {'n', "n", false},
	KeyO:            {'o', "o", false},
	KeyP:            {'p', "p", false},
	KeyQ:            {'q', "q", false},
	KeyR:            {'r', "r", false},
	KeyS:            {'s', "s", false},
	KeyT:            {'t', "t", false},
	KeyU:            {'u', "u", false},
	KeyV:            {'v', "v", false},
	KeyW:            {'w', "w", false},
	KeyX:            {'x', "x", false},
	KeyY:            {'y', "y", false},
	KeyZ:            {'z', "z", false},
	KeyShiftA:       {'A', "A", false},
	KeyShiftB:       {'B', "B", false},
	KeyShiftC:       {'C', "C", false},
	KeyShiftD:       {'D', "D", false},
	KeyShiftE:       {'E', "E", false},
	KeyShiftF:       {'F', "F", false},
	KeyShiftG:       {'G', "G", false},
	KeyShiftH:       {'H', "H", false},
	KeyShiftI:       {'I', "I", false},
	KeyShiftJ:       {'J', "J", false},
	KeyShiftK:       {'K', "K", false},
	KeyShiftL:       {'L', "L", false},
	KeyShiftM:       {'M', "M", false},
	KeyShiftN:       {'N', "N", false},
	KeyShiftO:       {'O', "O", false},
	KeyShiftP:       {'P', "P", false},
	KeyShiftQ:       {'Q', "Q", false},
	KeyShiftR:       {'R', "R", false},
	KeyShiftS:       {'S', "S", false},
	KeyShiftT:       {'T', "T", false},
	KeyShiftU:       {'U', "U", false},
	KeyShiftV:       {'V', "V", false},
	KeyShiftW:       {'W', "W", false},
	KeyShiftX:       {'X', "X", false},
	KeyShiftY:       {'Y', "Y", false},
	KeyShiftZ:       {'Z', "Z", false},
	KeyBracketLeft:  {'[', "BracketLeft", false},
	KeyBraceLeft:    {'{', "BraceLeft", false},
	KeyBracketRight: {']', "BracketRight", false},
	KeyBraceRight:   {'}', "BraceRight", false},
	KeyBackSlash:    {'\\', "BackSlash", false},
	KeyBar:          {'|', "Bar", false},
	KeySemicolon:    {';', "Semicolon", false},
	KeyColon:        {':', "Colon", false},
	KeyApostrophe:   {'\'', "Apostrophe", false},
	KeyQuote:        {'"', "Quote", false},
	KeyComma:        {',', "Comma", false},
	KeyLess:         {'<', "Less", false},
	KeyPeriod:       {'.', "Period", false},
	KeyGreater:      {'>', "Greater", false},
	KeySlash:        {'/', "Slash", false},
	KeyQuestion:     {'?', "Question", false},

	KeyKP0:          {'0', "Num0", true},
	KeyKP1:          {'1', "Num1", true},
	KeyKP2:          {'2', "Num2", true},
	KeyKP3:          {'3', "Num3", true},
	KeyKP4:          {'4', "Num4", true},
	KeyKP5:          {'5', "Num5", true},
	KeyKP6:          {'6', "Num6", true},
	KeyKP7:          {'7', "Num7", true},
	KeyKP8:          {'8', "Num8", true},
	KeyKP9:          {'9', "Num9", true},
	KeyKPDivide:     {'/', "NumDivide", true},
	KeyKPMultiply:   {'*', "NumMultiply", true},
	KeyKPSubtract:   {'-', "NumSubtract", true},
	KeyKPAdd:        {'+', "NumAdd", true},
	KeyKPDecimal:    {'.', "NumDecimal", true},
}

var byChar = func() map[rune]uint16 {
	index := make(map[rune]uint16, len(keys))
	for code, info := range keys {
		if info.numpad {
			continue
		}
		index[info.char] = code
	}
	return index
}()

var byName = func() map[string]uint16 {
	index := make(map[string]uint16, len(keys))
	for code, info := range keys {
		index[info.name] = code
	}
	return index
}()

// Rune returns the ASCII character a key code stands for.
func Rune(code uint16) (rune, bool) {
	info, ok := keys[code]
	if !ok {
		return 0, false
	}
	return info.char, true
}

// FromRune returns the main-keyboard code producing r. Numeral-pad codes are
// never returned.
func FromRune(r rune) (uint16, bool) {
	code, ok := byChar[r]
	return code, ok
}

// Name is the key name used by layout files ("a", "A", "Exclaim", "Num0").
func Name(code uint16) (string, bool) {
	info, ok := keys[code]
	if !ok {
		return "", false
	}
	return info.name, true
}

// FromName resolves a layout key name back to its code.
func FromName(name string) (uint16, bool) {
	code, ok := byName[name]
	return code, ok
}

func IsNumpad(code uint16) bool {
	return keys[code].numpad
}

// Codes lists every known code in ascending order.
func Codes() []uint16 {
	codes := make([]uint16, 0, len(keys))
	for code := range keys {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
