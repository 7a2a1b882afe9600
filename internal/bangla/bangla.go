// Package bangla holds the Bengali code points the engine reasons about and
// the character classes built on them.
package bangla

import "strings"

const (
	Chandra  = 'ঁ'
	Anusvara = 'ং'
	Visarga  = 'ঃ'

	A        = 'অ'
	AA       = 'আ'
	I        = 'ই'
	II       = 'ঈ'
	U        = 'উ'
	UU       = 'ঊ'
	RRI      = 'ঋ'
	VocalicL = 'ঌ'
	E        = 'এ'
	OI       = 'ঐ'
	O        = 'ও'
	OU       = 'ঔ'

	K   = 'ক'
	KH  = 'খ'
	G   = 'গ'
	GH  = 'ঘ'
	NGA = 'ঙ'
	C   = 'চ'
	CH  = 'ছ'
	J   = 'জ'
	JH  = 'ঝ'
	NYA = 'ঞ'
	TT  = 'ট'
	TTH = 'ঠ'
	DD  = 'ড'
	DDH = 'ঢ'
	NN  = 'ণ'
	T   = 'ত'
	TH  = 'থ'
	D   = 'দ'
	DH  = 'ধ'
	N   = 'ন'
	P   = 'প'
	PH  = 'ফ'
	B   = 'ব'
	BH  = 'ভ'
	M   = 'ম'
	Z   = 'য'
	R   = 'র'
	L   = 'ল'
	SH  = 'শ'
	SS  = 'ষ'
	S   = 'স'
	H   = 'হ'

	AAKar      = 'া'
	IKar       = 'ি'
	IIKar      = 'ী'
	UKar       = 'ু'
	UUKar      = 'ূ'
	RRIKar     = 'ৃ'
	VocalicRR  = 'ৄ'
	EKar       = 'ে'
	OIKar      = 'ৈ'
	OKar       = 'ো'
	OUKar      = 'ৌ'
	Hasanta    = '্'
	Khandatta  = 'ৎ'
	LengthMark = 'ৗ'
	Nukta      = '\u09BC'

	RR = 'ড়'
	RH = 'ঢ়'
	Y  = 'য়'

	SanskritRR = 'ৠ'
	SanskritLL = 'ৡ'

	Dari  = '।'
	DDari = '॥'

	Digit0 = '০'

	ZWNJ = '\u200C'
	ZWJ  = '\u200D'
)

// Multi-rune units a layout can emit in one key.
const (
	Reph  = string(R) + string(Hasanta)
	ZFola = string(Hasanta) + string(Z)
)

const (
	vowels          = "অআইঈউঊঋএঐওঔঌৡািীুূৃেৈোৌ"
	kars            = "ািীুূৃেৈোৌৄ"
	pureConsonants  = "কখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমযরলশষসহৎড়ঢ়য়"
	preBaseKars     = "িেৈ"
	detachedKars    = "ুূৃ"
	independentKeys = "অআইঈউঊঋঌএঐওঔৠৡ"
)

// IsVowel reports independent vowels and vowel signs alike.
func IsVowel(r rune) bool { return strings.ContainsRune(vowels, r) }

func IsKar(r rune) bool { return strings.ContainsRune(kars, r) }

func IsPureConsonant(r rune) bool { return strings.ContainsRune(pureConsonants, r) }

func IsIndependentVowel(r rune) bool { return strings.ContainsRune(independentKeys, r) }

// IsPreBaseKar reports the vowel signs drawn to the left of their consonant.
func IsPreBaseKar(r rune) bool { return strings.ContainsRune(preBaseKars, r) }

// IsDetachableKar reports the signs that modern orthography writes detached
// from the consonant with a ZWNJ.
func IsDetachableKar(r rune) bool { return strings.ContainsRune(detachedKars, r) }

func IsDigit(r rune) bool { return r >= Digit0 && r <= Digit0+9 }

// IsBengali reports any rune in the Bengali block plus the joiners and
// dandas the script borrows.
func IsBengali(r rune) bool {
	switch {
	case r >= 'ঀ' && r <= '৿':
		return true
	case r == ZWJ || r == ZWNJ || r == Dari || r == DDari:
		return true
	}
	return false
}

// ContainsBengali reports whether text has at least one Bengali rune.
func ContainsBengali(text string) bool {
	return strings.IndexFunc(text, IsBengali) >= 0
}

var karVowel = map[rune]rune{
	AAKar:     AA,
	IKar:      I,
	IIKar:     II,
	UKar:      U,
	UUKar:     UU,
	RRIKar:    RRI,
	VocalicRR: SanskritRR,
	EKar:      E,
	OIKar:     OI,
	OKar:      O,
	OUKar:     OU,
}

// KarToVowel maps a vowel sign to its independent vowel.
func KarToVowel(r rune) (rune, bool) {
	v, ok := karVowel[r]
	return v, ok
}

// LocalizeDigits replaces ASCII digits with Bengali digits.
func LocalizeDigits(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return Digit0 + (r - '0')
		}
		return r
	}, text)
}

// LastRune returns the final rune of text, or 0 for an empty string.
func LastRune(text string) rune {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	return runes[len(runes)-1]
}

// FirstRune returns the first rune of text, or 0 for an empty string.
func FirstRune(text string) rune {
	for _, r := range text {
		return r
	}
	return 0
}

// Letters commonly typed in place of one another.
var confusable = map[rune]string{
	I:         "ইঈ",
	II:        "ঈই",
	U:         "উঊ",
	UU:        "ঊউ",
	IKar:      "িী",
	IIKar:     "ীি",
	UKar:      "ুূ",
	UUKar:     "ূু",
	N:         "নণ",
	NN:        "ণন",
	J:         "জয",
	Z:         "যজ",
	SH:        "শষস",
	SS:        "ষশস",
	S:         "সশষ",
	T:         "তৎ",
	Khandatta: "ৎত",
}

// Variants lists r and the letters often typed in its place, r first.
func Variants(r rune) []string {
	letters, ok := confusable[r]
	if !ok {
		return []string{string(r)}
	}
	var out []string
	for _, l := range letters {
		out = append(out, string(l))
	}
	return out
}
