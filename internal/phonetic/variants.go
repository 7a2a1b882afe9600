package phonetic

import "strings"

// Gap is what may sit between two spelled chunks of a dictionary word: a
// ya, ba or ma phola, a bare hasanta, visarga or chandra.
const Gap = "(?:্[যবম])?্?[ঃঁ]?"

// A spelling lists the Bengali forms a romanized chunk may stand for.
// Vowels also carry the signs used after a consonant; an empty sign means
// the inherent vowel.
type spelling struct {
	forms []string
	signs []string
}

func consonant(forms ...string) spelling { return spelling{forms: forms} }

func vowel(forms []string, signs ...string) spelling {
	return spelling{forms: forms, signs: signs}
}

var spellings = map[string]spelling{
	"a":   vowel([]string{"আ", "অ্যা", "এ"}, "া", "্যা"),
	"aa":  vowel([]string{"আ"}, "া"),
	"i":   vowel([]string{"ই", "ঈ", "য়ি", "য়ী"}, "ি", "ী"),
	"ee":  vowel([]string{"ই", "ঈ"}, "ি", "ী"),
	"ii":  vowel([]string{"ঈ", "ই"}, "ী", "ি"),
	"u":   vowel([]string{"উ", "ঊ"}, "ু", "ূ"),
	"oo":  vowel([]string{"উ", "ঊ"}, "ু", "ূ"),
	"uu":  vowel([]string{"ঊ", "উ"}, "ূ", "ু"),
	"e":   vowel([]string{"এ", "অ্যা"}, "ে", "্যা"),
	"o":   vowel([]string{"ও", "অ"}, "ো", ""),
	"oi":  vowel([]string{"ঐ", "ওই"}, "ৈ", "োই"),
	"ou":  vowel([]string{"ঔ", "ওউ"}, "ৌ", "োউ"),
	"rri": vowel([]string{"ঋ"}, "ৃ"),

	"b":   consonant("ব"),
	"bh":  consonant("ভ"),
	"v":   consonant("ভ"),
	"c":   consonant("চ", "ছ"),
	"ch":  consonant("চ", "ছ"),
	"chh": consonant("ছ"),
	"d":   consonant("দ", "ড"),
	"dh":  consonant("ধ", "ঢ"),
	"f":   consonant("ফ"),
	"ph":  consonant("ফ"),
	"g":   consonant("গ"),
	"gh":  consonant("ঘ"),
	"ng":  consonant("ং", "ঙ", "ঙ্গ"),
	"h":   consonant("হ", "ঃ"),
	"j":   consonant("জ", "য", "ঝ"),
	"jh":  consonant("ঝ"),
	"k":   consonant("ক"),
	"kh":  consonant("খ", "ক্ষ"),
	"kkh": consonant("ক্ষ", "ক্খ"),
	"ksh": consonant("ক্ষ", "ক্শ"),
	"l":   consonant("ল"),
	"m":   consonant("ম"),
	"n":   consonant("ন", "ণ"),
	"p":   consonant("প"),
	"q":   consonant("ক"),
	"r":   consonant("র", "ড়", "ঢ়", "ৃ"),
	"rh":  consonant("ঢ়"),
	"s":   consonant("স", "শ", "ষ"),
	"sh":  consonant("শ", "ষ", "স"),
	"t":   consonant("ত", "ট", "ৎ"),
	"th":  consonant("থ", "ঠ"),
	"w":   consonant("ও", "ব"),
	"x":   consonant("ক্স"),
	"y":   consonant("য়", "য", "্য"),
	"z":   consonant("য", "জ"),
}

var longestSpelling = func() int {
	n := 0
	for find := range spellings {
		n = max(n, len(find))
	}
	return n
}()

// Spellings splits romanized text into chunks, longest first, and lists the
// Bengali forms each chunk may have been meant as. Letter case is ignored.
// Characters without an entry stand for their own conversion.
func Spellings(text string) [][]string {
	text = strings.ToLower(text)
	var chunks [][]string
	afterConsonant := false
	for cur := 0; cur < len(text); {
		matched := false
		for n := min(longestSpelling, len(text)-cur); n > 0; n-- {
			sp, ok := spellings[text[cur:cur+n]]
			if !ok {
				continue
			}
			if sp.signs != nil && afterConsonant {
				chunks = append(chunks, sp.signs)
			} else {
				chunks = append(chunks, sp.forms)
			}
			afterConsonant = sp.signs == nil
			cur += n
			matched = true
			break
		}
		if matched {
			continue
		}
		size := 1
		for cur+size < len(text) && !isRuneStart(text[cur+size]) {
			size++
		}
		if converted := Convert(text[cur : cur+size]); converted != "" {
			chunks = append(chunks, []string{converted})
		}
		afterConsonant = false
		cur += size
	}
	return chunks
}
