package phonetic

// The pattern table. Longer finds win; among equal lengths the earlier entry
// wins. Conditions read "prefix:<scope>" or "suffix:<scope>", scope being
// punctuation, vowel, consonant or exact:<text>, negated with a leading "!".

func kar(independent string) []rule {
	return []rule{
		when(independent, "prefix:!consonant", "suffix:!exact:`"),
		when(independent, "prefix:punctuation", "suffix:!exact:`"),
	}
}

var table = []pattern{
	// b, v
	{find: "bhl", replace: "ভ্ল"},
	{find: "bj", replace: "ব্জ"},
	{find: "bd", replace: "ব্দ"},
	{find: "bb", replace: "ব্ব"},
	{find: "bl", replace: "ব্ল"},
	{find: "bh", replace: "ভ"},
	{find: "vl", replace: "ভ্ল"},
	{find: "b", replace: "ব"},
	{find: "v", replace: "ভ"},

	// c
	{find: "cNG", replace: "চ্ঞ"},
	{find: "cch", replace: "চ্ছ"},
	{find: "cc", replace: "চ্চ"},
	{find: "ch", replace: "ছ"},
	{find: "c", replace: "চ"},

	// d, D
	{find: "dhn", replace: "ধ্ন"},
	{find: "dhm", replace: "ধ্ম"},
	{find: "dgh", replace: "দ্ঘ"},
	{find: "ddh", replace: "দ্ধ"},
	{find: "dbh", replace: "দ্ভ"},
	{find: "dv", replace: "দ্ভ"},
	{find: "dm", replace: "দ্ম"},
	{find: "DD", replace: "ড্ড"},
	{find: "Dh", replace: "ঢ"},
	{find: "dh", replace: "ধ"},
	{find: "dg", replace: "দ্গ"},
	{find: "dd", replace: "দ্দ"},
	{find: "D", replace: "ড"},
	{find: "d", replace: "দ"},

	// punctuation and signs
	{find: "...", replace: "..."},
	{find: ".`", replace: "."},
	{find: "..", replace: "।।"},
	{find: ".", replace: "।"},
	{find: ",,", replace: "্\u200c"},
	{find: ":`", replace: ":"},
	{find: ":", replace: "ঃ"},
	{find: "^`", replace: "^"},
	{find: "^", replace: "ঁ"},
	{find: "$", replace: "৳"},
	{find: "`", replace: ""},

	// g, G
	{find: "ghn", replace: "ঘ্ন"},
	{find: "Gh", replace: "ঘ"},
	{find: "gh", replace: "ঘ"},
	{find: "gN", replace: "গ্ণ"},
	{find: "GN", replace: "গ্ণ"},
	{find: "gn", replace: "গ্ন"},
	{find: "Gn", replace: "গ্ন"},
	{find: "gm", replace: "গ্ম"},
	{find: "Gm", replace: "গ্ম"},
	{find: "gl", replace: "গ্ল"},
	{find: "Gl", replace: "গ্ল"},
	{find: "gg", replace: "জ্ঞ"},
	{find: "GG", replace: "জ্ঞ"},
	{find: "Gg", replace: "জ্ঞ"},
	{find: "gG", replace: "জ্ঞ"},
	{find: "g", replace: "গ"},
	{find: "G", replace: "গ"},

	// h
	{find: "hN", replace: "হ্ণ"},
	{find: "hn", replace: "হ্ন"},
	{find: "hm", replace: "হ্ম"},
	{find: "hl", replace: "হ্ল"},
	{find: "h", replace: "হ"},

	// j, J
	{find: "jjh", replace: "জ্ঝ"},
	{find: "jNG", replace: "জ্ঞ"},
	{find: "jh", replace: "ঝ"},
	{find: "jj", replace: "জ্জ"},
	{find: "j", replace: "জ"},
	{find: "J", replace: "জ"},

	// k
	{find: "kkhN", replace: "ক্ষ্ণ"},
	{find: "kShN", replace: "ক্ষ্ণ"},
	{find: "kkhm", replace: "ক্ষ্ম"},
	{find: "kShm", replace: "ক্ষ্ম"},
	{find: "kxN", replace: "ক্ষ্ণ"},
	{find: "kxm", replace: "ক্ষ্ম"},
	{find: "kkh", replace: "ক্ষ"},
	{find: "kSh", replace: "ক্ষ"},
	{find: "ksh", replace: "কশ"},
	{find: "kx", replace: "ক্ষ"},
	{find: "kk", replace: "ক্ক"},
	{find: "kT", replace: "ক্ট"},
	{find: "kt", replace: "ক্ত"},
	{find: "kl", replace: "ক্ল"},
	{find: "ks", replace: "ক্স"},
	{find: "kh", replace: "খ"},
	{find: "k", replace: "ক"},
	{find: "q", replace: "ক"},

	// l
	{find: "lbh", replace: "ল্ভ"},
	{find: "ldh", replace: "ল্ধ"},
	{find: "lkh", replace: "লখ"},
	{find: "lgh", replace: "লঘ"},
	{find: "lph", replace: "লফ"},
	{find: "lk", replace: "ল্ক"},
	{find: "lg", replace: "ল্গ"},
	{find: "lT", replace: "ল্ট"},
	{find: "lD", replace: "ল্ড"},
	{find: "lp", replace: "ল্প"},
	{find: "lv", replace: "ল্ভ"},
	{find: "lm", replace: "ল্ম"},
	{find: "ll", replace: "ল্ল"},
	{find: "lb", replace: "ল্ব"},
	{find: "l", replace: "ল"},

	// m
	{find: "mth", replace: "ম্থ"},
	{find: "mph", replace: "ম্ফ"},
	{find: "mbh", replace: "ম্ভ"},
	{find: "mpl", replace: "মপ্ল"},
	{find: "mn", replace: "ম্ন"},
	{find: "mp", replace: "ম্প"},
	{find: "mv", replace: "ম্ভ"},
	{find: "mm", replace: "ম্ম"},
	{find: "ml", replace: "ম্ল"},
	{find: "mb", replace: "ম্ব"},
	{find: "mf", replace: "ম্ফ"},
	{find: "m", replace: "ম"},

	// digits
	{find: "0", replace: "০"},
	{find: "1", replace: "১"},
	{find: "2", replace: "২"},
	{find: "3", replace: "৩"},
	{find: "4", replace: "৪"},
	{find: "5", replace: "৫"},
	{find: "6", replace: "৬"},
	{find: "7", replace: "৭"},
	{find: "8", replace: "৮"},
	{find: "9", replace: "৯"},

	// n, N
	{find: "NgkSh", replace: "ঙ্ক্ষ"},
	{find: "Ngkkh", replace: "ঙ্ক্ষ"},
	{find: "NGch", replace: "ঞ্ছ"},
	{find: "Nggh", replace: "ঙ্ঘ"},
	{find: "Ngkh", replace: "ঙ্খ"},
	{find: "NGjh", replace: "ঞ্ঝ"},
	{find: "ngOU", replace: "ঙ্গৌ"},
	{find: "ngOI", replace: "ঙ্গৈ"},
	{find: "Ngkx", replace: "ঙ্ক্ষ"},
	{find: "NGc", replace: "ঞ্চ"},
	{find: "nch", replace: "ঞ্ছ"},
	{find: "njh", replace: "ঞ্ঝ"},
	{find: "ngh", replace: "ঙ্ঘ"},
	{find: "Ngk", replace: "ঙ্ক"},
	{find: "Ngx", replace: "ঙ্ষ"},
	{find: "Ngg", replace: "ঙ্গ"},
	{find: "Ngm", replace: "ঙ্ম"},
	{find: "NGj", replace: "ঞ্জ"},
	{find: "ndh", replace: "ন্ধ"},
	{find: "nTh", replace: "ন্ঠ"},
	{find: "NTh", replace: "ণ্ঠ"},
	{find: "nth", replace: "ন্থ"},
	{find: "nkh", replace: "ঙ্খ"},
	{find: "ngo", replace: "ঙ্গ"},
	{find: "nga", replace: "ঙ্গা"},
	{find: "ngi", replace: "ঙ্গি"},
	{find: "ngI", replace: "ঙ্গী"},
	{find: "ngu", replace: "ঙ্গু"},
	{find: "ngU", replace: "ঙ্গূ"},
	{find: "nge", replace: "ঙ্গে"},
	{find: "ngO", replace: "ঙ্গো"},
	{find: "NDh", replace: "ণ্ঢ"},
	{find: "nsh", replace: "নশ"},
	{find: "Ngr", replace: "ঙর"},
	{find: "NGr", replace: "ঞর"},
	{find: "ngr", replace: "ংর"},
	{find: "nj", replace: "ঞ্জ"},
	{find: "Ng", replace: "ঙ"},
	{find: "NG", replace: "ঞ"},
	{find: "nk", replace: "ঙ্ক"},
	{find: "ng", replace: "ং"},
	{find: "nn", replace: "ন্ন"},
	{find: "NN", replace: "ণ্ণ"},
	{find: "Nn", replace: "ণ্ন"},
	{find: "nm", replace: "ন্ম"},
	{find: "Nm", replace: "ণ্ম"},
	{find: "nd", replace: "ন্দ"},
	{find: "nT", replace: "ন্ট"},
	{find: "NT", replace: "ণ্ট"},
	{find: "nD", replace: "ন্ড"},
	{find: "ND", replace: "ণ্ড"},
	{find: "nt", replace: "ন্ত"},
	{find: "ns", replace: "ন্স"},
	{find: "nc", replace: "ঞ্চ"},
	{find: "n", replace: "ন"},
	{find: "N", replace: "ণ"},

	// vowels
	{find: "OI`", replace: "ৈ"},
	{find: "OU`", replace: "ৌ"},
	{find: "O`", replace: "ো"},
	{find: "OI", replace: "ৈ", rules: kar("ঐ")},
	{find: "OU", replace: "ৌ", rules: kar("ঔ")},
	{find: "O", replace: "ো", rules: kar("ও")},
	{find: "oo`", replace: "ু"},
	{find: "oo", replace: "ু", rules: kar("উ")},
	{find: "o`", replace: ""},
	{find: "oZ", replace: "অ্য"},
	{find: "o", replace: "", rules: []rule{
		when("ও", "prefix:vowel", "prefix:!exact:o"),
		when("অ", "prefix:vowel", "prefix:exact:o"),
		when("অ", "prefix:punctuation"),
	}},
	{find: "aZ", replace: "অ্যা"},
	{find: "a`", replace: "া"},
	{find: "a", replace: "া", rules: []rule{
		when("আ", "prefix:punctuation", "suffix:!exact:`"),
		when("য়া", "prefix:!consonant", "prefix:!exact:a", "suffix:!exact:`"),
		when("আ", "prefix:exact:a", "suffix:!exact:`"),
	}},
	{find: "i`", replace: "ি"},
	{find: "i", replace: "ি", rules: kar("ই")},
	{find: "I`", replace: "ী"},
	{find: "I", replace: "ী", rules: kar("ঈ")},
	{find: "u`", replace: "ু"},
	{find: "u", replace: "ু", rules: kar("উ")},
	{find: "U`", replace: "ূ"},
	{find: "U", replace: "ূ", rules: kar("ঊ")},
	{find: "ee`", replace: "ী"},
	{find: "ee", replace: "ী", rules: kar("ঈ")},
	{find: "e`", replace: "ে"},
	{find: "e", replace: "ে", rules: kar("এ")},
	{find: "rri`", replace: "ৃ"},
	{find: "rri", replace: "ৃ", rules: []rule{
		when("ঋ", "prefix:!consonant"),
		when("ঋ", "prefix:punctuation"),
	}},

	// p, f
	{find: "phl", replace: "ফ্ল"},
	{find: "pT", replace: "প্ট"},
	{find: "pt", replace: "প্ত"},
	{find: "pn", replace: "প্ন"},
	{find: "pp", replace: "প্প"},
	{find: "pl", replace: "প্ল"},
	{find: "ps", replace: "প্স"},
	{find: "ph", replace: "ফ"},
	{find: "fl", replace: "ফ্ল"},
	{find: "f", replace: "ফ"},
	{find: "p", replace: "প"},

	// r, R
	{find: "rrZ", replace: "রর\u200d্য"},
	{find: "rry", replace: "রর\u200d্য"},
	{find: "rZ", replace: "র\u200d্য", rules: []rule{
		when("্র্য", "prefix:consonant", "prefix:!exact:r"),
	}},
	{find: "ry", replace: "র\u200d্য", rules: []rule{
		when("্র্য", "prefix:consonant", "prefix:!exact:r"),
	}},
	{find: "rr", replace: "রর", rules: []rule{
		when("র্", "prefix:!consonant", "suffix:!vowel", "suffix:!exact:r", "suffix:!punctuation"),
		when("্রর", "prefix:consonant", "prefix:!exact:r"),
	}},
	{find: "Rg", replace: "ড়্গ", rules: []rule{
		when("ড়গ", "suffix:exact:h"),
	}},
	{find: "Rh", replace: "ঢ়"},
	{find: "R", replace: "ড়"},
	{find: "r", replace: "র", rules: []rule{
		when("্র", "prefix:consonant", "prefix:!exact:r", "suffix:!exact:y", "suffix:!exact:w", "suffix:!exact:x", "suffix:!exact:Z"),
	}},

	// s, S
	{find: "shch", replace: "শ্ছ"},
	{find: "ShTh", replace: "ষ্ঠ"},
	{find: "Shph", replace: "ষ্ফ"},
	{find: "Sch", replace: "শ্ছ"},
	{find: "skl", replace: "স্ক্ল"},
	{find: "skh", replace: "স্খ"},
	{find: "sth", replace: "স্থ"},
	{find: "sph", replace: "স্ফ"},
	{find: "shc", replace: "শ্চ"},
	{find: "sht", replace: "শ্ত"},
	{find: "shn", replace: "শ্ন"},
	{find: "shm", replace: "শ্ম"},
	{find: "shl", replace: "শ্ল"},
	{find: "Shk", replace: "ষ্ক"},
	{find: "ShT", replace: "ষ্ট"},
	{find: "ShN", replace: "ষ্ণ"},
	{find: "Shp", replace: "ষ্প"},
	{find: "Shf", replace: "ষ্ফ"},
	{find: "Shm", replace: "ষ্ম"},
	{find: "spl", replace: "স্প্ল"},
	{find: "sk", replace: "স্ক"},
	{find: "Sc", replace: "শ্চ"},
	{find: "sT", replace: "স্ট"},
	{find: "st", replace: "স্ত"},
	{find: "sn", replace: "স্ন"},
	{find: "sp", replace: "স্প"},
	{find: "sf", replace: "স্ফ"},
	{find: "sm", replace: "স্ম"},
	{find: "sl", replace: "স্ল"},
	{find: "sh", replace: "শ"},
	{find: "St", replace: "শ্ত"},
	{find: "Sn", replace: "শ্ন"},
	{find: "Sm", replace: "শ্ম"},
	{find: "Sl", replace: "শ্ল"},
	{find: "Sh", replace: "ষ"},
	{find: "s", replace: "স"},
	{find: "S", replace: "শ"},

	// t, T
	{find: "t``", replace: "ৎ"},
	{find: "tth", replace: "ত্থ"},
	{find: "TT", replace: "ট্ট"},
	{find: "Tm", replace: "ট্ম"},
	{find: "Th", replace: "ঠ"},
	{find: "tn", replace: "ত্ন"},
	{find: "tm", replace: "ত্ম"},
	{find: "th", replace: "থ"},
	{find: "tt", replace: "ত্ত"},
	{find: "T", replace: "ট"},
	{find: "t", replace: "ত"},

	// w, x, y, z
	{find: "w", replace: "ও", rules: []rule{
		when("ওয়", "prefix:punctuation", "suffix:vowel"),
		when("্ব", "prefix:consonant"),
	}},
	{find: "x", replace: "ক্স", rules: []rule{
		when("এক্স", "prefix:punctuation"),
	}},
	{find: "y", replace: "্য", rules: []rule{
		when("য়", "prefix:!consonant", "prefix:!punctuation"),
		when("ইয়", "prefix:punctuation"),
	}},
	{find: "Y", replace: "য়"},
	{find: "Z", replace: "্য"},
	{find: "z", replace: "য"},
}
