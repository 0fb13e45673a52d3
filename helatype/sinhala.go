package helatype

/**
 * helatype - A Sinhala transliteration library
 * Licensed under AGPL-3.0-only
 */

// SinhalaEntries returns a copy of the built-in Singlish scheme. Keys are
// case sensitive: "t" is ට, "th" is ත, "T" is ඨ.
func SinhalaEntries() []MappingEntry {
	return append([]MappingEntry(nil), sinhalaEntries...)
}

// SinhalaVowelSigns returns a copy of the combining forms used after a
// consonant. "a" is the inherent vowel and has no visible mark.
func SinhalaVowelSigns() []VowelSign {
	return append([]VowelSign(nil), sinhalaVowelSigns...)
}

var sinhalaEntries = []MappingEntry{
	// Vowels
	{"a", "අ", CategoryVowel},
	{"aa", "ආ", CategoryVowel},
	{"A", "ඇ", CategoryVowel},
	{"ae", "ඇ", CategoryVowel},
	{"Aa", "ඈ", CategoryVowel},
	{"i", "ඉ", CategoryVowel},
	{"ii", "ඊ", CategoryVowel},
	{"I", "ඊ", CategoryVowel},
	{"u", "උ", CategoryVowel},
	{"uu", "ඌ", CategoryVowel},
	{"U", "ඌ", CategoryVowel},
	{"Ru", "ඍ", CategoryVowel},
	{"e", "එ", CategoryVowel},
	{"ee", "ඒ", CategoryVowel},
	{"E", "ඒ", CategoryVowel},
	{"ai", "ඓ", CategoryVowel},
	{"o", "ඔ", CategoryVowel},
	{"oo", "ඕ", CategoryVowel},
	{"O", "ඕ", CategoryVowel},
	{"au", "ඖ", CategoryVowel},

	// Consonants
	{"k", "ක", CategoryConsonant},
	{"kh", "ඛ", CategoryConsonant},
	{"K", "ඛ", CategoryConsonant},
	{"g", "ග", CategoryConsonant},
	{"gh", "ඝ", CategoryConsonant},
	{"G", "ඝ", CategoryConsonant},
	{"Ng", "ඞ", CategoryConsonant},
	{"ng", "ඟ", CategoryConsonant},
	{"c", "ච", CategoryConsonant},
	{"ch", "ච", CategoryConsonant},
	{"Ch", "ඡ", CategoryConsonant},
	{"C", "ඡ", CategoryConsonant},
	{"j", "ජ", CategoryConsonant},
	{"jh", "ඣ", CategoryConsonant},
	{"J", "ඣ", CategoryConsonant},
	{"Ny", "ඤ", CategoryConsonant},
	{"gn", "ඥ", CategoryConsonant},
	{"t", "ට", CategoryConsonant},
	{"T", "ඨ", CategoryConsonant},
	{"d", "ඩ", CategoryConsonant},
	{"D", "ඪ", CategoryConsonant},
	{"N", "ණ", CategoryConsonant},
	{"nnd", "ඬ", CategoryConsonant},
	{"th", "ත", CategoryConsonant},
	{"Th", "ථ", CategoryConsonant},
	{"dh", "ද", CategoryConsonant},
	{"Dh", "ධ", CategoryConsonant},
	{"n", "න", CategoryConsonant},
	{"ndh", "ඳ", CategoryConsonant},
	{"p", "ප", CategoryConsonant},
	{"ph", "ඵ", CategoryConsonant},
	{"P", "ඵ", CategoryConsonant},
	{"b", "බ", CategoryConsonant},
	{"bh", "භ", CategoryConsonant},
	{"B", "භ", CategoryConsonant},
	{"m", "ම", CategoryConsonant},
	{"mb", "ඹ", CategoryConsonant},
	{"y", "ය", CategoryConsonant},
	{"r", "ර", CategoryConsonant},
	{"l", "ල", CategoryConsonant},
	{"L", "ළ", CategoryConsonant},
	{"v", "ව", CategoryConsonant},
	{"w", "ව", CategoryConsonant},
	{"sh", "ශ", CategoryConsonant},
	{"Sh", "ෂ", CategoryConsonant},
	{"s", "ස", CategoryConsonant},
	{"h", "හ", CategoryConsonant},

	// Letters borrowed for foreign sounds
	{"f", "ෆ", CategorySpecial},
	{"z", "ස", CategorySpecial},
}

var sinhalaVowelSigns = []VowelSign{
	{"a", ""},
	{"aa", "ා"},
	{"A", "ැ"},
	{"ae", "ැ"},
	{"Aa", "ෑ"},
	{"i", "ි"},
	{"ii", "ී"},
	{"I", "ී"},
	{"u", "ු"},
	{"uu", "ූ"},
	{"U", "ූ"},
	{"Ru", "ෘ"},
	{"e", "ෙ"},
	{"ee", "ේ"},
	{"E", "ේ"},
	{"ai", "ෛ"},
	{"o", "ො"},
	{"oo", "ෝ"},
	{"O", "ෝ"},
	{"au", "ෞ"},
}
