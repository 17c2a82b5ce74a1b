package phonology

// defaultDocument is the built-in inventory used when no phonology file is
// available or the file cannot be parsed. It is deliberately small but
// sufficient to generate output for every role and category.
func defaultDocument() Document {
	return Document{
		OnsetPhones: map[string][]string{
			// Nouns: heavy clusters.
			"n": {"d", "z", "n", "l", "r", "dr", "gr", "gl", "gn", "k", "kr", "kl", "br", "bl", "wr"},
			// Verbs: sharp, percussive.
			"v": {"t", "p", "k", "tr", "tw", "pr", "pl", "sk", "sp", "st"},
			// Adjectives: fricatives.
			"a": {"f", "s", "h", "fl", "fr", "hl", "br", "bl"},
			"r": {"j", "w", "m"},
			"s": {"f", "j", "z"},
		},
		NucleusVowels: map[string][]string{
			"wood":  {"i", "ia", "iu", "io"},
			"fire":  {"a", "ay", "ah", "oa", "ya"},
			"earth": {"u", "ua", "ui", "ue"},
			"metal": {"e", "ei", "eo", "ey"},
			"water": {"o", "ou", "oa", "oy"},
		},
		NucleusModifiers: map[string][]string{
			"n": {"w", "u", "r", "l"},
			"v": {"j", "i", "n"},
			"a": {"h", "w"},
			"r": {"l", "r", "s"},
			"s": {"z"},
		},
		Coda: map[string][]string{
			"wood":  {"ft", "lt", "nt", "rt", "st"},
			"fire":  {"ks", "k", "z", "sk", "st"},
			"earth": {"rb", "rf", "rg", "rm", "rn"},
			"metal": {"ls", "ns", "ts", "ks"},
			"water": {"m", "l", "n", "ng", "rm", "rn"},
		},
		Templates: map[string][]string{
			"n":       {"ONK", "ONM", "ONKM"},
			"v":       {"ONK", "ON", "ONM"},
			"a":       {"ONK", "ONM"},
			"default": {"ONK", "ONM", "ONKM"},
		},
		Morphology: Morphology{
			Connectors:         []string{"a'", "e'", "i'"},
			Suffixes:           []string{"os", "ix", "ul", "ym"},
			CompoundStrategies: []string{"connector", "suffix", "both"},
		},
		Constraints: []Constraint{
			{Pattern: "[aeiou]{4}", Reason: "vowel run too long"},
			{Pattern: "[bcdfghjklmnpqrstvwxz]{5}", Reason: "consonant cluster too long"},
			{Pattern: "^ng", Reason: "ng cannot open a word"},
		},
		// Pair-collapse rules: each maps a doubled letter to a diphthong or
		// cluster whose expansion cannot recreate the doubled letter, so a
		// second application is a no-op.
		Orthography: []Rewrite{
			{From: "aa", To: "ai"},
			{From: "ee", To: "eo"},
			{From: "ii", To: "ia"},
			{From: "oo", To: "ou"},
			{From: "uu", To: "ua"},
			{From: "ll", To: "lr"},
		},
	}
}

// Default returns the compiled built-in phonology.
func Default() *Config {
	return newConfig(defaultDocument())
}
