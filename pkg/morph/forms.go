package morph

// POS tags follow the estnltk single-letter convention:
// S noun, V verb, A adjective, P pronoun, D adverb, J conjunction,
// K adposition, N numeral.

// irregularForms maps inflected or suppletive forms to their analysis.
var irregularForms = map[string]Analysis{
	// personal pronouns
	"mina": {"mina", "P"}, "ma": {"mina", "P"}, "mind": {"mina", "P"},
	"minu": {"mina", "P"}, "mu": {"mina", "P"}, "mul": {"mina", "P"},
	"mulle": {"mina", "P"}, "minul": {"mina", "P"},
	"sina": {"sina", "P"}, "sa": {"sina", "P"}, "sind": {"sina", "P"},
	"sinu": {"sina", "P"}, "su": {"sina", "P"}, "sul": {"sina", "P"},
	"tema": {"tema", "P"}, "ta": {"tema", "P"}, "teda": {"tema", "P"},
	"tal": {"tema", "P"}, "talle": {"tema", "P"},
	"meie": {"meie", "P"}, "me": {"meie", "P"}, "meid": {"meie", "P"},
	"teie": {"teie", "P"}, "teid": {"teie", "P"},
	"nemad": {"tema", "P"}, "nad": {"tema", "P"}, "neid": {"tema", "P"},

	// olema (to be)
	"olen": {"olema", "V"}, "oled": {"olema", "V"}, "on": {"olema", "V"},
	"oleme": {"olema", "V"}, "olete": {"olema", "V"}, "oli": {"olema", "V"},
	"olid": {"olema", "V"}, "olla": {"olema", "V"}, "olnud": {"olema", "V"},
	"pole": {"olema", "V"},

	// minema (to go) is suppletive
	"lähen": {"minema", "V"}, "läheb": {"minema", "V"}, "läks": {"minema", "V"},
	"läksid": {"minema", "V"}, "minna": {"minema", "V"},

	// demonstratives and interrogatives
	"see": {"see", "P"}, "selle": {"see", "P"}, "seda": {"see", "P"},
	"need": {"see", "P"}, "nende": {"see", "P"},
	"kes": {"kes", "P"}, "kelle": {"kes", "P"}, "keda": {"kes", "P"},
	"mis": {"mis", "P"}, "mille": {"mis", "P"}, "mida": {"mis", "P"},

	// indeclinables
	"ja": {"ja", "J"}, "ning": {"ning", "J"}, "või": {"või", "J"},
	"et": {"et", "J"}, "kui": {"kui", "J"}, "aga": {"aga", "J"},
	"nagu": {"nagu", "J"}, "sest": {"sest", "J"},
	"ei": {"ei", "D"}, "ka": {"ka", "D"}, "siis": {"siis", "D"},
	"veel": {"veel", "D"}, "juba": {"juba", "D"}, "väga": {"väga", "D"},
	"järel": {"järel", "K"}, "peal": {"peal", "K"}, "all": {"all", "K"},
}

// knownLemmas lists dictionary forms the stem+ending rules may resolve to.
var knownLemmas = map[string]string{
	// nouns
	"maja": "S", "kool": "S", "linn": "S", "meri": "S", "sõna": "S",
	"keel": "S", "raamat": "S", "laps": "S", "päev": "S", "aasta": "S",
	"peegel": "S", "lasteaed": "S", "siluett": "S", "aken": "S",
	"vesi": "S", "maa": "S", "töö": "S", "pere": "S", "nimi": "S",

	// verbs (ma-infinitive)
	"käima": "V", "vaatama": "V", "tulema": "V", "andma": "V",
	"tegema": "V", "saama": "V", "võtma": "V", "elama": "V",
	"rääkima": "V", "õppima": "V", "armastama": "V",

	// adjectives
	"suur": "A", "väike": "A", "uus": "A", "vana": "A", "hea": "A",
	"ilus": "A", "pikk": "A",

	// pronoun base forms reached via regular endings
	"oma": "P",

	// numerals
	"üks": "N", "kaks": "N", "kolm": "N",
}
