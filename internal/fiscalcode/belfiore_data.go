package fiscalcode

// builtinPlaces covers the municipalities most riders are born in plus the
// most frequent foreign birth countries (Z codes). Unlisted places can be
// added with LoadFile.
var builtinPlaces = map[string]string{
	"Agrigento":       "A089",
	"Alessandria":     "A182",
	"Ancona":          "A271",
	"Andria":          "A285",
	"Aosta":           "A326",
	"Arezzo":          "A390",
	"Asti":            "A479",
	"Avellino":        "A509",
	"Bari":            "A662",
	"Benevento":       "A783",
	"Bergamo":         "A794",
	"Bologna":         "A944",
	"Bolzano":         "A952",
	"Brescia":         "B157",
	"Brindisi":        "B180",
	"Cagliari":        "B354",
	"Campobasso":      "B519",
	"Caserta":         "B963",
	"Catania":         "C351",
	"Catanzaro":       "C352",
	"Cesena":          "C573",
	"Como":            "C933",
	"Cosenza":         "D086",
	"Cremona":         "D150",
	"Cuneo":           "D205",
	"Ferrara":         "D548",
	"Firenze":         "D612",
	"Foggia":          "D643",
	"Forlì":           "D704",
	"Genova":          "D969",
	"La Spezia":       "E463",
	"L'Aquila":        "A345",
	"Latina":          "E472",
	"Lecce":           "E506",
	"Lecco":           "E507",
	"Livorno":         "E625",
	"Lucca":           "E715",
	"Mantova":         "E897",
	"Messina":         "F158",
	"Milano":          "F205",
	"Modena":          "F257",
	"Monza":           "F704",
	"Napoli":          "F839",
	"Novara":          "F952",
	"Nuoro":           "F979",
	"Oristano":        "G113",
	"Padova":          "G224",
	"Palermo":         "G273",
	"Parma":           "G337",
	"Pavia":           "G388",
	"Perugia":         "G478",
	"Pesaro":          "G479",
	"Pescara":         "G482",
	"Piacenza":        "G535",
	"Pisa":            "G702",
	"Potenza":         "G942",
	"Prato":           "G999",
	"Ragusa":          "H163",
	"Ravenna":         "H199",
	"Reggio Calabria": "H224",
	"Reggio Emilia":   "H223",
	"Rimini":          "H294",
	"Roma":            "H501",
	"Salerno":         "H703",
	"Sassari":         "I452",
	"Siena":           "I726",
	"Siracusa":        "I754",
	"Taranto":         "L049",
	"Terni":           "L117",
	"Torino":          "L219",
	"Trapani":         "L331",
	"Trento":          "L378",
	"Treviso":         "L407",
	"Trieste":         "L424",
	"Udine":           "L483",
	"Varese":          "L682",
	"Venezia":         "L736",
	"Verona":          "L781",
	"Vicenza":         "L840",

	"Albania":     "Z100",
	"Francia":     "Z110",
	"Germania":    "Z112",
	"Regno Unito": "Z114",
	"Romania":     "Z129",
	"Spagna":      "Z131",
	"Svizzera":    "Z133",
	"Ucraina":     "Z138",
	"Cina":        "Z210",
	"Filippine":   "Z216",
	"India":       "Z222",
	"Pakistan":    "Z236",
	"Bangladesh":  "Z249",
	"Marocco":     "Z330",
	"Nigeria":     "Z335",
	"Egitto":      "Z336",
	"Senegal":     "Z343",
	"Tunisia":     "Z352",
	"Stati Uniti": "Z404",
	"Argentina":   "Z600",
	"Brasile":     "Z602",
}

// builtinProvinces maps province abbreviations to the code of the provincial
// capital. Used only when the place name itself is unknown, so a small town
// annotated "(PA)" resolves to Palermo's code.
var builtinProvinces = map[string]string{
	"AG": "A089", "AL": "A182", "AN": "A271", "AO": "A326", "AQ": "A345",
	"AR": "A390", "AT": "A479", "AV": "A509", "BA": "A662", "BG": "A794",
	"BN": "A783", "BO": "A944", "BR": "B180", "BS": "B157", "BZ": "A952",
	"CA": "B354", "CB": "B519", "CE": "B963", "CN": "D205", "CO": "C933",
	"CR": "D150", "CS": "D086", "CT": "C351", "CZ": "C352", "FE": "D548",
	"FG": "D643", "FI": "D612", "GE": "D969", "LC": "E507", "LE": "E506",
	"LI": "E625", "LT": "E472", "LU": "E715", "MB": "F704", "ME": "F158",
	"MI": "F205", "MN": "E897", "MO": "F257", "NA": "F839", "NO": "F952",
	"NU": "F979", "OR": "G113", "PA": "G273", "PC": "G535", "PD": "G224",
	"PE": "G482", "PG": "G478", "PI": "G702", "PO": "G999", "PR": "G337",
	"PV": "G388", "PZ": "G942", "RA": "H199", "RC": "H224", "RE": "H223",
	"RG": "H163", "RM": "H501", "RN": "H294", "SA": "H703", "SI": "I726",
	"SP": "E463", "SR": "I754", "SS": "I452", "TA": "L049", "TN": "L378",
	"TO": "L219", "TP": "L331", "TR": "L117", "TS": "L424", "TV": "L407",
	"UD": "L483", "VA": "L682", "VE": "L736", "VI": "L840", "VR": "L781",
}
