package usecase

// Family is one coarse category of automotive part, with the brand tokens
// that claim it and the keyword patterns matched against normalized names.
type Family struct {
	Name     string
	Brands   []string
	Keywords []string
}

// FallbackFamily is returned when neither brand nor keywords match.
const FallbackFamily = "Other Components"

// defaultFamilies is the classification priority order. The order is part
// of the contract: a brand token listed under two families always resolves
// to the first, so classification stays deterministic.
var defaultFamilies = []Family{
	{
		Name:     "Braking System",
		Brands:   []string{"trw", "ate", "fremax", "ferodo", "frasle", "varga", "controil"},
		Keywords: []string{"freio", "pastilha", "disco", "tambor", "lona", "flexivel"},
	},
	{
		Name:     "Suspension & Steering",
		Brands:   []string{"monroe", "cofap", "nakata", "kayaba", "axios", "viemar", "sampel"},
		Keywords: []string{"amortecedor", "suspensao", "mola", "batente", "coxim", "pivo", "bandeja", "terminal", "bieleta", "direcao", "axial"},
	},
	{
		Name:     "Engine & Cooling",
		Brands:   []string{"mahle", "metal leve", "mann", "tecfil", "fram", "wega", "hengst"},
		Keywords: []string{"filtro", "oleo", "correia", "tensor", "bomba", "valvula", "junta", "radiador", "arrefecimento", "pistao", "bronzina"},
	},
	{
		Name:     "Transmission & Clutch",
		Brands:   []string{"luk", "sachs", "ina", "fag", "skf", "valeo"},
		Keywords: []string{"embreagem", "cambio", "homocinetica", "rolamento", "cubo", "atuador", "plato", "semi eixo", "semieixo"},
	},
	{
		Name:     "Electrical & Injection",
		Brands:   []string{"bosch", "magneti marelli", "ngk", "denso", "delphi"},
		Keywords: []string{"bateria", "alternador", "partida", "sensor", "bobina", "vela", "injecao", "bico", "chicote", "farol", "lampada"},
	},
}

// premiumBrands is the curated first-line brand set used for tier
// resolution. Matching is case-insensitive substring against the brand
// field, so "Mann-Filter" and "Mann Filter" both qualify.
var premiumBrands = []string{
	"bosch", "trw", "ate", "metal leve", "mahle", "ina", "fag", "luk",
	"cofap", "monroe", "nakata", "magneti marelli", "fremax", "mann",
}
