package facts

// CatFact mirrors the payload returned by the cat fact endpoint.
type CatFact struct {
	Fact   string `json:"fact"`
	Length int    `json:"length"`
}

// AdviceSlip is the advice object nested under "slip" in the advice payload.
type AdviceSlip struct {
	ID     int    `json:"id"`
	Advice string `json:"advice"`
}

// catFactWire and adviceWire decode with pointer fields so a payload that
// omits the text is a decode error rather than an empty fact. length and the
// slip id stay optional.
type catFactWire struct {
	Fact   *string `json:"fact"`
	Length int     `json:"length"`
}

type adviceWire struct {
	Slip *struct {
		ID     int     `json:"id"`
		Advice *string `json:"advice"`
	} `json:"slip"`
}

// Display prefixes for each source.
const (
	catFactPrefix = "🐱 Cat Fact: "
	advicePrefix  = "💡 Random Advice: "
)
