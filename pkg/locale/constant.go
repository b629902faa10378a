package locale

// Supported language codes. The API speaks English by default, Vietnamese
// for the local dashboards, and Japanese for the partner deployment.
const (
	EN = "en"
	VI = "vi"
	JA = "ja"
)

// DefaultLang is used wherever no supported language is given.
const DefaultLang = EN

// LangList enumerates every supported code.
var LangList = []string{EN, VI, JA}
