package theme

// Tokens is the presentation bundle a theme resolves to. The client applies
// these verbatim; the server only owns the closed catalog and the fallback.
type Tokens struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Background    string `json:"background"`
	Card          string `json:"card"`
	CardHover     string `json:"card_hover"`
	Button        string `json:"button"`
	ButtonHover   string `json:"button_hover"`
	Accent        string `json:"accent"`
	Border        string `json:"border"`
	Text          string `json:"text"`
	TextSecondary string `json:"text_secondary"`
}

const Default = "theme1"

var catalog = map[string]Tokens{
	"theme1": {
		ID:            "theme1",
		Name:          "Ocean Blue",
		Background:    "from-[#0a0f2c] via-[#1c1f40] to-[#2d1b69]",
		Card:          "bg-[#11152e]",
		CardHover:     "hover:bg-[#1a1d3a]",
		Button:        "from-blue-600 to-purple-600",
		ButtonHover:   "hover:from-blue-700 hover:to-purple-700",
		Accent:        "text-blue-400",
		Border:        "border-gray-800",
		Text:          "text-white",
		TextSecondary: "text-gray-300",
	},
	"theme2": {
		ID:            "theme2",
		Name:          "Rose Garden",
		Background:    "from-[#2d1b2e] via-[#4a1e3d] to-[#6b2c5c]",
		Card:          "bg-[#1a0d1a]",
		CardHover:     "hover:bg-[#2d1b2e]",
		Button:        "from-pink-600 to-rose-600",
		ButtonHover:   "hover:from-pink-700 hover:to-rose-700",
		Accent:        "text-pink-400",
		Border:        "border-pink-800",
		Text:          "text-white",
		TextSecondary: "text-pink-200",
	},
	"theme3": {
		ID:            "theme3",
		Name:          "Forest Night",
		Background:    "from-[#0f2027] via-[#203a43] to-[#2c5530]",
		Card:          "bg-[#0d1b0f]",
		CardHover:     "hover:bg-[#1a2e1d]",
		Button:        "from-green-600 to-lime-600",
		ButtonHover:   "hover:from-green-700 hover:to-lime-700",
		Accent:        "text-green-400",
		Border:        "border-green-800",
		Text:          "text-white",
		TextSecondary: "text-green-200",
	},
	"theme4": {
		ID:            "theme4",
		Name:          "Sunset Fire",
		Background:    "from-[#2d1b0f] via-[#4a2c1a] to-[#6b3e07]",
		Card:          "bg-[#1a0f0a]",
		CardHover:     "hover:bg-[#2d1b0f]",
		Button:        "from-orange-600 to-yellow-600",
		ButtonHover:   "hover:from-orange-700 hover:to-yellow-700",
		Accent:        "text-orange-400",
		Border:        "border-orange-800",
		Text:          "text-white",
		TextSecondary: "text-orange-200",
	},
	"theme5": {
		ID:            "theme5",
		Name:          "Purple Dream",
		Background:    "from-[#1a0d2e] via-[#2d1b4a] to-[#4a2c6b]",
		Card:          "bg-[#0f0a1a]",
		CardHover:     "hover:bg-[#1d0f2d]",
		Button:        "from-purple-600 to-indigo-600",
		ButtonHover:   "hover:from-purple-700 hover:to-indigo-700",
		Accent:        "text-purple-400",
		Border:        "border-purple-800",
		Text:          "text-white",
		TextSecondary: "text-purple-200",
	},
	"theme6": {
		ID:            "theme6",
		Name:          "Cyber Teal",
		Background:    "from-[#0d2d2a] via-[#1a4a43] to-[#2c6b5c]",
		Card:          "bg-[#0a1a17]",
		CardHover:     "hover:bg-[#0f2d27]",
		Button:        "from-teal-600 to-cyan-600",
		ButtonHover:   "hover:from-teal-700 hover:to-cyan-700",
		Accent:        "text-teal-400",
		Border:        "border-teal-800",
		Text:          "text-white",
		TextSecondary: "text-teal-200",
	},
}

// IDs lists the catalog in display order.
var IDs = []string{"theme1", "theme2", "theme3", "theme4", "theme5", "theme6"}

func IsValid(id string) bool {
	_, ok := catalog[id]
	return ok
}

// Resolve returns the tokens for id, falling back to the default theme for
// anything outside the catalog (including stale stored values).
func Resolve(id string) Tokens {
	if t, ok := catalog[id]; ok {
		return t
	}
	return catalog[Default]
}

// Catalog returns all themes in display order.
func Catalog() []Tokens {
	out := make([]Tokens, 0, len(IDs))
	for _, id := range IDs {
		out = append(out, catalog[id])
	}
	return out
}
