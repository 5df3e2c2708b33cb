package ingest

import "sort"

// Preset is a common sugary item available for quick logging.
type Preset struct {
	Name   string
	Label  string
	SugarG int
}

// Typical added-sugar contents per serving.
var presets = map[string]Preset{
	"cola":       {Name: "cola", Label: "Cola (330ml can)", SugarG: 35},
	"juice":      {Name: "juice", Label: "Orange juice (250ml)", SugarG: 22},
	"chocolate":  {Name: "chocolate", Label: "Chocolate bar (45g)", SugarG: 24},
	"cookie":     {Name: "cookie", Label: "Cookie", SugarG: 8},
	"donut":      {Name: "donut", Label: "Glazed donut", SugarG: 14},
	"icecream":   {Name: "icecream", Label: "Ice cream (2 scoops)", SugarG: 28},
	"yogurt":     {Name: "yogurt", Label: "Flavored yogurt (150g)", SugarG: 18},
	"cereal":     {Name: "cereal", Label: "Sweetened cereal (40g)", SugarG: 12},
	"candy":      {Name: "candy", Label: "Candy (small bag)", SugarG: 30},
	"sportdrink": {Name: "sportdrink", Label: "Sports drink (500ml)", SugarG: 21},
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Presets returns all presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
