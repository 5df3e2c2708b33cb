package budget

import "strings"

// ethnicityGroup pairs a keyword set with the coefficient it selects.
// Groups are evaluated in order; the first keyword hit wins.
type ethnicityGroup struct {
	keywords []string
	factor   func(Coefficients) float64
}

var ethnicityGroups = []ethnicityGroup{
	{
		keywords: []string{"south asian", "indian", "pakistani", "bangladeshi", "sri lankan", "nepali"},
		factor:   func(c Coefficients) float64 { return c.EthnicitySouthAsian },
	},
	{
		keywords: []string{"east asian", "chinese", "japanese", "korean", "vietnamese", "filipino"},
		factor:   func(c Coefficients) float64 { return c.EthnicityEastAsian },
	},
	{
		keywords: []string{"hispanic", "latino", "latina", "latinx", "mexican"},
		factor:   func(c Coefficients) float64 { return c.EthnicityHispanic },
	},
	{
		keywords: []string{"african", "black", "afro", "caribbean"},
		factor:   func(c Coefficients) float64 { return c.EthnicityAfrican },
	},
}

// ethnicityGroupFactor matches a free-text ethnicity label against the
// fixed keyword groups, case-insensitively. No match returns 1.
func ethnicityGroupFactor(label string, c Coefficients) float64 {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return 1
	}
	for _, g := range ethnicityGroups {
		for _, kw := range g.keywords {
			if strings.Contains(needle, kw) {
				return g.factor(c)
			}
		}
	}
	return 1
}
