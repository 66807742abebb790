package fonts

import (
	"strings"

	"github.com/bnema/fontview/internal/domain/entity"
)

// weightNames maps style words to fontconfig weights, heaviest match first.
var weightNames = []struct {
	word   string
	weight int
}{
	{"extrablack", 215},
	{"ultrablack", 215},
	{"black", entity.WeightBlack},
	{"heavy", entity.WeightBlack},
	{"extrabold", 205},
	{"ultrabold", 205},
	{"semibold", 180},
	{"demibold", 180},
	{"bold", entity.WeightBold},
	{"medium", entity.WeightMedium},
	{"book", 75},
	{"extralight", 40},
	{"ultralight", 40},
	{"light", 50},
	{"thin", 0},
}

// StyleToWeightSlant infers fontconfig weight and slant from a style name.
func StyleToWeightSlant(style string) (weight, slant int) {
	s := strings.ToLower(strings.ReplaceAll(style, " ", ""))
	s = strings.ReplaceAll(s, "-", "")

	weight = entity.WeightRegular
	for _, w := range weightNames {
		if strings.Contains(s, w.word) {
			weight = w.weight
			break
		}
	}

	slant = entity.SlantRoman
	switch {
	case strings.Contains(s, "italic"):
		slant = entity.SlantItalic
	case strings.Contains(s, "oblique"):
		slant = entity.SlantOblique
	}
	return weight, slant
}
