// Package neki values tasbih repetitions in merit points.
package neki

import (
	"strings"
	"unicode"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

// Builtin tasbih identifiers carry traditionally-assigned merit values and
// are never recomputed from their Arabic text.
const (
	BuiltinSubhanallah     = "builtin_subhanallah"
	BuiltinAlhamdulillah   = "builtin_alhamdulillah"
	BuiltinAllahuAkbar     = "builtin_allahu_akbar"
	BuiltinLaIlahaIllallah = "builtin_la_ilaha_illallah"
	BuiltinAstaghfirullah  = "builtin_astaghfirullah"
	BuiltinDurood          = "builtin_durood"
)

var builtinValues = map[string]int{
	BuiltinSubhanallah:     70,
	BuiltinAlhamdulillah:   80,
	BuiltinAllahuAkbar:     90,
	BuiltinLaIlahaIllallah: 120,
	BuiltinAstaghfirullah:  100,
	BuiltinDurood:          300,
}

// PerRepetition returns the neki earned per repetition of the tasbih.
// Precedence: builtin id, then Arabic-text valuation, then a positive manual
// override, then zero. The general singleton always falls through to zero.
func PerRepetition(t models.Tasbih) int {
	if v, ok := builtinValues[t.ID]; ok {
		return v
	}
	if strings.TrimSpace(t.ArabicText) != "" {
		return constants.NekiPerArabicLetter * countArabicLetters(t.ArabicText)
	}
	if t.ManualNeki > 0 {
		return t.ManualNeki
	}
	return 0
}

// countArabicLetters counts the Arabic base letters in the text: diacritical
// marks (U+064B-U+065F, U+0670, U+06D6-U+06ED), the tatweel elongation
// character (U+0640), whitespace and anything outside the Arabic block
// (U+0600-U+06FF) do not count.
func countArabicLetters(text string) int {
	n := 0
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
		case r == 0x0640: // tatweel
		case r >= 0x064B && r <= 0x065F:
		case r == 0x0670:
		case r >= 0x06D6 && r <= 0x06ED:
		case r < 0x0600 || r > 0x06FF:
		default:
			n++
		}
	}
	return n
}
