package searchkey

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Arabic letters and marks referenced by the folding table and the classifiers.
const (
	comma                  = '\u060C'
	semicolon              = '\u061B'
	questionMark           = '\u061F'
	hamza                  = '\u0621'
	alefMadda              = '\u0622'
	alefHamzaAbove         = '\u0623'
	wawHamza               = '\u0624'
	alefHamzaBelow         = '\u0625'
	yehHamza               = '\u0626'
	alef                   = '\u0627'
	beh                    = '\u0628'
	tehMarbuta             = '\u0629'
	teh                    = '\u062A'
	theh                   = '\u062B'
	jeem                   = '\u062C'
	hah                    = '\u062D'
	khah                   = '\u062E'
	dal                    = '\u062F'
	thal                   = '\u0630'
	reh                    = '\u0631'
	zain                   = '\u0632'
	seen                   = '\u0633'
	sheen                  = '\u0634'
	sad                    = '\u0635'
	dad                    = '\u0636'
	tah                    = '\u0637'
	zah                    = '\u0638'
	ain                    = '\u0639'
	ghain                  = '\u063A'
	tatweel                = '\u0640'
	feh                    = '\u0641'
	qaf                    = '\u0642'
	kaf                    = '\u0643'
	lam                    = '\u0644'
	meem                   = '\u0645'
	noon                   = '\u0646'
	heh                    = '\u0647'
	waw                    = '\u0648'
	alefMaksura            = '\u0649'
	yeh                    = '\u064A'
	fathatan               = '\u064B'
	dammatan               = '\u064C'
	kasratan               = '\u064D'
	fatha                  = '\u064E'
	damma                  = '\u064F'
	kasra                  = '\u0650'
	shadda                 = '\u0651'
	sukun                  = '\u0652'
	hamzaAbove             = '\u0654'
	hamzaBelow             = '\u0655'
	smallAlef              = '\u0670'
	alefWasla              = '\u0671'
	endOfAyah              = '\u06DD'
	starOfRubElHizb        = '\u06DE'
	smallWaw               = '\u06E5'
	smallYeh               = '\u06E6'

	// lam-alef ligatures, isolated and final presentation forms
	lamAlefMaddaAbove      = '\uFEF5'
	lamAlefMaddaAboveFinal = '\uFEF6'
	lamAlefHamzaAbove      = '\uFEF7'
	lamAlefHamzaAboveFinal = '\uFEF8'
	lamAlefHamzaBelow      = '\uFEF9'
	lamAlefHamzaBelowFinal = '\uFEFA'
	lamAlef                = '\uFEFB'
	lamAlefFinal           = '\uFEFC'
)

// arabicRemovals holds runes FoldArabic deletes outright.
var arabicRemovals = map[rune]struct{}{
	tatweel: {},
}

// arabicFolds maps letter variants to their canonical spelling.
// Built at package init and never written afterwards.
var arabicFolds = map[rune]string{
	// Alef
	alefMadda:      string(alef),
	alefHamzaAbove: string(alef),
	alefHamzaBelow: string(alef),
	alefWasla:      string(alef),
	hamzaAbove:     string(alef),
	hamzaBelow:     string(alef),
	'\u0672':       string(alef), // Alef With Wavy Hamza Above
	'\u0673':       string(alef), // Alef With Wavy Hamza Below
	'\u0675':       string(alef), // High Hamza Alef

	// Hamza carriers
	wawHamza: string(hamza),
	yehHamza: string(hamza),

	// Lam alef
	lamAlef:                string(lam) + string(alef),
	lamAlefFinal:           string(lam) + string(alef),
	lamAlefHamzaAbove:      string(lam) + string(alef),
	lamAlefHamzaAboveFinal: string(lam) + string(alef),
	lamAlefHamzaBelow:      string(lam) + string(alef),
	lamAlefHamzaBelowFinal: string(lam) + string(alef),
	lamAlefMaddaAbove:      string(lam) + string(alef),
	lamAlefMaddaAboveFinal: string(lam) + string(alef),

	// Uthmani annotations
	smallAlef: "",
	smallWaw:  "",
	smallYeh:  "",

	// Common spelling swaps
	tehMarbuta:  string(heh),
	alefMaksura: string(yeh),

	// Yeh like
	'\u06CC': string(yeh), // Farsi Yeh
	'\u06CD': string(yeh), // Yeh With Tail
	'\u06CE': string(yeh), // Yeh With Small V
	'\u0620': string(yeh), // Kashmiri Yeh
	'\u06D0': string(yeh), // E
	'\u06D1': string(yeh), // Yeh With Three Dots Below
	'\u063D': string(yeh), // Farsi Yeh With Inverted V
	'\u063E': string(yeh), // Farsi Yeh With Two Dots Above
	'\u063F': string(yeh), // Farsi Yeh With Three Dots Above

	// Waw like
	'\u06CF': string(waw), // Waw With Dot Above
	'\u06CB': string(waw), // Ve
	'\u06CA': string(waw), // Waw With Two Dots Above
	'\u06C9': string(waw), // Kirghiz Yu
	'\u06C8': string(waw), // Yu
	'\u06C7': string(waw), // U
	'\u06C6': string(waw), // Oe
	'\u06C5': string(waw), // Kirghiz Oe
	'\u06C4': string(waw), // Waw With Ring

	// Lam like
	'\u06B5': string(lam), // Lam With Small V
	'\u06B6': string(lam), // Lam With Dot Above
	'\u06B7': string(lam), // Lam With Three Dots Above
	'\u06B8': string(lam), // Lam With Three Dots Below

	// Kaf like
	'\u063B': string(kaf), // Keheh With Two Dots Above
	'\u063C': string(kaf), // Keheh With Three Dots Below
	'\u06A9': string(kaf), // Keheh
	'\u06AA': string(kaf), // Swash Kaf
	'\u06AB': string(kaf), // Kaf With Ring
	'\u06AC': string(kaf), // Kaf With Dot Above
	'\u06AD': string(kaf), // Ng
	'\u06AE': string(kaf), // Kaf With Three Dots Below
	'\u06AF': string(kaf), // Gaf
	'\u06B0': string(kaf), // Gaf With Ring
	'\u06B1': string(kaf), // Ngoeh
	'\u06B2': string(kaf), // Gaf With Two Dots Below
	'\u06B3': string(kaf), // Gueh
	'\u06B4': string(kaf), // Gaf With Three Dots Above

	// Heh like. NFD turns U+06C0 into U+06D5 plus hamza above, so AE folds to heh as well.
	'\u06FF': string(heh), // Heh With Inverted V
	'\u06BE': string(heh), // Heh Doachashmee
	'\u06C0': string(heh), // Heh With Yeh Above
	'\u06C1': string(heh), // Heh Goal
	'\u06C2': string(heh), // Heh Goal With Hamza Above
	'\u06C3': string(heh), // Teh Marbuta Goal
	'\u06D5': string(heh), // Ae

	// Dal like
	'\u06EE': string(dal),  // Dal With Inverted V
	'\u0688': string(dal),  // Ddal
	'\u0689': string(dal),  // Dal With Ring
	'\u068A': string(dal),  // Dal With Dot Below
	'\u068B': string(dal),  // Dal With Dot Below And Small Tah
	'\u068D': string(dal),  // Ddahal
	'\u068C': string(thal), // Dahal
	'\u068E': string(thal), // Dul
	'\u068F': string(thal), // Dal With Three Dots Above Downwards
	'\u0690': string(thal), // Dal With Four Dots Above

	// Single variants
	'\u066F': string(qaf),  // Dotless Qaf
	'\u066E': string(beh),  // Dotless Beh
	'\uFE91': string(beh),  // Beh Initial Form
	'\u06EF': string(reh),  // Reh With Inverted V
	'\u06A5': string(feh),  // Feh With Three Dots Below
	'\u06FB': string(dad),  // Dad With Dot Below
	'\uFE9E': string(jeem), // Jeem Final Form
}

// FoldArabic applies Arabic-aware folding to an already normalized key.
//
// Tatweel is removed, letter variants are replaced with their canonical letter,
// lam-alef ligatures expand to lam followed by alef, and any other presentation
// form is reduced to the letters of its compatibility decomposition.
// Runes outside the table pass through unchanged.
//
// Folding is opt-in: it is lossy for non-Arabic text that shares the Arabic blocks.
//
// Phrase keys stay phrase keys: words that fold away leave no extra spaces and
// ligatures that decompose to several words keep single spaces between them.
//
// Example: FoldArabic(Normalize("أحمد")) -> "احمد"
func FoldArabic(k Key) string {
	return foldArabic(k.value, k.phrase)
}

// foldArabic folds s rune by rune. With words set, white space separates words:
// runs become one space and the result is trimmed. Otherwise white space in s is
// copied and word breaks inside decomposed ligatures are dropped.
func foldArabic(s string, words bool) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false

	write := func(r rune, boundary bool) bool {
		out := foldRune(r)
		if out == "" {
			return false
		}
		if (pendingSpace || boundary) && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteString(out)
		return true
	}

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if words {
				pendingSpace = true
			} else {
				b.WriteRune(r)
			}
		case isPresentationForm(r) && !hasFold(r):
			sep := false
			for _, part := range strings.Fields(norm.NFKD.String(string(r))) {
				boundary := sep && words
				wrote := false
				for _, d := range part {
					if unicode.IsLetter(d) && write(d, boundary) {
						boundary = false
						wrote = true
					}
				}
				sep = sep || wrote
			}
		default:
			write(r, false)
		}
	}
	return b.String()
}

func hasFold(r rune) bool {
	_, ok := arabicFolds[r]
	return ok
}

// foldRune returns the folded spelling of r, empty when r is removed.
func foldRune(r rune) string {
	if _, drop := arabicRemovals[r]; drop {
		return ""
	}
	if rep, ok := arabicFolds[r]; ok {
		return rep
	}
	return string(r)
}

// isPresentationForm reports whether r is in Arabic Presentation Forms-A or -B.
func isPresentationForm(r rune) bool {
	return (r >= 0xFB50 && r <= 0xFDFF) || (r >= 0xFE70 && r <= 0xFEFF)
}
