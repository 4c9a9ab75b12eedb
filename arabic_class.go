package searchkey

// Letter classes used by IsSun, IsMoon and friends.
var (
	sunLetters = runeSet(teh, theh, dal, thal, reh, zain, seen, sheen, sad, dad, tah, zah, lam, noon)

	moonLetters = runeSet(alef, beh, jeem, hah, khah, ain, ghain, feh, qaf, kaf, meem, heh, waw, yeh)

	hamzaForms = runeSet(hamza, wawHamza, yehHamza, hamzaAbove, hamzaBelow, alefHamzaBelow, alefHamzaAbove)

	alefForms = runeSet(alef, alefMadda, alefHamzaAbove, alefHamzaBelow, alefWasla, alefMaksura, smallAlef)

	yehLike = runeSet(yeh, yehHamza, alefMaksura, smallYeh)

	wawLike = runeSet(waw, wawHamza, smallWaw)
)

func runeSet(rs ...rune) map[rune]struct{} {
	m := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		m[r] = struct{}{}
	}
	return m
}

func inSet(m map[rune]struct{}, r rune) bool {
	_, ok := m[r]
	return ok
}

// IsTashkeel reports whether r is a harakat or tanwin mark (fathatan through sukun).
func IsTashkeel(r rune) bool {
	return r >= fathatan && r <= sukun
}

// IsTanwin reports whether r is fathatan, dammatan or kasratan.
func IsTanwin(r rune) bool {
	return r >= fathatan && r <= kasratan
}

// IsShadda reports whether r is the shadda mark.
func IsShadda(r rune) bool { return r == shadda }

// IsTatweel reports whether r is the kashida elongation character.
func IsTatweel(r rune) bool { return r == tatweel }

// IsSun reports whether r is a sun letter (assimilates the lam of the article).
func IsSun(r rune) bool { return inSet(sunLetters, r) }

// IsMoon reports whether r is a moon letter.
func IsMoon(r rune) bool { return inSet(moonLetters, r) }

// IsHamza reports whether r is hamza or a letter or mark carrying it.
func IsHamza(r rune) bool { return inSet(hamzaForms, r) }

// IsAlef reports whether r is an alef form, including alef maksura and the dagger alef.
func IsAlef(r rune) bool { return inSet(alefForms, r) }

// IsYehLike reports whether r is yeh or one of its look-alikes.
func IsYehLike(r rune) bool { return inSet(yehLike, r) }

// IsWawLike reports whether r is waw or one of its look-alikes.
func IsWawLike(r rune) bool { return inSet(wawLike, r) }

// IsArabic reports whether r belongs to one of the Arabic blocks:
// Arabic, Arabic Supplement, Arabic Extended-A and Presentation Forms A/B.
func IsArabic(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF,
		r >= 0x0750 && r <= 0x077F,
		r >= 0x08A0 && r <= 0x08FF:
		return true
	}
	return isPresentationForm(r)
}
