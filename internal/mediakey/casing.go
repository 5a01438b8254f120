package mediakey

import "unicode"

// titleFull holds the title-case mappings that expand to more than one
// rune. unicode.ToTitle only knows the single-rune mappings.
var titleFull = map[rune]string{
	0x00DF: "\u0053\u0073",
	0x0149: "\u02BC\u004E",
	0x01F0: "\u004A\u030C",
	0x0390: "\u0399\u0308\u0301",
	0x03B0: "\u03A5\u0308\u0301",
	0x0587: "\u0535\u0582",
	0x1E96: "\u0048\u0331",
	0x1E97: "\u0054\u0308",
	0x1E98: "\u0057\u030A",
	0x1E99: "\u0059\u030A",
	0x1E9A: "\u0041\u02BE",
	0x1F50: "\u03A5\u0313",
	0x1F52: "\u03A5\u0313\u0300",
	0x1F54: "\u03A5\u0313\u0301",
	0x1F56: "\u03A5\u0313\u0342",
	0x1FB2: "\u1FBA\u0345",
	0x1FB4: "\u0386\u0345",
	0x1FB6: "\u0391\u0342",
	0x1FB7: "\u0391\u0342\u0345",
	0x1FC2: "\u1FCA\u0345",
	0x1FC4: "\u0389\u0345",
	0x1FC6: "\u0397\u0342",
	0x1FC7: "\u0397\u0342\u0345",
	0x1FD2: "\u0399\u0308\u0300",
	0x1FD3: "\u0399\u0308\u0301",
	0x1FD6: "\u0399\u0342",
	0x1FD7: "\u0399\u0308\u0342",
	0x1FE2: "\u03A5\u0308\u0300",
	0x1FE3: "\u03A5\u0308\u0301",
	0x1FE4: "\u03A1\u0313",
	0x1FE6: "\u03A5\u0342",
	0x1FE7: "\u03A5\u0308\u0342",
	0x1FF2: "\u1FFA\u0345",
	0x1FF4: "\u038F\u0345",
	0x1FF6: "\u03A9\u0342",
	0x1FF7: "\u03A9\u0342\u0345",
	0xFB00: "\u0046\u0066",
	0xFB01: "\u0046\u0069",
	0xFB02: "\u0046\u006C",
	0xFB03: "\u0046\u0066\u0069",
	0xFB04: "\u0046\u0066\u006C",
	0xFB05: "\u0053\u0074",
	0xFB06: "\u0053\u0074",
	0xFB13: "\u0544\u0576",
	0xFB14: "\u0544\u0565",
	0xFB15: "\u0544\u056B",
	0xFB16: "\u054E\u0576",
	0xFB17: "\u0544\u056D",
}

// lowerFull holds the lower-case mappings that expand to more than one rune.
var lowerFull = map[rune]string{
	0x0130: "\u0069\u0307",
}

const (
	capitalSigma = 'Σ'
	finalSigma   = 'ς'
)

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// isCaseIgnorable approximates the Unicode Case_Ignorable property.
func isCaseIgnorable(r rune) bool {
	switch r {
	case '\'', '.', ':', '^', '`', 0xB7, 0x2019:
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk)
}

// endsWord reports whether no cased letter follows runes[i], skipping
// case-ignorable runes. A capital sigma there lowers to the final form.
func endsWord(runes []rune, i int) bool {
	for _, r := range runes[i+1:] {
		if isCaseIgnorable(r) {
			continue
		}
		return !isCased(r)
	}
	return true
}

// digitValue returns the value of a decimal digit rune. Unicode lays out
// every decimal digit set as a run of ten starting at zero.
func digitValue(r rune) int {
	start := r
	for unicode.Is(unicode.Nd, start-1) {
		start--
	}
	return int(r-start) % 10
}
