// Package emoji classifies strings that consist solely of emoji glyphs.
//
// A "glyph" here is a full emoji sequence as users perceive it: a base
// pictograph, optionally extended with variation selectors, skin tone
// modifiers, ZWJ joins, keycap combinators, regional indicator pairs,
// or tag characters (subdivision flags)
package emoji

import "unicode/utf8"

const (
	runeZWJ        = 0x200D // zero width joiner
	runeVS15       = 0xFE0E // text presentation selector
	runeVS16       = 0xFE0F // emoji presentation selector
	runeKeycap     = 0x20E3 // combining enclosing keycap
	runeTagFirst   = 0xE0020
	runeTagLast    = 0xE007F
	runeToneFirst  = 0x1F3FB // skin tone modifiers
	runeToneLast   = 0x1F3FF
	runeRegionalLo = 0x1F1E6 // regional indicator symbols
	runeRegionalHi = 0x1F1FF
)

// baseRanges are inclusive codepoint ranges of standalone emoji bases
var baseRanges = [][2]rune{
	{0x2194, 0x21AA},   // arrows
	{0x231A, 0x231B},   // watch, hourglass
	{0x23E9, 0x23FA},   // av controls
	{0x25AA, 0x25AB},   // small squares
	{0x25B6, 0x25B6},   // play
	{0x25C0, 0x25C0},   // reverse
	{0x25FB, 0x25FE},   // medium squares
	{0x2600, 0x27BF},   // misc symbols, dingbats
	{0x2934, 0x2935},   // curved arrows
	{0x2B05, 0x2B07},   // heavy arrows
	{0x2B1B, 0x2B1C},   // large squares
	{0x2B50, 0x2B50},   // star
	{0x2B55, 0x2B55},   // heavy circle
	{0x1F000, 0x1F0FF}, // mahjong, dominoes, cards
	{0x1F300, 0x1F5FF}, // misc symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F7E0, 0x1F7EB}, // colored shapes
	{0x1F90C, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA70, 0x1FAFF}, // symbols and pictographs extended-A
}

// singles are standalone bases outside the contiguous ranges
var singles = map[rune]bool{
	0x00A9: true, // copyright
	0x00AE: true, // registered
	0x203C: true, // double exclamation
	0x2049: true, // exclamation question
	0x2122: true, // trade mark
	0x2139: true, // information
	0x24C2: true, // circled M
	0x3030: true, // wavy dash
	0x303D: true, // part alternation mark
	0x3297: true, // congratulations
	0x3299: true, // secret
}

func isBase(r rune) bool {
	for _, br := range baseRanges {
		if r >= br[0] && r <= br[1] {
			return true
		}
	}
	return singles[r]
}

func isKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

func isRegional(r rune) bool { return r >= runeRegionalLo && r <= runeRegionalHi }

func isTone(r rune) bool { return r >= runeToneFirst && r <= runeToneLast }

// IsEmojiOnly reports whether s is non-empty and every glyph in it is
// an emoji sequence. Plain text, whitespace, and malformed UTF-8 all
// report false
func IsEmojiOnly(s string) bool {
	if s == "" {
		return false
	}
	rs := make([]rune, 0, len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return false
		}
		rs = append(rs, r)
		s = s[size:]
	}

	i := 0
	for i < len(rs) {
		n := consumeSequence(rs[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	return true
}

// consumeSequence consumes one emoji sequence from the front of rs and
// returns how many runes it spanned, or 0 when rs does not start with
// an emoji sequence
func consumeSequence(rs []rune) int {
	if len(rs) == 0 {
		return 0
	}

	switch {
	case isRegional(rs[0]):
		// flags come in regional indicator pairs
		if len(rs) >= 2 && isRegional(rs[1]) {
			return 2
		}
		return 1

	case isKeycapBase(rs[0]):
		// keycaps require the combining keycap, optionally after VS16
		i := 1
		if i < len(rs) && rs[i] == runeVS16 {
			i++
		}
		if i < len(rs) && rs[i] == runeKeycap {
			return i + 1
		}
		return 0

	case isBase(rs[0]):
		return consumeModifiers(rs, 1)

	default:
		return 0
	}
}

// consumeModifiers extends a base at rs[0] with selectors, tones, tags,
// and ZWJ-joined continuations starting at index i
func consumeModifiers(rs []rune, i int) int {
	for i < len(rs) {
		r := rs[i]
		switch {
		case r == runeVS15 || r == runeVS16:
			i++
		case isTone(r):
			i++
		case r >= runeTagFirst && r <= runeTagLast:
			// tag sequences (e.g. subdivision flags) run to the tag end
			i++
		case r == runeZWJ:
			// a join must be followed by another base-led sequence
			rest := consumeSequence(rs[i+1:])
			if rest == 0 {
				return 0
			}
			i += 1 + rest
		default:
			return i
		}
	}
	return i
}
