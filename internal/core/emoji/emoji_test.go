package emoji

import "testing"

func TestIsEmojiOnly_Accepts(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"single pictograph", "😀"},
		{"several pictographs", "🎉🎊🥳"},
		{"transport", "🚀"},
		{"dingbat", "✅"},
		{"heart with selector", "❤️"},
		{"skin tone", "👍🏽"},
		{"zwj family", "👨‍👩‍👧‍👦"},
		{"zwj profession", "👩‍🚒"},
		{"flag pair", "🇧🇷"},
		{"keycap digit", "1️⃣"},
		{"keycap hash", "#️⃣"},
		{"copyright", "©"},
		{"mixed sequences", "🔥💯🙌🏿"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !IsEmojiOnly(tc.in) {
				t.Fatalf("IsEmojiOnly(%q) = false, want true", tc.in)
			}
		})
	}
}

func TestIsEmojiOnly_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"plain ascii", "hello"},
		{"digit without keycap", "7"},
		{"emoji with trailing text", "😀!"},
		{"text with embedded emoji", "ok 😀"},
		{"whitespace between emoji", "😀 😀"},
		{"lone zwj", "‍"},
		{"zwj with dangling join", "😀‍"},
		{"lone selector", "️"},
		{"keycap without combinator", "1️"},
		{"cyrillic", "привет"},
		{"cjk", "你好"},
		{"invalid utf8", string([]byte{0xff, 0xfe})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if IsEmojiOnly(tc.in) {
				t.Fatalf("IsEmojiOnly(%q) = true, want false", tc.in)
			}
		})
	}
}

func TestIsEmojiOnly_LongRuns(t *testing.T) {
	long := ""
	for range 280 {
		long += "😀"
	}
	if !IsEmojiOnly(long) {
		t.Fatal("280 pictographs should be emoji-only")
	}
	if IsEmojiOnly(long + "x") {
		t.Fatal("trailing letter should break emoji-only")
	}
}
