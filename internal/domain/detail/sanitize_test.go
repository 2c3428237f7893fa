package detail

import (
	"strings"
	"testing"
)

func TestLegacySanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"newlines", "Line one.&amp;#10;&amp;#10;Line two.", "Line one.Line two."},
		{"dashes", "wood &amp;mdash; grain &amp;ndash; ore", "wood  grain  ore"},
		{"quotes", "a &amp;quot;quoted&amp;quot; word", "a quoted word"},
		{"curly", "&amp;ldquo;Hi&amp;rdquo; it&amp;rsquo;s", "Hi it"},
		{"ellipsis", "and so on&amp;hellip;", "and so on"},
		{"nbsp", "a&amp;nbsp;b", "a"},
		{"quot hides nbsp from its pass", "nbquot;sp", "nbsp"},
		{"quot word removed later", "say quot;hi", "say hi"},
		{"literal undefined", "undefined behaviour", " behaviour"},
		{"hash", "#1 game", "1 game"},
		{"stray entity", "caf&amp;eacute; time", "cafeacute time"},
		{"plain", "Nothing to do here", "Nothing to do here"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LegacySanitize(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLegacySanitizeStopsAtUnicodeSpace(t *testing.T) {
	in := "end;tail next"
	if got := LegacySanitize(in); got != "end next" {
		t.Fatalf("expected removal to stop at no-break space, got %q", got)
	}
}

func TestFontScaleBands(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, ScaleLarge},
		{999, ScaleLarge},
		{1000, ScaleMedium},
		{1999, ScaleMedium},
		{2000, ScaleSmall},
		{5000, ScaleSmall},
	}
	for _, tc := range cases {
		if got := FontScale(strings.Repeat("a", tc.n)); got != tc.want {
			t.Fatalf("length %d: expected %s, got %s", tc.n, tc.want, got)
		}
	}
	if got := FontScale(strings.Repeat("😀", 500)); got != ScaleMedium {
		t.Fatalf("expected surrogate pairs to count twice, got %s", got)
	}
}
