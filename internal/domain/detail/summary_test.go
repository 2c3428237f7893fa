package detail

import "testing"

func rec(count string, w float64) PlayerCountRecommendation {
	return PlayerCountRecommendation{Count: count, WeightedScore: w, Score: 1, TotalVotes: 1}
}

func TestSummarizeGroupsByThreshold(t *testing.T) {
	s := Summarize([]PlayerCountRecommendation{
		rec("4", 0.9),
		rec("3", 0.7),
		rec("5", 0.65),
		rec("2", 0.51),
		rec("6", 0.5),
		rec("1", 0.36),
		rec("7", 0.35),
		rec("8", 0.1),
	})

	if s.Best != "4" {
		t.Fatalf("expected best 4, got %s", s.Best)
	}
	check := func(name string, got []string, want ...string) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("%s: expected %v, got %v", name, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: expected %v, got %v", name, want, got)
			}
		}
	}
	check("excellent", s.Excellent, "3")
	check("veryGood", s.VeryGood, "5", "2")
	check("okay", s.Okay, "6", "1")
	check("notRecommended", s.NotRecommended, "8")

	want := " Best with: 4 players, also excellent with: 3 players, very good with: 5, 2 players, okay with: 6, 1 players, not recommended with: 8 players"
	if got := s.String(); got != want {
		t.Fatalf("unexpected summary string:\n got %q\nwant %q", got, want)
	}
}

func TestSummarizeSingleAndEmpty(t *testing.T) {
	if got := Summarize([]PlayerCountRecommendation{rec("2", 0.2)}).String(); got != " Best with: 2 players" {
		t.Fatalf("unexpected single summary %q", got)
	}
	if got := Summarize(nil).String(); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}
