package quran

import "testing"

func TestAyahCount(t *testing.T) {
	tests := []struct {
		surah int
		want  int
	}{
		{1, 7},
		{2, 286},
		{103, 3},
		{114, 6},
	}
	for _, tt := range tests {
		got, ok := AyahCount(tt.surah)
		if !ok || got != tt.want {
			t.Errorf("AyahCount(%d) = %d, %v, want %d, true", tt.surah, got, ok, tt.want)
		}
	}

	if _, ok := AyahCount(0); ok {
		t.Error("AyahCount(0) should not be known")
	}
	if _, ok := AyahCount(115); ok {
		t.Error("AyahCount(115) should not be known")
	}
}

func TestSurahName(t *testing.T) {
	if got := SurahName(1); got != "Al-Fatihah" {
		t.Errorf("SurahName(1) = %q", got)
	}
	if got := SurahName(114); got != "An-Nas" {
		t.Errorf("SurahName(114) = %q", got)
	}
	if got := SurahName(200); got != "Surah 200" {
		t.Errorf("SurahName(200) = %q", got)
	}
}

// Every entry in the juz table must partition its surah exactly: start at
// ayah 1, end at the surah's last ayah, no gaps or overlaps in between.
func TestBoundarySegmentsPartitionTheirSurahs(t *testing.T) {
	for surah := 1; surah <= TotalSurahs; surah++ {
		segments := BoundarySegments(surah)
		if segments == nil {
			continue
		}
		if len(segments) < 2 {
			t.Errorf("surah %d: table entry with %d segments, single-juz surahs should be absent", surah, len(segments))
			continue
		}

		count, _ := AyahCount(surah)
		if segments[0][0] != 1 {
			t.Errorf("surah %d: first segment starts at %d, want 1", surah, segments[0][0])
		}
		if segments[len(segments)-1][1] != count {
			t.Errorf("surah %d: last segment ends at %d, want %d", surah, segments[len(segments)-1][1], count)
		}
		for i, seg := range segments {
			if seg[0] > seg[1] {
				t.Errorf("surah %d: segment %d has start %d after end %d", surah, i, seg[0], seg[1])
			}
			if i > 0 && seg[0] != segments[i-1][1]+1 {
				t.Errorf("surah %d: gap or overlap between segments %d and %d", surah, i-1, i)
			}
		}
	}
}

func TestDefaultPassageSurahs(t *testing.T) {
	defaults := DefaultPassageSurahs()
	if len(defaults) == 0 {
		t.Fatal("default passage set is empty")
	}
	for _, n := range defaults {
		if _, ok := AyahCount(n); !ok {
			t.Errorf("default set contains unknown surah %d", n)
		}
		if BoundarySegments(n) != nil {
			t.Errorf("default set contains multi-juz surah %d", n)
		}
	}
}
