package grapheme

import "testing"

func TestClustersAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "👨‍👩‍👧‍👦" + "b"
	got := Clusters(text)
	if len(got) != 4 {
		t.Fatalf("clusters len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("clusters[1]=%q, want %q", got[1], "é")
	}
	if got[2] != "👨‍👩‍👧‍👦" {
		t.Fatalf("clusters[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "é" + "👨‍👩‍👧‍👦" + "b"
	if got, want := Slice(text, 1, 3), "é👨‍👩‍👧‍👦"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
}

func TestIndexAtByte(t *testing.T) {
	text := "éx" // cluster 0 spans bytes [0,3), cluster 1 starts at 3
	if idx, ok := IndexAtByte(text, 0); !ok || idx != 0 {
		t.Fatalf("IndexAtByte(0)=%d,%v, want 0,true", idx, ok)
	}
	if idx, ok := IndexAtByte(text, 3); !ok || idx != 1 {
		t.Fatalf("IndexAtByte(3)=%d,%v, want 1,true", idx, ok)
	}
	if _, ok := IndexAtByte(text, 1); ok {
		t.Fatalf("byte 1 is inside a cluster, want not a boundary")
	}
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []string{" ", "\t", ".", "!", "(", "~"} {
		if !IsSeparator(c) {
			t.Fatalf("IsSeparator(%q)=false, want true", c)
		}
	}
	for _, c := range []string{"a", "0", "é", "é", ""} {
		if IsSeparator(c) {
			t.Fatalf("IsSeparator(%q)=true, want false", c)
		}
	}
}

func TestWidth_WideAndCombining(t *testing.T) {
	if got := Width("テ"); got != 2 {
		t.Fatalf("width(テ)=%d, want 2", got)
	}
	if got := Width("a"); got != 1 {
		t.Fatalf("width(a)=%d, want 1", got)
	}
	if got := Width("é"); got < 1 {
		t.Fatalf("width(e+combining)=%d, want >= 1", got)
	}
}
