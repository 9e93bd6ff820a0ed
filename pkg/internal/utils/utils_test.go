package utils_test

import (
	"runtime"
	"testing"

	"github.com/joeydtaylor/epicycle/pkg/internal/utils"
)

func TestGenerateUniqueHash(t *testing.T) {
	a := utils.GenerateUniqueHash()
	b := utils.GenerateUniqueHash()
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == b {
		t.Fatalf("expected distinct hashes, got %s twice", a)
	}
}

func TestDefaultWorkers(t *testing.T) {
	n := utils.DefaultWorkers()
	if n < 1 {
		t.Fatalf("expected at least one worker, got %d", n)
	}
	if n > runtime.GOMAXPROCS(0) {
		t.Fatalf("expected workers <= GOMAXPROCS (%d), got %d", runtime.GOMAXPROCS(0), n)
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{37, 8, 5},
		{3, 0, 0},
	}
	for _, c := range cases {
		if got := utils.CeilDiv(c.a, c.b); got != c.want {
			t.Errorf("CeilDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestMapAndClone(t *testing.T) {
	in := []int{1, 2, 3}
	out := utils.Map(in, func(i, v int) int { return i * v })
	want := []int{0, 2, 6}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("Map()[%d] = %d, want %d", i, out[i], want[i])
		}
	}

	c := utils.Clone(in)
	c[0] = 99
	if in[0] != 1 {
		t.Fatalf("Clone aliased its input")
	}
	if got := utils.Clone[int](nil); got == nil || len(got) != 0 {
		t.Fatalf("Clone(nil) = %v, want empty non-nil slice", got)
	}
}
