package vector

import (
	"testing"

	"github.com/cwbudde/algo-vector/internal/testutil"
)

func TestCursorWalk(t *testing.T) {
	v := Of(10, 20, 30)
	var got []int
	for c := v.Begin(); !c.Equal(v.End()); c = c.Next() {
		got = append(got, c.Value())
	}
	testutil.RequireElements(t, got, []int{10, 20, 30})
}

func TestCursorSetAndRef(t *testing.T) {
	v := Of(1, 2, 3)
	c := v.Begin().Advance(2)
	c.Set(33)
	*v.Begin().Ref() = 11
	testutil.RequireElements(t, v.Slice(), []int{11, 2, 33})
}

func TestCursorValid(t *testing.T) {
	v := Of(1)
	tests := []struct {
		name string
		c    Cursor[int]
		want bool
	}{
		{name: "begin", c: v.Begin(), want: true},
		{name: "end", c: v.End(), want: false},
		{name: "before begin", c: v.Begin().Prev(), want: false},
		{name: "zero", c: Cursor[int]{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Fatalf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursorDereferenceInvalidPanics(t *testing.T) {
	v := Of(1)
	testutil.RequirePanic(t, "End().Value", func() { _ = v.End().Value() })
	testutil.RequirePanic(t, "zero cursor", func() { _ = Cursor[int]{}.Value() })

	c := v.Begin()
	v.Clear()
	testutil.RequirePanic(t, "cleared vector", func() { c.Set(2) })
}

func TestCursorEqual(t *testing.T) {
	a := Of(1, 2)
	b := Of(1, 2)
	if !a.Begin().Next().Equal(a.End().Prev()) {
		t.Fatal("cursors at the same index of the same vector should be equal")
	}
	if a.Begin().Equal(b.Begin()) {
		t.Fatal("cursors of different vectors should differ")
	}
}
