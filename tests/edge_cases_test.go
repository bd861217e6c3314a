package vec_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pavanmanishd/vec"
)

// TestEdgeCases covers boundary behavior through the public API only.
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroValueVectorIsUsable", func(t *testing.T) {
		var v vec.Vector[string]
		if err := v.PushBack("a"); err != nil {
			t.Fatalf("PushBack on zero value: %v", err)
		}
		if v.Len() != 1 || *v.At(0) != "a" {
			t.Errorf("got len %d, elem %q; want 1, \"a\"", v.Len(), *v.At(0))
		}
	})

	t.Run("UnsatisfiableAllocation", func(t *testing.T) {
		v := vec.New[[4096]byte]()
		err := v.Reserve(1 << 60)
		if !errors.Is(err, vec.ErrTooLarge) {
			t.Fatalf("Reserve(huge) error = %v, want ErrTooLarge", err)
		}
		if v.Cap() != 0 {
			t.Errorf("capacity changed on failed allocation: %d", v.Cap())
		}
		if _, err := vec.NewSized[[4096]byte](1 << 60); !errors.Is(err, vec.ErrTooLarge) {
			t.Errorf("NewSized(huge) error = %v, want ErrTooLarge", err)
		}
	})

	t.Run("ErrorsCarryOperationContext", func(t *testing.T) {
		boom := errors.New("boom")
		v := vec.NewWith(vec.Traits[int]{})
		_, err := v.Emplace(0, func() (int, error) { return 0, boom })
		if !errors.Is(err, boom) {
			t.Fatalf("cause lost: %v", err)
		}
		if !strings.Contains(err.Error(), "emplace(0)") {
			t.Errorf("error %q does not name the operation", err)
		}
	})

	t.Run("ResizeToZero", func(t *testing.T) {
		v, err := vec.NewSized[int](4)
		if err != nil {
			t.Fatal(err)
		}
		if err := v.Resize(0); err != nil {
			t.Fatal(err)
		}
		if v.Len() != 0 || v.Cap() != 4 {
			t.Errorf("got len %d cap %d, want 0 and 4", v.Len(), v.Cap())
		}
	})

	t.Run("PreconditionPanics", func(t *testing.T) {
		cases := []struct {
			name string
			f    func(*vec.Vector[int])
		}{
			{"negative resize", func(v *vec.Vector[int]) { _ = v.Resize(-1) }},
			{"insert beyond end", func(v *vec.Vector[int]) { _, _ = v.Insert(3, 0) }},
			{"erase at end", func(v *vec.Vector[int]) { _, _ = v.Erase(1) }},
			{"index at size", func(v *vec.Vector[int]) { _ = v.At(1) }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				v := vec.New[int]()
				if err := v.PushBack(1); err != nil {
					t.Fatal(err)
				}
				defer func() {
					if recover() == nil {
						t.Errorf("%s did not panic", tc.name)
					}
				}()
				tc.f(v)
			})
		}
	})

	t.Run("PointerElementsSurviveGrowth", func(t *testing.T) {
		v := vec.New[*int]()
		for i := 0; i < 100; i++ {
			n := i
			if err := v.PushBack(&n); err != nil {
				t.Fatal(err)
			}
		}
		for i := 0; i < 100; i++ {
			if p := *v.At(i); p == nil || *p != i {
				t.Fatalf("element %d lost across growth", i)
			}
		}
	})

	t.Run("StructElements", func(t *testing.T) {
		type pair struct {
			k string
			v int
		}
		v := vec.New[pair]()
		for i := 0; i < 10; i++ {
			if err := v.PushBack(pair{k: fmt.Sprintf("k%d", i), v: i}); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := v.Insert(5, pair{k: "mid", v: -1}); err != nil {
			t.Fatal(err)
		}
		if got := v.At(5); got.k != "mid" || got.v != -1 {
			t.Errorf("At(5) = %+v", *got)
		}
		if got := v.At(6); got.k != "k5" {
			t.Errorf("shifted element = %+v, want k5", *got)
		}
	})
}

// TestFailureInjection exercises every rollback path with hooks that fail
// on demand.
func TestFailureInjection(t *testing.T) {
	boom := errors.New("boom")

	// fragile returns int traits whose Copy fails after n successes.
	fragile := func(n *int) vec.Traits[int] {
		return vec.Traits[int]{
			Copy: func(x int) (int, error) {
				if *n <= 0 {
					return 0, boom
				}
				*n--
				return x, nil
			},
		}
	}

	fill := func(t *testing.T, v *vec.Vector[int], xs ...int) {
		t.Helper()
		for _, x := range xs {
			if err := v.PushBack(x); err != nil {
				t.Fatal(err)
			}
		}
	}

	snapshot := func(v *vec.Vector[int]) []int {
		var out []int
		for x := range v.Values() {
			out = append(out, x)
		}
		return out
	}

	t.Run("PushBackCopyFailure", func(t *testing.T) {
		budget := 3
		v := vec.NewWith(fragile(&budget))
		fill(t, v, 1, 2, 3)
		before := snapshot(v)

		if err := v.PushBack(4); !errors.Is(err, boom) {
			t.Fatalf("err = %v, want boom", err)
		}
		if got := snapshot(v); fmt.Sprint(got) != fmt.Sprint(before) {
			t.Errorf("vector changed on failed push: %v", got)
		}
		if v.Len() != 3 {
			t.Errorf("size changed on failure: %d", v.Len())
		}
	})

	t.Run("CloneFailureLeavesSourceIntact", func(t *testing.T) {
		budget := 10
		v := vec.NewWith(fragile(&budget))
		fill(t, v, 1, 2, 3)
		budget = 1

		if _, err := v.Clone(); !errors.Is(err, boom) {
			t.Fatalf("err = %v, want boom", err)
		}
		if got := snapshot(v); fmt.Sprint(got) != "[1 2 3]" {
			t.Errorf("source changed: %v", got)
		}
	})

	t.Run("CopyAssignGrowingFailure", func(t *testing.T) {
		budget := 100
		v := vec.NewWith(fragile(&budget))
		fill(t, v, 9)
		rhs := vec.NewWith(fragile(&budget))
		fill(t, rhs, 1, 2, 3, 4, 5)

		budget = 2 // fails while cloning rhs
		if err := v.CopyFrom(rhs); !errors.Is(err, boom) {
			t.Fatalf("err = %v, want boom", err)
		}
		if got := snapshot(v); fmt.Sprint(got) != "[9]" {
			t.Errorf("target changed on copy-and-swap failure: %v", got)
		}
		if got := snapshot(rhs); fmt.Sprint(got) != "[1 2 3 4 5]" {
			t.Errorf("rhs changed: %v", got)
		}
	})

	t.Run("ResizeGrowFailureKeepsPrefix", func(t *testing.T) {
		calls := 0
		tr := vec.Traits[int]{
			New: func() (int, error) {
				if calls++; calls > 2 {
					return 0, boom
				}
				return 7, nil
			},
		}
		v := vec.NewWith(tr)
		fill(t, v, 1, 2)

		if err := v.Resize(8); !errors.Is(err, boom) {
			t.Fatalf("err = %v, want boom", err)
		}
		if got := snapshot(v); fmt.Sprint(got) != "[1 2]" {
			t.Errorf("prior elements changed: %v", got)
		}
		if v.Cap() < 8 {
			t.Errorf("capacity decision rolled back: %d", v.Cap())
		}
	})

	t.Run("EraseMoveFailureIsBasic", func(t *testing.T) {
		moves, failAt := 0, 0
		tr := vec.Traits[int]{
			Move: func(src *int) (int, error) {
				if moves++; moves == failAt {
					return 0, boom
				}
				out := *src
				*src = 0
				return out, nil
			},
			Copy: func(x int) (int, error) { return x, nil },
		}
		v := vec.NewWith(tr)
		fill(t, v, 1, 2, 3, 4)

		moves, failAt = 0, 2
		if _, err := v.Erase(0); !errors.Is(err, boom) {
			t.Fatalf("err = %v, want boom", err)
		}
		// Basic guarantee: size unchanged, contents valid but partially
		// shifted (the erased slot was refilled, the failed slot holds a
		// zero value).
		if v.Len() != 4 {
			t.Errorf("size = %d, want 4", v.Len())
		}
		if got := snapshot(v); fmt.Sprint(got) != "[2 0 3 4]" {
			t.Errorf("post-failure state = %v", got)
		}
	})
}
