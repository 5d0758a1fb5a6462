package history

import "testing"

func TestUndoRedo(t *testing.T) {
	s := New[string](10)
	s.Push("a")
	s.Push("b")
	s.Push("c")

	steps := []struct {
		op     func() (string, bool)
		name   string
		want   string
		wantOK bool
	}{
		{s.Undo, "undo", "b", true},
		{s.Undo, "undo", "a", true},
		{s.Undo, "undo", "", false},
		{s.Redo, "redo", "b", true},
	}
	for i, st := range steps {
		got, ok := st.op()
		if got != st.want || ok != st.wantOK {
			t.Fatalf("step %d %s = (%q, %v), want (%q, %v)", i, st.name, got, ok, st.want, st.wantOK)
		}
	}
	if !s.CanUndo() || !s.CanRedo() {
		t.Error("cursor in the middle should allow both directions")
	}
}

func TestPushDiscardsRedoBranch(t *testing.T) {
	s := New[int](10)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	s.Undo()
	s.Undo()
	s.Push(4)

	if s.CanRedo() {
		t.Error("redo branch survived a push")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if v, _ := s.Current(); v != 4 {
		t.Errorf("Current() = %d, want 4", v)
	}
	if v, _ := s.Undo(); v != 1 {
		t.Errorf("Undo() = %d, want 1", v)
	}
}

func TestDepthEvictsOldest(t *testing.T) {
	s := New[int](3)
	for i := 1; i <= 5; i++ {
		s.Push(i)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	s.Undo()
	if v, ok := s.Undo(); !ok || v != 3 {
		t.Errorf("oldest kept = (%d, %v), want (3, true)", v, ok)
	}
	if _, ok := s.Undo(); ok {
		t.Error("evicted snapshot still reachable")
	}
}

func TestEmptyAndClear(t *testing.T) {
	s := New[int](0)
	if _, ok := s.Current(); ok {
		t.Error("empty stack has a current value")
	}
	if _, ok := s.Redo(); ok {
		t.Error("redo on empty stack succeeded")
	}
	s.Push(1)
	s.Clear()
	if s.Len() != 0 || s.CanUndo() {
		t.Error("Clear() left history behind")
	}
}
