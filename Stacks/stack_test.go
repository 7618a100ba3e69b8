package Stacks

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayStack_LIFO(t *testing.T) {
	s := MakeArrayStack[*int]()
	var want []*int
	for range 1000 {
		if rg.Intn(3) == 0 && len(want) > 0 {
			v, err := s.Pop()
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if v != want[len(want)-1] {
				t.Fatalf("popped %p, want %p", v, want[len(want)-1])
			}
			want = want[:len(want)-1]
		} else {
			p := new(int)
			if err := s.Push(p); err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			want = append(want, p)
		}
		if s.Size() != uint(len(want)) {
			t.Fatalf("size is %d, want %d", s.Size(), len(want))
		}
	}
	if s.Full() {
		t.Error("unbounded stack reports full")
	}
	s.Clear()
	if !s.Empty() {
		t.Error("stack should be empty after clear")
	}
}

func TestArrayStack_Underflow(t *testing.T) {
	s := MakeArrayStack[int]()
	var empty *EmptyStackError
	if _, err := s.Pop(); !errors.As(err, &empty) {
		t.Fatalf("pop on empty stack returned %v", err)
	}
	if _, err := s.Peek(); !errors.As(err, &empty) {
		t.Fatalf("peek on empty stack returned %v", err)
	}
	_ = s.Push(7)
	if v, err := s.Peek(); v != 7 || err != nil {
		t.Fatalf("peek returned %d,%v", v, err)
	}
	if s.Size() != 1 {
		t.Fatal("peek removed the item")
	}
}

func TestBoundedStack_Overflow(t *testing.T) {
	s := MakeBoundedStack[int](2)
	_ = s.Push(1)
	_ = s.Push(2)
	var full *FullStackError
	if err := s.Push(3); !errors.As(err, &full) || full.Limit != 2 {
		t.Fatalf("push on full stack returned %v", err)
	}
	if v, _ := s.Pop(); v != 2 {
		t.Fatalf("rejected push overwrote the top, got %d", v)
	}
}
