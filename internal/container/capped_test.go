package container

import (
	"errors"
	"testing"
)

func TestCappedPushPop(t *testing.T) {
	c := NewCapped[int](2)
	if err := c.Push(10); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := c.Push(20); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := c.Push(30); !errors.Is(err, ErrFull) {
		t.Fatalf("want ErrFull, got %v", err)
	}
	if c.Len() != 2 || c.Cap() != 2 {
		t.Fatalf("len=%d cap=%d", c.Len(), c.Cap())
	}

	back, err := c.Back()
	if err != nil || back != 20 {
		t.Fatalf("back = %d, %v", back, err)
	}
	got, err := c.Pop()
	if err != nil || got != 20 {
		t.Fatalf("pop = %d, %v", got, err)
	}
	if c.Len() != 1 {
		t.Fatalf("len after pop = %d", c.Len())
	}
}

func TestCappedEmpty(t *testing.T) {
	c := NewCapped[string](1)
	if _, err := c.Pop(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("want ErrEmpty, got %v", err)
	}
	if _, err := c.Back(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("want ErrEmpty, got %v", err)
	}
}

func TestCappedFindAndClear(t *testing.T) {
	c := NewCapped[int](4)
	for _, v := range []int{5, 6, 7} {
		if err := c.Push(v); err != nil {
			t.Fatalf("push: %v", err)
		}
	}
	if got := c.Find(6); got != 1 {
		t.Fatalf("Find(6) = %d", got)
	}
	if got := c.Find(99); got != -1 {
		t.Fatalf("Find(99) = %d", got)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("len after clear = %d", c.Len())
	}
	if got := c.Find(5); got != -1 {
		t.Fatal("cleared elements must not be found")
	}
}

func TestCappedSetAt(t *testing.T) {
	c := NewCapped[int](3)
	_ = c.Push(1)
	_ = c.Push(2)
	c.Set(0, 42)
	if c.At(0) != 42 || c.At(1) != 2 {
		t.Fatalf("unexpected contents: %v", c.Slice())
	}
}
