package quickswipe

import (
	"sync"
	"testing"
	"time"
)

func TestFrameScheduler_RunsInDueOrder(t *testing.T) {
	s := NewFrameScheduler()
	var order []string
	s.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(5 * time.Millisecond)
	if len(order) != 0 {
		t.Fatalf("ran early: %v", order)
	}
	s.Advance(25 * time.Millisecond)
	want := "abc"
	got := ""
	for _, o := range order {
		got += o
	}
	if got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
	if s.Now() != 30*time.Millisecond {
		t.Errorf("Now = %v, want 30ms", s.Now())
	}
}

func TestFrameScheduler_Stop(t *testing.T) {
	s := NewFrameScheduler()
	ran := false
	timer := s.AfterFunc(time.Millisecond, func() { ran = true })
	if !timer.Stop() {
		t.Error("first Stop should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}
	s.Advance(time.Second)
	if ran {
		t.Error("stopped timer ran")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestFrameScheduler_ChainedCallbackRunsWhenDue(t *testing.T) {
	s := NewFrameScheduler()
	var ran []int
	s.AfterFunc(10*time.Millisecond, func() {
		ran = append(ran, 1)
		s.AfterFunc(0, func() { ran = append(ran, 2) })
		s.AfterFunc(time.Second, func() { ran = append(ran, 3) })
	})
	s.Advance(10 * time.Millisecond)
	if len(ran) != 2 || ran[0] != 1 || ran[1] != 2 {
		t.Errorf("ran = %v, want [1 2]", ran)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", s.Pending())
	}
}

func TestTimerSlot_ScheduleReplaces(t *testing.T) {
	s := NewFrameScheduler()
	slot := NewTimerSlot(s)
	var ran []string
	slot.Schedule(10*time.Millisecond, func() { ran = append(ran, "first") })
	slot.Schedule(20*time.Millisecond, func() { ran = append(ran, "second") })
	if s.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", s.Pending())
	}
	s.Advance(time.Second)
	if len(ran) != 1 || ran[0] != "second" {
		t.Errorf("ran = %v, want [second]", ran)
	}
	if slot.Pending() {
		t.Error("slot should be empty after firing")
	}
}

func TestTimerSlot_Cancel(t *testing.T) {
	s := NewFrameScheduler()
	slot := NewTimerSlot(s)
	ran := false
	slot.Schedule(10*time.Millisecond, func() { ran = true })
	if !slot.Pending() {
		t.Fatal("slot should be pending")
	}
	slot.Cancel()
	slot.Cancel()
	s.Advance(time.Second)
	if ran || slot.Pending() {
		t.Errorf("ran = %v pending = %v, want false false", ran, slot.Pending())
	}
}

func TestTimerSlot_RescheduleFromCallback(t *testing.T) {
	s := NewFrameScheduler()
	slot := NewTimerSlot(s)
	n := 0
	var tick func()
	tick = func() {
		n++
		if n < 3 {
			slot.Schedule(10*time.Millisecond, tick)
		}
	}
	slot.Schedule(10*time.Millisecond, tick)
	for i := 0; i < 5; i++ {
		s.Advance(10 * time.Millisecond)
	}
	if n != 3 {
		t.Errorf("ticks = %d, want 3", n)
	}
	if slot.Pending() {
		t.Error("slot should be empty")
	}
}

func TestTimerSlot_NilScheduler(t *testing.T) {
	slot := NewTimerSlot(nil)
	slot.Schedule(time.Millisecond, func() {})
	if slot.Pending() {
		t.Error("nil scheduler slot should never be pending")
	}
}

func TestSerialExecutor_RunsInOrder(t *testing.T) {
	e := NewSerialExecutor()
	var mu sync.Mutex
	var got []int
	for i := 0; i < 50; i++ {
		e.Submit(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	e.Close()

	if len(got) != 50 {
		t.Fatalf("ran %d tasks, want 50", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("task %d ran as %d", i, v)
		}
	}

	e.Submit(func() { t.Error("task ran after Close") })
	e.Close()
}

func TestInlineExecutor(t *testing.T) {
	ran := false
	InlineExecutor.Submit(func() { ran = true })
	if !ran {
		t.Error("inline executor should run synchronously")
	}
}
