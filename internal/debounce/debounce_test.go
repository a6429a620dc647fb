package debounce

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"
)

type recorder[T any] struct {
	mu     sync.Mutex
	values []T
	times  []time.Duration
	start  time.Time
}

func newRecorder[T any]() *recorder[T] {
	return &recorder[T]{start: time.Now()}
}

func (r *recorder[T]) commit(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
	r.times = append(r.times, time.Since(r.start))
}

func (r *recorder[T]) snapshot() ([]T, []time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.values...), append([]time.Duration(nil), r.times...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := newRecorder[int]()
		d := New(500*time.Millisecond, rec.commit)

		d.Set(128)
		time.Sleep(100 * time.Millisecond)
		d.Set(256)
		time.Sleep(100 * time.Millisecond)
		d.Set(512)

		if v, ok := d.Pending(); !ok || v != 512 {
			t.Errorf("Pending() = %d, %v, want 512, true", v, ok)
		}

		time.Sleep(499 * time.Millisecond)
		synctest.Wait()
		if values, _ := rec.snapshot(); len(values) != 0 {
			t.Fatalf("committed %v before the quiet period elapsed", values)
		}

		time.Sleep(time.Millisecond)
		synctest.Wait()

		values, times := rec.snapshot()
		if len(values) != 1 || values[0] != 512 {
			t.Fatalf("committed %v, want [512]", values)
		}
		if times[0] != 700*time.Millisecond {
			t.Errorf("commit at %v, want 700ms", times[0])
		}
		if _, ok := d.Pending(); ok {
			t.Error("Pending() still set after commit")
		}
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := newRecorder[string]()
		d := New(500*time.Millisecond, rec.commit)

		d.Set("a")
		time.Sleep(time.Second)
		d.Set("b")
		time.Sleep(time.Second)
		synctest.Wait()

		values, _ := rec.snapshot()
		if len(values) != 2 || values[0] != "a" || values[1] != "b" {
			t.Errorf("committed %v, want [a b]", values)
		}
	})
}

func TestDebouncer_Cancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := newRecorder[int]()
		d := New(500*time.Millisecond, rec.commit)

		d.Set(1)
		time.Sleep(200 * time.Millisecond)
		d.Cancel()
		time.Sleep(time.Second)
		synctest.Wait()

		if values, _ := rec.snapshot(); len(values) != 0 {
			t.Errorf("committed %v after Cancel, want nothing", values)
		}
		if _, ok := d.Pending(); ok {
			t.Error("Pending() set after Cancel")
		}
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := newRecorder[int]()
		d := New(500*time.Millisecond, rec.commit)

		if d.Flush() {
			t.Error("Flush() = true with nothing pending")
		}

		d.Set(7)
		if !d.Flush() {
			t.Error("Flush() = false, want true")
		}
		time.Sleep(time.Second)
		synctest.Wait()

		values, times := rec.snapshot()
		if len(values) != 1 || values[0] != 7 {
			t.Fatalf("committed %v, want [7]", values)
		}
		if times[0] != 0 {
			t.Errorf("flush committed at %v, want 0", times[0])
		}
	})
}

func TestDebouncer_StopRefusesFurtherSets(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := newRecorder[int]()
		d := New(500*time.Millisecond, rec.commit)

		d.Set(1)
		d.Stop()
		d.Set(2)
		time.Sleep(time.Second)
		synctest.Wait()

		if values, _ := rec.snapshot(); len(values) != 0 {
			t.Errorf("committed %v after Stop, want nothing", values)
		}
		if d.Flush() {
			t.Error("Flush() = true after Stop")
		}
	})
}
