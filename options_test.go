package canvas

import "testing"

func TestNewDefault(t *testing.T) {
	cv := New()
	if cv == nil {
		t.Fatal("New returned nil")
	}
	if cv.cache != nil {
		t.Error("cache should be nil by default")
	}
}

func TestWithPathCapacity(t *testing.T) {
	cv := New(WithPathCapacity(32))
	if cap(cv.paths) != 32 {
		t.Errorf("cap(paths) = %d, want 32", cap(cv.paths))
	}
}

func TestWithPathCapacityIgnoresNonPositive(t *testing.T) {
	cv := New(WithPathCapacity(0))
	if cap(cv.paths) != 8 {
		t.Errorf("cap(paths) = %d, want default 8", cap(cv.paths))
	}
}

func TestWithTessellationCache(t *testing.T) {
	cv := New(WithTessellationCache(16))
	if cv.cache == nil {
		t.Fatal("cache should be enabled")
	}
}
