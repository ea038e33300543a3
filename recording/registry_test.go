package recording

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/mvp/scene"
	"github.com/google/go-cmp/cmp"
)

// mockBackend records the lifecycle and every call it receives.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	calls      []scene.DrawCall

	beginErr error
	drawErr  error
	endErr   error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return b.beginErr
}

func (b *mockBackend) Draw(call scene.DrawCall) error {
	if b.drawErr != nil {
		return b.drawErr
	}
	b.calls = append(b.calls, call)
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return b.endErr
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	fn()
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend { return newMockBackend("test") })

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}

	// Each call gets a fresh instance.
	other, _ := NewBackend("test")
	if other == backend {
		t.Error("NewBackend returned a shared instance")
	}
}

func TestRegistryErrors(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("known", func() Backend { return newMockBackend("known") })
	_, err := NewBackend("unknown")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewBackend(unknown) error = %v, want ErrUnknownBackend", err)
	}
	if err != nil && !strings.Contains(err.Error(), "known") {
		t.Errorf("error %q does not list registered backends", err)
	}

	Register("nilfactory", func() Backend { return nil })
	if b, err := NewBackend("nilfactory"); err == nil || b != nil {
		t.Errorf("NewBackend(nilfactory) = %v, %v, want error", b, err)
	}
	mustPanic(t, func() { Register("nil", nil) })
	mustPanic(t, func() { _ = MustBackend("unknown") })

	factory := func() Backend { return newMockBackend("dup") }
	Register("dup", factory)
	mustPanic(t, func() { Register("dup", factory) })
}

func TestUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("temp", func() Backend { return newMockBackend("temp") })
	if !IsRegistered("temp") {
		t.Error("backend should be registered")
	}
	Unregister("temp")
	if IsRegistered("temp") {
		t.Error("backend should not be registered after Unregister")
	}
	Unregister("nonexistent")
}

func TestBackendsSortedAndCount(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if Count() != 0 {
		t.Errorf("Count() = %d, want 0", Count())
	}
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		Register(name, func() Backend { return newMockBackend(name) })
	}
	if diff := cmp.Diff([]string{"alpha", "bravo", "charlie"}, Backends()); diff != "" {
		t.Errorf("Backends() mismatch (-want +got):\n%s", diff)
	}
	if Count() != 3 {
		t.Errorf("Count() = %d, want 3", Count())
	}
	if MustBackend("alpha") == nil {
		t.Error("MustBackend returned nil")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			name := "concurrent" + string(rune('A'+i%26)) + string(rune('0'+i/26))
			Register(name, func() Backend { return newMockBackend(name) })
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = Backends()
			_ = Count()
			_ = IsRegistered("nonexistent")
		}
	}()
	wg.Wait()

	if Count() != 100 {
		t.Errorf("Count() = %d, want 100", Count())
	}
}
