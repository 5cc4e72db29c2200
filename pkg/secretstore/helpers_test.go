package secretstore_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/otpserver/pkg/secretstore"
)

// rfcSecret is the RFC 4226 test key; its base32 form is rfcSecretText.
const (
	rfcSecret     = "12345678901234567890"
	rfcSecretText = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
)

// memoryBackend keeps the record in memory.
type memoryBackend struct {
	mu     sync.Mutex
	data   []byte
	writes int
}

func newMemoryBackend(initial []byte) *memoryBackend {
	b := &memoryBackend{}
	if initial != nil {
		b.data = append([]byte{}, initial...)
	}
	return b
}

func (b *memoryBackend) Name() string { return "memory" }

func (b *memoryBackend) Read(context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, fmt.Errorf("%w: memory", secretstore.ErrNotFound)
	}
	return append([]byte{}, b.data...), nil
}

func (b *memoryBackend) Write(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte{}, data...)
	b.writes++
	return nil
}

func (b *memoryBackend) record() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte{}, b.data...)
}

func (b *memoryBackend) writeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// MockBackend is a mock implementation of the Backend interface
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Name() string { return "mock" }

func (m *MockBackend) Read(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBackend) Write(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
