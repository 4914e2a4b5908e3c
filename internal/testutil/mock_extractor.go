// mock_extractor.go - Mock extractor implementation for testing
package testutil

import (
	"sync"

	"github.com/pdf-extractor/backend/internal/extractor"
	"github.com/pdf-extractor/backend/internal/models"
)

// MockExtractor implements extractor.Extractor for testing. It answers
// every call with the configured result and records the inputs it saw.
type MockExtractor struct {
	mu     sync.Mutex
	result *models.ExtractionResult
	calls  [][]byte
}

// NewMockExtractor creates a mock that returns result from every Extract call.
func NewMockExtractor(result *models.ExtractionResult) *MockExtractor {
	return &MockExtractor{result: result}
}

func (m *MockExtractor) Extract(data []byte) *models.ExtractionResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, data)
	return m.result
}

// Ensure MockExtractor implements extractor.Extractor
var _ extractor.Extractor = (*MockExtractor)(nil)

// Test Helper Methods

// CallCount returns how many times Extract was invoked.
func (m *MockExtractor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LastInput returns the bytes passed to the most recent Extract call,
// or nil when no call was made.
func (m *MockExtractor) LastInput() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	return m.calls[len(m.calls)-1]
}
