package checkout

import (
	"context"
	"io"
	"sync"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/Tyyuu55/Crave-Now/internal/events"
	"github.com/sirupsen/logrus"
)

type MockOrderCreator struct {
	mu       sync.RWMutex
	requests []domain.OrderRequest
	order    *domain.Order
	err      error
	// onCall runs while the request is "in flight".
	onCall func()
}

func (m *MockOrderCreator) CreateOrder(_ context.Context, req domain.OrderRequest) (*domain.Order, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	order, err, onCall := m.order, m.err, m.onCall
	m.mu.Unlock()

	if onCall != nil {
		onCall()
	}
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	created := *order
	created.OrderRequest = req
	return &created, nil
}

func (m *MockOrderCreator) calls() []domain.OrderRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.OrderRequest(nil), m.requests...)
}

type MockPublisher struct {
	published chan events.OrderPlaced
	err       error
}

func newMockPublisher() *MockPublisher {
	return &MockPublisher{published: make(chan events.OrderPlaced, 4)}
}

func (m *MockPublisher) PublishOrderPlaced(_ context.Context, event events.OrderPlaced) error {
	m.published <- event
	return m.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
