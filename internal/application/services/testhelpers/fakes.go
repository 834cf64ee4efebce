package testhelpers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
	"github.com/stretchr/testify/mock"
)

// ErrStorageDown simulates an unavailable store.
var ErrStorageDown = errors.New("storage unavailable")

// MemoryOrderLedger is an in-memory domain.OrderLedger.
type MemoryOrderLedger struct {
	mu     sync.RWMutex
	orders []domain.Order
	Fail   bool
}

func NewMemoryOrderLedger() *MemoryOrderLedger {
	return &MemoryOrderLedger{}
}

func (l *MemoryOrderLedger) Append(ctx context.Context, order *domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Fail {
		return ErrStorageDown
	}
	order.ID = int64(len(l.orders) + 1)
	order.CreatedAt = time.Now()
	l.orders = append(l.orders, *order)
	return nil
}

func (l *MemoryOrderLedger) MostRecent(ctx context.Context) (*domain.Order, error) {
	recent, err := l.Recent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return recent[0], nil
}

func (l *MemoryOrderLedger) Recent(ctx context.Context, n int) ([]*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.Fail {
		return nil, ErrStorageDown
	}
	out := make([]*domain.Order, 0, n)
	for i := len(l.orders) - 1; i >= 0 && len(out) < n; i-- {
		o := l.orders[i]
		out = append(out, &o)
	}
	return out, nil
}

// All returns every stored order, oldest first.
func (l *MemoryOrderLedger) All() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Order(nil), l.orders...)
}

// MemoryPaymentLedger is an in-memory domain.PaymentLedger.
type MemoryPaymentLedger struct {
	mu      sync.RWMutex
	notices []domain.PaymentNotice
	Fail    bool
}

func NewMemoryPaymentLedger() *MemoryPaymentLedger {
	return &MemoryPaymentLedger{}
}

func (l *MemoryPaymentLedger) Append(ctx context.Context, notice *domain.PaymentNotice) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Fail {
		return ErrStorageDown
	}
	notice.ID = int64(len(l.notices) + 1)
	notice.CreatedAt = time.Now()
	l.notices = append(l.notices, *notice)
	return nil
}

func (l *MemoryPaymentLedger) MostRecent(ctx context.Context) (*domain.PaymentNotice, error) {
	recent, err := l.Recent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, domain.ErrPaymentNoticeNotFound
	}
	return recent[0], nil
}

func (l *MemoryPaymentLedger) Recent(ctx context.Context, n int) ([]*domain.PaymentNotice, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.Fail {
		return nil, ErrStorageDown
	}
	out := make([]*domain.PaymentNotice, 0, n)
	for i := len(l.notices) - 1; i >= 0 && len(out) < n; i-- {
		p := l.notices[i]
		out = append(out, &p)
	}
	return out, nil
}

func (l *MemoryPaymentLedger) All() []domain.PaymentNotice {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.PaymentNotice(nil), l.notices...)
}

// MockGateway is a testify mock of application.MessagingGateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SendText(ctx context.Context, to, body string) error {
	args := m.Called(ctx, to, body)
	return args.Error(0)
}

func (m *MockGateway) SendTextWithAction(ctx context.Context, to, body string, action application.Action) error {
	args := m.Called(ctx, to, body, action)
	return args.Error(0)
}

// RecordingPrinter keeps every printed receipt.
type RecordingPrinter struct {
	mu       sync.Mutex
	Receipts []domain.Receipt
	Err      error
}

func (p *RecordingPrinter) Print(ctx context.Context, receipt domain.Receipt) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Receipts = append(p.Receipts, receipt)
	return nil
}
