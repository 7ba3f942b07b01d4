package consumer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/divyaannsh/followus/internal/domain"
)

var testTimestamp = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

// MockEventRepository is a mock implementation of repository.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) InsertBatch(ctx context.Context, events []*domain.Event) (int, error) {
	args := m.Called(ctx, events)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) ListSince(ctx context.Context, username string, since time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, username, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func testEnvelope(eventID string, acked, nacked *atomic.Int32) *Envelope {
	event := &domain.Event{
		EventID:   eventID,
		Username:  "alice",
		Type:      domain.EventTypeView,
		Source:    "direct",
		Timestamp: testTimestamp,
	}

	ack := func(ctx context.Context) error {
		if acked != nil {
			acked.Add(1)
		}
		return nil
	}

	nack := func(ctx context.Context) error {
		if nacked != nil {
			nacked.Add(1)
		}
		return nil
	}

	return NewEnvelope(event, ack, nack)
}

func TestBatchWriter_Start_BatchSizeThreshold(t *testing.T) {
	mockRepo := new(MockEventRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 3,
		FlushTimeout: 10 * time.Second,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	mockRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(events []*domain.Event) bool {
		return len(events) == 3
	})).Return(3, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var acked atomic.Int32
	in := make(chan *Envelope, 5)
	go writer.Start(ctx, in)

	in <- testEnvelope("1", &acked, nil)
	in <- testEnvelope("2", &acked, nil)
	in <- testEnvelope("3", &acked, nil)

	time.Sleep(100 * time.Millisecond)

	mockRepo.AssertExpectations(t)
	assert.Equal(t, int32(3), acked.Load())
}

func TestBatchWriter_Start_TimeoutFlush(t *testing.T) {
	mockRepo := new(MockEventRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 10,
		FlushTimeout: 50 * time.Millisecond,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	mockRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(events []*domain.Event) bool {
		return len(events) == 2
	})).Return(2, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan *Envelope, 5)
	go writer.Start(ctx, in)

	in <- testEnvelope("1", nil, nil)
	in <- testEnvelope("2", nil, nil)

	// Wait past the flush timeout
	time.Sleep(150 * time.Millisecond)

	mockRepo.AssertExpectations(t)
}

func TestBatchWriter_Start_InsertFailureNacks(t *testing.T) {
	mockRepo := new(MockEventRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 2,
		FlushTimeout: 10 * time.Second,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	mockRepo.On("InsertBatch", mock.Anything, mock.Anything).Return(0, errors.New("clickhouse unavailable"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var acked, nacked atomic.Int32
	in := make(chan *Envelope, 5)
	go writer.Start(ctx, in)

	in <- testEnvelope("1", &acked, &nacked)
	in <- testEnvelope("2", &acked, &nacked)

	time.Sleep(100 * time.Millisecond)

	mockRepo.AssertExpectations(t)
	assert.Equal(t, int32(0), acked.Load())
	assert.Equal(t, int32(2), nacked.Load())
}

func TestBatchWriter_Start_PartialInsertNacks(t *testing.T) {
	mockRepo := new(MockEventRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 2,
		FlushTimeout: 10 * time.Second,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	mockRepo.On("InsertBatch", mock.Anything, mock.Anything).Return(1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var acked, nacked atomic.Int32
	in := make(chan *Envelope, 5)
	go writer.Start(ctx, in)

	in <- testEnvelope("1", &acked, &nacked)
	in <- testEnvelope("2", &acked, &nacked)

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(0), acked.Load())
	assert.Equal(t, int32(2), nacked.Load())
}

func TestBatchWriter_Start_FinalFlushOnChannelClose(t *testing.T) {
	mockRepo := new(MockEventRepository)
	log := zap.NewNop()

	config := BatchWriterConfig{
		MaxBatchSize: 10,
		FlushTimeout: 10 * time.Second,
	}

	writer := NewBatchWriter(mockRepo, config, log)

	mockRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(events []*domain.Event) bool {
		return len(events) == 1
	})).Return(1, nil)

	ctx := context.Background()

	done := make(chan struct{})
	in := make(chan *Envelope, 5)
	go func() {
		writer.Start(ctx, in)
		close(done)
	}()

	in <- testEnvelope("1", nil, nil)
	close(in)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("batch writer did not stop after channel close")
	}

	mockRepo.AssertExpectations(t)
}
