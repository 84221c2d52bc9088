package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/bidpulse/bidpulse/internal/logging"
)

var memoryLog = logging.Global().With("component", "feed.memory")

type memorySubscription struct {
	handler MessageHandler
	ctx     context.Context
	cancel  context.CancelFunc
	ch      chan memoryMessage
}

type memoryMessage struct {
	subject string
	data    []byte
}

// MemorySubscriber implements Subscriber over an in-process broker. Used
// in tests and single-node setups with no external broker.
type MemorySubscriber struct {
	subscriptions map[string]*memorySubscription
	mu            sync.Mutex
}

var (
	memBroker     *memoryBroker
	memBrokerOnce sync.Once
)

type memoryBroker struct {
	subscribers map[string][]*memorySubscription
	mu          sync.RWMutex
}

func getMemoryBroker() *memoryBroker {
	memBrokerOnce.Do(func() {
		memBroker = &memoryBroker{
			subscribers: make(map[string][]*memorySubscription),
		}
	})
	return memBroker
}

// PublishToMemory delivers a message to all in-process subscribers of the
// subject. Messages to full subscriber channels are dropped.
func PublishToMemory(subject string, data []byte) {
	b := getMemoryBroker()
	b.mu.RLock()
	subs := b.subscribers[subject]
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub.ch <- memoryMessage{subject: subject, data: data}:
		default:
			memoryLog.Warn("Subscriber channel full, dropping message", "subject", subject)
		}
	}
}

// NewMemorySubscriber creates an in-process subscriber.
func NewMemorySubscriber() (*MemorySubscriber, error) {
	return &MemorySubscriber{
		subscriptions: make(map[string]*memorySubscription),
	}, nil
}

// Subscribe registers with the in-process broker.
func (s *MemorySubscriber) Subscribe(ctx context.Context, subject string, handler MessageHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.subscriptions[subject]; exists {
		return fmt.Errorf("already subscribed to subject: %s", subject)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &memorySubscription{
		handler: handler,
		ctx:     subCtx,
		cancel:  cancel,
		ch:      make(chan memoryMessage, 1000),
	}

	s.subscriptions[subject] = sub

	b := getMemoryBroker()
	b.mu.Lock()
	b.subscribers[subject] = append(b.subscribers[subject], sub)
	b.mu.Unlock()

	go s.consume(sub)

	memoryLog.Info("Subscribed to in-memory subject", "subject", subject)
	return nil
}

func (s *MemorySubscriber) consume(sub *memorySubscription) {
	for {
		select {
		case <-sub.ctx.Done():
			return
		case msg := <-sub.ch:
			if err := sub.handler(sub.ctx, msg.subject, msg.data); err != nil {
				memoryLog.Error("Failed to handle message", "subject", msg.subject, "error", err)
			}
		}
	}
}

func (s *MemorySubscriber) detach(subject string, sub *memorySubscription) {
	b := getMemoryBroker()
	b.mu.Lock()
	subs := b.subscribers[subject]
	for i, bs := range subs {
		if bs == sub {
			b.subscribers[subject] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	b.mu.Unlock()
}

// Unsubscribe detaches from a subject.
func (s *MemorySubscriber) Unsubscribe(subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, exists := s.subscriptions[subject]
	if !exists {
		return fmt.Errorf("not subscribed to subject: %s", subject)
	}

	sub.cancel()
	delete(s.subscriptions, subject)
	s.detach(subject, sub)

	memoryLog.Info("Unsubscribed from in-memory subject", "subject", subject)
	return nil
}

// Close drops all subscriptions.
func (s *MemorySubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for subject, sub := range s.subscriptions {
		sub.cancel()
		s.detach(subject, sub)
	}
	s.subscriptions = make(map[string]*memorySubscription)

	memoryLog.Info("Memory feed closed")
	return nil
}
