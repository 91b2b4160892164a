package kafka

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// Проверка, что Publisher удовлетворяет портам приложения.
var (
	_ ports.CartEventPublisher = (*Publisher)(nil)
	_ ports.BackgroundWorker   = (*Publisher)(nil)
)

// writer — минимальный контракт над kafka.Writer, чтобы подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// outgoing — сообщение в очереди и request_id для логов фоновой горутины.
type outgoing struct {
	msg       kafka.Message
	requestID string
}

// Publisher — асинхронная отправка CartEvent в Kafka.
// Publish кладёт событие в ограниченную очередь и не блокирует; Run вычитывает очередь
// и пишет сообщения с повторами (экспоненциальный backoff с equal-jitter).
type Publisher struct {
	writer       writer
	log          ports.Logger
	topic        string
	queue        chan outgoing
	writeTimeout time.Duration
	retryInitial time.Duration
	retryMax     time.Duration
	maxAttempts  int
	jitterRand   *rand.Rand
	closeOnce    sync.Once
}

// NewPublisher — конструктор.
func NewPublisher(cfg PublisherConfig, log ports.Logger) *Publisher {
	cfg = cfg.withDefaults()
	return newPublisher(cfg.newWriter(), cfg, log)
}

func newPublisher(w writer, cfg PublisherConfig, log ports.Logger) *Publisher {
	cfg = cfg.withDefaults()
	return &Publisher{
		writer:       w,
		log:          log,
		topic:        cfg.Topic,
		queue:        make(chan outgoing, cfg.QueueSize),
		writeTimeout: cfg.WriteTimeout,
		retryInitial: cfg.RetryInitial,
		retryMax:     cfg.RetryMax,
		maxAttempts:  cfg.MaxAttempts,
		// jitterRand — источник случайности, чтобы рассинхронизировать экспоненциальный backoff.
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Publish — поставить событие в очередь. Очередь полна — событие отбрасывается.
func (p *Publisher) Publish(ctx context.Context, event domain.CartEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		metrics.CartEventsFailed.WithLabelValues(p.topic).Inc()
		p.log.Errorf(ctx, "marshal cart event op=%s product_id=%d: %v", event.Op, event.ProductID, err)
		return
	}

	out := outgoing{
		msg: kafka.Message{
			Key:   []byte(strconv.FormatInt(event.ProductID, 10)),
			Value: value,
			Time:  event.At,
		},
		requestID: event.RequestID,
	}

	select {
	case p.queue <- out:
	default:
		metrics.CartEventsDropped.WithLabelValues(p.topic).Inc()
		p.log.Warnf(ctx, "cart event dropped: queue full topic=%s op=%s product_id=%d", p.topic, event.Op, event.ProductID)
	}
}

// Run — основной цикл доставки до отмены контекста.
// При остановке оставшиеся в очереди события отправляются по одной попытке.
func (p *Publisher) Run(ctx context.Context) error {
	p.log.Infof(ctx, "kafka publisher started topic=%s", p.topic)

	for {
		select {
		case <-ctx.Done():
			p.flush()
			return ctx.Err()
		case out := <-p.queue:
			p.deliver(ctx, out)
		}
	}
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// Pending — число событий в очереди.
func (p *Publisher) Pending() int {
	return len(p.queue)
}
