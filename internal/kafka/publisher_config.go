package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// PublisherConfig — параметры публикации событий корзины.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	QueueSize    int           // размер очереди; переполнение — событие отбрасывается
	WriteTimeout time.Duration // таймаут одной попытки записи
	RetryInitial time.Duration
	RetryMax     time.Duration
	MaxAttempts  int
}

// withDefaults — значения по умолчанию для незаданных полей.
func (c PublisherConfig) withDefaults() PublisherConfig {
	if c.Topic == "" {
		c.Topic = "cart-events"
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 256
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 5 * time.Second
	}
	if c.RetryInitial <= 0 {
		c.RetryInitial = 200 * time.Millisecond
	}
	if c.RetryMax <= 0 {
		c.RetryMax = 5 * time.Second
	}
	if c.RetryMax < c.RetryInitial {
		c.RetryMax = c.RetryInitial
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	return c
}

// newWriter — kafka.Writer: ключ = product id, партиция по хэшу ключа;
// повторы делает Publisher, поэтому у writer одна попытка.
func (c PublisherConfig) newWriter() *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		MaxAttempts:            1,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           c.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
}
