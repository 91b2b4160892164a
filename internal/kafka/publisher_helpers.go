package kafka

import (
	"context"
	"time"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// deliver — запись одного сообщения с повторами; после maxAttempts событие теряется.
func (p *Publisher) deliver(ctx context.Context, out outgoing) {
	logCtx := ctxmeta.WithRequestID(context.Background(), out.requestID)
	retry := p.retryInitial

	for attempt := 1; ; attempt++ {
		err := p.writeOnce(ctx, out)
		if err == nil {
			metrics.CartEventsPublished.WithLabelValues(p.topic).Inc()
			return
		}
		if ctx.Err() != nil {
			// остановка: сообщение допишет flush
			p.requeue(logCtx, out)
			return
		}
		if attempt >= p.maxAttempts {
			metrics.CartEventsFailed.WithLabelValues(p.topic).Inc()
			p.log.Errorf(logCtx, "cart event lost after %d attempts key=%s: %v", attempt, out.msg.Key, err)
			return
		}

		sleep := p.withJitterEqual(retry)
		p.log.Warnf(logCtx, "write failed attempt=%d: %v (will retry in %s)", attempt, err, sleep)
		if !p.sleepWithBackoff(ctx, sleep) {
			p.requeue(logCtx, out)
			return
		}
		retry = p.nextBackoff(retry)
	}
}

// flush — по одной попытке на каждое событие, оставшееся в очереди.
func (p *Publisher) flush() {
	for {
		select {
		case out := <-p.queue:
			logCtx := ctxmeta.WithRequestID(context.Background(), out.requestID)
			if err := p.writeOnce(context.Background(), out); err != nil {
				metrics.CartEventsFailed.WithLabelValues(p.topic).Inc()
				p.log.Warnf(logCtx, "cart event lost on shutdown key=%s: %v", out.msg.Key, err)
				continue
			}
			metrics.CartEventsPublished.WithLabelValues(p.topic).Inc()
		default:
			return
		}
	}
}

func (p *Publisher) writeOnce(ctx context.Context, out outgoing) error {
	wctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()
	return p.writer.WriteMessages(wctx, out.msg)
}

// requeue — вернуть сообщение в очередь для flush; места нет — событие теряется.
func (p *Publisher) requeue(ctx context.Context, out outgoing) {
	select {
	case p.queue <- out:
	default:
		metrics.CartEventsDropped.WithLabelValues(p.topic).Inc()
		p.log.Warnf(ctx, "cart event dropped on shutdown key=%s", out.msg.Key)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (p *Publisher) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (p *Publisher) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > p.retryMax {
		return p.retryMax
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайная.
func (p *Publisher) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(p.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}
