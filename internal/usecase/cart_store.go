package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// ErrCartNotPersisted — изменение применено в памяти, но не записано в хранилище.
var ErrCartNotPersisted = errors.New("cart not persisted")

// Операции для метрики cart_mutations_total.
const (
	opAdd    = "add"
	opChange = "change"
	opRemove = "remove"
)

// CartStore — единственный владелец корзины в процессе.
// Корзина читается из хранилища один раз при создании, дальше источник истины — память;
// каждое изменение целиком перезаписывает значение по ключу.
type CartStore struct {
	storage ports.KVStorage          // хранилище строк по ключу
	key     string                   // ключ корзины в хранилище
	events  ports.CartEventPublisher // события изменений (может быть nil)
	log     ports.Logger             // логгер
	now     func() time.Time         // часы для событий

	mu   sync.Mutex
	cart domain.Cart
}

// CartStoreOption — опция конструктора.
type CartStoreOption func(*CartStore)

// WithEvents — публиковать события после каждого фактического изменения.
func WithEvents(p ports.CartEventPublisher) CartStoreOption {
	return func(s *CartStore) { s.events = p }
}

// WithClock — источник времени для событий (для тестов).
func WithClock(now func() time.Time) CartStoreOption {
	return func(s *CartStore) { s.now = now }
}

// NewCartStore — DI-конструктор; загружает корзину из хранилища.
// Ошибка чтения или битые данные дают пустую корзину (предупреждение в лог).
func NewCartStore(
	ctx context.Context,
	storage ports.KVStorage,
	key string,
	log ports.Logger,
	opts ...CartStoreOption,
) *CartStore {
	s := &CartStore{
		storage: storage,
		key:     key,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cart = s.load(ctx)
	metrics.CartLines.Set(float64(s.cart.Len()))
	return s
}

func (s *CartStore) load(ctx context.Context) domain.Cart {
	raw, found, err := s.storage.Get(ctx, s.key)
	if err != nil {
		metrics.CartStorageLoads.WithLabelValues("read_error").Inc()
		s.log.Warnf(ctx, "cart read failed key=%s err=%v", s.key, err)
		return domain.Cart{}
	}
	if !found {
		metrics.CartStorageLoads.WithLabelValues("empty").Inc()
		return domain.Cart{}
	}

	cart, err := domain.UnmarshalCart([]byte(raw))
	if err != nil {
		metrics.CartStorageLoads.WithLabelValues("decode_error").Inc()
		s.log.Warnf(ctx, "cart decode failed key=%s err=%v", s.key, err)
		return domain.Cart{}
	}

	metrics.CartStorageLoads.WithLabelValues("ok").Inc()
	s.log.Infof(ctx, "cart loaded key=%s lines=%d", s.key, cart.Len())
	return cart
}

// Snapshot — текущее состояние корзины.
func (s *CartStore) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Lines — позиции корзины в порядке добавления.
func (s *CartStore) Lines() []domain.CartLine {
	return s.Snapshot().Lines()
}

// Total — сумма корзины.
func (s *CartStore) Total() float64 {
	return s.Snapshot().Total()
}

// AddOrIncrement — добавить товар или увеличить количество на 1. Всегда сохраняет.
func (s *CartStore) AddOrIncrement(ctx context.Context, product domain.Product) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op := domain.CartEventAdded
	if _, ok := s.cart.Line(product.ID); ok {
		op = domain.CartEventIncremented
	}
	s.cart = s.cart.AddOrIncrement(product)

	err := s.persist(ctx, opAdd)
	s.publish(ctx, op, product.ID)
	return s.cart, err
}

// ChangeQuantity — изменить количество на delta; позиция с количеством <= 0 удаляется.
// Товара нет в корзине — ничего не делает и не сохраняет.
func (s *CartStore) ChangeQuantity(ctx context.Context, productID int64, delta int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.cart.ChangeQuantity(productID, delta)
	if !ok {
		metrics.CartMutations.WithLabelValues(opChange, "noop").Inc()
		s.log.Debugf(ctx, "change quantity skipped: product_id=%d not in cart", productID)
		return s.cart, nil
	}
	s.cart = next

	err := s.persist(ctx, opChange)
	op := domain.CartEventQuantityChanged
	if _, still := next.Line(productID); !still {
		op = domain.CartEventRemoved
	}
	s.publish(ctx, op, productID)
	return s.cart, err
}

// Remove — удалить позицию. Сохраняет всегда, даже если товара не было:
// запись того же блоба идемпотентна и досохраняет состояние после прошлой неудачной записи.
func (s *CartStore) Remove(ctx context.Context, productID int64) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed := s.cart.Remove(productID)
	s.cart = next

	err := s.persist(ctx, opRemove)
	if removed {
		s.publish(ctx, domain.CartEventRemoved, productID)
	}
	return s.cart, err
}

// persist — записать корзину целиком; вызывается под s.mu.
func (s *CartStore) persist(ctx context.Context, op string) error {
	metrics.CartLines.Set(float64(s.cart.Len()))

	raw, err := domain.MarshalCart(s.cart)
	if err == nil {
		err = s.storage.Set(ctx, s.key, string(raw))
	}
	if err != nil {
		metrics.CartMutations.WithLabelValues(op, "persist_error").Inc()
		s.log.Errorf(ctx, "cart persist failed key=%s op=%s err=%v", s.key, op, err)
		return fmt.Errorf("%w: %w", ErrCartNotPersisted, err)
	}

	metrics.CartMutations.WithLabelValues(op, "ok").Inc()
	return nil
}

func (s *CartStore) publish(ctx context.Context, op domain.CartEventOp, productID int64) {
	if s.events == nil {
		return
	}
	event := domain.CartEvent{
		Op:        op,
		ProductID: productID,
		Lines:     s.cart.Len(),
		Total:     s.cart.Total(),
		At:        s.now().UTC(),
	}
	if line, ok := s.cart.Line(productID); ok {
		event.Quantity = line.Quantity
	}
	event.Origin, _ = ctxmeta.OriginFromContext(ctx)
	event.RequestID, _ = ctxmeta.RequestIDFromContext(ctx)
	s.events.Publish(ctx, event)
}
