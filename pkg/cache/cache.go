package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const defaultJanitorInterval = 2 * time.Minute

type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache потокобезопасный LRU с TTL. Значения хранятся как есть,
// поэтому кладите в него только то, что не мутируется после Set.
type LRUCache[V any] struct {
	capacity int
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
}

type Option func(*options)

type options struct {
	interval time.Duration
	now      func() time.Time
}

func WithJanitorInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func NewLRUCache[V any](capacity int, ttl time.Duration, opts ...Option) *LRUCache[V] {
	o := options{interval: defaultJanitorInterval, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &LRUCache[V]{
		capacity: capacity,
		ttl:      ttl,
		interval: o.interval,
		now:      o.now,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	ele, ok := c.items[key]
	if !ok {
		return zero, false
	}

	ent := ele.Value.(*entry[V])
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		return zero, false
	}
	c.ll.MoveToFront(ele)
	return ent.value, true
}

func (c *LRUCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(c.ttl)

	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiration = expiration
		return
	}

	ele := c.ll.PushFront(&entry[V]{key: key, value: value, expiration: expiration})
	c.items[key] = ele

	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
}

// SetIf кладёт значение, если ключа нет, он истёк или replace(текущее) вернул true.
// Проверка и запись выполняются под одной блокировкой.
func (c *LRUCache[V]) SetIf(key string, value V, replace func(current V) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.items[key]; ok {
		ent := ele.Value.(*entry[V])
		if !c.now().After(ent.expiration) && !replace(ent.value) {
			return false
		}
		c.ll.MoveToFront(ele)
		ent.value = value
		ent.expiration = c.now().Add(c.ttl)
		return true
	}

	c.items[key] = c.ll.PushFront(&entry[V]{key: key, value: value, expiration: c.now().Add(c.ttl)})
	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
	return true
}

func (c *LRUCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.items[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start запускает janitor до отмены ctx.
func (c *LRUCache[V]) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache[V]) removeOldest() {
	if ele := c.ll.Back(); ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache[V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry[V]).key)
}

func (c *LRUCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry[V]).expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
