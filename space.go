package qflip

import (
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

// Reveal is a result held back until the presentation is ready to show it.
type Reveal struct {
	ID        string
	Value     any
	Err       error
	CreatedAt time.Time
	TTL       time.Duration
}

func (r Reveal) expired(now time.Time) bool {
	return r.TTL > 0 && now.Sub(r.CreatedAt) > r.TTL
}

// BroadcastGroup fans reveals out to every subscriber.
type BroadcastGroup struct {
	mu       sync.Mutex
	ID       string
	channels []chan Reveal
	TTL      time.Duration
	LastUsed time.Time
	closed   bool
}

/*
Send delivers r to every subscriber. A subscriber whose buffer is full
misses the reveal rather than stalling the sender.
*/
func (bg *BroadcastGroup) Send(r Reveal) {
	bg.mu.Lock()
	defer bg.mu.Unlock()

	if bg.closed {
		return
	}

	bg.LastUsed = time.Now()
	for i, ch := range bg.channels {
		select {
		case ch <- r:
		default:
			errnie.Debug("BroadcastGroup.Send - group %s dropped %s for subscriber %d", bg.ID, r.ID, i)
		}
	}
}

func (bg *BroadcastGroup) subscribe(buffer int) chan Reveal {
	bg.mu.Lock()
	defer bg.mu.Unlock()

	ch := make(chan Reveal, buffer)
	if bg.closed {
		close(ch)
		return ch
	}

	bg.channels = append(bg.channels, ch)
	return ch
}

func (bg *BroadcastGroup) close() {
	bg.mu.Lock()
	defer bg.mu.Unlock()

	if bg.closed {
		return
	}

	bg.closed = true
	for _, ch := range bg.channels {
		close(ch)
	}
	bg.channels = nil
}

func (bg *BroadcastGroup) idle(now time.Time) bool {
	bg.mu.Lock()
	defer bg.mu.Unlock()

	return bg.TTL > 0 && now.Sub(bg.LastUsed) > bg.TTL
}

/*
RevealSpace stores reveals by ID and hands them to whoever awaits them,
whether the await comes before or after the store. Expired reveals and
idle broadcast groups are swept on a fixed interval until Close.
*/
type RevealSpace struct {
	mu      sync.RWMutex
	reveals map[string]Reveal
	waiting map[string][]chan Reveal
	groups  map[string]*BroadcastGroup

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

const subscriberBuffer = 10

func NewRevealSpace(cleanupInterval time.Duration) *RevealSpace {
	rs := &RevealSpace{
		reveals: make(map[string]Reveal),
		waiting: make(map[string][]chan Reveal),
		groups:  make(map[string]*BroadcastGroup),
		done:    make(chan struct{}),
	}

	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	rs.wg.Add(1)
	go func() {
		defer rs.wg.Done()
		rs.cleanup(cleanupInterval)
	}()

	return rs
}

// Store records a reveal and releases everyone waiting on its ID.
func (rs *RevealSpace) Store(id string, value any, err error, ttl time.Duration) Reveal {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	r := Reveal{
		ID:        id,
		Value:     value,
		Err:       err,
		CreatedAt: time.Now(),
		TTL:       ttl,
	}
	rs.reveals[id] = r

	channels := rs.waiting[id]
	for _, ch := range channels {
		ch <- r
		close(ch)
	}
	delete(rs.waiting, id)

	errnie.Debug("RevealSpace.Store - id %s, err %v, released %d waiters", id, err, len(channels))
	return r
}

// Await returns a channel that yields the reveal for id exactly once.
func (rs *RevealSpace) Await(id string) <-chan Reveal {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	ch := make(chan Reveal, 1)

	if r, ok := rs.reveals[id]; ok {
		ch <- r
		close(ch)
		return ch
	}

	rs.waiting[id] = append(rs.waiting[id], ch)
	return ch
}

// Lookup returns a stored reveal without waiting.
func (rs *RevealSpace) Lookup(id string) (Reveal, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	r, ok := rs.reveals[id]
	return r, ok
}

func (rs *RevealSpace) CreateBroadcastGroup(id string, ttl time.Duration) *BroadcastGroup {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if group, ok := rs.groups[id]; ok {
		return group
	}

	group := &BroadcastGroup{
		ID:       id,
		TTL:      ttl,
		LastUsed: time.Now(),
	}
	rs.groups[id] = group
	return group
}

/*
Subscribe joins the group and returns its feed. The channel is closed
when the group expires or the space closes. Subscribing to an unknown
group yields an already closed channel.
*/
func (rs *RevealSpace) Subscribe(groupID string) <-chan Reveal {
	rs.mu.RLock()
	group, ok := rs.groups[groupID]
	rs.mu.RUnlock()

	if !ok {
		ch := make(chan Reveal)
		close(ch)
		return ch
	}

	return group.subscribe(subscriberBuffer)
}

// Broadcast sends r to the named group, if it exists.
func (rs *RevealSpace) Broadcast(groupID string, r Reveal) {
	rs.mu.RLock()
	group, ok := rs.groups[groupID]
	rs.mu.RUnlock()

	if ok {
		group.Send(r)
	}
}

func (rs *RevealSpace) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rs.done:
			return
		case now := <-ticker.C:
			rs.sweep(now)
		}
	}
}

func (rs *RevealSpace) sweep(now time.Time) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for id, r := range rs.reveals {
		if r.expired(now) {
			delete(rs.reveals, id)
		}
	}

	for id, group := range rs.groups {
		if group.idle(now) {
			group.close()
			delete(rs.groups, id)
		}
	}
}

// Close stops the sweeper and closes every broadcast feed.
func (rs *RevealSpace) Close() {
	rs.closeOnce.Do(func() {
		close(rs.done)
		rs.wg.Wait()

		rs.mu.Lock()
		defer rs.mu.Unlock()

		for id, group := range rs.groups {
			group.close()
			delete(rs.groups, id)
		}
	})
}
