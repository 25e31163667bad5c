package types

import "sync"

// SyncMap is a concurrent map remembering insertion order. When a capacity
// is set, the oldest items are evicted first.
type SyncMap struct {
	data     map[string]interface{}
	order    []string
	capacity int
	lock     *sync.RWMutex
}

func NewSyncMap() *SyncMap {
	return NewBoundedSyncMap(0)
}

// NewBoundedSyncMap keeps at most capacity items; 0 means no limit.
func NewBoundedSyncMap(capacity int) *SyncMap {
	return &SyncMap{
		data:     make(map[string]interface{}),
		order:    make([]string, 0),
		capacity: capacity,
		lock:     &sync.RWMutex{},
	}
}

func (wmap *SyncMap) GetGeneric(id string) interface{} {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return wmap.data[id]
}

func (wmap *SyncMap) Set(id string, item interface{}) {
	wmap.lock.Lock()
	defer wmap.lock.Unlock()

	if _, present := wmap.data[id]; !present {
		wmap.order = append(wmap.order, id)
	}

	wmap.data[id] = item

	for wmap.capacity > 0 && len(wmap.order) > wmap.capacity {
		delete(wmap.data, wmap.order[0])
		wmap.order = wmap.order[1:]
	}
}

func (wmap *SyncMap) Remove(id string) {
	wmap.lock.Lock()
	defer wmap.lock.Unlock()

	if _, present := wmap.data[id]; !present {
		return
	}

	delete(wmap.data, id)

	for i, key := range wmap.order {
		if key == id {
			wmap.order = append(wmap.order[:i], wmap.order[i+1:]...)
			break
		}
	}
}

func (wmap *SyncMap) Size() int {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return len(wmap.data)
}

// ToArrayGeneric returns the items, oldest first.
func (wmap *SyncMap) ToArrayGeneric() []interface{} {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	res := make([]interface{}, len(wmap.order))
	for i, id := range wmap.order {
		res[i] = wmap.data[id]
	}

	return res
}
