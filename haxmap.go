package hashbench

import (
	"github.com/alphadose/haxmap"
)

// HaxMapLabel is the report label of HaxMap
const HaxMapLabel = "haxmap.Map[string, string]"

// HaxMap is a Table over the lock-free haxmap.Map.
// It is not Resizable: haxmap only grows and hides its bucket count.
type HaxMap struct {
	m *haxmap.Map[string, string]
}

var _ Table = &HaxMap{}

// NewHaxMap ...
func NewHaxMap() *HaxMap {
	return &HaxMap{m: haxmap.New[string, string]()}
}

// Insert uses GetOrSet so the existence check and the store are one call.
func (h *HaxMap) Insert(key string, value string) bool {
	if len(key) == 0 {
		return false
	}
	_, loaded := h.m.GetOrSet(key, value)
	return !loaded
}

// Contains ...
func (h *HaxMap) Contains(key string) bool {
	_, ok := h.m.Get(key)
	return ok
}

// Get ...
func (h *HaxMap) Get(key string) (string, bool) {
	return h.m.Get(key)
}

// Remove ...
func (h *HaxMap) Remove(key string) bool {
	if _, ok := h.m.Get(key); !ok {
		return false
	}
	h.m.Del(key)
	return true
}

// Count ...
func (h *HaxMap) Count() int {
	return int(h.m.Len())
}
