package hashbench

// GoMapLabel is the report label of GoMap
const GoMapLabel = "map[string]string"

// GoMap is the baseline Table over the built-in map.
type GoMap struct {
	m map[string]string
}

var _ Table = &GoMap{}

// NewGoMap ...
func NewGoMap() *GoMap {
	return &GoMap{m: map[string]string{}}
}

// Insert ...
func (g *GoMap) Insert(key string, value string) bool {
	if len(key) == 0 {
		return false
	}
	if _, ok := g.m[key]; ok {
		return false
	}
	g.m[key] = value
	return true
}

// Contains ...
func (g *GoMap) Contains(key string) bool {
	_, ok := g.m[key]
	return ok
}

// Get ...
func (g *GoMap) Get(key string) (string, bool) {
	v, ok := g.m[key]
	return v, ok
}

// Remove ...
func (g *GoMap) Remove(key string) bool {
	if _, ok := g.m[key]; !ok {
		return false
	}
	delete(g.m, key)
	return true
}

// Count ...
func (g *GoMap) Count() int {
	return len(g.m)
}
