package hashbench

type entry struct {
	next  *entry
	hash  uint64
	key   string
	value string
}

// freeList keeps removed entries for reuse by later inserts,
// so that insert/remove cycles do not allocate.
type freeList struct {
	head *entry
	size int
}

func (f *freeList) push(e *entry) {
	e.key = ""
	e.value = ""
	e.hash = 0
	e.next = f.head
	f.head = e
	f.size++
}

func (f *freeList) pop() *entry {
	e := f.head
	if e == nil {
		return &entry{}
	}
	f.head = e.next
	e.next = nil
	f.size--
	return e
}

func (f *freeList) length() int {
	return f.size
}
