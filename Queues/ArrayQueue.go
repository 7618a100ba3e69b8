package Queues

// circArrQ is a circular buffer. head and tail wrap modulo len(content); sz is
// the live count, which tells an empty queue (sz==0) from a full one
// (sz==len(content)) when head==tail.
type circArrQ[T any] struct {
	sz, head, tail, limit uint
	content               []T
}

// MakeArrayQueue returns an unbounded queue that grows by 3/2 when full.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, initCap)}
}

// MakeBoundedQueue returns a queue that refuses Push once it holds limit items.
// limit==0 means unbounded.
func MakeBoundedQueue[T any](limit uint) ArrayQueue[T] {
	return &circArrQ[T]{limit: limit, content: make([]T, limit)}
}

func (this *circArrQ[T]) Empty() bool {
	return this.sz == 0
}

func (this *circArrQ[T]) Full() bool {
	return this.limit != 0 && this.sz == this.limit
}

// resize copies the live items to the front of a new buffer of newLen>=sz.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%newLen
}

func (this *circArrQ[T]) Shrink() {
	if this.limit == 0 {
		this.resize(this.sz | 1)
	}
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) error {
	if this.Full() {
		return &FullQueueError{this.limit}
	}
	if this.sz == uint(len(this.content)) {
		this.resize(max(this.sz*3/2, this.sz+1, 4))
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
	return nil
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

func (this *circArrQ[T]) Peek() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		return this.content[this.head], nil
	}
}
