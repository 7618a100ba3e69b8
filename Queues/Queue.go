package Queues

// Queue is a FIFO container. Queues used by tree traversals hold borrowed
// references to nodes; a queue never owns what it holds.
type Queue[T any] interface {
	//Push item to the back. Fails with *FullQueueError on a bounded queue
	//that is full; the item is not stored in that case.
	Push(item T) error
	//Pop the front item. Fails with *EmptyQueueError when empty.
	Pop() (T, error)
	//Peek at the front item without removing it. Fails with *EmptyQueueError when empty.
	Peek() (T, error)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	//Full is always false for an unbounded queue.
	Full() bool
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

type FullQueueError struct {
	Limit uint
}

func (e *FullQueueError) Error() string {
	return "Queue is Full: cannot Push."
}
