package platform

import (
	"linked-list/internal/platform/helper"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type (
	Node[T any] struct {
		val  T
		next *Node[T]
	}

	// SinglyLinkedList is a LIFO chain of values with insertion and removal at the head.
	// The zero value is not usable, create it with NewSinglyLinkedList.
	SinglyLinkedList[T any] struct {
		head   *Node[T]
		length uint64
		id     uuid.UUID
	}

	StringList = SinglyLinkedList[string]
)

func NewSinglyLinkedList[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{
		head:   nil,
		length: 0,
		id:     uuid.New(),
	}
}

func NewStringList() *StringList {
	return NewSinglyLinkedList[string]()
}

func (l *SinglyLinkedList[T]) Len() uint64 {
	return l.length
}

// Unshift puts val in front of the current head and returns the new length.
func (l *SinglyLinkedList[T]) Unshift(val T) uint64 {
	l.head = &Node[T]{
		val:  val,
		next: l.head,
	}
	l.length++
	l.log().Tracef("unshift, length %d", l.length)
	return l.length
}

// Shift detaches the head and returns its value. ok is false when the list is empty.
func (l *SinglyLinkedList[T]) Shift() (val T, ok bool) {
	node := l.head
	if node == nil {
		l.log().Trace("shift on empty list")
		return val, false
	}

	l.head = node.next
	node.next = nil
	l.length--
	l.log().Tracef("shift, length %d", l.length)
	return node.val, true
}

func (l *SinglyLinkedList[T]) log() *logrus.Entry {
	return helper.Log.WithField("list", l.id)
}
