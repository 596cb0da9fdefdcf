// File: list.go
// Title: Growable String List
// Description: Implements List, an owned and bounds-checked sequence of
//              strings whose capacity doubles when an insertion finds it
//              full.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strlist

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

// List is a growable list of strings. The zero value is not usable; build
// lists with New or FromSlice. A nil *List reads as empty: Len, Cap,
// Released, Contains, IndexOf, Values, Equal, String, Print, Range, Copy
// and Free accept it. A List is not safe for concurrent use.
type List struct {
	// items has length equal to the capacity; [0,size) are live
	items    []string
	size     int
	rng      *rand.Rand
	observer Observer
	released bool
}

// Option configures a List at construction
type Option func(*List)

// WithRand sets the random source used by Shuffle. The default is the
// runtime-seeded global generator.
func WithRand(r *rand.Rand) Option {
	return func(l *List) {
		l.rng = r
	}
}

// WithObserver attaches an observer for operation events
func WithObserver(o Observer) Option {
	return func(l *List) {
		if o != nil {
			l.observer = o
		}
	}
}

// New creates an empty list with room for capacity items. It returns an
// error matching ErrInvalidCapacity when capacity is not positive.
func New(capacity int, opts ...Option) (*List, error) {
	l := newList(opts)
	l.observer.Entered("New", Fields{"capacity": capacity})

	if capacity <= 0 {
		err := capacityError(capacity)
		l.observer.Failed("New", err)
		return nil, err
	}

	l.items = make([]string, capacity)
	l.observer.Completed("New", Fields{"capacity": capacity})
	return l, nil
}

// FromSlice creates a list holding the first n items. The capacity is
// max(n, 1); n is clamped to len(items).
func FromSlice(n int, items []string, opts ...Option) *List {
	n = clampCount(n, len(items))

	l := newList(opts)
	l.observer.Entered("FromSlice", Fields{"n": n})
	l.items = make([]string, max(n, 1))
	copy(l.items, items[:n])
	l.size = n
	l.observer.Completed("FromSlice", Fields{"n": n})
	return l
}

func newList(opts []Option) *List {
	l := &List{observer: NopObserver{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func clampCount(n, limit int) int {
	if n < 0 {
		return 0
	}
	return min(n, limit)
}

// Len returns the number of items
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Cap returns the number of items the list holds before it must grow
func (l *List) Cap() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Released reports whether Free has been called
func (l *List) Released() bool {
	return l != nil && l.released
}

// checkLive reports and returns an error when the list has been freed
func (l *List) checkLive(op string) error {
	if !l.released {
		return nil
	}
	err := releasedError(op)
	l.observer.Failed(op, err)
	return err
}

// grow enlarges the backing storage by amount slots
func (l *List) grow(op string, amount int) {
	l.observer.Message(op, "expanding buffer", Fields{"from": len(l.items), "to": len(l.items) + amount})
	items := make([]string, len(l.items)+amount)
	copy(items, l.items[:l.size])
	l.items = items
}

// Expand grows the capacity by amount. Non-positive amounts are ignored.
func (l *List) Expand(amount int) {
	l.observer.Entered("Expand", Fields{"amount": amount})
	if l.checkLive("Expand") != nil {
		return
	}
	if amount > 0 {
		l.grow("Expand", amount)
	}
	l.observer.Completed("Expand", Fields{"capacity": len(l.items)})
}

// Trim shrinks the capacity to Len()+1
func (l *List) Trim() {
	l.observer.Entered("Trim", nil)
	if l.checkLive("Trim") != nil {
		return
	}
	l.observer.Message("Trim", "trimming buffer", Fields{"from": len(l.items), "to": l.size + 1})
	items := make([]string, l.size+1)
	copy(items, l.items[:l.size])
	l.items = items
	l.observer.Completed("Trim", Fields{"capacity": len(l.items)})
}

// Add appends item, doubling the capacity first when the list is full
func (l *List) Add(item string) {
	l.observer.Entered("Add", Fields{"item": item})
	if l.checkLive("Add") != nil {
		return
	}
	l.add("Add", item)
	l.observer.Message("Add", "added", Fields{"item": item})
	l.observer.Completed("Add", Fields{"size": l.size})
}

func (l *List) add(op, item string) {
	if l.size == len(l.items) {
		l.grow(op, len(l.items))
	}
	l.items[l.size] = item
	l.size++
}

// AddAll appends items in order
func (l *List) AddAll(items ...string) {
	l.observer.Entered("AddAll", Fields{"count": len(items)})
	if l.checkLive("AddAll") != nil {
		return
	}
	for _, item := range items {
		l.Add(item)
	}
	l.observer.Completed("AddAll", Fields{"size": l.size})
}

// AddArray appends the first n items in order; n is clamped to len(items)
func (l *List) AddArray(n int, items []string) {
	n = clampCount(n, len(items))
	l.observer.Entered("AddArray", Fields{"n": n})
	if l.checkLive("AddArray") != nil {
		return
	}
	for _, item := range items[:n] {
		l.Add(item)
	}
	l.observer.Completed("AddArray", Fields{"size": l.size})
}

// AddList appends every item of src. The count is taken on entry, so
// l.AddList(l) appends the list to itself once.
func (l *List) AddList(src *List) {
	count := src.Len()
	l.observer.Entered("AddList", Fields{"count": count})
	if l.checkLive("AddList") != nil {
		return
	}
	for i := 0; i < count; i++ {
		l.Add(src.items[i])
	}
	l.observer.Completed("AddList", Fields{"size": l.size})
}

// Insert places item at index, shifting later items up. Valid indices
// are [0, Len()]; inserting at Len() appends.
func (l *List) Insert(item string, index int) error {
	l.observer.Entered("Insert", Fields{"item": item, "index": index})
	if err := l.checkLive("Insert"); err != nil {
		return err
	}
	if index < 0 || index > l.size {
		err := indexError("Insert", index, l.size, l.size+1)
		l.observer.Failed("Insert", err)
		return err
	}

	if l.size == len(l.items) {
		l.grow("Insert", len(l.items))
	}
	copy(l.items[index+1:l.size+1], l.items[index:l.size])
	l.items[index] = item
	l.size++

	l.observer.Completed("Insert", Fields{"size": l.size})
	return nil
}

// Get returns the item at index. Out-of-range indices return "" and an
// error matching ErrIndexOutOfBounds.
func (l *List) Get(index int) (string, error) {
	l.observer.Entered("Get", Fields{"index": index})
	if err := l.checkLive("Get"); err != nil {
		return "", err
	}
	if index < 0 || index >= l.size {
		err := indexError("Get", index, l.size, l.size)
		l.observer.Failed("Get", err)
		return "", err
	}

	l.observer.Message("Get", "retrieved", Fields{"index": index, "item": l.items[index]})
	l.observer.Completed("Get", nil)
	return l.items[index], nil
}

// Set replaces the item at index
func (l *List) Set(item string, index int) error {
	l.observer.Entered("Set", Fields{"item": item, "index": index})
	if err := l.checkLive("Set"); err != nil {
		return err
	}
	if index < 0 || index >= l.size {
		err := indexError("Set", index, l.size, l.size)
		l.observer.Failed("Set", err)
		return err
	}

	l.items[index] = item
	l.observer.Completed("Set", nil)
	return nil
}

// Remove deletes the item at index, shifting later items down. The
// capacity is unchanged.
func (l *List) Remove(index int) error {
	l.observer.Entered("Remove", Fields{"index": index})
	if err := l.checkLive("Remove"); err != nil {
		return err
	}
	if index < 0 || index >= l.size {
		err := indexError("Remove", index, l.size, l.size)
		l.observer.Failed("Remove", err)
		return err
	}

	l.observer.Message("Remove", "removing", Fields{"index": index, "item": l.items[index]})
	l.removeAt(index)
	l.observer.Completed("Remove", Fields{"size": l.size})
	return nil
}

func (l *List) removeAt(index int) {
	copy(l.items[index:l.size-1], l.items[index+1:l.size])
	l.size--
	l.items[l.size] = ""
}

// RemoveAllMatches deletes every item equal to value, keeping the order
// of the rest, and returns how many were removed.
func (l *List) RemoveAllMatches(value string) int {
	l.observer.Entered("RemoveAllMatches", Fields{"value": value})
	if l.checkLive("RemoveAllMatches") != nil {
		return 0
	}

	removed := 0
	for i := 0; i < l.size; {
		if l.items[i] == value {
			l.removeAt(i)
			removed++
			continue
		}
		i++
	}

	l.observer.Completed("RemoveAllMatches", Fields{"removed": removed, "size": l.size})
	return removed
}

// Clear removes every item. The capacity is unchanged.
func (l *List) Clear() {
	l.observer.Entered("Clear", Fields{"size": l.Len()})
	if l.checkLive("Clear") != nil {
		return
	}
	for l.size > 0 {
		l.removeAt(0)
	}
	l.observer.Completed("Clear", nil)
}

// Contains reports whether any item equals value
func (l *List) Contains(value string) bool {
	return l.IndexOf(value) >= 0
}

// IndexOf returns the index of the first item equal to value, or -1
func (l *List) IndexOf(value string) int {
	if l == nil || l.released {
		return -1
	}
	for i := 0; i < l.size; i++ {
		if l.items[i] == value {
			return i
		}
	}
	return -1
}

// Values returns a copy of the items
func (l *List) Values() []string {
	if l == nil || l.released {
		return nil
	}
	out := make([]string, l.size)
	copy(out, l.items[:l.size])
	return out
}

// Equal reports whether l and other hold the same items in the same
// order. Capacity is not compared.
func (l *List) Equal(other *List) bool {
	return Equal(l, other)
}

// Equal reports whether a and b hold the same items in the same order.
// A nil list equals only nil.
func Equal(a, b *List) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.items[i] != b.items[i] {
			return false
		}
	}
	return true
}

// Range returns a new list with the items in [start, end) that exist in
// l. An empty intersection yields an empty list with capacity 1.
func (l *List) Range(start, end int) *List {
	if l == nil {
		return emptyList()
	}
	l.observer.Entered("Range", Fields{"start": start, "end": end})

	if start < 0 {
		start = 0
	}
	end = min(end, l.Len())
	count := max(end-start, 0)

	sub := &List{
		items:    make([]string, max(count, 1)),
		rng:      l.rng,
		observer: derive(l.observer),
	}
	if count > 0 {
		copy(sub.items, l.items[start:end])
		sub.size = count
	}

	l.observer.Completed("Range", Fields{"count": count})
	return sub
}

// Copy returns an independent list with the same capacity and items
func (l *List) Copy() *List {
	if l == nil {
		return emptyList()
	}
	l.observer.Entered("Copy", nil)

	dup := &List{
		items:    make([]string, max(len(l.items), 1)),
		size:     l.size,
		rng:      l.rng,
		observer: derive(l.observer),
	}
	copy(dup.items, l.items[:l.size])

	l.observer.Completed("Copy", Fields{"size": dup.size})
	return dup
}

func emptyList() *List {
	l := newList(nil)
	l.items = make([]string, 1)
	return l
}

// Free releases the items and backing storage. Later calls are no-ops
// and the list reports length and capacity 0.
func (l *List) Free() {
	if l == nil || l.released {
		return
	}
	l.observer.Entered("Free", Fields{"size": l.size})
	for i := 0; i < l.size; i++ {
		l.observer.Message("Free", "freeing", Fields{"index": i, "item": l.items[i]})
	}
	l.items = nil
	l.size = 0
	l.released = true
	l.observer.Completed("Free", nil)
}

// String renders the items as ["a"]["b"]...
func (l *List) String() string {
	var b strings.Builder
	for i := 0; i < l.Len(); i++ {
		fmt.Fprintf(&b, "[\"%s\"]", l.items[i])
	}
	return b.String()
}

// Print writes String followed by a newline to w
func (l *List) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, l.String())
	return err
}
