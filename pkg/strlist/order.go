// File: order.go
// Title: List Ordering
// Description: In-place reverse, quicksort, Fisher-Yates shuffle and swap.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strlist

import "math/rand/v2"

// Reverse reverses the items in place
func (l *List) Reverse() {
	l.observer.Entered("Reverse", Fields{"size": l.Len()})
	if l.checkLive("Reverse") != nil {
		return
	}
	for i, j := 0, l.size-1; i < j; i, j = i+1, j-1 {
		l.observer.Message("Reverse", "reversing", Fields{"left": l.items[i], "right": l.items[j]})
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
	l.observer.Completed("Reverse", nil)
}

// Sort orders the items by byte-wise comparison using quicksort with a
// Lomuto partition around the last element. The sort is not stable and
// degrades to O(n²) on sorted or duplicate-heavy input.
func (l *List) Sort() {
	l.observer.Entered("Sort", Fields{"size": l.Len()})
	if l.checkLive("Sort") != nil {
		return
	}
	quicksort(l.items[:l.size], 0, l.size-1)
	l.observer.Completed("Sort", nil)
}

func quicksort(items []string, lo, hi int) {
	for lo < hi {
		p := partition(items, lo, hi)
		// Recurse on the smaller side, loop on the larger.
		if p-lo < hi-p {
			quicksort(items, lo, p-1)
			lo = p + 1
		} else {
			quicksort(items, p+1, hi)
			hi = p - 1
		}
	}
}

func partition(items []string, lo, hi int) int {
	pivot := items[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if items[j] < pivot {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[hi] = items[hi], items[i]
	return i
}

// Shuffle permutes the items uniformly at random with the Fisher-Yates
// algorithm, drawing from the source set by WithRand.
func (l *List) Shuffle() {
	l.observer.Entered("Shuffle", Fields{"size": l.Len()})
	if l.checkLive("Shuffle") != nil {
		return
	}
	for i := l.size - 1; i > 0; i-- {
		j := l.intN(i + 1)
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
	l.observer.Completed("Shuffle", nil)
}

func (l *List) intN(n int) int {
	if l.rng != nil {
		return l.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Swap exchanges the items at i and j. If either index is out of range
// nothing is swapped.
func (l *List) Swap(i, j int) error {
	l.observer.Entered("Swap", Fields{"i": i, "j": j})
	if err := l.checkLive("Swap"); err != nil {
		return err
	}
	for _, index := range [2]int{i, j} {
		if index < 0 || index >= l.size {
			err := indexError("Swap", index, l.size, l.size)
			l.observer.Failed("Swap", err)
			return err
		}
	}
	l.items[i], l.items[j] = l.items[j], l.items[i]
	l.observer.Completed("Swap", nil)
	return nil
}
