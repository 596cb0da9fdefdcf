// File: doc.go
// Title: strlist Package Documentation
// Description: Package documentation for strlist.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial documentation

/*
Package strlist provides List, a growable list of strings with explicit
capacity management.

A List tracks its capacity separately from its length. Capacity only
changes in three ways: an insertion into a full list doubles it, Expand
grows it by a given amount, and Trim sets it to Len()+1.

	list, err := strlist.New(4)
	if err != nil {
		return err
	}
	list.AddAll("pear", "apple", "fig")
	list.Sort()
	list.Print(os.Stdout) // ["apple"]["fig"]["pear"]

Index arguments are checked. Get, Set, Remove and Swap accept [0, Len());
Insert accepts [0, Len()]. A rejected call returns an error matching
ErrIndexOutOfBounds and leaves the list unchanged:

	if err := list.Insert("kiwi", 10); errors.Is(err, strlist.ErrIndexOutOfBounds) {
		// list is as before
	}

# Ordering

Sort is a quicksort using a Lomuto partition with the last element as
pivot. It compares bytes, is not stable and is quadratic on sorted or
duplicate-heavy input. Shuffle is a Fisher-Yates shuffle; pass WithRand
for a reproducible order.

# Observers

Every operation reports entry, completion, messages and failures to an
Observer. The default NopObserver drops them; LogObserver writes them
through pkg/core/log with a correlation id per list:

	obs := strlist.NewLogObserver(logger, strlist.AllEvents)
	list, _ := strlist.New(8, strlist.WithObserver(obs))

Observers never change results.

# Lifetime

Free drops the items and marks the list released. Later operations
report an error matching ErrListReleased or do nothing. Calling Free is
optional since the garbage collector reclaims unreferenced lists.
*/
package strlist
