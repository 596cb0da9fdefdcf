package harness

import (
	"errors"

	"github.com/msto63/strlist/pkg/strlist"
)

func checkAdd(opts []strlist.Option) error {
	const capacity, count = 75, 145
	l, err := create(capacity, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	for n := 0; n < count; n++ {
		l.Add(digits[n%10])
		if err := expectItem(l, n, digits[n%10]); err != nil {
			return err
		}
		wantCap := capacity
		if n >= capacity {
			wantCap = capacity * 2
		}
		if err := expectSize(l, n+1, wantCap); err != nil {
			return err
		}
	}
	return nil
}

func checkAddAll(opts []strlist.Option) error {
	l, err := create(5, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	l.AddAll("hello", "world")
	l.Add("my")
	l.AddAll("name", "is", "gcc")

	for i, want := range []string{"hello", "world", "my", "name", "is", "gcc"} {
		if err := expectItem(l, i, want); err != nil {
			return err
		}
	}
	return expectSize(l, 6, 10)
}

func checkAddArray(opts []strlist.Option) error {
	l, err := create(4, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	l.AddArray(len(digits), digits)
	l.AddArray(len(digits), digits)

	if err := expect(l.Len() == 20, "len=%d, want 20", l.Len()); err != nil {
		return err
	}
	for n := 0; n < l.Len(); n++ {
		if err := expectItem(l, n, digits[n%10]); err != nil {
			return err
		}
	}
	return nil
}

func checkAddList(opts []strlist.Option) error {
	l, err := create(4, opts)
	if err != nil {
		return err
	}
	defer l.Free()
	src, err := digitList(4, opts)
	if err != nil {
		return err
	}
	defer src.Free()

	l.AddList(src)
	l.AddList(src)

	if err := expect(l.Len() == 20, "len=%d, want 20", l.Len()); err != nil {
		return err
	}
	for n := 0; n < l.Len(); n++ {
		if err := expectItem(l, n, digits[n%10]); err != nil {
			return err
		}
	}
	return nil
}

func checkCopy(opts []strlist.Option) error {
	src, err := digitList(10, opts)
	if err != nil {
		return err
	}
	defer src.Free()

	dest := src.Copy()
	defer dest.Free()

	if err := expect(dest.Len() == src.Len(), "copy len=%d, want %d", dest.Len(), src.Len()); err != nil {
		return err
	}
	for i := 0; i < dest.Len(); i++ {
		if err := expectItem(dest, i, digits[i]); err != nil {
			return err
		}
	}
	return nil
}

func checkCreate(opts []strlist.Option) error {
	good, err := create(5, opts)
	if err != nil {
		return err
	}
	defer good.Free()
	if err := expectSize(good, 0, 5); err != nil {
		return err
	}

	bad, err := create(0, opts)
	return expect(bad == nil && errors.Is(err, strlist.ErrInvalidCapacity),
		"capacity 0 gave %v, %v", bad, err)
}

func checkEquals(opts []strlist.Option) error {
	a, err := digitList(10, opts)
	if err != nil {
		return err
	}
	defer a.Free()

	b := a.Copy()
	defer b.Free()
	if err := expect(strlist.Equal(a, b), "copy not equal"); err != nil {
		return err
	}

	b.Reverse()
	return expect(!strlist.Equal(a, b), "reversed copy still equal")
}

func checkExpand(opts []strlist.Option) error {
	l, err := create(5, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	if err := expectSize(l, 0, 5); err != nil {
		return err
	}
	l.Expand(2)
	return expectSize(l, 0, 7)
}

func checkGet(opts []strlist.Option) error {
	l, err := digitList(5, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	if err := expect(l.Len() == 10, "len=%d, want 10", l.Len()); err != nil {
		return err
	}
	for n := range digits {
		if err := expectItem(l, n, digits[n]); err != nil {
			return err
		}
	}
	return nil
}

func checkInsert(opts []strlist.Option) error {
	l, err := digitList(10, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	if err := expectSize(l, 10, 10); err != nil {
		return err
	}
	if err := l.Insert("new", 5); err != nil {
		return err
	}
	if err := expectSize(l, 11, 20); err != nil {
		return err
	}
	for n := 0; n < l.Len(); n++ {
		want := "new"
		switch {
		case n < 5:
			want = digits[n]
		case n > 5:
			want = digits[n-1]
		}
		if err := expectItem(l, n, want); err != nil {
			return err
		}
	}

	if err := l.Insert("bad", 13); !errors.Is(err, strlist.ErrIndexOutOfBounds) {
		return expect(false, "insert at 13 gave %v", err)
	}
	if err := expectSize(l, 11, 20); err != nil {
		return err
	}

	if err := l.Insert("end", 11); err != nil {
		return err
	}
	if err := expectSize(l, 12, 20); err != nil {
		return err
	}
	return expectItem(l, 11, "end")
}

func checkRange(opts []strlist.Option) error {
	src, err := digitList(10, opts)
	if err != nil {
		return err
	}
	defer src.Free()

	cases := []struct {
		start, end int
		want       []string
	}{
		{2, 8, digits[2:8]},
		{5, 2, nil},
		{5, 100, digits[5:]},
	}
	for _, c := range cases {
		dest := src.Range(c.start, c.end)
		ok := dest.Len() == len(c.want)
		for i := 0; ok && i < len(c.want); i++ {
			ok = expectItem(dest, i, c.want[i]) == nil
		}
		values := dest.Values()
		dest.Free()
		if !ok {
			return expect(false, "range(%d,%d) = %v, want %v", c.start, c.end, values, c.want)
		}
	}
	return nil
}

func checkRemove(opts []strlist.Option) error {
	l, err := digitList(10, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	for n := 0; n < 9; n++ {
		if err := l.Remove(0); err != nil {
			return err
		}
		if err := expect(l.Len() == 10-n-1, "len=%d, want %d", l.Len(), 10-n-1); err != nil {
			return err
		}
		if err := expectItem(l, 0, digits[n+1]); err != nil {
			return err
		}
	}
	return nil
}

func checkReverse(opts []strlist.Option) error {
	l, err := digitList(10, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	l.Reverse()
	for n := 0; n < l.Len(); n++ {
		if err := expectItem(l, n, digits[l.Len()-n-1]); err != nil {
			return err
		}
	}
	return nil
}

func checkSort(opts []strlist.Option) error {
	l, err := digitList(5, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	l.Shuffle()
	l.Sort()
	for n := 0; n < l.Len(); n++ {
		if err := expectItem(l, n, digits[n]); err != nil {
			return err
		}
	}
	return nil
}

func checkSet(opts []strlist.Option) error {
	l, err := digitList(10, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	for n := 0; n < l.Len(); n++ {
		if err := l.Set("0", n); err != nil {
			return err
		}
		if err := expectItem(l, n, "0"); err != nil {
			return err
		}
	}
	return nil
}

func checkShuffle(opts []strlist.Option) error {
	l, err := digitList(10, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	l.Shuffle()
	if err := expect(l.Len() == 10, "len=%d, want 10", l.Len()); err != nil {
		return err
	}
	for _, d := range digits {
		if err := expect(l.Contains(d), "shuffle lost %q", d); err != nil {
			return err
		}
	}
	return nil
}

func checkSwap(opts []strlist.Option) error {
	l, err := digitList(10, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	for _, pair := range [][2]int{{0, 100}, {100, 0}, {100, 100}} {
		if err := l.Swap(pair[0], pair[1]); !errors.Is(err, strlist.ErrIndexOutOfBounds) {
			return expect(false, "swap(%d,%d) gave %v", pair[0], pair[1], err)
		}
	}
	if err := l.Swap(0, 9); err != nil {
		return err
	}
	if err := expectItem(l, 0, digits[9]); err != nil {
		return err
	}
	return expectItem(l, 9, digits[0])
}

func checkTrim(opts []strlist.Option) error {
	l, err := digitList(7, opts)
	if err != nil {
		return err
	}
	defer l.Free()

	if err := expectSize(l, 10, 14); err != nil {
		return err
	}
	l.Trim()
	return expectSize(l, 10, 11)
}
