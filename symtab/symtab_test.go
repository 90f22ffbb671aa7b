package symtab

import (
	"fmt"
	"testing"

	"github.com/nalgeon/be"
)

func TestHash(t *testing.T) {
	be.Equal(t, Hash(""), uint8(0))
	be.Equal(t, Hash("x"), uint8(0x70))
	be.Equal(t, Hash("a"), uint8(0xb2))
	be.Equal(t, Hash("abc"), uint8(0xec))
	be.Equal(t, Hash("count"), uint8(0xa6))
}

func TestNewTable(t *testing.T) {
	st := NewTable()
	be.Equal(t, st.Len(), 0)
	be.Equal(t, st.BucketCount(), 1)
	be.True(t, st.Find("x") == nil)
}

func TestAddAndFind(t *testing.T) {
	st := NewTable()

	x := st.Add("x")
	be.Equal(t, x.Name, "x")
	be.Equal(t, x.DeclState, DeclUnknown)
	be.True(t, !x.Declared())

	be.True(t, st.Find("x") == x)
	be.True(t, st.Find("y") == nil)
	be.Equal(t, st.Len(), 1)
}

func TestIntern(t *testing.T) {
	st := NewTable()

	a := st.Intern("a")
	b := st.Intern("a")
	be.True(t, a == b)
	be.Equal(t, st.Len(), 1)
}

func TestRehashChainOrder(t *testing.T) {
	st := NewTable()

	for _, name := range []string{"x", "y", "z"} {
		st.Add(name)
	}
	be.Equal(t, st.BucketCount(), 1)
	be.Equal(t, st.Bucket(0), []string{"z", "y", "x"})

	// the fourth insert crosses the load factor threshold
	st.Add("a")
	be.Equal(t, st.BucketCount(), 2)
	be.Equal(t, st.Bucket(0), []string{"a", "x", "y", "z"})
	be.Equal(t, len(st.Bucket(1)), 0)

	st.Add("b")
	st.Add("i")
	be.Equal(t, st.BucketCount(), 4)
	be.Equal(t, st.Bucket(0), []string{"z", "y", "x", "b"})
	be.Equal(t, st.Bucket(2), []string{"i", "a"})

	st.Add("abc")
	be.Equal(t, st.Bucket(0), []string{"abc", "z", "y", "x", "b"})
}

func TestRehashPreservesIdentity(t *testing.T) {
	st := NewTable()

	syms := make(map[string]*Symbol)
	for i := 0; i < 500; i++ {
		name := fmt.Sprintf("v%d", i)
		sym := st.Add(name)
		sym.Value = int64(i)
		syms[name] = sym
	}

	be.Equal(t, st.Len(), 500)
	be.Equal(t, st.BucketCount(), MaxBuckets)

	for name, sym := range syms {
		found := st.Find(name)
		be.True(t, found == sym)
		be.Equal(t, found.Name, name)
	}

	be.Equal(t, len(st.Symbols()), 500)
}

func TestStats(t *testing.T) {
	st := NewTable()
	for _, name := range []string{"x", "y", "z", "a", "b", "i", "abc"} {
		st.Add(name)
	}

	stats := st.Stats()
	be.Equal(t, stats.Buckets, 4)
	be.Equal(t, stats.Symbols, 7)
	be.Equal(t, stats.EmptyBuckets, 2)
	be.Equal(t, stats.LongestChain, 5)
}
