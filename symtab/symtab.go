// Package symtab implements the symbol table shared by every stage of the
// compiler and by the interpreter, which uses symbols as its global memory.
package symtab

import (
	"yog/report"
)

// Symbol is a single named variable.  Symbols are owned by the table that
// created them: everything else holds a reference to them.  A symbol is never
// copied or freed while its table is alive.
type Symbol struct {
	Name string

	// DeclState is the declaration state of the symbol.  It must be one of the
	// enumerated declaration states.
	DeclState int

	// DeclSite is the position of the first declaration of the symbol.  It is
	// nil until the symbol is declared.
	DeclSite *report.TextPosition

	// Value is the runtime value of the variable.
	Value int64

	// next is the next symbol in the bucket chain.
	next *Symbol
}

// Enumeration of declaration states.
const (
	DeclUnknown = iota // Used but never declared.
	DeclInteger        // Declared as `int`.
)

// Declared returns whether the symbol has been declared.
func (s *Symbol) Declared() bool {
	return s.DeclState != DeclUnknown
}

// -----------------------------------------------------------------------------

const (
	// LoadThreshold is the load factor above which the table doubles its
	// number of buckets.
	LoadThreshold = 2.0

	// MaxBuckets is the maximum number of buckets.  The hash is 8 bits wide so
	// a larger table would leave buckets unaddressed.
	MaxBuckets = 256
)

// Table is a hash table of symbols with singly-linked bucket chains.  The
// number of buckets is always a power of two and new symbols are inserted at
// the head of their chain.
type Table struct {
	buckets []*Symbol
	count   int
}

// NewTable creates a new symbol table with a single bucket.
func NewTable() *Table {
	return &Table{buckets: make([]*Symbol, 1)}
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return t.count
}

// BucketCount returns the current number of buckets.
func (t *Table) BucketCount() int {
	return len(t.buckets)
}

// bucketIndex computes the index of the bucket a name belongs to.
func (t *Table) bucketIndex(name string) int {
	return int(Hash(name)) & (len(t.buckets) - 1)
}

// Find looks up a symbol by name.  It returns nil if no symbol exists.
func (t *Table) Find(name string) *Symbol {
	for sym := t.buckets[t.bucketIndex(name)]; sym != nil; sym = sym.next {
		if sym.Name == name {
			return sym
		}
	}

	return nil
}

// Add inserts a new, undeclared symbol.  The caller is responsible for making
// sure no symbol of the same name already exists.
func (t *Table) Add(name string) *Symbol {
	if float64(t.count)/float64(len(t.buckets)) > LoadThreshold && len(t.buckets) < MaxBuckets {
		t.rehash()
	}

	sym := &Symbol{Name: name, DeclState: DeclUnknown}

	ndx := t.bucketIndex(name)
	sym.next = t.buckets[ndx]
	t.buckets[ndx] = sym

	t.count++
	return sym
}

// Intern returns the symbol of the given name, adding it if necessary.
func (t *Table) Intern(name string) *Symbol {
	if sym := t.Find(name); sym != nil {
		return sym
	}

	return t.Add(name)
}

// rehash doubles the number of buckets and relinks every symbol into its new
// bucket.  Symbols are moved, not copied, so references to them stay valid.
func (t *Table) rehash() {
	newBuckets := make([]*Symbol, len(t.buckets)*2)
	mask := len(newBuckets) - 1

	for _, head := range t.buckets {
		for sym := head; sym != nil; {
			next := sym.next

			ndx := int(Hash(sym.Name)) & mask
			sym.next = newBuckets[ndx]
			newBuckets[ndx] = sym

			sym = next
		}
	}

	t.buckets = newBuckets
}

// -----------------------------------------------------------------------------

// Symbols returns every symbol in bucket order.  Within a bucket, the most
// recently inserted symbol comes first.
func (t *Table) Symbols() []*Symbol {
	syms := make([]*Symbol, 0, t.count)
	for _, head := range t.buckets {
		for sym := head; sym != nil; sym = sym.next {
			syms = append(syms, sym)
		}
	}

	return syms
}

// Bucket returns the names in the chain of the nth bucket, head first.
func (t *Table) Bucket(n int) []string {
	var names []string
	for sym := t.buckets[n]; sym != nil; sym = sym.next {
		names = append(names, sym.Name)
	}

	return names
}

// Stats summarizes the shape of the table.
type Stats struct {
	Buckets, Symbols, EmptyBuckets, LongestChain int
}

// Stats computes the current statistics of the table.
func (t *Table) Stats() Stats {
	st := Stats{Buckets: len(t.buckets), Symbols: t.count}
	for _, head := range t.buckets {
		chainLen := 0
		for sym := head; sym != nil; sym = sym.next {
			chainLen++
		}

		if chainLen == 0 {
			st.EmptyBuckets++
		} else if chainLen > st.LongestChain {
			st.LongestChain = chainLen
		}
	}

	return st
}
