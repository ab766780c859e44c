// Package workload generates key streams and operation mixes for exercising
// ordered containers. Generators are seeded so a run can be replayed exactly.
package workload

import "math/rand"

// Kind is the operation type in a generated stream.
type Kind uint8

const (
	KindInsert Kind = iota
	KindSearch
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindSearch:
		return "search"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Op is one operation against a container.
type Op struct {
	Kind Kind
	Key  int
}

// Generator yields keys in [0, n) following some distribution.
type Generator interface {
	Next() int
}

// Uniform draws every key with equal probability.
type Uniform struct {
	n   int
	rng *rand.Rand
}

func NewUniform(n int, seed int64) *Uniform {
	if n < 1 {
		n = 1
	}
	return &Uniform{n: n, rng: rand.New(rand.NewSource(seed))}
}

func (u *Uniform) Next() int {
	return u.rng.Intn(u.n)
}

// Zipf draws keys with the heavy skew typical of hot-key workloads: key 0 is
// the most frequent, frequency decaying by rank.
type Zipf struct {
	zipf *rand.Zipf
}

// NewZipf builds a Zipf generator over [0, n) with skew s > 1 and offset v >= 1.
func NewZipf(n int, s, v float64, seed int64) *Zipf {
	if n < 1 {
		n = 1
	}
	if s <= 1 {
		s = 1.07
	}
	if v < 1 {
		v = 1
	}
	rng := rand.New(rand.NewSource(seed))
	return &Zipf{zipf: rand.NewZipf(rng, s, v, uint64(n-1))}
}

func (z *Zipf) Next() int {
	return int(z.zipf.Uint64())
}

// Ascending yields 0, 1, 2, ... wrapping at n. It is the adversarial case for
// structures that favor recently touched regions.
type Ascending struct {
	n    int
	next int
}

func NewAscending(n int) *Ascending {
	if n < 1 {
		n = 1
	}
	return &Ascending{n: n}
}

func (a *Ascending) Next() int {
	k := a.next
	a.next++
	if a.next == a.n {
		a.next = 0
	}
	return k
}

// Mix turns a key generator into an operation stream with the given insert
// and delete percentages; the remainder are searches.
type Mix struct {
	gen       Generator
	rng       *rand.Rand
	insertPct int
	deletePct int
}

func NewMix(gen Generator, seed int64, insertPct, deletePct int) *Mix {
	if insertPct < 0 {
		insertPct = 0
	}
	if deletePct < 0 {
		deletePct = 0
	}
	if insertPct+deletePct > 100 {
		// Scale both back proportionally rather than fail.
		total := insertPct + deletePct
		insertPct = insertPct * 100 / total
		deletePct = 100 - insertPct
	}
	return &Mix{
		gen:       gen,
		rng:       rand.New(rand.NewSource(seed)),
		insertPct: insertPct,
		deletePct: deletePct,
	}
}

// Next produces the next operation in the stream.
func (m *Mix) Next() Op {
	op := Op{Key: m.gen.Next()}
	switch r := m.rng.Intn(100); {
	case r < m.insertPct:
		op.Kind = KindInsert
	case r < m.insertPct+m.deletePct:
		op.Kind = KindDelete
	default:
		op.Kind = KindSearch
	}
	return op
}

// Ops produces the next k operations.
func (m *Mix) Ops(k int) []Op {
	ops := make([]Op, k)
	for i := range ops {
		ops[i] = m.Next()
	}
	return ops
}
