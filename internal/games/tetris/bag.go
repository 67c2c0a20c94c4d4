package tetris

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Bag is the 7-bag randomizer: it deals shuffled permutations of all seven
// pieces back to back, so no piece is ever more than 12 draws from its
// previous appearance.
type Bag struct {
	src       Shuffler
	queue     []PieceType
	lookahead int
}

// NewBag creates a bag that keeps at least lookahead pieces queued.
func NewBag(src Shuffler, lookahead int) *Bag {
	b := &Bag{lookahead: max(lookahead, 1)}
	b.Reset(src)
	return b
}

// Reset discards the queue and starts over from a new random source.
func (b *Bag) Reset(src Shuffler) {
	b.src = src
	b.queue = b.queue[:0]
	b.fill(b.lookahead)
}

// Next removes and returns the earliest queued piece.
func (b *Bag) Next() PieceType {
	b.fill(b.lookahead + 1)
	t := b.queue[0]
	b.queue = b.queue[1:]
	b.fill(b.lookahead)
	return t
}

// Peek returns the next n pieces without consuming them.
func (b *Bag) Peek(n int) []PieceType {
	if n <= 0 {
		return nil
	}
	b.fill(n)
	out := make([]PieceType, n)
	copy(out, b.queue)
	return out
}

// Len returns how many pieces are currently queued.
func (b *Bag) Len() int {
	return len(b.queue)
}

// fill appends shuffled bags until at least n pieces are queued.
func (b *Bag) fill(n int) {
	for len(b.queue) < n {
		bag := AllPieces
		b.src.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		b.queue = append(b.queue, bag[:]...)
	}
}
