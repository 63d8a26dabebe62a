package costbasis

// lot is the unconsumed part of a past buy.
type lot struct {
	Quantity Quantity // remaining quantity, always positive while the lot is open
	Cost     Money    // unit cost, the price paid for one unit
}

// lotCollection is an ordered collection of open lots of a single security.
// The implementation decides which lot is consumed first.
type lotCollection interface {
	push(l lot)
	// next returns the lot to be consumed by the next sell, or nil if empty.
	next() *lot
	// drop removes the lot returned by next.
	drop()
	// total returns the sum of the remaining quantities.
	total() Quantity
	// all returns the open lots in acquisition order.
	all() []lot
}

// lotStack consumes the most recently acquired lot first (LIFO).
type lotStack []lot

func (s *lotStack) push(l lot) { *s = append(*s, l) }

func (s *lotStack) next() *lot {
	if len(*s) == 0 {
		return nil
	}
	return &(*s)[len(*s)-1]
}

func (s *lotStack) drop() { *s = (*s)[:len(*s)-1] }

func (s *lotStack) total() Quantity { return sumLots(*s) }

func (s *lotStack) all() []lot { return *s }

// lotQueue consumes the oldest lot first (FIFO).
type lotQueue struct {
	lots []lot
}

func (q *lotQueue) push(l lot) { q.lots = append(q.lots, l) }

func (q *lotQueue) next() *lot {
	if len(q.lots) == 0 {
		return nil
	}
	return &q.lots[0]
}

func (q *lotQueue) drop() {
	q.lots[0] = lot{}
	q.lots = q.lots[1:]
	if len(q.lots) == 0 {
		// release the backing array once fully consumed
		q.lots = nil
	}
}

func (q *lotQueue) total() Quantity { return sumLots(q.lots) }

func (q *lotQueue) all() []lot { return q.lots }

func sumLots(lots []lot) Quantity {
	var total Quantity
	for _, l := range lots {
		total = total.Add(l.Quantity)
	}
	return total
}

// costOf returns the total cost basis of the lots.
func costOf(lots []lot) Money {
	var total Money
	for _, l := range lots {
		total = total.Add(l.Cost.Mul(l.Quantity))
	}
	return total
}
