package maps

import (
	"fmt"

	"github.com/amp-labs/sortedvec/errors"
)

// guard tracks outstanding borrows of a Map. Entries and drains hold the
// exclusive borrow while iterators hold shared ones. Every public operation
// declares whether it reads or writes.
type guard struct {
	readers   int
	exclusive bool
}

func (g *guard) read(op string) {
	if g.exclusive {
		panic(fmt.Errorf("%w: %s while an entry or drain is open", errors.ErrAliasedAccess, op))
	}
}

func (g *guard) write(op string) {
	g.read(op)

	if g.readers > 0 {
		panic(fmt.Errorf("%w: %s while %d iterator(s) are open", errors.ErrAliasedAccess, op, g.readers))
	}
}

func (g *guard) share(op string) {
	g.read(op)
	g.readers++
}

func (g *guard) unshare() {
	g.readers--
}

func (g *guard) lock(op string) {
	g.write(op)
	g.exclusive = true
}

func (g *guard) unlock() {
	g.exclusive = false
}

// withLock runs f under the exclusive borrow, so callbacks handed to the map
// cannot re-enter it. The borrow is released even if f panics.
func (g *guard) withLock(op string, f func()) {
	g.lock(op)
	defer g.unlock()

	f()
}
