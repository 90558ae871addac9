package inmemreg

import (
	"sync"

	"github.com/trezcool/eduplatform/core/user"
)

// Registry is the in-memory roster. Accounts are held by reference so the
// instance registered here is the one notification delivery appends to.
// The mutex serializes roster access for callers running it from multiple
// goroutines; the account state itself is not guarded here.
type Registry struct {
	mutex sync.RWMutex
	table map[int]user.Account
	order []int // registration order
}

var _ user.Registry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{table: make(map[int]user.Account)}
}

func (reg *Registry) Add(acct user.Account) error {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	id := acct.Base().ID
	if _, ok := reg.table[id]; ok {
		return user.ErrDuplicateID
	}
	reg.table[id] = acct
	reg.order = append(reg.order, id)
	return nil
}

func (reg *Registry) Remove(id int) int {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	if _, ok := reg.table[id]; !ok {
		return 0
	}
	delete(reg.table, id)

	order := reg.order[:0]
	for _, oid := range reg.order {
		if oid != id {
			order = append(order, oid)
		}
	}
	reg.order = order
	return 1
}

func (reg *Registry) Get(id int) (user.Account, error) {
	reg.mutex.RLock()
	defer reg.mutex.RUnlock()

	if acct, ok := reg.table[id]; ok {
		return acct, nil
	}
	return nil, user.ErrNotFound
}

func (reg *Registry) All() []user.Account {
	reg.mutex.RLock()
	defer reg.mutex.RUnlock()

	accts := make([]user.Account, 0, len(reg.order))
	for _, id := range reg.order {
		accts = append(accts, reg.table[id])
	}
	return accts
}

func (reg *Registry) Len() int {
	reg.mutex.RLock()
	defer reg.mutex.RUnlock()
	return len(reg.table)
}
