package sqlite

import (
	"database/sql"
	"sync"

	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/internal/fitness/store/drivers/sqlite/gen"
)

type connStore struct {
	conn *sql.Conn
	q    *gen.Queries

	once sync.Once
	err  error
}

func newConn(c *sql.Conn) *connStore {
	return &connStore{
		conn: c,
		q:    gen.New(c),
	}
}

// Close hands the connection back to the pool. Later calls are no-ops.
func (c *connStore) Close() error {
	c.once.Do(func() {
		c.err = c.conn.Close()
	})
	return c.err
}

func (c *connStore) Users() store.Users { return &usersRepo{q: c.q} }
func (c *connStore) Meals() store.Meals { return &mealsRepo{q: c.q} }
