// Package id mints the int64 identifiers for every persisted record: users,
// login sessions, practice sessions, kits and email drafts. Ids are
// snowflakes, so they sort by creation time, which history listings and the
// string-encoded JSON ids rely on.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets up the generator. Each running instance needs a distinct node id
// for ids to stay unique across replicas; a single-instance deployment uses 1.
// Only the first call takes effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns the next id. Init must have been called first.
func New() int64 {
	return node.Generate().Int64()
}
