package uid

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered int64 identifiers.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a generator with a random node number.
//
// A random node keeps independently started replicas from colliding without
// requiring coordinated configuration.
func NewSnowflake() (*Snowflake, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(int64(binary.BigEndian.Uint64(b[:]) % 1024))
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique int64 id.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
