package testfilter

import (
	"hash/fnv"
	"os"
	"strconv"
	"sync"
)

// Environment variables configuring test sharding, following the
// contract test runners use to split a suite across processes.
const (
	// TotalShardsEnv holds the total number of shards.
	TotalShardsEnv = "GTEST_TOTAL_SHARDS"
	// ShardIndexEnv holds this process's zero-based shard index.
	ShardIndexEnv = "GTEST_SHARD_INDEX"
	// ShardStatusFileEnv names a file to create as acknowledgement
	// that sharding is supported.
	ShardStatusFileEnv = "GTEST_SHARD_STATUS_FILE"
)

// Shard is one slice of a sharded test run. Tests are assigned to
// shards by hashing their names, so the assignment is stable across
// processes without any coordination.
type Shard struct {
	total uint64
	index uint64
}

// NewShard creates a shard with the given geometry. A configuration
// that cannot be honored (zero shards, index out of range) collapses
// to the single shard that runs everything.
func NewShard(total, index uint64) Shard {
	if total == 0 || index >= total {
		return Shard{total: 1, index: 0}
	}
	return Shard{total: total, index: index}
}

// Contains reports whether the named test belongs to this shard.
func (s Shard) Contains(name string) bool {
	if s.total <= 1 {
		return true
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()%s.total == s.index
}

var envShard = sync.OnceValue(func() Shard {
	if statusFile := os.Getenv(ShardStatusFileEnv); statusFile != "" {
		// The runner watches for this file to confirm the process
		// honors sharding. Creation failure is not fatal; the runner
		// then assumes an unsharded binary and runs every test here.
		if f, err := os.Create(statusFile); err == nil {
			f.Close()
		}
	}

	total, err := strconv.ParseUint(os.Getenv(TotalShardsEnv), 10, 64)
	if err != nil {
		return NewShard(1, 0)
	}
	index, err := strconv.ParseUint(os.Getenv(ShardIndexEnv), 10, 64)
	if err != nil {
		return NewShard(1, 0)
	}
	return NewShard(total, index)
})
