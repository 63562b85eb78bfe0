package ldb

import "github.com/syndtr/goleveldb/leveldb/opt"

// The cache sizes fit a store of small stub records rather than full blocks.
const (
	blockCacheCapacity = 8 * opt.MiB
	writeBufferSize    = 4 * opt.MiB
)

var (
	defaultOptions = opt.Options{
		Compression:            opt.NoCompression,
		BlockCacheCapacity:     blockCacheCapacity,
		WriteBuffer:            writeBufferSize,
		DisableSeeksCompaction: true,
	}

	// Options is a function that returns a leveldb
	// opt.Options struct for opening a database.
	// It's defined as a variable for the sake of testing.
	Options = func() *opt.Options {
		return &defaultOptions
	}
)
