// Package digests schedules the digest checkpoints of a changes trie.
//
// A changes trie records, for every block, which storage keys changed in that
// block. Answering "which blocks touched key K between A and B" by walking every
// block is linear in the range, so the trie is periodically rolled up into
// digests. A level 1 digest summarizes the last DigestInterval blocks, a level 2
// digest summarizes the last DigestInterval level 1 digests, and so on up to
// DigestLevels. A query then descends from the coarsest digest that covers the
// range and only visits the blocks (or lower digests) that actually mention K.
//
// This package is only the arithmetic: it decides whether a digest is due at a
// block, at which level, and which top level range covers a block. It does no
// I/O and keeps no state.
//
// # Shape of the schedule
//
// With DigestInterval 4 and DigestLevels 2, counting from zero = 0,
//
//	level 2                                                  16
//	                                         /----------------|
//	level 1          4           8          12               16
//	             /---|       /---|       /---|            /---|
//	blocks    1 2 3  4    5 6 7  8   9 10 11 12   13 14 15  16   17 ...
//
// Block 4 builds a level 1 digest over blocks 1..4 (step 1, interval 4). Block
// 16 builds a level 2 digest (step 4, interval 16) over the level 1 digests at
// 4, 8, 12 and 16. The top level span, MaxDigestInterval, is 16, so the top
// level ranges are [1, 16], [17, 32], ...
//
// A block that is a multiple of several intervals always reports the highest
// level it qualifies for. With interval 8 and 4 levels, block 4096 is level 4
// even though it is also a multiple of 8, 64 and 512, and block 4112 falls back
// to level 1.
//
// # Genesis offset
//
// Every query takes a zero block. All of the arithmetic is relative to it, not
// to the intrinsic zero of the number type, because the trie may have been
// enabled part way through the life of a chain. Block zero itself never builds
// a digest as there is nothing before it to summarize.
//
// # Overflow
//
// DigestInterval^DigestLevels may not fit in a uint32. Rather than fail, the
// top level span is clamped to the largest power of DigestInterval that does
// fit, which silently reduces the number of levels. See
// [Config.EffectiveDigestLevels]. Range ends that would run past the top of the
// block number type saturate at its maximum.
//
// # Block numbers
//
// The queries are generic over [Number], so the same schedule works for chains
// that count blocks in 32 or 64 bits. Go methods can not carry type
// parameters, so the queries are package functions taking the [Config], and
// [Schedule] binds a config and zero block for callers that ask repeatedly.
package digests
