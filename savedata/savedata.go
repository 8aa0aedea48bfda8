package savedata

// The savedata.bin cipher and integrity check.
//
// The file is obfuscated with a chunk-chaining byte cipher: 16-byte chunks,
// each byte offset against a byte of the previous chunk.  It's obfuscation,
// not security - there is no key.
// See <https://gist.github.com/Lincoln-LM/a12b747d8595f523607a7bae0b7936f0>

import (
	"bytes"
	"crypto/sha1"
)

// SAVEDATA_SIZE is the size (in bytes) of a savedata.bin file.  Always.
const SAVEDATA_SIZE = 0x34000

const (
	// size (in bytes) of one cipher chunk
	CHUNK_SIZE = 0x10
	// number of cipher chunks in a savedata.bin file
	CHUNK_COUNT = SAVEDATA_SIZE / CHUNK_SIZE
)

// The first 20 bytes hold a SHA-1 digest of everything after them.
const CHECKSUM_SIZE = 20

// Decrypt transforms savedata in place from its at-rest form to plaintext,
// then verifies the header checksum.
//
// Chunks have to be walked backwards: undoing chunk n reads chunk n-1, which
// must still be in its encrypted form for the subtraction to invert the
// matching step in Encrypt.
//
// On a checksum mismatch the buffer is NOT rolled back - the caller gets an
// IntegrityError and the best-effort plaintext.  The original editor behaves
// this way and it's the useful behaviour: a dumper can still show you what's
// in a file with a stale checksum.
func Decrypt(savedata []byte) error {
	if len(savedata) != SAVEDATA_SIZE {
		return SizeError{len(savedata)}
	}

	for chunk_idx := CHUNK_COUNT - 1; chunk_idx >= 1; chunk_idx -= 1 {
		// the chunk's offset in savedata.bin
		chunk_pos := chunk_idx * CHUNK_SIZE
		for i := 0; i < CHUNK_SIZE; i += 1 {
			index := chunk_pos + i
			offset := chunk_pos + ((chunk_idx+i)&0xF) - CHUNK_SIZE
			savedata[index] -= savedata[offset]
		}
	}

	sum := sha1.Sum(savedata[CHECKSUM_SIZE:])
	if !bytes.Equal(sum[:], savedata[:CHECKSUM_SIZE]) {
		e := IntegrityError{Computed: sum}
		copy(e.Stored[:], savedata[:CHECKSUM_SIZE])
		return e
	}

	return nil
}

// Encrypt is the exact inverse of Decrypt: stamp a fresh SHA-1 of the
// plaintext into the header, then run the chunk cipher forwards (ascending,
// additive).  Within a chunk the order doesn't matter - every offset lands in
// the previous chunk, which this pass has already finished with.
func Encrypt(savedata []byte) error {
	if len(savedata) != SAVEDATA_SIZE {
		return SizeError{len(savedata)}
	}

	sum := sha1.Sum(savedata[CHECKSUM_SIZE:])
	copy(savedata[:CHECKSUM_SIZE], sum[:])

	for chunk_idx := 1; chunk_idx < CHUNK_COUNT; chunk_idx += 1 {
		chunk_pos := chunk_idx * CHUNK_SIZE
		for i := 0; i < CHUNK_SIZE; i += 1 {
			index := chunk_pos + i
			offset := chunk_pos + ((chunk_idx+i)&0xF) - CHUNK_SIZE
			savedata[index] += savedata[offset]
		}
	}

	return nil
}
