package savedata

import (
	"crypto/sha1"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// make_plaintext builds a random decrypted buffer with a valid checksum
// prefix.  Deterministic seed so failures are reproducible.
func make_plaintext(seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, SAVEDATA_SIZE)
	rng.Read(buf)

	sum := sha1.Sum(buf[CHECKSUM_SIZE:])
	copy(buf[:CHECKSUM_SIZE], sum[:])

	return buf
}

func Test_EncryptDecryptRoundTrip(t *testing.T) {
	plaintext := make_plaintext(1)

	buf := append([]byte{}, plaintext...)
	require.NoError(t, Encrypt(buf))
	require.NotEqual(t, plaintext, buf, "encryption should actually change the buffer")

	require.NoError(t, Decrypt(buf))
	require.Equal(t, plaintext, buf)
}

func Test_DecryptEncryptRoundTrip(t *testing.T) {
	ciphertext := make_plaintext(2)
	require.NoError(t, Encrypt(ciphertext))

	buf := append([]byte{}, ciphertext...)
	require.NoError(t, Decrypt(buf))
	require.NoError(t, Encrypt(buf))
	require.Equal(t, ciphertext, buf)
}

func Test_EncryptStampsFreshChecksum(t *testing.T) {
	// Garbage in the checksum field doesn't matter - Encrypt recomputes it.
	buf := make_plaintext(3)
	for i := 0; i < CHECKSUM_SIZE; i += 1 {
		buf[i] = 0xEE
	}

	require.NoError(t, Encrypt(buf))
	require.NoError(t, Decrypt(buf))

	sum := sha1.Sum(buf[CHECKSUM_SIZE:])
	require.Equal(t, sum[:], buf[:CHECKSUM_SIZE])
}

func Test_DecryptDetectsCorruption(t *testing.T) {
	buf := make_plaintext(4)
	require.NoError(t, Encrypt(buf))
	ciphertext := append([]byte{}, buf...)

	buf[0x20000] += 1

	err := Decrypt(buf)
	require.Error(t, err)
	require.IsType(t, IntegrityError{}, err)

	ie := err.(IntegrityError)
	require.NotEqual(t, ie.Stored, ie.Computed)

	// No rollback: the caller still gets the (shuffled) plaintext.
	require.NotEqual(t, ciphertext, buf)
}

func Test_SizeErrorBeforeAnythingElse(t *testing.T) {
	for _, size := range []int{0, 100, SAVEDATA_SIZE - 1, SAVEDATA_SIZE + 1} {
		buf := make([]byte, size)
		for i := range buf {
			buf[i] = 0x5A
		}
		before := append([]byte{}, buf...)

		err := Decrypt(buf)
		require.IsType(t, SizeError{}, err)
		require.Equal(t, before, buf, "size %v: buffer must not be touched", size)

		err = Encrypt(buf)
		require.IsType(t, SizeError{}, err)
		require.Equal(t, before, buf, "size %v: buffer must not be touched", size)
	}
}
