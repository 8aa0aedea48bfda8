package savedata

import "fmt"

// SizeError means the input wasn't a savedata.bin at all - the file has
// exactly one valid length and we check it before touching a single byte.
type SizeError struct {
	Size int
}

func (e SizeError) Error() string {
	return fmt.Sprintf("savedata is %v bytes; expected exactly %v", e.Size, SAVEDATA_SIZE)
}

// IntegrityError means decryption "worked" but the SHA-1 in the header
// doesn't match the decrypted contents.  The buffer is left in its decrypted
// form anyway - see Decrypt.
type IntegrityError struct {
	Stored   [20]byte
	Computed [20]byte
}

func (e IntegrityError) Error() string {
	return fmt.Sprintf("checksum mismatch: file says %x, contents say %x", e.Stored, e.Computed)
}

// FormatError means the pii box itself is malformed - a record ran off the
// end of the buffer, the record count is impossible, or the fixed trailing
// byte of a record wasn't 0.
type FormatError struct {
	Record int // 0-based record index, or -1 if the problem isn't per-record
	Reason string
}

func (e FormatError) Error() string {
	if e.Record < 0 {
		return "bad pii box: " + e.Reason
	}
	return fmt.Sprintf("bad pii record %v: %v", e.Record, e.Reason)
}
