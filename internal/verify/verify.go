package verify

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// Verifier checks written output files against the size and checksum the
// source archive recorded for the member they were copied from.
type Verifier struct {
	crcVerify bool
}

// New creates a Verifier. When crcVerify is false only sizes are compared.
func New(crcVerify bool) *Verifier {
	return &Verifier{crcVerify: crcVerify}
}

// Verify compares the file at path against the expected uncompressed size
// and CRC-32 from the zip member header. The checksum pass is skipped
// unless the verifier was created with crcVerify.
func (v *Verifier) Verify(path string, expectedSize int64, expectedCRC uint32) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("output file not found: %w", err)
	}

	if info.Size() != expectedSize {
		return fmt.Errorf("size mismatch: expected %d, got %d", expectedSize, info.Size())
	}

	if !v.crcVerify {
		return nil
	}

	sum, err := checksumFile(path)
	if err != nil {
		return fmt.Errorf("failed to checksum output: %w", err)
	}

	if sum != expectedCRC {
		return fmt.Errorf("crc mismatch: expected %08x, got %08x", expectedCRC, sum)
	}

	return nil
}

func checksumFile(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}

	return h.Sum32(), nil
}
