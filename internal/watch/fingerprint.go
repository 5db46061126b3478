package watch

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

const fingerprintTail = 2048

// Fingerprint identifies the current content of a log file by its size and a
// CRC32 of its last 2KB. Appends and rewrites change it; touches and chmods do not.
func Fingerprint(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", err
	}

	size := stat.Size()
	readSize := int64(fingerprintTail)
	if size < readSize {
		readSize = size
	}

	if _, err := file.Seek(-readSize, io.SeekEnd); err != nil {
		return "", err
	}

	data := make([]byte, readSize)
	if _, err := io.ReadFull(file, data); err != nil {
		return "", err
	}

	return fmt.Sprintf("%d-%08x", size, crc32.ChecksumIEEE(data)), nil
}
