// Package storage persists the input journal: the seed and every
// player action, enough to reproduce a run byte for byte. The header
// is written raw so tools can sniff it; the record stream behind it
// is zstd-compressed.
package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"delve-server/internal/domain"
)

// Writer streams replay records to a journal file.
type Writer struct {
	f   *os.File
	enc *zstd.Encoder
}

// NewWriter creates the journal file and writes its header.
func NewWriter(path string, seed int64) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}

	hdr := domain.ReplayHeader{
		Version: domain.ReplayVersion,
		Seed:    seed,
		Created: time.Now().Unix(),
	}
	copy(hdr.Magic[:], domain.ReplayMagic)

	if err := binary.Write(f, binary.LittleEndian, &hdr); err != nil {
		f.Close()
		return nil, fmt.Errorf("write journal header: %w", err)
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("init compressor: %w", err)
	}
	return &Writer{f: f, enc: enc}, nil
}

// Append writes one record. Records are fixed-size, so the stream
// needs no per-record framing.
func (w *Writer) Append(rec domain.ReplayRecord) error {
	if err := binary.Write(w.enc, binary.LittleEndian, &rec); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

// Close flushes the compressed stream and the file.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("flush journal: %w", err)
	}
	return w.f.Close()
}
