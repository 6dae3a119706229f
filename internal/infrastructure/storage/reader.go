package storage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"delve-server/internal/domain"
)

var (
	// ErrBadMagic: the file is not a journal.
	ErrBadMagic = errors.New("not a replay journal")
	// ErrBadVersion: the journal was written by an incompatible build.
	ErrBadVersion = errors.New("unsupported journal version")
)

// Read loads a whole journal: header plus every record.
func Read(path string) (domain.ReplayHeader, []domain.ReplayRecord, error) {
	var hdr domain.ReplayHeader

	f, err := os.Open(path)
	if err != nil {
		return hdr, nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	if err := binary.Read(f, binary.LittleEndian, &hdr); err != nil {
		return hdr, nil, fmt.Errorf("read journal header: %w", err)
	}
	if !bytes.Equal(hdr.Magic[:], []byte(domain.ReplayMagic)) {
		return hdr, nil, ErrBadMagic
	}
	if hdr.Version != domain.ReplayVersion {
		return hdr, nil, fmt.Errorf("%w: %d", ErrBadVersion, hdr.Version)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return hdr, nil, fmt.Errorf("init decompressor: %w", err)
	}
	defer dec.Close()

	var records []domain.ReplayRecord
	for {
		var rec domain.ReplayRecord
		err := binary.Read(dec, binary.LittleEndian, &rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return hdr, nil, fmt.Errorf("read record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	return hdr, records, nil
}
