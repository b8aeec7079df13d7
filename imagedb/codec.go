// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagedb

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"io"
	"io/fs"
	"os"

	"github.com/go-xr/xr/base/errors"
)

// File format: magic, uint16 version, uint32 count, then per entry a
// uvarint-prefixed name, float32 width in meters, uint32 width and
// height, and width*height gray pixels, followed by a CRC-32 (IEEE) of
// everything before it. Fixed-size values are little-endian.
var magic = [8]byte{'X', 'R', 'i', 'm', 'g', 'd', 'b', 0}

const fileVersion = 1

var (
	// ErrFormat is returned by [Read] for files that are not image
	// databases.
	ErrFormat = errors.New("imagedb: not an image database file")

	// ErrChecksum is returned by [Read] when the trailing CRC does not
	// match the contents.
	ErrChecksum = errors.New("imagedb: checksum mismatch")
)

// Save writes the database to the given file in the binary format.
func (db *Database) Save(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := db.Write(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the database to the given writer in the binary format.
func (db *Database) Write(w io.Writer) error {
	var b bytes.Buffer
	b.Write(magic[:])
	binary.Write(&b, binary.LittleEndian, uint16(fileVersion))
	binary.Write(&b, binary.LittleEndian, uint32(len(db.entries)))
	var vbuf [binary.MaxVarintLen64]byte
	for _, e := range db.entries {
		n := binary.PutUvarint(vbuf[:], uint64(len(e.Name)))
		b.Write(vbuf[:n])
		b.WriteString(e.Name)
		binary.Write(&b, binary.LittleEndian, e.WidthMeters)
		r := e.Gray.Bounds()
		binary.Write(&b, binary.LittleEndian, uint32(r.Dx()))
		binary.Write(&b, binary.LittleEndian, uint32(r.Dy()))
		for y := r.Min.Y; y < r.Max.Y; y++ {
			i := e.Gray.PixOffset(r.Min.X, y)
			b.Write(e.Gray.Pix[i : i+r.Dx()])
		}
	}
	binary.Write(&b, binary.LittleEndian, crc32.ChecksumIEEE(b.Bytes()))
	_, err := w.Write(b.Bytes())
	return err
}

// Load reads a database saved by [Database.Save].
func Load(filename string) (*Database, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(fp)
}

// OpenFS reads a database from the given filesystem.
func OpenFS(fsys fs.FS, filename string) (*Database, error) {
	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data))
}

// Read reads a database in the binary format, verifying the trailing
// checksum before decoding.
func Read(r io.Reader) (*Database, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < len(magic)+2+4+4 || !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, ErrFormat
	}
	body, tail := data[:len(data)-4], data[len(data)-4:]
	if crc32.ChecksumIEEE(body) != binary.LittleEndian.Uint32(tail) {
		return nil, ErrChecksum
	}

	br := bytes.NewReader(body[len(magic):])
	var version uint16
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != fileVersion {
		return nil, fmt.Errorf("imagedb: unsupported database version %d", version)
	}
	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	db := New()
	for i := uint32(0); i < count; i++ {
		e, err := readEntry(br)
		if err != nil {
			return nil, err
		}
		if _, ok := db.byName[e.Name]; ok {
			return nil, fmt.Errorf("imagedb: duplicate image name %q", e.Name)
		}
		db.byName[e.Name] = len(db.entries)
		db.entries = append(db.entries, e)
	}
	return db, nil
}

func readEntry(br *bytes.Reader) (*Entry, error) {
	nameLen, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, err
	}
	if nameLen > uint64(br.Len()) {
		return nil, io.ErrUnexpectedEOF
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(br, name); err != nil {
		return nil, err
	}
	e := &Entry{Name: string(name)}
	if err := binary.Read(br, binary.LittleEndian, &e.WidthMeters); err != nil {
		return nil, err
	}
	var w, h uint32
	if err := binary.Read(br, binary.LittleEndian, &w); err != nil {
		return nil, err
	}
	if err := binary.Read(br, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if uint64(w)*uint64(h) > uint64(br.Len()) {
		return nil, io.ErrUnexpectedEOF
	}
	e.Gray = image.NewGray(image.Rect(0, 0, int(w), int(h)))
	if _, err := io.ReadFull(br, e.Gray.Pix); err != nil {
		return nil, err
	}
	e.FullW, e.FullH = int(w), int(h)
	return e, nil
}
