// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides convenient functions for opening and
// saving objects as TOML files.
package tomlx

import (
	"io"
	"io/fs"

	"github.com/go-xr/xr/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, decoderFunc)
}

// OpenFiles reads the given object from the given TOML files in order,
// so that later files override settings from earlier ones.
func OpenFiles(v any, filenames ...string) error {
	return iox.OpenFiles(v, filenames, decoderFunc)
}

// OpenFS reads the given object from the given TOML file,
// from the given [fs.FS] filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, decoderFunc)
}

// Read reads the given object from the given reader as TOML.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, decoderFunc)
}

// ReadBytes reads the given object from the given TOML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, decoderFunc)
}

// Save writes the given object to the given TOML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, encoderFunc)
}

// Write writes the given object to the given writer as TOML.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, encoderFunc)
}

// WriteBytes writes the given object to TOML bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, encoderFunc)
}

func decoderFunc(r io.Reader) iox.Decoder {
	return toml.NewDecoder(r)
}

func encoderFunc(w io.Writer) iox.Encoder {
	return toml.NewEncoder(w)
}
