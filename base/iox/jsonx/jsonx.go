// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides convenient functions for opening and
// saving objects as JSON files.
package jsonx

import (
	"encoding/json"
	"io"
	"io/fs"

	"github.com/go-xr/xr/base/iox"
)

// Open reads the given object from the given JSON file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(json.NewDecoder))
}

// OpenFiles reads the given object from the given JSON files in order.
func OpenFiles(v any, filenames ...string) error {
	return iox.OpenFiles(v, filenames, iox.NewDecoderFunc(json.NewDecoder))
}

// OpenFS reads the given object from the given JSON file,
// from the given [fs.FS] filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(json.NewDecoder))
}

// Read reads the given object from the given reader as JSON.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(json.NewDecoder))
}

// ReadBytes reads the given object from the given JSON bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(json.NewDecoder))
}

// Save writes the given object to the given JSON file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(json.NewEncoder))
}

// SaveIndent writes the given object to the given JSON file
// with tab indentation.
func SaveIndent(v any, filename string) error {
	return iox.Save(v, filename, indentEncoderFunc)
}

// Write writes the given object to the given writer as JSON.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(json.NewEncoder))
}

// WriteIndent writes the given object to the given writer as JSON
// with tab indentation.
func WriteIndent(v any, writer io.Writer) error {
	return iox.Write(v, writer, indentEncoderFunc)
}

// WriteBytes writes the given object to JSON bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, iox.NewEncoderFunc(json.NewEncoder))
}

func indentEncoderFunc(w io.Writer) iox.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e
}
