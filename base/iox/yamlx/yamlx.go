// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides convenient functions for opening and
// saving objects as YAML files.
package yamlx

import (
	"io"
	"io/fs"

	"github.com/go-xr/xr/base/iox"
	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given YAML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, decoderFunc)
}

// OpenFiles reads the given object from the given YAML files in order.
func OpenFiles(v any, filenames ...string) error {
	return iox.OpenFiles(v, filenames, decoderFunc)
}

// OpenFS reads the given object from the given YAML file,
// from the given [fs.FS] filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, decoderFunc)
}

// Read reads the given object from the given reader as YAML.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, decoderFunc)
}

// ReadBytes reads the given object from the given YAML bytes.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, decoderFunc)
}

// Save writes the given object to the given YAML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, encoderFunc)
}

// Write writes the given object to the given writer as YAML.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, encoderFunc)
}

// WriteBytes writes the given object to YAML bytes.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, encoderFunc)
}

func decoderFunc(r io.Reader) iox.Decoder {
	return yaml.NewDecoder(r)
}

// encoder closes the yaml encoder after each document, which flushes
// the internal emitter buffer; without the close, small documents
// never reach the writer.
type encoder struct {
	enc *yaml.Encoder
}

func (e *encoder) Encode(v any) error {
	if err := e.enc.Encode(v); err != nil {
		return err
	}
	return e.enc.Close()
}

func encoderFunc(w io.Writer) iox.Encoder {
	return &encoder{enc: yaml.NewEncoder(w)}
}
