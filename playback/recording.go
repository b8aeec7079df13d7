// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package playback records and replays session frame streams. A
// [Recording] is a single JSON document holding descriptive metadata
// and the raw frames in capture order; [Player] replays one as an
// [ar.FrameSource], and [Synth] generates a synthetic stream for
// running without a device or recording.
package playback

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"time"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/base/errors"
	"github.com/go-xr/xr/base/iox/jsonx"
	"github.com/go-xr/xr/base/metadata"
	"github.com/google/uuid"
)

// ImageDBKey is the metadata key holding the path of the image
// database that the recording's image observations index into.
const ImageDBKey = "ImageDB"

// Recording is a recorded frame stream: descriptive metadata plus the
// raw frames in capture order. It serializes as one JSON document.
type Recording struct {

	// Meta holds the descriptive fields, using the standard
	// [metadata.Data] keys Name, ID, and Created, plus [ImageDBKey].
	Meta metadata.Data `json:"meta,omitempty"`

	// Frames are the recorded frames in capture order.
	Frames []Frame `json:"frames"`
}

// Frame is the wire form of one [ar.RawFrame]: the same fields, with
// the depth image carried separately as a [DepthFrame].
type Frame struct {
	ar.RawFrame

	// DepthFrame is the encoded depth image, or nil if the frame has
	// none.
	DepthFrame *DepthFrame `json:"depth_frame,omitempty"`
}

// DepthFrame is the wire form of a depth image: row-major 16-bit
// little-endian millimeter samples, base64-encoded in JSON, plus the
// optional 8-bit confidence plane.
type DepthFrame struct {

	// Width and Height are the depth image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Timestamp is the nanosecond timestamp of the depth image.
	Timestamp int64 `json:"timestamp,omitempty"`

	// Depth holds Width*Height little-endian uint16 millimeter values.
	Depth []byte `json:"depth"`

	// Confidence holds Width*Height confidence bytes, or is empty when
	// the source provides none.
	Confidence []byte `json:"confidence,omitempty"`
}

// NewRecording returns an empty recording stamped with the given name,
// a fresh ID, and the current time.
func NewRecording(name string) *Recording {
	r := &Recording{}
	r.Meta.SetName(name)
	r.Meta.SetID(uuid.NewString())
	r.Meta.SetCreated(time.Now())
	return r
}

// Name returns the recording's name, or "" if unset.
func (r *Recording) Name() string {
	return r.Meta.GetName()
}

// ID returns the recording's unique id, or [uuid.Nil] if unset or
// unparseable.
func (r *Recording) ID() uuid.UUID {
	id, err := uuid.Parse(r.Meta.GetID())
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Created returns the recording's creation time, or the zero time if
// unset.
func (r *Recording) Created() time.Time {
	return r.Meta.GetCreated()
}

// ImageDB returns the image database path the recording was captured
// against, or "" if none.
func (r *Recording) ImageDB() string {
	return errors.Ignore1(metadata.Get[string](r.Meta, ImageDBKey))
}

// SetImageDB records the image database path the recording was
// captured against.
func (r *Recording) SetImageDB(path string) {
	r.Meta.Set(ImageDBKey, path)
}

// Len returns the number of recorded frames.
func (r *Recording) Len() int {
	return len(r.Frames)
}

// Append encodes the raw frame and adds it to the recording.
func (r *Recording) Append(raw *ar.RawFrame) {
	r.Frames = append(r.Frames, encodeFrame(raw))
}

// Save writes the recording to the given file as an indented JSON
// document.
func (r *Recording) Save(filename string) error {
	return jsonx.SaveIndent(r, filename)
}

// Write writes the recording to the given writer as an indented JSON
// document.
func (r *Recording) Write(w io.Writer) error {
	return jsonx.WriteIndent(r, w)
}

// Load reads a recording saved by [Recording.Save].
func Load(filename string) (*Recording, error) {
	r := &Recording{}
	if err := jsonx.Open(r, filename); err != nil {
		return nil, err
	}
	return r, nil
}

// Open reads a recording from the given filesystem.
func Open(fsys fs.FS, filename string) (*Recording, error) {
	r := &Recording{}
	if err := jsonx.OpenFS(r, fsys, filename); err != nil {
		return nil, err
	}
	return r, nil
}

// Read reads a recording from the given reader.
func Read(reader io.Reader) (*Recording, error) {
	r := &Recording{}
	if err := jsonx.Read(r, reader); err != nil {
		return nil, err
	}
	return r, nil
}

// encodeFrame converts a raw frame to wire form. The trackable and
// point slices are shared, not copied.
func encodeFrame(raw *ar.RawFrame) Frame {
	f := Frame{RawFrame: *raw}
	f.RawFrame.Depth = nil
	f.DepthFrame = EncodeDepth(raw.Depth)
	return f
}

// Raw converts the wire frame back to a raw frame, decoding the depth
// image if present.
func (f *Frame) Raw() (*ar.RawFrame, error) {
	raw := f.RawFrame
	if f.DepthFrame != nil {
		di, err := f.DepthFrame.Decode()
		if err != nil {
			return nil, err
		}
		raw.Depth = di
	}
	return &raw, nil
}

// EncodeDepth converts a depth image to wire form. It returns nil for
// a nil or empty image.
func EncodeDepth(di *ar.DepthImage) *DepthFrame {
	if di == nil || di.Depth == nil {
		return nil
	}
	sz := di.Size()
	df := &DepthFrame{Width: sz.X, Height: sz.Y, Timestamp: di.Timestamp}
	df.Depth = make([]byte, 0, 2*sz.X*sz.Y)
	b := di.Depth.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			mm := di.Depth.Gray16At(x, y).Y
			df.Depth = append(df.Depth, byte(mm), byte(mm>>8))
		}
	}
	if di.Confidence != nil {
		df.Confidence = make([]byte, 0, sz.X*sz.Y)
		cb := di.Confidence.Bounds()
		for y := cb.Min.Y; y < cb.Max.Y; y++ {
			for x := cb.Min.X; x < cb.Max.X; x++ {
				df.Confidence = append(df.Confidence, di.Confidence.GrayAt(x, y).Y)
			}
		}
	}
	return df
}

// Decode converts the wire depth back to a depth image.
func (df *DepthFrame) Decode() (*ar.DepthImage, error) {
	n := df.Width * df.Height
	if df.Width <= 0 || df.Height <= 0 {
		return nil, fmt.Errorf("playback: invalid depth frame size %dx%d", df.Width, df.Height)
	}
	if len(df.Depth) != 2*n {
		return nil, fmt.Errorf("playback: depth frame has %d bytes, expected %d", len(df.Depth), 2*n)
	}
	if len(df.Confidence) != 0 && len(df.Confidence) != n {
		return nil, fmt.Errorf("playback: confidence plane has %d bytes, expected %d", len(df.Confidence), n)
	}
	di := &ar.DepthImage{Timestamp: df.Timestamp}
	di.Depth = image.NewGray16(image.Rect(0, 0, df.Width, df.Height))
	i := 0
	for y := 0; y < df.Height; y++ {
		for x := 0; x < df.Width; x++ {
			mm := uint16(df.Depth[i]) | uint16(df.Depth[i+1])<<8
			di.Depth.SetGray16(x, y, color.Gray16{Y: mm})
			i += 2
		}
	}
	if len(df.Confidence) != 0 {
		di.Confidence = image.NewGray(image.Rect(0, 0, df.Width, df.Height))
		i = 0
		for y := 0; y < df.Height; y++ {
			for x := 0; x < df.Width; x++ {
				di.Confidence.SetGray(x, y, color.Gray{Y: df.Confidence[i]})
				i++
			}
		}
	}
	return di, nil
}
