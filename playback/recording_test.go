// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playback

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/glm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRawFrame builds a frame exercising every wire field.
func testRawFrame(ts int64, withDepth bool) *ar.RawFrame {
	s := glm.Sqrt(2) / 2
	raw := &ar.RawFrame{
		Timestamp:      ts,
		CameraPose:     [7]float32{0, s, 0, s, 1.25, 1.5, -2.75},
		Intrinsics:     ar.Intrinsics{Fx: 500, Fy: 501, Cx: 320.5, Cy: 240.25, Width: 640, Height: 480},
		CameraTracking: ar.Tracking,
		Trackables: []ar.Observation{
			{
				ID:        1,
				Kind:      ar.KindPlane,
				State:     ar.Tracking,
				Pose:      [7]float32{0, 0, 0, 1, 0, -1.001, 0},
				ExtentX:   2.5,
				ExtentZ:   1.75,
				Polygon:   []glm.Vector2{{X: -1.25, Y: -0.875}, {X: 1.25, Y: -0.875}, {X: 0, Y: 0.875}},
				PlaneType: ar.HorizontalUpward,
			},
			{
				ID:          7,
				Kind:        ar.KindAugmentedImage,
				State:       ar.Paused,
				Pose:        ar.PoseIdentity().Raw(),
				ImageIndex:  2,
				ImageName:   "earth",
				ImageMethod: ar.ImageLastKnownPose,
			},
		},
		Removed: []int64{9},
		PointCloud: ar.PointCloud{
			Timestamp: ts,
			Points:    []glm.Vector4{{X: 0.1, Y: 0.2, Z: -0.3, W: 0.75}},
			IDs:       []int32{42},
		},
		Light:   &ar.LightEstimate{State: ar.LightEstimateValid, PixelIntensity: 0.42, ColorCorrection: [4]float32{1, 0.9, 0.8, 0.42}},
		Display: ar.DisplayGeometry{Rotation: ar.Rotation90, Width: 480, Height: 640},
	}
	if withDepth {
		g := image.NewGray16(image.Rect(0, 0, 3, 2))
		g.SetGray16(0, 0, color.Gray16{Y: 1500})
		g.SetGray16(2, 1, color.Gray16{Y: 64000})
		c := image.NewGray(image.Rect(0, 0, 3, 2))
		c.SetGray(2, 1, color.Gray{Y: 51})
		raw.Depth = &ar.DepthImage{Depth: g, Confidence: c, Timestamp: ts}
	}
	return raw
}

func TestRecordingRoundTrip(t *testing.T) {
	rec := NewRecording("office sweep")
	rec.SetImageDB("images.imgdb")
	rec.Append(testRawFrame(0, false))
	rec.Append(testRawFrame(33_333_333, true))

	fn := filepath.Join(t.TempDir(), "office.json")
	require.NoError(t, rec.Save(fn))

	got, err := Load(fn)
	require.NoError(t, err)

	assert.Equal(t, "office sweep", got.Name())
	assert.NotEqual(t, uuid.Nil, got.ID())
	assert.Equal(t, rec.ID(), got.ID())
	assert.Equal(t, "images.imgdb", got.ImageDB())
	assert.True(t, got.Created().Equal(rec.Created()))

	require.Equal(t, 2, got.Len())
	assert.Equal(t, rec.Frames[0].RawFrame, got.Frames[0].RawFrame)
	assert.Nil(t, got.Frames[0].DepthFrame)

	df := got.Frames[1].DepthFrame
	require.NotNil(t, df)
	di, err := df.Decode()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 2), di.Size())
	assert.Equal(t, float32(1.5), di.DepthAt(0, 0))
	assert.Equal(t, uint16(64000), di.Depth.Gray16At(2, 1).Y)
	assert.Equal(t, float32(0.2), di.ConfidenceAt(2, 1))

	want, err := rec.Frames[1].Raw()
	require.NoError(t, err)
	gotRaw, err := got.Frames[1].Raw()
	require.NoError(t, err)
	assert.Equal(t, want, gotRaw)
}

func TestRecordingWriteRead(t *testing.T) {
	rec := NewRecording("buffered")
	rec.Append(testRawFrame(12, false))

	var b bytes.Buffer
	require.NoError(t, rec.Write(&b))
	got, err := Read(&b)
	require.NoError(t, err)
	assert.Equal(t, rec.Frames, got.Frames)
	assert.Equal(t, "buffered", got.Name())
}

func TestRecordingOpenFS(t *testing.T) {
	rec := NewRecording("embedded")
	rec.Append(testRawFrame(7, true))
	var b bytes.Buffer
	require.NoError(t, rec.Write(&b))

	fsys := fstest.MapFS{"rec/embedded.json": &fstest.MapFile{Data: b.Bytes()}}
	got, err := Open(fsys, "rec/embedded.json")
	require.NoError(t, err)
	assert.Equal(t, rec.Frames, got.Frames)

	_, err = Open(fsys, "rec/missing.json")
	assert.Error(t, err)
}

func TestDepthFrameErrors(t *testing.T) {
	assert.Nil(t, EncodeDepth(nil))
	assert.Nil(t, EncodeDepth(&ar.DepthImage{}))

	df := &DepthFrame{Width: 2, Height: 2, Depth: make([]byte, 7)}
	_, err := df.Decode()
	assert.Error(t, err)

	df = &DepthFrame{Width: 0, Height: 2}
	_, err = df.Decode()
	assert.Error(t, err)

	df = &DepthFrame{Width: 1, Height: 1, Depth: []byte{0, 1}, Confidence: []byte{1, 2}}
	_, err = df.Decode()
	assert.Error(t, err)
}

func TestSynthRecordReplay(t *testing.T) {
	ctx := context.Background()
	s := NewSynth()
	s.NumFrames = 10
	s.WithDepth = true
	s.DepthSize = image.Pt(8, 6)

	rec := NewRecording("synthetic")
	var want []*ar.RawFrame
	for {
		raw, err := s.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rec.Append(raw)
		want = append(want, raw)
	}
	require.Equal(t, 10, rec.Len())

	var b bytes.Buffer
	require.NoError(t, rec.Write(&b))
	got, err := Read(&b)
	require.NoError(t, err)

	p := &Player{Recording: got}
	for i, w := range want {
		raw, err := p.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, w.Timestamp, raw.Timestamp, "frame %d", i)
		assert.Equal(t, w.CameraPose, raw.CameraPose, "frame %d", i)
		assert.Equal(t, w.Trackables, raw.Trackables, "frame %d", i)
		assert.Equal(t, w.PointCloud, raw.PointCloud, "frame %d", i)
		require.NotNil(t, raw.Depth, "frame %d", i)
		assert.Equal(t, w.Depth.Depth.Pix, raw.Depth.Depth.Pix, "frame %d", i)
	}
	_, err = p.Next(ctx)
	assert.Equal(t, io.EOF, err)
}
