// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playback

import (
	"context"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/base/randx"
	"github.com/go-xr/xr/glm"
)

// Synth generates a synthetic frame stream: a camera orbiting the
// origin over a growing ground plane, with deterministic feature
// points, an optional depth image, and an optional scripted augmented
// image. It implements [ar.FrameSource] so examples and tests can run
// without a device or recording. Frames are returned as fast as they
// are pulled; wrap a recording in a [Player] for wall-clock pacing.
type Synth struct {

	// NumFrames is the total number of frames before [io.EOF].
	NumFrames int

	// FPS sets the synthetic timestamp spacing.
	FPS int

	// Radius and Height place the orbiting camera, which circles the
	// origin at Radius meters out and Height meters up, facing the
	// origin, completing one orbit every Period frames.
	Radius float32
	Height float32
	Period int

	// PlaneAfter is the frame number at which the ground plane is
	// first observed, or -1 for no plane.
	PlaneAfter int

	// PlaneExtent is the full extent in meters the ground plane grows
	// to over the first two seconds after it appears.
	PlaneExtent float32

	// NumPoints is the number of feature points scattered on the
	// ground.
	NumPoints int

	// Seed seeds the feature point noise. Equal seeds give identical
	// streams.
	Seed int64

	// WithDepth adds a synthetic ground-plane depth image of DepthSize
	// to every frame.
	WithDepth bool

	// DepthSize is the depth image size in pixels.
	DepthSize image.Point

	// Image optionally scripts an augmented image lifecycle. The zero
	// value disables it.
	Image SynthImage

	// Intrinsics is the camera model stamped on every frame.
	Intrinsics ar.Intrinsics

	// Display is the display geometry stamped on every frame.
	Display ar.DisplayGeometry

	frame  int
	rnd    randx.Rand
	points []glm.Vector4
	ids    []int32
}

// SynthImage scripts one augmented image's lifecycle by frame number.
// Each threshold is inclusive; zero means never.
type SynthImage struct {

	// Index and Name identify the database image being detected.
	Index int32
	Name  string

	// AppearAt is the frame the image is first detected, without a
	// usable pose. TrackAt is when full tracking begins, PauseAt when
	// tracking degrades to the last known pose, and StopAt when the
	// image is dropped.
	AppearAt int
	TrackAt  int
	PauseAt  int
	StopAt   int

	// Pose is the image center pose once tracked.
	Pose ar.Pose

	// ExtentX and ExtentZ are the physical image extents in meters.
	ExtentX float32
	ExtentZ float32
}

// NewSynth returns a synth with the standard scene: a ten second orbit
// of radius 3 at height 1.5, a ground plane appearing after one second
// and growing to 4 meters, and 200 feature points.
func NewSynth() *Synth {
	return &Synth{
		NumFrames:   300,
		FPS:         30,
		Radius:      3,
		Height:      1.5,
		Period:      300,
		PlaneAfter:  30,
		PlaneExtent: 4,
		NumPoints:   200,
		Seed:        42,
		DepthSize:   image.Pt(160, 120),
		Intrinsics:  ar.Intrinsics{Fx: 500, Fy: 500, Cx: 320, Cy: 240, Width: 640, Height: 480},
		Display:     ar.DisplayGeometry{Width: 640, Height: 480},
	}
}

// Next returns the next synthetic frame, or [io.EOF] after NumFrames.
func (s *Synth) Next(ctx context.Context) (*ar.RawFrame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.frame >= s.NumFrames {
		return nil, io.EOF
	}
	if s.rnd == nil {
		s.init()
	}
	n := s.frame
	s.frame++

	pose := s.CameraPose(n)
	light := ar.DefaultLightEstimate()
	raw := &ar.RawFrame{
		Timestamp:      s.timestamp(n),
		CameraPose:     pose.Raw(),
		Intrinsics:     s.Intrinsics,
		CameraTracking: ar.Tracking,
		Light:          &light,
		Display:        s.Display,
	}
	if s.PlaneAfter >= 0 && n >= s.PlaneAfter {
		raw.Trackables = append(raw.Trackables, s.planeObservation(n))
		raw.PointCloud = ar.PointCloud{Timestamp: raw.Timestamp, Points: s.points, IDs: s.ids}
	}
	if ob, ok := s.imageObservation(n); ok {
		raw.Trackables = append(raw.Trackables, ob)
	}
	if s.WithDepth {
		raw.Depth = s.depthImage(pose, raw.Timestamp)
	}
	return raw, nil
}

// Close implements [ar.FrameSource].
func (s *Synth) Close() error {
	return nil
}

// CameraPose returns the orbit camera pose at the given frame: on the
// orbit circle, facing the origin.
func (s *Synth) CameraPose(n int) ar.Pose {
	period := s.Period
	if period <= 0 {
		period = 1
	}
	theta := 2 * glm.Pi * float32(n%period) / float32(period)
	pos := glm.Vec3(s.Radius*glm.Sin(theta), s.Height, s.Radius*glm.Cos(theta))
	m := glm.Identity4()
	m.SetLookAt(pos, glm.Vec3(0, 0, 0), glm.Vec3(0, 1, 0))
	var q glm.Quat
	q.SetFromRotationMatrix(&m)
	return ar.NewPose(pos, q)
}

func (s *Synth) timestamp(n int) int64 {
	fps := s.FPS
	if fps <= 0 {
		fps = 30
	}
	return int64(n) * int64(time.Second) / int64(fps)
}

// init seeds the noise source and scatters the feature points on the
// ground.
func (s *Synth) init() {
	s.rnd = randx.NewSysRand(s.Seed)
	half := float64(s.PlaneExtent) / 2
	for i := 0; i < s.NumPoints; i++ {
		x := randx.UniformRange(-half, half, s.rnd)
		z := randx.UniformRange(-half, half, s.rnd)
		y := randx.Gauss(0, 0.005, s.rnd)
		conf := randx.UniformRange(0.5, 1, s.rnd)
		s.points = append(s.points, glm.Vector4{X: float32(x), Y: float32(y), Z: float32(z), W: float32(conf)})
		s.ids = append(s.ids, int32(len(s.ids)+1))
	}
}

// planeObservation reports the ground plane, growing linearly from
// nothing to PlaneExtent over the first two seconds.
func (s *Synth) planeObservation(n int) ar.Observation {
	fps := s.FPS
	if fps <= 0 {
		fps = 30
	}
	grow := float32(n-s.PlaneAfter+1) / float32(2*fps)
	if grow > 1 {
		grow = 1
	}
	ext := s.PlaneExtent * grow
	half := ext / 2
	return ar.Observation{
		ID:        1,
		Kind:      ar.KindPlane,
		State:     ar.Tracking,
		Pose:      ar.PoseIdentity().Raw(),
		ExtentX:   ext,
		ExtentZ:   ext,
		PlaneType: ar.HorizontalUpward,
		Polygon: []glm.Vector2{
			{X: -half, Y: -half},
			{X: half, Y: -half},
			{X: half, Y: half},
			{X: -half, Y: half},
		},
	}
}

// imageObservation reports the scripted augmented image's state at the
// given frame, if the script has one.
func (s *Synth) imageObservation(n int) (ar.Observation, bool) {
	img := s.Image
	if img.AppearAt <= 0 || n < img.AppearAt {
		return ar.Observation{}, false
	}
	ob := ar.Observation{
		ID:         int64(1000) + int64(img.Index),
		Kind:       ar.KindAugmentedImage,
		Pose:       img.Pose.Raw(),
		ExtentX:    img.ExtentX,
		ExtentZ:    img.ExtentZ,
		ImageIndex: img.Index,
		ImageName:  img.Name,
	}
	switch {
	case img.StopAt > 0 && n >= img.StopAt:
		// one stop event, then silence
		if n > img.StopAt {
			return ar.Observation{}, false
		}
		ob.State = ar.Stopped
		ob.ImageMethod = ar.ImageNotTracking
	case img.PauseAt > 0 && n >= img.PauseAt:
		ob.State = ar.Paused
		ob.ImageMethod = ar.ImageLastKnownPose
	case img.TrackAt > 0 && n >= img.TrackAt:
		ob.State = ar.Tracking
		ob.ImageMethod = ar.ImageFullTracking
	default:
		ob.State = ar.Paused
		ob.ImageMethod = ar.ImageNotTracking
	}
	return ob, true
}

// depthImage renders the ground plane into a depth image from the
// given camera pose. Pixels whose ray misses the ground are left at
// zero.
func (s *Synth) depthImage(pose ar.Pose, ts int64) *ar.DepthImage {
	w, h := s.DepthSize.X, s.DepthSize.Y
	if w <= 0 || h <= 0 {
		return nil
	}
	sx := float32(w) / float32(s.Intrinsics.Width)
	sy := float32(h) / float32(s.Intrinsics.Height)
	fx, fy := s.Intrinsics.Fx*sx, s.Intrinsics.Fy*sy
	cx, cy := s.Intrinsics.Cx*sx, s.Intrinsics.Cy*sy
	di := &ar.DepthImage{
		Depth:      image.NewGray16(image.Rect(0, 0, w, h)),
		Confidence: image.NewGray(image.Rect(0, 0, w, h)),
		Timestamp:  ts,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// camera-space ray through the pixel center, at z = -1
			dc := glm.Vec3((float32(x)+0.5-cx)/fx, (cy-float32(y)-0.5)/fy, -1)
			dw := pose.TransformVector(dc)
			if dw.Y >= -1.0e-6 {
				continue
			}
			t := -pose.Position.Y / dw.Y
			mm := t * 1000
			if mm <= 0 || mm > 65535 {
				continue
			}
			di.Depth.SetGray16(x, y, color.Gray16{Y: uint16(mm)})
			di.Confidence.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return di
}
