// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playback

import (
	"context"
	"io"
	"time"

	"github.com/go-xr/xr/ar"
)

// Player replays a [Recording] as an [ar.FrameSource], pacing frames
// by their recorded timestamps. It is not safe for concurrent use; a
// session's update loop is the single caller.
type Player struct {

	// Recording is the recording being replayed.
	Recording *Recording

	// Speed is the pacing factor relative to the recorded timestamps:
	// 1 replays in real time, 2 at double speed, and 0 or less as fast
	// as frames are pulled.
	Speed float64

	// Loop restarts replay from the first frame at the end instead of
	// returning [io.EOF].
	Loop bool

	next    int
	started time.Time
	base    int64
}

// NewPlayer returns a player over the recording, replaying in real
// time.
func NewPlayer(r *Recording) *Player {
	return &Player{Recording: r, Speed: 1}
}

// Next returns the next recorded frame, sleeping until it is due at
// the configured speed. It returns [io.EOF] at the end of a non-Loop
// recording and the context error if the context is done first.
func (p *Player) Next(ctx context.Context) (*ar.RawFrame, error) {
	if p.Recording == nil || len(p.Recording.Frames) == 0 {
		return nil, io.EOF
	}
	if p.next >= len(p.Recording.Frames) {
		if !p.Loop {
			return nil, io.EOF
		}
		p.Rewind()
	}
	raw, err := p.Recording.Frames[p.next].Raw()
	if err != nil {
		return nil, err
	}
	if err := p.pace(ctx, raw.Timestamp); err != nil {
		return nil, err
	}
	p.next++
	return raw, nil
}

// Close implements [ar.FrameSource]. The recording remains usable.
func (p *Player) Close() error {
	return nil
}

// Rewind restarts replay from the first frame and resets the pacing
// clock.
func (p *Player) Rewind() {
	p.next = 0
	p.started = time.Time{}
}

// pace sleeps until the frame with the given timestamp is due. The
// first frame after a rewind anchors the pacing clock and is returned
// immediately.
func (p *Player) pace(ctx context.Context, ts int64) error {
	if p.Speed <= 0 {
		return ctx.Err()
	}
	if p.started.IsZero() {
		p.started = time.Now()
		p.base = ts
		return ctx.Err()
	}
	due := p.started.Add(time.Duration(float64(ts-p.base) / p.Speed))
	wait := time.Until(due)
	if wait <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
