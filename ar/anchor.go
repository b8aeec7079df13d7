// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import "github.com/google/uuid"

// Anchor is a fixed pose in the world that content can be attached to.
// Anchors are created through [Session.NewAnchor] or
// [Session.AttachAnchor] and remain valid until detached.
type Anchor struct {
	id        uuid.UUID
	sess      *Session
	pose      Pose
	trackable Trackable
	detached  bool
}

// ID returns the unique identifier of this anchor.
func (a *Anchor) ID() uuid.UUID {
	return a.id
}

// Pose returns the anchor's world pose.
func (a *Anchor) Pose() Pose {
	return a.pose
}

// Trackable returns the trackable this anchor is attached to,
// or nil for a world anchor.
func (a *Anchor) Trackable() Trackable {
	return a.trackable
}

// TrackingState returns the anchor's tracking state: Stopped once
// detached, otherwise the state of the attached trackable, or the
// session camera state for a world anchor.
func (a *Anchor) TrackingState() TrackingState {
	if a.sess != nil {
		a.sess.mu.RLock()
		defer a.sess.mu.RUnlock()
	}
	return a.state()
}

// state is [Anchor.TrackingState] without locking. Callers with a
// session must hold sess.mu.
func (a *Anchor) state() TrackingState {
	if a.detached {
		return Stopped
	}
	if a.trackable != nil {
		return a.trackable.TrackingState()
	}
	if a.sess != nil {
		return a.sess.camState
	}
	return Tracking
}

// Detach removes this anchor from its session. A detached anchor
// reports Stopped and no longer appears in [Session.Anchors].
func (a *Anchor) Detach() {
	if a.sess != nil {
		a.sess.mu.Lock()
		defer a.sess.mu.Unlock()
	}
	if a.detached {
		return
	}
	a.detached = true
	if a.sess != nil {
		a.sess.dropAnchor(a)
	}
}
