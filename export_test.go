// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge

import "time"

type manualTicker struct {
	c <-chan time.Time
}

func (m manualTicker) C() <-chan time.Time { return m.c }
func (m manualTicker) Stop()               {}

// ManualTicks makes r tick only when the returned channel is sent to.
func ManualTicks(r *Renderer) chan<- time.Time {
	ch := make(chan time.Time)
	r.newTicker = func(time.Duration) ticker { return manualTicker{c: ch} }
	return ch
}

var FloorDiv = floorDiv
