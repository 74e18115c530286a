// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package completion

// Chan is the channel-producing completion token. The initiating function
// returns a receive channel that delivers the handler's argument and is
// closed afterwards, so a second receive yields the zero value and select
// loops observe termination.
//
// The channel is buffered: the handler never blocks, regardless of whether
// anyone is receiving yet.
type Chan[A any] struct{}

// Resolve implements [Token]. Each resolution creates an independent
// channel; the handler sends the value and closes it.
func (Chan[A]) Resolve() Resolution[A, <-chan A] {
	ch := make(chan A, 1)
	return Resolution[A, <-chan A]{
		Handler: func(v A) {
			ch <- v
			close(ch)
		},
		Carrier: Immediate[<-chan A](ch),
	}
}
