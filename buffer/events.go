package buffer

import "context"

// Range is a half-open byte range [Start, End) in one buffer revision.
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the range length in bytes.
func (r Range) Len() uint64 {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// ChangeEvent describes one applied edit.
//
// Removed is the affected range in the pre-edit revision, Inserted the
// replacement range in the post-edit revision. An insertion carries an
// empty Removed range, a deletion an empty Inserted range.
type ChangeEvent struct {
	Removed  Range
	Inserted Range
	NewLen   uint64
	Revision uint64
}

// eventBufferSize is the default channel capacity handed to each
// subscriber, see WithEventCapacity.
const eventBufferSize = 16

// Subscribe returns a channel of change events, one per applied edit, in
// application order.
//
// Delivery is best effort: a subscriber that falls more than the event
// capacity behind misses events and should resync from a snapshot. The
// channel is closed when the buffer is closed or the context is cancelled.
// Subscribing to a closed buffer yields a closed channel.
func (buf *Buffer) Subscribe(ctx context.Context) <-chan ChangeEvent {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make(chan ChangeEvent, buf.eventCap)
	ch, ok := buf.cast.Sub(ctx, buf.eventCap)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for {
			select {
			case m, ok := <-ch:
				if !ok {
					return
				}
				ev, ok := m.(ChangeEvent)
				if !ok {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
