package editor

import "context"

type fetchKind string

const (
	fetchList    fetchKind = "list"
	fetchProduct fetchKind = "product"
)

// fetchSlot tracks the latest request of one kind. Issuing a request cancels
// the previous one and bumps the generation, so a response is applied only if
// its generation is still current. Callers hold the session lock.
type fetchSlot struct {
	kind       fetchKind
	generation uint64
	cancel     context.CancelFunc
}

func (s *fetchSlot) begin(parent context.Context) (context.Context, uint64) {
	s.invalidate()

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	return ctx, s.generation
}

// invalidate drops the in-flight request, if any.
func (s *fetchSlot) invalidate() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
}

func (s *fetchSlot) current(generation uint64) bool {
	return s.generation == generation
}

func (s *fetchSlot) pending() bool {
	return s.cancel != nil
}

func (s *fetchSlot) finish(generation uint64) {
	if s.current(generation) && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
