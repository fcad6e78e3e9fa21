package dbft

import (
	"context"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
	"github.com/OnBlockIO/neo-modules/internal/log"
)

// inboundSize bounds the payload queue between the network layer and
// the single-threaded round: once a slow round has let it fill up,
// Enqueue drops further payloads instead of buffering them unboundedly.
const inboundSize = 256

type inbound struct {
	payload     *payload.Payload
	senderIndex int
}

// Handler is the protocol driver that owns the Round and is the only
// goroutine allowed to mutate it, per spec §5's single-threaded
// cooperative model: every inbound payload crosses into the round via
// one channel, processed one at a time off the main event loop,
// mirroring the subscribe-then-select shape of the teacher's
// mainEventLoop without its multi-subscription fan-in (this module has
// exactly one kind of inbound event to dispatch).
type Handler struct {
	round *Round

	in      chan inbound
	stopped chan struct{}

	log *log.Logger
}

// NewHandler binds a Handler to round. Call Start to begin processing.
func NewHandler(round *Round) *Handler {
	return &Handler{
		round:   round,
		in:      make(chan inbound, inboundSize),
		stopped: make(chan struct{}),
		log:     log.New("dbft/handler"),
	}
}

// Start runs the event loop in its own goroutine until ctx is done.
func (h *Handler) Start(ctx context.Context) {
	go h.loop(ctx)
}

// Stop blocks until the event loop has exited. It does not signal the
// loop itself: the loop exits only once the context passed to Start is
// done, and Stop does not return before then.
func (h *Handler) Stop() {
	<-h.stopped
}

// Enqueue hands a payload to the round for acceptance (spec §4.B).
// It never blocks the caller: a full queue means the round is falling
// behind, and the payload is dropped rather than stalling the network
// layer that called in.
func (h *Handler) Enqueue(p *payload.Payload, senderIndex int) {
	select {
	case h.in <- inbound{payload: p, senderIndex: senderIndex}:
	default:
		h.log.Warn("dropping payload, round is falling behind", "sender", senderIndex)
	}
}

func (h *Handler) loop(ctx context.Context) {
	defer close(h.stopped)
	for {
		select {
		case ev := <-h.in:
			if err := h.round.Accept(ev.payload, ev.senderIndex); err != nil {
				h.log.Error("rejected payload", "sender", ev.senderIndex, "err", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
