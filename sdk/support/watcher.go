package support

import (
	"context"
	"sync"
	"time"
)

// DefaultWatchInterval is the poll period used when WatchOptions leaves
// Interval zero.
const DefaultWatchInterval = 3 * time.Second

// WatchOptions configures a TicketWatcher. The comment count and status
// the view already rendered seed the baseline, so only changes that
// happen after the watcher starts produce callbacks.
type WatchOptions struct {
	Interval time.Duration

	// CommentCount and Status are the baseline at start time. Leaving
	// them zero makes the first successful poll report everything as new.
	CommentCount int
	Status       string

	// OnComments receives comments appended since the previous poll, in
	// ledger order. Optional.
	OnComments func(appended []Comment)

	// OnStatus receives a remote status change. Optional.
	OnStatus func(oldStatus, newStatus string)

	// OnError receives per-tick failures. Optional; failures never stop
	// the schedule either way.
	OnError func(err error)
}

// TicketWatcher re-fetches one ticket's comments and status on a fixed
// interval and reconciles against what it saw last. The comment ledger is
// append-only, so a count increase identifies exactly which entries are
// new. Callbacks run on the watcher's goroutine, never after Stop returns.
type TicketWatcher struct {
	client   *Client
	ticketID uint
	opts     WatchOptions

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// WatchTicket starts polling the given ticket until Stop is called or ctx
// is canceled.
func (c *Client) WatchTicket(ctx context.Context, ticketID uint, opts WatchOptions) *TicketWatcher {
	if opts.Interval <= 0 {
		opts.Interval = DefaultWatchInterval
	}
	w := &TicketWatcher{
		client:   c,
		ticketID: ticketID,
		opts:     opts,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run(ctx)
	return w
}

// Stop tears the watcher down and waits for the poll goroutine to exit.
// A tick in flight when Stop is called has its result discarded. Stop is
// idempotent.
func (w *TicketWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	<-w.done
}

func (w *TicketWatcher) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.opts.Interval)
	defer ticker.Stop()

	commentCount := w.opts.CommentCount
	status := w.opts.Status

	for {
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		comments, commentsErr := w.client.ListComments(ctx, w.ticketID)
		ticket, ticketErr := w.client.GetTicket(ctx, w.ticketID)

		// The view may have closed while the fetches were in flight;
		// never apply results past that point.
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		default:
		}

		if commentsErr == nil {
			if len(comments) > commentCount && w.opts.OnComments != nil {
				w.opts.OnComments(comments[commentCount:])
			}
			commentCount = len(comments)
		} else {
			w.reportError(commentsErr)
		}

		if ticketErr == nil {
			if ticket.Status != status {
				if status != "" && w.opts.OnStatus != nil {
					w.opts.OnStatus(status, ticket.Status)
				}
				status = ticket.Status
			}
		} else {
			w.reportError(ticketErr)
		}
	}
}

func (w *TicketWatcher) reportError(err error) {
	if w.opts.OnError != nil {
		w.opts.OnError(err)
	}
}
