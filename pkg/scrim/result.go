package scrim

// Callback is a deferred unit of work executed against the root controller
// after input propagation has finished. Leaves return callbacks from event
// handling to request root-level actions (quitting, opening a layer,
// mutating a sibling) without holding any reference to the root; the
// controller is always passed in explicitly at invocation time.
type Callback func(*App)

// EventResult is the outcome of offering an event to a view: either the
// view ignored it, letting it bubble toward the parent, or consumed it,
// optionally attaching a deferred [Callback].
type EventResult struct {
	consumed bool
	cb       Callback
}

// Ignored reports that the view did not handle the event.
func Ignored() EventResult { return EventResult{} }

// Consumed reports that the view handled the event.
func Consumed() EventResult { return EventResult{consumed: true} }

// ConsumedWith reports that the view handled the event and requests cb to
// run against the controller once propagation completes.
func ConsumedWith(cb Callback) EventResult {
	return EventResult{consumed: true, cb: cb}
}

// IsConsumed reports whether the event was handled.
func (r EventResult) IsConsumed() bool { return r.consumed }

// Process runs the attached callback, if any. The controller calls this at
// the end of dispatch; tests may call it directly.
func (r EventResult) Process(app *App) {
	if r.cb != nil {
		r.cb(app)
	}
}
