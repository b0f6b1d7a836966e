package deck

// Listener receives deck events. Calls happen on the goroutine that drove
// the engine and after the engine lock is released, so a listener may call
// back into the engine.
type Listener interface {
	ItemAccepted(item Item)
	ItemRejected(item Item)
	DeckExhausted()
	DetailRequested(item Item)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnAccepted  func(Item)
	OnRejected  func(Item)
	OnExhausted func()
	OnDetail    func(Item)
}

func (f ListenerFuncs) ItemAccepted(item Item) {
	if f.OnAccepted != nil {
		f.OnAccepted(item)
	}
}

func (f ListenerFuncs) ItemRejected(item Item) {
	if f.OnRejected != nil {
		f.OnRejected(item)
	}
}

func (f ListenerFuncs) DeckExhausted() {
	if f.OnExhausted != nil {
		f.OnExhausted()
	}
}

func (f ListenerFuncs) DetailRequested(item Item) {
	if f.OnDetail != nil {
		f.OnDetail(item)
	}
}

type eventKind int

const (
	eventAccepted eventKind = iota
	eventRejected
	eventExhausted
	eventDetail
)

type event struct {
	kind eventKind
	item Item
}

func (e event) deliver(l Listener) {
	switch e.kind {
	case eventAccepted:
		l.ItemAccepted(e.item)
	case eventRejected:
		l.ItemRejected(e.item)
	case eventExhausted:
		l.DeckExhausted()
	case eventDetail:
		l.DetailRequested(e.item)
	}
}
