/*
Package hook provides global keyboard and mouse hooks backed by the
libuiohook native library.

The native entry points are resolved at runtime from the process image with
dlopen(NULL)/dlsym, so this package builds without libuiohook's headers or a
link-time dependency. The final binary has to carry the library, either by
linking it:

	export CGO_LDFLAGS="-luiohook"
	go build

or by preloading it into the process. The tests replace the native library
with the fake implementations in go-uiohook.org/hook/fake.

Running the hook occupies two goroutines. One calls into the native
hook_run() and blocks for as long as the hook is active. The native library
invokes its dispatch callback on that thread for every input event, and the
callback has to return quickly or the operating system may discard events.
All the callback does is hand the event to the second goroutine, the control
loop, which calls the registered handlers:

	id := hook.Register(func(ev *event.Event) {
		fmt.Println(ev)
	})
	defer hook.Unregister(id)

	h, err := hook.Start()
	if err != nil {
		log.Fatal(err)
	}
	time.Sleep(5 * time.Second)
	h.Stop()

Start spawns both goroutines; StartBlocking uses the calling goroutine as
the control loop and returns only after the hook stopped.
*/
package hook // import "go-uiohook.org/hook"

// #cgo CPPFLAGS: -I${SRCDIR}
// #cgo LDFLAGS: -ldl
// #include "uiohook.h"
//
// void install_dispatch_bridge(int install);
// int hook_run_wrapper(void);
// int hook_stop_wrapper(void);
// keyboard_event_data *event_keyboard(uiohook_event *ev);
// mouse_event_data *event_mouse(uiohook_event *ev);
// mouse_wheel_event_data *event_wheel(uiohook_event *ev);
import "C"

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go-uiohook.org/event"
)

// eventBufferSize bounds the queue between the native hook thread and the
// control loop. The native callback never blocks on a full queue.
const eventBufferSize = 1024

var (
	running atomic.Bool

	// events carries captured events from the native callback to the
	// control loop. Like the native registration it is process-wide and
	// lives for the lifetime of the program.
	events = make(chan *event.Event, eventBufferSize)

	handlersMu sync.RWMutex
	handlers   = make(map[ID]func(*event.Event))
	lastID     ID

	reserveMu sync.RWMutex
	reserveFn func(*event.Event) bool

	// synthetic holds the event type of the most recently posted event so
	// that it can be recognized when the operating system echoes it back.
	synthetic atomic.Uint32

	baseOnce sync.Once
	baseTime int64
)

// ID identifies a registered event handler.
type ID uint64

// Register adds a handler that the control loop calls for every captured
// event. Handlers run sequentially on the control loop; a slow handler
// delays delivery to all others.
func Register(f func(*event.Event)) ID {
	handlersMu.Lock()
	defer handlersMu.Unlock()

	lastID++
	handlers[lastID] = f
	return lastID
}

// Unregister removes the handler registered under id. It reports whether a
// handler was registered under that id.
func Unregister(id ID) bool {
	handlersMu.Lock()
	defer handlersMu.Unlock()

	_, ok := handlers[id]
	delete(handlers, id)
	return ok
}

// ReserveEvents installs a filter that runs on the native hook thread for
// every captured event, before the event is handed to the control loop. If
// the filter returns true the event is marked reserved and withheld from the
// rest of the system.
//
// Each call replaces the previous filter; a nil filter reserves nothing.
// Only Windows and macOS honor the reserved flag. The filter runs inside the
// operating system's event delivery and has the same latency constraints as
// the native callback itself.
func ReserveEvents(filter func(*event.Event) bool) {
	reserveMu.Lock()
	reserveFn = filter
	reserveMu.Unlock()
}

// Handle controls a hook started with Start.
type Handle struct {
	startedOnce sync.Once
	started     chan error
	done        chan struct{}
	err         error
}

// Start installs the hook and spawns the control loop. It returns once the
// native library confirmed that the hook is active, so events may be posted
// immediately afterwards. If this process already runs a hook,
// ErrAlreadyRunning is returned.
func Start() (*Handle, error) {
	h, err := newHandle()
	if err != nil {
		return nil, err
	}

	go h.run()

	if err := <-h.started; err != nil {
		return nil, err
	}
	return h, nil
}

// StartBlocking installs the hook and runs the control loop on the calling
// goroutine. It returns after Stop was called, from a handler or from
// another goroutine.
func StartBlocking() error {
	h, err := newHandle()
	if err != nil {
		return err
	}

	h.run()
	return h.err
}

func newHandle() (*Handle, error) {
	if !running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	return &Handle{
		started: make(chan error, 1),
		done:    make(chan struct{}),
	}, nil
}

// run is the control loop. It installs the native dispatch callback, starts
// the native hook on its own goroutine and fans incoming events out to the
// registered handlers until the hook is disabled.
func (h *Handle) run() {
	// Drop events left over from a previous run.
	for {
		select {
		case <-events:
			continue
		default:
		}
		break
	}

	C.install_dispatch_bridge(1)

	runErr := make(chan error, 1)
	go func() {
		// Blocks inside the native library until Stop.
		if err := statusError(int(C.hook_run_wrapper())); err != nil {
			runErr <- err
			// The native library never got far enough to deliver
			// its disabled event, so unblock the loop below.
			events <- &event.Event{Kind: event.HookDisabled}
		}
	}()

	for ev := range events {
		if ev.Kind == event.HookEnabled {
			h.startedOnce.Do(func() { h.started <- nil })
		}

		handlersMu.RLock()
		for _, f := range handlers {
			f(ev)
		}
		handlersMu.RUnlock()

		if ev.Kind == event.HookDisabled {
			break
		}
	}

	running.Store(false)
	select {
	case err := <-runErr:
		h.err = err
	default:
	}
	h.startedOnce.Do(func() { h.started <- h.err })
	close(h.done)
}

// Wait blocks until the control loop finished and returns the native hook's
// error, if any.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

// Stop stops the native hook and waits for the control loop to finish.
func (h *Handle) Stop() error {
	if err := Stop(); err != nil {
		return err
	}
	return h.Wait()
}

// Stop asks the native library to stop the running hook. The control loop
// finishes once the native disabled event comes through; use Handle.Wait to
// block until then.
func Stop() error {
	return statusError(int(C.hook_stop_wrapper()))
}

//export wrap_dispatch_callback
func wrap_dispatch_callback(cev *C.uiohook_event) {
	if cev == nil {
		return
	}

	ev := fromNative(cev)
	markSynthetic(ev, cev)
	applyReserve(ev, cev)

	// Never block the native hook thread; drop the event if the control
	// loop cannot keep up.
	select {
	case events <- ev:
	default:
	}
}

func fromNative(cev *C.uiohook_event) *event.Event {
	ev := &event.Event{
		Kind: event.Kind(cev._type),
		Time: rebaseTime(uint64(cev.time)),
		Mask: event.Mask(cev.mask),
		Mode: event.Mode(cev.reserved),
	}

	switch {
	case ev.Kind.IsKeyboard():
		kb := C.event_keyboard(cev)
		ev.Keyboard = event.Keyboard{
			Keycode: event.Key(kb.keycode),
			Rawcode: uint16(kb.rawcode),
			Keychar: uint16(kb.keychar),
		}
	case ev.Kind.IsMouse():
		m := C.event_mouse(cev)
		ev.Mouse = event.Mouse{
			Button: event.MouseButton(m.button),
			Clicks: uint16(m.clicks),
			X:      int16(m.x),
			Y:      int16(m.y),
		}
	case ev.Kind == event.MouseWheel:
		w := C.event_wheel(cev)
		ev.Wheel = event.Wheel{
			Clicks:    uint16(w.clicks),
			X:         int16(w.x),
			Y:         int16(w.y),
			Kind:      event.ScrollKind(w._type),
			Amount:    uint16(w.amount),
			Rotation:  int16(w.rotation),
			Direction: event.ScrollDirection(w.direction),
		}
	}

	return ev
}

// rebaseTime converts the native library's uptime based timestamp to wall
// clock time. The first event pins the offset between the two; later events
// only add to it, avoiding a system call per event.
func rebaseTime(uptime uint64) time.Time {
	baseOnce.Do(func() {
		baseTime = time.Now().UnixMilli() - int64(uptime)
	})
	return time.UnixMilli(baseTime + int64(uptime))
}

func markSynthetic(ev *event.Event, cev *C.uiohook_event) {
	kind := uint32(cev._type)

	// Windows cannot post drag events; a posted move can arrive as a
	// drag, so the two are not distinguished when matching posted events.
	if runtime.GOOS == "windows" && event.Kind(kind) == event.MouseDragged {
		kind = uint32(event.MouseMoved)
	}

	if synthetic.CompareAndSwap(kind, 0) {
		ev.Mode |= event.Synthetic
	}
}

func applyReserve(ev *event.Event, cev *C.uiohook_event) {
	reserveMu.RLock()
	filter := reserveFn
	reserveMu.RUnlock()

	if filter != nil && filter(ev) {
		ev.Mode |= event.Reserved
		cev.reserved = C.uint16_t(event.Reserved)
	}
}
