// Package fake implements fake versions of the libuiohook functions that
// go-uiohook.org/hook resolves at runtime, for testing.
//
// The fakes are plain C symbols in the test binary, so the hook package's
// dlsym lookups find them the same way they would find the real library.
// Events and log messages injected through this package travel the full
// native call path, including the variadic logger callback.
package fake // import "go-uiohook.org/hook/fake"

// // The fakes are resolved with dlsym from the test binary itself, so
// // their symbols have to land in the dynamic symbol table.
// #cgo LDFLAGS: -Wl,--export-dynamic
//
// void reset_logger(void);
// void reset_hook(void);
// void reset_properties(void);
import "C"

// TearDown cleans up after a test and prepares the fake native state for the
// next one. A hook still running is stopped.
//
// Note that this only resets the fake implementations. The Go state in
// go-uiohook.org/hook, such as an installed Logger, is reset through that
// package's own API.
func TearDown() {
	C.reset_hook()
	C.reset_logger()
	C.reset_properties()
}
