// Package ffi flattens the control object model into handle-based
// operations suitable for exposure over a C linkage boundary. Objects are
// referenced by opaque integer handles rather than pointers, so foreign
// callers can never hold a Go pointer, and owned and borrowed results are
// kept apart at the type level: a Value is destroyed by its creator, a
// ValueRef stays owned by the list or descriptor it was read from.
//
// Lookups against unknown identifiers report their absence through zero
// returns and are not diagnosed. Misuse of handles and failing descriptor
// operations are logged before the operation degrades to a no-op or zero
// result, so a foreign caller that ignores return values still leaves a
// trace on stderr.
package ffi

import (
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Prowler1000/go-camctl/pkg/controls"
)

var (
	// ErrBadHandle reports an operation on a handle that was never issued
	// or has already been destroyed.
	ErrBadHandle = errors.New("unknown or destroyed handle")

	// ErrBorrowed reports a mutating operation on a borrowed handle.
	ErrBorrowed = errors.New("handle is borrowed, not owned")
)

var (
	logMu  sync.Mutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// SetLogger replaces the package logger. The default logger writes to
// stderr.
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l
}

func log() *zerolog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	l := logger
	return &l
}

var (
	regMu      sync.Mutex
	controlReg = controls.Controls
	propReg    = controls.Properties
)

// UseRegistries replaces the registries that metadata lookups resolve
// against, typically to add vendor controls. Nil keeps the current
// registry.
func UseRegistries(ctrls, props *controls.Registry) {
	regMu.Lock()
	defer regMu.Unlock()
	if ctrls != nil {
		controlReg = ctrls
	}
	if props != nil {
		propReg = props
	}
}

func registries() (*controls.Registry, *controls.Registry) {
	regMu.Lock()
	defer regMu.Unlock()
	return controlReg, propReg
}

// ControlName resolves a control identifier to its name, or "" when the
// identifier is unknown.
func ControlName(id uint32) string {
	ctrls, _ := registries()
	return ctrls.Name(id)
}

// ControlType resolves a control identifier to its value type, or
// ControlTypeNone when the identifier is unknown.
func ControlType(id uint32) controls.ControlType {
	ctrls, _ := registries()
	return ctrls.TypeOf(id)
}

// PropertyName resolves a property identifier to its name, or "" when the
// identifier is unknown.
func PropertyName(id uint32) string {
	_, props := registries()
	return props.Name(id)
}

// PropertyType resolves a property identifier to its value type, or
// ControlTypeNone when the identifier is unknown.
func PropertyType(id uint32) controls.ControlType {
	_, props := registries()
	return props.TypeOf(id)
}

var (
	values   = newHandleTable()
	lists    = newHandleTable()
	iters    = newHandleTable()
	infoRefs = newHandleTable()
	infoMaps = newHandleTable()
)

// LiveCounts reports how many handles of each kind are currently issued.
type LiveCounts struct {
	Values   int
	Lists    int
	Iters    int
	InfoRefs int
	InfoMaps int
}

// Live returns the current handle census. Tests use it to verify that
// create and destroy calls pair up.
func Live() LiveCounts {
	return LiveCounts{
		Values:   values.count(),
		Lists:    lists.count(),
		Iters:    iters.count(),
		InfoRefs: infoRefs.count(),
		InfoMaps: infoMaps.count(),
	}
}
