// Package main builds the camctl control model as a C shared library:
//
//	go build -buildmode=c-shared -o libcamctl.so ./cmd/libcamctl
//
// Every exported function forwards to pkg/ffi; the shim only marshals
// between C types and handles. Handles travel as uintptr_t and the zero
// handle always means "no object". Registry name strings are owned by the
// library and stay valid for the life of the process. Pointers returned by
// camctl_control_value_get stay valid until the same value is next written
// or destroyed.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	camctl "github.com/Prowler1000/go-camctl"
	"github.com/Prowler1000/go-camctl/pkg/controls"
	"github.com/Prowler1000/go-camctl/pkg/ffi"
)

// interned C strings, keyed by content. Registry names come from a fixed
// set, so the table stays small.
var cstrings = struct {
	sync.Mutex
	m map[string]*C.char
}{m: make(map[string]*C.char)}

func intern(s string) *C.char {
	cstrings.Lock()
	defer cstrings.Unlock()
	if p, ok := cstrings.m[s]; ok {
		return p
	}
	p := C.CString(s)
	cstrings.m[s] = p
	return p
}

// Exported value data lives in C memory, one buffer per value handle, so
// the shim never hands a Go pointer across the boundary.
var mirrors = struct {
	sync.Mutex
	m map[uintptr]unsafe.Pointer
}{m: make(map[uintptr]unsafe.Pointer)}

func mirrorData(h uintptr, data []byte) unsafe.Pointer {
	mirrors.Lock()
	defer mirrors.Unlock()
	if old, ok := mirrors.m[h]; ok {
		C.free(old)
		delete(mirrors.m, h)
	}
	if len(data) == 0 {
		return nil
	}
	p := C.CBytes(data)
	mirrors.m[h] = p
	return p
}

func dropMirror(h uintptr) {
	mirrors.Lock()
	defer mirrors.Unlock()
	if old, ok := mirrors.m[h]; ok {
		C.free(old)
		delete(mirrors.m, h)
	}
}

// camctl_control_name returns the registered name of a control id, NULL for
// an unknown id.
//
//export camctl_control_name
func camctl_control_name(id C.uint32_t) *C.char {
	name := ffi.ControlName(uint32(id))
	if name == "" {
		return nil
	}
	return intern(name)
}

//export camctl_control_type
func camctl_control_type(id C.uint32_t) C.int {
	return C.int(ffi.ControlType(uint32(id)))
}

//export camctl_property_name
func camctl_property_name(id C.uint32_t) *C.char {
	name := ffi.PropertyName(uint32(id))
	if name == "" {
		return nil
	}
	return intern(name)
}

//export camctl_property_type
func camctl_property_type(id C.uint32_t) C.int {
	return C.int(ffi.PropertyType(uint32(id)))
}

//export camctl_control_value_create
func camctl_control_value_create() C.uintptr_t {
	return C.uintptr_t(ffi.NewValue())
}

//export camctl_control_value_destroy
func camctl_control_value_destroy(h C.uintptr_t) {
	dropMirror(uintptr(h))
	ffi.ValueDestroy(ffi.Value(h))
}

//export camctl_control_value_type
func camctl_control_value_type(h C.uintptr_t) C.int {
	return C.int(ffi.ValueType(ffi.ValueRef(h)))
}

//export camctl_control_value_is_none
func camctl_control_value_is_none(h C.uintptr_t) C.bool {
	return C.bool(ffi.ValueIsNone(ffi.ValueRef(h)))
}

//export camctl_control_value_is_array
func camctl_control_value_is_array(h C.uintptr_t) C.bool {
	return C.bool(ffi.ValueIsArray(ffi.ValueRef(h)))
}

//export camctl_control_value_num_elements
func camctl_control_value_num_elements(h C.uintptr_t) C.size_t {
	return C.size_t(ffi.ValueNumElements(ffi.ValueRef(h)))
}

// camctl_control_value_get returns the value's packed element bytes, NULL
// for a none value or an unknown handle.
//
//export camctl_control_value_get
func camctl_control_value_get(h C.uintptr_t) unsafe.Pointer {
	return mirrorData(uintptr(h), ffi.ValueData(ffi.ValueRef(h)))
}

// camctl_control_value_set retags the value and fills it from packed
// element bytes. Returns 0 on success, -1 on a bad or borrowed handle.
//
//export camctl_control_value_set
func camctl_control_value_set(h C.uintptr_t, typ C.int, data unsafe.Pointer, isArray C.bool, num C.size_t) C.int {
	t := controls.ControlType(typ)
	n := int(num)
	if !bool(isArray) {
		n = 1
	}
	size := t.Size() * n
	var buf []byte
	if size > 0 && data != nil {
		buf = C.GoBytes(data, C.int(size))
	}
	if err := ffi.ValueSetRaw(ffi.Value(h), t, buf, bool(isArray), int(num)); err != nil {
		return -1
	}
	dropMirror(uintptr(h))
	return 0
}

// camctl_control_value_str writes the value's textual form into a C string
// the caller releases with free().
//
//export camctl_control_value_str
func camctl_control_value_str(h C.uintptr_t) *C.char {
	return C.CString(ffi.ValueString(ffi.ValueRef(h)))
}

//export camctl_control_list_create
func camctl_control_list_create() C.uintptr_t {
	return C.uintptr_t(ffi.NewList())
}

//export camctl_control_list_destroy
func camctl_control_list_destroy(h C.uintptr_t) {
	for _, ref := range ffi.ListRefs(ffi.List(h)) {
		dropMirror(uintptr(ref))
	}
	ffi.ListDestroy(ffi.List(h))
}

//export camctl_control_list_contains
func camctl_control_list_contains(h C.uintptr_t, id C.uint32_t) C.bool {
	return C.bool(ffi.ListContains(ffi.List(h), uint32(id)))
}

//export camctl_control_list_len
func camctl_control_list_len(h C.uintptr_t) C.size_t {
	return C.size_t(ffi.ListLen(ffi.List(h)))
}

// camctl_control_list_get returns a borrowed handle for the entry, 0 when
// the list has no entry for id. The handle stays owned by the list.
//
//export camctl_control_list_get
func camctl_control_list_get(h C.uintptr_t, id C.uint32_t) C.uintptr_t {
	return C.uintptr_t(ffi.ListGet(ffi.List(h), uint32(id)))
}

// camctl_control_list_set copies the source value into the list. Returns 0
// on success, -1 on a bad handle.
//
//export camctl_control_list_set
func camctl_control_list_set(h C.uintptr_t, id C.uint32_t, val C.uintptr_t) C.int {
	if err := ffi.ListSet(ffi.List(h), uint32(id), ffi.ValueRef(val)); err != nil {
		return -1
	}
	return 0
}

//export camctl_control_list_iter
func camctl_control_list_iter(h C.uintptr_t) C.uintptr_t {
	return C.uintptr_t(ffi.ListIterate(ffi.List(h)))
}

//export camctl_control_list_iter_destroy
func camctl_control_list_iter_destroy(h C.uintptr_t) {
	ffi.IterDestroy(ffi.ListIter(h))
}

//export camctl_control_list_iter_end
func camctl_control_list_iter_end(h C.uintptr_t) C.bool {
	return C.bool(ffi.IterIsEnd(ffi.ListIter(h)))
}

//export camctl_control_list_iter_next
func camctl_control_list_iter_next(h C.uintptr_t) {
	ffi.IterNext(ffi.ListIter(h))
}

//export camctl_control_list_iter_id
func camctl_control_list_iter_id(h C.uintptr_t) C.uint32_t {
	return C.uint32_t(ffi.IterID(ffi.ListIter(h)))
}

//export camctl_control_list_iter_value
func camctl_control_list_iter_value(h C.uintptr_t) C.uintptr_t {
	return C.uintptr_t(ffi.IterValue(ffi.ListIter(h)))
}

//export camctl_control_info_create
func camctl_control_info_create() C.uintptr_t {
	return C.uintptr_t(ffi.NewInfo())
}

//export camctl_control_info_destroy
func camctl_control_info_destroy(h C.uintptr_t) {
	ffi.InfoDestroy(ffi.Info(h))
}

// camctl_control_info_min returns an owned value holding the descriptor's
// minimum. The caller destroys it.
//
//export camctl_control_info_min
func camctl_control_info_min(h C.uintptr_t) C.uintptr_t {
	return C.uintptr_t(ffi.InfoMin(ffi.InfoRef(h)))
}

// camctl_control_info_max returns an owned value holding the descriptor's
// maximum, or 0 after logging a diagnostic when the descriptor has none.
//
//export camctl_control_info_max
func camctl_control_info_max(h C.uintptr_t) C.uintptr_t {
	v, err := ffi.InfoMax(ffi.InfoRef(h))
	if err != nil {
		return 0
	}
	return C.uintptr_t(v)
}

//export camctl_control_info_def
func camctl_control_info_def(h C.uintptr_t) C.uintptr_t {
	return C.uintptr_t(ffi.InfoDef(ffi.InfoRef(h)))
}

// camctl_control_info_values returns a malloc'd array of owned value
// handles for the descriptor's enumerated set and writes the element count
// through num. The caller destroys each handle and releases the array with
// free(). Returns NULL without touching num on an unknown handle.
//
//export camctl_control_info_values
func camctl_control_info_values(h C.uintptr_t, num *C.size_t) *C.uintptr_t {
	vs, err := ffi.InfoValues(ffi.InfoRef(h))
	if err != nil {
		return nil
	}
	n := len(vs)
	alloc := n
	if alloc == 0 {
		alloc = 1
	}
	arr := (*C.uintptr_t)(C.malloc(C.size_t(alloc) * C.size_t(unsafe.Sizeof(C.uintptr_t(0)))))
	out := unsafe.Slice(arr, alloc)
	for i, v := range vs {
		out[i] = C.uintptr_t(v)
	}
	*num = C.size_t(n)
	return arr
}

//export camctl_control_info_map_len
func camctl_control_info_map_len(h C.uintptr_t) C.size_t {
	return C.size_t(ffi.MapLen(ffi.InfoMap(h)))
}

// camctl_control_info_map_get returns a borrowed descriptor handle, 0 when
// the map has no entry for id. The handle stays owned by the map.
//
//export camctl_control_info_map_get
func camctl_control_info_map_get(h C.uintptr_t, id C.uint32_t) C.uintptr_t {
	return C.uintptr_t(ffi.MapGet(ffi.InfoMap(h), uint32(id)))
}

// The session side: a process-global camera manager with virtual cameras,
// addressed by registration index.
var session = struct {
	sync.Mutex
	manager *camctl.CameraManager
	cameras []*camctl.Camera
	props   map[int]ffi.List
	infos   map[int]ffi.InfoMap
}{props: make(map[int]ffi.List), infos: make(map[int]ffi.InfoMap)}

func sessionManager() *camctl.CameraManager {
	if session.manager == nil {
		session.manager = camctl.NewCameraManager()
	}
	return session.manager
}

// camctl_init prepares the camera manager. Calling it is optional; the
// camera functions initialize on first use.
//
//export camctl_init
func camctl_init() {
	session.Lock()
	defer session.Unlock()
	sessionManager()
}

// camctl_shutdown closes every camera and withdraws the handles the
// library issued for them. Handles the caller created stay the caller's to
// destroy.
//
//export camctl_shutdown
func camctl_shutdown() {
	session.Lock()
	defer session.Unlock()
	for _, h := range session.props {
		for _, ref := range ffi.ListRefs(h) {
			dropMirror(uintptr(ref))
		}
		ffi.ListDestroy(h)
	}
	for _, h := range session.infos {
		ffi.UnregisterInfoMap(h)
	}
	session.props = make(map[int]ffi.List)
	session.infos = make(map[int]ffi.InfoMap)
	session.cameras = nil
	if session.manager != nil {
		session.manager.Close()
		session.manager = nil
	}
}

// camctl_camera_add_virtual registers a virtual camera with the default
// configuration and returns its index, -1 on failure. The control and
// property registries are switched to the camera's, so vendor controls
// resolve through camctl_control_name.
//
//export camctl_camera_add_virtual
func camctl_camera_add_virtual() C.int {
	session.Lock()
	defer session.Unlock()
	cam, err := sessionManager().AddVirtual(camctl.DefaultVirtualConfig())
	if err != nil {
		return -1
	}
	session.cameras = append(session.cameras, cam)
	ffi.UseRegistries(cam.Registry(), controls.Properties)
	return C.int(len(session.cameras) - 1)
}

//export camctl_camera_count
func camctl_camera_count() C.size_t {
	session.Lock()
	defer session.Unlock()
	return C.size_t(len(session.cameras))
}

func sessionCamera(idx C.int) *camctl.Camera {
	if idx < 0 || int(idx) >= len(session.cameras) {
		return nil
	}
	return session.cameras[idx]
}

//export camctl_camera_id
func camctl_camera_id(idx C.int) *C.char {
	session.Lock()
	defer session.Unlock()
	cam := sessionCamera(idx)
	if cam == nil {
		return nil
	}
	return intern(cam.ID())
}

//export camctl_camera_model
func camctl_camera_model(idx C.int) *C.char {
	session.Lock()
	defer session.Unlock()
	cam := sessionCamera(idx)
	if cam == nil {
		return nil
	}
	return intern(cam.Model())
}

// camctl_camera_properties returns a list handle for the camera's static
// properties. The handle is owned by the library and stays valid until
// camctl_shutdown.
//
//export camctl_camera_properties
func camctl_camera_properties(idx C.int) C.uintptr_t {
	session.Lock()
	defer session.Unlock()
	cam := sessionCamera(idx)
	if cam == nil {
		return 0
	}
	if h, ok := session.props[int(idx)]; ok {
		return C.uintptr_t(h)
	}
	h := ffi.RegisterList(cam.Properties().Clone())
	session.props[int(idx)] = h
	return C.uintptr_t(h)
}

// camctl_camera_info_map returns the camera's control info map handle,
// owned by the library and valid until camctl_shutdown.
//
//export camctl_camera_info_map
func camctl_camera_info_map(idx C.int) C.uintptr_t {
	session.Lock()
	defer session.Unlock()
	cam := sessionCamera(idx)
	if cam == nil {
		return 0
	}
	if h, ok := session.infos[int(idx)]; ok {
		return C.uintptr_t(h)
	}
	h := ffi.RegisterInfoMap(cam.ControlInfo())
	session.infos[int(idx)] = h
	return C.uintptr_t(h)
}

// camctl_camera_controls returns a snapshot of the camera's current
// control values as a new list the caller owns and destroys.
//
//export camctl_camera_controls
func camctl_camera_controls(idx C.int) C.uintptr_t {
	session.Lock()
	defer session.Unlock()
	cam := sessionCamera(idx)
	if cam == nil {
		return 0
	}
	return C.uintptr_t(ffi.RegisterList(cam.Controls()))
}

// camctl_camera_apply validates the listed values against the camera's
// info map and stores them. Returns 0 on success, -1 on a bad handle or a
// value of the wrong type.
//
//export camctl_camera_apply
func camctl_camera_apply(idx C.int, list C.uintptr_t) C.int {
	session.Lock()
	cam := sessionCamera(idx)
	session.Unlock()
	if cam == nil {
		return -1
	}
	backing := ffi.ListBacking(ffi.List(list))
	if backing == nil {
		return -1
	}
	if err := cam.Apply(backing); err != nil {
		return -1
	}
	return 0
}

func main() {}
