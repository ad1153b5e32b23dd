package engine

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// cString copies s into a NUL-terminated C buffer. The returned release
// function frees the buffer and must run before the caller returns.
func cString(s string) (*C.char, func()) {
	p := C.CString(s)
	return p, func() { C.free(unsafe.Pointer(p)) }
}

// goStrings copies a NUL-terminated C string array into owned Go
// strings. The array itself is left for its owner to release, or not,
// per that operation's contract.
func goStrings(arr **C.char) []string {
	if arr == nil {
		return nil
	}
	var out []string
	for p := arr; *p != nil; p = (**C.char)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
		out = append(out, C.GoString(*p))
	}
	return out
}
