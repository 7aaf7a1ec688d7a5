// Package wipe securely clears transient secret buffers.
package wipe

import "runtime"

// Bytes overwrites buf with zeros. The runtime.KeepAlive call anchors buf
// past the final write so the compiler cannot treat the loop as a dead
// store and elide it (golang/go#33325).
func Bytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
