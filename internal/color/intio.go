package color

import "encoding/binary"

// HostBigEndian reports the byte order of the running machine. It is
// computed once; every endian-dependent decision in pixfmt keys off it.
var HostBigEndian = func() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	return b[0] == 0
}()

// ReadUint reads an n-byte (1 to 4) unsigned integer from b in the given
// byte order.
func ReadUint(b []byte, n int, bigEndian bool) uint32 {
	var v uint32
	if bigEndian {
		for i := 0; i < n; i++ {
			v = v<<8 | uint32(b[i])
		}
		return v
	}
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}
	return v
}

// WriteUint writes the low n bytes (1 to 4) of v to b in the given byte
// order.
func WriteUint(b []byte, n int, v uint32, bigEndian bool) {
	if bigEndian {
		for i := n - 1; i >= 0; i-- {
			b[i] = byte(v)
			v >>= 8
		}
		return
	}
	for i := 0; i < n; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}
