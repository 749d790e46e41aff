// Package byteorder converts 4-byte wire integers to host order.
//
// The endian flag follows the upstream convention: 1 means the sender
// already matches host order and the value is used as is; any other flag
// means the four bytes must be reversed.
package byteorder

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// FlagNative marks a value whose byte order already matches the host.
const FlagNative int32 = 1

// FlagSwap marks a value that must be byte-reversed.
const FlagSwap int32 = 0

var ErrShortRead = errors.New("byteorder: short read")

// IOError reports a failed wire integer read.
type IOError struct {
	Want int
	Got  int
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("byteorder: short read: got %d of %d bytes: %v", e.Got, e.Want, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrShortRead, e.Err}
}

// SwapI32 returns value unchanged when endian is FlagNative, otherwise the
// byte-reversed value.
func SwapI32(value int32, endian int32) int32 {
	if endian == FlagNative {
		return value
	}
	u := uint32(value)
	return int32(u>>24 | (u>>8)&0xff00 | (u<<8)&0xff0000 | u<<24)
}

// ReadI32 consumes exactly four bytes from r and applies SwapI32.
func ReadI32(r io.Reader, endian int32) (int32, error) {
	var buf [4]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return 0, &IOError{Want: len(buf), Got: n, Err: err}
	}
	return SwapI32(int32(binary.NativeEndian.Uint32(buf[:])), endian), nil
}

// PutI32 writes value into b (len >= 4) in host order after applying
// SwapI32, the inverse of ReadI32.
func PutI32(b []byte, value int32, endian int32) {
	binary.NativeEndian.PutUint32(b, uint32(SwapI32(value, endian)))
}

// HostIsBigEndian reports whether the host stores integers big-endian.
func HostIsBigEndian() bool {
	return binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234
}

// NativeFlag returns the endian flag describing network-order (big-endian)
// data received on this host.
func NativeFlag() int32 {
	if HostIsBigEndian() {
		return FlagNative
	}
	return FlagSwap
}
