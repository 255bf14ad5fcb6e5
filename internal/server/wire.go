package server

import (
	"encoding/binary"
	"errors"
	"fmt"

	"bitlife/internal/session"
)

// frameHeaderSize is width, height, generation, flags and live count.
const frameHeaderSize = 4 + 4 + 8 + 4 + 4

const flagPaused = 1 << 0

// ErrShortFrame is returned by DecodeFrame for truncated input.
var ErrShortFrame = errors.New("server: short frame")

// EncodeFrame serializes f as a little-endian binary message: the header
// followed by the packed cell words.
func EncodeFrame(f session.Frame) []byte {
	buf := make([]byte, frameHeaderSize+8*len(f.Words))
	binary.LittleEndian.PutUint32(buf[0:], f.Width)
	binary.LittleEndian.PutUint32(buf[4:], f.Height)
	binary.LittleEndian.PutUint64(buf[8:], f.Generation)
	var flags uint32
	if f.Paused {
		flags |= flagPaused
	}
	binary.LittleEndian.PutUint32(buf[16:], flags)
	binary.LittleEndian.PutUint32(buf[20:], uint32(f.Live))
	for i, w := range f.Words {
		binary.LittleEndian.PutUint64(buf[frameHeaderSize+8*i:], w)
	}
	return buf
}

// DecodeFrame parses a message produced by EncodeFrame.
func DecodeFrame(buf []byte) (session.Frame, error) {
	if len(buf) < frameHeaderSize {
		return session.Frame{}, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(buf))
	}
	f := session.Frame{
		Width:      binary.LittleEndian.Uint32(buf[0:]),
		Height:     binary.LittleEndian.Uint32(buf[4:]),
		Generation: binary.LittleEndian.Uint64(buf[8:]),
		Paused:     binary.LittleEndian.Uint32(buf[16:])&flagPaused != 0,
		Live:       uint(binary.LittleEndian.Uint32(buf[20:])),
	}
	words := (uint64(f.Width)*uint64(f.Height) + 63) / 64
	if uint64(len(buf)-frameHeaderSize) != 8*words {
		return session.Frame{}, fmt.Errorf("%w: %dx%d grid needs %d words, got %d bytes",
			ErrShortFrame, f.Width, f.Height, words, len(buf)-frameHeaderSize)
	}
	f.Words = make([]uint64, words)
	for i := range f.Words {
		f.Words[i] = binary.LittleEndian.Uint64(buf[frameHeaderSize+8*i:])
	}
	return f, nil
}
