package bitmap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
)

// 14-byte BMP file header. Serialized field by field so no padding is
// ever written.
type fileHeader struct {
	Type      uint16
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

// 40-byte BITMAPINFOHEADER.
type infoHeader struct {
	Size          uint32
	Width         uint32
	Height        uint32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter uint32
	YPelsPerMeter uint32
	ClrUsed       uint32
	ClrImportant  uint32
}

// Write encodes a packed BGRA pixel buffer as an uncompressed 32bpp BMP.
// Row zero of the buffer becomes the bottom image row, matching the BMP
// bottom-up raster order.
func Write(w io.Writer, width, height uint32, pix []byte) error {
	payloadSize := width * height * 4
	if uint32(len(pix)) != payloadSize {
		return fmt.Errorf("bitmap: pixel buffer holds %d bytes; expected %d", len(pix), payloadSize)
	}

	err := binary.Write(w, binary.LittleEndian, fileHeader{
		Type:    0x4d42, // 'BM'
		Size:    fileHeaderSize + infoHeaderSize + payloadSize,
		OffBits: fileHeaderSize + infoHeaderSize,
	})
	if err != nil {
		return err
	}

	err = binary.Write(w, binary.LittleEndian, infoHeader{
		Size:      infoHeaderSize,
		Width:     width,
		Height:    height,
		Planes:    1,
		BitCount:  32,
		SizeImage: payloadSize,
	})
	if err != nil {
		return err
	}

	_, err = w.Write(pix)
	return err
}

// WriteFile encodes the pixel buffer to the named BMP file.
func WriteFile(path string, width, height uint32, pix []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(f)
	if err = Write(buf, width, height, pix); err != nil {
		f.Close()
		return err
	}
	if err = buf.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
