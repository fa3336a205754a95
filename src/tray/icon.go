package tray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

const iconSize = 16

// iconBlue matches the accent used by the app's artwork.
var iconBlue = color.RGBA{R: 0x00, G: 0x78, B: 0xd4, A: 0xff}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// FallbackIcon draws a 16x16 filled blue circle and returns it as PNG.
func FallbackIcon() []byte {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	const c = float64(iconSize-1) / 2
	const r2 = (iconSize / 2) * (iconSize / 2)
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, iconBlue)
			}
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// LoadIcon reads an icon file (PNG or ICO).
func LoadIcon(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tray icon: %w", err)
	}
	if !IsPNG(data) && !IsICO(data) {
		return nil, fmt.Errorf("tray icon %s is neither PNG nor ICO", path)
	}
	return data, nil
}

// IsPNG reports whether data starts with the PNG signature.
func IsPNG(data []byte) bool { return bytes.HasPrefix(data, pngSignature) }

// IsICO reports whether data starts with an ICONDIR header for icons.
func IsICO(data []byte) bool {
	return len(data) >= 6 && binary.LittleEndian.Uint16(data[0:]) == 0 && binary.LittleEndian.Uint16(data[2:]) == 1
}

// ToICO wraps a PNG image in a single-entry ICO container (Vista+ PNG icons).
func ToICO(pngData []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	dim := func(v int) uint8 {
		if v >= 256 {
			return 0
		}
		return uint8(v)
	}

	var buf bytes.Buffer
	// ICONDIR
	_ = binary.Write(&buf, binary.LittleEndian, struct {
		Reserved, Type, Count uint16
	}{0, 1, 1})
	// ICONDIRENTRY
	_ = binary.Write(&buf, binary.LittleEndian, struct {
		Width, Height, Colors, Reserved uint8
		Planes, BitCount                uint16
		BytesInRes, ImageOffset         uint32
	}{dim(cfg.Width), dim(cfg.Height), 0, 0, 1, 32, uint32(len(pngData)), 6 + 16})
	buf.Write(pngData)
	return buf.Bytes(), nil
}
