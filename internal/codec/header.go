package codec

import (
	"bytes"
	"encoding/binary"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// PNG IHDR color types.
const (
	pngGray      = 0
	pngRGB       = 2
	pngPaletted  = 3
	pngGrayAlpha = 4
	pngRGBA      = 6
)

// HeaderChannels returns the channel count a file declares in its header,
// or 0 when the format does not say. Only PNG is inspected: the IHDR color
// type gives the base count and a tRNS chunk before the image data adds an
// alpha channel.
func HeaderChannels(data []byte) int {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0
	}

	var colorType byte
	var haveIHDR, haveTRNS bool
	for p := len(pngSignature); p+8 <= len(data); {
		length := int(binary.BigEndian.Uint32(data[p : p+4]))
		kind := string(data[p+4 : p+8])
		body := p + 8
		if length < 0 || body+length > len(data) {
			break
		}
		switch kind {
		case "IHDR":
			if length < 13 {
				return 0
			}
			colorType = data[body+9]
			haveIHDR = true
		case "tRNS":
			haveTRNS = true
		case "IDAT", "IEND":
			p = len(data)
			continue
		}
		p = body + length + 4 // skip CRC
	}
	if !haveIHDR {
		return 0
	}

	switch colorType {
	case pngGray:
		if haveTRNS {
			return 2
		}
		return 1
	case pngRGB, pngPaletted:
		if haveTRNS {
			return 4
		}
		return 3
	case pngGrayAlpha:
		return 2
	case pngRGBA:
		return 4
	}
	return 0
}
