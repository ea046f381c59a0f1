// Package imageio reads and writes raster.Image values to and from
// common external formats. PPM is hand-rolled since it is trivial and
// dependency-free; PNG delegates to the standard image/png codec,
// which is the pack's own practice for PNG I/O at format edges that
// sit outside a codec's core scope.
package imageio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/etca-codec/etca/raster"
)

// WritePPM writes img to w in binary PPM (P6) format.
func WritePPM(w io.Writer, img *raster.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("imageio: ppm header: %w", err)
	}
	if _, err := bw.Write(img.ToRGB()); err != nil {
		return fmt.Errorf("imageio: ppm body: %w", err)
	}
	return bw.Flush()
}

// ReadPPM reads a binary PPM (P6) image from r.
func ReadPPM(r io.Reader) (*raster.Image, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("imageio: ppm magic: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("imageio: unsupported ppm magic %q", magic)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("imageio: ppm width: %w", err)
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("imageio: ppm height: %w", err)
	}
	maxVal, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("imageio: ppm maxval: %w", err)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("imageio: unsupported ppm maxval %d", maxVal)
	}

	rgb := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, rgb); err != nil {
		return nil, fmt.Errorf("imageio: ppm body: %w", err)
	}
	return raster.NewFromRGB(width, height, rgb)
}

// readToken reads a single whitespace-delimited token, skipping "#"
// comment lines per the PPM header grammar.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '#' {
			if err := skipLine(br); err != nil {
				return "", err
			}
			continue
		}
		if isSpace(b) {
			if len(tok) == 0 {
				continue
			}
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func skipLine(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
