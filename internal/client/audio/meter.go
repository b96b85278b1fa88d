package audio

import "math"

// wavHeaderSize is the canonical PCM RIFF header length.
const wavHeaderSize = 44

// Level computes the RMS volume of little-endian 16-bit PCM samples as a
// percentage of full scale. A RIFF/WAVE header, when present, is skipped.
func Level(data []byte) float64 {
	if len(data) >= wavHeaderSize && string(data[:4]) == "RIFF" {
		data = data[wavHeaderSize:]
	}
	if len(data) < 2 {
		return 0
	}

	var sum float64
	n := 0
	for i := 0; i+1 < len(data); i += 2 {
		sample := int16(uint16(data[i]) | uint16(data[i+1])<<8)
		v := float64(sample)
		sum += v * v
		n++
	}
	if n == 0 {
		return 0
	}

	rms := math.Sqrt(sum / float64(n))
	return rms / 32768 * 100
}

// Bar renders a level percentage as a fixed-width text meter.
func Bar(level float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(level / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return string(bar)
}
