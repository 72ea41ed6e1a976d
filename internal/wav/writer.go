package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	formatPCM     = 1
	bitsPerSample = 16
	headerSize    = 44
)

// Encode writes samples as an uncompressed 16-bit PCM RIFF/WAVE stream.
// Samples are interleaved across channels in frame order.
func Encode(w io.Writer, sampleRate, channels int, samples []int16) error {
	dataLen := len(samples) * 2
	blockAlign := channels * bitsPerSample / 8

	header := make([]byte, headerSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(headerSize-8+dataLen))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataLen))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}

	pcm := make([]byte, dataLen)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}
	return nil
}

// WriteFile encodes samples into a new WAV file at path.
func WriteFile(path string, sampleRate, channels int, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav: create %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, sampleRate, channels, samples)
}
