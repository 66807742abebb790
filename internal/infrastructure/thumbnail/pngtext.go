package thumbnail

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"strconv"
	"time"
)

// Keys other thumbnail readers use to check that a cached preview still
// matches its source file.
const (
	keyThumbURI   = "Thumb::URI"
	keyThumbMTime = "Thumb::MTime"
	keySoftware   = "Software"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

type textChunk struct {
	key, value string
}

func thumbText(uri string, mtime time.Time) []textChunk {
	return []textChunk{
		{keyThumbURI, uri},
		{keyThumbMTime, strconv.FormatInt(mtime.Unix(), 10)},
		{keySoftware, appName},
	}
}

// insertText adds tEXt chunks right after the IHDR chunk of an encoded PNG.
func insertText(encoded []byte, chunks []textChunk) ([]byte, error) {
	// signature + IHDR (length, type, 13 data bytes, crc)
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	if len(encoded) < ihdrEnd || !bytes.Equal(encoded[:8], pngSignature) ||
		string(encoded[12:16]) != "IHDR" {
		return nil, errors.New("not a png stream")
	}

	var out bytes.Buffer
	out.Grow(len(encoded) + 64*len(chunks))
	out.Write(encoded[:ihdrEnd])
	for _, c := range chunks {
		data := make([]byte, 0, len(c.key)+1+len(c.value))
		data = append(data, c.key...)
		data = append(data, 0)
		data = append(data, c.value...)
		writeChunk(&out, "tEXt", data)
	}
	out.Write(encoded[ihdrEnd:])
	return out.Bytes(), nil
}

func writeChunk(w *bytes.Buffer, typ string, data []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	w.Write(n[:])

	crc := crc32.NewIEEE()
	_, _ = crc.Write([]byte(typ))
	_, _ = crc.Write(data)
	w.WriteString(typ)
	w.Write(data)
	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	w.Write(n[:])
}
