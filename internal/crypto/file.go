package crypto

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// headerLenSize is the width of the big-endian metadata length prefix.
const headerLenSize = 4

// FileMetadata is sealed together with the file content, so it is covered by
// the same authentication tag.
type FileMetadata struct {
	OriginalName string `json:"originalName"`
	Extension    string `json:"extension"`
	MimeType     string `json:"mimeType"`
	SizeBytes    int64  `json:"sizeBytes"`
}

// File is a decrypted capsule attachment.
type File struct {
	Metadata FileMetadata
	Content  []byte
}

// NewFile builds a File, deriving the extension from name and sniffing the
// MIME type from content when mimeType is empty.
func NewFile(name, mimeType string, content []byte) *File {
	if mimeType == "" {
		mimeType = mimetype.Detect(content).String()
	}
	return &File{
		Metadata: FileMetadata{
			OriginalName: name,
			Extension:    strings.TrimPrefix(filepath.Ext(name), "."),
			MimeType:     mimeType,
			SizeBytes:    int64(len(content)),
		},
		Content: content,
	}
}

// packFile lays out: uint32 metadata length || metadata JSON || content.
func packFile(f *File) ([]byte, error) {
	if f == nil {
		return nil, validationErrorf("file is required")
	}
	if f.Metadata.OriginalName == "" {
		return nil, validationErrorf("file name is required")
	}

	meta := f.Metadata
	meta.SizeBytes = int64(len(f.Content))
	header, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal file metadata: %w", err)
	}

	buf := make([]byte, headerLenSize, headerLenSize+len(header)+len(f.Content))
	binary.BigEndian.PutUint32(buf, uint32(len(header)))
	buf = append(buf, header...)
	buf = append(buf, f.Content...)
	return buf, nil
}

func unpackFile(plaintext []byte) (*File, error) {
	if len(plaintext) < headerLenSize {
		return nil, decodingErrorf("file payload too short")
	}
	headerLen := int(binary.BigEndian.Uint32(plaintext[:headerLenSize]))
	if headerLen > len(plaintext)-headerLenSize {
		return nil, decodingErrorf("file metadata length %d exceeds payload", headerLen)
	}

	var meta FileMetadata
	if err := json.Unmarshal(plaintext[headerLenSize:headerLenSize+headerLen], &meta); err != nil {
		return nil, decodingErrorf("invalid file metadata: %v", err)
	}

	content := plaintext[headerLenSize+headerLen:]
	if meta.SizeBytes != int64(len(content)) {
		return nil, decodingErrorf("file size %d does not match content length %d", meta.SizeBytes, len(content))
	}

	// Copy out so the caller does not pin the whole plaintext buffer.
	out := make([]byte, len(content))
	copy(out, content)
	return &File{Metadata: meta, Content: out}, nil
}
