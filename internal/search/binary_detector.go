// Binary file detection utility for early rejection of non-text files.
// Lowercasing a binary blob wastes memory and produces garbage matches,
// so files that look binary yield zero matches without a content scan.
package search

import (
	"bytes"
	"path/filepath"
	"strings"
)

// BinaryDetector handles detection of binary files that should not be scanned
type BinaryDetector struct {
	binaryExtensions map[string]bool
}

// NewBinaryDetector creates a new binary file detector
func NewBinaryDetector() *BinaryDetector {
	extensions := map[string]bool{
		// Image files
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".gif":  true,
		".bmp":  true,
		".ico":  true,
		".webp": true,
		".svg":  false, // SVG is text-based XML

		// Archive files
		".zip": true,
		".tar": true,
		".gz":  true,
		".bz2": true,
		".xz":  true,
		".7z":  true,
		".rar": true,

		// Binary executables and objects
		".exe":   true,
		".dll":   true,
		".so":    true,
		".dylib": true,
		".a":     true,
		".o":     true,
		".bin":   true,

		// Media files
		".mp3": true,
		".mp4": true,
		".avi": true,
		".mov": true,
		".wav": true,
		".ogg": true,

		// Document files (binary formats)
		".pdf":  true,
		".doc":  true,
		".docx": true,
		".xls":  true,
		".xlsx": true,

		// Database files
		".db":      true,
		".sqlite":  true,
		".sqlite3": true,

		// Compiled bytecode
		".pyc":   true,
		".class": true,
	}

	return &BinaryDetector{
		binaryExtensions: extensions,
	}
}

// IsBinaryByExtension checks if a file is binary based on its extension
func (bd *BinaryDetector) IsBinaryByExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}

	isBinary, exists := bd.binaryExtensions[ext]
	return exists && isBinary
}

// IsBinaryByMagicNumber checks if content is binary using magic number
// detection. This is a fast heuristic check on the first 512 bytes.
func (bd *BinaryDetector) IsBinaryByMagicNumber(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	checkLen := 512
	if len(content) < checkLen {
		checkLen = len(content)
	}
	sample := content[:checkLen]

	// Common binary file signatures (magic numbers)
	if bytes.HasPrefix(sample, []byte{0x1F, 0x8B}) {
		return true // gzip
	}
	if bytes.HasPrefix(sample, []byte{0x50, 0x4B, 0x03, 0x04}) ||
		bytes.HasPrefix(sample, []byte{0x50, 0x4B, 0x05, 0x06}) {
		return true // ZIP
	}
	if bytes.HasPrefix(sample, []byte{0x89, 0x50, 0x4E, 0x47}) {
		return true // PNG
	}
	if bytes.HasPrefix(sample, []byte{0xFF, 0xD8, 0xFF}) {
		return true // JPEG
	}
	if bytes.HasPrefix(sample, []byte{0x47, 0x49, 0x46, 0x38}) {
		return true // GIF
	}
	if bytes.HasPrefix(sample, []byte{0x25, 0x50, 0x44, 0x46}) {
		return true // PDF
	}
	if bytes.HasPrefix(sample, []byte{0x7F, 0x45, 0x4C, 0x46}) {
		return true // ELF (Linux executable)
	}
	if bytes.HasPrefix(sample, []byte{0x4D, 0x5A}) {
		return true // DOS/Windows executable
	}
	if bytes.HasPrefix(sample, []byte{0xCA, 0xFE, 0xBA, 0xBE}) {
		return true // Mach-O (macOS executable)
	}

	// Heuristic: null bytes and a high proportion of non-printable
	// characters indicate binary content
	nullBytes := 0
	nonPrintable := 0

	for _, b := range sample {
		if b == 0 {
			nullBytes++
		}
		// Bytes that are not printable ASCII and not common whitespace.
		// High bytes (>= 0x80) are not counted to avoid false positives
		// on UTF-8 text.
		if b < 0x20 && b != 0x09 && b != 0x0A && b != 0x0D {
			nonPrintable++
		}
	}

	// If more than 1% null bytes, very likely binary
	if nullBytes > len(sample)/100 {
		return true
	}

	// If more than 30% non-printable characters, likely binary
	if nonPrintable > len(sample)*30/100 {
		return true
	}

	return false
}

// IsBinary combines extension and magic number checks for robust detection
func (bd *BinaryDetector) IsBinary(path string, content []byte) bool {
	if bd.IsBinaryByExtension(path) {
		return true
	}

	if len(content) > 0 {
		return bd.IsBinaryByMagicNumber(content)
	}

	return false
}
