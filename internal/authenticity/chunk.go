package authenticity

import (
	"path/filepath"
	"strings"
)

// binaryExtensions lists file extensions excluded from analysis. Everything
// else is treated as text.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".svg": true, ".webp": true,
	".mp4": true, ".mov": true, ".avi": true, ".mkv": true,
	".mp3": true, ".wav": true, ".ogg": true, ".flac": true,
	".pdf": true, ".zip": true, ".tar": true, ".gz": true, ".7z": true,
	".rar": true, ".woff": true, ".woff2": true, ".ttf": true, ".otf": true,
	".eot": true, ".exe": true, ".dll": true,
}

// IsTextPath reports whether a repository path should be analyzed.
func IsTextPath(path string) bool {
	ext := filepath.Ext(strings.ToLower(path))
	return !binaryExtensions[ext]
}

// ChunkText splits text into fixed-size chunks of at most maxChars bytes.
// Empty text yields no chunks.
func ChunkText(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = 6000
	}
	var chunks []string
	for start := 0; start < len(text); start += maxChars {
		end := start + maxChars
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks
}

// CountLines mirrors the stored line metric: newline count plus one for
// non-empty content.
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}
