package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ContentChecksum returns the hex SHA256 of data.
func ContentChecksum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// ObjectName returns a fresh random object name keeping the lowercased extension of the
// uploaded filename. Directory parts of filename never reach the name.
func ObjectName(filename string) string {
	return uuid.NewString() + SafeExt(filename)
}

// SafeExt returns the lowercased extension of filename, or "" when it is unusable in a URL.
func SafeExt(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, `\`, "/"))))
	if len(ext) > 10 || strings.ContainsAny(ext, " ?#%/") {
		return ""
	}

	return ext
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
