package utils

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// FileClass categorizes entries for color styling
type FileClass int

const (
	ClassFile FileClass = iota
	ClassDirectory
	ClassExecutable
	ClassArchive
)

var executableExts = []string{".exe", ".bat", ".cmd", ".ps1", ".com", ".sh", ".bash", ".zsh"}

var archiveExts = []string{
	".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".arc", ".arj", ".lzh",
}

var binaryExts = []string{
	".exe", ".dll", ".so", ".dylib", ".bin", ".dat",
	".png", ".jpg", ".jpeg", ".gif", ".ico", ".webp",
	".mp4", ".avi", ".mov", ".mkv", ".mp3", ".wav",
	".zip", ".tar", ".gz", ".rar", ".7z",
	".pdf", ".doc", ".docx", ".xls", ".xlsx",
}

var codeExts = []string{
	".go", ".js", ".ts", ".jsx", ".tsx", ".py", ".rb", ".java", ".rs",
	".cpp", ".c", ".h", ".cs", ".php", ".swift", ".kt", ".scala",
	".r", ".jl", ".lua", ".dart", ".elm", ".clj", ".ex", ".exs",
}

// Classify returns the display class of an entry
func Classify(name string, isDir bool) FileClass {
	if isDir {
		return ClassDirectory
	}
	ext := strings.ToLower(filepath.Ext(name))
	if Contains(executableExts, ext) {
		return ClassExecutable
	}
	if Contains(archiveExts, ext) {
		return ClassArchive
	}
	return ClassFile
}

// Ext returns the lowercase extension of name without the dot, or an empty
// string when there is none. Used for extension sorting.
func Ext(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// IsBinaryFile returns true if the file is likely binary based on extension
func IsBinaryFile(path string) bool {
	return Contains(binaryExts, strings.ToLower(filepath.Ext(path)))
}

// IsCodeFile returns true if the file is a code file based on extension
func IsCodeFile(name string) bool {
	return Contains(codeExts, strings.ToLower(filepath.Ext(name)))
}

// FormatFileSize formats a file size in bytes to a human-readable string
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// FormatDate formats a modification time for the file list
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// CommandExists checks if a command is available in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// Contains checks if a string slice contains a specific item
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
