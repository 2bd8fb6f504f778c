package utils

import (
	"path/filepath"
	"strings"
)

// IsNetworkDrive detects if a directory path is on a network-mounted drive
func IsNetworkDrive(dirPath string) bool {
	// Check Windows UNC paths first, before converting to absolute path
	if strings.HasPrefix(dirPath, "//") || strings.HasPrefix(dirPath, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return false
	}

	// Common network mount prefixes on different platforms
	networkPrefixes := []string{
		"/mnt/",     // Linux NFS/SMB mounts
		"/media/",   // Linux removable/network media
		"/Volumes/", // macOS network volumes
	}

	// Compare with a trailing separator so "/mnt" itself counts too
	withSlash := filepath.ToSlash(absPath) + "/"
	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(withSlash, prefix) {
			return true
		}
	}

	// Network filesystem indicators as whole path components
	networkIndicators := map[string]bool{
		"nfs": true, "cifs": true, "smb": true, "webdav": true, "ftp": true, "sftp": true,
	}

	for _, part := range strings.Split(strings.ToLower(filepath.ToSlash(absPath)), "/") {
		if networkIndicators[part] {
			return true
		}
	}

	return false
}
