package config

import (
	"os"
	"path/filepath"
)

// DefaultPath is the file Resolve reads when neither a path nor
// $HEXDRAG_CONFIG is given: HexDrag/hexdrag.yaml under the user config
// directory, or under ~/.config when the OS reports none.
func DefaultPath() string {
	root, _ := os.UserConfigDir()
	if root == "" {
		if home, _ := os.UserHomeDir(); home != "" {
			root = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(root, "HexDrag", "hexdrag.yaml")
}

// implicitPath prefers $HEXDRAG_CONFIG over DefaultPath.
func implicitPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath()
}
