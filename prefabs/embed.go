package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml levels/*.yaml
var PrefabsFS embed.FS

// Load reads a prefab by name. A file at that exact path on disk wins, then
// prefabs/<name> relative to the working directory, then the embedded copy.
func Load(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil && name != "" {
		return data, nil
	}
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	if info, err := os.Stat(name); err == nil {
		return info.ModTime(), true
	}
	info, err := os.Stat(diskPrefabPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
