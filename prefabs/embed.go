package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Dir is the on-disk prefab directory. Files found there take precedence
// over the embedded copies so specs and scripts can be edited live.
var Dir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var PrefabsFS embed.FS

func Load(name string) ([]byte, error) {
	return read(cleanPrefabPath(name))
}

// LoadScript reads a tengo script by bare name ("drops.tengo") or by any
// path ending in scripts/<name>.
func LoadScript(name string) ([]byte, error) {
	return read(cleanScriptPath(name))
}

func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// ModTime reports the modification time of the on-disk override, if any.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if i := strings.LastIndex(s, "prefabs/"); i >= 0 {
		s = s[i+len("prefabs/"):]
	}
	return s
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}
	return path.Join("scripts", path.Base(filepath.ToSlash(p)))
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
