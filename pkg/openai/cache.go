package openai

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbngrm/anki-video/pkg/hash"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v2"
)

// Cache stores explanation texts on disk, keyed by the sha1 of the query,
// so re-runs of a deck do not re-bill the chat api.
type Cache struct {
	dir   string
	index map[string]struct{}
}

type entry struct {
	Query       string `yaml:"query"`
	Explanation string `yaml:"explanation"`
}

func NewCache(dir string) *Cache {
	return &Cache{
		dir:   dir,
		index: read(dir),
	}
}

func (c *Cache) Lookup(key string) (string, bool) {
	filename := hash.Sha1(key) + ".yaml"
	if _, ok := c.index[filename]; !ok {
		return "", false
	}
	data, err := os.ReadFile(filepath.Join(c.dir, filename))
	if err != nil {
		slog.Error("read cache file", "file", filename, "err", err)
		return "", false
	}
	var e entry
	if err := yaml.Unmarshal(data, &e); err != nil {
		slog.Error("unmarshal cache file", "file", filename, "err", err)
		return "", false
	}
	return e.Explanation, true
}

func (c *Cache) Add(key, val string) {
	data, err := yaml.Marshal(entry{Query: key, Explanation: val})
	if err != nil {
		fmt.Printf("could not marshal cache entry: %v\n", err)
		return
	}
	if err := os.MkdirAll(c.dir, os.ModePerm); err != nil {
		fmt.Printf("could not create cache dir: %v\n", err)
		return
	}
	filename := hash.Sha1(key) + ".yaml"
	if err := os.WriteFile(filepath.Join(c.dir, filename), data, 0644); err != nil {
		fmt.Printf("could not write cache file: %v\n", err)
		return
	}
	c.index[filename] = struct{}{}
}

func read(dir string) map[string]struct{} {
	filenames := make(map[string]struct{})
	files, err := os.ReadDir(dir)
	if err != nil {
		return filenames
	}
	for _, file := range files {
		filenames[file.Name()] = struct{}{}
	}
	return filenames
}
