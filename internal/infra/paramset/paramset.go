// Where: internal/infra/paramset/paramset.go
// What: Discovery of tracking parameter-set files.
// Why: Parameter sets live as *.properties files next to the host install.
package paramset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magiconair/properties"
	"github.com/optofluidics/ofbatch/internal/meta"
)

var errDirRequired = errors.New("parameter set directory is not configured")

// Set is one parameter-set file.
type Set struct {
	Name     string
	Path     string
	Comments string
}

// List returns the parameter sets found directly inside dir, sorted by name.
// Files that fail to parse as properties are skipped.
func List(dir string) ([]Set, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errDirRequired
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read parameter set dir: %w", err)
	}

	sets := make([]Set, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), meta.ParameterSetExt) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		props, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			continue
		}
		sets = append(sets, Set{
			Name:     entry.Name(),
			Path:     path,
			Comments: strings.TrimSpace(props.GetString(meta.ParameterCommentKey, "")),
		})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })
	return sets, nil
}

// Label renders a set for selection menus.
func (s Set) Label() string {
	if s.Comments == "" {
		return s.Name
	}
	return s.Name + ": " + firstLine(s.Comments)
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}
