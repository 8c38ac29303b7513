package dataset

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for Load
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// unknownLabel marks files whose name carries no recognizable label.
const unknownLabel = "unknown"

// Options tunes directory loading. The zero value is usable.
type Options struct {
	// Label, when non-empty, overrides every instance's label.
	Label string

	// DirIsLabel labels every instance with the directory's base name.
	// Ignored when Label is set.
	DirIsLabel bool

	// Edge is the square edge images are rescaled to; <= 0 means
	// DefaultEdge.
	Edge int

	// Workers bounds concurrent decodes; <= 0 means GOMAXPROCS.
	Workers int
}

// Dataset is an ordered collection of instances.
type Dataset struct {
	instances []*Instance
}

// Load reads every .jpg/.jpeg/.png file in dir (or the single file dir
// names) and decodes them concurrently. Instance order follows the sorted
// file order, independent of decode completion order.
//
// Errors:
//   - ErrNoImages when nothing decodable is present.
//   - ErrBadImage (wrapped with the file name) on a corrupt file.
func Load(dir string, opts Options) (*Dataset, error) {
	files, err := listImageFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoImages)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	instances := make([]*Instance, len(files))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			inst, err := loadOne(path, dir, opts)
			if err != nil {
				return err
			}
			instances[i] = inst
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dataset{instances: instances}, nil
}

// loadOne decodes a single file into an Instance.
func loadOne(path, dir string, opts Options) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrBadImage, err)
	}

	name := filepath.Base(path)
	return FromImage(name, resolveLabel(name, dir, opts), img, opts.Edge), nil
}

// resolveLabel applies the labeling precedence: explicit override, then
// directory name, then the filename prefix before "_image".
func resolveLabel(name, dir string, opts Options) string {
	if opts.Label != "" {
		return opts.Label
	}
	if opts.DirIsLabel {
		return filepath.Base(dir)
	}
	if i := strings.Index(name, "_image"); i > 0 {
		return name[:i]
	}

	return unknownLabel
}

// listImageFiles returns the sorted image paths under dir, or dir itself
// when it names a single file.
func listImageFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{dir}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".jpg", ".jpeg", ".png":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}

// Size returns the number of instances.
func (d *Dataset) Size() int { return len(d.instances) }

// Instances exposes the ordered instance list.
func (d *Dataset) Instances() []*Instance { return d.instances }

// Labels returns the distinct labels in sorted order. The index of a label
// in this slice is its category index for classification.
func (d *Dataset) Labels() []string {
	seen := make(map[string]struct{})
	for _, inst := range d.instances {
		seen[inst.Label] = struct{}{}
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	return labels
}

// Merge appends another dataset's instances, preserving both orders.
func (d *Dataset) Merge(other *Dataset) {
	d.instances = append(d.instances, other.instances...)
}
