package distprobe

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FixtureKind selects how a fixture's output is judged.
type FixtureKind string

const (
	// KindChecks fixtures print "<key> = <0|1>" lines.
	KindChecks FixtureKind = "checks"
	// KindUUID fixtures print a single canonical UUID.
	KindUUID FixtureKind = "uuid"
)

// Fixture describes one installed fixture program and what it must print.
type Fixture struct {
	Name       string      `yaml:"name"`
	Path       string      `yaml:"path"`
	Kind       FixtureKind `yaml:"kind"`
	Idempotent bool        `yaml:"idempotent"`
	Expect     []string    `yaml:"expect"`
	Literal    string      `yaml:"literal"`
}

// Manifest lists the fixtures a harness run covers.
type Manifest struct {
	Namespace string    `yaml:"namespace"`
	Fixtures  []Fixture `yaml:"fixtures"`

	// dir is the directory relative fixture paths are resolved against.
	dir string
}

// LoadManifest reads and validates the manifest at path. Relative fixture
// paths are resolved against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading manifest %s", path)
	}

	m.dir = filepath.Dir(path)

	return m, nil
}

// ParseManifest decodes and validates a YAML manifest. Expected keys are
// qualified with the manifest namespace.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "decoding manifest")
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	for i := range m.Fixtures {
		f := &m.Fixtures[i]
		if f.Kind == "" {
			f.Kind = KindChecks
		}
		for j, key := range f.Expect {
			f.Expect[j] = m.qualify(key)
		}
	}

	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Fixtures) == 0 {
		return errors.Wrap(ErrInvalidManifest, "no fixtures listed")
	}

	names := make(map[string]struct{}, len(m.Fixtures))
	for i, f := range m.Fixtures {
		if f.Name == "" {
			return errors.Wrapf(ErrInvalidManifest, "fixture #%d has no name", i+1)
		}
		if _, dup := names[f.Name]; dup {
			return errors.Wrapf(ErrInvalidManifest, "fixture %q listed twice", f.Name)
		}
		names[f.Name] = struct{}{}

		if f.Path == "" {
			return errors.Wrapf(ErrInvalidManifest, "fixture %q has no path", f.Name)
		}

		switch f.Kind {
		case "", KindChecks:
			if len(f.Expect) == 0 {
				return errors.Wrapf(ErrInvalidManifest, "fixture %q expects no keys", f.Name)
			}
		case KindUUID:
			if len(f.Expect) > 0 {
				return errors.Wrapf(ErrInvalidManifest, "uuid fixture %q cannot expect keys", f.Name)
			}
		default:
			return errors.Wrapf(ErrInvalidManifest, "fixture %q has unknown kind %q", f.Name, f.Kind)
		}
	}

	return nil
}

// qualify prefixes key with the manifest namespace unless it already
// carries it.
func (m *Manifest) qualify(key string) string {
	if m.Namespace == "" || strings.HasPrefix(key, m.Namespace+".") {
		return key
	}

	return m.Namespace + "." + key
}

// Lookup returns the fixture with the given name.
func (m *Manifest) Lookup(name string) (Fixture, error) {
	for _, f := range m.Fixtures {
		if f.Name == name {
			return m.resolve(f), nil
		}
	}

	return Fixture{}, errors.Wrapf(ErrUnknownFixture, "%q", name)
}

// Select returns the named fixtures in the given order, or every fixture
// when names is empty.
func (m *Manifest) Select(names ...string) ([]Fixture, error) {
	if len(names) == 0 {
		out := make([]Fixture, 0, len(m.Fixtures))
		for _, f := range m.Fixtures {
			out = append(out, m.resolve(f))
		}

		return out, nil
	}

	out := make([]Fixture, 0, len(names))
	for _, name := range names {
		f, err := m.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

// resolve anchors a relative fixture path to the manifest directory.
func (m *Manifest) resolve(f Fixture) Fixture {
	if m.dir != "" && !filepath.IsAbs(f.Path) {
		f.Path = filepath.Join(m.dir, f.Path)
	}

	return f
}
