package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads a reference-data snapshot from a YAML file. Sections may be
// omitted; missing tables merge as empty.
func LoadYAML(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, eris.Wrapf(err, "registry: read snapshot %s", path)
	}

	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, eris.Wrapf(err, "registry: parse snapshot %s", path)
	}
	return s, nil
}
