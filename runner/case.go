package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNoCases = errors.New("runner: case file holds no cases")

// Case is one solver invocation read from a case file.
type Case struct {
	Name    string    `yaml:"name"`
	Problem string    `yaml:"problem"`
	Args    yaml.Node `yaml:"args"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadFile reads the cases of a YAML case file.
func LoadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open case file: %w", err)
	}
	defer f.Close()

	cases, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

func Load(r io.Reader) ([]Case, error) {
	var file caseFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCases
		}
		return nil, fmt.Errorf("decode case file: %w", err)
	}
	if len(file.Cases) == 0 {
		return nil, ErrNoCases
	}

	for i := range file.Cases {
		if file.Cases[i].Name == "" {
			file.Cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return file.Cases, nil
}
