package queue

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BatchEntry is one entry of a YAML batch file. A bare URL string and a
// mapping with overrides are both accepted:
//
//	items:
//	  - url: https://example.com/watch?v=a
//	    quality: 720p
//	  - url: https://example.com/watch?v=b
//	    audio_only: true
type BatchEntry struct {
	URL           string `yaml:"url"`
	Quality       string `yaml:"quality"`
	Container     string `yaml:"container"`
	AudioOnly     bool   `yaml:"audio_only"`
	PlaylistItems string `yaml:"playlist_items"`
}

// UnmarshalYAML accepts either a mapping or a bare URL scalar
func (e *BatchEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.URL = value.Value
		return nil
	}
	type plain BatchEntry
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = BatchEntry(p)
	return nil
}

// batchFile is the top-level document shape
type batchFile struct {
	Items []BatchEntry `yaml:"items"`
}

// LoadBatch reads a YAML batch file and enqueues every entry. Returns the
// number of items added.
func (q *Queue) LoadBatch(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read batch file: %w", err)
	}

	var doc batchFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("parse batch file %q: %w", path, err)
	}

	added := 0
	for _, entry := range doc.Items {
		if entry.URL == "" {
			continue
		}
		q.Enqueue(entry.URL, Overrides{
			Quality:       entry.Quality,
			Container:     entry.Container,
			AudioOnly:     entry.AudioOnly,
			PlaylistItems: entry.PlaylistItems,
		})
		added++
	}
	return added, nil
}
