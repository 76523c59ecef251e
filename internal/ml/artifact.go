package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Artifact file layout: two JSON blobs under the model directory, one for the
// fitted vectorizer and one for the fitted classifier. The format is not
// meant for cross-version portability; a version mismatch triggers a retrain.
const (
	artifactFormatVersion = 1
	vectorizerFileName    = "vectorizer.json"
	classifierFileName    = "classifier.json"
)

type vectorizerArtifact struct {
	FormatVersion int         `json:"format_version"`
	TrainedAt     time.Time   `json:"trained_at"`
	Vectorizer    *Vectorizer `json:"vectorizer"`
}

type classifierArtifact struct {
	FormatVersion int          `json:"format_version"`
	TrainedAt     time.Time    `json:"trained_at"`
	Model         *LinearModel `json:"model"`
}

// ArtifactStore persists and restores the fitted model pair.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates a store rooted at dir.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

// Dir returns the artifact directory.
func (s *ArtifactStore) Dir() string {
	return s.dir
}

// Load deserializes and validates both artifacts. Any failure (missing file,
// corrupt blob, version mismatch, inconsistent shapes) is returned as an
// error so the caller can fall back to retraining.
func (s *ArtifactStore) Load() (*Vectorizer, *LinearModel, time.Time, error) {
	var va vectorizerArtifact
	if err := readJSON(filepath.Join(s.dir, vectorizerFileName), &va); err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("load vectorizer artifact: %w", err)
	}

	var ca classifierArtifact
	if err := readJSON(filepath.Join(s.dir, classifierFileName), &ca); err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("load classifier artifact: %w", err)
	}

	if err := validateArtifacts(&va, &ca); err != nil {
		return nil, nil, time.Time{}, err
	}

	return va.Vectorizer, ca.Model, ca.TrainedAt, nil
}

// Save serializes both artifacts, creating the directory if needed.
func (s *ArtifactStore) Save(v *Vectorizer, m *LinearModel, trainedAt time.Time) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create model dir %s: %w", s.dir, err)
	}

	va := vectorizerArtifact{FormatVersion: artifactFormatVersion, TrainedAt: trainedAt, Vectorizer: v}
	if err := writeJSON(filepath.Join(s.dir, vectorizerFileName), &va); err != nil {
		return fmt.Errorf("save vectorizer artifact: %w", err)
	}

	ca := classifierArtifact{FormatVersion: artifactFormatVersion, TrainedAt: trainedAt, Model: m}
	if err := writeJSON(filepath.Join(s.dir, classifierFileName), &ca); err != nil {
		return fmt.Errorf("save classifier artifact: %w", err)
	}

	return nil
}

func validateArtifacts(va *vectorizerArtifact, ca *classifierArtifact) error {
	if va.FormatVersion != artifactFormatVersion || ca.FormatVersion != artifactFormatVersion {
		return fmt.Errorf("artifact format version mismatch: vectorizer=%d classifier=%d want %d",
			va.FormatVersion, ca.FormatVersion, artifactFormatVersion)
	}
	if va.Vectorizer == nil || len(va.Vectorizer.Vocabulary) == 0 {
		return fmt.Errorf("vectorizer artifact has empty vocabulary")
	}
	if len(va.Vectorizer.IDF) != len(va.Vectorizer.Vocabulary) {
		return fmt.Errorf("vectorizer artifact idf/vocabulary size mismatch: %d vs %d",
			len(va.Vectorizer.IDF), len(va.Vectorizer.Vocabulary))
	}
	if ca.Model == nil || len(ca.Model.Classes) == 0 {
		return fmt.Errorf("classifier artifact has no classes")
	}
	if len(ca.Model.Weights) != len(ca.Model.Classes) || len(ca.Model.Intercept) != len(ca.Model.Classes) {
		return fmt.Errorf("classifier artifact weight shape mismatch")
	}
	features := va.Vectorizer.Features()
	for _, w := range ca.Model.Weights {
		if len(w) != features {
			return fmt.Errorf("classifier artifact feature count %d does not match vectorizer %d",
				len(w), features)
		}
	}
	return nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeJSON(path string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	return nil
}
