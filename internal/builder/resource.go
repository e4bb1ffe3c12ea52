package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/scriptsync/cli/internal/errors"
)

// resourceFile is the platform resource manifest written next to every
// code.py.
const resourceFile = "resource.json"

type lastModification struct {
	Actor     string `json:"actor"`
	Timestamp string `json:"timestamp"`
}

type resourceAttributes struct {
	LastModification          lastModification `json:"lastModification"`
	HintScope                 int              `json:"hintScope"`
	LastModificationSignature string           `json:"lastModificationSignature"`
}

type resourceData struct {
	Scope       string             `json:"scope"`
	Version     int                `json:"version"`
	Restricted  bool               `json:"restricted"`
	Overridable bool               `json:"overridable"`
	Files       []string           `json:"files"`
	Attributes  resourceAttributes `json:"attributes"`
}

// newResourceData returns the fixed resource record the platform expects for
// an externally managed script module. The timestamp and signature are
// deliberately static so repeated builds are byte-identical.
func newResourceData() resourceData {
	return resourceData{
		Scope:       "A",
		Version:     1,
		Restricted:  false,
		Overridable: true,
		Files:       []string{CodeFile},
		Attributes: resourceAttributes{
			LastModification: lastModification{
				Actor:     "external",
				Timestamp: "2023-01-01T00:00:00Z",
			},
			HintScope:                 2,
			LastModificationSignature: "b0559c76c17737786bda6d382e91f682211c23721930003c538aeef6a42a577d",
		},
	}
}

// writeResource writes resource.json into dir.
func writeResource(dir string) error {
	data, err := json.MarshalIndent(newResourceData(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling resource data: %w", err)
	}

	p := filepath.Join(dir, resourceFile)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("writing %s", p))
	}
	return nil
}
