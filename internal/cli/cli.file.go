package cli

import (
	"fmt"
	"os"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"gopkg.in/yaml.v3"
)

// inspectionFile is the on-disk layout: the record fields, optionally
// preceded by the version tag that export writes. JSON files parse as YAML.
type inspectionFile struct {
	Version                 int `yaml:"version"`
	models.InspectionFields `yaml:",inline"`
}

func readInspectionFile(path string) (models.Inspection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Inspection{}, err
	}
	return parseInspection(data)
}

func parseInspection(data []byte) (models.Inspection, error) {
	var doc inspectionFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return models.Inspection{}, errors.NewMalformedInputError("inspection file does not decode", err)
	}
	if doc.Version < 0 || doc.Version > models.InspectionFormatVersion {
		return models.Inspection{}, errors.NewMalformedInputError(
			fmt.Sprintf("unsupported inspection format version %d", doc.Version), nil)
	}
	return models.NewInspection(doc.InspectionFields)
}
