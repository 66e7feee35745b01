package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Metadata describes the exported model: tensor shapes, class labels and the
// square input resolution the image is resized to before inference.
type Metadata struct {
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
}

func LoadMetadata(path string) (Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read metadata: %w", err)
	}

	var metadata Metadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}

	if metadata.ImageSize <= 0 {
		return Metadata{}, fmt.Errorf("metadata image_size must be positive, got %d", metadata.ImageSize)
	}
	if len(metadata.InputShape) == 0 || len(metadata.OutputShape) == 0 {
		return Metadata{}, fmt.Errorf("metadata is missing input_shape or output_shape")
	}

	return metadata, nil
}
