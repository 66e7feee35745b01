package model

import (
	"fmt"
	"image"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Server runs the classifier through a single ONNX session. The input and
// output tensors are allocated once and reused, so Predict is serialized
// with a mutex.
type Server struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	Metadata     Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

func NewServer(modelPath, metadataPath string) (*Server, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	inputShape := ort.NewShape(metadata.InputShape...)
	outputShape := ort.NewShape(metadata.OutputShape...)

	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &Server{
		session:      session,
		Metadata:     metadata,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Predict resizes and normalizes the image, runs inference and returns the
// argmax class index. The index is an int32 on the tensor side and is
// widened here so callers only ever see one integer type.
func (s *Server) Predict(img image.Image) (int64, error) {
	inputData := preprocess(img, s.Metadata.ImageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	tensorData := s.inputTensor.GetData()
	if len(tensorData) != len(inputData) {
		return 0, fmt.Errorf("input tensor holds %d values, preprocessing produced %d", len(tensorData), len(inputData))
	}
	copy(tensorData, inputData)

	if err := s.session.Run(); err != nil {
		return 0, fmt.Errorf("inference failed: %w", err)
	}

	outputData := s.outputTensor.GetData()
	if len(outputData) == 0 {
		return 0, fmt.Errorf("model produced an empty output tensor")
	}

	maxIdx := int32(0)
	maxVal := outputData[0]
	for i, val := range outputData {
		if val > maxVal {
			maxVal = val
			maxIdx = int32(i)
		}
	}

	return int64(maxIdx), nil
}

// ClassName returns the label for a class index, or "" when the metadata
// carries no label for it.
func (s *Server) ClassName(idx int64) string {
	if idx < 0 || idx >= int64(len(s.Metadata.Classes)) {
		return ""
	}
	return s.Metadata.Classes[idx]
}

func (s *Server) Close() {
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
	}
	if s.session != nil {
		s.session.Destroy()
	}
	ort.DestroyEnvironment()
}
