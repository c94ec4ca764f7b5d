// Package inference implements the stateless HTTP inference service: four
// ONNX-backed classifiers exposed behind /predict_image and /predict_params
// endpoints.
package inference

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Predictor runs one loaded classifier over a flat input tensor and returns
// the per-class output distribution. Implementations must be safe for
// concurrent use: model weights are read-only after load.
type Predictor interface {
	Predict(input []float32, shape []int64) ([]float32, error)
}

var (
	ortInitOnce sync.Once
	ortInitErr  error
)

// InitRuntime initializes the shared onnxruntime environment. libPath may be
// empty to use the library from the default search path.
func InitRuntime(libPath string) error {
	ortInitOnce.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		ortInitErr = ort.InitializeEnvironment()
	})
	return ortInitErr
}

// DestroyRuntime tears down the onnxruntime environment. Call on shutdown
// after all models are closed.
func DestroyRuntime() {
	ort.DestroyEnvironment()
}

// ONNXModel is a Predictor backed by an onnxruntime session.
type ONNXModel struct {
	session *ort.DynamicAdvancedSession
	classes int
}

// LoadONNXModel opens the model file with the given graph input/output names.
// classes is the length of the output distribution.
func LoadONNXModel(path, inputName, outputName string, classes int) (*ONNXModel, error) {
	session, err := ort.NewDynamicAdvancedSession(path, []string{inputName}, []string{outputName}, nil)
	if err != nil {
		return nil, fmt.Errorf("create session for %s: %w", path, err)
	}
	return &ONNXModel{session: session, classes: classes}, nil
}

func (m *ONNXModel) Predict(input []float32, shape []int64) ([]float32, error) {
	inT, err := ort.NewTensor(ort.NewShape(shape...), input)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer inT.Destroy()

	outT, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(m.classes)))
	if err != nil {
		return nil, fmt.Errorf("create output tensor: %w", err)
	}
	defer outT.Destroy()

	if err := m.session.Run([]ort.Value{inT}, []ort.Value{outT}); err != nil {
		return nil, fmt.Errorf("session run: %w", err)
	}

	out := make([]float32, m.classes)
	copy(out, outT.GetData())
	return out, nil
}

func (m *ONNXModel) Close() error {
	return m.session.Destroy()
}
