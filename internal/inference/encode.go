package inference

import (
	"fmt"

	"medscan/internal/domain"
)

// heartInputFields is the submission order of the 11 raw heart_attack
// parameters.
var heartInputFields = []string{
	"Age", "Sex", "ChestPainType", "RestingBP", "Cholesterol", "FastingBS",
	"RestingECG", "MaxHR", "ExerciseAngina", "Oldpeak", "ST_Slope",
}

// heartFeatureColumns is the fixed training-time feature layout of the
// heart_attack classifier. Categorical fields are dummy-encoded; columns for
// the reference category of each group (Sex_F, ChestPainType_ASY,
// RestingECG_LVH, ExerciseAngina_N, ST_Slope_Down) were dropped during
// training and are never emitted.
var heartFeatureColumns = []string{
	"Age", "RestingBP", "Cholesterol", "FastingBS", "MaxHR", "Oldpeak",
	"Sex_M", "ChestPainType_ATA", "ChestPainType_NAP", "ChestPainType_TA",
	"RestingECG_Normal", "RestingECG_ST", "ExerciseAngina_Y",
	"ST_Slope_Flat", "ST_Slope_Up",
}

// EncodeHeart dummy-encodes an 11-parameter heart_attack request against the
// fixed 15-column layout. Numeric parameters keep their value under the
// field name; a categorical value v in field f sets column "f_v" to 1.
// Columns absent from the encoding default to 0, and columns outside the
// layout are discarded.
func EncodeHeart(params []domain.Param) ([]float32, error) {
	if len(params) != len(heartInputFields) {
		return nil, fmt.Errorf("expected %d parameters, got %d", len(heartInputFields), len(params))
	}

	cols := make(map[string]float32, len(params))
	for i, p := range params {
		name := heartInputFields[i]
		if p.Kind == domain.ParamNumber {
			cols[name] = float32(p.Number)
		} else {
			cols[name+"_"+p.Category] = 1
		}
	}

	out := make([]float32, len(heartFeatureColumns))
	for i, c := range heartFeatureColumns {
		out[i] = cols[c]
	}
	return out, nil
}

// NumericVector converts a parameter list into a flat numeric feature vector.
// Used by the diabetes model, which takes its parameters directly.
func NumericVector(params []domain.Param) ([]float32, error) {
	out := make([]float32, len(params))
	for i, p := range params {
		if p.Kind != domain.ParamNumber {
			return nil, fmt.Errorf("parameter %d is not numeric: %q", i, p.Category)
		}
		out[i] = float32(p.Number)
	}
	return out, nil
}
