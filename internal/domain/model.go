package domain

// ModelID selects both the target classifier and the validation schema
// applied to user input before it is forwarded.
type ModelID string

const (
	ModelNone        ModelID = ""
	ModelBrainTumor  ModelID = "brain_tumor"
	ModelPneumonia   ModelID = "pneumonia"
	ModelHeartAttack ModelID = "heart_attack"
	ModelDiabetes    ModelID = "diabetes"
)

// AllModels lists the selectable models in menu order.
var AllModels = []ModelID{ModelBrainTumor, ModelPneumonia, ModelHeartAttack, ModelDiabetes}

var modelLabels = map[ModelID][]string{
	ModelBrainTumor:  {"no_tumor", "glioma_tumor", "meningioma_tumor", "pituitary_tumor"},
	ModelPneumonia:   {"normal", "pneumonia"},
	ModelHeartAttack: {"normal", "risk"},
	ModelDiabetes:    {"normal", "risk"},
}

var modelTitles = map[ModelID]string{
	ModelBrainTumor:  "Brain Tumor",
	ModelPneumonia:   "Pneumonia",
	ModelHeartAttack: "Heart Attack",
	ModelDiabetes:    "Diabetes",
}

// ParseModelID maps a raw identifier (e.g. a callback payload or URL segment)
// to a known model.
func ParseModelID(s string) (ModelID, bool) {
	m := ModelID(s)
	if _, ok := modelLabels[m]; !ok {
		return ModelNone, false
	}
	return m, true
}

// IsImage reports whether the model consumes an image payload.
func (m ModelID) IsImage() bool {
	return m == ModelBrainTumor || m == ModelPneumonia
}

// IsParametric reports whether the model consumes a comma-separated
// parameter list.
func (m ModelID) IsParametric() bool {
	return m == ModelHeartAttack || m == ModelDiabetes
}

// Labels returns the model's class labels in output order.
func (m ModelID) Labels() []string {
	return modelLabels[m]
}

// Title returns the human-readable model name shown on menu buttons.
func (m ModelID) Title() string {
	return modelTitles[m]
}
