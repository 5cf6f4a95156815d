package models

// Advisory pairs a lesion description with care guidance for one label.
type Advisory struct {
	Description string `json:"description"`
	Care        string `json:"care"`
}

// ClassificationResult is returned to the caller and never persisted.
type ClassificationResult struct {
	Label      string   `json:"label"`
	Confidence float64  `json:"confidence"`
	Advisory   Advisory `json:"advisory"`
}
