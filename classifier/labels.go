package classifier

import "github.com/Tufail-188/SkinAI-Hub/models"

// ClassNames is the fixed label set, indexed by classifier output position.
// The order must match the artifact the model was trained with.
var ClassNames = []string{
	"Actinic keratoses",
	"Basal cell carcinoma",
	"Benign keratosis-like lesions",
	"Dermatofibroma",
	"Melanocytic nevi",
	"Vascular lesions",
	"Melanoma",
}

var diseaseInfo = map[string]models.Advisory{
	"Actinic keratoses": {
		Description: "Rough, scaly patches caused by long-term sun exposure.",
		Care:        "Use sunscreen daily and have the patches checked by a dermatologist.",
	},
	"Basal cell carcinoma": {
		Description: "Basal cell carcinoma is a common, slow-growing skin cancer.",
		Care:        "Seek medical evaluation; early treatment has excellent outcomes.",
	},
	"Benign keratosis-like lesions": {
		Description: "Non-cancerous growths such as seborrheic keratoses.",
		Care:        "Monitoring is enough; see a doctor if the lesion changes.",
	},
	"Dermatofibroma": {
		Description: "Harmless fibrous growth, usually on the legs.",
		Care:        "Remove if painful or bothersome, otherwise no treatment needed.",
	},
	"Melanocytic nevi": {
		Description: "Normal moles formed by clusters of pigment cells.",
		Care:        "Check regularly for ABCDE changes (asymmetry, border, color, diameter, evolution).",
	},
	"Vascular lesions": {
		Description: "Abnormal blood vessels in or under the skin.",
		Care:        "Monitor for bleeding or rapid growth and consult a doctor if either occurs.",
	},
	"Melanoma": {
		Description: "Serious skin cancer arising from pigment cells.",
		Care:        "Seek urgent care from a dermatologist.",
	},
}

// AdvisoryFor resolves a label to its advisory. Unknown labels fall back to
// a sentinel advisory instead of failing the request.
func AdvisoryFor(label string) models.Advisory {
	if info, ok := diseaseInfo[label]; ok {
		return info
	}
	return models.Advisory{Description: "No info available", Care: "No care info"}
}
