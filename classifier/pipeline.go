package classifier

import (
	"bytes"
	"fmt"
	"image"

	// Registered decoders: uploads arrive as whatever the browser had.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/Tufail-188/SkinAI-Hub/models"
)

// DefaultInputSize matches the reference skin-lesion model.
const DefaultInputSize = 28

// Pipeline normalizes uploaded image bytes and resolves the scorer's output
// through the label catalog. The scorer is read-only after load, so one
// pipeline serves all requests without locking.
type Pipeline struct {
	scorer    Scorer
	inputSize int
}

// NewPipeline wraps the scorer. A nil scorer is allowed so the service can
// start without an artifact; every Classify call then reports
// ErrClassifierUnavailable instead of crashing.
func NewPipeline(scorer Scorer, inputSize int) *Pipeline {
	if inputSize <= 0 {
		inputSize = DefaultInputSize
	}
	return &Pipeline{scorer: scorer, inputSize: inputSize}
}

// Available reports whether a classifier artifact is loaded.
func (p *Pipeline) Available() bool {
	return p.scorer != nil
}

// Classify decodes the upload, normalizes it to the model's input
// representation and returns the arg-max label with its advisory. The max
// score is reported as-is; no renormalization is applied.
func (p *Pipeline) Classify(data []byte) (*models.ClassificationResult, error) {
	if !p.Available() {
		return nil, models.ErrClassifierUnavailable
	}
	if len(data) == 0 {
		return nil, models.ErrEmptyUpload
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrDecode, err)
	}

	input := p.normalize(img)
	scores := p.scorer.Score(input)
	if len(scores) == 0 {
		return nil, fmt.Errorf("classifier returned no scores")
	}

	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}

	label := fmt.Sprintf("class %d", best)
	if best < len(ClassNames) {
		label = ClassNames[best]
	}

	return &models.ClassificationResult{
		Label:      label,
		Confidence: float64(scores[best]),
		Advisory:   AdvisoryFor(label),
	}, nil
}

// normalize converts any color mode to a fixed 3-channel representation:
// bilinear resize to inputSize x inputSize, channel values scaled to [0,1].
func (p *Pipeline) normalize(img image.Image) []float32 {
	resized := image.NewRGBA(image.Rect(0, 0, p.inputSize, p.inputSize))
	xdraw.BiLinear.Scale(resized, resized.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	input := make([]float32, 0, p.inputSize*p.inputSize*3)
	for y := 0; y < p.inputSize; y++ {
		for x := 0; x < p.inputSize; x++ {
			off := resized.PixOffset(x, y)
			r := resized.Pix[off]
			g := resized.Pix[off+1]
			b := resized.Pix[off+2]
			input = append(input, float32(r)/255.0, float32(g)/255.0, float32(b)/255.0)
		}
	}
	return input
}
