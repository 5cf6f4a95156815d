package classifier

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tufail-188/SkinAI-Hub/models"
)

type fakeScorer struct {
	scores    []float32
	lastInput []float32
}

func (f *fakeScorer) Score(input []float32) []float32 {
	f.lastInput = input
	return f.scores
}

func grayPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x*7 + y*13) % 256)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestClassifyGrayscalePNG(t *testing.T) {
	scorer := &fakeScorer{scores: []float32{0.01, 0.02, 0.03, 0.04, 0.8, 0.05, 0.05}}
	p := NewPipeline(scorer, 28)

	res, err := p.Classify(grayPNG(t, 10, 10))
	require.NoError(t, err)

	assert.Equal(t, "Melanocytic nevi", res.Label)
	assert.Contains(t, ClassNames, res.Label)
	assert.InDelta(t, 0.8, res.Confidence, 1e-6)
	assert.NotEmpty(t, res.Advisory.Description)
	assert.NotEmpty(t, res.Advisory.Care)
}

func TestClassifyNormalizesAnyColorMode(t *testing.T) {
	scorer := &fakeScorer{scores: []float32{1, 0, 0, 0, 0, 0, 0}}
	p := NewPipeline(scorer, 28)

	_, err := p.Classify(grayPNG(t, 10, 10))
	require.NoError(t, err)

	require.Len(t, scorer.lastInput, 28*28*3)
	for _, v := range scorer.lastInput {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestClassifyRejectsGarbage(t *testing.T) {
	p := NewPipeline(&fakeScorer{scores: []float32{1}}, 28)

	_, err := p.Classify([]byte("definitely not an image"))
	assert.ErrorIs(t, err, models.ErrDecode)
}

func TestClassifyRejectsEmptyUpload(t *testing.T) {
	p := NewPipeline(&fakeScorer{scores: []float32{1}}, 28)

	_, err := p.Classify(nil)
	assert.ErrorIs(t, err, models.ErrEmptyUpload)
}

func TestClassifyWithoutArtifact(t *testing.T) {
	p := NewPipeline(nil, 0)
	assert.False(t, p.Available())

	_, err := p.Classify(grayPNG(t, 10, 10))
	assert.ErrorIs(t, err, models.ErrClassifierUnavailable)
}

func TestAdvisoryFallback(t *testing.T) {
	info := AdvisoryFor("not a known label")
	assert.Equal(t, "No info available", info.Description)
	assert.Equal(t, "No care info", info.Care)

	for _, label := range ClassNames {
		info := AdvisoryFor(label)
		assert.NotEqual(t, "No info available", info.Description, "label %s should have an advisory", label)
	}
}
