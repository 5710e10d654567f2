package detection

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/region-locator-mcp/internal/logger"
)

func TestLocate_AllBackground(t *testing.T) {
	img := uniformImage(100, 100, 0, 0, 0)

	res, err := NewLocator(DefaultThreshold, nil).Locate(img)

	require.ErrorIs(t, err, ErrNoRegion)
	require.NotNil(t, res, "partial result is returned with ErrNoRegion")
	assert.True(t, res.Degenerate)
	assert.Zero(t, res.Components)
	assert.Equal(t, Rectangle{}, res.Region)
	requireShape(t, res.Mask, 100, 100)
}

func TestLocate_ShapeMismatch(t *testing.T) {
	img := NewRGBImage(10, 10)
	img.Blue[3] = img.Blue[3][:9]

	res, err := NewLocator(DefaultThreshold, nil).Locate(img)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.False(t, errors.Is(err, ErrNoRegion))
}

func TestLocate_CodePattern(t *testing.T) {
	img := codeImage(120, 120, 40, 40, 40, 4)

	res, err := NewLocator(DefaultThreshold, nil).Locate(img)

	require.NoError(t, err)
	assert.False(t, res.Degenerate)
	assert.GreaterOrEqual(t, res.Components, 1)

	// The smoothing window spreads the response a few pixels past the
	// pattern, so allow some slack around the 40..79 block.
	assert.InDelta(t, 38, res.Region.X, 6)
	assert.InDelta(t, 38, res.Region.Y, 6)
	assert.InDelta(t, 81, res.Last.X, 6)
	assert.InDelta(t, 81, res.Last.Y, 6)

	assert.Equal(t, res.Raw.Width+MarginWidth, res.Region.Width)
	assert.Equal(t, res.Raw.Height+MarginHeight, res.Region.Height)
	assert.Equal(t, res.First.X, res.Raw.X)
	assert.Equal(t, res.Last.Y-res.First.Y, res.Raw.Height)
}

func TestLocate_PicksLargestPattern(t *testing.T) {
	img := codeImage(200, 120, 120, 30, 50, 5)
	// A smaller pattern to the left, found first in raster order.
	for y := 10; y < 26; y++ {
		for x := 10; x < 26; x++ {
			if ((x-10)/4+(y-10)/4)%2 == 0 {
				img.SetRGB(x, y, 0, 0, 0)
			}
		}
	}

	res, err := NewLocator(DefaultThreshold, nil).Locate(img)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Components, 2)
	assert.Greater(t, res.Region.X, 100, "region must be the large pattern")
	assert.Zero(t, res.Mask.At(18, 18), "small pattern is removed from the mask")
}

func TestLocate_KeepStagesPreservesShape(t *testing.T) {
	img := codeImage(64, 48, 16, 10, 24, 3)

	l := NewLocator(DefaultThreshold, nil)
	l.KeepStages = true
	res, err := l.Locate(img)
	require.NoError(t, err)
	require.NotNil(t, res.Stages)

	for _, name := range StageNames {
		g, err := res.Stages.Float(name)
		require.NoError(t, err, name)
		requireShape(t, g, 64, 48)
	}
	assert.Same(t, res.Mask, res.Stages.Dilated)

	_, err = res.Stages.Float("edges")
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestLocate_StagesOmittedByDefault(t *testing.T) {
	res, err := NewLocator(DefaultThreshold, nil).Locate(codeImage(40, 40, 10, 10, 20, 2))
	require.NoError(t, err)
	assert.Nil(t, res.Stages)
}

func TestLocate_HighThresholdFindsNothing(t *testing.T) {
	img := codeImage(60, 60, 20, 20, 20, 2)

	_, err := NewLocator(100000, nil).Locate(img)

	assert.ErrorIs(t, err, ErrNoRegion)
}

func TestLocate_LogsFlatImageWarning(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.WarnLevel)

	_, err := NewLocator(DefaultThreshold, log).Locate(uniformImage(20, 20, 9, 9, 9))

	require.ErrorIs(t, err, ErrNoRegion)
	assert.Contains(t, buf.String(), "single luminance value")
	assert.Contains(t, buf.String(), `"component":"detection"`)
}

func TestLocate_ConcurrentRunsAreIndependent(t *testing.T) {
	l := NewLocator(DefaultThreshold, nil)
	want, err := l.Locate(codeImage(80, 80, 20, 20, 30, 3))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Rectangle, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := l.Locate(codeImage(80, 80, 20, 20, 30, 3))
			errs[i] = err
			if err == nil {
				results[i] = res.Region
			}
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want.Region, results[i])
	}
}
