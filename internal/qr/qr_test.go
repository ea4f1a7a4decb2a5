package qr_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/highlandco/docgen/internal/qr"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	t.Parallel()

	data, err := qr.PNG("Name: Jane Mwangi\nID: ENG25-1\nTitle: Site Engineer")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 256, img.Bounds().Dx())
	require.Equal(t, 256, img.Bounds().Dy())
}

func TestPNG_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := qr.PNG("https://highland.example")
	require.NoError(t, err)

	second, err := qr.PNG("https://highland.example")
	require.NoError(t, err)

	require.Equal(t, first, second)
}
