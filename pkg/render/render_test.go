package render

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/matzehuels/artsign/pkg/errors"
)

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png", "pdf"}); err != nil {
		t.Errorf("ValidateFormats() error = %v", err)
	}
	if err := ValidateFormats([]string{"svg", "gif"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormats(gif) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestConvertSVGPassthrough(t *testing.T) {
	in := []byte("<svg/>")
	out, err := Convert(context.Background(), in, FormatSVG, 1)
	if err != nil || !bytes.Equal(out, in) {
		t.Errorf("Convert(svg) = %q, %v", out, err)
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	if _, err := Convert(context.Background(), nil, "bmp", 1); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Convert(bmp) error = %v", err)
	}
}

func TestToPNGRejectsScale(t *testing.T) {
	if _, err := ToPNG(context.Background(), []byte("<svg/>"), 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ToPNG(scale=0) error = %v", err)
	}
}

func TestMissingRsvgConvert(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeHostUnavailable) {
		t.Errorf("ToPDF() error = %v, want %s", err, errors.ErrCodeHostUnavailable)
	}
}

func TestToPNG(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)
	png, err := ToPNG(context.Background(), svg, 1)
	if err != nil {
		t.Fatalf("ToPNG() error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("ToPNG() did not return a PNG")
	}
}
