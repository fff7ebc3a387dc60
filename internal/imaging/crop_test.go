package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestCoverCrop(t *testing.T) {
	img := createPatternImage(200, 100)

	cropped, rect, err := CoverCrop(img, Size{1, 1}, GravityCenter)
	if err != nil {
		t.Fatalf("CoverCrop failed: %v", err)
	}

	if want := image.Rect(50, 0, 150, 100); rect != want {
		t.Errorf("rect: got %v, want %v", rect, want)
	}
	if got := SizeOf(cropped); got != (Size{100, 100}) {
		t.Errorf("dimensions: got %s, want 100x100", got)
	}

	// The left half of the crop comes from the red/blue quadrants and the
	// right half from the green/white ones.
	tests := []struct {
		x, y    int
		r, g, b uint8
	}{
		{10, 10, 255, 0, 0},
		{90, 10, 0, 255, 0},
		{10, 90, 0, 0, 255},
		{90, 90, 255, 255, 255},
	}
	for _, tt := range tests {
		r, g, b, _ := cropped.At(tt.x, tt.y).RGBA()
		if uint8(r>>8) != tt.r || uint8(g>>8) != tt.g || uint8(b>>8) != tt.b {
			t.Errorf("pixel (%d,%d): got (%d,%d,%d), want (%d,%d,%d)",
				tt.x, tt.y, r>>8, g>>8, b>>8, tt.r, tt.g, tt.b)
		}
	}
}

func TestCoverCrop_SubImageOrigin(t *testing.T) {
	img := createPatternImage(200, 100).SubImage(image.Rect(20, 20, 120, 70))

	cropped, rect, err := CoverCrop(img, Size{1, 1}, GravityCenter)
	if err != nil {
		t.Fatalf("CoverCrop failed: %v", err)
	}

	if want := image.Rect(45, 20, 95, 70); rect != want {
		t.Errorf("rect: got %v, want %v", rect, want)
	}
	if got := SizeOf(cropped); got != (Size{50, 50}) {
		t.Errorf("dimensions: got %s, want 50x50", got)
	}
}

func TestCoverCrop_InvalidTarget(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)
	if _, _, err := CoverCrop(img, Size{0, 10}, GravityCenter); err == nil {
		t.Error("CoverCrop should fail for a zero-width target")
	}
}

func TestFit_ExactTargetSize(t *testing.T) {
	sources := []Size{
		{2400, 1080},
		{1080, 2400},
		{1024, 500},
		{640, 640},
		{300, 2000},
		{5000, 200},
		{17, 13},
	}

	for _, src := range sources {
		t.Run(src.String(), func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, src.Width, src.Height))

			out, rect, err := Fit(img, featureSize, FitOptions{})
			if err != nil {
				t.Fatalf("Fit failed: %v", err)
			}
			if got := SizeOf(out); got != featureSize {
				t.Errorf("output: got %s, want %s", got, featureSize)
			}
			if !rect.In(img.Bounds()) {
				t.Errorf("crop %v outside source %v", rect, img.Bounds())
			}
		})
	}
}

func TestFit_Scenarios(t *testing.T) {
	tests := []struct {
		src      Size
		wantRect image.Rectangle
	}{
		{Size{2400, 1080}, image.Rect(94, 0, 2305, 1080)},
		{Size{1080, 2400}, image.Rect(0, 936, 1080, 1463)},
	}

	for _, tt := range tests {
		t.Run(tt.src.String(), func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.src.Width, tt.src.Height))

			out, rect, err := Fit(img, featureSize, FitOptions{Filter: "lanczos"})
			if err != nil {
				t.Fatalf("Fit failed: %v", err)
			}
			if rect != tt.wantRect {
				t.Errorf("crop: got %v, want %v", rect, tt.wantRect)
			}
			if got := SizeOf(out); got != featureSize {
				t.Errorf("output: got %s, want %s", got, featureSize)
			}
		})
	}
}

func TestFit_PreservesSolidColor(t *testing.T) {
	img := createInMemoryImage(300, 200, color.RGBA{200, 40, 10, 255})

	out, _, err := Fit(img, Size{64, 32}, FitOptions{})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	r, g, b, _ := out.At(32, 16).RGBA()
	if !near(uint8(r>>8), 200) || !near(uint8(g>>8), 40) || !near(uint8(b>>8), 10) {
		t.Errorf("center color: got (%d,%d,%d), want about (200,40,10)", r>>8, g>>8, b>>8)
	}
}

func near(got, want uint8) bool {
	d := int(got) - int(want)
	return d >= -1 && d <= 1
}

func TestFit_Filters(t *testing.T) {
	img := createPatternImage(120, 90)

	for _, name := range FilterNames() {
		t.Run(name, func(t *testing.T) {
			out, _, err := Fit(img, Size{40, 20}, FitOptions{Filter: name})
			if err != nil {
				t.Fatalf("Fit(%s) failed: %v", name, err)
			}
			if got := SizeOf(out); got != (Size{40, 20}) {
				t.Errorf("output: got %s, want 40x20", got)
			}
		})
	}
}

func TestFit_UnknownFilter(t *testing.T) {
	img := createPatternImage(20, 20)
	if _, _, err := Fit(img, Size{10, 10}, FitOptions{Filter: "bicubic-ish"}); err == nil {
		t.Error("Fit should fail for an unknown filter")
	}
}

func TestFit_SmartGravity(t *testing.T) {
	// White canvas with a dark, saturated block near the right edge.
	img := image.NewRGBA(image.Rect(0, 0, 300, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 300; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if x >= 220 && x < 280 && y >= 20 && y < 80 {
				c = color.RGBA{200, 30, 30, 255}
			}
			img.Set(x, y, c)
		}
	}

	out, rect, err := Fit(img, Size{50, 50}, FitOptions{Gravity: GravitySmart})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if rect.Dx() != 100 || rect.Dy() != 100 {
		t.Errorf("smart crop size: got %dx%d, want 100x100", rect.Dx(), rect.Dy())
	}
	if !rect.In(img.Bounds()) {
		t.Errorf("smart crop %v outside source", rect)
	}
	if got := SizeOf(out); got != (Size{50, 50}) {
		t.Errorf("output: got %s, want 50x50", got)
	}
}

func TestParseGravity(t *testing.T) {
	tests := []struct {
		in      string
		want    Gravity
		wantErr bool
	}{
		{"", GravityCenter, false},
		{"center", GravityCenter, false},
		{"Smart", GravitySmart, false},
		{"north", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGravity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGravity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGravity(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFilter_Default(t *testing.T) {
	f, err := ParseFilter("")
	if err != nil {
		t.Fatalf("ParseFilter failed: %v", err)
	}
	if f.Support != 3.0 {
		t.Errorf("default filter support: got %v, want Lanczos (3.0)", f.Support)
	}
}
