// Package diag records fatal imaging support failures to a log file before
// they terminate the program.
package diag

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	storeimg "github.com/ironsheep/store-art/internal/imaging"
)

const timeLayout = "2006-01-02 15:04:05"

// lineFormatter writes "[YYYY-MM-DD HH:MM:SS] message" lines.
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("[%s] %s\n", e.Time.Format(timeLayout), e.Message)), nil
}

// Guard runs check and, if it fails, writes one timestamped line describing
// the failure to logPath before returning the error unchanged. The log file
// is replaced on each failure. Failing to write the log is reported on log
// and does not mask the original error.
func Guard(logPath string, log logrus.FieldLogger, check func() error) error {
	err := check()
	if err == nil {
		return nil
	}

	f, ferr := os.Create(logPath)
	if ferr != nil {
		log.WithError(ferr).WithField("path", logPath).Warn("could not write diagnostic log")
		return err
	}
	defer f.Close()

	fileLog := logrus.New()
	fileLog.SetOutput(f)
	fileLog.SetFormatter(lineFormatter{})
	fileLog.Errorf("Failed to load imaging support: %v", err)

	return err
}

// ImagingSupport verifies that the codecs store-art depends on are usable by
// round-tripping a 1x1 image through JPEG, the screenshot format, and PNG,
// the feature graphic format.
func ImagingSupport() error {
	px := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	px.Set(0, 0, color.NRGBA{R: 255, A: 255})

	for _, format := range []imaging.Format{imaging.JPEG, imaging.PNG} {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, px, format); err != nil {
			return &storeimg.CapabilityError{Err: errors.Wrapf(err, "%s encoder", format)}
		}
		if _, _, err := image.Decode(&buf); err != nil {
			return &storeimg.CapabilityError{Err: errors.Wrapf(err, "%s decoder", format)}
		}
	}
	return nil
}
