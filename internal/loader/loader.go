package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"

	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/listing"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// utf8BOM is written at the start of JSON files by some Windows editors
var utf8BOM = []byte("\xef\xbb\xbf")

// DefaultMaxFileSize caps the size of a job file read from disk or uploaded
const DefaultMaxFileSize = 32 << 20

// Result is a decoded job file
type Result struct {
	Jobs     []models.Job
	Warnings []error // one per posting whose posted time could not be parsed
}

// Decode parses a job file: a JSON array of postings. A file that is not valid JSON, is not an
// array, or holds a malformed posting is rejected as a whole.
func Decode(data []byte, now time.Time) (Result, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !gjson.ValidBytes(data) {
		return Result{}, apperrors.InvalidFile("file is not valid JSON", nil)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return Result{}, apperrors.InvalidFile("expected a JSON array of job postings", nil)
	}

	result := Result{Jobs: []models.Job{}}
	var decodeErr error
	index := 0

	root.ForEach(func(_, elem gjson.Result) bool {
		if !elem.IsObject() {
			decodeErr = apperrors.MalformedRecord(fmt.Sprintf("record %d: expected an object, got %s", index+1, elem.Type), nil)
			return false
		}

		raw, _ := elem.Value().(map[string]interface{})
		job, err := listing.MakeJobRecord(raw, index, now)
		switch {
		case apperrors.IsType(err, apperrors.ErrTypeParse):
			result.Warnings = append(result.Warnings, err)
		case err != nil:
			decodeErr = err
			return false
		}

		result.Jobs = append(result.Jobs, job)
		index++
		return true
	})

	if decodeErr != nil {
		return Result{}, apperrors.InvalidFile("file contains a malformed job posting", decodeErr)
	}
	return result, nil
}

// ReadFile reads a job file from disk, refusing files larger than maxSize.
// With showProgress, a progress bar tracks the read on stderr.
func ReadFile(path string, maxSize int64, showProgress bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat job file: %w", err)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, apperrors.InvalidFile(fmt.Sprintf("%s is %s, the limit is %s",
			path, humanize.Bytes(uint64(info.Size())), humanize.Bytes(uint64(maxSize))), nil)
	}

	var r io.Reader = f
	if showProgress {
		bar := pb.New64(info.Size()).SetTemplate(pb.Full).Set(pb.Bytes, true).SetWriter(os.Stderr)
		bar.Start()
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return data, nil
}
