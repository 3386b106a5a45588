package listing

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/utils"
)

// Field names of a job posting in the input file
const (
	FieldTitle  = "Title"
	FieldPosted = "Posted"
	FieldType   = "Type"
	FieldLevel  = "Level"
	FieldSkill  = "Skill"
	FieldDetail = "Detail"
)

// RawFields is one decoded, still untyped, job posting
type RawFields map[string]any

// namespace for job ids; ids only need to be stable within one load
var jobNamespace = uuid.MustParse("9e2f6b1c-5d1a-4c4e-8f53-2a7b0c3d9e11")

// MakeJobRecord builds a Job from one raw posting at position index in the file.
//
// Title and Posted are required. When Posted cannot be parsed the job is still returned, with an
// unknown posted time, together with the parse error so the caller can report it.
func MakeJobRecord(raw RawFields, index int, now time.Time) (models.Job, error) {
	title, err := requiredString(raw, FieldTitle, index)
	if err != nil {
		return models.Job{}, err
	}
	posted, err := requiredString(raw, FieldPosted, index)
	if err != nil {
		return models.Job{}, err
	}

	job := models.Job{
		ID:          jobID(index, title),
		Title:       title,
		PostedLabel: posted,
		Type:        optionalString(raw, FieldType),
		Level:       optionalString(raw, FieldLevel),
		Skill:       optionalString(raw, FieldSkill),
		Detail:      optionalString(raw, FieldDetail),
	}

	postedAt, err := utils.ParseRelativeLabel(posted, now)
	if err != nil {
		return job, apperrors.Parse(fmt.Sprintf("record %d (%s): posted time unknown", index+1, title), err)
	}
	job.PostedAt = postedAt

	return job, nil
}

func requiredString(raw RawFields, field string, index int) (string, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return "", apperrors.MalformedRecord(fmt.Sprintf("record %d: missing %s", index+1, field), nil)
	}
	s, ok := v.(string)
	if !ok {
		return "", apperrors.MalformedRecord(fmt.Sprintf("record %d: %s must be text, got %T", index+1, field, v), nil)
	}
	return s, nil
}

// optionalString renders scalar values as text and treats anything missing as ""
func optionalString(raw RawFields, field string) string {
	switch v := raw[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func jobID(index int, title string) string {
	return uuid.NewSHA1(jobNamespace, []byte(fmt.Sprintf("%d|%s", index, title))).String()
}
