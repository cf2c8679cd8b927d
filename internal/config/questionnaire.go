package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/godilite/likert-reports/internal/survey"
)

// LoadQuestionnaire decodes a campus-rep questionnaire from a TOML file. An
// empty path returns the built-in questionnaire; fields missing from the file
// keep their built-in values.
//
//	identity_column = "Name of Campus Representative"
//	comments_column = "Comments on Campus Representative Support"
//
//	[[questions]]
//	column = "... [My Campus Rep has been a good resource.]"
//	label  = "Good Resource"
func LoadQuestionnaire(path string) (survey.Questionnaire, error) {
	q := survey.DefaultQuestionnaire()
	if path == "" {
		return q, nil
	}

	var file survey.Questionnaire
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return survey.Questionnaire{}, fmt.Errorf("decode questionnaire %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return survey.Questionnaire{}, fmt.Errorf("decode questionnaire %s: unknown keys %v", path, undecoded)
	}

	if file.IdentityColumn != "" {
		q.IdentityColumn = file.IdentityColumn
	}
	if file.CommentsColumn != "" {
		q.CommentsColumn = file.CommentsColumn
	}
	if len(file.Questions) > 0 {
		for i, qq := range file.Questions {
			if qq.Column == "" {
				return survey.Questionnaire{}, fmt.Errorf("decode questionnaire %s: question %d has no column", path, i+1)
			}
			if qq.Label == "" {
				file.Questions[i].Label = qq.Column
			}
		}
		q.Questions = file.Questions
	}
	return q, nil
}
