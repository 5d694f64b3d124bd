package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCourseInput(t *testing.T) {
	tests := []struct {
		name    string
		input   CourseInput
		wantErr string
	}{
		{"valid", CourseInput{Title: "Go", Description: "Intro"}, ""},
		{"missing title", CourseInput{Description: "Intro"}, "title is required"},
		{"title too long", CourseInput{Title: strings.Repeat("x", 51), Description: "Intro"}, "title exceeds 50"},
		{"missing description", CourseInput{Title: "Go"}, "description is required"},
		{"description too long", CourseInput{Title: "Go", Description: strings.Repeat("x", 201)}, "description exceeds 200"},
		{"limits are inclusive", CourseInput{Title: strings.Repeat("x", 50), Description: strings.Repeat("y", 200)}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCourseInput(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
