package catalog

import (
	"fmt"
	"strings"
)

// Role selects which side of the marketplace is browsing
type Role string

const (
	// RoleStudent browses internship postings
	RoleStudent Role = "student"
	// RoleEmployer browses candidate profiles
	RoleEmployer Role = "employer"
)

// ParseRole converts a flag or config value into a Role
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent, "":
		return RoleStudent, nil
	case RoleEmployer:
		return RoleEmployer, nil
	default:
		return "", fmt.Errorf("invalid role: %s (must be one of: student, employer)", s)
	}
}

// Job is an internship posting shown to students
type Job struct {
	ID              string   `yaml:"id" json:"id"`
	Title           string   `yaml:"title" json:"title" validate:"required"`
	Company         string   `yaml:"company" json:"company" validate:"required"`
	Location        string   `yaml:"location" json:"location"`
	Duration        string   `yaml:"duration" json:"duration"`
	Compensation    string   `yaml:"compensation" json:"compensation"`
	Description     string   `yaml:"description" json:"description"`
	Skills          []string `yaml:"skills" json:"skills" validate:"dive,required"`
	MatchPercentage int      `yaml:"match_percentage" json:"match_percentage" validate:"gte=0,lte=100"`
	MatchReason     string   `yaml:"match_reason" json:"match_reason"`
}

// Key implements deck.Item
func (j *Job) Key() string { return j.ID }

// Headline returns the one-line label used in summaries
func (j *Job) Headline() string {
	return fmt.Sprintf("%s at %s", j.Title, j.Company)
}

// Match returns the match score as a fraction
func (j *Job) Match() float64 { return float64(j.MatchPercentage) / 100 }

// Student is a candidate profile shown to employers
type Student struct {
	ID             string   `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name" validate:"required"`
	Institute      string   `yaml:"institute" json:"institute"`
	EducationLevel string   `yaml:"education_level" json:"education_level"`
	Skills         []string `yaml:"skills" json:"skills" validate:"dive,required"`
	MatchScore     int      `yaml:"match" json:"match" validate:"gte=0,lte=100"`
	Summary        string   `yaml:"summary" json:"summary"`
}

// Key implements deck.Item
func (s *Student) Key() string { return s.ID }

// Headline returns the one-line label used in summaries
func (s *Student) Headline() string {
	if s.Institute == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Institute)
}

// Match returns the match score as a fraction
func (s *Student) Match() float64 { return float64(s.MatchScore) / 100 }

// Record is what every catalog entry offers beyond its key
type Record interface {
	Key() string
	Headline() string
	Match() float64
}

// File is the on-disk layout of a deck file
type File struct {
	Version  string    `yaml:"version" json:"version"`
	Role     Role      `yaml:"role" json:"role" validate:"omitempty,oneof=student employer"`
	Jobs     []Job     `yaml:"jobs" json:"jobs" validate:"dive"`
	Students []Student `yaml:"students" json:"students" validate:"dive"`
}
