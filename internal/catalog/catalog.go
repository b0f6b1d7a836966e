package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/InternSwipe/internal/deck"
)

//go:embed defaults/deck.yaml
var defaultDeckYAML []byte

var validate = validator.New()

// Catalog holds the records available for browsing
type Catalog struct {
	Jobs     []*Job
	Students []*Student
	Sources  []string

	// Role is the role declared by the first deck file that names one
	Role Role
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{}
}

// Defaults returns the built-in sample deck
func Defaults() (*Catalog, error) {
	c := New()
	if err := c.AddData(defaultDeckYAML, "embedded defaults"); err != nil {
		return nil, fmt.Errorf("failed to parse embedded default deck: %w", err)
	}
	return c, nil
}

// Load reads a single deck file
func Load(path string) (*Catalog, error) {
	c := New()
	if err := c.AddFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// AddFile reads a deck file or every .yaml/.yml file of a directory
func (c *Catalog) AddFile(path string) error {
	if err := validateDeckPath(path); err != nil {
		return fmt.Errorf("invalid deck path: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return c.addSingleFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		if err := c.addSingleFile(filepath.Join(path, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) addSingleFile(path string) error {
	// #nosec G304 - path is validated by validateDeckPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read deck file: %w", err)
	}
	return c.AddData(data, path)
}

// AddData parses a YAML deck and appends its records in file order
func (c *Catalog) AddData(data []byte, source string) error {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse YAML in %s: %w", source, err)
	}

	if err := validate.Struct(&file); err != nil {
		return newValidationError(source, err)
	}

	seen := c.keys()
	var dups []FieldError
	jobs := make([]*Job, 0, len(file.Jobs))
	students := make([]*Student, 0, len(file.Students))

	for i := range file.Jobs {
		job := file.Jobs[i]
		job.ID = ensureID(job.ID, source, "jobs", i)
		if seen[job.ID] {
			dups = append(dups, FieldError{Field: fmt.Sprintf("File.Jobs[%d].ID", i), Rule: "unique", Value: job.ID})
			continue
		}
		seen[job.ID] = true
		jobs = append(jobs, &job)
	}

	for i := range file.Students {
		student := file.Students[i]
		student.ID = ensureID(student.ID, source, "students", i)
		if seen[student.ID] {
			dups = append(dups, FieldError{Field: fmt.Sprintf("File.Students[%d].ID", i), Rule: "unique", Value: student.ID})
			continue
		}
		seen[student.ID] = true
		students = append(students, &student)
	}

	if len(dups) > 0 {
		return &ValidationError{Source: source, Fields: dups, Cause: ErrDuplicateKey}
	}

	c.Jobs = append(c.Jobs, jobs...)
	c.Students = append(c.Students, students...)
	if c.Role == "" {
		c.Role = file.Role
	}
	c.Sources = append(c.Sources, source)
	return nil
}

// Items returns the records the given role browses, as deck items
func (c *Catalog) Items(role Role) []deck.Item {
	switch role {
	case RoleEmployer:
		items := make([]deck.Item, 0, len(c.Students))
		for _, s := range c.Students {
			items = append(items, s)
		}
		return items
	default:
		items := make([]deck.Item, 0, len(c.Jobs))
		for _, j := range c.Jobs {
			items = append(items, j)
		}
		return items
	}
}

// Len returns the number of records for the role
func (c *Catalog) Len(role Role) int {
	if role == RoleEmployer {
		return len(c.Students)
	}
	return len(c.Jobs)
}

func (c *Catalog) keys() map[string]bool {
	seen := make(map[string]bool, len(c.Jobs)+len(c.Students))
	for _, j := range c.Jobs {
		seen[j.ID] = true
	}
	for _, s := range c.Students {
		seen[s.ID] = true
	}
	return seen
}

// ensureID derives a missing key from the record's place in its source, so a
// reloaded file keeps the same keys
func ensureID(id, source, list string, index int) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	name := fmt.Sprintf("internswipe:%s#%s/%d", source, list, index)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// validateDeckPath validates that a deck path is safe to read
func validateDeckPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err == nil && !info.IsDir() && !isYAML(cleanPath) {
		return fmt.Errorf("deck file must have .yaml or .yml extension")
	}
	return nil
}
