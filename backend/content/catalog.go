// Package content embeds the authored training catalog: modules, tasks, the
// assessment question bank, and badge definitions. The catalog is loaded once
// at startup and immutable afterwards.
package content

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"portal/backend/models"
)

//go:embed modules.yaml
var modulesYAML []byte

//go:embed tasks.yaml
var tasksYAML []byte

//go:embed questions.yaml
var questionsYAML []byte

//go:embed badges.yaml
var badgesYAML []byte

type Catalog struct {
	Modules   []models.Module
	Questions []models.AssessmentQuestion
	Badges    []models.Badge

	tasksByModule map[string][]models.Task
	tasksByID     map[string]models.Task
	modulesByID   map[string]models.Module
}

// Load parses and validates the embedded catalog. Authored content is trusted
// input, so any inconsistency (dangling prerequisite, task count mismatch,
// malformed question) is a startup failure rather than a runtime fallback.
func Load() (*Catalog, error) {
	return parse(modulesYAML, tasksYAML, questionsYAML, badgesYAML)
}

func parse(modulesYAML, tasksYAML, questionsYAML, badgesYAML []byte) (*Catalog, error) {
	var moduleFile struct {
		Modules []models.Module `yaml:"modules"`
	}
	if err := yaml.Unmarshal(modulesYAML, &moduleFile); err != nil {
		return nil, fmt.Errorf("parsing modules: %w", err)
	}
	var taskFile struct {
		Tasks []models.Task `yaml:"tasks"`
	}
	if err := yaml.Unmarshal(tasksYAML, &taskFile); err != nil {
		return nil, fmt.Errorf("parsing tasks: %w", err)
	}
	var questionFile struct {
		Questions []models.AssessmentQuestion `yaml:"questions"`
	}
	if err := yaml.Unmarshal(questionsYAML, &questionFile); err != nil {
		return nil, fmt.Errorf("parsing questions: %w", err)
	}
	var badgeFile struct {
		Badges []models.Badge `yaml:"badges"`
	}
	if err := yaml.Unmarshal(badgesYAML, &badgeFile); err != nil {
		return nil, fmt.Errorf("parsing badges: %w", err)
	}

	c := &Catalog{
		Modules:       moduleFile.Modules,
		Questions:     questionFile.Questions,
		Badges:        badgeFile.Badges,
		tasksByModule: make(map[string][]models.Task),
		tasksByID:     make(map[string]models.Task),
		modulesByID:   make(map[string]models.Module),
	}

	sort.Slice(c.Modules, func(i, j int) bool { return c.Modules[i].OrderIndex < c.Modules[j].OrderIndex })

	orderSeen := make(map[int]bool)
	for _, m := range c.Modules {
		if _, dup := c.modulesByID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate module id %q", m.ID)
		}
		if m.OrderIndex <= 0 || orderSeen[m.OrderIndex] {
			return nil, fmt.Errorf("module %q: order_index must be a unique positive integer", m.ID)
		}
		orderSeen[m.OrderIndex] = true
		c.modulesByID[m.ID] = m
	}
	for _, m := range c.Modules {
		for _, p := range m.Prerequisites {
			if _, ok := c.modulesByID[p]; !ok {
				return nil, fmt.Errorf("module %q: unknown prerequisite %q", m.ID, p)
			}
		}
	}

	for _, t := range taskFile.Tasks {
		if _, dup := c.tasksByID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task id %q", t.ID)
		}
		if _, ok := c.modulesByID[t.ModuleID]; !ok {
			return nil, fmt.Errorf("task %q: unknown module %q", t.ID, t.ModuleID)
		}
		c.tasksByID[t.ID] = t
		c.tasksByModule[t.ModuleID] = append(c.tasksByModule[t.ModuleID], t)
	}
	for id, tasks := range c.tasksByModule {
		sort.Slice(tasks, func(i, j int) bool { return tasks[i].OrderIndex < tasks[j].OrderIndex })
		if declared := c.modulesByID[id].TaskCount; declared != len(tasks) {
			return nil, fmt.Errorf("module %q: task_count %d but %d tasks defined", id, declared, len(tasks))
		}
	}

	known := make(map[models.QuestionCategory]bool)
	for _, cat := range models.KnownCategories() {
		known[cat] = true
	}
	questionIDs := make(map[string]bool)
	for _, q := range c.Questions {
		if questionIDs[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		questionIDs[q.ID] = true
		if !known[q.Category] {
			return nil, fmt.Errorf("question %q: unknown category %q", q.ID, q.Category)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("question %q: expected 4 options, got %d", q.ID, len(q.Options))
		}
		validAnswer := false
		for _, o := range q.Options {
			if o.ID == q.CorrectAnswer {
				validAnswer = true
			}
		}
		if !validAnswer {
			return nil, fmt.Errorf("question %q: correct_answer %q is not an option", q.ID, q.CorrectAnswer)
		}
	}

	return c, nil
}

// ModuleByID returns the module and whether it exists.
func (c *Catalog) ModuleByID(id string) (models.Module, bool) {
	m, ok := c.modulesByID[id]
	return m, ok
}

// TaskByID returns the task and whether it exists. Task IDs are unique across
// the whole catalog, not just within a module.
func (c *Catalog) TaskByID(id string) (models.Task, bool) {
	t, ok := c.tasksByID[id]
	return t, ok
}

// ModuleTasks returns a module's tasks in completion order.
func (c *Catalog) ModuleTasks(moduleID string) []models.Task {
	return c.tasksByModule[moduleID]
}
