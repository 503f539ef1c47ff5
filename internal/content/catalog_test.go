package content

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"quizdeck/internal/question"
)

const quizModule = `# Digital Filters

Reading material.

---
### Question 1
What is X?
A. foo
B. bar
correct: A
---
`

// TestExtractTitle verifies title detection and the default title.
func TestExtractTitle(t *testing.T) {
	if got := ExtractTitle("intro\n#  Signals \n## Sub", "3"); got != "Signals" {
		t.Fatalf("expected Signals, got %q", got)
	}
	if got := ExtractTitle("## Only a subheading", "3"); got != "Module 3" {
		t.Fatalf("expected default title, got %q", got)
	}
}

// TestCatalogListDiscoversModules verifies discovery order and titles.
func TestCatalogListDiscoversModules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "10.md", "# Ten")
	writeFile(t, dir, "2.md", "# Two")
	writeFile(t, dir, "intro.md", "no heading")
	writeFile(t, dir, "notes.txt", "# ignored")
	writeFile(t, dir, "2.quiz.yml", "version: 1")

	modules, err := Catalog{Dir: dir}.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var ids, titles []string
	for _, module := range modules {
		ids = append(ids, module.ID)
		titles = append(titles, module.Title)
	}
	if !reflect.DeepEqual(ids, []string{"2", "10", "intro"}) {
		t.Fatalf("unexpected ids %v", ids)
	}
	if !reflect.DeepEqual(titles, []string{"Two", "Ten", "Module intro"}) {
		t.Fatalf("unexpected titles %v", titles)
	}
}

// TestCatalogListSkipsMissingIDs verifies configured ids without files are skipped.
func TestCatalogListSkipsMissingIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.md", "# One")
	modules, err := Catalog{Dir: dir, IDs: []string{"1", "5"}}.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(modules) != 1 || modules[0].ID != "1" {
		t.Fatalf("unexpected modules %+v", modules)
	}
}

// TestCatalogLoadMissing verifies missing and unsafe ids report not found.
func TestCatalogLoadMissing(t *testing.T) {
	catalog := Catalog{Dir: t.TempDir()}
	for _, id := range []string{"7", "../secret", ""} {
		if _, err := catalog.Load(id); !errors.Is(err, ErrModuleNotFound) {
			t.Fatalf("load %q: expected ErrModuleNotFound, got %v", id, err)
		}
	}
}

// TestCatalogQuestionsFromMarkdown verifies the embedded quiz is parsed.
func TestCatalogQuestionsFromMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.md", quizModule)
	set, err := Catalog{Dir: dir, SampleFallback: true}.Questions("1")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if set.Source != SourceMarkdown || len(set.Questions) != 1 {
		t.Fatalf("unexpected set %+v", set)
	}
	if set.Module.Title != "Digital Filters" {
		t.Fatalf("unexpected title %q", set.Module.Title)
	}
}

// TestCatalogQuestionsPrefersBank verifies a structured bank overrides markdown.
func TestCatalogQuestionsPrefersBank(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.md", quizModule)
	writeFile(t, dir, "1.quiz.yaml", `version: 1
questions:
  - id: bank-1
    question: "From the bank?"
    options: ["yes", "no"]
    correct_answers: ["A"]
`)
	set, err := Catalog{Dir: dir}.Questions("1")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if set.Source != SourceBank || set.Questions[0].ID != "bank-1" {
		t.Fatalf("unexpected set %+v", set)
	}
	if filepath.Base(set.BankPath) != "1.quiz.yaml" {
		t.Fatalf("unexpected bank path %q", set.BankPath)
	}
	paths, err := Catalog{Dir: dir}.BankPaths()
	if err != nil || len(paths) != 1 {
		t.Fatalf("expected one bank path, got %v (%v)", paths, err)
	}
}

// TestCatalogQuestionsInvalidBank verifies bank validation errors surface.
func TestCatalogQuestionsInvalidBank(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.md", quizModule)
	writeFile(t, dir, "1.quiz.json", `{"version": 1, "questions": []}`)
	_, err := Catalog{Dir: dir}.Questions("1")
	var validationErr *question.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestCatalogQuestionsFallback verifies the sample fallback switch.
func TestCatalogQuestionsFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.md", "# Reading only")

	set, err := Catalog{Dir: dir, SampleFallback: true}.Questions("1")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if set.Source != SourceSample || len(set.Questions) != len(question.SampleQuestions()) {
		t.Fatalf("expected sample questions, got %+v", set)
	}

	set, err = Catalog{Dir: dir}.Questions("1")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if set.Source != SourceNone || len(set.Questions) != 0 {
		t.Fatalf("expected no questions, got %+v", set)
	}
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
