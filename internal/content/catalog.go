package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"quizdeck/internal/question"
)

// ModuleExt is the file extension of study modules.
const ModuleExt = ".md"

// ErrModuleNotFound indicates no markdown file exists for a module id.
var ErrModuleNotFound = errors.New("module not found")

// bankSuffixes lists the structured bank files probed for a module, in order.
var bankSuffixes = []string{".quiz.yml", ".quiz.yaml", ".quiz.json"}

// Source identifies where a module's questions came from.
type Source string

const (
	SourceBank     Source = "bank"
	SourceMarkdown Source = "markdown"
	SourceSample   Source = "sample"
	SourceNone     Source = "none"
)

// QuestionSet is the question list resolved for a module.
type QuestionSet struct {
	Module    Module
	Questions []question.Question
	Source    Source
	BankPath  string
}

// Catalog reads study modules from a directory.
type Catalog struct {
	Dir string
	// IDs restricts and orders the catalog; empty means every module file in Dir.
	IDs []string
	// SampleFallback substitutes the built-in sample questions for modules
	// without a quiz.
	SampleFallback bool
}

// List returns the catalog's modules. Listed ids without a file are skipped.
func (c Catalog) List() ([]Module, error) {
	ids := c.IDs
	if len(ids) == 0 {
		discovered, err := c.discover()
		if err != nil {
			return nil, err
		}
		ids = discovered
	}
	modules := make([]Module, 0, len(ids))
	for _, id := range ids {
		module, err := c.Load(id)
		if errors.Is(err, ErrModuleNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}
	return modules, nil
}

// Load reads a single module by id.
func (c Catalog) Load(id string) (Module, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return Module{}, fmt.Errorf("load module %q: %w", id, ErrModuleNotFound)
	}
	path := filepath.Join(c.Dir, id+ModuleExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Module{}, fmt.Errorf("load module %q: %w", id, ErrModuleNotFound)
		}
		return Module{}, fmt.Errorf("load module %q: %w", id, err)
	}
	text := string(data)
	return Module{
		ID:      id,
		Title:   ExtractTitle(text, id),
		Path:    path,
		Content: text,
	}, nil
}

// Questions resolves the questions of a module: a structured bank next to the
// module wins, then the markdown quiz section, then the sample set when the
// catalog allows it.
func (c Catalog) Questions(id string) (QuestionSet, error) {
	module, err := c.Load(id)
	if err != nil {
		return QuestionSet{}, err
	}
	set := QuestionSet{Module: module, Source: SourceNone}

	bankPath, err := c.findBank(module.ID)
	if err != nil {
		return QuestionSet{}, err
	}
	if bankPath != "" {
		bank, err := question.LoadBank(bankPath)
		if err != nil {
			return QuestionSet{}, fmt.Errorf("load questions for module %q: %w", module.ID, err)
		}
		set.Questions = bank.Questions
		set.Source = SourceBank
		set.BankPath = bankPath
		return set, nil
	}

	if parsed := question.Parse(module.Content); len(parsed) > 0 {
		set.Questions = parsed
		set.Source = SourceMarkdown
		return set, nil
	}
	if c.SampleFallback {
		set.Questions = question.SampleQuestions()
		set.Source = SourceSample
	}
	return set, nil
}

// BankPaths returns the structured bank files present for the catalog's modules.
func (c Catalog) BankPaths() ([]string, error) {
	modules, err := c.List()
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, module := range modules {
		path, err := c.findBank(module.ID)
		if err != nil {
			return nil, err
		}
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func (c Catalog) findBank(id string) (string, error) {
	for _, suffix := range bankSuffixes {
		path := filepath.Join(c.Dir, id+suffix)
		info, err := os.Stat(path)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("question bank %q is a directory", path)
			}
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat question bank %q: %w", path, err)
		}
	}
	return "", nil
}

// discover lists module ids from the markdown files in Dir.
func (c Catalog) discover() ([]string, error) {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, fmt.Errorf("read module directory: %w", err)
	}
	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ModuleExt) {
			continue
		}
		id := strings.TrimSuffix(name, ModuleExt)
		if validID(id) {
			ids = append(ids, id)
		}
	}
	SortIDs(ids)
	return ids, nil
}

// SortIDs orders module ids numerically where possible, then lexically.
func SortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		left, leftErr := strconv.Atoi(ids[i])
		right, rightErr := strconv.Atoi(ids[j])
		switch {
		case leftErr == nil && rightErr == nil:
			return left < right
		case leftErr == nil:
			return true
		case rightErr == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}

// validID rejects ids that could escape the module directory.
func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}
