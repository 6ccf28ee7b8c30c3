// Package loader reads and writes task-set instances.
//
// The plain-text format is a whitespace-separated token stream: the task count
// n and the capacity, followed by n (duration, value) pairs. Line breaks carry
// no meaning. Files ending in .yaml or .yml use the YAML schema:
//
//	capacity: 10
//	tasks:
//	  - {duration: 6, value: 30}
//	  - {duration: 5, value: 25}
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/taskpack/knapsack"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrOpenFailed is returned when the input file cannot be opened.
	ErrOpenFailed = zerr.New("error opening file")

	// ErrMalformedInput is returned for missing, non-numeric, negative or
	// surplus tokens, and for YAML documents that do not match the schema.
	ErrMalformedInput = zerr.New("malformed input")
)

// preallocCap bounds the up-front allocation driven by the declared task count.
const preallocCap = 1 << 16

// Load reads the instance at path, choosing the format by extension.
func Load(path string) (knapsack.TaskSet, error) {
	// #nosec G304 -- path is the user's own input file
	f, err := os.Open(path)
	if err != nil {
		return knapsack.TaskSet{}, zerr.With(zerr.Wrap(ErrOpenFailed, err.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	var ts knapsack.TaskSet
	if IsYAML(path) {
		ts, err = ParseYAML(f)
	} else {
		ts, err = Parse(f)
	}
	if err != nil {
		return knapsack.TaskSet{}, zerr.With(err, "path", path)
	}

	return ts, nil
}

// IsYAML reports whether path has a .yaml or .yml extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// tokenReader hands out non-negative integers from a word scanner and keeps
// a 1-based token position for error metadata.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokenReader) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, zerr.Wrap(err, "read input")
		}
		err := zerr.Wrap(ErrMalformedInput, "unexpected end of input, expected "+what)
		return 0, zerr.With(err, "token", t.pos+1)
	}
	t.pos++
	text := t.sc.Text()
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		err := zerr.Wrap(ErrMalformedInput, fmt.Sprintf("%s must be a non-negative integer, got %q", what, text))
		err = zerr.With(err, "token", t.pos)
		return 0, zerr.With(err, "text", text)
	}

	return n, nil
}

// Parse reads the plain-text format.
func Parse(r io.Reader) (knapsack.TaskSet, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tr := &tokenReader{sc: sc}

	n, err := tr.next("task count")
	if err != nil {
		return knapsack.TaskSet{}, err
	}
	capacity, err := tr.next("capacity")
	if err != nil {
		return knapsack.TaskSet{}, err
	}

	tasks := make([]knapsack.Task, 0, min(n, preallocCap))
	var i int
	for i = 0; i < n; i++ {
		var t knapsack.Task
		if t.Duration, err = tr.next(fmt.Sprintf("duration of task %d", i)); err != nil {
			return knapsack.TaskSet{}, err
		}
		if t.Value, err = tr.next(fmt.Sprintf("value of task %d", i)); err != nil {
			return knapsack.TaskSet{}, err
		}
		tasks = append(tasks, t)
	}

	if sc.Scan() {
		err := zerr.Wrap(ErrMalformedInput, fmt.Sprintf("unexpected trailing data %q after %d tasks", sc.Text(), n))
		return knapsack.TaskSet{}, zerr.With(err, "token", tr.pos+1)
	}
	if err := sc.Err(); err != nil {
		return knapsack.TaskSet{}, zerr.Wrap(err, "read input")
	}

	return knapsack.NewTaskSet(capacity, tasks)
}

// yamlInstance is the YAML schema. Pointers distinguish missing from zero.
type yamlInstance struct {
	Capacity *int       `yaml:"capacity"`
	Tasks    []yamlTask `yaml:"tasks"`
}

type yamlTask struct {
	Duration *int `yaml:"duration"`
	Value    *int `yaml:"value"`
}

// ParseYAML reads the YAML format. Unknown keys are rejected.
func ParseYAML(r io.Reader) (knapsack.TaskSet, error) {
	var doc yamlInstance
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return knapsack.TaskSet{}, zerr.Wrap(ErrMalformedInput, "empty document")
		}
		return knapsack.TaskSet{}, zerr.Wrap(ErrMalformedInput, err.Error())
	}

	if doc.Capacity == nil {
		return knapsack.TaskSet{}, zerr.Wrap(ErrMalformedInput, "missing capacity")
	}
	if *doc.Capacity < 0 {
		return knapsack.TaskSet{}, zerr.With(zerr.Wrap(ErrMalformedInput, "negative capacity"), "capacity", *doc.Capacity)
	}

	tasks := make([]knapsack.Task, len(doc.Tasks))
	for i, yt := range doc.Tasks {
		if yt.Duration == nil || yt.Value == nil {
			return knapsack.TaskSet{}, zerr.With(zerr.Wrap(ErrMalformedInput, "task needs duration and value"), "task", i)
		}
		if *yt.Duration < 0 || *yt.Value < 0 {
			return knapsack.TaskSet{}, zerr.With(zerr.Wrap(ErrMalformedInput, "negative duration or value"), "task", i)
		}
		tasks[i] = knapsack.Task{Duration: *yt.Duration, Value: *yt.Value}
	}

	return knapsack.NewTaskSet(*doc.Capacity, tasks)
}

// Write encodes ts in the plain-text format, one task per line.
func Write(w io.Writer, ts knapsack.TaskSet) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "%d %d\n", ts.Len(), ts.Capacity())
	for _, t := range ts.Tasks() {
		_, _ = fmt.Fprintf(bw, "%d %d\n", t.Duration, t.Value)
	}
	if err := bw.Flush(); err != nil {
		return zerr.Wrap(err, "write instance")
	}

	return nil
}

// WriteYAML encodes ts in the YAML format.
func WriteYAML(w io.Writer, ts knapsack.TaskSet) error {
	capacity := ts.Capacity()
	doc := yamlInstance{Capacity: &capacity, Tasks: make([]yamlTask, ts.Len())}
	for i, t := range ts.Tasks() {
		d, v := t.Duration, t.Value
		doc.Tasks[i] = yamlTask{Duration: &d, Value: &v}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, "write instance")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "write instance")
	}

	return nil
}
