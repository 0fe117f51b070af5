// Package testing provides test doubles for the exec package.
package testing

import (
	"sync"
)

// Method identifies which Runner method a call went through.
const (
	MethodRun    = "run"
	MethodQuiet  = "quiet"
	MethodOutput = "output"
)

// Call records a single command invocation.
type Call struct {
	Method string
	Name   string
	Args   []string
}

// FakeRunner simulates subprocess execution. It records every call and can
// be configured to fail specific tools or serve canned stdout.
type FakeRunner struct {
	mu sync.Mutex

	// Calls records every invocation in order.
	Calls []Call

	failures map[string]error
	outputs  map[string][]byte
}

// NewFakeRunner creates a fake runner where every command succeeds and
// Output returns no bytes.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		failures: make(map[string]error),
		outputs:  make(map[string][]byte),
	}
}

// FailOn makes every invocation of the named tool return err, regardless of
// which Runner method is used.
func (f *FakeRunner) FailOn(name string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[name] = err
	return f
}

// FailOnMethod makes invocations of the named tool through one specific
// method return err. Other methods of the same tool are unaffected, so a
// failing quiet probe can coexist with a succeeding attached run.
func (f *FakeRunner) FailOnMethod(method, name string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method+" "+name] = err
	return f
}

// RespondWith sets the stdout bytes Output returns for the named tool.
func (f *FakeRunner) RespondWith(name string, stdout []byte) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[name] = stdout
	return f
}

func (f *FakeRunner) Run(name string, args ...string) error {
	return f.record(MethodRun, name, args)
}

func (f *FakeRunner) RunQuiet(name string, args ...string) error {
	return f.record(MethodQuiet, name, args)
}

func (f *FakeRunner) Output(name string, args ...string) ([]byte, error) {
	err := f.record(MethodOutput, name, args)

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outputs[name], err
}

func (f *FakeRunner) record(method, name string, args []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, Call{Method: method, Name: name, Args: args})

	if err, ok := f.failures[method+" "+name]; ok {
		return err
	}
	return f.failures[name]
}

// CallCount returns how many times the named tool was invoked.
func (f *FakeRunner) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, c := range f.Calls {
		if c.Name == name {
			count++
		}
	}
	return count
}

// CallsTo returns the recorded calls for the named tool, in order.
func (f *FakeRunner) CallsTo(name string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	var calls []Call
	for _, c := range f.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Tools returns just the tool name of every call, in order.
func (f *FakeRunner) Tools() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		names[i] = c.Name
	}
	return names
}
