package mock

import "github.com/fwojciec/advent"

var _ advent.Workspace = (*Workspace)(nil)

// Workspace is a mock implementation of advent.Workspace.
type Workspace struct {
	CreateDayDirFn func(day advent.Day) (advent.CreateResult, error)
	WriteProblemFn func(day advent.Day, content string) (advent.WriteResult, error)
	WriteExampleFn func(day advent.Day, index int, content string) (advent.WriteResult, error)
	WriteInputFn   func(day advent.Day, content string) (advent.WriteResult, error)
	WriteStubFn    func(day advent.Day) (advent.WriteResult, error)
	PathsFn        func(day advent.Day) advent.Paths
}

func (w *Workspace) CreateDayDir(day advent.Day) (advent.CreateResult, error) {
	return w.CreateDayDirFn(day)
}

func (w *Workspace) WriteProblem(day advent.Day, content string) (advent.WriteResult, error) {
	return w.WriteProblemFn(day, content)
}

func (w *Workspace) WriteExample(day advent.Day, index int, content string) (advent.WriteResult, error) {
	return w.WriteExampleFn(day, index, content)
}

func (w *Workspace) WriteInput(day advent.Day, content string) (advent.WriteResult, error) {
	return w.WriteInputFn(day, content)
}

func (w *Workspace) WriteStub(day advent.Day) (advent.WriteResult, error) {
	return w.WriteStubFn(day)
}

func (w *Workspace) Paths(day advent.Day) advent.Paths {
	if w.PathsFn == nil {
		return advent.Paths{}
	}
	return w.PathsFn(day)
}
