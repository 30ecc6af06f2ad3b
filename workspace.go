package advent

// CreateResult reports the outcome of creating a day directory.
type CreateResult int

const (
	Created CreateResult = iota
	AlreadyExists
)

func (r CreateResult) String() string {
	if r == AlreadyExists {
		return "already exists"
	}
	return "created"
}

// WriteResult reports the outcome of writing one artifact.
type WriteResult int

const (
	// Written means the file now holds new content.
	Written WriteResult = iota
	// Unchanged means a refreshed file was rewritten with identical content.
	Unchanged
	// Skipped means a write-once file already existed and was left untouched.
	Skipped
)

func (r WriteResult) String() string {
	switch r {
	case Unchanged:
		return "unchanged"
	case Skipped:
		return "skipped"
	default:
		return "written"
	}
}

// Mode is the kind of run, decided once by whether the day directory existed.
type Mode int

const (
	ModeFresh Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "fresh"
}

// Workspace owns the on-disk layout of puzzle data and solution stubs.
type Workspace interface {
	// CreateDayDir creates the day's data directory with a single
	// create-if-absent call. An existing directory is not an error.
	CreateDayDir(day Day) (CreateResult, error)

	// WriteProblem overwrites the problem statement.
	WriteProblem(day Day, content string) (WriteResult, error)

	// WriteExample overwrites the example file with the given 1-based index.
	WriteExample(day Day, index int, content string) (WriteResult, error)

	// WriteInput writes the puzzle input unless the file already exists.
	WriteInput(day Day, content string) (WriteResult, error)

	// WriteStub writes the solution stub unless the file already exists.
	WriteStub(day Day) (WriteResult, error)

	// Paths returns the artifact locations for the day.
	Paths(day Day) Paths
}

// Paths lists the artifact locations of one day.
type Paths struct {
	DataDir string
	Problem string
	Input   string
	Stub    string
}
