package domain

import "time"

// TaskStatus is the outcome of one library build.
type TaskStatus string

const (
	// StatusPending indicates the task is still queued.
	StatusPending TaskStatus = "pending"
	// StatusCompleted indicates the task ran its full add, build, write and remove cycle.
	StatusCompleted TaskStatus = "completed"
	// StatusFailed indicates a step of the task failed.
	StatusFailed TaskStatus = "failed"
)

// Step names a stage of a build task.
type Step string

const (
	StepRead      Step = "read"
	StepAdd       Step = "add"
	StepBundle    Step = "bundle"
	StepPostbuild Step = "postbuild"
	StepManifest  Step = "manifest"
	StepLedger    Step = "ledger"
	StepRemove    Step = "remove"
)

// BundleResult is what the bundler reports for a successful run.
type BundleResult struct {
	OutputDir string
	Assets    []string
}

// TaskResult records what happened to a single library in a batch.
type TaskResult struct {
	Library    Library
	Status     TaskStatus
	Assets     []string
	FailedStep Step
	Err        error
	// CleanupErr is set when the dependency removal after the build failed.
	CleanupErr error
	Duration   time.Duration
}

// BuildReport aggregates the task results of one batch in queue order.
type BuildReport struct {
	Results []TaskResult
}

// Failed returns the results whose task did not complete.
func (r BuildReport) Failed() []TaskResult {
	var failed []TaskResult
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Succeeded reports the number of completed tasks.
func (r BuildReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusCompleted {
			n++
		}
	}
	return n
}
