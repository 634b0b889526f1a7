package domain

// Status is the result of processing one file.
type Status string

const (
	// StatusConverted indicates that an output was written.
	StatusConverted Status = "converted"
	// StatusUpToDate indicates that the existing output was kept.
	StatusUpToDate Status = "up-to-date"
	// StatusFailed indicates that the file could not be processed.
	StatusFailed Status = "failed"
)

// Stage names the conversion step an Outcome belongs to.
type Stage string

const (
	// StageRename is the filename normalization step.
	StageRename Stage = "rename"
	// StageIntermediate is the vector to intermediate raster step.
	StageIntermediate Stage = "png"
	// StageFinal is the intermediate to final raster step.
	StageFinal Stage = "webp"
)

// Outcome records what happened to a single file in a single stage.
type Outcome struct {
	Stage  Stage
	ID     Identity
	Source string
	Target string
	Status Status
	Size   int64
	Err    error
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}
