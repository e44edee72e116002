package forms

//go:generate go run github.com/dmarkham/enumer -type Stage -trimprefix Stage -transform snake -json -yaml -sql -output stage.gen.go

// Stage is the position of a Workflow in the submission flow
type Stage int

const (
	StageIdle Stage = iota + 1
	StageUploading
	StageAnalyzing
	StageReviewing
	StageApproval
)
