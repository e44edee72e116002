package model

//go:generate go run github.com/dmarkham/enumer -type RiskLevel -trimprefix Risk -transform snake-upper -json -yaml -sql -output risk_level.gen.go

type RiskLevel int

const (
	RiskLow RiskLevel = iota + 1
	RiskMedium
	RiskHigh
)
