// Package smartfill simulates field extraction for uploaded forms.
//
// No OCR or knowledge-base lookup happens. An Analysis drives a Progress
// counter from 0 to 100 on a ticker, surfacing six phase labels at fixed
// thresholds, and then hands back a fixed field set with precomputed
// confidence scores.
//
// Progress is pure and can be stepped directly; Analysis adds the timer and
// takes its clock from github.com/facebookgo/clock so tests can drive it
// with clock.NewMock.
package smartfill
