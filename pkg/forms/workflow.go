package forms

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/notify"
	"github.com/tripleswitch/complianceos/pkg/smartfill"
)

// Values stamped on every new submission
const (
	SubmissionName     = "New TTB Report Submission"
	SubmissionTemplate = "TTB F 5130.9"

	NotificationKind    = "success"
	NotificationTitle   = "Submission Successful"
	NotificationMessage = "Your form has been queued for review. Expected turnaround: 24-48 hours."
)

// Config tunes the timing of a Workflow. Zero values take the defaults.
type Config struct {
	Clock           clock.Clock
	TickInterval    time.Duration
	CompletionDelay time.Duration
	Logger          *zap.Logger
}

// SelectedFile is the metadata of the file chosen for upload. Only the
// metadata is kept.
type SelectedFile struct {
	Name string             `json:"name"`
	Size int64              `json:"size"`
	Type model.DocumentType `json:"type"`
}

// Snapshot is a point-in-time view of a Workflow
type Snapshot struct {
	Stage      Stage           `json:"stage"`
	File       *SelectedFile   `json:"file,omitempty"`
	Progress   int             `json:"progress"`
	Label      string          `json:"label,omitempty"`
	Fields     model.FieldList `json:"fields,omitempty"`
	Submission string          `json:"submission,omitempty"`
	// Attention lists fields a reviewer should check before submitting.
	Attention []string `json:"attention,omitempty"`
}

// Workflow is one session's pass through the submission flow
type Workflow struct {
	session  identity.Session
	registry *Registry
	notifier notify.Notifier
	cfg      Config

	mu         sync.Mutex
	stage      Stage
	file       *SelectedFile
	progress   int
	label      string
	fields     model.FieldList
	submission string
	analysis   *smartfill.Analysis
	generation uint64
}

// NewWorkflow creates an idle workflow acting as session
func NewWorkflow(session identity.Session, registry *Registry, notifier notify.Notifier, cfg Config) *Workflow {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Workflow{
		session:  session,
		registry: registry,
		notifier: notifier,
		cfg:      cfg,
		stage:    StageIdle,
	}
}

// Stage returns the current stage
func (w *Workflow) Stage() Stage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stage
}

// Snapshot returns a copy of the workflow state
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := Snapshot{
		Stage:      w.stage,
		Progress:   w.progress,
		Label:      w.label,
		Submission: w.submission,
	}
	if w.file != nil {
		f := *w.file
		s.File = &f
	}
	if w.fields != nil {
		s.Fields = append(model.FieldList(nil), w.fields...)
		for _, f := range w.fields {
			if smartfill.NeedsAttention(f) {
				s.Attention = append(s.Attention, f.ID)
			}
		}
	}
	return s
}

// StartUpload opens the upload step.
func (w *Workflow) StartUpload() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect("start upload", StageIdle, StageApproval); err != nil {
		return err
	}
	w.reset()
	w.stage = StageUploading
	return nil
}

// SelectFile records the chosen file. The type is derived from the name's
// extension.
func (w *Workflow) SelectFile(name string, size int64) (SelectedFile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect("select file", StageUploading); err != nil {
		return SelectedFile{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return SelectedFile{}, fmt.Errorf("%w: empty name", ErrInvalidFile)
	}
	if size < 0 {
		return SelectedFile{}, fmt.Errorf("%w: negative size", ErrInvalidFile)
	}
	w.file = &SelectedFile{Name: name, Size: size, Type: model.DocumentTypeFor(name)}
	return *w.file, nil
}

// ClearFile removes the chosen file.
func (w *Workflow) ClearFile() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect("clear file", StageUploading); err != nil {
		return err
	}
	w.file = nil
	return nil
}

// Analyze starts the simulated extraction on the chosen file. Progress is
// visible through Snapshot; the workflow moves to Reviewing on its own once
// the analysis completes.
func (w *Workflow) Analyze(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect("analyze", StageUploading); err != nil {
		return err
	}
	if w.file == nil {
		return fmt.Errorf("%w: analyze without a file", ErrInvalidTransition)
	}

	w.generation++
	gen := w.generation
	w.stage = StageAnalyzing
	w.progress = 0
	w.label = smartfill.Label(0)

	w.analysis = smartfill.Start(context.WithoutCancel(ctx), smartfill.Options{
		Clock:           w.cfg.Clock,
		TickInterval:    w.cfg.TickInterval,
		CompletionDelay: w.cfg.CompletionDelay,
		OnTick: func(step smartfill.Step) {
			w.mu.Lock()
			defer w.mu.Unlock()
			if w.generation != gen || w.stage != StageAnalyzing {
				return
			}
			w.progress = step.Progress
			w.label = step.Label
		},
		OnComplete: func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			if w.generation != gen {
				return
			}
			_ = w.completeAnalysis()
		},
	})
	return nil
}

// CompleteAnalysis moves a finished analysis to Reviewing and loads the
// extracted fields. It succeeds once; the runner normally calls it.
func (w *Workflow) CompleteAnalysis() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.completeAnalysis()
}

func (w *Workflow) completeAnalysis() error {
	if err := w.expect("complete analysis", StageAnalyzing); err != nil {
		return err
	}
	if w.progress < smartfill.Complete {
		return fmt.Errorf("%w: analysis at %d%%", ErrInvalidTransition, w.progress)
	}
	w.stage = StageReviewing
	w.fields = smartfill.SeedFields()
	w.analysis = nil
	return nil
}

// EditField replaces a field's value. Any value, including the empty
// string, marks the field edited with full confidence.
func (w *Workflow) EditField(id, value string) (model.FormField, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect("edit field", StageReviewing); err != nil {
		return model.FormField{}, err
	}
	for i := range w.fields {
		if w.fields[i].ID == id {
			w.fields[i].Value = value
			w.fields[i].IsEdited = true
			w.fields[i].Confidence = 1.0
			return w.fields[i], nil
		}
	}
	return model.FormField{}, fmt.Errorf("%w: %s", ErrFieldNotFound, id)
}

// Discard abandons the review and its edits.
func (w *Workflow) Discard() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect("discard", StageReviewing); err != nil {
		return err
	}
	w.reset()
	return nil
}

// SaveDraft is accepted during review and changes nothing.
func (w *Workflow) SaveDraft() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.expect("save draft", StageReviewing)
}

// Submit files the reviewed fields as a new submission awaiting approval and
// notifies the submitter. A failed notification is logged, not returned.
func (w *Workflow) Submit(ctx context.Context) (*model.FormSubmission, error) {
	w.mu.Lock()
	if err := w.expect("submit", StageReviewing); err != nil {
		w.mu.Unlock()
		return nil, err
	}

	sub := model.FormSubmission{
		ID:             NewSubmissionID(),
		Name:           SubmissionName,
		TemplateName:   SubmissionTemplate,
		Status:         model.FormStatusPendingApproval,
		SubmittedBy:    w.session.Name,
		SubmittedAt:    w.cfg.Clock.Now().Format("2006-01-02"),
		Classification: model.ClassificationRestricted,
		Fields:         append(model.FieldList(nil), w.fields...),
		RiskLevel:      model.RiskLow,
	}
	session := w.session
	ctx = identity.Set(ctx, &session)
	if err := w.registry.Create(ctx, sub); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.reset()
	w.mu.Unlock()

	w.notify(ctx, notify.Notification{
		Kind:    NotificationKind,
		Title:   NotificationTitle,
		Message: NotificationMessage,
	})
	return &sub, nil
}

// Open shows a stored submission for approval.
func (w *Workflow) Open(id string) (*model.FormSubmission, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect("open submission", StageIdle); err != nil {
		return nil, err
	}
	sub, err := w.registry.Get(id)
	if err != nil {
		return nil, err
	}
	w.stage = StageApproval
	w.submission = sub.ID
	w.fields = DisplayFields(*sub)
	return sub, nil
}

// Back leaves the approval view. The submission is not touched.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect("back", StageApproval); err != nil {
		return err
	}
	w.reset()
	return nil
}

// Cancel abandons an upload or a running analysis. The analysis runner has
// stopped when Cancel returns.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	if err := w.expect("cancel", StageUploading, StageAnalyzing); err != nil {
		w.mu.Unlock()
		return err
	}
	a := w.analysis
	w.generation++
	w.reset()
	w.mu.Unlock()

	// Callbacks take w.mu, so the runner is stopped outside it.
	if a != nil {
		a.Stop()
	}
	return nil
}

// Close stops any running analysis
func (w *Workflow) Close() {
	w.mu.Lock()
	a := w.analysis
	w.generation++
	w.analysis = nil
	w.mu.Unlock()

	if a != nil {
		a.Stop()
	}
}

func (w *Workflow) expect(op string, stages ...Stage) error {
	for _, s := range stages {
		if w.stage == s {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, op, w.stage)
}

// reset returns to Idle; callers hold w.mu
func (w *Workflow) reset() {
	w.stage = StageIdle
	w.file = nil
	w.progress = 0
	w.label = ""
	w.fields = nil
	w.submission = ""
	w.analysis = nil
}

func (w *Workflow) notify(ctx context.Context, n notify.Notification) {
	if w.notifier == nil {
		return
	}
	if err := w.notifier.Notify(ctx, w.session.UserID, n); err != nil {
		w.cfg.Logger.Warn("notification delivery failed",
			zap.String("user", w.session.UserID),
			zap.String("title", n.Title),
			zap.Error(err))
	}
}

// NewSubmissionID returns a fresh "sub-" id with eight hex digits
func NewSubmissionID() string {
	return "sub-" + uuid.NewString()[:8]
}
