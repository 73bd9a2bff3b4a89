package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/yt-downloader-lite/internal/download"
	"github.com/ytget/yt-downloader-lite/internal/model"
)

// DefaultQueueSize is the capacity of a job's event queue
const DefaultQueueSize = 256

// Controller starts at most one job at a time and renders its events
type Controller struct {
	view       View
	engine     download.Engine
	canMerge   bool
	msgs       Messages
	dispatch   Dispatcher
	runnerOpts []download.RunnerOption
	logger     *zap.Logger
	ctx        context.Context
	queueSize  int

	mu      sync.Mutex
	active  *activeJob
	state   model.JobState
	lastJob *model.Job

	wg sync.WaitGroup
}

// activeJob is the handle of the running job
type activeJob struct {
	runner *download.Runner
}

func (a *activeJob) job() model.Job {
	return a.runner.Job()
}

// Option customizes a Controller
type Option func(*Controller)

// WithMergeCapability tells the controller whether a merge tool exists
func WithMergeCapability(canMerge bool) Option {
	return func(c *Controller) {
		c.canMerge = canMerge
	}
}

// WithMessages sets the user-visible texts
func WithMessages(msgs Messages) Option {
	return func(c *Controller) {
		c.msgs = msgs
	}
}

// WithDispatcher sets how events reach the View's goroutine
func WithDispatcher(d Dispatcher) Option {
	return func(c *Controller) {
		if d != nil {
			c.dispatch = d
		}
	}
}

// WithRunnerOptions passes options to every Runner the controller creates
func WithRunnerOptions(opts ...download.RunnerOption) Option {
	return func(c *Controller) {
		c.runnerOpts = append(c.runnerOpts, opts...)
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithContext sets the context handed to the engine. Jobs are not
// cancellable from the UI; the context only ends with the process.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithQueueSize sets the capacity of each job's event queue
func WithQueueSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.queueSize = n
		}
	}
}

// New creates a controller driving view with engine
func New(view View, engine download.Engine, opts ...Option) *Controller {
	c := &Controller{
		view:      view,
		engine:    engine,
		msgs:      DefaultMessages(),
		dispatch:  Immediate,
		logger:    zap.NewNop(),
		ctx:       context.Background(),
		queueSize: DefaultQueueSize,
		state:     model.JobStateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Messages returns the texts in use
func (c *Controller) Messages() Messages {
	return c.msgs
}

// CanMerge reports whether jobs are started with merge capability
func (c *Controller) CanMerge() bool {
	return c.canMerge
}

// State returns the state of the current or last job
func (c *Controller) State() model.JobState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Active returns the running job, if any
func (c *Controller) Active() (model.Job, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return model.Job{}, false
	}
	return c.active.job(), true
}

// LastJob returns the most recently finished job, if any
func (c *Controller) LastJob() (model.Job, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastJob == nil {
		return model.Job{}, false
	}
	return *c.lastJob, true
}

// Wait blocks until every started job has delivered its terminal event
// to the dispatcher
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Start validates input and launches a job. Invalid input is reported to
// the View and returned as *ValidationError; no job is created for it.
func (c *Controller) Start(source, destination string) (model.Job, error) {
	req := newRequest(source, destination)

	c.mu.Lock()
	if c.active != nil {
		c.mu.Unlock()
		c.logger.Warn("start rejected: job already active")
		c.view.ShowValidationError(c.msgs.JobActive)
		return model.Job{}, ErrJobActive
	}
	if verr := req.validate(c.msgs); verr != nil {
		c.mu.Unlock()
		c.logger.Info("start rejected: invalid input",
			zap.String("field", verr.Field), zap.String("reason", verr.Message))
		c.view.ShowValidationError(verr.Message)
		return model.Job{}, verr
	}

	job := model.NewJob(req.Source, req.Destination, c.canMerge)
	events := make(chan model.Event, c.queueSize)
	runnerOpts := append([]download.RunnerOption{download.WithLabels(c.msgs.Labels())}, c.runnerOpts...)
	runner := download.NewRunner(c.engine, job, &queueObserver{events: events}, runnerOpts...)
	c.active = &activeJob{runner: runner}
	c.state = model.JobStateRunning
	c.mu.Unlock()

	c.view.SetStartEnabled(false)
	c.view.SetProgress(0)
	c.view.SetStatus(c.msgs.Starting)
	c.view.ClearLog()

	c.logger.Info("job launched", zap.String("job_id", job.ID), zap.String("source", job.Source))

	c.wg.Add(1)
	done := runner.Start(c.ctx)
	go func() {
		defer c.wg.Done()
		c.pump(job.ID, events, done)
	}()

	return job, nil
}

// pump hands the job's events to the View in emission order until the
// runner is done and the queue is drained
func (c *Controller) pump(jobID string, events <-chan model.Event, done <-chan struct{}) {
	for {
		select {
		case ev := <-events:
			c.forward(jobID, ev)
		case <-done:
			for {
				select {
				case ev := <-events:
					c.forward(jobID, ev)
				default:
					return
				}
			}
		}
	}
}

func (c *Controller) forward(jobID string, ev model.Event) {
	c.dispatch(func() {
		c.apply(jobID, ev)
	})
	if ev.IsTerminal() {
		c.logger.Debug("terminal event dispatched",
			zap.String("job_id", jobID), zap.Stringer("state", model.StateAfter(ev)))
	}
}

// apply renders one event; runs on the View's goroutine
func (c *Controller) apply(jobID string, ev model.Event) {
	if !c.isActive(jobID) {
		c.logger.Debug("dropping event for inactive job", zap.String("job_id", jobID))
		return
	}

	switch e := ev.(type) {
	case model.ProgressEvent:
		c.view.SetProgress(e.Percent)
		c.view.SetStatus(c.msgs.ProgressStatus(e.Percent, e.Annotation))
	case model.LogLine:
		c.view.AppendLog(e)
	case model.FinishedEvent:
		c.view.AppendLog(model.LogLine{Level: model.LogDebug, Text: c.msgs.Done})
		c.view.SetStatus(c.msgs.Done)
		c.release(jobID, model.StateAfter(ev))
		c.view.SetStartEnabled(true)
	case model.FailedEvent:
		c.view.AppendLog(model.LogLine{Level: model.LogError, Text: c.msgs.FailedLog(e.Message)})
		c.view.SetStatus(c.msgs.Failed)
		c.release(jobID, model.StateAfter(ev))
		c.view.SetStartEnabled(true)
	}
}

func (c *Controller) isActive(jobID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil && c.active.job().ID == jobID
}

// release clears the active handle; the runner is not reused
func (c *Controller) release(jobID string, state model.JobState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil || c.active.job().ID != jobID {
		return
	}
	job := c.active.job()
	c.lastJob = &job
	c.active = nil
	c.state = state
	c.logger.Info("job released", zap.String("job_id", jobID), zap.Stringer("state", state))
}

// queueObserver turns runner callbacks into queued events
type queueObserver struct {
	events chan<- model.Event
}

func (q *queueObserver) OnProgress(percent int, annotation string) {
	q.events <- model.ProgressEvent{Percent: percent, Annotation: annotation}
}

func (q *queueObserver) OnLog(line model.LogLine) {
	q.events <- line
}

func (q *queueObserver) OnFinished() {
	q.events <- model.FinishedEvent{}
}

func (q *queueObserver) OnError(message string) {
	q.events <- model.FailedEvent{Message: message}
}
