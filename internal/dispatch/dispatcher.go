package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"callwatch.app/callwatch/common/id"
	"callwatch.app/callwatch/common/logger"
	"callwatch.app/callwatch/internal/channel"
	"callwatch.app/callwatch/internal/model"
)

// Task names, as reported in dispatch outcomes and logs.
const (
	TaskCreateTicket  = "create_ticket"
	TaskIncidentEmail = "incident_email"
	TaskChatCard      = "chat_notification"
	TaskSMS           = "sms_notification"
	TaskInquiryEmail  = "inquiry_email"
)

// Config is the per-channel dispatch configuration, passed in explicitly so
// task construction never reads ambient state.
type Config struct {
	TicketEnabled bool
	EmailEnabled  bool
	ChatEnabled   bool
	SMSEnabled    bool

	SMSFrom string
	SMSTo   string

	IncidentRecipients []string
	InquiryRecipients  []string
	FailureRecipients  []string
}

type Dispatcher struct {
	email  channel.EmailSender
	chat   channel.ChatPoster
	sms    channel.SMSSender
	ticket channel.TicketCreator
	cfg    Config
	logger *slog.Logger
}

func New(email channel.EmailSender, chat channel.ChatPoster, sms channel.SMSSender, ticket channel.TicketCreator, cfg Config, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		email:  email,
		chat:   chat,
		sms:    sms,
		ticket: ticket,
		cfg:    cfg,
		logger: log,
	}
}

type task struct {
	name string
	run  func(ctx context.Context) error
}

// Dispatch builds the eligible channel tasks for the classification and
// runs them all concurrently, settling every task before returning. One
// task's failure never cancels its siblings; failures are collected into
// the outcome rather than propagated.
func (d *Dispatcher) Dispatch(ctx context.Context, classification model.Classification, event model.CallAnalysisEvent) model.DispatchOutcome {
	tasks := d.buildTasks(classification, event)

	outcome := model.DispatchOutcome{
		DispatchID: id.New(),
		Total:      len(tasks),
		Tasks:      make([]model.TaskResult, len(tasks)),
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		DispatchID: logger.Ptr(outcome.DispatchID),
		Component:  "callwatch.dispatch",
	})

	if len(tasks) == 0 {
		d.logger.InfoContext(ctx, "no channels enabled, nothing to dispatch")
		return outcome
	}

	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(slot int, t task) {
			defer wg.Done()
			taskCtx := logger.WithLogFields(ctx, logger.LogFields{Channel: logger.Ptr(t.name)})
			sc := logger.StartSpan(taskCtx, "dispatch."+t.name)
			defer sc.End()
			err := d.runTask(sc.Context(), t)
			sc.RecordError(err)
			outcome.Tasks[slot] = model.TaskResult{Task: t.name, Err: err}
		}(i, t)
	}
	wg.Wait()

	for _, result := range outcome.Tasks {
		if result.Succeeded() {
			outcome.Successful++
		} else {
			outcome.Failed++
			d.logger.ErrorContext(ctx, "notification task failed", "task", result.Task, "error", result.Err)
		}
	}

	d.alertOnTicketFailure(ctx, event, &outcome)

	d.logger.InfoContext(ctx, "dispatch settled",
		"total", outcome.Total,
		"successful", outcome.Successful,
		"failed", outcome.Failed,
	)

	return outcome
}

// runTask runs one task, converting a panic into an ordinary failure so a
// misbehaving adapter cannot take down sibling tasks or the request.
func (d *Dispatcher) runTask(ctx context.Context, t task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return t.run(ctx)
}

// buildTasks returns the channel tasks eligible for the classification,
// gated by the per-channel enable flags. Inquiry calls are restricted to
// the inquiry email regardless of flags; Unclassified uses the Incident
// channel set.
func (d *Dispatcher) buildTasks(classification model.Classification, event model.CallAnalysisEvent) []task {
	var tasks []task

	if classification == model.ClassificationInquiry {
		if d.cfg.EmailEnabled && d.email != nil {
			msg := InquiryEmail(event.CallID, event.Fields, d.cfg.InquiryRecipients)
			tasks = append(tasks, task{
				name: TaskInquiryEmail,
				run:  func(ctx context.Context) error { return d.email.Send(ctx, msg) },
			})
		}
		return tasks
	}

	if d.cfg.TicketEnabled && d.ticket != nil {
		fields := IncidentTicket(event.CallID, event.Fields)
		tasks = append(tasks, task{
			name: TaskCreateTicket,
			run: func(ctx context.Context) error {
				ticketID, err := d.ticket.CreateTicket(ctx, fields)
				if err != nil {
					return err
				}
				d.logger.InfoContext(ctx, "ticket created", "ticket_id", ticketID)
				return nil
			},
		})
	}

	if d.cfg.EmailEnabled && d.email != nil {
		msg := IncidentEmail(event.CallID, event.Fields, d.cfg.IncidentRecipients)
		tasks = append(tasks, task{
			name: TaskIncidentEmail,
			run:  func(ctx context.Context) error { return d.email.Send(ctx, msg) },
		})
	}

	if d.cfg.ChatEnabled && d.chat != nil {
		card := IncidentCard(event.CallID, event.Fields)
		tasks = append(tasks, task{
			name: TaskChatCard,
			run:  func(ctx context.Context) error { return d.chat.PostCard(ctx, card) },
		})
	}

	if d.cfg.SMSEnabled && d.sms != nil {
		body := IncidentSMS(event.CallID, event.Fields)
		tasks = append(tasks, task{
			name: TaskSMS,
			run:  func(ctx context.Context) error { return d.sms.SendText(ctx, d.cfg.SMSTo, d.cfg.SMSFrom, body) },
		})
	}

	return tasks
}

// alertOnTicketFailure sends the "ticket creation failed" alert email when
// the ticket task failed and email is available. The alert is not one of
// the constructed tasks and its failure is recorded separately so the
// original ticket error stays visible in the outcome.
func (d *Dispatcher) alertOnTicketFailure(ctx context.Context, event model.CallAnalysisEvent, outcome *model.DispatchOutcome) {
	var ticketErr error
	for _, result := range outcome.Tasks {
		if result.Task == TaskCreateTicket && result.Err != nil {
			ticketErr = result.Err
			break
		}
	}
	if ticketErr == nil || !d.cfg.EmailEnabled || d.email == nil {
		return
	}

	outcome.TicketAlertAttempted = true
	alert := TicketAlertEmail(event.CallID, ticketErr, d.cfg.FailureRecipients)
	if err := d.email.Send(ctx, alert); err != nil {
		outcome.TicketAlertFailed = true
		d.logger.ErrorContext(ctx, "ticket failure alert email failed", "error", err, "ticket_error", ticketErr)
		return
	}
	d.logger.InfoContext(ctx, "ticket failure alert email sent", "ticket_error", ticketErr)
}
