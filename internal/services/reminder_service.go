package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/propertyfinder/listings-service/internal/config"
	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

// ReminderService runs the periodic reminder sweep. It delegates the
// due decision to DueReminders and keeps a delivered-ID set so an event
// observed on two ticks is still notified once.
type ReminderService struct {
	cfg              *config.Config
	eventRepo        repositories.EventRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	twilioClient     *twilio.RestClient
	sendgridClient   *sendgrid.Client

	mu       sync.Mutex
	notified map[int]struct{}
}

func NewReminderService(
	cfg *config.Config,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) *ReminderService {
	var twClient *twilio.RestClient
	if cfg.TwilioAccountSID != "" {
		twClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	var sgClient *sendgrid.Client
	if cfg.SendGridAPIKey != "" {
		sgClient = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	}

	return &ReminderService{
		cfg:              cfg,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		twilioClient:     twClient,
		sendgridClient:   sgClient,
		notified:         make(map[int]struct{}),
	}
}

// RunReminderCheck scans all events for due reminders and fans out the
// notifications. Called from the cron scheduler once per minute.
func (s *ReminderService) RunReminderCheck(ctx context.Context) error {
	utils.Logger.Debug("Running reminder checks...")

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, e := range DueReminders(events, now) {
		if !s.markNotified(e.ID) {
			continue
		}
		s.deliverReminder(ctx, e)
	}
	return nil
}

// markNotified records the event as delivered. Returns false when the
// event was already delivered on an earlier tick.
func (s *ReminderService) markNotified(eventID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, done := s.notified[eventID]; done {
		return false
	}
	s.notified[eventID] = struct{}{}
	return true
}

func (s *ReminderService) deliverReminder(ctx context.Context, e *models.CalendarEvent) {
	title, body := reminderText(e)

	_, err := s.notificationRepo.Create(ctx, &models.Notification{
		OwnerID:     e.OwnerID,
		Type:        models.NotificationReminder,
		Title:       title,
		Description: body,
		Date:        time.Now(),
	})
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to store reminder notification for event=%d", e.ID)
	}

	owner, err := s.userRepo.GetByID(ctx, e.OwnerID)
	if err != nil || owner == nil {
		utils.Logger.Warnf("Reminder owner not found for event=%d", e.ID)
		return
	}

	if s.twilioClient != nil && owner.Phone != "" {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(owner.Phone)
		params.SetFrom(s.cfg.TwilioFromPhone)
		params.SetBody(title + " :: " + body)
		if _, smsErr := s.twilioClient.Api.CreateMessage(params); smsErr != nil {
			utils.Logger.WithError(smsErr).Warnf("Failed to send reminder SMS for event=%d", e.ID)
		}
	}

	if s.sendgridClient != nil && e.SendEmail && owner.Email != "" {
		from := mail.NewEmail(s.cfg.AppName, s.cfg.SendGridFrom)
		to := mail.NewEmail(owner.Name, owner.Email)
		msg := mail.NewSingleEmail(from, title, to, body, reminderEmailHTML(title, e))
		if _, sgErr := s.sendgridClient.Send(msg); sgErr != nil {
			utils.Logger.WithError(sgErr).Warnf("Failed to send reminder email for event=%d", e.ID)
		}
	}

	utils.Logger.Infof("Delivered reminder for event=%d type=%s", e.ID, e.Type)
}

func reminderText(e *models.CalendarEvent) (string, string) {
	when := e.Date.Format("Jan 2 at 3:04 PM")
	if e.Type == models.EventTypeMeeting {
		title := "Upcoming meeting with " + e.ClientName
		body := fmt.Sprintf("Meeting with %s on %s", e.ClientName, when)
		if e.Address != "" {
			body += " at " + e.Address
		}
		return title, body
	}
	title := "Call " + e.ClientName + " now"
	body := fmt.Sprintf("Scheduled call with %s (%s)", e.ClientName, when)
	if e.PhoneNumber != "" {
		body += ", phone " + e.PhoneNumber
	}
	return title, body
}

const reminderEmailTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Reminder</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background-color: #f3f4f6; color: #1f2937; margin: 0; padding: 20px; }
  .container { max-width: 600px; margin: auto; background: #fff; border: 1px solid #e5e7eb; border-radius: 8px; }
  .header { background-color: #dbeafe; padding: 15px 20px; border-bottom: 1px solid #bfdbfe; }
  .header h1 { margin: 0; font-size: 20px; color: #1e40af; }
  .content { padding: 20px; }
  ul { list-style: none; padding: 0; }
  li { padding: 8px; border-bottom: 1px solid #eee; }
  li:last-child { border-bottom: none; }
  strong { color: #000; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="content">
      <ul>
        <li><strong>Client:</strong> %s</li>
        <li><strong>When:</strong> %s</li>
        <li><strong>Type:</strong> %s</li>
        <li><strong>Details:</strong> %s</li>
      </ul>
    </div>
  </div>
</body>
</html>`

func reminderEmailHTML(title string, e *models.CalendarEvent) string {
	details := e.Description
	if e.Type == models.EventTypeMeeting && e.Address != "" {
		details = e.Address
	}
	return fmt.Sprintf(
		reminderEmailTemplate,
		title,
		e.ClientName,
		e.Date.Format("Mon, Jan 2 2006 3:04 PM"),
		string(e.Type),
		details,
	)
}
