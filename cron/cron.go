package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/barbercloud/barbercloud-api/availability"
	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/models"
	"github.com/barbercloud/barbercloud-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Check every 5 minutes for appointments starting within the hour
	_, err := c.AddFunc("*/5 * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders emails customers whose appointment starts in
// the next hour. ReminderSentAt guards against resends between runs.
func sendAppointmentReminders() {
	now := time.Now()
	today := availability.DateOf(now)
	minNow := now.Hour()*60 + now.Minute()

	var appointments []models.Appointment
	err := db.DB.Preload("Service").
		Where("date = ? AND status IN ? AND reminder_sent_at IS NULL AND customer_email IS NOT NULL",
			today,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if !availability.IsValidTime(appointment.Time) {
			continue
		}
		start := availability.ToMinutes(appointment.Time)
		if start < minNow || start > minNow+60 {
			continue
		}

		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}

		sentAt := now
		appointment.ReminderSentAt = &sentAt
		if err := db.DB.Model(&appointment).Update("reminder_sent_at", sentAt).Error; err != nil {
			log.Printf("Failed to mark reminder sent for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, *appointment.CustomerEmail)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.Service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Reference:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, use your booking reference as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your BarberCloud Team</p>
	`, appointment.CustomerName, appointment.Service.Name,
		appointment.Date, appointment.Time, appointment.Reference)

	return utils.SendEmail(*appointment.CustomerEmail, subject, body)
}
