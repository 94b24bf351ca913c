package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jcastellanos/salon-reservas/db"
	"github.com/jcastellanos/salon-reservas/models"
	"github.com/jcastellanos/salon-reservas/utils"
)

// StartCronJobs initializes and starts the cron scheduler for reservation reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for reservations in the next hour
	_, err := c.AddFunc("* * * * *", sendReservationReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for reservation reminders")
}

// sendReservationReminders checks for upcoming reservations and mails the
// assigned employee
func sendReservationReminders() {
	var reservations []models.Reservation
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Client").Preload("Service").Preload("Employee").Preload("Location").
		Where("start_time BETWEEN ? AND ?", startWindow, endWindow).
		Find(&reservations).Error
	if err != nil {
		log.Printf("Error fetching reservations for reminders: %v", err)
		return
	}

	for _, reservation := range reservations {
		if reservation.Employee.Email == "" {
			continue
		}
		if err := sendReminderEmail(&reservation); err != nil {
			log.Printf("Failed to send reminder for reservation %d: %v", reservation.ID, err)
			continue
		}
		log.Printf("Sent reminder for reservation %d to %s", reservation.ID, reservation.Employee.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(reservation *models.Reservation) error {
	subject := fmt.Sprintf("Reminder: Upcoming reservation - %s", reservation.Service.Name)
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>This is a reminder for a reservation starting in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Client:</strong> %s (%s)</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Please be ready a few minutes early.</p>
	`, reservation.Employee.Name, reservation.Client.Name, reservation.Client.Phone,
		reservation.Service.Name, reservation.Location.Name,
		reservation.StartTime.Format("2006-01-02 15:04:05"),
		reservation.EndTime.Format("2006-01-02 15:04:05"))

	return utils.SendEmail(reservation.Employee.Email, subject, body)
}
