package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"truck-booking/internal/data/entity"
	"truck-booking/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends plaintext booking confirmations over SMTP. Delivery is
// best-effort; callers log and swallow any error.
type Mailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func New(config utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		config: config,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

func (m *Mailer) SendBookingConfirmation(ctx context.Context, toEmail string, booking *entity.Booking) error {
	subject := "Booking Confirmation - Truck Management System"

	body := fmt.Sprintf(
		"Dear Customer,\n\n"+
			"Your booking has been confirmed!\n\n"+
			"Booking ID: %s\n"+
			"Pickup Location: %s\n"+
			"Drop Location: %s\n"+
			"Load Type: %s\n"+
			"Weight: %s tons\n"+
			"Distance: %s km\n"+
			"Total Price: $%s\n"+
			"Status: %s\n\n"+
			"Thank you for choosing our service!\n\n"+
			"Best regards,\n"+
			"Truck Management Team",
		booking.ID.String(),
		booking.PickupLocation,
		booking.DropLocation,
		booking.LoadType,
		booking.Weight.StringFixed(2),
		booking.Distance.StringFixed(2),
		booking.Price.StringFixed(2),
		booking.Status,
	)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", toEmail))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{toEmail}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send booking confirmation to %s: %w", toEmail, err)
	}

	m.log.Info("Booking confirmation sent",
		zap.String("to", toEmail),
		zap.String("booking_id", booking.ID.String()),
	)

	return nil
}
