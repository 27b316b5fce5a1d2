package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/usecase/readmodel"
)

const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #fdf2f8; padding: 20px;">
			<h2 style="color: #db2777; margin: 0;">Infinity Nail Salon</h2>
		</div>
`

const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
			<p>&copy; 2026 Infinity Nail Salon. All rights reserved.</p>
		</div>
	</div>
</body>
</html>
`

// Mailer sends booking lifecycle emails over plain SMTP. When the SMTP
// config is incomplete it logs and drops the message instead of failing
// the booking flow.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) send(to []string, subject, body string) error {
	if !m.cfg.Enabled() {
		slog.Info("smtp disabled, skipping email", "subject", subject)
		return nil
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("Infinity Nail Salon <%s>", m.cfg.From),
		"To":           strings.Join(to, ","),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var msg strings.Builder
	for key, value := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", key, value)
	}
	msg.WriteString("\r\n" + body)

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, to, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *Mailer) SendBookingConfirmation(rm *readmodel.BookingRM) error {
	subject := fmt.Sprintf("Booking Received - %s", rm.Ref)
	body := fmt.Sprintf(emailHeader+`
			<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
				<h1 style="color: #2c3e50; text-align: center;">Booking Received</h1>
				<p>Hello %s,</p>
				<p>We have received your booking <strong>%s</strong> for <strong>%s</strong>
				with <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong>.</p>
				<p>Your appointment is pending confirmation. We will let you know once it is confirmed.</p>
				<div style="text-align: center; margin: 30px 0;">
					<a href="%s/appointments" style="background-color: #db2777; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">View Your Appointments</a>
				</div>
				<p>Best regards,<br>The Infinity Nail Salon Team</p>
			</div>`+emailFooter,
		rm.FirstName, rm.Ref, rm.ServiceName, rm.ArtistName,
		rm.Date.Format("Monday, 02 Jan 2006"), rm.TimeSlot, m.cfg.BaseURL)

	return m.send([]string{rm.Email}, subject, body)
}

func (m *Mailer) SendPasswordReset(name, email, token string) error {
	subject := "Password Reset Request"
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.BaseURL, token)
	body := fmt.Sprintf(emailHeader+`
			<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
				<h1 style="color: #2c3e50; text-align: center;">Password Reset</h1>
				<p>Hello %s,</p>
				<p>We received a request to reset your password. Click the button below to choose a new one.
				The link expires in 1 hour.</p>
				<div style="text-align: center; margin: 30px 0;">
					<a href="%s" style="background-color: #db2777; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">Reset Password</a>
				</div>
				<p>If you did not request a reset, you can safely ignore this email.</p>
				<p>Best regards,<br>The Infinity Nail Salon Team</p>
			</div>`+emailFooter,
		name, resetLink)

	return m.send([]string{email}, subject, body)
}

func (m *Mailer) SendStatusUpdate(rm *readmodel.BookingRM) error {
	subject := fmt.Sprintf("Booking %s - %s", rm.Status, rm.Ref)
	body := fmt.Sprintf(emailHeader+`
			<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
				<h1 style="color: #2c3e50; text-align: center;">Booking %s</h1>
				<p>Hello %s,</p>
				<p>Your booking <strong>%s</strong> for <strong>%s</strong> on <strong>%s</strong>
				at <strong>%s</strong> is now <strong>%s</strong>.</p>
				<p>Best regards,<br>The Infinity Nail Salon Team</p>
			</div>`+emailFooter,
		rm.Status, rm.FirstName, rm.Ref, rm.ServiceName,
		rm.Date.Format("Monday, 02 Jan 2006"), rm.TimeSlot, rm.Status)

	return m.send([]string{rm.Email}, subject, body)
}
