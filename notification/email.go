package notification

import (
	"fmt"
	"io"
	"log"

	"github.com/go-gomail/gomail"
)

// Sender delivers the booking confirmation. Implementations are best-effort:
// the booking flow discards the returned error after logging it.
type Sender interface {
	SendConfirmation(recipient, patientName, doctor, date, timeSlot string, paymentRef *string) error
}

// EmailSender sends the confirmation over SMTP with gomail. When no mail
// credentials are configured every send is a no-op.
type EmailSender struct {
	host     string
	port     int
	username string
	password string
}

func NewEmailSender(host string, port int, username, password string) *EmailSender {
	return &EmailSender{host: host, port: port, username: username, password: password}
}

func (s *EmailSender) configured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// SendConfirmation mails the appointment details to the patient. When a
// payment reference exists a PDF receipt is attached.
func (s *EmailSender) SendConfirmation(recipient, patientName, doctor, date, timeSlot string, paymentRef *string) error {
	if !s.configured() {
		log.Println("mail not configured, skipping confirmation to", recipient)
		return nil
	}

	body := fmt.Sprintf(`Hello %s,

Your appointment has been booked successfully!

Doctor: %s
Date: %s
Time: %s

Thank you for using SkinAI Hub!
`, patientName, doctor, date, timeSlot)

	m := gomail.NewMessage()
	m.SetHeader("From", s.username)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Your Appointment Confirmation – SkinAI Hub")
	m.SetBody("text/plain", body)

	if paymentRef != nil && *paymentRef != "" {
		receipt, err := buildReceiptPDF(patientName, doctor, date, timeSlot, *paymentRef)
		if err != nil {
			log.Println("could not build receipt PDF:", err)
		} else {
			m.Attach("receipt.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(receipt)
				return err
			}))
		}
	}

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
