package services

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendWelcomeEmail notifies the operator mailbox that a new user signed
// up. Best effort: skipped silently when SendGrid is unconfigured, and
// never surfaces a failure to the login flow. Callers run it in a
// goroutine.
func SendWelcomeEmail(userName string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Welcome email panic recovered: %v\n", r)
		}
	}()

	apiKey := os.Getenv("SENDGRID_API_KEY")
	welcomeEmail := os.Getenv("WELCOME_EMAIL")

	if apiKey == "" || welcomeEmail == "" {
		fmt.Println("Missing SendGrid config, skipping welcome email")
		return
	}

	subject := fmt.Sprintf("New signup: %s", userName)
	body := fmt.Sprintf("User %q just created an account on the free tier.", userName)

	from := mail.NewEmail("MyVibeSaaS", welcomeEmail)
	to := mail.NewEmail("Admin", welcomeEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(apiKey)

	response, err := client.Send(message)
	if err != nil {
		fmt.Printf("Error sending welcome email: %v\n", err)
	} else {
		fmt.Printf("Welcome email sent. Status Code: %d\n", response.StatusCode)
	}
}
