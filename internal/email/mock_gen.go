// internal/email/mock_gen.go
package email

//go:generate mockgen -source=./service.go -destination=../mocks/mock_email_sender.go -package=mocks Sender
