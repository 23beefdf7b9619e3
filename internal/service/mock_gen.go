// internal/service/mock_gen.go
package service

//go:generate mockgen -source=./mail.go -destination=../mocks/mock_mail_store.go -package=mocks MailStore
