// internal/auth/mock_gen.go
package auth

//go:generate mockgen -source=./session.go -destination=../mocks/mock_session_store.go -package=mocks SessionStore
//go:generate mockgen -source=./authenticator.go -destination=../mocks/mock_authenticator.go -package=mocks Authenticator,UserSource
