// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./store.go -destination=../mocks/mock_store.go -package=mocks Store,Seeder
