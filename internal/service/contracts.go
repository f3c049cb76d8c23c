package service

import (
	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
	"github.com/jadenpinto/QuizzifyApp/internal/storage"
)

type QuestionStore interface {
	Insert(q entities.Question) *storage.Pending
	InsertMany(qs []entities.Question) *storage.Pending
	Update(q entities.Question) *storage.Pending
	Delete(q entities.Question) *storage.Pending
	SubscribeAll() *storage.Subscription[[]entities.Question]
	SubscribeByID(id int64) *storage.Subscription[*entities.Question]
	SubscribeBySubject(subject string) *storage.Subscription[[]entities.Question]
	SubscribeSubjects() *storage.Subscription[[]string]
}
