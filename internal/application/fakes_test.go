package application

import (
	"context"
	"sync"
	"time"

	"github.com/curioapp/curio/internal/domain/entity"
)

// In-memory repository fakes. They mirror the store contract the services
// rely on: lookups return (nil, nil) on absence, session tokens match
// exactly, sessions are only ever marked closed.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // by uuid
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.UUID] = &cp
	return nil
}

func (r *memUserRepo) GetByUUID(_ context.Context, uuid string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[uuid]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByUserName(_ context.Context, userName string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.UserName == userName {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Delete(_ context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[uuid]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, uuid)
	return nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session // by access token
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *memSessionRepo) Create(_ context.Context, s *entity.Session, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.AccessToken] = &cp
	return nil
}

func (r *memSessionRepo) FindByToken(_ context.Context, token string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSessionRepo) MarkSignedOut(_ context.Context, token string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[token]; ok {
		t := at
		s.LogoutAt = &t
	}
	return nil
}

type memQuestionRepo struct {
	mu        sync.Mutex
	questions map[string]*entity.Question
	order     []string
}

func newMemQuestionRepo() *memQuestionRepo {
	return &memQuestionRepo{questions: make(map[string]*entity.Question)}
}

func (r *memQuestionRepo) Create(_ context.Context, q *entity.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *q
	r.questions[q.UUID] = &cp
	r.order = append(r.order, q.UUID)
	return nil
}

func (r *memQuestionRepo) GetByUUID(_ context.Context, uuid string) (*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.questions[uuid]; ok {
		cp := *q
		return &cp, nil
	}
	return nil, nil
}

func (r *memQuestionRepo) UpdateContent(_ context.Context, uuid, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[uuid]
	if !ok {
		return ErrQuestionNotFound
	}
	q.Content = content
	return nil
}

func (r *memQuestionRepo) Delete(_ context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[uuid]; !ok {
		return ErrQuestionNotFound
	}
	delete(r.questions, uuid)
	for i, id := range r.order {
		if id == uuid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memQuestionRepo) All(_ context.Context) ([]*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Question, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.questions[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memQuestionRepo) AllByUser(_ context.Context, userUUID string) ([]*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Question
	for _, id := range r.order {
		if r.questions[id].UserUUID == userUUID {
			cp := *r.questions[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memAnswerRepo struct {
	mu      sync.Mutex
	answers map[string]*entity.Answer
	order   []string
}

func newMemAnswerRepo() *memAnswerRepo {
	return &memAnswerRepo{answers: make(map[string]*entity.Answer)}
}

func (r *memAnswerRepo) Create(_ context.Context, a *entity.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.answers[a.UUID] = &cp
	r.order = append(r.order, a.UUID)
	return nil
}

func (r *memAnswerRepo) GetByUUID(_ context.Context, uuid string) (*entity.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.answers[uuid]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *memAnswerRepo) Update(_ context.Context, a *entity.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.answers[a.UUID]; !ok {
		return ErrAnswerNotFound
	}
	cp := *a
	r.answers[a.UUID] = &cp
	return nil
}

func (r *memAnswerRepo) Delete(_ context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.answers[uuid]; !ok {
		return ErrAnswerNotFound
	}
	delete(r.answers, uuid)
	for i, id := range r.order {
		if id == uuid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memAnswerRepo) AllForQuestion(_ context.Context, questionUUID string) ([]*entity.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Answer
	for _, id := range r.order {
		if r.answers[id].QuestionUUID == questionUUID {
			cp := *r.answers[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}
